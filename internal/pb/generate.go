// Package pb holds the PlacementService messages and gRPC stubs generated
// from proto/placement.proto.
package pb

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative placement.proto
