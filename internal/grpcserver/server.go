// Package grpcserver implements the PlacementService gRPC server.
//
// It delegates all business logic to lifecycle.Engine and handles only the
// gRPC transport concerns: metadata extraction, error mapping, and type
// conversion between the domain model and protobuf messages.
package grpcserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"jobmate/placement-service/internal/lifecycle"
	pb "jobmate/placement-service/internal/pb"
	"jobmate/placement-service/internal/scheduler"
	"jobmate/placement-service/internal/sweep"
)

// Server implements pb.PlacementServiceServer.
type Server struct {
	pb.UnimplementedPlacementServiceServer
	engine *lifecycle.Engine
	sweeps scheduler.Runner
	log    *zap.SugaredLogger
}

// NewServer constructs a gRPC Server backed by engine. sweeps may be nil, in
// which case RunSweep is unavailable.
func NewServer(engine *lifecycle.Engine, sweeps scheduler.Runner, log *zap.SugaredLogger) *Server {
	return &Server{engine: engine, sweeps: sweeps, log: log}
}

// ─── RPC implementations ──────────────────────────────────────────────────────

// Dispatch runs one transition and returns the entity it acted on.
func (s *Server) Dispatch(ctx context.Context, req *pb.DispatchRequest) (*pb.DispatchResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	tr := lifecycle.TransitionRequest{
		EntityType: req.GetEntityType(),
		EntityID:   req.GetEntityId(),
		Action:     req.GetAction(),
	}
	if p := req.GetPayload(); p != nil {
		tr.Payload = p.AsMap()
	}

	res, err := s.engine.Dispatch(ctx, actor, tr)
	if err != nil {
		return nil, toGRPCError(err)
	}
	out := &pb.DispatchResponse{}
	switch {
	case res.Application != nil:
		out.Application = applicationToProto(res.Application)
	case res.Employment != nil:
		out.Employment = employmentToProto(res.Employment)
	case res.Request != nil:
		out.Request = requestToProto(res.Request)
	}
	return out, nil
}

func (s *Server) GetApplication(ctx context.Context, req *pb.GetApplicationRequest) (*pb.ApplicationResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	app, err := s.engine.GetApplication(ctx, actor, req.GetId())
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.ApplicationResponse{Application: applicationToProto(app)}, nil
}

// ListApplications returns the applications visible to the caller, filtered
// by an optional listing and statuses.
func (s *Server) ListApplications(ctx context.Context, req *pb.ListApplicationsRequest) (*pb.ListApplicationsResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	f := lifecycle.ApplicationFilter{ListingID: req.GetListingId()}
	for _, raw := range req.GetStatuses() {
		st, err := lifecycle.ParseApplicationStatus(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		f.Statuses = append(f.Statuses, st)
	}

	apps, err := s.engine.ListApplications(ctx, actor, f)
	if err != nil {
		return nil, toGRPCError(err)
	}
	protos := make([]*pb.Application, 0, len(apps))
	for _, a := range apps {
		protos = append(protos, applicationToProto(a))
	}
	return &pb.ListApplicationsResponse{Applications: protos}, nil
}

// GetEmployment looks up by application id when it is set, by id otherwise.
func (s *Server) GetEmployment(ctx context.Context, req *pb.GetEmploymentRequest) (*pb.EmploymentResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	var emp *lifecycle.Employment
	if appID := req.GetApplicationId(); appID != "" {
		emp, err = s.engine.GetEmploymentByApplication(ctx, actor, appID)
	} else {
		emp, err = s.engine.GetEmployment(ctx, actor, req.GetId())
	}
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.EmploymentResponse{Employment: employmentToProto(emp)}, nil
}

func (s *Server) ListEmployments(ctx context.Context, req *pb.ListEmploymentsRequest) (*pb.ListEmploymentsResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	var f lifecycle.EmploymentFilter
	for _, raw := range req.GetStatuses() {
		st, err := lifecycle.ParseEmploymentStatus(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		f.Statuses = append(f.Statuses, st)
	}

	emps, err := s.engine.ListEmployments(ctx, actor, f)
	if err != nil {
		return nil, toGRPCError(err)
	}
	protos := make([]*pb.Employment, 0, len(emps))
	for _, e := range emps {
		protos = append(protos, employmentToProto(e))
	}
	return &pb.ListEmploymentsResponse{Employments: protos}, nil
}

func (s *Server) ListRequests(ctx context.Context, req *pb.ListRequestsRequest) (*pb.ListRequestsResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	reqs, err := s.engine.ListRequests(ctx, actor, req.GetEmploymentId())
	if err != nil {
		return nil, toGRPCError(err)
	}
	protos := make([]*pb.Request, 0, len(reqs))
	for _, r := range reqs {
		protos = append(protos, requestToProto(r))
	}
	return &pb.ListRequestsResponse{Requests: protos}, nil
}

// RunSweep runs one pass and returns its report. Admin only.
func (s *Server) RunSweep(ctx context.Context, req *pb.RunSweepRequest) (*pb.RunSweepResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != lifecycle.RoleAdmin {
		return nil, status.Error(codes.PermissionDenied, "sweeps can only be triggered by an admin")
	}
	if s.sweeps == nil {
		return nil, status.Error(codes.Unimplemented, "sweeps are not available on this instance")
	}
	pass, err := sweep.ParsePass(req.GetPass())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.log.Infow("manual sweep", "pass", pass, "actor", actor.String())
	r, err := s.sweeps.Run(ctx, pass)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.RunSweepResponse{Report: reportToProto(r)}, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// actorFromCtx extracts the x-user-id and x-user-role values forwarded by the
// Gateway via gRPC metadata.
func actorFromCtx(ctx context.Context) (lifecycle.Actor, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return lifecycle.Actor{}, status.Error(codes.Unauthenticated, "missing metadata")
	}
	ids := md.Get("x-user-id")
	if len(ids) == 0 || ids[0] == "" {
		return lifecycle.Actor{}, status.Error(codes.Unauthenticated, "missing x-user-id metadata")
	}
	roles := md.Get("x-user-role")
	if len(roles) == 0 {
		return lifecycle.Actor{}, status.Error(codes.Unauthenticated, "missing x-user-role metadata")
	}
	role, err := lifecycle.ParseRole(roles[0])
	if err != nil || role == lifecycle.RoleSystem {
		return lifecycle.Actor{}, status.Errorf(codes.PermissionDenied, "role %q is not allowed", roles[0])
	}
	return lifecycle.Actor{ID: ids[0], Role: role}, nil
}

// toGRPCError maps the lifecycle error taxonomy to gRPC status errors.
func toGRPCError(err error) error {
	switch lifecycle.Kind(err) {
	case lifecycle.KindInvalidTransition, lifecycle.KindGuardViolation:
		return status.Error(codes.FailedPrecondition, err.Error())
	case lifecycle.KindDuplicateActive:
		return status.Error(codes.AlreadyExists, err.Error())
	case lifecycle.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case lifecycle.KindInvalidPayload:
		return status.Error(codes.InvalidArgument, err.Error())
	case lifecycle.KindTransientStore:
		return status.Error(codes.Unavailable, "storage temporarily unavailable")
	}
	return status.Error(codes.Internal, "internal server error")
}
