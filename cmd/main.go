// jobmate-placement-service
//
// Application and employment lifecycle engine for internship placements.
// Exposes a gRPC API used by the Gateway to drive:
//   - application transitions (apply, shortlist, interview, offer, accept…)
//   - employment transitions (start, closure, completion, termination)
//   - early-completion and termination requests
//
// A cron scheduler runs the sweep passes that expire, start and close records
// on time. Notifications go to Redis pub/sub or Kafka for the Gateway.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:           "placement-service",
		Short:         "Internship placement lifecycle service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd(), sweepCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
