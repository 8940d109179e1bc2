package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/sweep"
)

func sweepCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sweep <pass|all>",
		Short: "Run sweep passes once and print their reports",
		Long: "Runs one sweep pass, or every pass with \"all\", against the configured\n" +
			"store and notification backend. Passes: listings, applications,\n" +
			"employments, timesheet-reminders, closure-reminders.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			var passes []sweep.Pass
			if args[0] != "all" {
				p, err := sweep.ParsePass(args[0])
				if err != nil {
					return err
				}
				passes = append(passes, p)
			}

			a, err := build(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			reports, runErr := a.coordinator.RunAll(ctx, passes...)
			if err := printReports(cmd, reports, asJSON); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	return cmd
}

func printReports(cmd *cobra.Command, reports []*lifecycle.Report, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, r := range reports {
		fmt.Fprintln(out, r.String())
		for _, e := range r.Errors {
			fmt.Fprintf(out, "  %v\n", e)
		}
	}
	return nil
}
