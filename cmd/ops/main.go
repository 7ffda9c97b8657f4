package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bistro/config"
	"bistro/di"
	tableModel "bistro/internal/domains/table/model"
	"bistro/shared/constant"
	"bistro/shared/logger"
	"bistro/shared/timezone"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bistro-ops",
		Short: "Operator commands for the reservation service",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.InitLogger()
			logger.Configure(config.Get())
		},
	}

	root.AddCommand(newSeedTablesCmd())
	root.AddCommand(newAvailabilityReportCmd())

	return root
}

func newSeedTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-tables",
		Short: "Insert the sample floor plan, keeping tables that already exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := di.InitializeOps()
			defer ops.Close(context.WithoutCancel(cmd.Context()))

			ctx := context.WithValue(cmd.Context(), constant.ContextKeyActor, constant.ContextStaff)

			created, err := ops.Tables.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed tables: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tables\n", created)

			return nil
		},
	}
}

func newAvailabilityReportCmd() *cobra.Command {
	var (
		table string
		date  string
	)

	c := &cobra.Command{
		Use:   "availability-report",
		Short: "Print a table's occupancy for a day as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tableID, err := tableModel.NewTableID(table)
			if err != nil {
				return fmt.Errorf("invalid --table: %w", err)
			}

			day := timezone.Now()
			if date != "" {
				if day, err = timezone.Parse(constant.DateOnly, date); err != nil {
					return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
				}
			}

			ops := di.InitializeOps()
			defer ops.Close(context.WithoutCancel(cmd.Context()))

			report, err := ops.Availability.GetAvailabilityReport(cmd.Context(), tableID, day)
			if err != nil {
				return fmt.Errorf("availability report: %w", err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(report)
		},
	}

	c.Flags().StringVar(&table, "table", "", "table id, e.g. T001")
	c.Flags().StringVar(&date, "date", "", "day to report (YYYY-MM-DD), defaults to today")
	_ = c.MarkFlagRequired("table")

	return c
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
