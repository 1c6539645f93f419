package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/safety-dash/internal/infrastructure/tui"
	"github.com/doeshing/safety-dash/internal/version"
)

func newTUICommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, true)
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{
				Context:       cmd.Context(),
				Service:       container.DashboardService,
				State:         container.NewState(),
				Catalog:       container.Catalog,
				Models:        container.Config.Descriptors(),
				Dataset:       container.Evaluations.Dataset(),
				Section:       container.Config.GetDefaultSection(),
				MarkdownStyle: container.Config.GetMarkdownStyle(),
			})
		},
	}
}

func newDoctorCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and bundled data",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, false)
			if err != nil {
				return err
			}
			if container.DoctorService == nil {
				return fmt.Errorf("doctor service unavailable")
			}
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayVersionInformation(cmd.OutOrStdout())
			return nil
		},
	}
}

func displayVersionInformation(out io.Writer) {
	fmt.Fprintf(out, "safetydash version %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
}
