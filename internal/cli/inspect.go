package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"transition-planner/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a written transition plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("plan: %s (created %s)\n", result.Intent.PlanID, result.Intent.CreatedAt)
	fmt.Printf("releases: %s\n", result.Intent.Releases)
	fmt.Printf("keep: %d install: %d remove: %d\n", result.KeepCount, result.InstallCount, result.RemoveCount)
	fmt.Printf("conflicts: %d\n", len(result.Conflicts))
	for _, record := range result.Conflicts {
		fmt.Printf("- %s %s %s (%s)\n", record.Release, record.Kind, record.Package, record.Origin)
	}
	if len(result.Unaccounted) > 0 {
		fmt.Printf("unaccounted: %s\n", strings.Join(result.Unaccounted, ", "))
	}
	return nil
}
