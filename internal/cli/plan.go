package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"transition-planner/internal/app"
	"transition-planner/internal/types"
)

type planOptions struct {
	Events      string
	Installed   string
	Releases    []string
	AllReleases bool
	OutputDir   string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve package events release by release and write the transition plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Events, "events", "", "Package event data file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.Installed, "installed", "", "Installed package list, one name per line")
	cmd.Flags().StringSliceVar(&opts.Releases, "release", nil, "Release to plan, e.g. 8.1 (repeatable)")
	cmd.Flags().BoolVar(&opts.AllReleases, "all-releases", false, "Plan every release present in the event data")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")

	_ = viper.BindPFlag("events", cmd.Flags().Lookup("events"))
	_ = viper.BindPFlag("installed", cmd.Flags().Lookup("installed"))
	_ = viper.BindPFlag("releases", cmd.Flags().Lookup("release"))
	_ = viper.BindPFlag("all_releases", cmd.Flags().Lookup("all-releases"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runPlan(cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(commandContext(cmd), app.PlanRequest{
		EventsPath:    resolveString(cmd, opts.Events, "events", "events"),
		InstalledPath: resolveString(cmd, opts.Installed, "installed", "installed"),
		Releases:      resolveStrings(cmd, opts.Releases, "releases", "release"),
		AllReleases:   resolveBool(cmd, opts.AllReleases, "all_releases", "all-releases"),
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("plan: %s\n", result.PlanID)
	fmt.Printf("releases: %s\n", types.FormatReleases(result.Releases))
	fmt.Printf("keep: %d install: %d remove: %d\n", result.Keep, result.Install, result.Remove)
	fmt.Printf("conflicts: %d unaccounted: %d\n", result.Conflicts, result.Unaccounted)
	fmt.Printf("output: %s\n", result.OutputDir)
	return nil
}
