// Package demo contains the demo command, which replays a scripted sequence of
// operations on each container.
package demo

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/classicds/datastructs/cmd/util"
	"github.com/classicds/datastructs/pkg/logger"
)

// NewDemoCommand returns the demo command with one subcommand per container.
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted sequence of operations on a container",
		Long:  "Run a scripted sequence of operations on a container and print what each operation returned.",
	}

	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		cmd.AddCommand(newScenarioCommand(name, Scenarios[name]))
	}

	return cmd
}

func newScenarioCommand(name string, scenario Scenario) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Run the " + name + " demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := util.ReadConfig()
			if err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return Render(cmd.OutOrStdout(), scenario(log), cfg.Output)
		},
	}
}
