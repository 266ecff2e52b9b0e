// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classicds/datastructs/cmd/util"
	"github.com/classicds/datastructs/internal/config"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with DATASTRUCTS, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DATASTRUCTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/datastructs", "$HOME/.datastructs", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "datastructs",
		Short: "Demonstrate classic linear and tree data structures",
		Long: `Demonstrate classic linear and tree data structures.

Each demo builds a container, runs a fixed sequence of operations on it and
prints what every operation returned.`,
		SilenceUsage: true,
	}

	bindRootFlags(cmd)

	return cmd
}

func bindRootFlags(command *cobra.Command) {
	defaultConfig := config.DefaultConfig()
	flags := command.PersistentFlags()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in ('text' or 'json')")
	util.MustBindPFlag("log.format", flags.Lookup("log-format"))
	util.MustBindEnv("log.format", "DATASTRUCTS_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use ('none', 'debug', 'info', 'warn' or 'error')")
	util.MustBindPFlag("log.level", flags.Lookup("log-level"))
	util.MustBindEnv("log.level", "DATASTRUCTS_LOG_LEVEL")

	flags.StringP("output", "o", defaultConfig.Output, "the format to print results in ('text', 'json' or 'yaml')")
	util.MustBindPFlag("output", flags.Lookup("output"))
	util.MustBindEnv("output", "DATASTRUCTS_OUTPUT")
}
