package main

import (
	"os"

	"github.com/classicds/datastructs/cmd"
	"github.com/classicds/datastructs/cmd/demo"
	"github.com/classicds/datastructs/cmd/stress"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(demo.NewDemoCommand())
	rootCmd.AddCommand(stress.NewStressCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
