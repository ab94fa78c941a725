package main

import (
	"fmt"

	"github.com/ruminaider/sonar-select/internal/commands"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := commands.Init(configPath, initForce); err != nil {
			return err
		}
		fmt.Println("✓ Config template written to", configPath)
		fmt.Println("  Fill in sonar_url and token, then run sonar-select.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
