package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/sonar-select/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "sonar-select [filter]",
	Short: "Choose the SonarQube projects shown on the quality dashboard",
	Long: "sonar-select downloads the project catalog from SonarQube, lets you tick the projects to monitor " +
		"and saves the selection to the dashboard config file. Saved projects hidden by a filter are kept.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelect,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sonar-select %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", paths.ConfigFile(), "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log API calls and unexpected responses")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}
