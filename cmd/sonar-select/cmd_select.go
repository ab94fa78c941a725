package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/sonar-select/internal/commands"
	"github.com/spf13/cobra"
)

var (
	selectFilter string
	selectSort   string
	selectAll    bool
)

func runSelect(cmd *cobra.Command, args []string) error {
	filter := selectFilter
	if len(args) > 0 {
		filter = args[0]
	}

	result, err := commands.Select(cmd.Context(), commands.SelectOptions{
		Options: commands.Options{
			ConfigPath: configPath,
			Filter:     filter,
			Sort:       selectSort,
			Debug:      debugFlag,
			Stdout:     os.Stdout,
			Stderr:     os.Stderr,
		},
		All:    selectAll,
		Prompt: promptProjects,
	})
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Println("Cancelled. Nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}

	if result.Outcome != commands.OutcomeSaved {
		fmt.Println(result.Outcome.Describe())
		return nil
	}
	fmt.Printf("✓ %s Written to %s\n", result.Summary(), configPath)
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&selectFilter, "filter", "f", "", "Only show projects whose key or name contains this text")
	rootCmd.Flags().StringVarP(&selectSort, "sort", "s", "", "Sort policy: default, component_branch or group_component_branch")
	rootCmd.Flags().BoolVar(&selectAll, "all", false, "Select every visible project without prompting")
}
