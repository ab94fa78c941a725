package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/sonar-select/internal/commands"
	"github.com/spf13/cobra"
)

var (
	listFilter string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "Print the projects that would be offered, marking saved ones",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := listFilter
		if len(args) > 0 {
			filter = args[0]
		}

		result, err := commands.List(cmd.Context(), commands.Options{
			ConfigPath: configPath,
			Filter:     filter,
			Sort:       listSort,
			Debug:      debugFlag,
			Stdout:     os.Stdout,
			Stderr:     os.Stderr,
		})
		if err != nil {
			return err
		}

		if len(result.Choices) == 0 {
			fmt.Println("No projects to show.")
			return nil
		}
		fmt.Println()
		for _, line := range listLines(result.Choices) {
			fmt.Println(line)
		}
		return nil
	},
}

// listLines renders one "[x] label" line per choice.
func listLines(choices []commands.Choice) []string {
	lines := make([]string, 0, len(choices))
	for _, c := range choices {
		check := "[ ]"
		if c.Preselected {
			check = "[x]"
		}
		lines = append(lines, fmt.Sprintf("  %s %s", check, c.Label))
	}
	return lines
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Only show projects whose key or name contains this text")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort policy: default, component_branch or group_component_branch")
}
