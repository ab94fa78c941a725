package main

import (
	"github.com/charmbracelet/huh"
	"github.com/ruminaider/sonar-select/internal/commands"
)

// promptHeight is the number of rows shown at once.
const promptHeight = 15

// projectOptions converts choices into multi-select options, keeping order
// and preselection.
func projectOptions(choices []commands.Choice) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Key).Selected(c.Preselected))
	}
	return options
}

// promptProjects asks the operator which projects to monitor.
func promptProjects(choices []commands.Choice) ([]string, error) {
	var selected []string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select the projects to monitor:").
				Description("Space to toggle, / to search, Enter to confirm").
				Options(projectOptions(choices)...).
				Height(promptHeight).
				Value(&selected),
		),
	).Run()
	if err != nil {
		return nil, err
	}
	return selected, nil
}
