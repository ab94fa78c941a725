package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruminaider/sonar-select/internal/catalog"
	"github.com/ruminaider/sonar-select/internal/config"
	"github.com/ruminaider/sonar-select/internal/selection"
)

// PromptFunc shows choices to the operator and returns the keys left checked.
type PromptFunc func(choices []Choice) ([]string, error)

// ErrNoPrompt is returned when Select needs to ask but has no prompt.
var ErrNoPrompt = errors.New("no prompt available; use --all for non-interactive selection")

// Outcome tells how a Select run ended.
type Outcome int

const (
	// OutcomeSaved means the reconciled selection was written.
	OutcomeSaved Outcome = iota
	// OutcomeEmptyCatalog means the server returned no projects.
	OutcomeEmptyCatalog
	// OutcomeEmptyFilter means no project matched the filter.
	OutcomeEmptyFilter
)

// SelectOptions configures Select.
type SelectOptions struct {
	Options
	All    bool       // select every visible project without prompting
	Prompt PromptFunc // required unless All is set
}

// SelectResult describes a Select run.
type SelectResult struct {
	Outcome  Outcome
	Fetched  int      // projects returned by the server
	Visible  int      // projects shown after filtering
	Kept     []string // saved projects carried over because they were not visible
	Selected []string // the selection written to the config
}

// Select fetches the catalog, lets the operator choose among the visible
// projects and saves the reconciled selection.
//
// Saved projects hidden by the filter are kept. The config file is written
// once, at the end, and only if every earlier step succeeded.
func Select(ctx context.Context, opts SelectOptions) (*SelectResult, error) {
	if !opts.All && opts.Prompt == nil {
		return nil, ErrNoPrompt
	}

	s, err := open(opts.Options)
	if err != nil {
		return nil, err
	}

	entries, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	result := &SelectResult{Fetched: len(entries)}
	if len(entries) == 0 {
		result.Outcome = OutcomeEmptyCatalog
		return result, nil
	}

	visible := s.view(entries, opts.Filter)
	result.Visible = len(visible)
	if len(visible) == 0 {
		result.Outcome = OutcomeEmptyFilter
		return result, nil
	}

	visibleKeys := catalog.Keys(visible)
	var chosen []string
	if opts.All {
		chosen = visibleKeys
	} else {
		chosen, err = opts.Prompt(s.choices(visible))
		if err != nil {
			return nil, err
		}
	}

	final := selection.Reconcile(s.file.Projects, visibleKeys, chosen)
	s.log.Debug("selection reconciled", "saved", len(s.file.Projects), "chosen", len(chosen), "final", len(final))

	if err := config.SaveProjects(s.path, final); err != nil {
		return nil, err
	}

	result.Outcome = OutcomeSaved
	result.Kept = selection.Hidden(s.file.Projects, visibleKeys)
	result.Selected = final
	return result, nil
}

// Describe returns the line printed for an empty outcome.
func (o Outcome) Describe() string {
	switch o {
	case OutcomeEmptyCatalog:
		return "No projects were returned by SonarQube."
	case OutcomeEmptyFilter:
		return "No projects match the filter."
	default:
		return ""
	}
}

// Summary returns a one-line description of a saved result.
func (r *SelectResult) Summary() string {
	if len(r.Kept) == 0 {
		return fmt.Sprintf("Saved %d project(s).", len(r.Selected))
	}
	return fmt.Sprintf("Saved %d project(s), including %d hidden by the filter.", len(r.Selected), len(r.Kept))
}
