package commands

import "context"

// ListResult is the non-interactive view of the catalog.
type ListResult struct {
	Fetched int
	Choices []Choice
}

// List runs the fetch, filter and sort stages and returns what Select would
// offer, without prompting or writing anything.
func List(ctx context.Context, opts Options) (*ListResult, error) {
	s, err := open(opts)
	if err != nil {
		return nil, err
	}

	entries, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Fetched: len(entries),
		Choices: s.choices(s.view(entries, opts.Filter)),
	}, nil
}
