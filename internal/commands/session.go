package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ruminaider/sonar-select/internal/catalog"
	"github.com/ruminaider/sonar-select/internal/colors"
	"github.com/ruminaider/sonar-select/internal/config"
	"github.com/ruminaider/sonar-select/internal/selection"
	"github.com/ruminaider/sonar-select/internal/sonar"
	"golang.org/x/text/language"
)

// Options are the settings shared by Select and List.
type Options struct {
	ConfigPath string
	Filter     string              // substring matched against key and name
	Sort       string              // overrides the config's sort policy when set
	Debug      bool                // forces debug logging on
	Getenv     func(string) string // nil = os.Getenv
	Stdout     io.Writer           // progress messages; nil discards
	Stderr     io.Writer           // log output; nil discards
}

// Choice is one project offered to the operator.
type Choice struct {
	Label       string // numbered, colored display label
	Key         string
	Preselected bool // saved in the config before this run
}

// session is a loaded config plus the client built from it.
type session struct {
	path   string
	file   config.Config // as read from disk; this is what gets saved
	cfg    config.Config // file + env + flag overrides
	policy catalog.SortPolicy
	locale language.Tag
	client *sonar.Client
	out    io.Writer
	log    *slog.Logger
}

func open(opts Options) (*session, error) {
	file, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg := file
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	config.ApplyEnv(&cfg, getenv)
	if opts.Sort != "" {
		cfg.Sort = catalog.SortPolicy(opts.Sort)
	}
	if opts.Debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := catalog.ParseSortPolicy(string(cfg.Sort))
	locale, _ := cfg.LocaleTag()

	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}
	logger := newLogger(opts.Stderr, cfg.Debug)
	if unknown := cfg.Colors.Unknown(); len(unknown) > 0 {
		logger.Warn("unknown colors are ignored", "colors", unknown, "supported", colors.Names())
	}
	logger.Debug("config loaded", "path", opts.ConfigPath, "sort", policy, "locale", locale, "saved", len(file.Projects))

	return &session{
		path:   opts.ConfigPath,
		file:   file,
		cfg:    cfg,
		policy: policy,
		locale: locale,
		client: sonar.New(cfg.SonarURL, cfg.Token, logger),
		out:    out,
		log:    logger,
	}, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// fetch downloads the catalog and reports its size.
func (s *session) fetch(ctx context.Context) ([]catalog.Entry, error) {
	fmt.Fprintln(s.out, "Fetching projects from SonarQube...")
	entries, err := s.client.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	fmt.Fprintf(s.out, "%d projects found.\n", len(entries))
	return entries, nil
}

// view applies the filter and sort stages.
func (s *session) view(entries []catalog.Entry, term string) []catalog.Entry {
	visible := catalog.Sort(catalog.Filter(entries, term), s.policy, s.locale)
	s.log.Debug("view built", "filter", term, "visible", len(visible), "total", len(entries))
	return visible
}

// choices decorates the visible entries and marks the saved ones.
func (s *session) choices(visible []catalog.Entry) []Choice {
	saved := selection.NewSet(s.file.Projects)
	out := make([]Choice, 0, len(visible))
	for i, e := range visible {
		out = append(out, Choice{
			Label:       colors.Tag(catalog.Label(i, e), e.Key, s.cfg.Colors),
			Key:         e.Key,
			Preselected: saved.Has(e.Key),
		})
	}
	return out
}
