// Package cli implements the suggest command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"catering-suggest/internal/catalog"
	"catering-suggest/internal/config"
	"catering-suggest/internal/estimator"
	"catering-suggest/internal/menu"
	"catering-suggest/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrNoText is returned when neither arguments nor stdin carry a description.
var ErrNoText = errors.New("no event description given")

type options struct {
	catalogURL     string
	catalogTimeout time.Duration
	menuFile       string
	jsonOutput     bool
	logLevel       string
}

// NewRootCommand builds the suggest command wired to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "suggest [description]",
		Short: "Suggest a catering menu and cost estimate for an event",
		Long: `Classify a free-form Hebrew event description into a catering menu,
extract the number of participants and estimate quantities and cost
against the live product catalog.

Examples:
  # Description as arguments
  suggest "הרמת כוסית ל-45 איש, עדיפות לפרווה"

  # Description from stdin, JSON output
  echo "ישיבת צוות ל-12 משתתפים" | suggest --json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, stdin)
			if err != nil {
				return err
			}

			logger := config.NewLoggerTo(stderr, config.LoggerConfig{Level: opts.logLevel, Format: "console"})
			return run(cmd.Context(), opts, text, stdout, stderr, logger)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.catalogURL, "catalog-url", catalog.DefaultURL, "product catalog endpoint")
	flags.DurationVar(&opts.catalogTimeout, "catalog-timeout", 10*time.Second, "catalog request timeout")
	flags.StringVar(&opts.menuFile, "menu-file", "", "YAML keyword table (defaults to the built-in table)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print the suggestion as JSON")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, opts options, text string, stdout, stderr io.Writer, logger zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	table := menu.DefaultTable()
	if opts.menuFile != "" {
		var err error
		table, err = menu.NewFileLoader(logger).Load(ctx, opts.menuFile)
		if err != nil {
			return fmt.Errorf("failed to load menu table: %w", err)
		}
	}

	store := catalog.NewStore(catalog.NewHTTPSource(opts.catalogURL, opts.catalogTimeout, logger), logger)
	// A failed load is surfaced as the catalog warning on the response.
	_, _ = store.Refresh(ctx)

	svc := service.NewSuggestionService(store, menu.NewClassifier(table), estimator.New(estimator.DefaultConfig()), logger)

	resp, err := svc.Generate(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to generate suggestion: %w", err)
	}

	if resp.Warning != "" {
		fmt.Fprintln(stderr, resp.Warning)
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	_, err = fmt.Fprintln(stdout, resp.Text)
	return err
}

func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin == nil {
		return "", ErrNoText
	}

	data, err := io.ReadAll(io.LimitReader(stdin, 64<<10))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
