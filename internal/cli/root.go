// Package cli implements the festival-bands command line.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/handiism/festival-bands/internal/config"
	"github.com/handiism/festival-bands/internal/controller"
	"github.com/handiism/festival-bands/internal/festival"
	"github.com/handiism/festival-bands/internal/filter"
	"github.com/handiism/festival-bands/internal/http"
	ioutils "github.com/handiism/festival-bands/internal/io"
	"github.com/handiism/festival-bands/internal/logging"
	"github.com/handiism/festival-bands/internal/render"
	"github.com/handiism/festival-bands/internal/tui"
	"github.com/spf13/cobra"
)

// options holds the parsed command line flags.
type options struct {
	configPath  string
	dataset     string
	format      string
	output      string
	logLevel    string
	showOptions bool
	criteria    filter.Criteria
}

// NewRootCommand builds the festival-bands command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "festival-bands",
		Short: "Search and filter the festival band list.",
		Long: `festival-bands loads the festival band dataset and prints the bands matching
the given search term, date, category and venue.

Run "festival-bands tui" for the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings, opts, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/festival-bands/config.json)")
	flags.StringVar(&opts.dataset, "dataset", "", "dataset URL or file path (overrides config)")
	flags.StringVarP(&opts.logLevel, "loglevel", "l", "", "Set log level. Available: debug, info, warn, error, fatal")

	rootCmd.Flags().StringVarP(&opts.criteria.Search, "search", "s", "", "case-insensitive search in name and description")
	rootCmd.Flags().StringVarP(&opts.criteria.Date, "date", "d", "", "day token, e.g. TI")
	rootCmd.Flags().StringVarP(&opts.criteria.Category, "category", "c", "", "exact category, e.g. Rock")
	rootCmd.Flags().StringVarP(&opts.criteria.Venue, "venue", "v", "", "venue name, case-insensitive")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text or html (overrides config)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	rootCmd.Flags().BoolVar(&opts.showOptions, "options", false, "print the available dates, categories and venues")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Browse the band list interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return tui.Run(settings)
		},
	})

	return rootCmd
}

// Execute runs the root command and logs any error.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		logging.Log.Error(err)
		return err
	}
	return nil
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.dataset != "" {
		settings.Dataset = opts.dataset
	}
	if opts.format != "" {
		settings.OutputFormat = opts.format
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}

	logging.Log.SetOutput(cmd.ErrOrStderr())
	if err := logging.SetLogLevel(settings.LogLevel); err != nil {
		return nil, err
	}
	return settings, nil
}

// run loads the dataset once, applies the criteria and writes the result.
func run(ctx context.Context, settings *config.Settings, opts *options, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		text *render.Text
		page *render.HTML
		r    render.Renderer
	)
	switch settings.OutputFormat {
	case config.FormatText, "":
		text = render.NewText(settings.AccentColor)
		r = text
	case config.FormatHTML:
		page = render.NewHTML(settings.Title)
		r = page
	default:
		return fmt.Errorf("unknown output format %q", settings.OutputFormat)
	}

	client := http.NewClient(
		http.WithTimeout(time.Duration(settings.RequestTimeout*float64(time.Second))),
		http.WithUserAgent(settings.UserAgent),
	)
	loader := festival.NewLoader(settings.Dataset, client, logging.Progress(logging.Log))

	ctl := controller.New(r)
	loadErr := ctl.Load(ctx, loader)
	if loadErr == nil {
		ctl.SetCriteria(opts.criteria)
	}

	var out bytes.Buffer
	switch {
	case opts.showOptions && loadErr == nil:
		out.WriteString(render.FormatOptions(ctl.Catalog().Options))
	case page != nil:
		if err := page.WritePage(&out, ctl.Criteria()); err != nil {
			return err
		}
		out.WriteString("\n")
	default:
		out.WriteString(text.String())
		out.WriteString("\n")
	}

	if err := write(ctx, opts.output, stdout, out.Bytes()); err != nil {
		return err
	}
	if loadErr != nil {
		return loadErr
	}

	logging.Log.WithField("visible", len(ctl.Visible())).Debug("rendered band list")
	return nil
}

func write(ctx context.Context, path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.Log.Infof("Wrote %s", path)
	return nil
}
