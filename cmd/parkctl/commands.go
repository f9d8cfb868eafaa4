package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/advier-web/parkmanager-tool-new-sub001"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/render"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

type options struct {
	contentFile string
	locale      string
	out         string
}

var (
	ErrUnknownSolution = errors.New("unknown solution")
	ErrInvalidState    = errors.New("invalid session state")
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "parkctl",
		Short:        "Inspect Parkmanager content and render its documents",
		Version:      app.Version,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.contentFile, "content-file", "",
		"YAML content file (defaults to CONTENT_FILE, then Contentful)")
	flags.StringVar(&opts.locale, "locale", "",
		"content locale (defaults to DEFAULT_LOCALE)")
	flags.StringVarP(&opts.out, "out", "o", "",
		"output file (defaults to stdout)")

	root.AddCommand(
		newContentCmd(opts),
		newFactsheetCmd(opts),
		newSummaryCmd(opts),
	)
	return root
}

func newContentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Export the content of one locale as YAML",
		Long: "Fetches content from the configured source and writes it " +
			"in the format the content file source reads",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := opts.loadContent(cmd)
			if err != nil {
				return err
			}
			return opts.write(cmd, func(w io.Writer) error {
				return cms.EncodeContent(w, content)
			})
		},
	}
}

func newFactsheetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factsheet <solution-id>",
		Short: "Render the PDF factsheet of a solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := opts.loadContent(cmd)
			if err != nil {
				return err
			}
			id := api.SolutionID(args[0])
			sol, ok := content.Solution(id)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownSolution, id)
			}
			data, err := render.Factsheet(sol,
				wizard.VariantsFor(sol, content),
				render.Options{
					Created: content.FetchedAt,
					Locale:  content.Locale,
				},
			)
			if err != nil {
				return err
			}
			return opts.writeBytes(cmd, data)
		},
	}
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <state.json>",
		Short: "Render the PDF summary of an exported session state",
		Long: "Reads a session state, as returned by the session " +
			"endpoints, and renders its summary",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := readState(args[0])
			if err != nil {
				return err
			}
			content, err := opts.loadContent(cmd)
			if err != nil {
				return err
			}
			data, err := render.Summary(st, content)
			if err != nil {
				return err
			}
			return opts.writeBytes(cmd, data)
		},
	}
}

func (o *options) config() (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if o.contentFile != "" {
		cfg.ContentFile = o.contentFile
	}
	if o.locale != "" {
		cfg.DefaultLocale = o.locale
	}
	return cfg, nil
}

func (o *options) loadContent(cmd *cobra.Command) (*api.Content, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return cms.NewFromConfig(cfg).Content(cmd.Context(), cfg.DefaultLocale)
}

func (o *options) writeBytes(cmd *cobra.Command, data []byte) error {
	return o.write(cmd, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func (o *options) write(cmd *cobra.Command, fn func(io.Writer) error) error {
	if o.out == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// readState accepts either a bare session state or a session response
func readState(path string) (*api.WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res api.SessionResponse
	if err := json.Unmarshal(data, &res); err == nil && res.State != nil {
		return res.State, nil
	}

	st := api.NewWizardState()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if st.ID == "" {
		return nil, ErrInvalidState
	}
	return st, nil
}
