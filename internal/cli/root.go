package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"TextSidekick/internal/app"
	"TextSidekick/internal/config"
	"TextSidekick/internal/logging"
	"TextSidekick/internal/render"
)

type rootOptions struct {
	configPath string
	logLevel   string
	engine     string
	plain      bool

	fs       afero.Fs
	app      *app.Application
	renderer *render.Renderer
	logClose io.Closer
}

// NewRootCommand builds the sidekick command tree. A nil fs means the OS filesystem.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	cmd, _ := newRootCommand(fs)
	return cmd
}

func newRootCommand(fs afero.Fs) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:   "sidekick",
		Short: "Offline summaries and grammar suggestions for English text",
		Long: `Sidekick reads a document from a file or stdin and either picks its most
salient sentences or suggests style fixes with an automatic rewrite.
HTML input is reduced to its main text first.

Available commands:
  summarize - extractive summary as bullets
  correct   - grammar suggestions and a rewrite
  bullets   - turn lines into a bulleted list`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $SIDEKICK_CONFIG)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&opts.engine, "engine", "", "analysis strategy: local or remote")
	flags.BoolVar(&opts.plain, "plain", false, "disable boxed output")

	cmd.AddCommand(newSummarizeCommand(opts))
	cmd.AddCommand(newCorrectCommand(opts))
	cmd.AddCommand(newBulletsCommand(opts))
	return cmd, opts
}

// Execute runs the command tree against the OS filesystem and releases the
// log file afterwards.
func Execute(ctx context.Context) error {
	cmd, opts := newRootCommand(nil)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, opts.close())
}

func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Load(o.configPath)
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.engine != "" {
		cfg.Engine.Strategy = o.engine
	}
	if o.plain {
		cfg.Output.Style = render.StylePlain
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logClose := logging.New(cfg.Logging)
	o.logClose = logClose
	application, err := app.New(cfg, logger, o.fs)
	if err != nil {
		return err
	}

	o.app = application
	o.renderer = render.New(cmd.OutOrStdout(), cfg.Output.Style, cfg.Output.Width)
	return nil
}

func (o *rootOptions) close() error {
	if o.logClose == nil {
		return nil
	}
	err := o.logClose.Close()
	o.logClose = nil
	return err
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
