package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/safety-dash/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// session builds the container on first use so that persistent flags are
// parsed before the config is read.
type session struct {
	opts      Options
	container *app.Container
}

func (s *session) load(cmd *cobra.Command, interactive bool) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	container, err := app.BuildContainer(cmd.Context(), app.Options{
		ConfigPath:  s.opts.ConfigPath,
		Verbose:     s.opts.Verbose,
		Interactive: interactive,
	})
	if err != nil {
		return nil, err
	}
	s.container = container
	return container, nil
}

func (s *session) close() error {
	if s.container == nil {
		return nil
	}
	return s.container.Close()
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	s := &session{opts: opts}
	tuiCmd := newTUICommand(s)

	root := &cobra.Command{
		Use:   "safetydash",
		Short: "AI safety evaluation dashboard",
		Long:  "safetydash shows published AI safety evaluation results and lets you test sample prompts against a chat-completion API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tuiCmd.RunE(cmd, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)

	root.PersistentFlags().StringVar(&s.opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ~/.safetydash/config.yaml)")
	root.PersistentFlags().BoolVarP(&s.opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.AddCommand(tuiCmd)
	root.AddCommand(newShowCommand(s))
	root.AddCommand(newPromptsCommand(s))
	root.AddCommand(newModelsCommand(s))
	root.AddCommand(newTestCommand(s, NewPrompter(nil, nil)))
	root.AddCommand(newDoctorCommand(s))
	root.AddCommand(newVersionCommand())
	return root
}
