package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/safety-dash/internal/application/dashboard"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/infrastructure/view"
	"github.com/doeshing/safety-dash/internal/ports"
)

func newShowCommand(s *session) *cobra.Command {
	slugs := make([]string, 0, len(domain.Sections()))
	for _, section := range domain.Sections() {
		slugs = append(slugs, section.Slug())
	}

	return &cobra.Command{
		Use:       "show [section]",
		Short:     "Render one dashboard section",
		Long:      "Render one dashboard section. Sections: " + strings.Join(slugs, ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: slugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, false)
			if err != nil {
				return err
			}
			section := container.Config.GetDefaultSection()
			if len(args) == 1 {
				if section, err = domain.ParseSection(args[0]); err != nil {
					return err
				}
			}

			state := container.NewState()
			if credential, err := resolveCredential(container.Config, os.Getenv, nil); err == nil {
				state.SetCredential(credential.Reveal())
			}
			testing := view.Testing{CanTest: state.CanTest()}
			if entry, err := container.DashboardService.Prompt(state.Selection()); err == nil {
				testing.Prompt = entry
			}

			renderer := view.New(container.Config.GetMarkdownStyle(), terminalWidth())
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(view.Input{
				Section: section,
				Dataset: container.Evaluations.Dataset(),
				Testing: testing,
			}))
			return nil
		},
	}
}

func newPromptsCommand(s *session) *cobra.Command {
	var (
		category string
		full     bool
	)
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "List the sample prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, false)
			if err != nil {
				return err
			}
			categories := container.Catalog.Categories()
			if category != "" {
				parsed, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []domain.Category{parsed}
			}
			renderPrompts(cmd.OutOrStdout(), container.Catalog, categories, full)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one category (safe|unsafe)")
	cmd.Flags().BoolVar(&full, "full", false, "Show prompt text")
	return cmd
}

func newModelsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List configured models",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, false)
			if err != nil {
				return err
			}
			renderModels(cmd.OutOrStdout(), container.Config)
			return nil
		},
	}
}

func newTestCommand(s *session, prompter ports.CredentialPrompter) *cobra.Command {
	var (
		model    string
		category string
		label    string
	)
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send one sample prompt to the completion API",
		Long: "Send one sample prompt to the completion API and print the response with its metrics.\n" +
			"The API key is read from $SAFETYDASH_API_KEY or $OPENAI_API_KEY, or prompted for without echo.",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.load(cmd, false)
			if err != nil {
				return err
			}

			state := container.NewState()
			if model != "" {
				def, found := container.Config.FindModelByName(model)
				if !found {
					return fmt.Errorf("model %s not found (see 'safetydash models')", model)
				}
				state.SetModel(def.Descriptor())
			}
			if category != "" || label != "" {
				if err := selectPrompt(container.Catalog, state, category, label); err != nil {
					return err
				}
			}

			credential, err := resolveCredential(container.Config, os.Getenv, prompter)
			if err != nil {
				return err
			}
			state.SetCredential(credential.Reveal())

			return runTest(cmd.Context(), cmd, container.DashboardService, state.Selection(), container.Config.GetMarkdownStyle())
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model display name (default from config)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Prompt category (safe|unsafe)")
	cmd.Flags().StringVarP(&label, "prompt", "p", "", "Prompt label within the category")
	return cmd
}

// selectPrompt applies --category/--prompt; a category alone selects its first prompt.
func selectPrompt(catalog ports.PromptCatalog, state *dashboard.State, category, label string) error {
	cat := state.Category()
	if category != "" {
		parsed, err := domain.ParseCategory(category)
		if err != nil {
			return err
		}
		cat = parsed
	}
	if label == "" {
		prompts := catalog.PromptsFor(cat)
		if len(prompts) == 0 {
			return fmt.Errorf("no prompts in %s", cat.Title())
		}
		label = prompts[0].Label
	}
	if _, found := catalog.Lookup(cat, label); !found {
		return fmt.Errorf("prompt %q not found in %s (see 'safetydash prompts')", label, cat.Title())
	}
	state.SetPromptSelection(cat, label)
	return nil
}

// resolveCredential checks the configured environment variables first and
// falls back to an interactive prompt.
func resolveCredential(cfg domain.Config, getenv func(string) string, prompter ports.CredentialPrompter) (domain.Credential, error) {
	names := cfg.CredentialEnvVars()
	for _, name := range names {
		if credential := domain.NewCredential(getenv(name)); !credential.Empty() {
			return credential, nil
		}
	}
	if prompter == nil || !prompter.Enabled() {
		return "", &domain.AuthError{Err: domain.ErrMissingCredential, Message: "set $" + names[0]}
	}
	credential, err := prompter.ReadCredential("API key: ")
	if err != nil {
		return "", err
	}
	if credential.Empty() {
		return "", &domain.AuthError{Err: domain.ErrMissingCredential}
	}
	return credential, nil
}

func runTest(ctx context.Context, cmd *cobra.Command, svc *dashboard.Service, sel dashboard.Selection, style string) error {
	out := cmd.OutOrStdout()
	renderer := view.New(style, terminalWidth())

	entry, err := svc.Prompt(sel)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s / %s on %s\n", sel.Category.Title(), entry.Label, sel.Model.DisplayName)
	fmt.Fprintf(out, "Prompt: %s\n\n", entry.Text)

	spinner := NewSpinner(cmd.ErrOrStderr(), "Testing prompt...")
	if isTerminal(os.Stderr) {
		spinner.Start()
	}
	report, err := svc.TestPrompt(ctx, sel)
	spinner.Stop()

	if err != nil {
		fmt.Fprint(out, view.RenderError(err.Error()))
		return fmt.Errorf("prompt test failed (%s)", domain.ErrorKind(err))
	}
	fmt.Fprint(out, renderer.RenderReport(report))
	return nil
}
