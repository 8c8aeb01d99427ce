package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oneview-community/ovapply/internal/appliance"
	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/gitsource"
	"github.com/oneview-community/ovapply/internal/logger"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/oneview"
	"github.com/oneview-community/ovapply/internal/runner"
	"github.com/oneview-community/ovapply/internal/tui"
)

type applyOptions struct {
	ConfigPath     string
	GitURL         string
	GitRef         string
	GitPath        string
	AppliancePath  string
	DryRun         bool
	Verbose        bool
	NonInteractive bool
}

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a playbook against the appliance",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose
			opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))

			if err := validateApplyOptions(opts); err != nil {
				return err
			}

			return applyCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to playbook file")
	cmd.Flags().StringVar(&opts.GitURL, "git-url", "", "Clone URL of a repository holding the playbook")
	cmd.Flags().StringVar(&opts.GitRef, "git-ref", "", "Branch or tag to check out")
	cmd.Flags().StringVar(&opts.GitPath, "git-path", "playbook.yml", "Playbook path inside the repository")
	cmd.Flags().StringVar(&opts.AppliancePath, "appliance-config", "", "Appliance connection file (defaults to ONEVIEW_* environment)")

	return cmd
}

func validateApplyOptions(opts applyOptions) error {
	if opts.ConfigPath == "" && opts.GitURL == "" {
		return fmt.Errorf("either --config or --git-url is required")
	}
	if opts.ConfigPath != "" && opts.GitURL != "" {
		return fmt.Errorf("--config and --git-url are mutually exclusive")
	}
	return nil
}

func runApply(opts applyOptions) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	playbook, err := loadPlaybook(ctx, opts)
	if err != nil {
		return err
	}

	// Flags override playbook settings, never the other way around.
	playbook.Settings.DryRun = playbook.Settings.DryRun || opts.DryRun

	level := logger.LevelInfo
	if opts.Verbose || playbook.Settings.Verbose {
		level = logger.LevelDebug
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	cfg, err := appliance.Load(opts.AppliancePath)
	if err != nil {
		return err
	}

	client := oneview.NewClient(cfg)
	if err := client.Login(ctx); err != nil {
		return err
	}
	defer client.Logout(context.Background()) //nolint:errcheck

	r := runner.New(runner.RegistryResolver(client), log)

	if opts.NonInteractive {
		return runPlain(ctx, r, playbook)
	}
	return runInteractive(ctx, r, playbook)
}

func loadPlaybook(ctx context.Context, opts applyOptions) (*config.Playbook, error) {
	path := opts.ConfigPath
	if opts.GitURL != "" {
		fetched, cleanup, err := gitsource.Source{
			URL:  opts.GitURL,
			Ref:  opts.GitRef,
			Path: opts.GitPath,
		}.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		path = fetched
	}

	return loadLocalPlaybook(path)
}

func runPlain(ctx context.Context, r *runner.Runner, playbook *config.Playbook) error {
	state := tui.NewModel(playbook)

	summary, runErr := r.Run(ctx, playbook, func(res *model.Result) {
		applyTuiMessage(&state, tui.TaskCompleteMsg{Result: res})
	})
	applyTuiMessage(&state, tui.RunDoneMsg{Summary: summary, Err: runErr})

	fmt.Fprintln(os.Stdout, state.View())
	return runErr
}

func runInteractive(ctx context.Context, r *runner.Runner, playbook *config.Playbook) error {
	state := tui.NewModel(playbook)
	program := tea.NewProgram(state)

	go func() {
		next := 0
		sendStart := func() {
			if next < len(playbook.Tasks) {
				program.Send(tui.TaskStartMsg{ID: playbook.Tasks[next].ID})
			}
		}

		sendStart()
		summary, runErr := r.Run(ctx, playbook, func(res *model.Result) {
			program.Send(tui.TaskCompleteMsg{Result: res})
			next++
			sendStart()
		})
		program.Send(tui.RunDoneMsg{Summary: summary, Err: runErr})
	}()

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Cancelled() {
		return fmt.Errorf("run cancelled")
	}

	if summary := finalSummary(final); summary != nil && summary.Failed > 0 {
		return fmt.Errorf("%d task(s) failed", summary.Failed)
	}
	return nil
}

func finalSummary(final tea.Model) *runner.Summary {
	if m, ok := final.(tui.Model); ok {
		return m.Summary()
	}
	return nil
}

func applyTuiMessage(state *tui.Model, msg tea.Msg) {
	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
