// Package runner executes playbook tasks strictly in order against one
// appliance session, collecting per-task results and a run summary.
package runner

import (
	"context"
	"time"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/logger"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/module"
	"github.com/oneview-community/ovapply/internal/oneview"
	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

// Resolver maps a module name to a bound module instance.
type Resolver func(name string) (module.Module, error)

// RegistryResolver resolves modules through the global registry, binding
// each one to the given appliance client.
func RegistryResolver(client *oneview.Client) Resolver {
	return func(name string) (module.Module, error) {
		factory, err := module.Get(name)
		if err != nil {
			return nil, err
		}
		return factory(client), nil
	}
}

// Summary aggregates the outcome of a playbook run.
type Summary struct {
	Total       int
	Ok          int
	Changed     int
	WouldChange int
	Failed      int
	Results     []*model.Result
	Duration    time.Duration
}

// OnResult receives each task result as it completes. It may be nil.
type OnResult func(res *model.Result)

// Runner applies playbooks task by task. Tasks run sequentially: later
// tasks may depend on appliance state established by earlier ones.
type Runner struct {
	resolve Resolver
	log     *logger.Logger
}

// New creates a Runner using the given resolver and logger.
func New(resolve Resolver, log *logger.Logger) *Runner {
	return &Runner{resolve: resolve, log: log}
}

// Run executes every task in the playbook. A task failure stops the run
// unless settings.continue_on_error is set; either way the returned
// summary covers all tasks that ran. The returned error is the first
// task failure when the run was aborted by it.
func (r *Runner) Run(ctx context.Context, playbook *config.Playbook, onResult OnResult) (*Summary, error) {
	summary := &Summary{Total: len(playbook.Tasks)}
	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()

	for i := range playbook.Tasks {
		task := &playbook.Tasks[i]

		if err := ctx.Err(); err != nil {
			return summary, ovapplyerrors.NewTaskError(task.ID, err)
		}

		res := r.runTask(ctx, task, playbook.Settings.DryRun)
		summary.Results = append(summary.Results, res)
		summary.count(res)

		if onResult != nil {
			onResult(res)
		}

		if res.Status == model.StatusFailed && !playbook.Settings.ContinueOnError {
			return summary, res.Error
		}
	}

	return summary, nil
}

func (r *Runner) runTask(ctx context.Context, task *config.Task, dryRun bool) *model.Result {
	log := r.log.WithTask(task.ID, task.Module)
	log.Debug("task starting")

	started := time.Now()

	res, err := r.dispatch(ctx, task, dryRun)
	if err != nil {
		wrapped := ovapplyerrors.NewTaskError(task.ID, err)
		log.Error(wrapped, "task failed")
		res = &model.Result{
			Status: model.StatusFailed,
			Msg:    err.Error(),
			Error:  wrapped,
		}
	} else {
		log.Info(res.Msg, "status", res.Status, "changed", res.Changed)
	}

	res.TaskID = task.ID
	res.Duration = time.Since(started)
	res.Timestamp = started
	return res
}

func (r *Runner) dispatch(ctx context.Context, task *config.Task, dryRun bool) (*model.Result, error) {
	mod, err := r.resolve(task.Module)
	if err != nil {
		return nil, err
	}
	if dryRun {
		return mod.DryRun(ctx, task)
	}
	return mod.Run(ctx, task)
}

func (s *Summary) count(res *model.Result) {
	switch res.Status {
	case model.StatusOk:
		s.Ok++
	case model.StatusChanged:
		s.Changed++
	case model.StatusWouldChange:
		s.WouldChange++
	case model.StatusFailed:
		s.Failed++
	}
}
