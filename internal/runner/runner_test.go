package runner

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/logger"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/module"
	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

type fakeModule struct {
	name    string
	runs    int
	dryRuns int
	result  *model.Result
	err     error
}

func (f *fakeModule) Metadata() module.Metadata {
	return module.Metadata{Name: f.name}
}

func (f *fakeModule) States() []string { return []string{"present"} }

func (f *fakeModule) Run(context.Context, *config.Task) (*model.Result, error) {
	f.runs++
	return f.outcome()
}

func (f *fakeModule) DryRun(context.Context, *config.Task) (*model.Result, error) {
	f.dryRuns++
	return f.outcome()
}

func (f *fakeModule) outcome() (*model.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := *f.result
	return &res, nil
}

func resolverFor(modules map[string]*fakeModule) Resolver {
	return func(name string) (module.Module, error) {
		mod, ok := modules[name]
		if !ok {
			return nil, ovapplyerrors.NewModuleError(name, errors.New("no module registered"))
		}
		return mod, nil
	}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return log
}

func playbook(settings config.Settings, tasks ...config.Task) *config.Playbook {
	return &config.Playbook{
		Version:  "1.0.0",
		Name:     "test",
		Settings: settings,
		Tasks:    tasks,
	}
}

func TestRunExecutesTasksInOrder(t *testing.T) {
	t.Parallel()

	first := &fakeModule{name: "time_locale", result: &model.Result{Status: model.StatusChanged, Changed: true, Msg: "updated"}}
	second := &fakeModule{name: "id_pools", result: &model.Result{Status: model.StatusOk, Msg: "noop"}}
	r := New(resolverFor(map[string]*fakeModule{"time_locale": first, "id_pools": second}), testLogger(t))

	var order []string
	summary, err := r.Run(context.Background(), playbook(config.Settings{},
		config.Task{ID: "a", Module: "time_locale", State: "present"},
		config.Task{ID: "b", Module: "id_pools", State: "schema"},
	), func(res *model.Result) { order = append(order, res.TaskID) })
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.Changed)
	require.Equal(t, 1, summary.Ok)
	require.Zero(t, summary.Failed)
	require.Len(t, summary.Results, 2)
	require.NotZero(t, summary.Results[0].Duration)
}

func TestRunStopsAtFirstFailureByDefault(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := &fakeModule{name: "time_locale", err: boom}
	never := &fakeModule{name: "id_pools", result: &model.Result{Status: model.StatusOk}}
	r := New(resolverFor(map[string]*fakeModule{"time_locale": failing, "id_pools": never}), testLogger(t))

	summary, err := r.Run(context.Background(), playbook(config.Settings{},
		config.Task{ID: "a", Module: "time_locale", State: "present"},
		config.Task{ID: "b", Module: "id_pools", State: "schema"},
	), nil)

	require.ErrorIs(t, err, boom)
	var taskErr *ovapplyerrors.TaskError
	require.ErrorAs(t, err, &taskErr)
	require.Equal(t, "a", taskErr.TaskID)

	require.Zero(t, never.runs)
	require.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 1)
	require.Equal(t, model.StatusFailed, summary.Results[0].Status)
}

func TestRunContinuesOnErrorWhenConfigured(t *testing.T) {
	t.Parallel()

	failing := &fakeModule{name: "time_locale", err: errors.New("boom")}
	next := &fakeModule{name: "id_pools", result: &model.Result{Status: model.StatusOk}}
	r := New(resolverFor(map[string]*fakeModule{"time_locale": failing, "id_pools": next}), testLogger(t))

	summary, err := r.Run(context.Background(), playbook(config.Settings{ContinueOnError: true},
		config.Task{ID: "a", Module: "time_locale", State: "present"},
		config.Task{ID: "b", Module: "id_pools", State: "schema"},
	), nil)
	require.NoError(t, err)

	require.Equal(t, 1, next.runs)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 1, summary.Ok)
}

func TestRunDispatchesDryRun(t *testing.T) {
	t.Parallel()

	mod := &fakeModule{name: "time_locale", result: &model.Result{Status: model.StatusWouldChange, Changed: true}}
	r := New(resolverFor(map[string]*fakeModule{"time_locale": mod}), testLogger(t))

	summary, err := r.Run(context.Background(), playbook(config.Settings{DryRun: true},
		config.Task{ID: "a", Module: "time_locale", State: "present"},
	), nil)
	require.NoError(t, err)

	require.Equal(t, 1, mod.dryRuns)
	require.Zero(t, mod.runs)
	require.Equal(t, 1, summary.WouldChange)
}

func TestRunFailsUnknownModule(t *testing.T) {
	t.Parallel()

	r := New(resolverFor(nil), testLogger(t))

	summary, err := r.Run(context.Background(), playbook(config.Settings{},
		config.Task{ID: "a", Module: "nope", State: "present"},
	), nil)

	var modErr *ovapplyerrors.ModuleError
	require.ErrorAs(t, err, &modErr)
	require.Equal(t, 1, summary.Failed)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	mod := &fakeModule{name: "time_locale", result: &model.Result{Status: model.StatusOk}}
	r := New(resolverFor(map[string]*fakeModule{"time_locale": mod}), testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := r.Run(ctx, playbook(config.Settings{},
		config.Task{ID: "a", Module: "time_locale", State: "present"},
	), nil)

	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, mod.runs)
	require.Empty(t, summary.Results)
}
