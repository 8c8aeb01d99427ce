// Package timelocale reconciles the appliance time and locale
// configuration, a singleton resource that only supports the "present"
// state: desired properties are merged into the current configuration and
// committed when they diverge.
package timelocale

import (
	"context"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/module"
	"github.com/oneview-community/ovapply/internal/oneview"
	"github.com/oneview-community/ovapply/pkg/compare"
	"github.com/oneview-community/ovapply/pkg/diff"
	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

const (
	msgCreated        = "Appliance locale and time configuration updated successfully."
	msgAlreadyPresent = "Appliance locale and time configuration is already configured."

	factsKey = "appliance_time_and_locale_configuration"
)

// ConfigurationClient is the capability this module needs from the
// appliance: read the singleton and overwrite it.
type ConfigurationClient interface {
	GetAll(ctx context.Context) (map[string]any, error)
	Create(ctx context.Context, data map[string]any) (map[string]any, error)
}

type timeLocaleModule struct {
	client ConfigurationClient
}

// New creates a time_locale module bound to the given client.
func New(client ConfigurationClient) module.Module {
	return &timeLocaleModule{client: client}
}

func init() {
	if err := module.Register("time_locale", func(c *oneview.Client) module.Module {
		return New(c.TimeLocale())
	}); err != nil {
		panic(err)
	}
}

func (m *timeLocaleModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "time_locale",
		Description: "Reconciles the appliance time and locale configuration.",
		FactsKey:    factsKey,
	}
}

func (m *timeLocaleModule) States() []string {
	return []string{"present"}
}

func (m *timeLocaleModule) Run(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.reconcile(ctx, task, false)
}

func (m *timeLocaleModule) DryRun(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.reconcile(ctx, task, true)
}

func (m *timeLocaleModule) reconcile(ctx context.Context, task *config.Task, dryRun bool) (*model.Result, error) {
	if task.State != "present" {
		return nil, ovapplyerrors.NewValidationError("state",
			"time_locale only supports state \"present\"", nil)
	}
	if len(task.Data) == 0 {
		return nil, ovapplyerrors.NewValidationError("data",
			"time_locale requires at least one desired property", nil)
	}

	current, err := m.client.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	merged := compare.Merge(current, task.Data)
	if compare.Equal(merged, current) {
		return &model.Result{
			Status:  model.StatusOk,
			Changed: false,
			Msg:     msgAlreadyPresent,
			Facts:   map[string]any{factsKey: current},
		}, nil
	}

	stateDiff := diff.StateDiff(compare.Normalize(current), merged, "current", "desired")

	if dryRun {
		return &model.Result{
			Status:  model.StatusWouldChange,
			Changed: true,
			Msg:     msgCreated,
			Facts:   map[string]any{factsKey: merged},
			Diff:    stateDiff,
		}, nil
	}

	created, err := m.client.Create(ctx, task.Data)
	if err != nil {
		return nil, err
	}

	return &model.Result{
		Status:  model.StatusChanged,
		Changed: true,
		Msg:     msgCreated,
		Facts:   map[string]any{factsKey: created},
		Diff:    stateDiff,
	}, nil
}
