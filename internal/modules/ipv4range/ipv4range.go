// Package ipv4range manages the lifecycle of IPv4 range resources inside
// the ipv4 identifier pool: present creates or updates a range, absent
// removes it.
package ipv4range

import (
	"context"
	"errors"
	"net/http"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/module"
	"github.com/oneview-community/ovapply/internal/oneview"
	"github.com/oneview-community/ovapply/pkg/compare"
	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

const (
	msgCreated        = "ID pools IPv4 range created successfully."
	msgUpdated        = "ID pools IPv4 range updated successfully."
	msgDeleted        = "ID pools IPv4 range deleted successfully."
	msgAlreadyPresent = "ID pools IPv4 range is already present."
	msgAlreadyAbsent  = "ID pools IPv4 range is already absent."

	factsKey = "id_pools_ipv4_range"
)

// RangeClient is the capability this module needs for range resources.
type RangeClient interface {
	GetByURI(ctx context.Context, uri string) (map[string]any, error)
	Create(ctx context.Context, data map[string]any) (map[string]any, error)
	Update(ctx context.Context, uri string, data map[string]any) (map[string]any, error)
	Delete(ctx context.Context, uri string) error
	Enable(ctx context.Context, uri string, enabled bool) (map[string]any, error)
}

// SubnetClient resolves ranges through their parent subnet.
type SubnetClient interface {
	GetByURI(ctx context.Context, uri string) (map[string]any, error)
}

type ipv4RangeModule struct {
	ranges  RangeClient
	subnets SubnetClient
}

// New creates an ipv4_range module bound to the given clients.
func New(ranges RangeClient, subnets SubnetClient) module.Module {
	return &ipv4RangeModule{ranges: ranges, subnets: subnets}
}

func init() {
	if err := module.Register("ipv4_range", func(c *oneview.Client) module.Module {
		return New(c.IPv4Ranges(), c.IPv4Subnets())
	}); err != nil {
		panic(err)
	}
}

func (m *ipv4RangeModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "ipv4_range",
		Description: "Manages IPv4 range resources in the ipv4 identifier pool.",
		FactsKey:    factsKey,
	}
}

func (m *ipv4RangeModule) States() []string {
	return []string{"present", "absent"}
}

func (m *ipv4RangeModule) Run(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.execute(ctx, task, false)
}

func (m *ipv4RangeModule) DryRun(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.execute(ctx, task, true)
}

func (m *ipv4RangeModule) execute(ctx context.Context, task *config.Task, dryRun bool) (*model.Result, error) {
	if len(task.Data) == 0 {
		return nil, ovapplyerrors.NewValidationError("data",
			"ipv4_range requires resource properties", nil)
	}

	current, err := m.lookup(ctx, task)
	if err != nil {
		return nil, err
	}

	switch task.State {
	case "present":
		return m.present(ctx, task, current, dryRun)
	case "absent":
		return m.absent(ctx, current, dryRun)
	default:
		return nil, ovapplyerrors.NewValidationError("state",
			"ipv4_range only supports states \"present\" and \"absent\"", nil)
	}
}

// lookup resolves the targeted range: directly by uri when given,
// otherwise by walking the parent subnet's ranges and matching on name.
// Returns nil when no range matches.
func (m *ipv4RangeModule) lookup(ctx context.Context, task *config.Task) (map[string]any, error) {
	if uri, ok := task.Data["uri"].(string); ok && uri != "" {
		resource, err := m.ranges.GetByURI(ctx, uri)
		if err != nil {
			if isNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return resource, nil
	}

	subnetURI, _ := task.Data["subnetUri"].(string)
	name, _ := task.Data["name"].(string)
	if subnetURI == "" || name == "" {
		return nil, nil
	}

	subnet, err := m.subnets.GetByURI(ctx, subnetURI)
	if err != nil {
		return nil, err
	}

	for _, rangeURI := range oneview.RangeURIs(subnet) {
		candidate, err := m.ranges.GetByURI(ctx, rangeURI)
		if err != nil {
			return nil, err
		}
		if candidate["name"] == name {
			return candidate, nil
		}
	}

	return nil, nil
}

func (m *ipv4RangeModule) present(ctx context.Context, task *config.Task, current map[string]any, dryRun bool) (*model.Result, error) {
	if newName := task.DataString("newName"); newName != "" {
		task.Data["name"] = newName
	}

	// A new range carries enabled in its create body.
	if current == nil {
		if dryRun {
			return &model.Result{
				Status:  model.StatusWouldChange,
				Changed: true,
				Msg:     msgCreated,
				Facts:   map[string]any{factsKey: compare.Normalize(task.Data)},
			}, nil
		}
		created, err := m.ranges.Create(ctx, task.Data)
		if err != nil {
			return nil, err
		}
		return &model.Result{
			Status:  model.StatusChanged,
			Changed: true,
			Msg:     msgCreated,
			Facts:   map[string]any{factsKey: created},
		}, nil
	}

	// On an existing range enabled is reconciled through the dedicated
	// enable endpoint, not the resource body.
	enabledValue, enabledSet := task.Data["enabled"]
	if enabledSet {
		delete(task.Data, "enabled")
	}
	desiredEnabled, _ := enabledValue.(bool)

	uri, _ := current["uri"].(string)
	changed := false
	msg := msgAlreadyPresent
	result := current

	merged := compare.Merge(current, task.Data)
	if !compare.Equal(merged, current) {
		if dryRun {
			result = merged
		} else {
			updated, err := m.ranges.Update(ctx, uri, merged)
			if err != nil {
				return nil, err
			}
			result = updated
		}
		changed = true
		msg = msgUpdated
	}

	if enabledSet && desiredEnabled != currentEnabled(current) {
		if dryRun {
			result = compare.Merge(result, map[string]any{"enabled": desiredEnabled})
		} else {
			enabled, err := m.ranges.Enable(ctx, uri, desiredEnabled)
			if err != nil {
				return nil, err
			}
			result = enabled
		}
		changed = true
		msg = msgUpdated
	}

	return &model.Result{
		Status:  model.StatusFor(changed, dryRun),
		Changed: changed,
		Msg:     msg,
		Facts:   map[string]any{factsKey: result},
	}, nil
}

func (m *ipv4RangeModule) absent(ctx context.Context, current map[string]any, dryRun bool) (*model.Result, error) {
	if current == nil {
		return &model.Result{
			Status:  model.StatusOk,
			Changed: false,
			Msg:     msgAlreadyAbsent,
		}, nil
	}

	if !dryRun {
		uri, _ := current["uri"].(string)
		if err := m.ranges.Delete(ctx, uri); err != nil {
			return nil, err
		}
	}

	return &model.Result{
		Status:  model.StatusFor(true, dryRun),
		Changed: true,
		Msg:     msgDeleted,
	}, nil
}

func currentEnabled(resource map[string]any) bool {
	enabled, _ := resource["enabled"].(bool)
	return enabled
}

func isNotFound(err error) bool {
	var apiErr *oneview.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
