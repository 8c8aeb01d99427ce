// Package idpools dispatches identifier-pool operations: schema fetch,
// pool-type get/update, allocation, collection, validation, generation,
// and range availability checks.
package idpools

import (
	"context"
	"errors"
	"fmt"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/module"
	"github.com/oneview-community/ovapply/internal/oneview"
	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

const (
	msgUpdated        = "Pool updated successfully."
	msgAllocated      = "Given set of IDs have been reserved."
	msgValidated      = "Pool IDs are valid"
	msgNotValid       = "Pool IDs are not valid"
	msgAlreadyPresent = "Pool updated already."
	msgIDsExhausted   = "This set of IDs already allocated"

	factsKey = "id_pool"
)

// PoolClient is the capability this module needs from the appliance.
type PoolClient interface {
	GetSchema(ctx context.Context) (map[string]any, error)
	GetPoolType(ctx context.Context, poolType string) (*oneview.IDPool, error)
	UpdatePoolType(ctx context.Context, poolType string, data map[string]any) (*oneview.IDPool, error)
	Allocate(ctx context.Context, poolType string, count int) (*oneview.IDPoolAllocation, error)
	Collect(ctx context.Context, poolType string, idList []string) (*oneview.IDPoolCollection, error)
	Generate(ctx context.Context, poolType string) (*oneview.IDPoolRange, error)
	Validate(ctx context.Context, poolType string, idList []string) (*oneview.IDPoolValidation, error)
	ValidateIDPool(ctx context.Context, poolType string, idList []string) (*oneview.IDPoolValidation, error)
	CheckRangeAvailability(ctx context.Context, poolType string, idList []string) (*oneview.IDPoolRangeAvailability, error)
}

type idPoolsModule struct {
	client PoolClient
}

// New creates an id_pools module bound to the given client.
func New(client PoolClient) module.Module {
	return &idPoolsModule{client: client}
}

func init() {
	if err := module.Register("id_pools", func(c *oneview.Client) module.Module {
		return New(c.IDPools())
	}); err != nil {
		panic(err)
	}
}

func (m *idPoolsModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "id_pools",
		Description: "Manages identifier pools: allocation, collection, validation, generation.",
		FactsKey:    factsKey,
	}
}

func (m *idPoolsModule) States() []string {
	return []string{
		"schema", "get_pool_type", "update_pool_type", "allocate", "collect",
		"validate", "validate_id_pool", "generate", "check_range_availability",
	}
}

func (m *idPoolsModule) Run(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.execute(ctx, task, false)
}

func (m *idPoolsModule) DryRun(ctx context.Context, task *config.Task) (*model.Result, error) {
	return m.execute(ctx, task, true)
}

// execute extracts the discriminator fields from the task data and
// dispatches over an exhaustive switch. Unrecognized states land in the
// named default branch and fail instead of silently running a range
// check.
func (m *idPoolsModule) execute(ctx context.Context, task *config.Task, dryRun bool) (*model.Result, error) {
	poolType := task.DataString("poolType")
	idList := task.DataStringList("idList")
	count := task.DataInt("count")

	if task.State != "schema" && poolType == "" {
		return nil, ovapplyerrors.NewValidationError("data.poolType",
			fmt.Sprintf("state %q requires poolType", task.State), nil)
	}

	switch task.State {
	case "schema":
		schema, err := m.client.GetSchema(ctx)
		if err != nil {
			return nil, err
		}
		return unchanged("", schema), nil

	case "get_pool_type":
		pool, err := m.client.GetPoolType(ctx, poolType)
		if err != nil {
			return nil, err
		}
		return unchanged("", pool), nil

	case "update_pool_type":
		return m.updatePoolType(ctx, task, poolType, dryRun)

	case "allocate":
		return m.allocate(ctx, poolType, count, dryRun)

	case "collect":
		if len(idList) == 0 {
			idList = task.DataStringList("rangeUris")
		}
		if dryRun {
			return unchanged("IDs would be returned to the pool.", nil), nil
		}
		collected, err := m.client.Collect(ctx, poolType, idList)
		if err != nil {
			return nil, err
		}
		return unchanged("", collected), nil

	case "validate":
		return m.validate(ctx, poolType, idList)

	case "validate_id_pool":
		validation, err := m.client.ValidateIDPool(ctx, poolType, idList)
		if err != nil {
			return nil, err
		}
		return unchanged("", validation), nil

	case "generate":
		generated, err := m.client.Generate(ctx, poolType)
		if err != nil {
			return nil, err
		}
		return unchanged("", generated), nil

	case "check_range_availability":
		availability, err := m.client.CheckRangeAvailability(ctx, poolType, idList)
		if err != nil {
			return nil, err
		}
		return unchanged("", availability), nil

	default:
		return nil, ovapplyerrors.NewValidationError("state",
			fmt.Sprintf("id_pools does not support state %q", task.State), nil)
	}
}

func (m *idPoolsModule) updatePoolType(ctx context.Context, task *config.Task, poolType string, dryRun bool) (*model.Result, error) {
	desiredEnabled, _ := task.Data["enabled"].(bool)

	current, err := m.client.GetPoolType(ctx, poolType)
	if err != nil {
		return nil, err
	}

	if dryRun {
		changed := current.Enabled != desiredEnabled
		msg := msgAlreadyPresent
		if changed {
			msg = msgUpdated
		}
		return &model.Result{
			Status:  model.StatusFor(changed, true),
			Changed: changed,
			Msg:     msg,
			Facts:   map[string]any{factsKey: current},
		}, nil
	}

	updated, err := m.client.UpdatePoolType(ctx, poolType, task.Data)
	if err != nil {
		return nil, err
	}

	if current.Enabled != updated.Enabled {
		return &model.Result{
			Status:  model.StatusChanged,
			Changed: true,
			Msg:     msgUpdated,
			Facts:   map[string]any{factsKey: updated},
		}, nil
	}

	return unchanged(msgAlreadyPresent, updated), nil
}

func (m *idPoolsModule) allocate(ctx context.Context, poolType string, count int, dryRun bool) (*model.Result, error) {
	// Zero-count allocation is a no-op success, never an exhaustion
	// failure.
	if count == 0 {
		return unchanged(msgAllocated, &oneview.IDPoolAllocation{Count: 0, IDList: []string{}}), nil
	}

	if dryRun {
		return &model.Result{
			Status:  model.StatusWouldChange,
			Changed: true,
			Msg:     msgAllocated,
			Facts:   map[string]any{factsKey: &oneview.IDPoolAllocation{Count: count}},
		}, nil
	}

	allocation, err := m.client.Allocate(ctx, poolType, count)
	if err != nil {
		var apiErr *oneview.APIError
		if errors.As(err, &apiErr) && apiErr.DomainRejection() {
			return nil, ovapplyerrors.NewValueError(msgIDsExhausted, err)
		}
		return nil, err
	}

	return &model.Result{
		Status:  model.StatusChanged,
		Changed: true,
		Msg:     msgAllocated,
		Facts:   map[string]any{factsKey: allocation},
	}, nil
}

func (m *idPoolsModule) validate(ctx context.Context, poolType string, idList []string) (*model.Result, error) {
	validation, err := m.client.Validate(ctx, poolType, idList)
	if err != nil {
		return nil, err
	}

	if len(validation.IDList) > 0 && validation.Valid {
		return &model.Result{
			Status:  model.StatusChanged,
			Changed: true,
			Msg:     msgValidated,
			Facts:   map[string]any{factsKey: validation},
		}, nil
	}

	return unchanged(msgNotValid, validation), nil
}

func unchanged(msg string, facts any) *model.Result {
	result := &model.Result{Status: model.StatusOk, Changed: false, Msg: msg}
	if facts != nil {
		result.Facts = map[string]any{factsKey: facts}
	}
	return result
}
