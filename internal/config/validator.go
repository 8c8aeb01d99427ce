package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	taskIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// moduleStates maps every registered module name to the states it
// accepts. Unknown states are rejected here, before any remote call.
var moduleStates = map[string][]string{
	"time_locale": {"present"},
	"id_pools": {
		"schema", "get_pool_type", "update_pool_type", "allocate", "collect",
		"validate", "validate_id_pool", "generate", "check_range_availability",
	},
	"ipv4_range": {"present", "absent"},
}

// poolTypes are the identifier namespaces OneView exposes under
// /rest/id-pools.
var poolTypes = map[string]struct{}{
	"ipv4": {},
	"vmac": {},
	"vsn":  {},
	"vwwn": {},
}

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("task_id", func(fl validator.FieldLevel) bool {
			return taskIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePlaybook checks the structural rules the struct tags encode,
// then the per-module state and required-field rules.
func ValidatePlaybook(pb *Playbook) error {
	if pb == nil {
		return ovapplyerrors.NewValidationError("", "playbook is nil", nil)
	}

	if err := validatorInstance().Struct(pb); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return ovapplyerrors.NewValidationError(first.Namespace(),
				fmt.Sprintf("failed %q validation", first.Tag()), err)
		}
		return ovapplyerrors.NewValidationError("", err.Error(), err)
	}

	seen := make(map[string]struct{}, len(pb.Tasks))
	for i := range pb.Tasks {
		task := &pb.Tasks[i]
		field := fmt.Sprintf("tasks[%d]", i)

		if _, dup := seen[task.ID]; dup {
			return ovapplyerrors.NewValidationError(field+".id",
				fmt.Sprintf("duplicate task id %q", task.ID), nil)
		}
		seen[task.ID] = struct{}{}

		if err := validateTask(task, field); err != nil {
			return err
		}
	}

	return nil
}

func validateTask(task *Task, field string) error {
	states, known := moduleStates[task.Module]
	if !known {
		return ovapplyerrors.NewValidationError(field+".module",
			fmt.Sprintf("unknown module %q", task.Module), nil)
	}

	if !contains(states, task.State) {
		return ovapplyerrors.NewValidationError(field+".state",
			fmt.Sprintf("module %q does not support state %q", task.Module, task.State), nil)
	}

	switch task.Module {
	case "time_locale":
		if len(task.Data) == 0 {
			return ovapplyerrors.NewValidationError(field+".data",
				"time_locale requires at least one desired property", nil)
		}
	case "id_pools":
		return validateIDPoolsTask(task, field)
	case "ipv4_range":
		if len(task.Data) == 0 {
			return ovapplyerrors.NewValidationError(field+".data",
				"ipv4_range requires resource properties", nil)
		}
		if _, hasURI := task.Data["uri"]; !hasURI {
			if _, hasName := task.Data["name"]; !hasName {
				return ovapplyerrors.NewValidationError(field+".data",
					"ipv4_range requires either uri or name", nil)
			}
		}
	}

	return nil
}

func validateIDPoolsTask(task *Task, field string) error {
	if task.State == "schema" {
		return nil
	}

	poolType, _ := task.Data["poolType"].(string)
	if poolType == "" {
		return ovapplyerrors.NewValidationError(field+".data.poolType",
			fmt.Sprintf("state %q requires poolType", task.State), nil)
	}
	if _, ok := poolTypes[poolType]; !ok {
		return ovapplyerrors.NewValidationError(field+".data.poolType",
			fmt.Sprintf("unknown pool type %q", poolType), nil)
	}

	if task.State == "update_pool_type" {
		if _, ok := task.Data["enabled"]; !ok {
			return ovapplyerrors.NewValidationError(field+".data.enabled",
				"update_pool_type requires enabled", nil)
		}
		if _, ok := task.Data["rangeUris"]; !ok {
			return ovapplyerrors.NewValidationError(field+".data.rangeUris",
				"update_pool_type requires rangeUris", nil)
		}
	}

	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
