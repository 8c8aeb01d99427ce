package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	ovapplyerrors "github.com/oneview-community/ovapply/pkg/errors"
)

func validPlaybook() *Playbook {
	return &Playbook{
		Version: "1.0.0",
		Name:    "baseline",
		Tasks: []Task{
			{ID: "set_locale", Module: "time_locale", State: "present",
				Data: map[string]any{"locale": "en_US.UTF-8"}},
		},
	}
}

func TestValidatePlaybookAccepts(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePlaybook(validPlaybook()))
}

func TestValidatePlaybookRejectsBadVersion(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Version = "one"

	err := ValidatePlaybook(pb)

	var validationErr *ovapplyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidatePlaybookRejectsDuplicateTaskIDs(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks = append(pb.Tasks, pb.Tasks[0])

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate task id")
}

func TestValidatePlaybookRejectsUnknownModule(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0].Module = "fc_pools"

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown module")
}

func TestValidatePlaybookRejectsUnsupportedState(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0].State = "absent"

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not support state")
}

func TestValidatePlaybookIDPoolsRequiresPoolType(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0] = Task{ID: "gen", Module: "id_pools", State: "generate", Data: map[string]any{}}

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "poolType")
}

func TestValidatePlaybookIDPoolsSchemaNeedsNoPoolType(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0] = Task{ID: "schema", Module: "id_pools", State: "schema"}

	require.NoError(t, ValidatePlaybook(pb))
}

func TestValidatePlaybookRejectsUnknownPoolType(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0] = Task{ID: "gen", Module: "id_pools", State: "generate",
		Data: map[string]any{"poolType": "ipv9"}}

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ipv9")
}

func TestValidatePlaybookUpdatePoolTypeRequiresEnabledAndRanges(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0] = Task{ID: "upd", Module: "id_pools", State: "update_pool_type",
		Data: map[string]any{"poolType": "vmac", "enabled": true}}

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rangeUris")
}

func TestValidatePlaybookIPv4RangeRequiresLookupKey(t *testing.T) {
	t.Parallel()

	pb := validPlaybook()
	pb.Tasks[0] = Task{ID: "range", Module: "ipv4_range", State: "present",
		Data: map[string]any{"enabled": true}}

	err := ValidatePlaybook(pb)
	require.Error(t, err)
	require.Contains(t, err.Error(), "uri or name")
}
