package module

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/oneview"
)

type stubModule struct{}

func (stubModule) Metadata() Metadata { return Metadata{Name: "stub", FactsKey: "stub"} }
func (stubModule) States() []string   { return []string{"present"} }
func (stubModule) Run(context.Context, *config.Task) (*model.Result, error) {
	return &model.Result{}, nil
}
func (stubModule) DryRun(context.Context, *config.Task) (*model.Result, error) {
	return &model.Result{}, nil
}

func stubFactory(*oneview.Client) Module { return stubModule{} }

func TestRegisterAndGet(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Register("stub", stubFactory))

	factory, err := Get("stub")
	require.NoError(t, err)
	require.Equal(t, "stub", factory(nil).Metadata().Name)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Register("stub", stubFactory))
	require.Error(t, Register("stub", stubFactory))
}

func TestRegisterRejectsNilFactory(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.Error(t, Register("stub", nil))
}

func TestGetUnknownModule(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Get("missing")
	require.Error(t, err)
}

func TestNamesSorted(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Register("zebra", stubFactory))
	require.NoError(t, Register("alpha", stubFactory))

	require.Equal(t, []string{"alpha", "zebra"}, Names())
}
