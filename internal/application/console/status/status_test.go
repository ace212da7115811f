package status_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/console/status"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

func TestTracker_Ciclo(t *testing.T) {
	var tr status.Tracker
	assert.Equal(t, status.Idle, tr.State())

	require.NoError(t, tr.Begin())
	assert.Equal(t, status.Loading, tr.State())
	assert.ErrorIs(t, tr.Begin(), domain.ErrBusy, "una sola operación en curso")

	boom := errors.New("boom")
	tr.Fail(boom)
	assert.Equal(t, status.Error, tr.State())
	assert.Same(t, boom, tr.LastErr())

	require.NoError(t, tr.Begin())
	assert.NoError(t, tr.LastErr(), "la siguiente acción limpia el último error")
	tr.Succeed()
	assert.Equal(t, status.Success, tr.State())
	assert.False(t, tr.Pending())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "loading", status.Loading.String())
	assert.Equal(t, "idle", status.Idle.String())
}
