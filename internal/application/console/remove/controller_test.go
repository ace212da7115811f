package remove_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/remove"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

func TestConfirm_BorraYNotifica(t *testing.T) {
	bus := invalidate.New()
	ch := notify.New(time.Minute)
	defer ch.Close()

	var deleted []string
	c := remove.New(func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}, remove.Options{Kind: "pallets", Noun: "pallet", Bus: bus, Notifier: ch})

	c.Target("PAL-001", "PAL-001")
	assert.Equal(t, "PAL-001 pallet will be deleted. This action cannot be undone.", c.Prompt())
	assert.True(t, c.View().Open)

	ok, err := c.Confirm(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"PAL-001"}, deleted)
	assert.False(t, c.View().Open)
	assert.Equal(t, uint64(1), bus.Version("pallets"))

	n, visible := ch.Current()
	require.True(t, visible)
	assert.Equal(t, notify.Success, n.Severity)
}

func TestConfirm_SinSeleccion(t *testing.T) {
	c := remove.New(func(context.Context, string) error { return nil }, remove.Options{Noun: "pallet"})
	_, err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	assert.Empty(t, c.Prompt())
}

func TestConfirm_FalloMantieneDialogo(t *testing.T) {
	ch := notify.New(time.Minute)
	defer ch.Close()
	c := remove.New(func(context.Context, string) error {
		return errors.New("boom")
	}, remove.Options{Kind: "pallets", Noun: "pallet", Notifier: ch})

	c.Target("PAL-002", "")
	ok, err := c.Confirm(context.Background())
	assert.False(t, ok)
	assert.Error(t, err)
	assert.True(t, c.View().Open)
	assert.Equal(t, "PAL-002", c.View().Label, "sin label se usa el id")

	n, _ := ch.Current()
	assert.Equal(t, domain.GenericFailureMessage, n.Message)
}

func TestConfirm_UnaSolaPeticionEnCurso(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c := remove.New(func(context.Context, string) error {
		close(started)
		<-release
		return nil
	}, remove.Options{Noun: "stack"})
	c.Target("3", "WH1/A")

	done := make(chan error, 1)
	go func() {
		_, err := c.Confirm(context.Background())
		done <- err
	}()
	<-started

	_, err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)
	c.Cancel()
	assert.True(t, c.View().Open, "no se cancela con un borrado en curso")

	close(release)
	require.NoError(t, <-done)
}

func TestTarget_ConBorradoEnCursoNoCambiaLaSeleccion(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var deleted []string
	c := remove.New(func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		if id == "PAL-001" {
			close(started)
			<-release
		}
		return nil
	}, remove.Options{Noun: "pallet"})
	require.NoError(t, c.Target("PAL-001", "PAL-001"))

	done := make(chan error, 1)
	go func() {
		_, err := c.Confirm(context.Background())
		done <- err
	}()
	<-started

	assert.ErrorIs(t, c.Target("PAL-002", "PAL-002"), domain.ErrBusy)
	v := c.View()
	assert.True(t, v.Pending)
	assert.Equal(t, "PAL-001", v.ID)
	_, err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"PAL-001"}, deleted, "un solo borrado en curso por diálogo")
	assert.False(t, c.View().Open)
}

func TestCancel(t *testing.T) {
	c := remove.New(func(context.Context, string) error { return nil }, remove.Options{Noun: "asset"})
	c.Target("AST-9", "AST-9")
	c.Cancel()
	assert.False(t, c.View().Open)
}
