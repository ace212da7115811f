package form_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

var stackCodec = form.Codec[dto.StackRequest]{
	Decode: func(r *form.Reader) dto.StackRequest {
		return dto.StackRequest{
			Warehouse:   r.String("warehouse"),
			Zone:        r.String("zone"),
			Capacity:    r.Int("capacity"),
			Description: r.String("description"),
		}
	},
	Encode: func(in dto.StackRequest) url.Values {
		return url.Values{
			"warehouse":   {in.Warehouse},
			"zone":        {in.Zone},
			"capacity":    {form.FormatInt(in.Capacity)},
			"description": {in.Description},
		}
	},
}

type userMsgErr struct{ msg string }

func (e userMsgErr) Error() string       { return "backend: " + e.msg }
func (e userMsgErr) UserMessage() string { return e.msg }

type harness struct {
	ctrl    *form.Controller[dto.StackRequest]
	bus     *invalidate.Bus
	ch      *notify.Channel
	creates []dto.StackRequest
	updates map[string]dto.StackRequest
	err     error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{bus: invalidate.New(), ch: notify.New(time.Minute), updates: map[string]dto.StackRequest{}}
	t.Cleanup(h.ch.Close)
	h.ctrl = form.New(stackCodec,
		func(_ context.Context, in dto.StackRequest) error {
			if h.err != nil {
				return h.err
			}
			h.creates = append(h.creates, in)
			return nil
		},
		func(_ context.Context, id string, in dto.StackRequest) error {
			if h.err != nil {
				return h.err
			}
			h.updates[id] = in
			return nil
		},
		form.Options{Kind: "stacks", Noun: "Stack", Bus: h.bus, Notifier: h.ch},
	)
	return h
}

func TestSubmit_ValidacionBloqueaLaRed(t *testing.T) {
	h := newHarness(t)
	h.ctrl.OpenCreate()
	h.ctrl.Bind(url.Values{"warehouse": {""}, "zone": {"A"}, "capacity": {"0"}})

	ok, err := h.ctrl.Submit(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, h.creates)

	v := h.ctrl.View()
	assert.True(t, v.Open())
	assert.Equal(t, "This field is required", v.Errors["warehouse"])
	assert.Contains(t, v.Errors, "capacity")
	assert.Equal(t, uint64(0), h.bus.Version("stacks"))
}

func TestSubmit_ErrorDeTipo(t *testing.T) {
	h := newHarness(t)
	h.ctrl.OpenCreate()
	h.ctrl.Bind(url.Values{"warehouse": {"WH1"}, "zone": {"A"}, "capacity": {"diez"}})

	_, err := h.ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Must be a whole number", h.ctrl.View().Errors["capacity"])
}

func TestSubmit_AltaExitosa(t *testing.T) {
	h := newHarness(t)
	h.ctrl.OpenCreate()
	h.ctrl.Bind(url.Values{"warehouse": {" WH1 "}, "zone": {"A"}, "capacity": {"40"}})

	ok, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, h.creates, 1)
	assert.Equal(t, "WH1", h.creates[0].Warehouse)
	assert.Equal(t, 40, h.creates[0].Capacity)

	v := h.ctrl.View()
	assert.False(t, v.Open(), "el modal se cierra al confirmar")
	assert.Empty(t, v.Values.Get("warehouse"), "los campos vuelven a sus valores iniciales")
	assert.Equal(t, uint64(1), h.bus.Version("stacks"))

	n, visible := h.ch.Current()
	require.True(t, visible)
	assert.Equal(t, "Stack created successfully", n.Message)
	assert.Equal(t, notify.Success, n.Severity)
}

func TestSubmit_EdicionRehidrata(t *testing.T) {
	h := newHarness(t)
	h.ctrl.OpenEdit("7", dto.StackRequest{Warehouse: "WH2", Zone: "B", Capacity: 10})

	v := h.ctrl.View()
	assert.Equal(t, form.Editing, v.Mode)
	assert.Equal(t, "7", v.RecordID)
	assert.Equal(t, "WH2", v.Values.Get("warehouse"))

	h.ctrl.Bind(url.Values{"warehouse": {"WH2"}, "zone": {"C"}, "capacity": {"12"}})
	ok, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "C", h.updates["7"].Zone)

	n, _ := h.ch.Current()
	assert.Equal(t, "Stack updated successfully", n.Message)

	// otro registro seleccionado: los campos se rehidratan
	h.ctrl.OpenEdit("8", dto.StackRequest{Warehouse: "WH3", Zone: "D", Capacity: 5})
	assert.Equal(t, "WH3", h.ctrl.View().Values.Get("warehouse"))
	assert.Empty(t, h.ctrl.View().Errors)
}

func TestSubmit_FalloDelBackend(t *testing.T) {
	h := newHarness(t)
	h.err = userMsgErr{msg: "Warehouse WH1 already has zone A"}
	h.ctrl.OpenCreate()
	h.ctrl.Bind(url.Values{"warehouse": {"WH1"}, "zone": {"A"}, "capacity": {"40"}})

	ok, err := h.ctrl.Submit(context.Background())
	assert.False(t, ok)
	assert.Error(t, err)
	assert.True(t, h.ctrl.View().Open(), "el modal sigue abierto")
	n, _ := h.ch.Current()
	assert.Equal(t, "Warehouse WH1 already has zone A", n.Message)
	assert.Equal(t, notify.Error, n.Severity)
	assert.Equal(t, uint64(0), h.bus.Version("stacks"))

	h.err = errors.New("dial tcp: connection refused")
	_, _ = h.ctrl.Submit(context.Background())
	n, _ = h.ch.Current()
	assert.Equal(t, domain.GenericFailureMessage, n.Message)
}

func TestSubmit_UnaSolaPeticionEnCurso(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	ctrl := form.New(stackCodec,
		func(ctx context.Context, _ dto.StackRequest) error {
			close(started)
			<-release
			return nil
		}, nil, form.Options{Kind: "stacks", Noun: "Stack"})
	ctrl.OpenCreate()
	ctrl.Bind(url.Values{"warehouse": {"WH1"}, "zone": {"A"}, "capacity": {"1"}})

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Submit(context.Background())
		done <- err
	}()
	<-started

	assert.True(t, ctrl.View().Pending)
	_, err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, ctrl.View().Pending)
}

func TestOpen_ConEnvioEnCursoNoCambiaElModal(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var updates []string
	ctrl := form.New(stackCodec, nil,
		func(_ context.Context, id string, _ dto.StackRequest) error {
			updates = append(updates, id)
			if id == "1" {
				close(started)
				<-release
			}
			return nil
		}, form.Options{Kind: "stacks", Noun: "Stack"})
	require.NoError(t, ctrl.OpenEdit("1", dto.StackRequest{Warehouse: "WH1", Zone: "A", Capacity: 1}))

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Submit(context.Background())
		done <- err
	}()
	<-started

	assert.ErrorIs(t, ctrl.OpenEdit("2", dto.StackRequest{Warehouse: "WH2", Zone: "B", Capacity: 2}), domain.ErrBusy)
	assert.ErrorIs(t, ctrl.OpenCreate(), domain.ErrBusy)
	ctrl.Bind(url.Values{"warehouse": {"WH9"}, "zone": {"Z"}, "capacity": {"9"}})

	v := ctrl.View()
	assert.True(t, v.Pending, "el envío sigue en curso")
	assert.Equal(t, "1", v.RecordID)
	assert.Equal(t, "WH1", v.Values.Get("warehouse"))
	_, err := ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"1"}, updates, "una sola petición llegó al backend")
	require.NoError(t, ctrl.OpenEdit("2", dto.StackRequest{Warehouse: "WH2", Zone: "B", Capacity: 2}))
	assert.Equal(t, "2", ctrl.View().RecordID)
}

func TestSubmit_ModalCerrado(t *testing.T) {
	h := newHarness(t)
	_, err := h.ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func TestValidator_Mensajes(t *testing.T) {
	v := form.NewValidator()

	errs := v.Validate(dto.MovementRequest{PalletCode: "PAL-001", FromStackID: 3, ToStackID: 3, Operator: "ana"})
	assert.Equal(t, "Must be different from from stack id", errs["to_stack_id"])

	errs = v.Validate(dto.SignUpRequest{Username: "ana", Email: "x", FullName: "Ana", Password: "12345678", ConfirmPassword: "1234"})
	assert.Equal(t, "Must be a valid email address", errs["email"])
	assert.Equal(t, "Must match password", errs["confirm_password"])

	errs = v.Validate(dto.RoleRequest{Name: "ops"})
	assert.Equal(t, "This field is required", errs["permission_ids"])

	assert.Nil(t, v.Validate(dto.StackRequest{Warehouse: "WH1", Zone: "A", Capacity: 1}))
}
