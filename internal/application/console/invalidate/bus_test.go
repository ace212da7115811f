package invalidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
)

func TestPublish_VersionPorTipo(t *testing.T) {
	bus := invalidate.New()
	assert.Equal(t, uint64(0), bus.Version("stacks"))

	assert.Equal(t, uint64(1), bus.Publish("stacks"))
	assert.Equal(t, uint64(2), bus.Publish("stacks"))
	assert.Equal(t, uint64(2), bus.Version("stacks"))
	assert.Equal(t, uint64(0), bus.Version("pallets"), "otros tipos no se ven afectados")
}

func TestSubscribe_SoloRecibeSuTipo(t *testing.T) {
	bus := invalidate.New()
	var got []uint64
	unsubscribe := bus.Subscribe("pallets", func(kind string, v uint64) {
		assert.Equal(t, "pallets", kind)
		got = append(got, v)
	})

	bus.Publish("stacks")
	bus.Publish("pallets")
	unsubscribe()
	bus.Publish("pallets")

	assert.Equal(t, []uint64{1}, got)
}
