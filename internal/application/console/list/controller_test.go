package list_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
	"github.com/jhoicas/assettrack-console/internal/application/console/list"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/status"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
)

type row struct {
	ID        int
	Warehouse string
}

// fakeBackend responde páginas filtrando por Keyword sobre un conjunto fijo.
type fakeBackend struct {
	mu      sync.Mutex
	rows    []row
	err     error
	calls   int
	queries []dto.ListQuery
}

func (f *fakeBackend) fetch(_ context.Context, q dto.ListQuery) (dto.Page[row], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.queries = append(f.queries, q)
	if f.err != nil {
		return dto.Page[row]{}, f.err
	}
	var matched []row
	for _, r := range f.rows {
		if q.Keyword == "" || r.Warehouse == q.Keyword {
			matched = append(matched, r)
		}
	}
	start := q.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Size
	if end > len(matched) {
		end = len(matched)
	}
	return dto.Page[row]{Items: matched[start:end], Total: len(matched)}, nil
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sampleRows(n int) []row {
	out := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		wh := "WH1"
		if i%2 == 0 {
			wh = "WH2"
		}
		out = append(out, row{ID: i, Warehouse: wh})
	}
	return out
}

func TestLoad_PaginacionDelBackend(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(25)}
	c := list.New(be.fetch, list.Options{Kind: "stacks", PageSize: 10})

	require.NoError(t, c.Load(context.Background()))
	s := c.Snapshot()
	assert.Len(t, s.Rows, 10)
	assert.Equal(t, 25, s.Total)
	assert.Equal(t, 3, s.Pages)
	assert.False(t, s.Loading)
	assert.Equal(t, status.Success, s.Status)

	c.SetPage(3)
	require.NoError(t, c.Load(context.Background()))
	s = c.Snapshot()
	assert.Len(t, s.Rows, 5)
	assert.Equal(t, 3, be.queries[len(be.queries)-1].Page, "el backend recibe la página pedida")
}

func TestLoad_BusquedaSinCoincidenciasEsEstadoVacio(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(5)}
	c := list.New(be.fetch, list.Options{Kind: "stacks"})

	c.SetQuery(dto.ListQuery{Keyword: "NOPE"})
	require.NoError(t, c.Load(context.Background()))

	s := c.Snapshot()
	assert.True(t, s.Empty())
	assert.NoError(t, s.Err, "sin resultados no es un error")
	assert.True(t, s.Loaded)
}

func TestLoad_FalloConservaLaUltimaPagina(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(3)}
	ch := notify.New(time.Minute)
	defer ch.Close()
	c := list.New(be.fetch, list.Options{Kind: "stacks", Notifier: ch})

	require.NoError(t, c.Load(context.Background()))
	before := c.Snapshot().Rows

	be.mu.Lock()
	be.err = errors.New("connection refused")
	be.mu.Unlock()

	err := c.Refresh(context.Background())
	require.Error(t, err)

	s := c.Snapshot()
	assert.Equal(t, before, s.Rows, "las filas no cambian tras un fallo")
	assert.False(t, s.Loading, "loading vuelve a false")
	assert.Equal(t, status.Error, s.Status)
	assert.Error(t, s.Err)

	n, ok := ch.Current()
	require.True(t, ok)
	assert.Equal(t, notify.Error, n.Severity)
	assert.Equal(t, "Could not load data.", n.Message)
}

func TestLoad_FalloSinDatosPreviosQuedaVacio(t *testing.T) {
	be := &fakeBackend{err: errors.New("boom")}
	c := list.New(be.fetch, list.Options{Kind: "stacks"})

	require.Error(t, c.Load(context.Background()))
	s := c.Snapshot()
	assert.Empty(t, s.Rows)
	assert.True(t, s.Empty())
	assert.False(t, s.Loaded)
}

func TestLoad_CacheHastaInvalidacionOVencimiento(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(3)}
	bus := invalidate.New()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := list.New(be.fetch, list.Options{Kind: "stacks", Versions: bus, StaleAfter: 30 * time.Second, Now: clock})

	ctx := context.Background()
	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 1, be.callCount(), "la segunda lectura usa la caché")

	bus.Publish("pallets")
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 1, be.callCount(), "invalidar otro tipo no afecta")

	bus.Publish("stacks")
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 2, be.callCount(), "una mutación hace que la próxima lectura vaya al backend")

	now = now.Add(31 * time.Second)
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 3, be.callCount(), "la página vencida se vuelve a pedir")

	c.SetPage(1)
	c.SetFilters("ACTIVE", "", "")
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, 4, be.callCount(), "cambiar filtros cambia la consulta")
}

func TestRefresh_DescartaRespuestasFueraDeOrden(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	call := 0
	fetch := func(ctx context.Context, q dto.ListQuery) (dto.Page[row], error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			<-release // la primera petición vuelve tarde
			return dto.Page[row]{Items: []row{{ID: 1, Warehouse: "stale"}}, Total: 1}, nil
		}
		return dto.Page[row]{Items: []row{{ID: 2, Warehouse: "fresh"}}, Total: 1}, nil
	}
	c := list.New(fetch, list.Options{Kind: "stacks"})

	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return call == 1
	}, time.Second, time.Millisecond)

	c.SetPage(2)
	require.NoError(t, c.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-done)

	s := c.Snapshot()
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "fresh", s.Rows[0].Warehouse, "la respuesta vieja no pisa la nueva")
}

func TestSearch_DebounceSoloConfirmaLaUltimaPulsacion(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(4)}
	c := list.New(be.fetch, list.Options{Kind: "stacks", Debounce: 40 * time.Millisecond})

	ctx := context.Background()
	results := make(chan bool, 3)
	for _, text := range []string{"W", "WH", "WH2"} {
		text := text
		go func() {
			ok, err := c.Search(ctx, text)
			assert.NoError(t, err)
			results <- ok
		}()
		time.Sleep(10 * time.Millisecond)
	}

	confirmed := 0
	for i := 0; i < 3; i++ {
		if <-results {
			confirmed++
		}
	}
	assert.Equal(t, 1, confirmed, "solo una pulsación llega al backend")
	assert.Equal(t, 1, be.callCount())

	s := c.Snapshot()
	assert.Equal(t, "WH2", s.Query.Keyword)
	assert.Equal(t, 1, s.Query.Page)
	assert.Len(t, s.Rows, 2)
}

func TestSearch_ContextoCancelado(t *testing.T) {
	be := &fakeBackend{}
	c := list.New(be.fetch, list.Options{Kind: "stacks", Debounce: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err := c.Search(ctx, "x")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, be.callCount())
}

func TestFind_BuscaEnLaPaginaCacheada(t *testing.T) {
	be := &fakeBackend{rows: sampleRows(3)}
	c := list.New(be.fetch, list.Options{Kind: "stacks"})
	require.NoError(t, c.Load(context.Background()))

	r, ok := c.Find(func(r row) bool { return r.ID == 2 })
	require.True(t, ok)
	assert.Equal(t, "WH2", r.Warehouse)

	_, ok = c.Find(func(r row) bool { return r.ID == 99 })
	assert.False(t, ok)
}
