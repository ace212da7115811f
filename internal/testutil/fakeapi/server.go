package fakeapi

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Start levanta el backend en un servidor HTTP local y lo cierra al terminar el test.
func Start(t testing.TB) (*Backend, string) {
	t.Helper()
	b := New("")
	srv := httptest.NewServer(adaptor.FiberApp(b.App))
	t.Cleanup(srv.Close)
	return b, srv.URL
}
