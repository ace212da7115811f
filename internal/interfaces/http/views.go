package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine motor de plantillas sobre las vistas embebidas.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	return engine
}
