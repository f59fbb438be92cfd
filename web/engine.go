package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewEngine returns the views engine backed by the embedded templates
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
