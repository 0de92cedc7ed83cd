package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

const (
	Index   = "index.html"
	Success = "success.html"
)

// Load parses the embedded pages.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}

// IndexData is rendered into the checkout page.
type IndexData struct {
	PublishableKey string
}

// SuccessData is rendered into the confirmation page.
type SuccessData struct {
	SessionData interface{}
}
