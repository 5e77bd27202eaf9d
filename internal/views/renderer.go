package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"sustainability-dashboard/pkg/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

const LayoutTemplate = "layout"

// Renderer рисует страницу дашборда из PageModel. Один и тот же PageModel
// всегда даёт одинаковый HTML.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dashboard").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать шаблоны: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage пишет страницу целиком. При ошибке шаблона в w ничего не попадает.
func (r *Renderer) RenderPage(w io.Writer, page PageModel) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, LayoutTemplate, page); err != nil {
		return fmt.Errorf("ошибка рендера экрана %q: %w", page.View, err)
	}
	// Счётчик процесса, на снимок и разметку не влияет.
	metrics.ObserveRender(page.View)
	_, err := buf.WriteTo(w)
	return err
}

// Render - реализация echo.Renderer для c.Render.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if page, ok := data.(PageModel); ok && name == LayoutTemplate {
		return r.RenderPage(w, page)
	}
	return r.tmpl.ExecuteTemplate(w, name, data)
}
