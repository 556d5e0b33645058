package cli

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/render/raster"
	"github.com/mchmarny/gauge/pkg/render/svg"
)

var contentTypes = map[string]string{
	chartSVG: "image/svg+xml",
	chartPNG: "image/png",
	chartGIF: "image/gif",
}

// chart renders the preview gauge, taking the score from the request when
// one is given.
func (p *preview) chart(r *http.Request, animate bool) (*gauge.Chart, float64, error) {
	score := p.score
	if v := r.URL.Query().Get("score"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, 0, err
		}
		score = f
	}
	return gauge.Render(p.opts.Width, score, p.slabs, animate), score, nil
}

func previewViewHandler(tmpl *template.Template, p *preview) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, score, err := p.chart(r, p.opts.Animate)
		if err != nil {
			http.Error(w, "invalid score", http.StatusBadRequest)
			return
		}

		var buf bytes.Buffer
		if err := svg.Write(&buf, c, p.opts.FPS); err != nil {
			slog.Error("svg render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		d := map[string]any{
			"version":    version,
			"commit":     commit,
			"build_date": date,
			"score":      gauge.FormatNumber(score),
			"width":      gauge.FormatNumber(c.Layout.Width),
			"slabs":      c.Slabs,
			"svg":        template.HTML(buf.String()), //nolint:gosec // generated by the svg renderer
		}
		if err := tmpl.ExecuteTemplate(w, "preview", d); err != nil {
			slog.Error("template render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

func chartHandler(p *preview, format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, _, err := p.chart(r, p.opts.Animate && format != chartPNG)
		if err != nil {
			http.Error(w, "invalid score", http.StatusBadRequest)
			return
		}

		var buf bytes.Buffer
		switch format {
		case chartSVG:
			err = svg.Write(&buf, c, p.opts.FPS)
		case chartPNG:
			err = raster.WritePNG(&buf, c)
		case chartGIF:
			err = raster.WriteGIF(r.Context(), &buf, c, p.opts.FPS)
		}
		if err != nil {
			slog.Error("chart render failed", "format", format, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		if _, err := w.Write(buf.Bytes()); err != nil {
			slog.Error("failed to write chart", "format", format, "error", err)
		}
	}
}
