package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/san-kum/geodesic/internal/scene"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
<style>html,body{height:100%;margin:0}</style>
</head>
<body>
<div style="height:100%;">
<script type="text/javascript">window.PlotlyConfig = {MathJaxConfig: 'local'};</script>
<script charset="utf-8" src="{{.PlotlyJS}}"></script>
<div id="{{.ID}}" class="plotly-graph-div" style="height:100%; width:100%;"></div>
<script type="text/javascript">
window.PLOTLYENV = window.PLOTLYENV || {};
if (document.getElementById({{.ID}})) {
	Plotly.newPlot({{.ID}}, {{.Data}}, {{.Layout}}, {{.Config}});
}
</script>
</div>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(htmlPage))

type pageData struct {
	Title    string
	PlotlyJS string
	ID       string
	Data     template.JS
	Layout   template.JS
	Config   template.JS
}

// HTMLWriter renders a figure as a standalone page that loads plotly.js
// from PlotlyJS rather than embedding it.
type HTMLWriter struct {
	PlotlyJS string
	// NewID names the plot div. Defaults to a random UUID.
	NewID func() string
}

func NewHTMLWriter(plotlyJS string) *HTMLWriter {
	return &HTMLWriter{PlotlyJS: plotlyJS, NewID: uuid.NewString}
}

func (h *HTMLWriter) WriteHTML(w io.Writer, fig *scene.Figure) error {
	data, err := fig.TraceData()
	if err != nil {
		return fmt.Errorf("encode traces: %w", err)
	}
	layout, err := fig.LayoutData()
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	newID := h.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return pageTmpl.Execute(w, pageData{
		Title:    fig.Layout.Title.Text,
		PlotlyJS: h.PlotlyJS,
		ID:       newID(),
		// encoding/json escapes <, > and &, so the payload is safe inside <script>
		Data:   template.JS(data),
		Layout: template.JS(layout),
		Config: template.JS(`{"responsive": true}`),
	})
}

// WriteFile writes the page to a temporary file next to path and renames
// it into place; a failed write leaves no file at path.
func (h *HTMLWriter) WriteFile(path string, fig *scene.Figure) error {
	return writeAtomic(path, func(w io.Writer) error {
		return h.WriteHTML(w, fig)
	})
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
