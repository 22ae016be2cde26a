// Package render runs the load → build → export pipeline once.
package render

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/san-kum/geodesic/internal/config"
	"github.com/san-kum/geodesic/internal/export"
	"github.com/san-kum/geodesic/internal/scene"
	"github.com/san-kum/geodesic/internal/trajectory"
)

type Renderer struct {
	cfg    *config.Config
	html   *export.HTMLWriter
	opener export.Opener
	out    io.Writer
	logger *log.Logger

	// JSONPath, when set, also receives the figure as JSON.
	JSONPath string
}

type Result struct {
	Output  string
	Samples int
	Opened  bool
}

func New(cfg *config.Config, opener export.Opener, out io.Writer, logger *log.Logger) *Renderer {
	if opener == nil {
		opener = export.NopOpener{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{
		cfg:    cfg,
		html:   export.NewHTMLWriter(cfg.PlotlyJS),
		opener: opener,
		out:    out,
		logger: logger,
	}
}

// HTMLWriter exposes the page writer so callers can fix the div id.
func (r *Renderer) HTMLWriter() *export.HTMLWriter {
	return r.html
}

// Run loads the trajectory, builds the figure and writes the page. Input is
// fully parsed before anything is written, so bad input leaves no output.
func (r *Renderer) Run(ctx context.Context) (*Result, error) {
	tr, err := trajectory.Load(r.cfg.Input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "loaded %d samples from %s\n", tr.Len(), r.cfg.Input)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fig := scene.Build(tr, r.cfg)

	if r.JSONPath != "" {
		if err := export.WriteFigureJSONFile(r.JSONPath, fig); err != nil {
			return nil, fmt.Errorf("write figure json: %w", err)
		}
		fmt.Fprintf(r.out, "wrote %s\n", r.JSONPath)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.html.WriteFile(r.cfg.Output, fig); err != nil {
		return nil, fmt.Errorf("write plot: %w", err)
	}
	fmt.Fprintf(r.out, "wrote %s\n", r.cfg.Output)

	res := &Result{Output: r.cfg.Output, Samples: tr.Len()}
	if !r.cfg.AutoOpen {
		return res, nil
	}
	// the page is already on disk; a missing viewer is not fatal
	if err := r.opener.Open(r.cfg.Output); err != nil {
		r.logger.Printf("open %s: %v", r.cfg.Output, err)
		return res, nil
	}
	res.Opened = true
	return res, nil
}
