package export_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/geodesic/internal/config"
	"github.com/san-kum/geodesic/internal/export"
	"github.com/san-kum/geodesic/internal/scene"
	"github.com/san-kum/geodesic/internal/trajectory"
)

var payload = regexp.MustCompile(`Plotly\.newPlot\("[^"]*", (\[.*\]), (\{.*\}), \{"responsive": true\}\);`)

func sampleTrajectory() *trajectory.Trajectory {
	return &trajectory.Trajectory{
		Tau: []float64{0, 100, 200, 300},
		X:   []float64{14.142136, 10.2, 5.5, 2.4},
		Y:   []float64{0, 2.1, 3.3, 1.2},
		Z:   []float64{14.142136, 9.8, 4.6, 0.7},
	}
}

var _ = Describe("HTMLWriter", func() {
	var (
		fig *scene.Figure
		w   *export.HTMLWriter
	)

	BeforeEach(func() {
		fig = scene.Build(sampleTrajectory(), config.DefaultConfig())
		w = export.NewHTMLWriter(config.DefaultPlotlyJS)
	})

	It("renders a standalone page that loads plotly from the CDN", func() {
		var buf bytes.Buffer
		Expect(w.WriteHTML(&buf, fig)).To(Succeed())

		page := buf.String()
		Expect(page).To(HavePrefix("<!DOCTYPE html>"))
		Expect(page).To(ContainSubstring(`<script charset="utf-8" src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>`))
		Expect(page).To(ContainSubstring("Geodesic in Schwarzschild spacetime"))
		Expect(page).To(ContainSubstring("</html>"))
		Expect(strings.Count(page, "Plotly.newPlot(")).To(Equal(1))
	})

	It("embeds the trace data and layout as JSON", func() {
		var buf bytes.Buffer
		Expect(w.WriteHTML(&buf, fig)).To(Succeed())

		m := payload.FindStringSubmatch(buf.String())
		Expect(m).To(HaveLen(3))

		var traces []map[string]any
		Expect(json.Unmarshal([]byte(m[1]), &traces)).To(Succeed())
		Expect(traces).To(HaveLen(3))
		Expect(traces[0]).To(HaveKeyWithValue("type", "scatter3d"))
		Expect(traces[0]["x"]).To(HaveLen(4))
		Expect(traces[1]).To(HaveKeyWithValue("type", "surface"))
		Expect(traces[2]).To(HaveKeyWithValue("hoverinfo", "none"))

		line := traces[0]["line"].(map[string]any)
		Expect(line).To(HaveKeyWithValue("cmin", 0.0))
		Expect(line).To(HaveKeyWithValue("cmax", 300.0))

		var layout map[string]any
		Expect(json.Unmarshal([]byte(m[2]), &layout)).To(Succeed())
		Expect(layout).To(HaveKeyWithValue("title", map[string]any{"text": "Geodesic in Schwarzschild spacetime"}))
	})

	It("uses the id generator for the plot div", func() {
		w.NewID = func() string { return "plot-1" }
		var buf bytes.Buffer
		Expect(w.WriteHTML(&buf, fig)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring(`<div id="plot-1"`))
		Expect(buf.String()).To(ContainSubstring(`Plotly.newPlot("plot-1", `))
	})

	It("produces identical trace data on repeated renders", func() {
		var a, b bytes.Buffer
		Expect(w.WriteHTML(&a, fig)).To(Succeed())
		Expect(w.WriteHTML(&b, scene.Build(sampleTrajectory(), config.DefaultConfig()))).To(Succeed())

		Expect(payload.FindStringSubmatch(a.String())[1]).To(Equal(payload.FindStringSubmatch(b.String())[1]))
		// only the random div id differs
		Expect(a.String()).NotTo(Equal(b.String()))
	})

	Describe("WriteFile", func() {
		It("writes the page and leaves no temporary files", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "geodesic_plot.html")

			Expect(w.WriteFile(path, fig)).To(Succeed())
			Expect(path).To(BeARegularFile())

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})

		It("returns the error when the directory does not exist", func() {
			path := filepath.Join(GinkgoT().TempDir(), "missing", "out.html")
			Expect(w.WriteFile(path, fig)).NotTo(Succeed())
			Expect(path).NotTo(BeAnExistingFile())
		})
	})
})

var _ = Describe("WriteFigureJSON", func() {
	It("writes the full figure", func() {
		var buf bytes.Buffer
		fig := scene.Build(sampleTrajectory(), config.DefaultConfig())
		Expect(export.WriteFigureJSON(&buf, fig)).To(Succeed())

		var decoded struct {
			Data   []map[string]any `json:"data"`
			Layout map[string]any   `json:"layout"`
		}
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Data).To(HaveLen(3))
		Expect(decoded.Layout).To(HaveKey("scene"))
	})
})

var _ = Describe("ProjectionSVG", func() {
	It("draws the horizon and the projected path", func() {
		svg := export.ProjectionSVG(sampleTrajectory(), export.PlaneXZ, 400, 300, 2, "#b2182b")
		Expect(svg).To(HavePrefix("<?xml"))
		Expect(svg).To(ContainSubstring("<circle"))
		Expect(strings.Count(svg, " L")).To(Equal(3))
		Expect(svg).To(HaveSuffix("</svg>"))
	})

	It("returns nothing for fewer than two points", func() {
		tr := &trajectory.Trajectory{Tau: []float64{0}, X: []float64{1}, Y: []float64{1}, Z: []float64{1}}
		Expect(export.ProjectionSVG(tr, export.PlaneXY, 400, 300, 2, "red")).To(BeEmpty())
	})

	DescribeTable("ParsePlane",
		func(in string, want export.Plane, ok bool) {
			p, err := export.ParsePlane(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(want))
		},
		Entry("xy", "xy", export.PlaneXY, true),
		Entry("upper case", "XZ", export.PlaneXZ, true),
		Entry("yz", "yz", export.PlaneYZ, true),
		Entry("unknown", "zz", export.Plane(""), false),
	)
})

var _ = Describe("RadiusChartPNG", func() {
	It("renders a decodable PNG", func() {
		var buf bytes.Buffer
		Expect(export.RadiusChartPNG(&buf, sampleTrajectory(), 2)).To(Succeed())

		img, err := png.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(1024))
	})
})
