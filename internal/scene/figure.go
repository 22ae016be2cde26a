package scene

import "encoding/json"

// Figure is a complete plotly figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly trace. Implementations marshal with their "type" key.
type Trace interface {
	TraceType() string
}

// TraceData marshals only the trace list.
func (f *Figure) TraceData() ([]byte, error) {
	return json.Marshal(f.Data)
}

func (f *Figure) LayoutData() ([]byte, error) {
	return json.Marshal(f.Layout)
}

// ColorScale is either a named plotly scale ("RdBu") or explicit stops.
type ColorScale struct {
	Name  string
	Stops []ColorStop
}

type ColorStop struct {
	At    float64
	Color string
}

func NamedScale(name string) *ColorScale { return &ColorScale{Name: name} }

// UniformScale maps every value to one colour.
func UniformScale(color string) *ColorScale {
	return &ColorScale{Stops: []ColorStop{{0, color}, {1, color}}}
}

func (c ColorScale) MarshalJSON() ([]byte, error) {
	if len(c.Stops) == 0 {
		return json.Marshal(c.Name)
	}
	stops := make([][2]any, len(c.Stops))
	for i, s := range c.Stops {
		stops[i] = [2]any{s.At, s.Color}
	}
	return json.Marshal(stops)
}

type Scatter3d struct {
	Name       string  `json:"name"`
	Mode       string  `json:"mode"`
	X          Values  `json:"x"`
	Y          Values  `json:"y"`
	Z          Values  `json:"z"`
	Line       *Line   `json:"line,omitempty"`
	Marker     *Marker `json:"marker,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	HoverInfo  string  `json:"hoverinfo,omitempty"`
}

func (Scatter3d) TraceType() string { return "scatter3d" }

func (s Scatter3d) MarshalJSON() ([]byte, error) {
	type plain Scatter3d
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{s.TraceType(), plain(s)})
}

// Line styles a scatter3d polyline; Color holds one scalar per point.
type Line struct {
	Color      Values      `json:"color,omitempty"`
	ColorScale *ColorScale `json:"colorscale,omitempty"`
	Width      int         `json:"width,omitempty"`
	ColorBar   *ColorBar   `json:"colorbar,omitempty"`
	CMin       Number      `json:"cmin"`
	CMax       Number      `json:"cmax"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Marker struct {
	Size float64 `json:"size"`
}

type Surface struct {
	Name       string      `json:"name"`
	X          Grid        `json:"x"`
	Y          Grid        `json:"y"`
	Z          Grid        `json:"z"`
	ColorScale *ColorScale `json:"colorscale,omitempty"`
	Opacity    float64     `json:"opacity"`
	ShowScale  bool        `json:"showscale"`
	ShowLegend bool        `json:"showlegend"`
}

func (Surface) TraceType() string { return "surface" }

func (s Surface) MarshalJSON() ([]byte, error) {
	type plain Surface
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{s.TraceType(), plain(s)})
}

func boolPtr(b bool) *bool { return &b }
