package scene

import "github.com/san-kum/geodesic/internal/config"

type Layout struct {
	Title    Title  `json:"title"`
	Scene    Scene  `json:"scene"`
	Margin   Margin `json:"margin"`
	AutoSize bool   `json:"autosize"`
	Legend   Legend `json:"legend"`
}

type Title struct {
	Text string `json:"text"`
}

type Scene struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	AspectMode string `json:"aspectmode"`
	Camera     Camera `json:"camera"`
}

type Axis struct {
	Title           Title  `json:"title"`
	BackgroundColor string `json:"backgroundcolor"`
	ShowBackground  bool   `json:"showbackground"`
}

type Camera struct {
	Up     Vec3 `json:"up"`
	Center Vec3 `json:"center"`
	Eye    Vec3 `json:"eye"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

type Legend struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	BgColor     string  `json:"bgcolor"`
	BorderColor string  `json:"bordercolor"`
	BorderWidth int     `json:"borderwidth"`
	Font        Font    `json:"font"`
	ItemSizing  string  `json:"itemsizing"`
}

type Font struct {
	Size int `json:"size"`
}

// NewLayout builds the scene layout. aspectmode "data" keeps one unit the
// same length on every axis so the horizon renders as a sphere.
func NewLayout(cfg *config.Config) Layout {
	sc := cfg.Scene
	axis := func(title string) Axis {
		// plotly.js hides axis backgrounds unless showbackground is set
		return Axis{Title: Title{title}, BackgroundColor: sc.Background, ShowBackground: true}
	}

	return Layout{
		Title: Title{cfg.Title},
		Scene: Scene{
			XAxis:      axis(sc.XTitle),
			YAxis:      axis(sc.YTitle),
			ZAxis:      axis(sc.ZTitle),
			AspectMode: sc.AspectMode,
			Camera: Camera{
				Up:     vec(sc.Up),
				Center: vec(sc.Center),
				Eye:    vec(sc.Eye),
			},
		},
		Margin:   Margin{L: sc.Margin.L, R: sc.Margin.R, B: sc.Margin.B, T: sc.Margin.T},
		AutoSize: true,
		Legend: Legend{
			X:           cfg.Legend.X,
			Y:           cfg.Legend.Y,
			BgColor:     cfg.Legend.BgColor,
			BorderColor: cfg.Legend.BorderColor,
			BorderWidth: cfg.Legend.BorderWidth,
			Font:        Font{Size: cfg.Legend.FontSize},
			ItemSizing:  cfg.Legend.ItemSizing,
		},
	}
}

func vec(v config.Vector) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }
