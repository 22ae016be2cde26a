package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput    = "geodesic.txt"
	DefaultOutput   = "geodesic_plot.html"
	DefaultTitle    = "Geodesic in Schwarzschild spacetime"
	DefaultPlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

	// Geometrized units: lengths are multiples of M.
	DefaultMass       = 1.0
	DefaultHorizonRes = 50
)

type Config struct {
	Input    string `yaml:"input" toml:"input"`
	Output   string `yaml:"output" toml:"output"`
	AutoOpen bool   `yaml:"auto_open" toml:"auto_open"`
	PlotlyJS string `yaml:"plotly_js" toml:"plotly_js"`

	Mass       float64 `yaml:"mass" toml:"mass"`
	HorizonRes int     `yaml:"horizon_resolution" toml:"horizon_resolution"`

	Title      string           `yaml:"title" toml:"title"`
	Trajectory TrajectoryStyle  `yaml:"trajectory" toml:"trajectory"`
	Horizon    HorizonStyle     `yaml:"horizon" toml:"horizon"`
	Scene      SceneConfig      `yaml:"scene" toml:"scene"`
	Legend     LegendConfig     `yaml:"legend" toml:"legend"`
	Initial    InitialCondition `yaml:"initial_conditions" toml:"initial_conditions"`
}

type TrajectoryStyle struct {
	Name          string `yaml:"name" toml:"name"`
	ColorScale    string `yaml:"colorscale" toml:"colorscale"`
	Width         int    `yaml:"width" toml:"width"`
	ColorBarTitle string `yaml:"colorbar_title" toml:"colorbar_title"`
}

type HorizonStyle struct {
	Name    string  `yaml:"name" toml:"name"`
	Color   string  `yaml:"color" toml:"color"`
	Opacity float64 `yaml:"opacity" toml:"opacity"`
}

type SceneConfig struct {
	XTitle     string  `yaml:"x_title" toml:"x_title"`
	YTitle     string  `yaml:"y_title" toml:"y_title"`
	ZTitle     string  `yaml:"z_title" toml:"z_title"`
	AspectMode string  `yaml:"aspectmode" toml:"aspectmode"`
	Background string  `yaml:"background" toml:"background"`
	Eye        Vector  `yaml:"eye" toml:"eye"`
	Center     Vector  `yaml:"center" toml:"center"`
	Up         Vector  `yaml:"up" toml:"up"`
	Margin     Margins `yaml:"margin" toml:"margin"`
}

type Vector struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
	Z float64 `yaml:"z" toml:"z" json:"z"`
}

type Margins struct {
	L int `yaml:"l" toml:"l"`
	R int `yaml:"r" toml:"r"`
	B int `yaml:"b" toml:"b"`
	T int `yaml:"t" toml:"t"`
}

type LegendConfig struct {
	X           float64 `yaml:"x" toml:"x"`
	Y           float64 `yaml:"y" toml:"y"`
	BgColor     string  `yaml:"bgcolor" toml:"bgcolor"`
	BorderColor string  `yaml:"bordercolor" toml:"bordercolor"`
	BorderWidth int     `yaml:"borderwidth" toml:"borderwidth"`
	FontSize    int     `yaml:"font_size" toml:"font_size"`
	ItemSizing  string  `yaml:"itemsizing" toml:"itemsizing"`
}

// InitialCondition holds the display text of the integrator's starting
// point. The values are not derived from the loaded trajectory.
type InitialCondition struct {
	R      string `yaml:"r" toml:"r"`
	Theta  string `yaml:"theta" toml:"theta"`
	Phi    string `yaml:"phi" toml:"phi"`
	VR     string `yaml:"v_r" toml:"v_r"`
	VTheta string `yaml:"v_theta" toml:"v_theta"`
	VPhi   string `yaml:"v_phi" toml:"v_phi"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:      DefaultInput,
		Output:     DefaultOutput,
		AutoOpen:   true,
		PlotlyJS:   DefaultPlotlyJS,
		Mass:       DefaultMass,
		HorizonRes: DefaultHorizonRes,
		Title:      DefaultTitle,
		Trajectory: TrajectoryStyle{
			Name:          "Trajectory",
			ColorScale:    "RdBu",
			Width:         6,
			ColorBarTitle: "Proper time τ",
		},
		Horizon: HorizonStyle{
			Name:    "Event horizon (r=2M)",
			Color:   "darkgray",
			Opacity: 0.5,
		},
		Scene: SceneConfig{
			XTitle:     "x [M]",
			YTitle:     "y [M]",
			ZTitle:     "z [M]",
			AspectMode: "data",
			Background: "gainsboro",
			Eye:        Vector{X: 1.5, Y: 1.5, Z: 0.5},
			Center:     Vector{},
			Up:         Vector{Z: 1},
			Margin:     Margins{T: 30},
		},
		Legend: LegendConfig{
			X:           0.02,
			Y:           0.98,
			BgColor:     "rgba(255,255,255,0.8)",
			BorderColor: "Black",
			BorderWidth: 1,
			FontSize:    15,
			ItemSizing:  "constant",
		},
		Initial: InitialCondition{
			R:      "5.5 M",
			Theta:  "π/4 rad",
			Phi:    "0.00 rad",
			VR:     "0.0",
			VTheta: "0.1M",
			VPhi:   "-0.2M",
		},
	}
}

// HorizonRadius is the Schwarzschild radius 2M.
func (c *Config) HorizonRadius() float64 {
	return 2 * c.Mass
}

// Load reads a YAML or TOML (by extension) file over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver decodes the file into cfg; keys absent from the file keep the
// values already in cfg.
func LoadOver(path string, cfg *Config) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
