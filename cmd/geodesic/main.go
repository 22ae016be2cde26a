package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/geodesic/internal/config"
	"github.com/san-kum/geodesic/internal/export"
	"github.com/san-kum/geodesic/internal/render"
	"github.com/san-kum/geodesic/internal/report"
	"github.com/san-kum/geodesic/internal/trajectory"
)

var (
	configFile string
	preset     string
	input      string
	output     string
	noOpen     bool
	// render
	jsonOut string
	// svg / chart
	plane    string
	svgOut   string
	chartOut string
	// preview
	width  int
	height int
)

var logger = log.New(os.Stderr, "geodesic: ", 0)

// opener is replaced in tests.
var opener export.Opener = export.BrowserOpener{}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the command tree. With no subcommand it renders
// geodesic.txt to geodesic_plot.html and opens it.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "geodesic",
		Short:        "render a Schwarzschild geodesic as an interactive 3D plot",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runRender,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&input, "input", config.DefaultInput, "trajectory table (tau x y z)")
	rootCmd.PersistentFlags().StringVar(&output, "output", config.DefaultOutput, "html output path")
	rootCmd.PersistentFlags().BoolVar(&noOpen, "no-open", false, "do not open the plot after writing")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "write the interactive html plot",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&jsonOut, "json", "", "also write the plotly figure as json")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "print trajectory statistics",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "plot r(tau) in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&width, "width", 80, "graph width")
	previewCmd.Flags().IntVar(&height, "height", 15, "graph height")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write a 2D projection as svg",
		Args:  cobra.NoArgs,
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVar(&plane, "plane", "xz", "projection plane (xy, xz, yz)")
	svgCmd.Flags().StringVar(&svgOut, "out", "geodesic_projection.svg", "svg output path")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "write r(tau) as a png chart",
		Args:  cobra.NoArgs,
		RunE:  runChart,
	}
	chartCmd.Flags().StringVar(&chartOut, "out", "geodesic_radius.png", "png output path")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(renderCmd, summaryCmd, previewCmd, svgCmd, chartCmd, configCmd, presetsCmd)

	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") || configFile == "" {
		cfg.Input = input
	}
	if flags.Changed("output") || configFile == "" {
		cfg.Output = output
	}
	if noOpen {
		cfg.AutoOpen = false
	}
	return cfg, nil
}

func loadTrajectory(cmd *cobra.Command) (*config.Config, *trajectory.Trajectory, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	tr, err := trajectory.Load(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	return cfg, tr, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r := render.New(cfg, opener, cmd.OutOrStdout(), logger)
	r.JSONPath = jsonOut

	_, err = r.Run(cmd.Context())
	return err
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, tr, err := loadTrajectory(cmd)
	if err != nil {
		return err
	}
	s := report.Summarize(tr, cfg.HorizonRadius())
	fmt.Fprintln(cmd.OutOrStdout(), s.Render(report.ForFile(os.Stdout)))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, tr, err := loadTrajectory(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Preview(tr, width, height))
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	p, err := export.ParsePlane(plane)
	if err != nil {
		return err
	}
	cfg, tr, err := loadTrajectory(cmd)
	if err != nil {
		return err
	}
	svg := export.ProjectionSVG(tr, p, 800, 800, cfg.HorizonRadius(), "#b2182b")
	if svg == "" {
		return fmt.Errorf("need at least 2 samples to draw a projection")
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgOut)
	return nil
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, tr, err := loadTrajectory(cmd)
	if err != nil {
		return err
	}
	f, err := os.Create(chartOut)
	if err != nil {
		return err
	}
	if err := export.RadiusChartPNG(f, tr, cfg.HorizonRadius()); err != nil {
		f.Close()
		os.Remove(chartOut)
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", chartOut)
	return nil
}
