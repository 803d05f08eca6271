package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/analysis"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/approach"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/config"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/export"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/scenario"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/viz"
)

var (
	objectName     string
	mass           float64
	profileName    string
	integratorName string
	dt             float64
	duration       float64
	startKm        float64
	speedKmS       float64
	inwardKmS      float64
	floorKm        float64
	configFile     string
	preset         string
	themeName      string
	frameRate      int
	exportFormat   string
	fromKm         float64
	toKm           float64
	points         int
	atDistances    string
	atTime         float64
	svgScale       float64
	chartHeight    int
	chartWidth     int
)

// addConfigFlags attaches the shared simulation flags. Every command
// that builds a run takes the same set.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&objectName, "object", "blackhole", "object kind (blackhole, neutronstar)")
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass in solar masses (defaults per object)")
	cmd.Flags().StringVar(&profileName, "profile", "hold", "approach profile (hold, linear, freefall)")
	cmd.Flags().StringVar(&integratorName, "integrator", "rk4", "integrator for freefall")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&startKm, "start", 500, "starting distance (km)")
	cmd.Flags().Float64Var(&speedKmS, "speed", 0, "inward speed for linear approach (km/s)")
	cmd.Flags().Float64Var(&inwardKmS, "inward", 0, "initial inward speed for freefall (km/s)")
	cmd.Flags().Float64Var(&floorKm, "floor", 0, "distance floor (defaults to the surface)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "spaghettify",
		Short: "black hole and neutron star spaghettification lab",
		RunE:  runLive,
	}
	addConfigFlags(rootCmd)
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive approach with live stretching",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)
	liveCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted approach and report metrics",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [series]",
		Short: "chart a run series (tidal, distance, stretch, gravity, curve)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	addConfigFlags(plotCmd)
	plotCmd.Flags().Float64Var(&fromKm, "from", 0, "curve start distance (km)")
	plotCmd.Flags().Float64Var(&toKm, "to", 0, "curve end distance (km)")
	plotCmd.Flags().IntVar(&points, "points", 120, "curve sample count")
	plotCmd.Flags().IntVar(&chartHeight, "height", 15, "chart height")
	plotCmd.Flags().IntVar(&chartWidth, "width", 80, "chart width")

	tableCmd := &cobra.Command{
		Use:   "table [object[:mass]]...",
		Short: "compare objects side by side",
		RunE:  tableCompare,
	}
	tableCmd.Flags().StringVar(&atDistances, "at", "", "extra tidal sample distances, comma separated (km)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run and stream frames to stdout",
		RunE:  exportRun,
	}
	addConfigFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (csv, json)")

	svgCmd := &cobra.Command{
		Use:   "svg [scene|curve]",
		Short: "render a scene snapshot or force curve as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  svgRun,
	}
	addConfigFlags(svgCmd)
	svgCmd.Flags().Float64Var(&atTime, "at-time", 0, "snapshot time (defaults to the last frame)")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per canvas dot")
	svgCmd.Flags().Float64Var(&fromKm, "from", 0, "curve start distance (km)")
	svgCmd.Flags().Float64Var(&toKm, "to", 0, "curve end distance (km)")
	svgCmd.Flags().IntVar(&points, "points", 120, "curve sample count")

	lessonCmd := &cobra.Command{
		Use:   "lesson [file]",
		Short: "run a lesson file and summarize each step",
		Args:  cobra.ExactArgs(1),
		RunE:  lessonRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [object]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  presetsRun,
	}

	rootCmd.AddCommand(liveCmd, runCmd, plotCmd, tableCmd, exportCmd, svgCmd, lessonCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and flag overrides in
// that order. Flags win over whatever they were layered on.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		p := config.GetPreset(objectName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(objectName))
		}
		clone := *p
		cfg = &clone
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("object") {
		cfg.Object = objectName
		if !cmd.Flags().Changed("mass") {
			// Refill from the new object's default.
			cfg.MassSolar = 0
		}
	}
	if cmd.Flags().Changed("mass") {
		cfg.MassSolar = mass
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = profileName
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integratorName
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("start") {
		cfg.Approach.StartKm = startKm
	}
	if cmd.Flags().Changed("speed") {
		cfg.Approach.SpeedKmS = speedKmS
	}
	if cmd.Flags().Changed("inward") {
		cfg.Approach.InwardKmS = inwardKmS
	}
	if cmd.Flags().Changed("floor") {
		cfg.Approach.FloorKm = floorKm
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

func buildAndRun(cmd *cobra.Command) (*config.Config, *sim.Simulator, *sim.Result, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := scenario.Build(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	result, err := s.Run(context.Background(), scenario.RunConfig(cfg))
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, s, result, nil
}

func resolveObject(cmd *cobra.Command) (*config.Config, astro.Object, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, astro.Object{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, astro.Object{}, err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return nil, astro.Object{}, err
	}
	obj, err := astro.Properties(kind, cfg.MassSolar)
	if err != nil {
		return nil, astro.Object{}, err
	}
	return cfg, obj, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, obj, err := resolveObject(cmd)
	if err != nil {
		return err
	}

	reg := scenario.NewRegistry()
	integ, err := reg.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}
	if _, err := reg.GetProfile(cfg.Profile, cfg, obj, integ); err != nil {
		return err
	}

	if themeName != "" {
		viz.SetTheme(themeName)
	}

	// Profile name was validated above, rebuilding cannot fail.
	factory := func(o astro.Object) approach.Profile {
		p, _ := reg.GetProfile(cfg.Profile, cfg, o, integ)
		return p
	}

	m := viz.NewModel(obj, factory, cfg.Approach.StartKm, cfg.Dt, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, s, result, err := buildAndRun(cmd)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	obj := s.Object()
	fmt.Printf("%s  %.1f %s  (radius %.2f km)\n", obj.Name, obj.MassSolar, obj.MassUnit, obj.RadiusKm)
	fmt.Printf("profile %s, integrator %s\n", cfg.Profile, cfg.Integrator)
	fmt.Printf("completed %d steps in %v\n", result.StepsTaken, elapsed)

	if n := len(result.Frames); n > 0 {
		last := result.Frames[n-1]
		fmt.Printf("final distance: %.2f km, stretch %.2f\n", last.DistanceKm, last.Stretch)
	}

	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, fmtMetric(result.Metrics[name]))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	series := "tidal"
	if len(args) > 0 {
		series = args[0]
	}
	if series == "curve" {
		return plotCurve(cmd)
	}

	_, _, result, err := buildAndRun(cmd)
	if err != nil {
		return err
	}
	if len(result.Frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := make([]float64, len(result.Frames))
	var caption string
	switch series {
	case "tidal":
		for i, fr := range result.Frames {
			data[i] = fr.Sample.TidalForce
		}
		caption = "tidal force (N)"
	case "distance":
		for i, fr := range result.Frames {
			data[i] = fr.DistanceKm
		}
		caption = "distance (km)"
	case "stretch":
		for i, fr := range result.Frames {
			data[i] = fr.Stretch
		}
		caption = "stretch factor"
	case "gravity":
		for i, fr := range result.Frames {
			data[i] = fr.Sample.SurfaceGravity
		}
		caption = "surface gravity (m/s²)"
	default:
		return fmt.Errorf("unknown series: %s (tidal, distance, stretch, gravity, curve)", series)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func resolveCurve(cmd *cobra.Command) (astro.Object, *analysis.Curve, error) {
	cfg, obj, err := resolveObject(cmd)
	if err != nil {
		return astro.Object{}, nil, err
	}

	from, to := fromKm, toKm
	if !cmd.Flags().Changed("from") {
		from = obj.RadiusKm
	}
	if !cmd.Flags().Changed("to") {
		to = cfg.Approach.StartKm
	}

	curve, err := analysis.ForceCurve(obj, from, to, points)
	if err != nil {
		return astro.Object{}, nil, err
	}
	return obj, curve, nil
}

func plotCurve(cmd *cobra.Command) error {
	obj, curve, err := resolveCurve(cmd)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(curve.Forces,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(fmt.Sprintf("%s tidal force (N), %.0f..%.0f km",
			obj.Name, curve.DistancesKm[0], curve.DistancesKm[len(curve.DistancesKm)-1])),
	)
	fmt.Println(graph)
	return nil
}

func tableCompare(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"blackhole", "neutronstar"}
	}

	objects := make([]astro.Object, 0, len(args))
	for _, spec := range args {
		name, massStr, hasMass := strings.Cut(spec, ":")
		kind, err := astro.ParseKind(name)
		if err != nil {
			return err
		}
		m := astro.DefaultMass(kind)
		if hasMass {
			m, err = strconv.ParseFloat(massStr, 64)
			if err != nil {
				return fmt.Errorf("bad mass in %q: %w", spec, err)
			}
		}
		obj, err := astro.Properties(kind, m)
		if err != nil {
			return err
		}
		objects = append(objects, obj)
	}

	distances, err := parseDistances(atDistances)
	if err != nil {
		return err
	}

	rows, err := analysis.CompareRows(objects, distances)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "OBJECT\tMASS\tRADIUS_KM\tGRAVITY\tTIDAL@SURFACE\tBREAKUP_KM"
	for _, d := range distances {
		header += fmt.Sprintf("\tTIDAL@%gKM", d)
	}
	fmt.Fprintln(w, header)

	for _, row := range rows {
		line := fmt.Sprintf("%s\t%.1f %s\t%.2f\t%s\t%s\t%s",
			row.Name, row.MassSolar, row.MassUnit, row.RadiusKm,
			fmtMetric(row.SurfaceGravity),
			fmtMetric(row.TidalAtRadius),
			fmtMetric(row.BreakupKm),
		)
		for _, v := range row.TidalAt {
			line += "\t" + fmtMetric(v)
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func parseDistances(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad distance %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, s, result, err := buildAndRun(cmd)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(os.Stdout, result)
	case "json":
		obj := s.Object()
		meta := export.Meta{
			Object:     obj.Kind.String(),
			MassSolar:  obj.MassSolar,
			Profile:    cfg.Profile,
			Integrator: cfg.Integrator,
			Dt:         cfg.Dt,
			Duration:   cfg.Duration,
		}
		return export.WriteJSON(os.Stdout, meta, result)
	default:
		return fmt.Errorf("unknown format: %s (csv, json)", exportFormat)
	}
}

func svgRun(cmd *cobra.Command, args []string) error {
	what := "scene"
	if len(args) > 0 {
		what = args[0]
	}

	switch what {
	case "scene":
		cfg, s, result, err := buildAndRun(cmd)
		if err != nil {
			return err
		}
		if len(result.Frames) == 0 {
			return fmt.Errorf("no frames to render")
		}
		fr := pickFrame(result, atTime, cmd.Flags().Changed("at-time"))

		obj := s.Object()
		canvas := viz.NewCanvas(80, 24)
		scene := viz.NewScene(obj, cfg.Approach.StartKm)
		scene.Render(canvas, fr.DistanceKm, fr.Command)

		fmt.Println(export.SceneSVG(canvas, svgScale, obj.Color))
		return nil
	case "curve":
		obj, curve, err := resolveCurve(cmd)
		if err != nil {
			return err
		}
		fmt.Println(export.CurveSVG(curve.DistancesKm, curve.Forces, 800, 500, obj.Color))
		return nil
	default:
		return fmt.Errorf("unknown target: %s (scene, curve)", what)
	}
}

// pickFrame returns the first frame at or past the requested time, or
// the final frame when no time was given.
func pickFrame(result *sim.Result, at float64, explicit bool) sim.Frame {
	if !explicit {
		return result.Frames[len(result.Frames)-1]
	}
	for _, fr := range result.Frames {
		if fr.Time >= at {
			return fr
		}
	}
	return result.Frames[len(result.Frames)-1]
}

func lessonRun(cmd *cobra.Command, args []string) error {
	lesson, err := scenario.LoadLesson(args[0])
	if err != nil {
		return err
	}

	if lesson.Name != "" {
		fmt.Println(lesson.Name)
	}
	if lesson.Description != "" {
		fmt.Println(lesson.Description)
	}
	fmt.Println()

	start := time.Now()
	steps, err := scenario.RunLesson(context.Background(), lesson)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOBJECT\tMASS\tPEAK_TIDAL\tMAX_STRETCH\tCONTACT_S")
	for _, st := range steps {
		fmt.Fprintf(w, "%s\t%s\t%.1f %s\t%s\t%s\t%s\n",
			st.Title, st.Object.Name, st.Object.MassSolar, st.Object.MassUnit,
			fmtMetric(st.Result.Metrics["peak_tidal"]),
			fmtMetric(st.Result.Metrics["max_stretch"]),
			fmtMetric(st.Result.Metrics["contact_time_s"]),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d steps in %v\n", len(steps), time.Since(start))
	return nil
}

func presetsRun(cmd *cobra.Command, args []string) error {
	kinds := []string{"blackhole", "neutronstar"}
	if len(args) > 0 {
		kinds = args[:1]
	}

	for _, kind := range kinds {
		names := config.ListPresets(kind)
		if len(names) == 0 {
			fmt.Printf("no presets for object: %s\n", kind)
			continue
		}
		fmt.Printf("presets for %s:\n", kind)
		for _, name := range names {
			p := config.GetPreset(kind, name)
			fmt.Printf("  %-10s %s approach, %.0fs at dt=%.3fs\n", name, p.Profile, p.Duration, p.Dt)
		}
	}
	return nil
}

// fmtMetric keeps huge magnitudes readable and marks the sentinels.
func fmtMetric(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "∞"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
