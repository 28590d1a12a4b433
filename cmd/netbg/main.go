package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/netbg/internal/background"
	"github.com/san-kum/netbg/internal/config"
	"github.com/san-kum/netbg/internal/event"
	"github.com/san-kum/netbg/internal/export"
	"github.com/san-kum/netbg/internal/gui"
	"github.com/san-kum/netbg/internal/render"
	"github.com/san-kum/netbg/internal/schedule"
	"github.com/san-kum/netbg/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dark       bool
	palette    string
	seed       int64
	fps        int
	// Offscreen runs
	outPath  string
	frames   int
	width    int
	height   int
	pointer  string
	duration time.Duration
)

// main registers the commands and flags and runs the terminal host when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "netbg",
		Short:         "animated particle network background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&dark, "dark", false, "start in the dark theme")
	pf.StringVar(&palette, "palette", config.DefaultPalette, "palette scheme ("+strings.Join(render.SchemeNames(), ", ")+")")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames offscreen and write the last one (png or svg)",
		RunE:  runSnapshot,
	}
	offscreenFlags(snapshotCmd)

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames offscreen into an animated gif",
		RunE:  runRecord,
	}
	offscreenFlags(recordCmd)

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "run in real time without a display and plot links per frame",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "run time")
	headlessCmd.Flags().IntVar(&width, "width", 0, "surface width (default from config)")
	headlessCmd.Flags().IntVar(&height, "height", 0, "surface height (default from config)")
	headlessCmd.Flags().StringVar(&pointer, "pointer", "", "pointer position x,y")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "netbg.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, snapshotCmd, recordCmd, headlessCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func offscreenFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	cmd.Flags().IntVar(&frames, "frames", 0, "frames to simulate (default from config)")
	cmd.Flags().IntVar(&width, "width", 0, "surface width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "surface height (default from config)")
	cmd.Flags().StringVar(&pointer, "pointer", "", "pointer position x,y")
	cmd.MarkFlagRequired("out")
}

// loadConfig layers defaults, preset, config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" && !config.Apply(cfg, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dark") {
		cfg.Dark = dark
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Lookup("frames") != nil && frames > 0 {
		cfg.Snapshot.Frames = frames
	}
	if width > 0 {
		cfg.Snapshot.Width = width
	}
	if height > 0 {
		cfg.Snapshot.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func engineOptions(cfg *config.Config) background.Options {
	return background.Options{
		Field:  cfg.FieldParams(),
		Render: cfg.RenderParams(),
		Scheme: cfg.Scheme(),
		Seed:   cfg.Seed,
	}
}

func parsePointer(s string) (x, y float64, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("pointer must be x,y: %q", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, false, fmt.Errorf("pointer x: %w", err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, false, fmt.Errorf("pointer y: %w", err)
	}
	return x, y, true, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunInteractive(cfg)
}

// offscreen attaches an engine to a recorder, runs cfg.Snapshot.Frames
// ticks and calls onFrame after each one.
func offscreen(cfg *config.Config, onFrame func(rec *render.Recorder)) (*background.Engine, error) {
	px, py, hasPointer, err := parsePointer(pointer)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	frame := schedule.NewFrame()
	engine := background.New(bus, frame, engineOptions(cfg))
	rec := &render.Recorder{}
	target := &background.StaticTarget{
		Width:   float64(cfg.Snapshot.Width),
		Height:  float64(cfg.Snapshot.Height),
		Surface: rec,
	}
	if err := engine.Attach(target, cfg.Dark); err != nil {
		return nil, err
	}
	defer engine.Detach()

	if hasPointer {
		bus.Publish(event.NewPointerMove(px, py))
	}
	for i := 0; i < cfg.Snapshot.Frames; i++ {
		frame.Fire()
		onFrame(rec)
	}
	return engine, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Snapshot.Frames == 0 {
		cfg.Snapshot.Frames = 1
	}

	var last *render.Recorder
	engine, err := offscreen(cfg, func(rec *render.Recorder) { last = rec })
	if err != nil {
		return err
	}

	pal := cfg.Scheme().For(cfg.Dark)
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".svg":
		svg := export.FrameToSVG(last, float64(cfg.Snapshot.Width), float64(cfg.Snapshot.Height), pal.Background, cfg.LayerOpacity)
		if _, err := f.WriteString(svg); err != nil {
			return err
		}
	case ".png":
		raster := export.NewRaster(cfg.Snapshot.Width, cfg.Snapshot.Height, pal.Background, cfg.LayerOpacity)
		last.Replay(raster)
		if err := export.WritePNG(f, raster.Image); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q (use .png or .svg)", filepath.Ext(outPath))
	}

	st := engine.Stats()
	fmt.Printf("wrote %s: %d frames, %d particles, %d links, %d pointer links\n",
		outPath, engine.Frames(), st.Particles, st.Links, st.PointerLinks)
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if filepath.Ext(outPath) != ".gif" {
		return fmt.Errorf("record writes gif files, got %q", outPath)
	}

	pal := cfg.Scheme().For(cfg.Dark)
	raster := export.NewRaster(cfg.Snapshot.Width, cfg.Snapshot.Height, pal.Background, cfg.LayerOpacity)
	anim := export.NewAnimation(cfg.FPS)
	engine, err := offscreen(cfg, func(rec *render.Recorder) {
		rec.Replay(raster)
		anim.Capture(raster.Image)
	})
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := anim.Encode(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d frames, %d particles\n", outPath, anim.Len(), engine.Stats().Particles)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	px, py, hasPointer, err := parsePointer(pointer)
	if err != nil {
		return err
	}

	bus := event.NewBus()
	engine := background.New(bus, schedule.NewTicker(cfg.FPS), engineOptions(cfg))
	target := &background.StaticTarget{
		Width:   float64(cfg.Snapshot.Width),
		Height:  float64(cfg.Snapshot.Height),
		Surface: &render.Recorder{},
	}
	if err := engine.Attach(target, cfg.Dark); err != nil {
		return err
	}
	defer engine.Detach()
	if hasPointer {
		bus.Publish(event.NewPointerMove(px, py))
	}

	interval := time.Second / time.Duration(cfg.FPS)
	var links []float64
	start := time.Now()
	for time.Since(start) < duration {
		time.Sleep(interval)
		links = append(links, float64(engine.Stats().Links))
	}
	engine.Detach()

	elapsed := time.Since(start).Seconds()
	fmt.Printf("%d frames in %.1fs (%.1f fps), %d particles\n",
		engine.Frames(), elapsed, float64(engine.Frames())/elapsed, engine.Stats().Particles)
	if len(links) > 1 {
		fmt.Println(asciigraph.Plot(links, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("links per frame")))
	}
	return nil
}
