// Command renderer is the CLI entry point: renderer [SPP] [OUTPUT_NAME],
// reading NTHREADS from the environment and selecting one of the five
// fixture scenes. Grounded in the teacher's main.go (flag parsing,
// scene-name switch, saveImageToFile-style PNG writing), minus PBRT
// file loading and the interactive preview window — both explicitly
// out of scope here.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mrubio/hwsspath/pkg/camera"
	"github.com/mrubio/hwsspath/pkg/color"
	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/integrator"
	"github.com/mrubio/hwsspath/pkg/render"
	"github.com/mrubio/hwsspath/pkg/scene"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

const (
	defaultWidth  = 400
	defaultHeight = 400
	defaultSPP    = 64
)

func main() {
	hwss := flag.Bool("hwss", true, "enable Hero Wavelength Spectral Sampling MIS (false = hero-only SWSS output)")
	sceneName := flag.String("scene", "cornell", "scene to render: floor, single-emitter, cornell, dispersion, mirror")
	progressive := flag.Bool("progressive", false, "periodically flush intermediate PNGs instead of writing only the final image")
	upsampleTable := flag.String("upsample-table", "", "path to a precomputed RGB->spectrum upsample table (optional; a built-in analytic fit is used if unset)")
	flag.Parse()

	spp, outputName, err := parsePositional(flag.Args())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	table, err := loadTable(*upsampleTable)
	if err != nil {
		fmt.Printf("Error loading upsample table: %v\n", err)
		os.Exit(1)
	}

	sc, err := buildScene(*sceneName, table)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	cfg := render.ConfigFromEnv()
	width, height := defaultWidth, defaultHeight
	cam := camera.New(camera.Config{
		Center:      core.NewPoint3[core.World](0, 1, 3.5),
		LookAt:      core.NewPoint3[core.World](0, 0.3, 0),
		Up:          core.NewVec3[core.World](0, 1, 0),
		Width:       width,
		Height:      height,
		VFovDegrees: 40,
	})
	pt := integrator.New(integrator.Config{HWSS: *hwss})
	fb := render.NewFramebuffer(width, height)
	progress := render.NewProgress(int64(width * height * spp))

	fmt.Printf("Rendering %q at %dx%d, %d spp, %d workers (HWSS=%v)\n",
		*sceneName, width, height, spp, cfg.NumWorkers, *hwss)
	startTime := time.Now()

	watchDone := make(chan struct{})
	go func() {
		progress.WatchTerminal(os.Stdout, int(os.Stdout.Fd()), watchDone)
	}()

	if *progressive {
		renderProgressively(cfg, width, height, spp, cam, sc, pt, fb, progress, outputName)
	} else {
		tiles := render.NewTiles(width, height, cfg.TileSize, spp)
		sched := render.NewScheduler(tiles)
		render.Run(sched, cam, sc, pt, fb, progress, cfg.NumWorkers)
	}
	close(watchDone)

	if err := writePNG(fb, outputFilename(outputName, "")); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
}

// parsePositional reads the [SPP] [OUTPUT_NAME] positional arguments,
// both optional, defaulting to defaultSPP and "render".
func parsePositional(args []string) (spp int, outputName string, err error) {
	spp, outputName = defaultSPP, "render"
	if len(args) >= 1 {
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n <= 0 {
			return 0, "", fmt.Errorf("invalid SPP %q: want a positive integer", args[0])
		}
		spp = n
	}
	if len(args) >= 2 {
		outputName = args[1]
	}
	return spp, outputName, nil
}

func loadTable(path string) (*spectrum.Table, error) {
	if path == "" {
		return spectrum.NewAnalyticTable(), nil
	}
	return spectrum.LoadTable(path)
}

func buildScene(name string, table *spectrum.Table) (*scene.Scene, error) {
	switch name {
	case "floor":
		return scene.NewFloorScene(table), nil
	case "single-emitter":
		return scene.NewSingleEmitterScene(table), nil
	case "cornell":
		return scene.NewCornellScene(table), nil
	case "dispersion":
		return scene.NewDispersionScene(table), nil
	case "mirror":
		return scene.NewMirrorScene(table), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (want one of floor, single-emitter, cornell, dispersion, mirror)", name)
	}
}

// renderProgressively runs the tile scheduler in the background and
// periodically flushes the framebuffer's current running mean to a
// numbered PNG, the stand-in SPEC_FULL.md §9 specifies for an
// interactive preview window (out of scope here): "also write
// intermediate PNGs".
func renderProgressively(
	cfg render.Config,
	width, height, spp int,
	cam *camera.Camera,
	sc *scene.Scene,
	pt *integrator.PathTracer,
	fb *render.Framebuffer,
	progress *render.Progress,
	outputName string,
) {
	tiles := render.NewTiles(width, height, cfg.TileSize, spp)
	sched := render.NewScheduler(tiles)

	renderDone := make(chan struct{})
	go func() {
		render.Run(sched, cam, sc, pt, fb, progress, cfg.NumWorkers)
		close(renderDone)
	}()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	pass := 0
	for {
		select {
		case <-renderDone:
			return
		case <-ticker.C:
			pass++
			name := fmt.Sprintf("_pass_%02d", pass)
			if err := writePNG(fb, outputFilename(outputName, name)); err != nil {
				fmt.Printf("Error saving intermediate pass %d: %v\n", pass, err)
			}
		}
	}
}

func writePNG(fb *render.Framebuffer, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	img := color.Image(fb.Width(), fb.Height(), fb.Means())
	return color.WritePNG(file, img)
}

func outputFilename(name, suffix string) string {
	return filepath.Join("output", name+suffix+".png")
}
