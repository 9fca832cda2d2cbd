package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/colorbook-app/lineart/internal/pipeline"
	"github.com/colorbook-app/lineart/internal/raster"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	input := flag.String("input", "", "path to the source photo (required)")
	output := flag.String("output", "coloring-page.png", "path for the lossless coloring page PNG")
	preview := flag.String("preview", "", "optional path for a JPEG preview of the result")
	overlay := flag.String("overlay", "", "optional path for an edges-over-photo comparison JPEG")
	overlayColor := flag.String("overlay-color", raster.DefaultOverlayColor, "hex tint for overlay lines, e.g. #2563EB")
	sensitivity := flag.Int("sensitivity", 50, "edge sensitivity 1-100, higher keeps fainter edges")
	thickness := flag.Int("thickness", 2, "line thickness 1-5")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Parse()

	// All diagnostics go to stderr; stdout stays clean for scripting.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *showVersion {
		fmt.Printf("lineart %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "lineart - convert a photo into a coloring-book line drawing")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(2)
	}

	settings := pipeline.Settings{
		Sensitivity: *sensitivity,
		Thickness:   *thickness,
	}.Clamp()

	if err := run(*input, *output, *preview, *overlay, *overlayColor, settings); err != nil {
		var decodeErr *raster.DecodeError
		if errors.As(err, &decodeErr) {
			log.Fatalf("%s is not a supported image (png, jpeg or gif): %v", *input, decodeErr.Cause)
		}
		log.Fatalf("lineart: %v", err)
	}
}

func run(input, output, preview, overlay, overlayColor string, settings pipeline.Settings) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	debug := os.Getenv("LINEART_LOG_LEVEL") == "debug"

	start := time.Now()
	cache, err := pipeline.Prepare(context.Background(), data)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("prepared %dx%d in %v", cache.Width(), cache.Height(), time.Since(start))
	}

	start = time.Now()
	page, err := pipeline.RenderExport(cache, settings)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("rendered (sensitivity=%d thickness=%d) in %v",
			settings.Sensitivity, settings.Thickness, time.Since(start))
	}
	if err := os.WriteFile(output, page, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Printf("wrote %s (%dx%d)", output, cache.Width(), cache.Height())

	if preview != "" {
		jpg, err := pipeline.RenderPreview(cache, settings)
		if err != nil {
			return err
		}
		if err := os.WriteFile(preview, jpg, 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		log.Printf("wrote %s", preview)
	}

	if overlay != "" {
		mask := pipeline.RenderMask(cache, settings)
		composed := raster.Overlay(cache.Preview(), mask, cache.Width(), cache.Height(), overlayColor)
		jpg, err := raster.EncodeJPEG(composed)
		if err != nil {
			return err
		}
		if err := os.WriteFile(overlay, jpg, 0o644); err != nil {
			return fmt.Errorf("write overlay: %w", err)
		}
		log.Printf("wrote %s", overlay)
	}

	return nil
}
