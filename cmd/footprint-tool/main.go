// Command footprint-tool detects above-threshold regions in an image and
// writes an overlay visualization and/or a JSON dump of the footprints.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/astrokit/footprint"
	"github.com/astrokit/footprint/internal/render"
	"github.com/astrokit/footprint/pixels"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("footprint-tool %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		threshold  = flag.Float64("threshold", 128, "detection level")
		thType     = flag.String("type", "value", "threshold type: value, stdev, variance")
		negative   = flag.Bool("negative", false, "detect dark sources instead of bright ones")
		minPixels  = flag.Int("min-pixels", 10, "drop footprints smaller than this")
		eightConn  = flag.Bool("eight-connected", true, "join diagonally touching pixels")
		growBy     = flag.Int("grow", 0, "grow footprints by this many pixels")
		isotropic  = flag.Bool("isotropic", true, "grow with a disk instead of a square")
		blurSigma  = flag.Float64("blur", 0, "Gaussian pre-smoothing sigma (0 = off)")
		outPath    = flag.String("out", "", "write overlay image here")
		jsonPath   = flag.String("json", "", "write footprints as JSON here")
		outlineIt  = flag.Bool("outline", false, "draw outlines instead of filled overlays")
		overlayOp  = flag.Float64("opacity", 0.5, "overlay opacity (0..1)")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), options{
		threshold: *threshold,
		thType:    *thType,
		negative:  *negative,
		minPixels: *minPixels,
		eightConn: *eightConn,
		growBy:    *growBy,
		isotropic: *isotropic,
		blurSigma: *blurSigma,
		outPath:   *outPath,
		jsonPath:  *jsonPath,
		outline:   *outlineIt,
		opacity:   *overlayOp,
	}); err != nil {
		log.Fatalf("footprint-tool: %v", err)
	}
}

type options struct {
	threshold float64
	thType    string
	negative  bool
	minPixels int
	eightConn bool
	growBy    int
	isotropic bool
	blurSigma float64
	outPath   string
	jsonPath  string
	outline   bool
	opacity   float64
}

func run(path string, opts options) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if opts.blurSigma > 0 {
		img = blur.Gaussian(img, opts.blurSigma)
	}

	typ, err := footprint.ParseThresholdType(opts.thType)
	if err != nil {
		return err
	}
	th, err := footprint.NewThreshold(opts.threshold, typ, !opts.negative)
	if err != nil {
		return err
	}

	plane := pixels.FromImage(img)
	fps, err := footprint.Detect(plane, footprint.DetectConfig{
		Threshold:      th,
		MinPixels:      opts.minPixels,
		EightConnected: opts.eightConn,
	})
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if opts.growBy > 0 {
		for i, f := range fps {
			fps[i] = footprint.Grow(f, opts.growBy, opts.isotropic)
		}
	}

	total := 0
	for _, f := range fps {
		total += f.Area()
	}
	log.Printf("%s: %d footprints, %d pixels total (%s)", path, len(fps), total, th)
	for i, f := range fps {
		log.Printf("  #%d: area %d, bbox %v, %d peaks", i, f.Area(), f.BBox(), len(f.Peaks()))
	}

	if opts.jsonPath != "" {
		data, err := json.MarshalIndent(fps, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode footprints: %w", err)
		}
		if err := os.WriteFile(opts.jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.jsonPath, err)
		}
	}

	if opts.outPath != "" {
		var out *image.NRGBA
		if opts.outline {
			out = render.Outline(img, fps)
		} else {
			out = render.Overlay(img, fps, opts.opacity)
		}
		if err := imaging.Save(out, opts.outPath); err != nil {
			return fmt.Errorf("failed to save overlay: %w", err)
		}
	}
	return nil
}

func usage() {
	fmt.Println("footprint-tool - detect and visualize image footprints")
	fmt.Println()
	fmt.Println("Usage: footprint-tool [options] <image>")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
}
