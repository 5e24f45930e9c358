// Command svgscene renders a YAML scene description to an svg file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgwrite/scene"
	"github.com/benoitkugler/svgwrite/svg"
)

func main() {
	var (
		input   = flag.String("in", "scene.yaml", "scene file")
		output  = flag.String("out", "", "output svg file (default: standard output)")
		pretty  = flag.Bool("pretty", false, "indent the output")
		minify  = flag.Bool("minify", false, "minify the output (overrides -pretty)")
		strict  = flag.Bool("strict", false, "fail on unsupported scene entries")
		verbose = flag.Bool("v", false, "log debug information")
	)
	flag.Parse()

	if *verbose {
		svg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		svg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	s, err := scene.LoadFile(*input)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	mode := scene.WarnErrorMode
	if *strict {
		mode = scene.StrictErrorMode
	}
	canvas, err := s.Build(mode)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	doc := canvas.Document(*pretty || s.Pretty)
	if *minify {
		doc, err = minifySVG(doc)
		if err != nil {
			log.Fatalf("Failed to minify: %v", err)
		}
	}

	if *output == "" {
		if _, err := os.Stdout.WriteString(doc); err != nil {
			log.Fatalf("Failed to write: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, []byte(doc), 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%gx%g, %d bytes)\n", *output, canvas.Width, canvas.Height, len(doc))
}
