// Package main generates the block position descriptor from the logo image.
//
// The tool runs offline on a development machine. The output is embedded into
// the binary and loaded at startup by config.LoadBlockDescriptor.
//
// Usage:
//
//	go run ./cmd/genpositions [flags]
//
// Flags:
//
//	--input <path>      Logo PNG (default assets/images/xebia-logo.png)
//	--output <path>     Descriptor YAML (default data/block_positions.yaml, "-" = stdout)
//	--coverage <f>      Minimum purple coverage per cell (default 0.7)
//	--preview           Print an ASCII preview of the selected cells
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/badge/internal/blockgrid"
	"github.com/decker502/badge/pkg/config"
)

var (
	inputFlag    = flag.String("input", config.LogoImagePath, "Logo image path")
	outputFlag   = flag.String("output", config.BlockPositionsPath, "Output descriptor path (- for stdout)")
	coverageFlag = flag.Float64("coverage", blockgrid.DefaultCoverage, "Minimum purple coverage per cell")
	previewFlag  = flag.Bool("preview", false, "Print ASCII preview")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("[GenPositions] %v", err)
	}
}

func run() error {
	file, err := os.Open(*inputFlag)
	if err != nil {
		return fmt.Errorf("failed to open logo: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode logo: %w", err)
	}

	opts := blockgrid.DefaultOptions()
	opts.Coverage = *coverageFlag
	res := blockgrid.Analyze(img, opts)

	log.Printf("[GenPositions] Logo image size: %dx%d", res.ImageSize[0], res.ImageSize[1])
	log.Printf("[GenPositions] Logo offset: (%d, %d)", res.Offset[0], res.Offset[1])
	log.Printf("[GenPositions] Total purple pixels: %d", res.PurplePixels)
	log.Printf("[GenPositions] Grid cells with purple: %d", res.CellsTouched)
	log.Printf("[GenPositions] Grid cells with >=%d purple pixels: %d", res.MinPixels, len(res.Positions))

	desc := res.Descriptor(opts.BlockSize)
	if err := desc.Validate(); err != nil {
		return fmt.Errorf("generated descriptor is invalid: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&desc); err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}

	if *previewFlag {
		fmt.Print(preview(desc.Positions, opts))
	}

	if *outputFlag == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*outputFlag, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outputFlag, err)
	}
	log.Printf("[GenPositions] Saved block positions to %s", *outputFlag)
	return nil
}

// preview 以 # 表示入选单元的屏幕网格
func preview(positions []config.GridPosition, opts blockgrid.Options) string {
	selected := make(map[config.GridPosition]bool, len(positions))
	for _, p := range positions {
		selected[p] = true
	}

	var sb strings.Builder
	for y := 0; y < opts.ScreenHeight; y += opts.BlockSize {
		for x := 0; x < opts.ScreenWidth; x += opts.BlockSize {
			if selected[config.GridPosition{X: x, Y: y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
