// Command sweep evaluates phase detection across a grid of tuning
// parameters and writes one CSV row per combination. Used to pick
// thresholds for a new exercise or camera setup without editing code.
//
//	sweep -frames session.json \
//	    -thresholds 0.01,0.02,0.04 \
//	    -windows 3,5,9 \
//	    -min-frames 5,10,15 \
//	    -output sweep.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/apexform/motionlab/internal/phases"
	"github.com/apexform/motionlab/internal/pose"
	"github.com/apexform/motionlab/internal/version"
)

var (
	framesPath  = flag.String("frames", "", "Path to recorded session JSON")
	thresholds  = flag.String("thresholds", "0.01,0.02,0.04", "Comma-separated velocity thresholds")
	windows     = flag.String("windows", "3,5,9", "Comma-separated smoothing windows")
	minFrames   = flag.String("min-frames", "5,10,15", "Comma-separated minimum phase lengths")
	outputPath  = flag.String("output", "sweep.csv", "Output CSV path")
	separations = flag.String("separations", "15", "Comma-separated minimum minima separations")
	showVer     = flag.Bool("version", false, "Print version and exit")
)

// parseCSVFloatSlice parses a comma-separated list of floats
func parseCSVFloatSlice(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseCSVIntSlice parses a comma-separated list of ints
func parseCSVIntSlice(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid int '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	if *framesPath == "" {
		log.Fatal("-frames is required")
	}
	data, err := os.ReadFile(*framesPath)
	if err != nil {
		log.Fatalf("failed to read frames file: %v", err)
	}
	frames, err := pose.ParseSequence(data)
	if err != nil {
		log.Fatalf("failed to parse frames: %v", err)
	}

	thresholdVals, err := parseCSVFloatSlice(*thresholds)
	if err != nil {
		log.Fatalf("invalid -thresholds: %v", err)
	}
	windowVals, err := parseCSVIntSlice(*windows)
	if err != nil {
		log.Fatalf("invalid -windows: %v", err)
	}
	minFrameVals, err := parseCSVIntSlice(*minFrames)
	if err != nil {
		log.Fatalf("invalid -min-frames: %v", err)
	}
	separationVals, err := parseCSVIntSlice(*separations)
	if err != nil {
		log.Fatalf("invalid -separations: %v", err)
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("failed to create output file: %v", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	header := []string{
		"velocity_threshold", "smoothing_window", "min_phase_frames", "min_phase_separation",
		"phase_count", "minima_count", "mean_confidence", "avg_velocity", "max_velocity",
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}

	combos := 0
	for _, threshold := range thresholdVals {
		for _, window := range windowVals {
			for _, mf := range minFrameVals {
				for _, sep := range separationVals {
					cfg := phases.DefaultConfig()
					cfg.VelocityThreshold = threshold
					cfg.SmoothingWindow = window
					cfg.MinPhaseFrames = mf
					cfg.MinPhaseSeparation = sep
					if err := cfg.Validate(); err != nil {
						log.Printf("[Sweep] Skipping invalid combination: %v", err)
						continue
					}

					result := phases.DetectPhases(frames, cfg)
					confidences := make([]float64, len(result.Phases))
					for i, p := range result.Phases {
						confidences[i] = p.Confidence
					}
					meanConf := 0.0
					if len(confidences) > 0 {
						meanConf = stat.Mean(confidences, nil)
					}

					row := []string{
						strconv.FormatFloat(threshold, 'g', -1, 64),
						strconv.Itoa(window),
						strconv.Itoa(mf),
						strconv.Itoa(sep),
						strconv.Itoa(len(result.Phases)),
						strconv.Itoa(len(result.MinimaFrames)),
						strconv.FormatFloat(meanConf, 'f', 4, 64),
						strconv.FormatFloat(result.AverageVelocity, 'f', 6, 64),
						strconv.FormatFloat(result.MaxVelocity, 'f', 6, 64),
					}
					if err := w.Write(row); err != nil {
						log.Fatalf("failed to write row: %v", err)
					}
					combos++
				}
			}
		}
	}

	log.Printf("[Sweep] Evaluated %d combinations over %d frames -> %s", combos, len(frames), *outputPath)
}
