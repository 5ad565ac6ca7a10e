// Command phases runs movement-phase detection over a recorded landmark
// session and prints a phase report with diagnostic velocity summaries.
//
// Usage:
//
//	phases -frames session.json [-config tuning.json] [-joints left_knee,right_knee] [-json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/apexform/motionlab/internal/config"
	"github.com/apexform/motionlab/internal/pose"
	"github.com/apexform/motionlab/internal/session"
	"github.com/apexform/motionlab/internal/units"
	"github.com/apexform/motionlab/internal/version"
)

var (
	framesPath = flag.String("frames", "", "Path to recorded session JSON (array of frames)")
	configPath = flag.String("config", "", "Path to tuning config JSON (defaults apply when omitted)")
	jointsFlag = flag.String("joints", "", "Comma-separated joint IDs to extract angle series for")
	use2D      = flag.Bool("use2d", false, "Compute angles from x,y only (unreliable depth)")
	jsonOut    = flag.Bool("json", false, "Emit the full result as JSON instead of a report")
	showVer    = flag.Bool("version", false, "Print version and exit")
)

func parseJoints(s string) ([]pose.JointID, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]pose.JointID, 0, len(parts))
	for _, p := range parts {
		joint := pose.JointID(strings.TrimSpace(p))
		if _, ok := pose.Triplet(joint); !ok {
			return nil, fmt.Errorf("unknown joint %q", joint)
		}
		out = append(out, joint)
	}
	return out, nil
}

func loadConfig(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	if cfg, err := config.LoadTuningConfig(config.DefaultConfigPath); err == nil {
		return cfg, nil
	}
	// No defaults file next to the binary: built-in defaults.
	return config.EmptyTuningConfig(), nil
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

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	joints, err := parseJoints(*jointsFlag)
	if err != nil {
		log.Fatalf("invalid -joints: %v", err)
	}

	runner := session.NewRunner(cfg.DetectionConfig(), joints, *use2D || cfg.GetUse2DAngles())
	result := runner.Run(frames)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Detection); err != nil {
			log.Fatalf("failed to encode result: %v", err)
		}
		return
	}

	printReport(result, cfg.GetSampleRateHz())
}

func printReport(result session.RunResult, sampleRateHz float64) {
	det := result.Detection
	fmt.Printf("Run %s: %d frames, %d phases, %d minima\n",
		result.RunID, det.TotalFrames, len(det.Phases), len(det.MinimaFrames))
	fmt.Printf("Velocity: avg %.4f/frame (%.4f/s), peak %.4f/frame\n\n",
		det.AverageVelocity,
		units.PerFrameToPerSecond(det.AverageVelocity, sampleRateHz),
		det.MaxVelocity)

	fmt.Printf("%-4s %-14s %8s %8s %8s %8s\n", "#", "Name", "Start", "End", "Frames", "Conf")
	for i, p := range det.Phases {
		fmt.Printf("%-4d %-14s %8d %8d %8d %8.2f\n",
			i+1, p.Name, p.StartFrame, p.EndFrame, p.EndFrame-p.StartFrame+1, p.Confidence)
	}

	if len(result.AngleSeries) > 0 {
		fmt.Println()
		for joint, series := range result.AngleSeries {
			if len(series) == 0 {
				continue
			}
			min, max := series[0], series[0]
			for _, a := range series {
				if a < min {
					min = a
				}
				if a > max {
					max = a
				}
			}
			fmt.Printf("Angle %-16s range %.1f to %.1f deg over %d frames\n", joint, min, max, len(series))
		}
	}
}
