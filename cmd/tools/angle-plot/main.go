// Command angle-plot renders a PNG line chart of one or more joint
// angle sequences from a recorded landmark session.
//
// Usage:
//
//	angle-plot -frames session.json -joints left_knee,right_knee [-use2d] [-output angles.png]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/apexform/motionlab/internal/angles"
	"github.com/apexform/motionlab/internal/pose"
)

var (
	framesPath = flag.String("frames", "", "Path to recorded session JSON (array of frames)")
	jointsFlag = flag.String("joints", "left_knee,right_knee", "Comma-separated joint IDs to plot")
	use2D      = flag.Bool("use2d", false, "Compute angles from x,y only (unreliable depth)")
	outputPath = flag.String("output", "angles.png", "Output PNG file")
)

// palette cycles across plotted joints. Matched to keep bilateral
// pairs visually adjacent.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

func parseJoints(s string) ([]pose.JointID, error) {
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

func main() {
	flag.Parse()

	if *framesPath == "" {
		log.Fatal("-frames is required")
	}

	joints, err := parseJoints(*jointsFlag)
	if err != nil {
		log.Fatalf("invalid -joints: %v", err)
	}
	if len(joints) == 0 {
		log.Fatal("-joints must name at least one joint")
	}

	data, err := os.ReadFile(*framesPath)
	if err != nil {
		log.Fatalf("failed to read frames file: %v", err)
	}
	frames, err := pose.ParseSequence(data)
	if err != nil {
		log.Fatalf("failed to parse frames: %v", err)
	}
	if len(frames) == 0 {
		log.Fatal("no frames in session")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Joint Angles (%d frames)", len(frames))
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Angle (deg)"
	p.Y.Min = 0
	p.Y.Max = 180

	for i, joint := range joints {
		series := angles.AngleSequence(frames, joint, *use2D)
		pts := make(plotter.XYs, len(series))
		for f, angle := range series {
			pts[f] = plotter.XY{X: float64(f), Y: angle}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatalf("failed to build line for %s: %v", joint, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(string(joint), line)
	}

	if err := p.Save(14*vg.Inch, 6*vg.Inch, *outputPath); err != nil {
		log.Fatalf("failed to save %s: %v", *outputPath, err)
	}

	log.Printf("[AnglePlot] Wrote %s (%d joints, %d frames)", *outputPath, len(joints), len(frames))
}
