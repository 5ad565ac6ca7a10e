// Command phase-plot renders an interactive HTML chart of a detection
// run: the raw and smoothed velocity profiles as line series, the
// accepted minima as scatter markers, and one summary row per phase.
//
// Usage:
//
//	phase-plot -frames session.json [-config tuning.json] [-output phases.html]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/apexform/motionlab/internal/config"
	"github.com/apexform/motionlab/internal/phases"
	"github.com/apexform/motionlab/internal/pose"
)

var (
	framesPath = flag.String("frames", "", "Path to recorded session JSON (array of frames)")
	configPath = flag.String("config", "", "Path to tuning config JSON (defaults apply when omitted)")
	outputPath = flag.String("output", "phases.html", "Output HTML file")
)

func loadConfig(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	if cfg, err := config.LoadTuningConfig(config.DefaultConfigPath); err == nil {
		return cfg, nil
	}
	return config.EmptyTuningConfig(), nil
}

func velocityChart(result phases.Result, threshold float64) *charts.Line {
	// Short sequences skip profiling and carry no series.
	n := len(result.VelocityProfile)
	xAxis := make([]int, n)
	raw := make([]opts.LineData, n)
	smoothed := make([]opts.LineData, n)
	for i := 0; i < n; i++ {
		xAxis[i] = i
		raw[i] = opts.LineData{Value: result.VelocityProfile[i]}
		smoothed[i] = opts.LineData{Value: result.SmoothedProfile[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Movement Phases", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Joint Velocity Profile",
			Subtitle: fmt.Sprintf("frames=%d phases=%d threshold=%.4f", result.TotalFrames, len(result.Phases), threshold),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frame", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Velocity (units/frame)", NameLocation: "middle", NameGap: 40}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xAxis).
		AddSeries("raw", raw, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)})).
		AddSeries("smoothed", smoothed, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func minimaChart(result phases.Result) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(result.MinimaFrames))
	for _, m := range result.MinimaFrames {
		data = append(data, opts.ScatterData{Value: []interface{}{m, result.SmoothedProfile[m]}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Phase Boundaries",
			Subtitle: fmt.Sprintf("minima=%d", len(result.MinimaFrames)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frame", NameLocation: "middle", NameGap: 25, Min: 0, Max: result.TotalFrames - 1}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Smoothed velocity", NameLocation: "middle", NameGap: 40}),
	)
	scatter.AddSeries("minima", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	return scatter
}

func phaseChart(result phases.Result) *charts.Bar {
	names := make([]string, 0, len(result.Phases))
	durations := make([]opts.BarData, 0, len(result.Phases))
	confidences := make([]opts.BarData, 0, len(result.Phases))
	for _, p := range result.Phases {
		names = append(names, fmt.Sprintf("%s [%d:%d]", p.Name, p.StartFrame, p.EndFrame))
		durations = append(durations, opts.BarData{Value: p.EndFrame - p.StartFrame + 1})
		confidences = append(confidences, opts.BarData{Value: p.Confidence})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Detected Phases"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("duration (frames)", durations,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		).
		AddSeries("confidence", confidences)
	return bar
}

func main() {
	flag.Parse()

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

	tuning, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := tuning.DetectionConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid detection config: %v", err)
	}

	result := phases.DetectPhases(frames, cfg)

	page := components.NewPage()
	page.AddCharts(
		velocityChart(result, cfg.VelocityThreshold),
		minimaChart(result),
		phaseChart(result),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		log.Fatalf("failed to render chart: %v", err)
	}
	if err := os.WriteFile(*outputPath, buf.Bytes(), 0644); err != nil {
		log.Fatalf("failed to write %s: %v", *outputPath, err)
	}

	log.Printf("[PhasePlot] Wrote %s (%d frames, %d phases)", *outputPath, result.TotalFrames, len(result.Phases))
}
