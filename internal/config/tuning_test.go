package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apexform/motionlab/internal/pose"
	"github.com/apexform/motionlab/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := EmptyTuningConfig()

	if got := cfg.GetVelocityThreshold(); got != 0.02 {
		t.Errorf("GetVelocityThreshold() = %g, want 0.02", got)
	}
	if got := cfg.GetMinPhaseFrames(); got != 10 {
		t.Errorf("GetMinPhaseFrames() = %d, want 10", got)
	}
	if got := cfg.GetSmoothingWindow(); got != 5 {
		t.Errorf("GetSmoothingWindow() = %d, want 5", got)
	}
	if got := cfg.GetMinPhaseSeparation(); got != 15 {
		t.Errorf("GetMinPhaseSeparation() = %d, want 15", got)
	}
	if !cfg.GetMergeShortPhases() {
		t.Error("GetMergeShortPhases() = false, want true")
	}
	if got := cfg.GetSampleRateHz(); got != 30 {
		t.Errorf("GetSampleRateHz() = %g, want 30", got)
	}
	if cfg.GetUse2DAngles() {
		t.Error("GetUse2DAngles() = true, want false")
	}
	weights := cfg.GetJointWeights()
	if weights[pose.LeftWrist] != 1.0 {
		t.Errorf("default left wrist weight = %g, want 1.0", weights[pose.LeftWrist])
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, `{"velocity_threshold": 0.05, "smoothing_window": 9}`)

	cfg, err := LoadTuningConfig(path)
	testutil.AssertNoError(t, err)
	if got := cfg.GetVelocityThreshold(); got != 0.05 {
		t.Errorf("overridden threshold = %g, want 0.05", got)
	}
	if got := cfg.GetSmoothingWindow(); got != 9 {
		t.Errorf("overridden window = %d, want 9", got)
	}
	// Unset fields keep defaults.
	if got := cfg.GetMinPhaseFrames(); got != 10 {
		t.Errorf("unset min_phase_frames = %d, want default 10", got)
	}
}

func TestLoadConfigJointWeightsByName(t *testing.T) {
	path := writeConfig(t, `{"joint_weights": {"left_wrist": 2.0, "right_ankle": 0.1}}`)

	cfg, err := LoadTuningConfig(path)
	testutil.AssertNoError(t, err)
	weights := cfg.GetJointWeights()
	if len(weights) != 2 {
		t.Fatalf("got %d weights, want 2", len(weights))
	}
	if weights[pose.LeftWrist] != 2.0 {
		t.Errorf("left wrist weight = %g, want 2.0", weights[pose.LeftWrist])
	}
	if weights[pose.RightAnkle] != 0.1 {
		t.Errorf("right ankle weight = %g, want 0.1", weights[pose.RightAnkle])
	}
}

func TestLoadConfigRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown landmark name", `{"joint_weights": {"left_flipper": 1.0}}`},
		{"zero smoothing window", `{"smoothing_window": 0}`},
		{"negative min phase frames", `{"min_phase_frames": -2}`},
		{"zero velocity threshold", `{"velocity_threshold": 0}`},
		{"bad sample rate", `{"sample_rate_hz": -30}`},
		{"malformed json", `{"velocity_threshold": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadTuningConfig(path)
			testutil.AssertError(t, err)
		})
	}
}

func TestLoadConfigRequiresJSONExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuningConfig(path); err == nil {
		t.Error("expected error for non-json extension")
	}
}

func TestDetectionConfigConversion(t *testing.T) {
	path := writeConfig(t, `{"velocity_threshold": 0.03, "merge_short_phases": false}`)
	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}

	dc := cfg.DetectionConfig()
	if dc.VelocityThreshold != 0.03 {
		t.Errorf("detection threshold = %g, want 0.03", dc.VelocityThreshold)
	}
	if dc.MergeShortPhases {
		t.Error("merge_short_phases override not applied")
	}
	if err := dc.Validate(); err != nil {
		t.Errorf("converted config invalid: %v", err)
	}
}

func TestMustLoadDefaultConfig(t *testing.T) {
	// Resolved relative to this package directory; exercises the
	// canonical defaults file at the repository root.
	cfg := MustLoadDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("canonical defaults invalid: %v", err)
	}
	if got := cfg.GetVelocityThreshold(); got != 0.02 {
		t.Errorf("canonical threshold = %g, want 0.02", got)
	}
	if len(cfg.GetJointWeights()) == 0 {
		t.Error("canonical defaults carry no joint weights")
	}
}
