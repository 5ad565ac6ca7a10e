package phases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLabeler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  LabelContext
		want string
	}{
		{
			name: "lone stationary boundary",
			ctx:  LabelContext{Index: 0, Count: 1, MeanVelocity: 0.001, VelocityThreshold: 0.02},
			want: "Hold",
		},
		{
			name: "lone moving boundary",
			ctx:  LabelContext{Index: 0, Count: 1, MeanVelocity: 0.05, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Full Movement",
		},
		{
			name: "first boundary",
			ctx:  LabelContext{Index: 0, Count: 4, MeanVelocity: 0.05, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Preparation",
		},
		{
			name: "last boundary",
			ctx:  LabelContext{Index: 3, Count: 4, MeanVelocity: 0.05, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Return",
		},
		{
			name: "stationary middle phase",
			ctx:  LabelContext{Index: 1, Count: 4, MeanVelocity: 0.01, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Hold",
		},
		{
			name: "fast middle phase even index",
			ctx:  LabelContext{Index: 2, Count: 5, MeanVelocity: 0.05, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Eccentric",
		},
		{
			name: "fast middle phase odd index",
			ctx:  LabelContext{Index: 1, Count: 5, MeanVelocity: 0.05, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Concentric",
		},
		{
			name: "moderate middle phase uses fallback list",
			ctx:  LabelContext{Index: 1, Count: 5, MeanVelocity: 0.03, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Transition",
		},
		{
			name: "second moderate phase",
			ctx:  LabelContext{Index: 2, Count: 6, MeanVelocity: 0.03, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Hold",
		},
		{
			name: "fallback list exhausted",
			ctx:  LabelContext{Index: 4, Count: 7, MeanVelocity: 0.03, MaxVelocity: 0.06, VelocityThreshold: 0.02},
			want: "Phase 5",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultLabeler(tt.ctx))
		})
	}
}

func TestCustomLabelerOverridesNaming(t *testing.T) {
	t.Parallel()

	frames := movementFrames([][2]float64{
		{20, 0}, {30, 0.05}, {20, 0}, {30, 0.05}, {20, 0},
	})
	cfg := DefaultConfig()
	cfg.Labeler = func(ctx LabelContext) string { return "Segment" }

	got := DetectPhases(frames, cfg)
	for _, p := range got.Phases {
		assert.Equal(t, "Segment", p.Name)
	}
}
