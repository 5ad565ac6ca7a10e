package phases

import "fmt"

// LabelContext carries everything a labeler may consider when naming
// one phase: its position among the boundaries and its velocity
// character relative to the sequence.
type LabelContext struct {
	Index             int
	Count             int
	MeanVelocity      float64
	MaxVelocity       float64
	VelocityThreshold float64
}

// Labeler names a single phase. Supplied via Config.Labeler; nil uses
// DefaultLabeler.
type Labeler func(ctx LabelContext) string

// fallbackNames is the ordered list for middle phases that are neither
// clearly stationary nor clearly active. Once exhausted, phases get
// generic positional names.
var fallbackNames = []string{"Transition", "Hold", "Adjustment"}

// DefaultLabeler implements the built-in naming heuristic:
//
//   - a lone boundary is "Hold" when stationary, else "Full Movement"
//   - the first boundary is "Preparation", the last "Return"
//   - stationary middle phases are "Hold"
//   - fast middle phases alternate "Eccentric"/"Concentric" by index
//     parity (a heuristic guess at exercise structure, not a verified
//     biomechanical rule)
//   - everything else draws from fallbackNames, then "Phase N"
func DefaultLabeler(ctx LabelContext) string {
	if ctx.Count <= 1 {
		if ctx.MeanVelocity < ctx.VelocityThreshold {
			return "Hold"
		}
		return "Full Movement"
	}
	if ctx.Index == 0 {
		return "Preparation"
	}
	if ctx.Index == ctx.Count-1 {
		return "Return"
	}
	if ctx.MeanVelocity < ctx.VelocityThreshold {
		return "Hold"
	}
	if ctx.MaxVelocity > 0 && ctx.MeanVelocity > highVelocityRatio*ctx.MaxVelocity {
		if ctx.Index%2 == 0 {
			return "Eccentric"
		}
		return "Concentric"
	}
	if idx := ctx.Index - 1; idx >= 0 && idx < len(fallbackNames) {
		return fallbackNames[idx]
	}
	return fmt.Sprintf("Phase %d", ctx.Index+1)
}
