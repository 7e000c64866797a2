package system

import (
	"math"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/parameter"
)

// ScorePoints returns the floored reward for hitting a target of the given tier
// at depthDistance from the camera along Z
func ScorePoints(depthDistance float64, tier component.Tier) int {
	d := math.Abs(depthDistance)
	base := parameter.ScoreBase
	switch {
	case d > parameter.ScoreBand4Dist:
		base = parameter.ScoreBand4Points
	case d > parameter.ScoreBand3Dist:
		base = parameter.ScoreBand3Points
	case d > parameter.ScoreBand2Dist:
		base = parameter.ScoreBand2Points
	case d > parameter.ScoreBand1Dist:
		base = parameter.ScoreBand1Points
	}
	return int(math.Floor(float64(base) * TierMultiplier(tier)))
}

// TierMultiplier returns the score multiplier of a target tier
func TierMultiplier(tier component.Tier) float64 {
	switch tier {
	case component.TierGold:
		return parameter.TierMultiplierGold
	case component.TierSilver:
		return parameter.TierMultiplierSilver
	default:
		return 1
	}
}
