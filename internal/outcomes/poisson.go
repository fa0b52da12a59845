package outcomes

import "math"

// DefaultMaxGoals bounds the scoreline grid used for outcome probabilities.
const DefaultMaxGoals = 8

// Probabilities holds home win, draw and away win chances summing to 1.
type Probabilities struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// poissonPMF is P(X = k) for X ~ Poisson(lambda). A non-positive rate has no mass.
func poissonPMF(k int, lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	logP := -lambda + float64(k)*math.Log(lambda)
	lg, _ := math.Lgamma(float64(k + 1))
	return math.Exp(logP - lg)
}

// OutcomeProbabilities treats both scores as independent Poisson variables
// over 0..maxGoals and normalizes the truncated grid. A non-positive rate
// on either side yields all zeros.
func OutcomeProbabilities(lambdaHome, lambdaAway float64, maxGoals int) Probabilities {
	if maxGoals < 0 {
		maxGoals = DefaultMaxGoals
	}
	var p Probabilities
	for gh := 0; gh <= maxGoals; gh++ {
		ph := poissonPMF(gh, lambdaHome)
		for ga := 0; ga <= maxGoals; ga++ {
			joint := ph * poissonPMF(ga, lambdaAway)
			switch {
			case gh > ga:
				p.Home += joint
			case gh == ga:
				p.Draw += joint
			default:
				p.Away += joint
			}
		}
	}
	if total := p.Home + p.Draw + p.Away; total > 0 {
		p.Home /= total
		p.Draw /= total
		p.Away /= total
	}
	return p
}

// Calibration turns relative abilities into expected goals.
type Calibration struct {
	BaseTotalGoals float64
	HomeAdvantage  float64
}

// DefaultCalibration matches a league averaging 2.6 goals a game with a 10%
// home boost.
var DefaultCalibration = Calibration{BaseTotalGoals: 2.6, HomeAdvantage: 1.10}

// minAbility keeps a hopeless side from collapsing to a zero rate.
const minAbility = 0.01

// GoalExpectancy shares BaseTotalGoals between the sides in proportion to
// their abilities, after the home boost. An ability of 1.0 is league average.
func (c Calibration) GoalExpectancy(homeAbility, awayAbility float64) (lambdaHome, lambdaAway float64) {
	home := math.Max(homeAbility, minAbility) * c.HomeAdvantage
	away := math.Max(awayAbility, minAbility)
	total := home + away
	if total <= 0 {
		return c.BaseTotalGoals * 0.55, c.BaseTotalGoals * 0.45
	}
	return c.BaseTotalGoals * home / total, c.BaseTotalGoals * away / total
}
