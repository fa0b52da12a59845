package stats

import "github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"

// ResolveCount returns the reported value, or 0 when it was not reported.
func ResolveCount(reported *float64) float64 {
	if reported != nil {
		return *reported
	}
	return 0
}

// ResolveTotal applies the total precedence: reported, then correct, then 0.
func ResolveTotal(reported, correct *float64) float64 {
	if reported != nil {
		return *reported
	}
	if correct != nil {
		return *correct
	}
	return 0
}

// ResolveAverage applies the average precedence: reported, then
// totalOrCorrect divided by gamesPlayed. It returns nil when the average
// cannot be derived because gamesPlayed is missing or zero.
func ResolveAverage(reported *float64, totalOrCorrect float64, gamesPlayed *float64) *float64 {
	if reported != nil {
		v := *reported
		return &v
	}
	if gamesPlayed == nil || *gamesPlayed == 0 {
		return nil
	}
	v := totalOrCorrect / *gamesPlayed
	return &v
}

// ResolveFigures resolves every field of stat through the fallback functions.
func ResolveFigures(stat fundamentals.Stat) fundamentals.Figures {
	favTotal := ResolveTotal(stat.Favorable.Total, stat.Favorable.Correct)
	unfavTotal := ResolveTotal(stat.Unfavorable.Total, stat.Unfavorable.Correct)
	return fundamentals.Figures{
		GamesPlayed:          ResolveCount(stat.GamesPlayed),
		FavorableCorrect:     ResolveCount(stat.Favorable.Correct),
		FavorableIncorrect:   ResolveCount(stat.Favorable.Incorrect),
		FavorableTotal:       favTotal,
		FavorableAverage:     ResolveAverage(stat.Favorable.Average, favTotal, stat.GamesPlayed),
		UnfavorableCorrect:   ResolveCount(stat.Unfavorable.Correct),
		UnfavorableIncorrect: ResolveCount(stat.Unfavorable.Incorrect),
		UnfavorableTotal:     unfavTotal,
		UnfavorableAverage:   ResolveAverage(stat.Unfavorable.Average, unfavTotal, stat.GamesPlayed),
	}
}

// ResolveRows turns a team's stats into named figure rows, keeping order.
func ResolveRows(stats []fundamentals.Stat) []fundamentals.TeamStatRow {
	rows := make([]fundamentals.TeamStatRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, fundamentals.TeamStatRow{Name: s.Name, Figures: ResolveFigures(s)})
	}
	return rows
}
