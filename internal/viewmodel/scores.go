package viewmodel

import (
	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// ScoreBucket is one bar of the match score histogram.
type ScoreBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

var bucketBounds = [...]struct{ lo, hi int }{
	{0, 20}, {20, 40}, {40, 60}, {60, 80}, {80, 100},
}

var bucketLabels = [...]string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// ScoreHistogram counts matches per score range. The first bucket is
// 0 <= s <= 20, every later one lo < s <= hi. Scores outside 0..100 land in
// the nearest edge bucket so each match is counted exactly once.
func ScoreHistogram(matches []domain.JobMatch) []ScoreBucket {
	out := make([]ScoreBucket, len(bucketBounds))
	for i, b := range bucketBounds {
		lo := b.lo + 1
		if i == 0 {
			lo = b.lo
		}
		out[i] = ScoreBucket{Label: bucketLabels[i], Min: lo, Max: b.hi}
	}

	for _, m := range matches {
		out[bucketIndex(m.Score)].Count++
	}
	return out
}

func bucketIndex(score int) int {
	s := clamp(score, domain.MinScore, domain.MaxScore)
	for i, b := range bucketBounds {
		if s <= b.hi {
			return i
		}
	}
	return len(bucketBounds) - 1
}

// ScoreTier classifies a match score for display.
type ScoreTier string

const (
	TierExcellent ScoreTier = "excellent"
	TierGood      ScoreTier = "good"
	TierFair      ScoreTier = "fair"
	TierLow       ScoreTier = "low"
)

// TierFor returns the display tier of score.
func TierFor(score int) ScoreTier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierFair
	default:
		return TierLow
	}
}

// ScorePoint is one bar of the top scores chart.
type ScorePoint struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
}

const (
	topScoreCount  = 5
	companyMaxRune = 15
)

// TopScores takes the first five matches in the given order. Company names
// are cut to 15 characters for the chart axis.
func TopScores(matches []domain.JobMatch) []ScorePoint {
	n := min(len(matches), topScoreCount)
	out := make([]ScorePoint, n)
	for i := 0; i < n; i++ {
		out[i] = ScorePoint{
			Company: truncateRunes(matches[i].Company, companyMaxRune),
			Title:   matches[i].Title,
			Score:   matches[i].Score,
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
