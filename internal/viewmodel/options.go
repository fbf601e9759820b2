// Package viewmodel derives the chart and summary data shown on each page.
// Every function is pure: the same records and the same now give the same
// result.
package viewmodel

import "github.com/dawoodjaved5/soventure-project/internal/config"

// Options holds the tunable constants of the derived views.
type Options struct {
	SkillCount       int
	SkillWeightStep  int
	SkillWeightFloor int
	ActivityCap      int
}

// DefaultOptions returns the stock view settings.
func DefaultOptions() Options {
	return Options{
		SkillCount:       6,
		SkillWeightStep:  10,
		SkillWeightFloor: 40,
		ActivityCap:      10,
	}
}

// OptionsFrom reads the view settings from configuration.
func OptionsFrom(cfg config.ViewsConfig) Options {
	return Options{
		SkillCount:       cfg.SkillCount,
		SkillWeightStep:  cfg.SkillWeightStep,
		SkillWeightFloor: cfg.SkillWeightFloor,
		ActivityCap:      cfg.ActivityCap,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
