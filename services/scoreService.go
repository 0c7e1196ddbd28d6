package services

import (
	"context"
	"fmt"
	"math"
)

// ProductivityScore rates the last ScoreWindowDays of activity on a
// 0-100 scale from three independently capped parts:
//
//	volume      (max 50): study hours, capped at MaxWeeklyHours
//	consistency (max 30): distinct days with at least one session
//	wellbeing   (max 20): inverted average stress, neutral default
//
// Capping volume models diminishing returns: hours past the weekly cap
// buy no extra score, so one marathon day cannot saturate the metric.
func (a *Analytics) ProductivityScore(ctx context.Context, userID string) (float64, error) {
	since := a.now().UTC().AddDate(0, 0, -a.cfg.ScoreWindowDays)

	totalMinutes, err := a.store.StudyTotalMinutes(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("productivity score: %w", err)
	}
	hours := math.Min(float64(totalMinutes)/60, a.cfg.MaxWeeklyHours)
	volume := hours / a.cfg.MaxWeeklyHours * a.cfg.VolumePoints

	days, err := a.store.DistinctStudyDays(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("productivity score: %w", err)
	}
	consistency := float64(days) / float64(a.cfg.ScoreWindowDays) * a.cfg.ConsistencyPoints

	avgStress, err := a.store.AvgStress(ctx, userID, since)
	if err != nil {
		return 0, fmt.Errorf("productivity score: %w", err)
	}
	stress := a.cfg.DefaultStress
	if avgStress != nil {
		stress = *avgStress
	}
	// Stress 1 is best: 1 -> full points, 10 -> none.
	wellbeing := (1 - (stress-1)/9) * a.cfg.WellbeingPoints

	// Each part is bounded by construction; the clamps are invariants.
	volume = clamp(volume, 0, a.cfg.VolumePoints)
	consistency = clamp(consistency, 0, a.cfg.ConsistencyPoints)
	wellbeing = clamp(wellbeing, 0, a.cfg.WellbeingPoints)

	return clamp(round2(volume+consistency+wellbeing), 0, 100), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
