package services

import (
	"context"
	"fmt"

	"github.com/F-Mutua/Mindfit/models"
)

// Recommendations inspects the user's most recent study sessions and
// wellness check-ins (RecentWindow each, by recency rather than a
// calendar window) and returns ordered advice. The two rules are
// independent and may both fire; the generic study tips are returned
// only when neither does, so an empty history always yields the tips.
func (a *Analytics) Recommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	sessions, err := a.store.RecentStudySessions(ctx, userID, a.cfg.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	entries, err := a.store.RecentWellnessEntries(ctx, userID, a.cfg.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}

	var recs []models.Recommendation

	if len(sessions) > 0 {
		var total float64
		for _, s := range sessions {
			total += float64(s.DurationMin)
		}
		if total/float64(len(sessions)) > a.cfg.LongSessionMin {
			recs = append(recs, models.Recommendation{
				Type:     "break",
				Title:    "Take Regular Breaks",
				Message:  "Your study sessions are quite long. Consider taking a 5-10 minute break every 50 minutes to maintain focus.",
				Priority: models.PriorityHigh,
			})
		}
	}

	if len(entries) > 0 {
		var total float64
		for _, e := range entries {
			total += float64(e.StressLevel)
		}
		if total/float64(len(entries)) > a.cfg.HighStressLevel {
			recs = append(recs, models.Recommendation{
				Type:     "wellness",
				Title:    "High Stress Detected",
				Message:  "Your stress levels have been high. Try some relaxation techniques or take a short break.",
				Priority: models.PriorityHigh,
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs,
			models.Recommendation{
				Type:     "study",
				Title:    "Use Active Recall",
				Message:  "Try testing yourself on the material instead of just re-reading it. This improves retention.",
				Priority: models.PriorityMedium,
			},
			models.Recommendation{
				Type:     "study",
				Title:    "Space Out Your Study Sessions",
				Message:  "Studying a little bit each day is more effective than cramming. Try the spacing effect!",
				Priority: models.PriorityMedium,
			},
		)
	}

	return recs, nil
}
