package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodLevel is a display-only bucket derived from the stress scale.
// The 1-10 stress integer is the single source of truth; the enum is
// never stored.
type MoodLevel string

const (
	MoodVeryStressed MoodLevel = "Very Stressed"
	MoodStressed     MoodLevel = "Stressed"
	MoodNeutral      MoodLevel = "Neutral"
	MoodRelaxed      MoodLevel = "Relaxed"
	MoodVeryRelaxed  MoodLevel = "Very Relaxed"
)

// MoodFromStress maps a 1-10 stress level (1 = most relaxed) onto the
// five display buckets. Works on float input so averaged stress can be
// bucketed too.
func MoodFromStress(stress float64) MoodLevel {
	// Fold onto a 1-5 relaxedness axis, then cut at half-point boundaries.
	mood := (11 - stress) / 2
	switch {
	case mood <= 1.5:
		return MoodVeryStressed
	case mood <= 2.5:
		return MoodStressed
	case mood <= 3.5:
		return MoodNeutral
	case mood <= 4.5:
		return MoodRelaxed
	default:
		return MoodVeryRelaxed
	}
}

// WellnessEntry is a single mood/wellbeing check-in.
type WellnessEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	StressLevel int                `bson:"stress_level" json:"stress_level"` // 1-10, 1 = least stressed
	EnergyLevel int                `bson:"energy_level" json:"energy_level"` // 1-10
	SleepHours  *float64           `bson:"sleep_hours,omitempty" json:"sleep_hours,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Sentiment   *float64           `bson:"sentiment,omitempty" json:"sentiment,omitempty"` // -1..1, absent when no notes
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Mood returns the display bucket for this entry's stress level.
func (e WellnessEntry) Mood() MoodLevel {
	return MoodFromStress(float64(e.StressLevel))
}
