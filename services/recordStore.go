package services

import (
	"context"
	"time"

	"github.com/F-Mutua/Mindfit/models"
)

// StudyDayStat is one calendar day of study activity as returned by the
// store's grouped read. AvgSentiment is nil when no session that day
// carried a sentiment score.
type StudyDayStat struct {
	Date         string   `bson:"_id"` // YYYY-MM-DD
	TotalMinutes int64    `bson:"total_minutes"`
	AvgSentiment *float64 `bson:"avg_sentiment"`
	Sessions     int      `bson:"sessions"`
}

// WellnessDayStat is one calendar day of wellness check-ins.
type WellnessDayStat struct {
	Date      string  `bson:"_id"`
	AvgStress float64 `bson:"avg_stress"`
	AvgEnergy float64 `bson:"avg_energy"`
}

// SubjectStat is total study time per subject.
type SubjectStat struct {
	Subject      string `bson:"_id"`
	TotalMinutes int64  `bson:"total_minutes"`
	Sessions     int    `bson:"sessions"`
}

// RecordStore is the read/write surface the analytics engine needs from
// the record database. The engine tolerates read-committed semantics: it
// works with whatever snapshot the store returns at query time and never
// locks or retries.
type RecordStore interface {
	InsertStudySession(ctx context.Context, s *models.StudySession) error
	InsertWellnessEntry(ctx context.Context, e *models.WellnessEntry) error

	// Grouped daily reads, ascending by date; days with no records are
	// simply absent (the engine gap-fills).
	StudyDailyTotals(ctx context.Context, userID string, from, to time.Time) ([]StudyDayStat, error)
	WellnessDailyAverages(ctx context.Context, userID string, from, to time.Time) ([]WellnessDayStat, error)

	// SubjectTotals is ordered by total minutes descending, ties by
	// subject ascending so the ordering is deterministic.
	SubjectTotals(ctx context.Context, userID string, from, to time.Time) ([]SubjectStat, error)

	// Scorer aggregates over a trailing window.
	StudyTotalMinutes(ctx context.Context, userID string, since time.Time) (int64, error)
	DistinctStudyDays(ctx context.Context, userID string, since time.Time) (int, error)
	AvgStress(ctx context.Context, userID string, since time.Time) (*float64, error)

	// Recency reads for the recommendation rules, newest first.
	RecentStudySessions(ctx context.Context, userID string, limit int64) ([]models.StudySession, error)
	RecentWellnessEntries(ctx context.Context, userID string, limit int64) ([]models.WellnessEntry, error)
}
