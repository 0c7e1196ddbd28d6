package services

import (
	"context"
	"time"

	"github.com/F-Mutua/Mindfit/config"
	"github.com/F-Mutua/Mindfit/models"
)

// fakeStore is a canned-data RecordStore so the engine can be tested
// deterministically without MongoDB.
type fakeStore struct {
	studyDays    []StudyDayStat
	wellnessDays []WellnessDayStat
	subjects     []SubjectStat
	totalMinutes int64
	distinctDays int
	avgStress    *float64
	sessions     []models.StudySession
	entries      []models.WellnessEntry

	insertedSessions []*models.StudySession
	insertedEntries  []*models.WellnessEntry
}

func (f *fakeStore) InsertStudySession(_ context.Context, s *models.StudySession) error {
	f.insertedSessions = append(f.insertedSessions, s)
	return nil
}

func (f *fakeStore) InsertWellnessEntry(_ context.Context, e *models.WellnessEntry) error {
	f.insertedEntries = append(f.insertedEntries, e)
	return nil
}

func (f *fakeStore) StudyDailyTotals(_ context.Context, _ string, _, _ time.Time) ([]StudyDayStat, error) {
	return f.studyDays, nil
}

func (f *fakeStore) WellnessDailyAverages(_ context.Context, _ string, _, _ time.Time) ([]WellnessDayStat, error) {
	return f.wellnessDays, nil
}

func (f *fakeStore) SubjectTotals(_ context.Context, _ string, _, _ time.Time) ([]SubjectStat, error) {
	return f.subjects, nil
}

func (f *fakeStore) StudyTotalMinutes(_ context.Context, _ string, _ time.Time) (int64, error) {
	return f.totalMinutes, nil
}

func (f *fakeStore) DistinctStudyDays(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.distinctDays, nil
}

func (f *fakeStore) AvgStress(_ context.Context, _ string, _ time.Time) (*float64, error) {
	return f.avgStress, nil
}

func (f *fakeStore) RecentStudySessions(_ context.Context, _ string, limit int64) ([]models.StudySession, error) {
	if int64(len(f.sessions)) > limit {
		return f.sessions[:limit], nil
	}
	return f.sessions, nil
}

func (f *fakeStore) RecentWellnessEntries(_ context.Context, _ string, limit int64) ([]models.WellnessEntry, error) {
	if int64(len(f.entries)) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

// testNow pins "today" to Sunday 2026-03-15 so 7-day windows cover
// Monday 2026-03-09 through Sunday 2026-03-15.
var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestAnalytics(store RecordStore) *Analytics {
	return NewAnalytics(store, config.DefaultEngine()).
		WithClock(func() time.Time { return testNow })
}

func ptr(v float64) *float64 { return &v }

func studySession(durationMin int) models.StudySession {
	return models.StudySession{UserID: "u1", Subject: "math", DurationMin: durationMin, CreatedAt: testNow}
}

func wellnessEntry(stress int) models.WellnessEntry {
	return models.WellnessEntry{UserID: "u1", StressLevel: stress, EnergyLevel: 5, CreatedAt: testNow}
}
