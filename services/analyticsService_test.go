package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_GapFillsFullWindow(t *testing.T) {
	store := &fakeStore{
		studyDays: []StudyDayStat{
			{Date: "2026-03-10", TotalMinutes: 120, AvgSentiment: ptr(0.5), Sessions: 2},
			{Date: "2026-03-13", TotalMinutes: 50, Sessions: 1},
		},
		wellnessDays: []WellnessDayStat{
			{Date: "2026-03-12", AvgStress: 6, AvgEnergy: 4},
		},
		subjects: []SubjectStat{
			{Subject: "math", TotalMinutes: 90, Sessions: 2},
			{Subject: "physics", TotalMinutes: 80, Sessions: 1},
		},
	}
	a := newTestAnalytics(store)

	res, err := a.Aggregate(context.Background(), "u1", 7)
	require.NoError(t, err)

	wantDates := []string{
		"2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12",
		"2026-03-13", "2026-03-14", "2026-03-15",
	}
	assert.Equal(t, wantDates, res.Dates)
	require.Len(t, res.StudyHours, 7)
	require.Len(t, res.StressLevels, 7)
	require.Len(t, res.EnergyLevels, 7)

	// Days with sessions get hours, the rest stay at zero.
	assert.InDelta(t, 2.0, res.StudyHours[1], 1e-9)
	assert.InDelta(t, float64(50)/60, res.StudyHours[4], 1e-9)
	for _, i := range []int{0, 2, 3, 5, 6} {
		assert.Zero(t, res.StudyHours[i], "day %d should have no study time", i)
	}

	// Only the day with a check-in carries values; missing days are nil,
	// not zero.
	for i, stress := range res.StressLevels {
		if i == 3 {
			require.NotNil(t, stress)
			assert.Equal(t, 6.0, *stress)
			require.NotNil(t, res.EnergyLevels[i])
			assert.Equal(t, 4.0, *res.EnergyLevels[i])
			continue
		}
		assert.Nil(t, stress, "day %d stress should be nil", i)
		assert.Nil(t, res.EnergyLevels[i], "day %d energy should be nil", i)
	}

	assert.Equal(t, 2.8, res.TotalStudyHours)
	require.NotNil(t, res.AvgStress)
	assert.Equal(t, 6.0, *res.AvgStress)
	require.NotNil(t, res.AvgEnergy)
	assert.Equal(t, 4.0, *res.AvgEnergy)

	// Subject breakdown keeps the store's descending order, hours
	// rounded to one decimal.
	assert.Equal(t, []string{"math", "physics"}, res.Subjects.Labels)
	assert.Equal(t, []float64{1.5, 1.3}, res.Subjects.Data)
}

func TestAggregate_EmptyWindow(t *testing.T) {
	a := newTestAnalytics(&fakeStore{})

	res, err := a.Aggregate(context.Background(), "u1", 7)
	require.NoError(t, err)

	require.Len(t, res.Dates, 7)
	for i := range res.Dates {
		assert.Zero(t, res.StudyHours[i])
		assert.Nil(t, res.StressLevels[i])
		assert.Nil(t, res.EnergyLevels[i])
	}
	assert.Zero(t, res.TotalStudyHours)
	assert.Nil(t, res.AvgStress)
	assert.Nil(t, res.AvgEnergy)
	assert.Empty(t, res.Subjects.Labels)
	assert.Empty(t, res.Subjects.Data)
}

func TestAggregate_SingleDayWindow(t *testing.T) {
	store := &fakeStore{
		studyDays: []StudyDayStat{{Date: "2026-03-15", TotalMinutes: 30, Sessions: 1}},
	}
	a := newTestAnalytics(store)

	res, err := a.Aggregate(context.Background(), "u1", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-03-15"}, res.Dates)
	assert.InDelta(t, 0.5, res.StudyHours[0], 1e-9)
	assert.Equal(t, 0.5, res.TotalStudyHours)
}

func TestAggregate_AvgIgnoresMissingDays(t *testing.T) {
	// Two check-in days averaging 4 and 8: the window average must be 6,
	// not dragged down by the five empty days.
	store := &fakeStore{
		wellnessDays: []WellnessDayStat{
			{Date: "2026-03-09", AvgStress: 4, AvgEnergy: 2},
			{Date: "2026-03-11", AvgStress: 8, AvgEnergy: 6},
		},
	}
	a := newTestAnalytics(store)

	res, err := a.Aggregate(context.Background(), "u1", 7)
	require.NoError(t, err)

	require.NotNil(t, res.AvgStress)
	assert.Equal(t, 6.0, *res.AvgStress)
	require.NotNil(t, res.AvgEnergy)
	assert.Equal(t, 4.0, *res.AvgEnergy)
}

func TestAggregate_Idempotent(t *testing.T) {
	store := &fakeStore{
		studyDays:    []StudyDayStat{{Date: "2026-03-14", TotalMinutes: 200, AvgSentiment: ptr(-0.2), Sessions: 3}},
		wellnessDays: []WellnessDayStat{{Date: "2026-03-14", AvgStress: 5.5, AvgEnergy: 7}},
		subjects:     []SubjectStat{{Subject: "history", TotalMinutes: 200, Sessions: 3}},
	}
	a := newTestAnalytics(store)

	first, err := a.Aggregate(context.Background(), "u1", 14)
	require.NoError(t, err)
	second, err := a.Aggregate(context.Background(), "u1", 14)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSessionStats_WeekdayHistogram(t *testing.T) {
	store := &fakeStore{
		studyDays: []StudyDayStat{
			{Date: "2026-03-09", TotalMinutes: 100, Sessions: 2}, // Monday
			{Date: "2026-03-14", TotalMinutes: 30, Sessions: 1},  // Saturday
			{Date: "2026-03-16", TotalMinutes: 60, Sessions: 1},  // next Monday
		},
		subjects: []SubjectStat{
			{Subject: "math", TotalMinutes: 160, Sessions: 3},
			{Subject: "biology", TotalMinutes: 30, Sessions: 1},
		},
	}
	a := newTestAnalytics(store)

	stats, err := a.SessionStats(context.Background(), "u1", time.Time{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, int64(3), stats.TotalHours)
	assert.Equal(t, int64(10), stats.TotalMinutes)

	// Monday is index 0; both Mondays land in the same bucket.
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}, stats.SessionsByDay.Labels)
	assert.Equal(t, []int{3, 0, 0, 0, 0, 1, 0}, stats.SessionsByDay.Data)

	require.Len(t, stats.BySubject, 2)
	assert.Equal(t, "math", stats.BySubject[0].Subject)
	assert.Equal(t, 3, stats.BySubject[0].Sessions)
}

func TestSessionStats_Empty(t *testing.T) {
	a := newTestAnalytics(&fakeStore{})

	stats, err := a.SessionStats(context.Background(), "u1", time.Time{}, testNow)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalSessions)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, stats.SessionsByDay.Data)
	assert.Empty(t, stats.BySubject)
}
