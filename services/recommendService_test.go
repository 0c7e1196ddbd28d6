package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F-Mutua/Mindfit/models"
)

func TestRecommendations_EmptyHistoryFallsBack(t *testing.T) {
	a := newTestAnalytics(&fakeStore{})

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "Use Active Recall", recs[0].Title)
	assert.Equal(t, "Space Out Your Study Sessions", recs[1].Title)
	for _, r := range recs {
		assert.Equal(t, "study", r.Type)
		assert.Equal(t, models.PriorityMedium, r.Priority)
	}
}

func TestRecommendations_LongSessions(t *testing.T) {
	store := &fakeStore{
		sessions: []models.StudySession{
			studySession(90), studySession(80), studySession(100),
			studySession(70), studySession(95),
		},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "break", recs[0].Type)
	assert.Equal(t, "Take Regular Breaks", recs[0].Title)
	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
}

func TestRecommendations_MeanExactlyAtThresholdDoesNotFire(t *testing.T) {
	// Both rules use strict >, so means of exactly 60 and 7 stay quiet
	// and the fallback tips come back instead.
	store := &fakeStore{
		sessions: []models.StudySession{
			studySession(60), studySession(60), studySession(60),
			studySession(60), studySession(60),
		},
		entries: []models.WellnessEntry{
			wellnessEntry(7), wellnessEntry(7), wellnessEntry(7),
			wellnessEntry(7), wellnessEntry(7),
		},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "study", recs[0].Type)
}

func TestRecommendations_HighStress(t *testing.T) {
	// Stress [8,9,8,9,8] has mean 8.4 > 7.
	store := &fakeStore{
		entries: []models.WellnessEntry{
			wellnessEntry(8), wellnessEntry(9), wellnessEntry(8),
			wellnessEntry(9), wellnessEntry(8),
		},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "wellness", recs[0].Type)
	assert.Equal(t, "High Stress Detected", recs[0].Title)
	assert.Equal(t, models.PriorityHigh, recs[0].Priority)
}

func TestRecommendations_BothRulesFire(t *testing.T) {
	store := &fakeStore{
		sessions: []models.StudySession{studySession(120), studySession(90)},
		entries:  []models.WellnessEntry{wellnessEntry(9), wellnessEntry(10)},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	// Study rule first, wellness rule second; no fallback tips.
	require.Len(t, recs, 2)
	assert.Equal(t, "break", recs[0].Type)
	assert.Equal(t, "wellness", recs[1].Type)
}

func TestRecommendations_FewerThanFiveEvents(t *testing.T) {
	// With only two short sessions on record the break rule uses their
	// mean, not a zero-padded one.
	store := &fakeStore{
		sessions: []models.StudySession{studySession(30), studySession(40)},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "study", recs[0].Type)
}

func TestRecommendations_OnlyFiveMostRecentConsidered(t *testing.T) {
	// Six sessions on record; the fake returns the first five for a
	// limit of five, whose mean (62) fires the rule even though the
	// sixth would drag it under.
	store := &fakeStore{
		sessions: []models.StudySession{
			studySession(62), studySession(62), studySession(62),
			studySession(62), studySession(62), studySession(5),
		},
	}
	a := newTestAnalytics(store)

	recs, err := a.Recommendations(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "break", recs[0].Type)
}
