package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/F-Mutua/Mindfit/models"
)

// GoalUpdater advances study-goal progress when sessions are logged.
type GoalUpdater interface {
	AddGoalProgress(ctx context.Context, userID string, hours float64) error
}

// SessionLogger is the write path for study sessions and wellness
// entries. Notes are sentiment-scored best effort before the insert; a
// dead classifier never fails the write.
type SessionLogger struct {
	store  RecordStore
	goals  GoalUpdater
	scorer *SentimentScorer
	now    func() time.Time
}

// NewSessionLogger wires the write path. goals may be nil when goal
// tracking is not in use.
func NewSessionLogger(store RecordStore, goals GoalUpdater, scorer *SentimentScorer) *SessionLogger {
	return &SessionLogger{store: store, goals: goals, scorer: scorer, now: time.Now}
}

func (l *SessionLogger) sentimentOf(ctx context.Context, notes string) *float64 {
	if notes == "" || l.scorer == nil {
		return nil
	}
	score := l.scorer.ScoreText(ctx, notes)
	return &score
}

func (l *SessionLogger) LogStudySession(ctx context.Context, userID, subject string, durationMin int, notes string) (*models.StudySession, error) {
	s := &models.StudySession{
		UserID:      userID,
		Subject:     subject,
		DurationMin: durationMin,
		Notes:       notes,
		Sentiment:   l.sentimentOf(ctx, notes),
		CreatedAt:   l.now().UTC(),
	}
	if err := l.store.InsertStudySession(ctx, s); err != nil {
		return nil, err
	}
	if l.goals != nil {
		// The session is already recorded; a failed goal update is
		// logged, not surfaced.
		if err := l.goals.AddGoalProgress(ctx, userID, float64(durationMin)/60); err != nil {
			log.Printf("goal progress update failed for user %s: %v", userID, err)
		}
	}
	return s, nil
}

func (l *SessionLogger) LogWellnessEntry(ctx context.Context, userID string, stress, energy int, sleepHours *float64, notes string) (*models.WellnessEntry, error) {
	e := &models.WellnessEntry{
		UserID:      userID,
		StressLevel: stress,
		EnergyLevel: energy,
		SleepHours:  sleepHours,
		Notes:       notes,
		Sentiment:   l.sentimentOf(ctx, notes),
		CreatedAt:   l.now().UTC(),
	}
	if err := l.store.InsertWellnessEntry(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// StudySessions lists the user's most recent sessions.
func (l *SessionLogger) StudySessions(ctx context.Context, userID string, limit int64) ([]models.StudySession, error) {
	sessions, err := l.store.RecentStudySessions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list study sessions: %w", err)
	}
	return sessions, nil
}

// WellnessEntries lists the user's most recent check-ins.
func (l *SessionLogger) WellnessEntries(ctx context.Context, userID string, limit int64) ([]models.WellnessEntry, error) {
	entries, err := l.store.RecentWellnessEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wellness entries: %w", err)
	}
	return entries, nil
}
