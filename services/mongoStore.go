package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/F-Mutua/Mindfit/models"
)

const queryTimeout = 10 * time.Second

// MongoStore implements RecordStore on top of MongoDB. Daily and subject
// rollups are pushed down into aggregation pipelines so raw rows never
// cross the wire.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (m *MongoStore) sessions() *mongo.Collection { return m.db.Collection("study_sessions") }
func (m *MongoStore) wellness() *mongo.Collection { return m.db.Collection("wellness_entries") }
func (m *MongoStore) tips() *mongo.Collection     { return m.db.Collection("wellness_tips") }
func (m *MongoStore) goals() *mongo.Collection    { return m.db.Collection("study_goals") }

func (m *MongoStore) InsertStudySession(ctx context.Context, s *models.StudySession) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if _, err := m.sessions().InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert study session: %w", err)
	}
	return nil
}

func (m *MongoStore) InsertWellnessEntry(ctx context.Context, e *models.WellnessEntry) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if _, err := m.wellness().InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert wellness entry: %w", err)
	}
	return nil
}

// dayKey buckets created_at into a YYYY-MM-DD string inside the pipeline.
func dayKey() bson.M {
	return bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}}
}

func rangeMatch(userID string, from, to time.Time) bson.M {
	return bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": from, "$lte": to},
	}
}

func (m *MongoStore) StudyDailyTotals(ctx context.Context, userID string, from, to time.Time) ([]StudyDayStat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": rangeMatch(userID, from, to)},
		{"$group": bson.M{
			"_id":           dayKey(),
			"total_minutes": bson.M{"$sum": "$duration_min"},
			// $avg skips null/missing, so days where no session carried
			// notes come back with a nil average rather than zero.
			"avg_sentiment": bson.M{"$avg": "$sentiment"},
			"sessions":      bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := m.sessions().Aggregate(ctx, pipe)
	if err != nil {
		return nil, fmt.Errorf("study daily totals: %w", err)
	}
	defer cursor.Close(ctx)
	var out []StudyDayStat
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("study daily totals: %w", err)
	}
	return out, nil
}

func (m *MongoStore) WellnessDailyAverages(ctx context.Context, userID string, from, to time.Time) ([]WellnessDayStat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": rangeMatch(userID, from, to)},
		{"$group": bson.M{
			"_id":        dayKey(),
			"avg_stress": bson.M{"$avg": "$stress_level"},
			"avg_energy": bson.M{"$avg": "$energy_level"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := m.wellness().Aggregate(ctx, pipe)
	if err != nil {
		return nil, fmt.Errorf("wellness daily averages: %w", err)
	}
	defer cursor.Close(ctx)
	var out []WellnessDayStat
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("wellness daily averages: %w", err)
	}
	return out, nil
}

func (m *MongoStore) SubjectTotals(ctx context.Context, userID string, from, to time.Time) ([]SubjectStat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": rangeMatch(userID, from, to)},
		{"$group": bson.M{
			"_id":           "$subject",
			"total_minutes": bson.M{"$sum": "$duration_min"},
			"sessions":      bson.M{"$sum": 1},
		}},
		// Secondary key keeps equal totals in a stable order.
		{"$sort": bson.D{{Key: "total_minutes", Value: -1}, {Key: "_id", Value: 1}}},
	}
	cursor, err := m.sessions().Aggregate(ctx, pipe)
	if err != nil {
		return nil, fmt.Errorf("subject totals: %w", err)
	}
	defer cursor.Close(ctx)
	var out []SubjectStat
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("subject totals: %w", err)
	}
	return out, nil
}

func (m *MongoStore) StudyTotalMinutes(ctx context.Context, userID string, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": bson.M{"user_id": userID, "created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{"_id": nil, "total_minutes": bson.M{"$sum": "$duration_min"}}},
	}
	cursor, err := m.sessions().Aggregate(ctx, pipe)
	if err != nil {
		return 0, fmt.Errorf("study total minutes: %w", err)
	}
	defer cursor.Close(ctx)
	var rows []struct {
		TotalMinutes int64 `bson:"total_minutes"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("study total minutes: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalMinutes, nil
}

func (m *MongoStore) DistinctStudyDays(ctx context.Context, userID string, since time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": bson.M{"user_id": userID, "created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{"_id": dayKey()}},
		{"$count": "days"},
	}
	cursor, err := m.sessions().Aggregate(ctx, pipe)
	if err != nil {
		return 0, fmt.Errorf("distinct study days: %w", err)
	}
	defer cursor.Close(ctx)
	var rows []struct {
		Days int `bson:"days"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("distinct study days: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Days, nil
}

// AvgStress returns nil when the user logged no wellness entries in the
// window; the scorer substitutes its neutral default.
func (m *MongoStore) AvgStress(ctx context.Context, userID string, since time.Time) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	pipe := []bson.M{
		{"$match": bson.M{"user_id": userID, "created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{"_id": nil, "avg_stress": bson.M{"$avg": "$stress_level"}}},
	}
	cursor, err := m.wellness().Aggregate(ctx, pipe)
	if err != nil {
		return nil, fmt.Errorf("avg stress: %w", err)
	}
	defer cursor.Close(ctx)
	var rows []struct {
		AvgStress *float64 `bson:"avg_stress"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("avg stress: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].AvgStress, nil
}

func (m *MongoStore) RecentStudySessions(ctx context.Context, userID string, limit int64) ([]models.StudySession, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := m.sessions().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent study sessions: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.StudySession
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("recent study sessions: %w", err)
	}
	return out, nil
}

func (m *MongoStore) RecentWellnessEntries(ctx context.Context, userID string, limit int64) ([]models.WellnessEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := m.wellness().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent wellness entries: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.WellnessEntry
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("recent wellness entries: %w", err)
	}
	return out, nil
}
