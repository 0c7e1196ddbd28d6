package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/F-Mutua/Mindfit/models"
)

func (m *MongoStore) CreateStudyGoal(ctx context.Context, g *models.StudyGoal) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	if _, err := m.goals().InsertOne(ctx, g); err != nil {
		return fmt.Errorf("create study goal: %w", err)
	}
	return nil
}

// ActiveGoals returns the user's incomplete goals, nearest deadline
// first.
func (m *MongoStore) ActiveGoals(ctx context.Context, userID string) ([]models.StudyGoal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})
	cursor, err := m.goals().Find(ctx, bson.M{"user_id": userID, "is_completed": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("active goals: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.StudyGoal
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("active goals: %w", err)
	}
	return out, nil
}

// AddGoalProgress adds the given hours to every active goal, then marks
// goals whose progress reached the target as completed.
func (m *MongoStore) AddGoalProgress(ctx context.Context, userID string, hours float64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	_, err := m.goals().UpdateMany(ctx,
		bson.M{"user_id": userID, "is_completed": false},
		bson.M{"$inc": bson.M{"current_hours": hours}},
	)
	if err != nil {
		return fmt.Errorf("add goal progress: %w", err)
	}
	_, err = m.goals().UpdateMany(ctx,
		bson.M{
			"user_id":      userID,
			"is_completed": false,
			"$expr":        bson.M{"$gte": bson.A{"$current_hours", "$target_hours"}},
		},
		bson.M{"$set": bson.M{"is_completed": true}},
	)
	if err != nil {
		return fmt.Errorf("complete goals: %w", err)
	}
	return nil
}
