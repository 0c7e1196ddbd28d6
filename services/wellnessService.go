package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/F-Mutua/Mindfit/models"
)

// WellnessTips returns tips whose stress range covers stressLevel,
// optionally filtered by category. When the category filter leaves
// nothing, it falls back to matching on stress range alone.
func (m *MongoStore) WellnessTips(ctx context.Context, stressLevel int, category string) ([]models.WellnessTip, error) {
	tips, err := m.findTips(ctx, stressLevel, strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return nil, err
	}
	if len(tips) == 0 && category != "" {
		return m.findTips(ctx, stressLevel, "")
	}
	return tips, nil
}

func (m *MongoStore) findTips(ctx context.Context, stressLevel int, category string) ([]models.WellnessTip, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	filter := bson.M{
		"min_stress_level": bson.M{"$lte": stressLevel},
		"max_stress_level": bson.M{"$gte": stressLevel},
	}
	if category != "" {
		filter["category"] = category
	}
	cursor, err := m.tips().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("wellness tips: %w", err)
	}
	defer cursor.Close(ctx)
	var out []models.WellnessTip
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("wellness tips: %w", err)
	}
	return out, nil
}
