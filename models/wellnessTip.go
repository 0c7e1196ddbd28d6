package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WellnessTip is curated advice shown when the user's stress level falls
// inside the tip's [MinStressLevel, MaxStressLevel] range.
type WellnessTip struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Content        string             `bson:"content" json:"content"`
	Category       string             `bson:"category" json:"category"` // stress, focus, sleep, motivation
	MinStressLevel int                `bson:"min_stress_level" json:"min_stress_level"`
	MaxStressLevel int                `bson:"max_stress_level" json:"max_stress_level"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
