package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyGoal tracks progress toward a target number of study hours.
// CurrentHours is incremented whenever a study session is logged.
type StudyGoal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	TargetHours  float64            `bson:"target_hours" json:"target_hours"`
	CurrentHours float64            `bson:"current_hours" json:"current_hours"`
	Deadline     *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	IsCompleted  bool               `bson:"is_completed" json:"is_completed"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
