package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudySession is a single logged block of study time. Sessions are
// immutable once written; the analytics engine only ever reads them.
type StudySession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Subject     string             `bson:"subject" json:"subject"`
	DurationMin int                `bson:"duration_min" json:"duration_min"` // actual minutes, >= 1
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Sentiment   *float64           `bson:"sentiment,omitempty" json:"sentiment,omitempty"` // -1..1, absent when no notes
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
