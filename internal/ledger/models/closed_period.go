package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClosedPeriod records that period-end closing has run for a fiscal year.
// Its existence makes a repeat closing fail instead of double-counting
// retained earnings.
type ClosedPeriod struct {
	Period   string               `bson:"period" json:"period"`
	EntryIDs []primitive.ObjectID `bson:"entry_ids" json:"entryIds"`
	ClosedAt time.Time            `bson:"closed_at" json:"closedAt"`
	ClosedBy string               `bson:"closed_by" json:"closedBy"`
}
