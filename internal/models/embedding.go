package models

import "time"

type EntityType string

const (
	EntityJob    EntityType = "job"
	EntityWorker EntityType = "worker"
)

// Embedding is the stored text bag of a job or worker. Despite the name it
// carries no vector, only raw text and extracted keywords.
type Embedding struct {
	EntityType EntityType `bson:"entity_type" json:"entity_type"`
	EntityID   string     `bson:"entity_id" json:"entity_id"`
	RawText    string     `bson:"raw_text" json:"raw_text"`
	Keywords   []string   `bson:"keywords" json:"keywords"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}
