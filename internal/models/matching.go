package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SkillSynonym maps a canonical (lowercased) skill to its synonyms.
type SkillSynonym struct {
	Skill     string         `gorm:"column:skill;type:text;primaryKey" json:"skill"`
	Synonyms  pq.StringArray `gorm:"column:synonyms;type:text[]" json:"synonyms"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (SkillSynonym) TableName() string { return "skill_synonyms" }

// Location is a node of the place hierarchy (country > region > city ...).
type Location struct {
	ID       string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string  `gorm:"column:name;type:text;uniqueIndex" json:"name"`
	ParentID *string `gorm:"column:parent_id;type:uuid;index" json:"parent_id,omitempty"`
}

func (Location) TableName() string { return "locations" }

// WeightConfig holds the six matching weights. A nil CategoryID is the
// global default row.
type WeightConfig struct {
	ID         string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CategoryID *string `gorm:"column:category_id;type:uuid;uniqueIndex" json:"category_id,omitempty"`

	Skill      float64 `gorm:"column:skill_weight" json:"skill"`
	TargetJob  float64 `gorm:"column:target_job_weight" json:"target_job"`
	Experience float64 `gorm:"column:experience_weight" json:"experience"`
	Education  float64 `gorm:"column:education_weight" json:"education"`
	Location   float64 `gorm:"column:location_weight" json:"location"`
	Rating     float64 `gorm:"column:rating_weight" json:"rating"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (WeightConfig) TableName() string { return "weight_configs" }

// MatchResult is one persisted (job, worker) ranking row.
type MatchResult struct {
	ID       string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID    string         `gorm:"column:job_id;type:uuid;uniqueIndex:uniq_match_pair" json:"job_id"`
	WorkerID string         `gorm:"column:worker_id;type:uuid;uniqueIndex:uniq_match_pair;index" json:"worker_id"`
	Score    float64        `gorm:"column:score;index" json:"score"`
	Criteria datatypes.JSON `gorm:"column:criteria;type:jsonb" json:"criteria"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (MatchResult) TableName() string { return "match_results" }
