package models

import "time"

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

type Category struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;uniqueIndex" json:"name"`
}

func (Category) TableName() string { return "categories" }

type Job struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClientID string `gorm:"column:client_id;type:uuid;index" json:"client_id"`

	CategoryID *string   `gorm:"column:category_id;type:uuid;index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`

	Title       string    `gorm:"column:title;type:text" json:"title"`
	Location    string    `gorm:"column:location;type:text;index" json:"location"`
	Skills      string    `gorm:"column:skills;type:text" json:"skills"` // comma separated
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      JobStatus `gorm:"column:status;type:text;index" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

// CategoryName is empty when the job has no category loaded.
func (j *Job) CategoryName() string {
	if j.Category == nil {
		return ""
	}
	return j.Category.Name
}

type FeedbackKind string

const (
	// FeedbackWorkerRole is feedback received by the user while acting as a worker.
	FeedbackWorkerRole FeedbackKind = "worker_role"
	// FeedbackClientAboutWorker is a client's review of the worker on a job.
	FeedbackClientAboutWorker FeedbackKind = "client_about_worker"
)

type Feedback struct {
	ID        string       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID     string       `gorm:"column:job_id;type:uuid;index" json:"job_id"`
	WorkerID  string       `gorm:"column:worker_id;type:uuid;index" json:"worker_id"`
	Kind      FeedbackKind `gorm:"column:kind;type:text" json:"kind"`
	Rating    int          `gorm:"column:rating" json:"rating"` // 1..5
	CreatedAt time.Time    `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
