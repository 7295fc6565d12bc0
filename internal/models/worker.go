package models

import "time"

type Worker struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;uniqueIndex" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Location      string     `gorm:"column:location;type:text;index" json:"location"`
	HasExperience bool       `gorm:"column:has_experience" json:"has_experience"`
	JoinedAt      time.Time  `gorm:"column:joined_at;type:timestamptz" json:"joined_at"`
	LastActiveAt  *time.Time `gorm:"column:last_active_at;type:timestamptz" json:"last_active_at,omitempty"`

	Skills     []Skill     `gorm:"foreignKey:WorkerID" json:"skills"`
	Educations []Education `gorm:"foreignKey:WorkerID" json:"educations"`
	TargetJobs []TargetJob `gorm:"foreignKey:WorkerID" json:"target_jobs"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Worker) TableName() string { return "workers" }

// YearsOfExperience is the tenure since JoinedAt, never negative.
func (w *Worker) YearsOfExperience(now time.Time) float64 {
	if w.JoinedAt.IsZero() || now.Before(w.JoinedAt) {
		return 0
	}
	return now.Sub(w.JoinedAt).Hours() / 24 / 365.25
}

type Skill struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	WorkerID string `gorm:"column:worker_id;type:uuid;index" json:"worker_id"`
	Name     string `gorm:"column:name;type:text;index" json:"name"` // stored normalized
	Level    string `gorm:"column:level;type:text" json:"level"`
}

func (Skill) TableName() string { return "skills" }

type Education struct {
	ID              string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	WorkerID        string    `gorm:"column:worker_id;type:uuid;index" json:"worker_id"`
	LevelOfStudy    string    `gorm:"column:level_of_study;type:text" json:"level_of_study"`
	FieldOfStudy    string    `gorm:"column:field_of_study;type:text" json:"field_of_study"`
	Institute       string    `gorm:"column:institute;type:text" json:"institute"`
	GraduationYear  int       `gorm:"column:graduation_year" json:"graduation_year"`
	GraduationMonth int       `gorm:"column:graduation_month" json:"graduation_month"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Education) TableName() string { return "educations" }

type TargetJob struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	WorkerID   string `gorm:"column:worker_id;type:uuid;index" json:"worker_id"`
	JobTitle   string `gorm:"column:job_title;type:text" json:"job_title"`
	Level      string `gorm:"column:level;type:text" json:"level"`
	OpenToWork bool   `gorm:"column:open_to_work" json:"open_to_work"`
}

func (TargetJob) TableName() string { return "target_jobs" }
