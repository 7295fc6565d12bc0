package services

import (
	"time"

	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
)

type WorkerProfileView struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	Location          string   `json:"location"`
	HasExperience     bool     `json:"has_experience"`
	YearsOfExperience float64  `json:"years_of_experience"`
	Skills            []string `json:"skills"`
	TargetJobs        []string `json:"target_jobs"`
}

type JobSummaryView struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Location string           `json:"location"`
	Category string           `json:"category,omitempty"`
	Skills   string           `json:"skills"`
	Status   models.JobStatus `json:"status"`
}

type WorkerMatchView struct {
	Worker   WorkerProfileView `json:"worker"`
	Score    float64           `json:"score"`
	Criteria matching.Criteria `json:"criteria"`
}

type JobMatchView struct {
	Job      JobSummaryView    `json:"job"`
	Score    float64           `json:"score"`
	Criteria matching.Criteria `json:"criteria"`
}

func newWorkerProfileView(w *models.Worker, now time.Time) WorkerProfileView {
	v := WorkerProfileView{
		ID:                w.ID,
		UserID:            w.UserID,
		Location:          w.Location,
		HasExperience:     w.HasExperience,
		YearsOfExperience: w.YearsOfExperience(now),
		Skills:            make([]string, 0, len(w.Skills)),
		TargetJobs:        make([]string, 0, len(w.TargetJobs)),
	}
	for _, s := range w.Skills {
		v.Skills = append(v.Skills, s.Name)
	}
	for _, t := range w.TargetJobs {
		v.TargetJobs = append(v.TargetJobs, t.JobTitle)
	}
	return v
}

func newJobSummaryView(j *models.Job) JobSummaryView {
	return JobSummaryView{
		ID:       j.ID,
		Title:    j.Title,
		Location: j.Location,
		Category: j.CategoryName(),
		Skills:   j.Skills,
		Status:   j.Status,
	}
}
