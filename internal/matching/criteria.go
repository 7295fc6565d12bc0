package matching

import (
	"strings"
	"time"

	"github.com/yoockh/workmatch/internal/models"
)

const (
	descriptionKeywords = 5
	fullExperienceYears = 5.0
	maxRating           = 5.0
	targetJobLimit      = 0.8
	educationMatch      = 1.0
	educationNoMatch    = 0.5
	levelAny            = "any"
)

var blueCollarCategories = map[string]struct{}{
	"plumbing":     {},
	"electrical":   {},
	"construction": {},
	"carpentry":    {},
}

// Criteria is the per-criterion breakdown of a match, each value in [0,1].
type Criteria struct {
	Skills     float64 `json:"skills"`
	TargetJob  float64 `json:"target_job"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Rating     float64 `json:"rating"`
}

// extendedJobSkills is the job's skill list, its synonyms and the top
// description keywords.
func extendedJobSkills(job *models.Job, synonyms SynonymTable) stringSet {
	ext := synonyms.expand(SplitSkills(job.Skills))
	ext.add(TopKeywords(job.Description, descriptionKeywords)...)
	return ext
}

func workerSkillSet(w *models.Worker) stringSet {
	s := newStringSet()
	for _, sk := range w.Skills {
		s.add(Normalize(sk.Name))
	}
	return s
}

// SkillScore is |extended job skills ∩ worker skills| / |extended job skills|.
func SkillScore(job *models.Job, w *models.Worker, synonyms SynonymTable) float64 {
	ext := extendedJobSkills(job, synonyms)
	if len(ext) == 0 {
		return 0
	}
	return float64(ext.countIn(workerSkillSet(w))) / float64(len(ext))
}

// ExperienceScore reaches 1.0 at five years. Workers without declared
// experience score 0 whatever their tenure.
func ExperienceScore(w *models.Worker, now time.Time) float64 {
	if !w.HasExperience {
		return 0
	}
	return clamp(w.YearsOfExperience(now)/fullExperienceYears, 0, 1)
}

// RatingScore averages the available rating means (raw 1..5 scale). A zero
// mean means no feedback of that kind and is left out.
func RatingScore(workerRoleMean, clientMean float64) float64 {
	var sum float64
	var n int
	for _, m := range []float64{workerRoleMean, clientMean} {
		if m > 0 {
			sum += m / maxRating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return clamp(sum/float64(n), 0, 1)
}

// TargetJobScore is 1.0 when a declared target title closely resembles the
// job category, 0.0 otherwise.
func TargetJobScore(categoryName string, targets []models.TargetJob) float64 {
	category := Normalize(categoryName)
	if category == "" {
		return 0
	}
	for _, t := range targets {
		title := Normalize(t.JobTitle)
		if title == "" {
			continue
		}
		if Ratio(title, category) > targetJobLimit {
			return 1
		}
	}
	return 0
}

type educationRequirement struct {
	field  string
	levels []string
}

func requiredEducation(job *models.Job) educationRequirement {
	category := Normalize(job.CategoryName())
	if _, ok := blueCollarCategories[category]; ok {
		return educationRequirement{field: category, levels: []string{"certificate", "training", levelAny}}
	}

	text := Normalize(job.Title + " " + job.Description)
	req := educationRequirement{levels: []string{levelAny}}
	if strings.Contains(text, "engineer") {
		req.field = "engineering"
	}
	if strings.Contains(text, "degree") {
		req.levels = []string{"bachelor", levelAny}
	}
	return req
}

// EducationScore checks the worker's first education record only: the
// average of field match and level match. No records scores 0.
func EducationScore(job *models.Job, educations []models.Education) float64 {
	if len(educations) == 0 {
		return 0
	}
	req := requiredEducation(job)
	first := educations[0]

	field := educationNoMatch
	if req.field != "" && strings.Contains(Normalize(first.FieldOfStudy), req.field) {
		field = educationMatch
	}

	level := educationNoMatch
	workerLevel := Normalize(first.LevelOfStudy)
	for _, l := range req.levels {
		if strings.Contains(workerLevel, l) {
			level = educationMatch
			break
		}
	}
	return (field + level) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
