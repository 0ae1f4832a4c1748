package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// Record is the durable server-side representation of a saved resume: the
// draft's personal-info fields hoisted to top level, list fields stored as
// JSON blobs, plus server-managed identity and timestamps. The ATS score is
// ephemeral and never persisted.
type Record struct {
	ID             int64
	UserID         string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Summary        string
	Website        string
	LinkedIn       string
	Education      []model.EducationEntry
	Experience     []model.ExperienceEntry
	Projects       []model.ProjectEntry
	Skills         []string
	TemplateStyle  string
	ColorScheme    string
	IsAtsOptimized bool
	TargetRole     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewRecord returns a record with the domain defaults filled in, ready to
// have a creation patch applied.
func NewRecord(userID string) Record {
	return Record{
		UserID:        userID,
		Education:     []model.EducationEntry{},
		Experience:    []model.ExperienceEntry{},
		Projects:      []model.ProjectEntry{},
		Skills:        []string{},
		TemplateStyle: model.DefaultTemplateStyle,
		ColorScheme:   model.DefaultColorScheme,
	}
}

// Draft converts the record back to the client-side draft shape.
func (r Record) Draft() model.Draft {
	d := model.NewDraft()
	d.PersonalInfo = model.PersonalInfo{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Summary:   r.Summary,
		Website:   r.Website,
		LinkedIn:  r.LinkedIn,
	}
	d.Education = append(d.Education, r.Education...)
	d.Experience = append(d.Experience, r.Experience...)
	d.Projects = append(d.Projects, r.Projects...)
	d.Skills = append(d.Skills, r.Skills...)
	d.TemplateStyle = r.TemplateStyle
	d.ColorScheme = r.ColorScheme
	d.IsAtsOptimized = r.IsAtsOptimized
	d.TargetRole = r.TargetRole
	return d
}
