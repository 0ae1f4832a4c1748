package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// RecordPatch is the partial record shape accepted by create and update.
// Nil fields leave the stored value untouched; present fields replace it
// wholesale. Server-managed fields (id, userId, atsScore, timestamps) are
// not part of the shape, so clients sending them have them stripped by the
// decoder.
type RecordPatch struct {
	FirstName      *string                  `json:"firstName"`
	LastName       *string                  `json:"lastName"`
	Email          *string                  `json:"email"`
	Phone          *string                  `json:"phone"`
	Summary        *string                  `json:"summary"`
	Website        *string                  `json:"website"`
	LinkedIn       *string                  `json:"linkedin"`
	Education      *[]model.EducationEntry  `json:"education"`
	Experience     *[]model.ExperienceEntry `json:"experience"`
	Projects       *[]model.ProjectEntry    `json:"projects"`
	Skills         *[]string                `json:"skills"`
	TemplateStyle  *string                  `json:"templateStyle"`
	ColorScheme    *string                  `json:"colorScheme"`
	IsAtsOptimized *bool                    `json:"isAtsOptimized"`
	TargetRole     *string                  `json:"targetRole"`
}

// Apply merges the patch onto a record and returns the result.
func (p RecordPatch) Apply(r Record) Record {
	out := r
	if p.FirstName != nil {
		out.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		out.LastName = *p.LastName
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Summary != nil {
		out.Summary = *p.Summary
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.LinkedIn != nil {
		out.LinkedIn = *p.LinkedIn
	}
	if p.Education != nil {
		out.Education = append([]model.EducationEntry{}, (*p.Education)...)
	}
	if p.Experience != nil {
		out.Experience = append([]model.ExperienceEntry{}, (*p.Experience)...)
	}
	if p.Projects != nil {
		out.Projects = append([]model.ProjectEntry{}, (*p.Projects)...)
	}
	if p.Skills != nil {
		out.Skills = append([]string{}, (*p.Skills)...)
	}
	if p.TemplateStyle != nil {
		out.TemplateStyle = *p.TemplateStyle
	}
	if p.ColorScheme != nil {
		out.ColorScheme = *p.ColorScheme
	}
	if p.IsAtsOptimized != nil {
		out.IsAtsOptimized = *p.IsAtsOptimized
	}
	if p.TargetRole != nil {
		out.TargetRole = *p.TargetRole
	}
	return out
}

// RecordResponse is the outward-facing representation of a saved resume.
// AtsScore is always null: the score is ephemeral, computed per optimization
// run and never stored.
type RecordResponse struct {
	ID             int64                   `json:"id"`
	UserID         string                  `json:"userId"`
	FirstName      string                  `json:"firstName"`
	LastName       string                  `json:"lastName"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Summary        string                  `json:"summary"`
	Website        string                  `json:"website"`
	LinkedIn       string                  `json:"linkedin"`
	Education      []model.EducationEntry  `json:"education"`
	Experience     []model.ExperienceEntry `json:"experience"`
	Projects       []model.ProjectEntry    `json:"projects"`
	Skills         []string                `json:"skills"`
	TemplateStyle  string                  `json:"templateStyle"`
	ColorScheme    string                  `json:"colorScheme"`
	IsAtsOptimized bool                    `json:"isAtsOptimized"`
	TargetRole     string                  `json:"targetRole"`
	AtsScore       *int                    `json:"atsScore"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func toResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Summary:        r.Summary,
		Website:        r.Website,
		LinkedIn:       r.LinkedIn,
		Education:      orEmptyEducation(r.Education),
		Experience:     orEmptyExperience(r.Experience),
		Projects:       orEmptyProjects(r.Projects),
		Skills:         orEmptySkills(r.Skills),
		TemplateStyle:  r.TemplateStyle,
		ColorScheme:    r.ColorScheme,
		IsAtsOptimized: r.IsAtsOptimized,
		TargetRole:     r.TargetRole,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func orEmptyEducation(in []model.EducationEntry) []model.EducationEntry {
	if in == nil {
		return []model.EducationEntry{}
	}
	return in
}

func orEmptyExperience(in []model.ExperienceEntry) []model.ExperienceEntry {
	if in == nil {
		return []model.ExperienceEntry{}
	}
	return in
}

func orEmptyProjects(in []model.ProjectEntry) []model.ProjectEntry {
	if in == nil {
		return []model.ProjectEntry{}
	}
	return in
}

func orEmptySkills(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
