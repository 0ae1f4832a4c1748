package apiclient

import (
	"time"

	"resume-builder/resume/model"
)

// Resume is the wire representation of a stored resume: personal-info
// fields hoisted to top level, server-managed fields included. AtsScore is
// always null on reads, the score is never persisted server-side.
type Resume struct {
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

// DraftPatch converts the remote resume into a patch that sets every
// draft field, ready to merge into the local store on pull.
func (r Resume) DraftPatch() model.DraftPatch {
	info := model.PersonalInfoPatch{
		FirstName: &r.FirstName,
		LastName:  &r.LastName,
		Email:     &r.Email,
		Phone:     &r.Phone,
		Summary:   &r.Summary,
		Website:   &r.Website,
		LinkedIn:  &r.LinkedIn,
	}
	education := r.Education
	experience := r.Experience
	projects := r.Projects
	skills := r.Skills
	return model.DraftPatch{
		PersonalInfo:   &info,
		Education:      &education,
		Experience:     &experience,
		Projects:       &projects,
		Skills:         &skills,
		TemplateStyle:  &r.TemplateStyle,
		ColorScheme:    &r.ColorScheme,
		IsAtsOptimized: &r.IsAtsOptimized,
		TargetRole:     &r.TargetRole,
	}
}

// SavePayload is the partial record shape create and update accept:
// hoisted personal-info fields, nil fields left untouched server-side.
// Server-managed fields have no place here, the server would strip them
// anyway.
type SavePayload struct {
	FirstName      *string                  `json:"firstName,omitempty"`
	LastName       *string                  `json:"lastName,omitempty"`
	Email          *string                  `json:"email,omitempty"`
	Phone          *string                  `json:"phone,omitempty"`
	Summary        *string                  `json:"summary,omitempty"`
	Website        *string                  `json:"website,omitempty"`
	LinkedIn       *string                  `json:"linkedin,omitempty"`
	Education      *[]model.EducationEntry  `json:"education,omitempty"`
	Experience     *[]model.ExperienceEntry `json:"experience,omitempty"`
	Projects       *[]model.ProjectEntry    `json:"projects,omitempty"`
	Skills         *[]string                `json:"skills,omitempty"`
	TemplateStyle  *string                  `json:"templateStyle,omitempty"`
	ColorScheme    *string                  `json:"colorScheme,omitempty"`
	IsAtsOptimized *bool                    `json:"isAtsOptimized,omitempty"`
	TargetRole     *string                  `json:"targetRole,omitempty"`
}

// PayloadFromDraft flattens the whole draft into a save payload. Push
// always sends full local state, the server merge then has nothing left
// to preserve.
func PayloadFromDraft(d model.Draft) SavePayload {
	c := d.Clone()
	education := c.Education
	experience := c.Experience
	projects := c.Projects
	skills := c.Skills
	return SavePayload{
		FirstName:      &c.PersonalInfo.FirstName,
		LastName:       &c.PersonalInfo.LastName,
		Email:          &c.PersonalInfo.Email,
		Phone:          &c.PersonalInfo.Phone,
		Summary:        &c.PersonalInfo.Summary,
		Website:        &c.PersonalInfo.Website,
		LinkedIn:       &c.PersonalInfo.LinkedIn,
		Education:      &education,
		Experience:     &experience,
		Projects:       &projects,
		Skills:         &skills,
		TemplateStyle:  &c.TemplateStyle,
		ColorScheme:    &c.ColorScheme,
		IsAtsOptimized: &c.IsAtsOptimized,
		TargetRole:     &c.TargetRole,
	}
}

// OptimizeResult is the optimization response.
type OptimizeResult struct {
	OptimizedText string `json:"optimizedText"`
	AtsScore      int    `json:"atsScore"`
}
