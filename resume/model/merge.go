package model

// DraftPatch is a partial draft. Nil fields leave the target untouched;
// present fields replace wholesale, except PersonalInfo which merges one
// level deeper. This is the shape both the draft store and the resume
// update endpoint accept.
type DraftPatch struct {
	PersonalInfo   *PersonalInfoPatch `json:"personalInfo,omitempty"`
	Education      *[]EducationEntry  `json:"education,omitempty"`
	Experience     *[]ExperienceEntry `json:"experience,omitempty"`
	Projects       *[]ProjectEntry    `json:"projects,omitempty"`
	Skills         *[]string          `json:"skills,omitempty"`
	TemplateStyle  *string            `json:"templateStyle,omitempty"`
	ColorScheme    *string            `json:"colorScheme,omitempty"`
	IsAtsOptimized *bool              `json:"isAtsOptimized,omitempty"`
	TargetRole     *string            `json:"targetRole,omitempty"`
	AtsScore       *int               `json:"atsScore,omitempty"`
}

// PersonalInfoPatch is a partial contact block.
type PersonalInfoPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Website   *string `json:"website,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// Merge applies patch onto base and returns the result. base is not
// modified. List fields are copied so the result never aliases the patch.
func Merge(base Draft, patch DraftPatch) Draft {
	out := base.Clone()

	if patch.PersonalInfo != nil {
		out.PersonalInfo = mergePersonalInfo(out.PersonalInfo, *patch.PersonalInfo)
	}
	if patch.Education != nil {
		out.Education = append([]EducationEntry{}, (*patch.Education)...)
	}
	if patch.Experience != nil {
		out.Experience = append([]ExperienceEntry{}, (*patch.Experience)...)
	}
	if patch.Projects != nil {
		out.Projects = append([]ProjectEntry{}, (*patch.Projects)...)
	}
	if patch.Skills != nil {
		out.Skills = append([]string{}, (*patch.Skills)...)
	}
	if patch.TemplateStyle != nil {
		out.TemplateStyle = *patch.TemplateStyle
	}
	if patch.ColorScheme != nil {
		out.ColorScheme = *patch.ColorScheme
	}
	if patch.IsAtsOptimized != nil {
		out.IsAtsOptimized = *patch.IsAtsOptimized
	}
	if patch.TargetRole != nil {
		out.TargetRole = *patch.TargetRole
	}
	if patch.AtsScore != nil {
		score := *patch.AtsScore
		out.AtsScore = &score
	}
	return out
}

func mergePersonalInfo(base PersonalInfo, patch PersonalInfoPatch) PersonalInfo {
	out := base
	if patch.FirstName != nil {
		out.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		out.LastName = *patch.LastName
	}
	if patch.Email != nil {
		out.Email = *patch.Email
	}
	if patch.Phone != nil {
		out.Phone = *patch.Phone
	}
	if patch.Summary != nil {
		out.Summary = *patch.Summary
	}
	if patch.Website != nil {
		out.Website = *patch.Website
	}
	if patch.LinkedIn != nil {
		out.LinkedIn = *patch.LinkedIn
	}
	return out
}

// PatchFromDraft turns a full draft into a patch that sets every field.
// The client uses it to push its whole local state in one update.
func PatchFromDraft(d Draft) DraftPatch {
	c := d.Clone()
	info := PersonalInfoPatch{
		FirstName: &c.PersonalInfo.FirstName,
		LastName:  &c.PersonalInfo.LastName,
		Email:     &c.PersonalInfo.Email,
		Phone:     &c.PersonalInfo.Phone,
		Summary:   &c.PersonalInfo.Summary,
		Website:   &c.PersonalInfo.Website,
		LinkedIn:  &c.PersonalInfo.LinkedIn,
	}
	education := c.Education
	experience := c.Experience
	projects := c.Projects
	skills := c.Skills
	patch := DraftPatch{
		PersonalInfo:   &info,
		Education:      &education,
		Experience:     &experience,
		Projects:       &projects,
		Skills:         &skills,
		TemplateStyle:  &c.TemplateStyle,
		ColorScheme:    &c.ColorScheme,
		IsAtsOptimized: &c.IsAtsOptimized,
		TargetRole:     &c.TargetRole,
	}
	if c.AtsScore != nil {
		patch.AtsScore = c.AtsScore
	}
	return patch
}
