package model

import (
	"slices"

	"github.com/google/uuid"
)

// Template styles accepted by the renderer. Unknown values fall back to
// DefaultTemplateStyle at render time rather than failing.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
	TemplateMinimalist   = "minimalist"
	TemplateCreative     = "creative"

	DefaultTemplateStyle = TemplateModern
)

// Color schemes accepted by the renderer.
const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorGray   = "gray"
	ColorPurple = "purple"

	DefaultColorScheme = ColorBlue
)

// Draft is the canonical in-progress resume. It is the shape the editor
// mutates, the draft store persists, and the text projection reads.
type Draft struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Education      []EducationEntry  `json:"education" validate:"dive"`
	Experience     []ExperienceEntry `json:"experience" validate:"dive"`
	Projects       []ProjectEntry    `json:"projects" validate:"dive"`
	Skills         []string          `json:"skills"`
	TemplateStyle  string            `json:"templateStyle"`
	ColorScheme    string            `json:"colorScheme"`
	IsAtsOptimized bool              `json:"isAtsOptimized"`
	TargetRole     string            `json:"targetRole"`
	AtsScore       *int              `json:"atsScore,omitempty"`
	LastUpdated    int64             `json:"lastUpdated,omitempty"`
}

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Summary   string `json:"summary"`
	Website   string `json:"website" validate:"omitempty,http_url"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,http_url"`
}

// EducationEntry is one education item. When Current is true EndDate is
// ignored for display.
type EducationEntry struct {
	ID          string `json:"id"`
	School      string `json:"school" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// ExperienceEntry is one work history item, same shape as education with
// company and position in place of school and degree.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// ProjectEntry is one project item.
type ProjectEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Technologies string `json:"technologies"`
	URL          string `json:"url" validate:"omitempty,http_url"`
	Description  string `json:"description"`
}

// NewDraft returns the fixed default draft: empty contact block, empty
// lists, default template and color.
func NewDraft() Draft {
	return Draft{
		Education:     []EducationEntry{},
		Experience:    []ExperienceEntry{},
		Projects:      []ProjectEntry{},
		Skills:        []string{},
		TemplateStyle: DefaultTemplateStyle,
		ColorScheme:   DefaultColorScheme,
	}
}

// NewEntryID returns a unique identifier for a list entry. IDs are never
// reused or renumbered, entries are always removed by identity.
func NewEntryID() string {
	return uuid.NewString()
}

// AddEducation appends an entry, assigning an ID if the caller left it empty,
// and returns the stored entry.
func (d *Draft) AddEducation(e EducationEntry) EducationEntry {
	if e.ID == "" {
		e.ID = NewEntryID()
	}
	d.Education = append(d.Education, e)
	return e
}

// RemoveEducation deletes the entry with the given ID. It reports whether an
// entry was removed.
func (d *Draft) RemoveEducation(id string) bool {
	for i, e := range d.Education {
		if e.ID == id {
			d.Education = append(d.Education[:i], d.Education[i+1:]...)
			return true
		}
	}
	return false
}

// AddExperience appends an entry, assigning an ID if the caller left it
// empty, and returns the stored entry.
func (d *Draft) AddExperience(e ExperienceEntry) ExperienceEntry {
	if e.ID == "" {
		e.ID = NewEntryID()
	}
	d.Experience = append(d.Experience, e)
	return e
}

// RemoveExperience deletes the entry with the given ID. It reports whether an
// entry was removed.
func (d *Draft) RemoveExperience(id string) bool {
	for i, e := range d.Experience {
		if e.ID == id {
			d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
			return true
		}
	}
	return false
}

// AddProject appends an entry, assigning an ID if the caller left it empty,
// and returns the stored entry.
func (d *Draft) AddProject(p ProjectEntry) ProjectEntry {
	if p.ID == "" {
		p.ID = NewEntryID()
	}
	d.Projects = append(d.Projects, p)
	return p
}

// RemoveProject deletes the entry with the given ID. It reports whether an
// entry was removed.
func (d *Draft) RemoveProject(id string) bool {
	for i, p := range d.Projects {
		if p.ID == id {
			d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// AddSkill appends a skill. The list keeps insertion order and allows
// duplicates, matching the editor's append-only chip list.
func (d *Draft) AddSkill(skill string) {
	d.Skills = append(d.Skills, skill)
}

// RemoveSkill deletes the first skill equal to the given value. It reports
// whether a skill was removed.
func (d *Draft) RemoveSkill(skill string) bool {
	for i, s := range d.Skills {
		if s == skill {
			d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
			return true
		}
	}
	return false
}

// NormalizeTemplateStyle maps unknown styles to the default so stale stored
// values render instead of erroring.
func NormalizeTemplateStyle(style string) string {
	switch style {
	case TemplateProfessional, TemplateModern, TemplateMinimalist, TemplateCreative:
		return style
	default:
		return DefaultTemplateStyle
	}
}

// NormalizeColorScheme maps unknown schemes to the default.
func NormalizeColorScheme(scheme string) string {
	switch scheme {
	case ColorBlue, ColorGreen, ColorGray, ColorPurple:
		return scheme
	default:
		return DefaultColorScheme
	}
}

// Clone returns a deep copy of the draft. Entry structs contain no pointers,
// so copying the slices is enough.
func (d Draft) Clone() Draft {
	out := d
	out.Education = slices.Clone(d.Education)
	out.Experience = slices.Clone(d.Experience)
	out.Projects = slices.Clone(d.Projects)
	out.Skills = slices.Clone(d.Skills)
	if d.AtsScore != nil {
		score := *d.AtsScore
		out.AtsScore = &score
	}
	return out
}
