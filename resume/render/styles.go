package render

import "resume-builder/resume/model"

// Palette holds the colors a scheme applies to accents, headings and muted
// metadata text.
type Palette struct {
	Accent string
	Dark   string
	Muted  string
}

var palettes = map[string]Palette{
	model.ColorBlue:   {Accent: "#2563eb", Dark: "#1e40af", Muted: "#64748b"},
	model.ColorGreen:  {Accent: "#16a34a", Dark: "#166534", Muted: "#6b7280"},
	model.ColorGray:   {Accent: "#4b5563", Dark: "#1f2937", Muted: "#6b7280"},
	model.ColorPurple: {Accent: "#7c3aed", Dark: "#5b21b6", Muted: "#6b7280"},
}

var fontStacks = map[string]string{
	model.TemplateProfessional: `Georgia, "Times New Roman", serif`,
	model.TemplateModern:       `"Helvetica Neue", Arial, sans-serif`,
	model.TemplateMinimalist:   `"Helvetica Neue", Arial, sans-serif`,
	model.TemplateCreative:     `Verdana, Geneva, sans-serif`,
}

// PaletteFor resolves a color scheme to its palette, falling back to the
// default scheme for unknown values.
func PaletteFor(scheme string) Palette {
	return palettes[model.NormalizeColorScheme(scheme)]
}

// FontFor resolves a template style to its font stack, falling back to the
// default style for unknown values.
func FontFor(style string) string {
	return fontStacks[model.NormalizeTemplateStyle(style)]
}
