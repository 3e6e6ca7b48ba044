package calendar

import "communitycenter/internal/domain"

// Style is the presentation bundle for an event category: a background
// gradient, a text color, and a left-border accent color.
type Style struct {
	Background string `json:"background"`
	TextColor  string `json:"text_color"`
	Border     string `json:"border"`
}

// DefaultStyle is the fallback for unrecognized category strings. Category
// is free text in storage, so unknown values degrade to this rather than error.
var DefaultStyle = Style{
	Background: "linear-gradient(135deg, #64748b, #475569)",
	TextColor:  "#f8fafc",
	Border:     "#334155",
}

var categoryStyles = map[string]Style{
	domain.CategoryClasses: {
		Background: "linear-gradient(135deg, #3b82f6, #1d4ed8)",
		TextColor:  "#eff6ff",
		Border:     "#1e40af",
	},
	domain.CategoryActivities: {
		Background: "linear-gradient(135deg, #22c55e, #15803d)",
		TextColor:  "#f0fdf4",
		Border:     "#166534",
	},
	domain.CategoryMeetings: {
		Background: "linear-gradient(135deg, #f59e0b, #b45309)",
		TextColor:  "#fffbeb",
		Border:     "#92400e",
	},
	domain.CategoryCommunityEvents: {
		Background: "linear-gradient(135deg, #a855f7, #7e22ce)",
		TextColor:  "#faf5ff",
		Border:     "#6b21a8",
	},
	domain.CategoryEntertainment: {
		Background: "linear-gradient(135deg, #ec4899, #be185d)",
		TextColor:  "#fdf2f8",
		Border:     "#9d174d",
	},
}

// StyleFor maps a category string to its Style, falling back to DefaultStyle
// for anything outside the five known categories.
func StyleFor(category string) Style {
	if s, ok := categoryStyles[category]; ok {
		return s
	}
	return DefaultStyle
}
