package model

import (
	"regexp"
	"strings"
)

// DefaultLabelColor is used when a source label has no usable color.
const DefaultLabelColor = "ededed"

type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// IsValidColor reports whether c is a 6 digit hex color, with or without leading '#'.
func IsValidColor(c string) bool {
	return hexColorPattern.MatchString(strings.TrimPrefix(c, "#"))
}

// NormalizeColor returns c as lower-case 6 digit hex without '#', or fallback.
func NormalizeColor(c, fallback string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if !hexColorPattern.MatchString(c) {
		return fallback
	}
	return strings.ToLower(c)
}
