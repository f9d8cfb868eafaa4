package api

import (
	"regexp"
	"strings"
)

type (
	// SessionID identifies a wizard session
	SessionID string

	// ReasonID identifies a CMS-authored reason
	ReasonID string

	// SolutionID identifies a CMS-authored mobility solution
	SolutionID string

	// VariantID identifies an implementation variant of a solution
	VariantID string

	// GovernanceModelID identifies a CMS-authored governance model
	GovernanceModelID string

	// CategoryID identifies a CMS-authored reason or solution category
	CategoryID string
)

// InvalidIDChars matches characters not permitted in CMS entry IDs. Valid
// characters are: letters, digits, underscore, dot, hyphen
var InvalidIDChars = regexp.MustCompile(`[^a-zA-Z0-9_.\-]`)

// ValidID reports whether id is a non-empty identifier made only of
// characters the CMS issues
func ValidID[T ~string](id T) bool {
	s := string(id)
	return strings.TrimSpace(s) != "" && !InvalidIDChars.MatchString(s)
}
