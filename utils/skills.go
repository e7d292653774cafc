package utils

import "strings"

// ParseSkills splits a comma-separated skills string into an ordered list.
// Each item is whitespace-trimmed and empty items are dropped. Only the
// comma acts as a separator, so quoted or multi-word entries pass through
// as-is. Duplicates are kept.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
