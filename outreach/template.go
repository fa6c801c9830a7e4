package outreach

import (
	"regexp"
	"strings"
)

// Token grammar: brace delimited, no nesting, no escapes.
var varPattern = regexp.MustCompile(`\{[^}]+\}`)

// ExtractVariables returns the variable names appearing in content, without
// braces, de-duplicated in first-occurrence order. Unknown names are
// included; membership is the caller's concern.
func ExtractVariables(content string) []string {
	matches := varPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1 : len(m)-1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ReplaceVariables substitutes catalogue variables with supplied values.
//
// Only known variables with a non-empty supplied value are replaced; every
// occurrence is substituted literally. Unknown tokens and tokens without a
// value stay in the output untouched, so a half-filled message remains
// visibly half-filled instead of silently losing its placeholders.
func ReplaceVariables(content string, values map[string]string) string {
	for _, name := range Catalogue {
		value, ok := values[name]
		if !ok || value == "" {
			continue
		}
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return content
}
