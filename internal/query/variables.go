package query

import "regexp"

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Variables extracts template variable names of the form {{name}} from prompt
// content, in order of appearance. Repeated occurrences are repeated in the
// result.
func Variables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
