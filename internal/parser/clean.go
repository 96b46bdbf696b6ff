package parser

import "strings"

// StripCodeFence removes a markdown code-fence wrapper from a model response
// if present: a leading fence optionally tagged "json" followed by a newline,
// and a trailing fence preceded by a newline. Anything else passes through
// untouched. Kept as a separate cleaning step so the marker convention can
// change without touching the client or orchestration.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	for _, open := range []string{"```json\n", "```\n"} {
		if strings.HasPrefix(s, open) {
			s = strings.TrimPrefix(s, open)
			break
		}
	}
	s = strings.TrimSuffix(s, "\n```")
	return s
}
