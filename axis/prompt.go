package axis

import "strings"

// PromptSeparator joins values inside a prompt fragment
const PromptSeparator = ", "

// Serialize renders the values of a in insertion order, joined by ", ".
// Axis names are dropped. An empty assignment yields "".
func Serialize(a Assignment) string {
	if a.Len() == 0 {
		return ""
	}
	return strings.Join(a.Values(), PromptSeparator)
}

// JoinPrompts combines fragments from several domains, skipping empty ones
func JoinPrompts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, PromptSeparator)
}
