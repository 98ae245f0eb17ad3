package wordhord

import "strings"

// FormatEntry formats an entry as a single "<word> - <definition>" line.
func FormatEntry(e *Entry) string {
	return e.Word + " - " + e.Definition
}

// FormatEntries formats entries one per line, in order.
func FormatEntries(entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}

	return strings.Join(lines, "\n")
}
