package monitor

import "strings"

// BlockList is an immutable ordered list of lower-cased destination substrings.
type BlockList struct {
	entries []string
}

// NewBlockList normalizes entries, dropping blanks and keeping order.
func NewBlockList(entries []string) BlockList {
	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		normalized = append(normalized, entry)
	}
	return BlockList{entries: normalized}
}

// Entries returns a copy of the list.
func (list BlockList) Entries() []string {
	return append([]string(nil), list.entries...)
}

// Len returns the number of entries.
func (list BlockList) Len() int {
	return len(list.entries)
}

// Match returns the first entry contained in destination, ignoring case.
func (list BlockList) Match(destination string) (string, bool) {
	if destination == "" {
		return "", false
	}
	destination = strings.ToLower(destination)
	for _, entry := range list.entries {
		if strings.Contains(destination, entry) {
			return entry, true
		}
	}
	return "", false
}
