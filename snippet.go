package ctxgrep

import "unicode/utf8"

// Snippet is a clamped window of text around a match.
type Snippet struct {
	Term string `json:"term"`

	// Index is the character offset of the match
	Index int `json:"index"`

	// Start and End are character offsets of the window, End exclusive
	Start int `json:"start"`
	End   int `json:"end"`

	Text string `json:"text"`
}

// Len returns the length of the snippet text in characters.
func (s Snippet) Len() int {
	return utf8.RuneCountInString(s.Text)
}
