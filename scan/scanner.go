package scan

import (
	"iter"
	"strings"
	"unicode/utf8"

	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/ctxgrep/ctxgrep"
	"github.com/ctxgrep/ctxgrep/logging"
)

// Scanner finds the first occurrence of each of an ordered list of literal
// terms.
type Scanner struct {
	Terms []string

	// prefilter is an aho-corasick trie over all terms. One pass over the
	// document tells which terms occur at all, so only those get an exact
	// first-occurrence search.
	prefilter *ahocorasick.Trie
}

func NewScanner(terms []string) *Scanner {
	var patterns []string
	for _, t := range terms {
		if t != "" {
			patterns = append(patterns, t)
		}
	}
	return &Scanner{
		Terms:     terms,
		prefilter: ahocorasick.NewTrieBuilder().AddStrings(patterns).Build(),
	}
}

// Scan yields one Match per term, in term order. Absent terms yield a Match
// with Found set to false. The document is only read once the sequence is
// first iterated.
func (s *Scanner) Scan(doc *ctxgrep.Document) iter.Seq[ctxgrep.Match] {
	return func(yield func(ctxgrep.Match) bool) {
		present := s.present(doc.Raw)
		for _, term := range s.Terms {
			m := ctxgrep.Match{Term: term}
			if _, ok := present[term]; ok || term == "" {
				if b := strings.Index(doc.Raw, term); b >= 0 {
					m.Found = true
					m.ByteIndex = b
					m.Index = utf8.RuneCountInString(doc.Raw[:b])
				}
			}
			logging.Trace().Str("term", term).Bool("found", m.Found).Int("index", m.Index).Msg("scanned term")
			if !yield(m) {
				return
			}
		}
	}
}

// present returns the set of terms that occur anywhere in raw.
func (s *Scanner) present(raw string) map[string]struct{} {
	found := make(map[string]struct{})
	for _, m := range s.prefilter.MatchString(raw) {
		found[string(m.Match())] = struct{}{}
	}
	return found
}
