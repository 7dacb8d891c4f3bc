package todo

import "github.com/sahilm/fuzzy"

// Match is an entry that matched a fuzzy query.
type Match struct {
	Entry
	Score   int
	Indexes []int // byte offsets in Title that matched
}

type titles []Entry

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Search fuzzy-matches query against entry titles, best match first. An
// empty query matches every entry in its original order.
func Search(entries []Entry, query string) []Match {
	if query == "" {
		out := make([]Match, len(entries))
		for i, e := range entries {
			out[i] = Match{Entry: e}
		}
		return out
	}
	found := fuzzy.FindFrom(query, titles(entries))
	out := make([]Match, len(found))
	for i, m := range found {
		out[i] = Match{Entry: entries[m.Index], Score: m.Score, Indexes: m.MatchedIndexes}
	}
	return out
}
