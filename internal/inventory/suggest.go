// ABOUTME: Fuzzy project-type suggestion over pjids
// ABOUTME: Thin use of sahilm/fuzzy, ranked best match first

package inventory

import "github.com/sahilm/fuzzy"

// Suggest fuzzy-matches query against the pjids of types and returns the
// matching project types ranked best first. An empty query matches nothing.
func Suggest(query string, types []ProjectType) []ProjectType {
	if query == "" {
		return nil
	}

	pjids := make([]string, len(types))
	for i, t := range types {
		pjids[i] = t.Pjid
	}

	results := fuzzy.Find(query, pjids)
	matches := make([]ProjectType, len(results))
	for i, r := range results {
		matches[i] = types[r.Index]
	}
	return matches
}
