// Package filter turns the free-text query and hemisphere selector into
// the ordered visible subset of the point store.
package filter

import (
	"sort"
	"strings"

	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/store"
)

// Wildcard matches every point name.
const Wildcard = "*"

// delimiters splits the query into tokens.
var delimiters = func(r rune) bool {
	return r == ' ' || r == ';' || r == ',' || r == '\t'
}

// Tokens splits a query on space, semicolon, comma and tab, discarding
// empty tokens. A blank or all-delimiter query yields no tokens.
func Tokens(query string) []string {
	return strings.FieldsFunc(query, delimiters)
}

// MatchesName reports whether any token is the wildcard or a case-sensitive
// prefix of name. An empty token list matches nothing.
func MatchesName(name string, tokens []string) bool {
	for _, tok := range tokens {
		if tok == Wildcard || strings.HasPrefix(name, tok) {
			return true
		}
	}
	return false
}

// Visible derives the visible set for one redraw: points whose name matches
// the query and whose hemisphere passes the selector, sorted ascending by
// name. The store is never mutated; calling Visible twice with the same
// arguments yields the same slice contents.
func Visible(st *store.Store, query string, side model.Side) []model.Point {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []model.Point
	for _, p := range st.Points() {
		if !MatchesName(p.Name, tokens) {
			continue
		}
		if !side.Contains(p.Z) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
