// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"fmt"
	"strings"
	"time"
)

// timeNow returns the wall clock used to anchor the search date range.
// Declared as a var so tests can substitute a fixed clock.
var timeNow = time.Now

// BuildQuery turns keywords and a lookback window into one esearch term.
// Each keyword becomes a quoted phrase scoped to Title/Abstract; phrases
// are OR-joined as a broad net, and a PDAT range covering the last
// yearsBack years is appended with AND. Keywords that are empty after
// trimming are dropped; if none survive, BuildQuery returns "".
//
// Keywords are passed through unescaped, so reserved PubMed syntax inside
// a keyword reaches the API as-is. The date clause is concatenated flat,
// without parentheses around the OR group; under PubMed's left-to-right
// precedence the date filter still binds to the whole expression.
func BuildQuery(keywords []string, yearsBack int) string {
	var terms []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		terms = append(terms, `"`+kw+`"[Title/Abstract]`)
	}
	if len(terms) == 0 {
		return ""
	}

	current := timeNow().Year()
	return fmt.Sprintf("%s AND %d:%d[PDAT]",
		strings.Join(terms, " OR "), current-yearsBack, current)
}
