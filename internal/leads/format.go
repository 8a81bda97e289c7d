// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leads

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes the ranked leads as a human-readable table to w.
func FormatTable(result Result, w io.Writer) {
	if len(result.Leads) == 0 {
		fmt.Fprintln(w, "No leads found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-5s  %-24s  %-30s  %-50s  %-8s  %s\n",
		"Rank", "Score", "Name", "Email", "Paper Title", "Date", "PMID")
	fmt.Fprintln(w, strings.Repeat("-", 136))

	for _, l := range result.Leads {
		email := l.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(w, "%-4d  %-5d  %-24s  %-30s  %-50s  %-8s  %s\n",
			l.Rank, l.Score,
			clip(l.Name, 24), clip(email, 30), clip(l.PaperTitle, 50),
			l.PublicationDate, l.PubmedID)
	}

	fmt.Fprintf(w, "\n%d leads\n", result.Total)
}

// FormatJSON writes the full result as indented JSON to w.
func FormatJSON(result Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
