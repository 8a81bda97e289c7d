// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers contact and date details from free-text PubMed
// record fields.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// emailRe matches the general shape local-part@domain.tld. It is a
// best-effort pattern for fishing addresses out of affiliation strings,
// not an RFC-conformant validator.
var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Email returns the first email-shaped substring in text, or "" when none
// is found. Later matches in the same text are ignored.
func Email(text string) string {
	if text == "" {
		return ""
	}
	return emailRe.FindString(text)
}

// AuthorName assembles a display name from fore and last name parts.
// Missing parts are omitted rather than replaced with placeholders.
func AuthorName(foreName, lastName string) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(foreName); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(lastName); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// shortMonths maps month numbers to the abbreviated names PubMed uses in
// most records, so numeric months render the same way as named ones.
var shortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatPubDate renders a publication date as "2024-Mar", "2024" when the
// month is absent, or "N/A" when the year is absent.
func FormatPubDate(year int, month string) string {
	if year <= 0 {
		return "N/A"
	}
	month = NormalizeMonth(month)
	if month == "" {
		return strconv.Itoa(year)
	}
	return strconv.Itoa(year) + "-" + month
}

// NormalizeMonth maps a numeric month token ("3", "03") to its short name
// ("Mar"). Named months and unrecognized tokens pass through trimmed.
func NormalizeMonth(month string) string {
	month = strings.TrimSpace(month)
	if n, err := strconv.Atoi(month); err == nil && n >= 1 && n <= 12 {
		return shortMonths[n-1]
	}
	return month
}
