// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain address",
			text: "Department of Oncology, Bar Institute. jane.doe@bar.org",
			want: "jane.doe@bar.org",
		},
		{
			name: "plus tag and subdomain",
			text: "Dept of X, Foo University. first.last+tag@sub.domain.co",
			want: "first.last+tag@sub.domain.co",
		},
		{
			name: "first of several addresses wins",
			text: "a@one.org and also b@two.org",
			want: "a@one.org",
		},
		{
			name: "address followed by period",
			text: "Contact: pi@lab.edu.",
			want: "pi@lab.edu",
		},
		{"no address", "Foo University, Berlin, Germany", ""},
		{"empty", "", ""},
		{"at sign without domain", "follow @foolab for updates", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Email(tt.text); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAuthorName(t *testing.T) {
	tests := []struct {
		name     string
		fore     string
		last     string
		want     string
	}{
		{"both parts", "Ada", "Lovelace", "Ada Lovelace"},
		{"fore only", "Ada", "", "Ada"},
		{"last only", "", "Lovelace", "Lovelace"},
		{"neither", "", "", ""},
		{"whitespace trimmed", " Ada ", " Lovelace ", "Ada Lovelace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorName(tt.fore, tt.last); got != tt.want {
				t.Errorf("AuthorName(%q, %q) = %q, want %q", tt.fore, tt.last, got, tt.want)
			}
		})
	}
}

func TestFormatPubDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month string
		want  string
	}{
		{"named month", 2024, "Mar", "2024-Mar"},
		{"numeric month", 2024, "04", "2024-Apr"},
		{"numeric month no padding", 2024, "4", "2024-Apr"},
		{"no month", 2024, "", "2024"},
		{"no year", 0, "Mar", "N/A"},
		{"unrecognized month passes through", 2024, "Spring", "2024-Spring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPubDate(tt.year, tt.month); got != tt.want {
				t.Errorf("FormatPubDate(%d, %q) = %q, want %q", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "Jan"},
		{"12", "Dec"},
		{"03", "Mar"},
		{"Mar", "Mar"},
		{"13", "13"},
		{"0", "0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeMonth(tt.in); got != tt.want {
			t.Errorf("NormalizeMonth(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
