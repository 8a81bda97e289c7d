// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/lead-engine/pkg/types"
)

func TestLeadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.yaml")

	req := types.SearchRequest{
		Keywords:   []string{"organoid", "hepatotoxicity"},
		YearsBack:  2,
		MaxResults: 50,
	}
	result := Result{
		Leads: []types.Lead{
			{Rank: 1, Score: 70, Name: "Bob Beta", Email: "bob@bar.org", PaperTitle: "Liver toxicity", PublicationDate: "2024-Mar", PubmedID: "38000001"},
			{Rank: 2, Score: 20, PaperTitle: "Unrelated", PublicationDate: "N/A", PubmedID: "38000002"},
		},
		Total: 2,
	}

	if err := WriteLeadFile(path, req, result); err != nil {
		t.Fatalf("WriteLeadFile: %v", err)
	}

	lf, err := ReadLeadFile(path)
	if err != nil {
		t.Fatalf("ReadLeadFile: %v", err)
	}

	if len(lf.Request.Keywords) != 2 || lf.Request.Keywords[0] != "organoid" {
		t.Errorf("Request.Keywords = %v", lf.Request.Keywords)
	}
	if lf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", lf.Summary.Total)
	}
	if lf.Summary.Timestamp.IsZero() {
		t.Error("Summary.Timestamp should be set")
	}
	if len(lf.Leads) != 2 {
		t.Fatalf("len(Leads) = %d, want 2", len(lf.Leads))
	}
	if lf.Leads[0].Email != "bob@bar.org" || lf.Leads[0].Rank != 1 {
		t.Errorf("Leads[0] = %+v", lf.Leads[0])
	}
}

func TestReadLeadFileMissing(t *testing.T) {
	_, err := ReadLeadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading lead file") {
		t.Errorf("expected read error, got: %v", err)
	}
}

func TestReadLeadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("leads: [not: valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadLeadFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing lead file") {
		t.Errorf("expected parse error, got: %v", err)
	}
}
