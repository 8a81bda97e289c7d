// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leads

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lead-engine/pkg/types"
)

// LeadFile is the on-disk representation of one search and its ranked
// leads, so a run can be saved and reviewed later without re-querying
// PubMed.
type LeadFile struct {
	Request types.SearchRequest `yaml:"request"`
	Leads   []types.Lead        `yaml:"leads"`
	Summary Summary             `yaml:"summary"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteLeadFile saves a search request and its result to a YAML file.
func WriteLeadFile(path string, req types.SearchRequest, result Result) error {
	lf := LeadFile{
		Request: req,
		Leads:   result.Leads,
		Summary: Summary{
			Total:     result.Total,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&lf)
	if err != nil {
		return fmt.Errorf("marshaling lead file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing lead file %s: %w", path, err)
	}
	return nil
}

// ReadLeadFile loads a previously saved lead file.
func ReadLeadFile(path string) (LeadFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LeadFile{}, fmt.Errorf("reading lead file %s: %w", path, err)
	}

	var lf LeadFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LeadFile{}, fmt.Errorf("parsing lead file %s: %w", path, err)
	}
	return lf, nil
}
