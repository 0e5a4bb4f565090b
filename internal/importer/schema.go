package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a saved schedule session.
type ImportSchema struct {
	Schedule ScheduleImport `json:"schedule"`
	Entries  []EntryImport  `json:"entries"`
}

// ScheduleImport defines the site name and global parameters.
type ScheduleImport struct {
	Name        string `json:"name"`
	StartYear   int    `json:"start_year"`
	LastYear    int    `json:"last_year"`
	SiteFile    string `json:"site_file,omitempty"`
	InitialCrop string `json:"initial_crop,omitempty"`
	InitialTree string `json:"initial_tree,omitempty"`
}

// EntryImport is one timeline entry. Kind selects which of the optional
// fields apply: block uses header, template and events; header uses header;
// event uses event; terminator uses none.
type EntryImport struct {
	Kind     string        `json:"kind"`
	Header   *HeaderImport `json:"header,omitempty"`
	Template string        `json:"template,omitempty"`
	Events   []EventImport `json:"events,omitempty"`
	Event    *EventImport  `json:"event,omitempty"`
}

// HeaderImport defines the seven block header fields plus description.
type HeaderImport struct {
	Number          int    `json:"number"`
	LastYear        int    `json:"last_year"`
	Repeats         int    `json:"repeats"`
	OutputStartYear int    `json:"output_start_year"`
	OutputMonth     int    `json:"output_month"`
	OutputInterval  int    `json:"output_interval"`
	Weather         string `json:"weather"`
	Description     string `json:"description,omitempty"`
}

// EventImport defines a single event; year is the cycle year.
type EventImport struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Type  string `json:"type"`
	Code  string `json:"code,omitempty"`
}

// LoadImportSchema reads and parses a schedule session JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
