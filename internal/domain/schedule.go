package domain

import (
	"fmt"
	"regexp"
	"time"
)

var siteNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// GlobalParams are the fixed-position fields at the top of a schedule file.
type GlobalParams struct {
	StartYear   int
	LastYear    int
	SiteFile    string
	InitialCrop string
	InitialTree string
}

func DefaultGlobalParams() GlobalParams {
	return GlobalParams{
		StartYear:   DefaultStartYear,
		LastYear:    DefaultLastYear,
		SiteFile:    DefaultSiteFile,
		InitialCrop: DefaultInitialCrop,
		InitialTree: DefaultInitialTree,
	}
}

func (p GlobalParams) Validate() error {
	if p.StartYear <= 0 {
		return fmt.Errorf("start year must be positive, got %d", p.StartYear)
	}
	if p.LastYear < p.StartYear {
		return fmt.Errorf("last year %d precedes start year %d", p.LastYear, p.StartYear)
	}
	if p.SiteFile == "" {
		return fmt.Errorf("site file name is required")
	}
	return nil
}

// Schedule is one site's editing session: global parameters plus timeline.
type Schedule struct {
	ID        string
	Name      string
	Params    GlobalParams
	Timeline  *Timeline
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateName checks that the site name can be used as a file stem
// (e.g. Lu_AFGO, site-01).
func (s *Schedule) ValidateName() error {
	if s.Name == "" {
		return fmt.Errorf("site name is required")
	}
	if !siteNamePattern.MatchString(s.Name) {
		return fmt.Errorf("site name %q must start with a letter or digit and contain only letters, digits, '_', '.' or '-'", s.Name)
	}
	return nil
}

// FileName returns the schedule file name for this site.
func (s *Schedule) FileName() string {
	return s.Name + ".SCH"
}
