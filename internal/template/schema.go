package template

import "encoding/json"

// TemplateSchema is the top-level JSON event template structure.
type TemplateSchema struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	Description string       `json:"description,omitempty"`
	Regime      string       `json:"regime"`
	Role        string       `json:"role"` // "maintenance" or "transition"
	CycleYears  int          `json:"cycle_years"`
	Years       []YearConfig `json:"years"`
}

// Template roles.
const (
	RoleMaintenance = "maintenance"
	RoleTransition  = "transition"
)

// YearConfig is the event list for one cycle year, or for a run of cycle
// years when Repeat is set.
type YearConfig struct {
	Year   int             `json:"year,omitempty"`
	Repeat json.RawMessage `json:"repeat,omitempty"` // can be object or array
	Events []EventConfig   `json:"events"`
}

// RepeatConfig is an inclusive range of cycle years.
// In JSON, "repeat" can be an object (single) or array of objects.
type RepeatConfig struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type EventConfig struct {
	Month int    `json:"month"`
	Type  string `json:"type"`
	Code  string `json:"code,omitempty"`
}

// ParseRepeats parses the repeat field which can be a single object or an array.
func ParseRepeats(raw json.RawMessage) ([]RepeatConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	// Try array first
	var arr []RepeatConfig
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}

	// Try single object
	var single RepeatConfig
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []RepeatConfig{single}, nil
}

// CycleYearsOf expands a year group into the cycle years it covers, in order.
func CycleYearsOf(y YearConfig) ([]int, error) {
	repeats, err := ParseRepeats(y.Repeat)
	if err != nil {
		return nil, err
	}
	if len(repeats) == 0 {
		return []int{y.Year}, nil
	}
	var years []int
	for _, r := range repeats {
		for i := r.From; i <= r.To; i++ {
			years = append(years, i)
		}
	}
	return years, nil
}
