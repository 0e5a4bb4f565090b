package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry marks a timeline entry that fails structural validation.
var ErrInvalidEntry = errors.New("invalid timeline entry")

// Entry is one line item of a timeline. The set of implementations is
// closed: *Block, *BlockHeader, *Event and Terminator.
type Entry interface {
	Kind() EntryKind
	isEntry()
}

// Event is a single management action inside a block. Year is the position
// inside the block's repeat cycle, not a calendar year.
type Event struct {
	Year  int
	Month int
	Type  EventType
	Code  string
}

func (*Event) Kind() EntryKind { return EntryEvent }
func (*Event) isEntry()        {}

// Validate checks month and year ranges and the keyword/code pairing.
// It does not require a code; see ValidateManual.
func (e *Event) Validate() error {
	if e.Year < 1 {
		return fmt.Errorf("%w: event year must be >= 1, got %d", ErrInvalidEntry, e.Year)
	}
	if e.Month < 1 || e.Month > 12 {
		return fmt.Errorf("%w: event month must be 1..12, got %d", ErrInvalidEntry, e.Month)
	}
	info, ok := LookupEventType(string(e.Type))
	if !ok {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidEntry, e.Type)
	}
	if !info.TakesCode && e.Code != "" {
		return fmt.Errorf("%w: event %s does not take a specific code", ErrInvalidEntry, e.Type)
	}
	return nil
}

// ValidateManual applies Validate plus the rule that keywords with a code
// catalog must name one, unless the keyword is code-optional.
func (e *Event) ValidateManual() error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Type.RequiresCode() && e.Code == "" {
		return fmt.Errorf("%w: event %s requires a specific code", ErrInvalidEntry, e.Type)
	}
	return nil
}

// EventTemplate is a fixed sequence of events repeated over a cycle of
// CycleYears years.
type EventTemplate struct {
	ID          string
	Name        string
	Description string
	Regime      Regime
	CycleYears  int
	Events      []Event
}

// CloneEvents returns a copy of the template's events so blocks never share
// the catalog's backing array.
func (t *EventTemplate) CloneEvents() []Event {
	out := make([]Event, len(t.Events))
	copy(out, t.Events)
	return out
}

// BlockHeader carries the seven header fields of a schedule block.
type BlockHeader struct {
	Number          int
	LastYear        int
	Repeats         int
	OutputStartYear int
	OutputMonth     int
	OutputInterval  int
	Weather         WeatherMode
	Description     string
}

func (*BlockHeader) Kind() EntryKind { return EntryHeader }
func (*BlockHeader) isEntry()        {}

func (h *BlockHeader) Validate() error {
	if h.Number < 1 {
		return fmt.Errorf("%w: block number must be >= 1, got %d", ErrInvalidEntry, h.Number)
	}
	if h.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be >= 1, got %d", ErrInvalidEntry, h.Repeats)
	}
	if h.OutputMonth < 1 || h.OutputMonth > 12 {
		return fmt.Errorf("%w: output month must be 1..12, got %d", ErrInvalidEntry, h.OutputMonth)
	}
	if h.OutputInterval < 1 {
		return fmt.Errorf("%w: output interval must be >= 1, got %d", ErrInvalidEntry, h.OutputInterval)
	}
	if h.LastYear < h.OutputStartYear {
		return fmt.Errorf("%w: last year %d precedes output start year %d", ErrInvalidEntry, h.LastYear, h.OutputStartYear)
	}
	if !h.Weather.Valid() {
		return fmt.Errorf("%w: unknown weather mode %q", ErrInvalidEntry, h.Weather)
	}
	return nil
}

// CheckSpan verifies OutputStartYear + Repeats - 1 == LastYear. Generated
// blocks always satisfy it; manual headers may describe a repeated cycle
// over a longer span and are not held to it.
func (h *BlockHeader) CheckSpan() error {
	if h.OutputStartYear+h.Repeats-1 != h.LastYear {
		return fmt.Errorf("block %d: start %d + repeats %d - 1 != last year %d",
			h.Number, h.OutputStartYear, h.Repeats, h.LastYear)
	}
	return nil
}

// Block is a header together with its event list.
type Block struct {
	BlockHeader
	Template string
	Events   []Event
}

func (*Block) Kind() EntryKind { return EntryBlock }
func (*Block) isEntry()        {}

// Header returns the block's header fields.
func (b *Block) Header() *BlockHeader { return &b.BlockHeader }

// Terminator is the end-of-block marker.
type Terminator struct{}

func (Terminator) Kind() EntryKind { return EntryTerminator }
func (Terminator) isEntry()        {}

// HeaderOf returns the header of a Block or bare BlockHeader entry.
func HeaderOf(e Entry) (*BlockHeader, bool) {
	switch v := e.(type) {
	case *Block:
		return &v.BlockHeader, true
	case *BlockHeader:
		return v, true
	default:
		return nil, false
	}
}
