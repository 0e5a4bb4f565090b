package domain

import "fmt"

// Timeline is the ordered list of entries that makes up a schedule body.
// It is owned by a single editing session and is not safe for concurrent use.
type Timeline struct {
	entries []Entry
}

func NewTimeline(entries ...Entry) *Timeline {
	t := &Timeline{}
	t.Append(entries...)
	return t
}

// Entries returns a copy of the entry list.
func (t *Timeline) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Timeline) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *Timeline) At(i int) (Entry, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("position %d out of range [0,%d)", i, t.Len())
	}
	return t.entries[i], nil
}

func (t *Timeline) Append(entries ...Entry) {
	for _, e := range entries {
		if e != nil {
			t.entries = append(t.entries, e)
		}
	}
}

// Insert places e before position i. i == Len() appends.
func (t *Timeline) Insert(i int, e Entry) error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidEntry)
	}
	if i < 0 || i > len(t.entries) {
		return fmt.Errorf("position %d out of range [0,%d]", i, len(t.entries))
	}
	t.entries = append(t.entries, nil)
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = e
	return nil
}

func (t *Timeline) Remove(i int) (Entry, error) {
	e, err := t.At(i)
	if err != nil {
		return nil, err
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	return e, nil
}

// Move relocates the entry at from so that it ends up at index to.
func (t *Timeline) Move(from, to int) error {
	if to < 0 || to >= t.Len() {
		return fmt.Errorf("position %d out of range [0,%d)", to, t.Len())
	}
	e, err := t.Remove(from)
	if err != nil {
		return err
	}
	return t.Insert(to, e)
}

func (t *Timeline) Clear() {
	t.entries = nil
}

// Headers returns the header of every Block and bare BlockHeader entry in
// timeline order.
func (t *Timeline) Headers() []*BlockHeader {
	var out []*BlockHeader
	for _, e := range t.Entries() {
		if h, ok := HeaderOf(e); ok {
			out = append(out, h)
		}
	}
	return out
}

// NextAvailableYear is one past the largest last year of any block or
// header, never earlier than simStart.
func (t *Timeline) NextAvailableYear(simStart int) int {
	last := simStart - 1
	for _, h := range t.Headers() {
		if h.LastYear > last {
			last = h.LastYear
		}
	}
	return last + 1
}

// MaxBlockNumber returns the largest block number in the timeline, or 0.
func (t *Timeline) MaxBlockNumber() int {
	n := 0
	for _, h := range t.Headers() {
		if h.Number > n {
			n = h.Number
		}
	}
	return n
}

func (t *Timeline) NextBlockNumber() int {
	return t.MaxBlockNumber() + 1
}

// Blocks returns the complete blocks in timeline order.
func (t *Timeline) Blocks() []*Block {
	var out []*Block
	for _, e := range t.Entries() {
		if b, ok := e.(*Block); ok {
			out = append(out, b)
		}
	}
	return out
}
