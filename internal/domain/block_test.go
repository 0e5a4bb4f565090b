package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeader() BlockHeader {
	return BlockHeader{
		Number:          3,
		LastYear:        2012,
		Repeats:         3,
		OutputStartYear: 2010,
		OutputMonth:     1,
		OutputInterval:  1,
		Weather:         WeatherContinue,
	}
}

func TestBlockHeader_Validate(t *testing.T) {
	h := validHeader()
	assert.NoError(t, h.Validate())

	bad := []func(h *BlockHeader){
		func(h *BlockHeader) { h.Number = 0 },
		func(h *BlockHeader) { h.Repeats = 0 },
		func(h *BlockHeader) { h.OutputMonth = 13 },
		func(h *BlockHeader) { h.OutputInterval = 0 },
		func(h *BlockHeader) { h.LastYear = 2009 },
		func(h *BlockHeader) { h.Weather = "Q" },
	}
	for i, mutate := range bad {
		h := validHeader()
		mutate(&h)
		err := h.Validate()
		require.Error(t, err, "case %d", i)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	}
}

func TestBlockHeader_CheckSpan(t *testing.T) {
	h := validHeader()
	assert.NoError(t, h.CheckSpan())

	h.Repeats = 5
	err := h.CheckSpan()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 3")
}

func TestEntryKinds(t *testing.T) {
	h := validHeader()
	entries := []Entry{&Block{BlockHeader: h}, &h, &Event{Year: 1, Month: 1, Type: EventCrop}, Terminator{}}
	kinds := []EntryKind{EntryBlock, EntryHeader, EntryEvent, EntryTerminator}
	for i, e := range entries {
		assert.Equal(t, kinds[i], e.Kind())
	}
}

func TestHeaderOf(t *testing.T) {
	b := &Block{BlockHeader: validHeader()}
	h, ok := HeaderOf(b)
	require.True(t, ok)
	assert.Equal(t, 3, h.Number)

	_, ok = HeaderOf(Terminator{})
	assert.False(t, ok)
	_, ok = HeaderOf(&Event{})
	assert.False(t, ok)
}

func TestEvent_Validate(t *testing.T) {
	assert.NoError(t, (&Event{Year: 1, Month: 1, Type: EventCrop, Code: "HER"}).Validate())
	assert.NoError(t, (&Event{Year: 5, Month: 12, Type: EventTreeLast}).Validate())

	assert.ErrorIs(t, (&Event{Year: 0, Month: 1, Type: EventCrop}).Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, (&Event{Year: 1, Month: 0, Type: EventCrop}).Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, (&Event{Year: 1, Month: 1, Type: "NOPE"}).Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, (&Event{Year: 1, Month: 1, Type: EventSenescence, Code: "X"}).Validate(), ErrInvalidEntry)
}

func TestEvent_ValidateManual(t *testing.T) {
	// CROP has a code catalog and needs a code.
	err := (&Event{Year: 1, Month: 1, Type: EventCrop}).ValidateManual()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a specific code")

	// PLTM, IRRI and EROD may be scheduled bare.
	assert.NoError(t, (&Event{Year: 1, Month: 9, Type: EventPlant}).ValidateManual())
	assert.NoError(t, (&Event{Year: 1, Month: 9, Type: EventIrrigate}).ValidateManual())
	assert.NoError(t, (&Event{Year: 1, Month: 9, Type: EventErosion}).ValidateManual())
}

func TestLookupEventType(t *testing.T) {
	info, ok := LookupEventType("CROP: select crop")
	require.True(t, ok)
	assert.Equal(t, EventCrop, info.Type)

	info, ok = LookupEventType("senm")
	require.True(t, ok)
	assert.False(t, info.TakesCode)

	_, ok = LookupEventType("")
	assert.False(t, ok)
}

func TestSpecificCodes_ReturnsCopy(t *testing.T) {
	codes := SpecificCodes(EventCrop)
	require.NotEmpty(t, codes)
	codes[0].Code = "MUTATED"
	assert.Equal(t, "HER", SpecificCodes(EventCrop)[0].Code)
	assert.Empty(t, SpecificCodes(EventCropFirst))
}

func TestEventTemplate_CloneEvents(t *testing.T) {
	tmpl := &EventTemplate{Events: []Event{{Year: 1, Month: 1, Type: EventCrop, Code: "BE8"}}}
	events := tmpl.CloneEvents()
	events[0].Code = "DEG"
	assert.Equal(t, "BE8", tmpl.Events[0].Code)
}
