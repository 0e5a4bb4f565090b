package domain

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventCrop        EventType = "CROP"
	EventPlant       EventType = "PLTM"
	EventHarvest     EventType = "HARV"
	EventFertilize   EventType = "FERT"
	EventCultivate   EventType = "CULT"
	EventOrganic     EventType = "OMAD"
	EventGraze       EventType = "GRAZ"
	EventFire        EventType = "FIRE"
	EventTree        EventType = "TREE"
	EventTreeRemoval EventType = "TREM"
	EventIrrigate    EventType = "IRRI"
	EventErosion     EventType = "EROD"
	EventCropFirst   EventType = "FRST"
	EventCropLast    EventType = "LAST"
	EventSenescence  EventType = "SENM"
	EventTreeFirst   EventType = "TFST"
	EventTreeLast    EventType = "TLST"
)

// EventTypeInfo describes one schedule event keyword.
type EventTypeInfo struct {
	Type        EventType
	Description string
	// TakesCode is false for keywords that never carry a second line.
	TakesCode bool
}

var eventTypes = []EventTypeInfo{
	{EventCrop, "select crop", true},
	{EventPlant, "mark planting", true},
	{EventHarvest, "schedule harvest", true},
	{EventFertilize, "schedule fertilization", true},
	{EventCultivate, "schedule cultivation", true},
	{EventOrganic, "add organic matter", true},
	{EventGraze, "schedule grazing", true},
	{EventFire, "schedule fire", true},
	{EventTree, "select tree", true},
	{EventTreeRemoval, "remove tree", true},
	{EventIrrigate, "schedule irrigation", true},
	{EventErosion, "schedule erosion", true},
	{EventCropFirst, "crop growth start", false},
	{EventCropLast, "crop growth end", false},
	{EventSenescence, "mark senescence", false},
	{EventTreeFirst, "forest growth start", false},
	{EventTreeLast, "forest growth end", false},
}

// SpecificCode is a value accepted on the line following an event keyword.
type SpecificCode struct {
	Code        string
	Description string
}

var specificCodes = map[EventType][]SpecificCode{
	EventCrop: {
		{"HER", "Cerrado herbaceous"},
		{"BE8", "Traditional pasture (medium vigour)"},
		{"MEL", "Productive pasture"},
		{"DEG", "Degraded pasture"},
		{"SJ", "Soybean"},
		{"CAN", "Sugarcane"},
		{"MLH", "Maize (main season)"},
		{"MSF", "Maize (second season)"},
	},
	EventCultivate: {
		{"P", "Tillage (pasture renewal)"},
		{"S", "Tillage (post-conversion)"},
		{"S1D", "No-till planting (soy/maize)"},
		{"S1C", "Conventional planting (soy/maize)"},
		{"AP", "Ploughing + harrowing (sugarcane)"},
	},
	EventFertilize: {
		{"A", "Automatic maintenance (minimum)"},
		{"MED", "Automatic mean concentrations"},
		{"N45", "Nitrogen (4.5 gN/m2)"},
		{"N150", "Nitrogen (pasture renewal)"},
		{"NP1", "NPK (sugarcane planting)"},
		{"FMP", "Fertilization (maize planting)"},
		{"FMC", "Fertilization (maize top dressing)"},
	},
	EventFire: {
		{"CER", "After Cerrado clearing"},
		{"H", "High intensity fire"},
		{"M", "Medium intensity fire"},
		{"PHF", "Pre-harvest fire (sugarcane)"},
	},
	EventHarvest: {
		{"HS", "Soybean harvest"},
		{"SF", "Sugarcane harvest (no fire)"},
		{"CF", "Sugarcane harvest (with fire)"},
		{"GMLH", "Maize grain harvest (90% straw)"},
		{"GMSF", "Maize grain harvest (50% straw)"},
	},
	EventOrganic: {
		{"M", "Straw and manure"},
		{"F", "Filter cake"},
		{"V", "Vinasse"},
		{"FV", "Filter cake and vinasse"},
	},
	EventTreeRemoval: {{"CCER3", "CCER3 removal"}},
	EventGraze:       {{"GM", "Low intensity grazing (GM)"}},
	EventTree:        {{"CER", "Cerrado tree"}},
}

// codeOptional lists keywords that have a code catalog entry or accept a
// code, but may be scheduled without one.
var codeOptional = map[EventType]bool{
	EventPlant:    true,
	EventIrrigate: true,
	EventErosion:  true,
}

// EventTypes returns the keyword catalog in display order.
func EventTypes() []EventTypeInfo {
	out := make([]EventTypeInfo, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// LookupEventType resolves a keyword ("CROP") or a "KEYWORD: description"
// string to its catalog entry.
func LookupEventType(s string) (EventTypeInfo, bool) {
	key := strings.TrimSpace(s)
	if i := strings.Index(key, ":"); i >= 0 {
		key = key[:i]
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	for _, info := range eventTypes {
		if string(info.Type) == key {
			return info, true
		}
	}
	return EventTypeInfo{}, false
}

// SpecificCodes returns the known codes for an event keyword, if any.
func SpecificCodes(t EventType) []SpecificCode {
	codes := specificCodes[t]
	out := make([]SpecificCode, len(codes))
	copy(out, codes)
	return out
}

func (t EventType) TakesCode() bool {
	info, ok := LookupEventType(string(t))
	return ok && info.TakesCode
}

// RequiresCode reports whether a manually entered event must name a
// specific code.
func (t EventType) RequiresCode() bool {
	_, hasCatalog := specificCodes[t]
	return hasCatalog && !codeOptional[t]
}

func (t EventType) Display() string {
	info, ok := LookupEventType(string(t))
	if !ok {
		return string(t)
	}
	return fmt.Sprintf("%s: %s", info.Type, info.Description)
}
