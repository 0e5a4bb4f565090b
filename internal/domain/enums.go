package domain

type Regime string

const (
	RegimeSavana   Regime = "SAVANA"
	RegimePastagem Regime = "PASTAGEM"
	RegimeSoja     Regime = "SOJA"
	RegimeOutro    Regime = "OUTRO"
)

type EntryKind string

const (
	EntryBlock      EntryKind = "block"
	EntryHeader     EntryKind = "header"
	EntryEvent      EntryKind = "event"
	EntryTerminator EntryKind = "terminator"
)

// ValidEntryKinds is the canonical set of accepted entry kind strings.
var ValidEntryKinds = map[string]bool{
	"block": true, "header": true, "event": true, "terminator": true,
}

type WeatherMode string

const (
	WeatherMean       WeatherMode = "M"
	WeatherStochastic WeatherMode = "S"
	WeatherFile       WeatherMode = "F"
	WeatherContinue   WeatherMode = "C"
)

const (
	DefaultStartYear   = 1958
	DefaultLastYear    = 2025
	DefaultSiteFile    = "lu_site.100"
	DefaultInitialCrop = "HER"
	DefaultInitialTree = "CER"
)
