package domain

import "strings"

// Keyword sets are matched as case-sensitive substrings. A label can hit more
// than one set, so Classify checks them in a fixed order.
var (
	savanaKeywords   = []string{"Formação Savânica", "Formação Campestre", "Vegetação Herbácea e Arbustiva"}
	sojaKeywords     = []string{"Soja", "Lavoura Temporária", "Agricultura"}
	pastagemKeywords = []string{"Pastagem", "Agropecuária", "Lavoura Perene", "Mosaico de Usos"}
)

// Classify maps a land-cover class label to its management regime.
// SAVANA wins over SOJA, and SOJA over PASTAGEM. Anything else is OUTRO.
func Classify(label string) Regime {
	switch {
	case containsAny(label, savanaKeywords):
		return RegimeSavana
	case containsAny(label, sojaKeywords):
		return RegimeSoja
	case containsAny(label, pastagemKeywords):
		return RegimePastagem
	default:
		return RegimeOutro
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Label returns the display name used in block listings.
func (r Regime) Label() string {
	switch r {
	case RegimeSavana:
		return "Savana"
	case RegimePastagem:
		return "Pastagem"
	case RegimeSoja:
		return "Soja"
	default:
		return "Outro"
	}
}

// Managed reports whether years of this regime are turned into blocks.
func (r Regime) Managed() bool {
	return r == RegimeSavana || r == RegimePastagem || r == RegimeSoja
}
