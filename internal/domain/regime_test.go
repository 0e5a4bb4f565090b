package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KeywordSets(t *testing.T) {
	cases := map[string]Regime{
		"Formação Savânica":              RegimeSavana,
		"Formação Campestre":             RegimeSavana,
		"Vegetação Herbácea e Arbustiva": RegimeSavana,
		"Soja":                           RegimeSoja,
		"Lavoura Temporária":             RegimeSoja,
		"Agricultura":                    RegimeSoja,
		"Pastagem":                       RegimePastagem,
		"Agropecuária":                   RegimePastagem,
		"Lavoura Perene":                 RegimePastagem,
		"Mosaico de Usos":                RegimePastagem,
		"Formação Florestal":             RegimeOutro,
		"Área Urbanizada":                RegimeOutro,
		"Código Desconhecido (99)":       RegimeOutro,
	}
	for label, want := range cases {
		assert.Equal(t, want, Classify(label), "label %q", label)
	}
}

func TestClassify_EmptyIsOutro(t *testing.T) {
	assert.Equal(t, RegimeOutro, Classify(""))
}

func TestClassify_CaseSensitive(t *testing.T) {
	assert.Equal(t, RegimeOutro, Classify("pastagem"))
	assert.Equal(t, RegimeOutro, Classify("SOJA"))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Matches both SOJA and PASTAGEM keyword sets.
	assert.Equal(t, RegimeSoja, Classify("Agricultura e Pastagem"))
	// Matches SAVANA and SOJA.
	assert.Equal(t, RegimeSavana, Classify("Soja sobre Formação Savânica"))
	// Plural labels do not contain the singular keywords.
	assert.Equal(t, RegimeOutro, Classify("Outras Lavouras Temporárias"))
	assert.Equal(t, RegimeOutro, Classify("Outras Lavouras Perenes"))
}

func TestClassify_Deterministic(t *testing.T) {
	for _, label := range []string{"", "Pastagem", "x", "Formação Savânica"} {
		first := Classify(label)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(label))
		}
	}
}

func TestRegime_Managed(t *testing.T) {
	assert.True(t, RegimeSavana.Managed())
	assert.True(t, RegimePastagem.Managed())
	assert.True(t, RegimeSoja.Managed())
	assert.False(t, RegimeOutro.Managed())
}

func TestMapBiomasClass(t *testing.T) {
	assert.Equal(t, "Pastagem", MapBiomasClass(15))
	assert.Equal(t, "Formação Savânica", MapBiomasClass(4))
	assert.Equal(t, "Código Desconhecido (999)", MapBiomasClass(999))
	assert.Equal(t, RegimeOutro, Classify(MapBiomasClass(999)))
}

func TestCheckAscending(t *testing.T) {
	assert.NoError(t, CheckAscending(nil))
	assert.NoError(t, CheckAscending([]YearClass{{Year: 2000}, {Year: 2002}}))
	assert.Error(t, CheckAscending([]YearClass{{Year: 2000}, {Year: 2000}}))
	assert.Error(t, CheckAscending([]YearClass{{Year: 2001}, {Year: 2000}}))
}
