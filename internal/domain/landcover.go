package domain

import (
	"fmt"
	"sort"
)

// YearClass is one year of a site's land-cover series.
type YearClass struct {
	Year  int
	Code  int // MapBiomas class code; 0 when the source only carried a label
	Label string
}

func (y YearClass) Regime() Regime {
	return Classify(y.Label)
}

// mapBiomasLegend maps MapBiomas collection class codes to their labels.
var mapBiomasLegend = map[int]string{
	1: "Floresta", 3: "Formação Florestal", 4: "Formação Savânica",
	5: "Mangue", 6: "Floresta Alagável", 49: "Restinga Arbórea",
	10: "Vegetação Herbácea e Arbustiva", 11: "Campo Alagado e Área Pantanosa",
	12: "Formação Campestre", 32: "Apicum", 29: "Afloramento Rochoso",
	50: "Restinga Herbácea", 14: "Agropecuária", 15: "Pastagem",
	18: "Agricultura", 19: "Lavoura Temporária", 39: "Soja",
	20: "Cana", 40: "Arroz", 62: "Algodão (beta)",
	41: "Outras Lavouras Temporárias", 36: "Lavoura Perene",
	46: "Café", 47: "Citrus", 35: "Dendê",
	48: "Outras Lavouras Perenes", 9: "Silvicultura",
	21: "Mosaico de Usos", 22: "Área não Vegetada", 23: "Praia, Duna e Areal",
	24: "Área Urbanizada", 30: "Mineração", 75: "Usina Fotovoltaica (beta)",
	25: "Outras Áreas não Vegetadas", 26: "Corpo D'água",
	33: "Rio, Lago e Oceano", 31: "Aquicultura", 27: "Não observado",
}

// MapBiomasClass returns the legend label for a class code. Unknown codes
// get a placeholder label that classifies as OUTRO.
func MapBiomasClass(code int) string {
	if label, ok := mapBiomasLegend[code]; ok {
		return label
	}
	return fmt.Sprintf("Código Desconhecido (%d)", code)
}

// MapBiomasCodes returns every legend code in ascending order.
func MapBiomasCodes() []int {
	codes := make([]int, 0, len(mapBiomasLegend))
	for c := range mapBiomasLegend {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// CheckAscending reports the first position where the series is not
// strictly increasing by year.
func CheckAscending(series []YearClass) error {
	for i := 1; i < len(series); i++ {
		if series[i].Year <= series[i-1].Year {
			return fmt.Errorf("series not strictly ascending at index %d: %d after %d",
				i, series[i].Year, series[i-1].Year)
		}
	}
	return nil
}
