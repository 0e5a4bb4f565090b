package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/century/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegment_Invariants_UniformRuns property-tests block counts for uniform,
// gap-free series: ceil(n/5) savanna blocks, otherwise exactly one.
func TestSegment_Invariants_UniformRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cat := testCatalog(t)
	labels := []string{savanna, pasture, soy}

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(30) + 1
		label := labels[rng.Intn(len(labels))]
		start := 1950 + rng.Intn(60)
		startBlock := rng.Intn(10) + 1

		run := make([]string, n)
		for i := range run {
			run[i] = label
		}

		res := Segment(SegmentRequest{
			Series:       series(start, run...),
			StartBlock:   startBlock,
			YearLimit:    start + n - 1,
			SimStartYear: start,
			Catalog:      cat,
		})
		require.Equal(t, StatusOK, res.Status, "trial %d: %s", trial, res.Message)

		want := 1
		if label == savanna {
			want = (n + SavannaMaxSpan - 1) / SavannaMaxSpan
		}
		assert.Len(t, res.Blocks, want, "trial %d: %d years of %s", trial, n, label)
		for k, b := range res.Blocks {
			assert.Equal(t, startBlock+k, b.Number, "trial %d", trial)
		}
	}
}

// TestSegment_Invariants_MixedSeries checks structural invariants on random
// series with mixed regimes and missing years.
func TestSegment_Invariants_MixedSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cat := testCatalog(t)
	labels := []string{savanna, pasture, soy, forest, "Formação Campestre", "Mosaico de Usos", ""}

	for trial := 0; trial < 300; trial++ {
		var yc []domain.YearClass
		year := 1980 + rng.Intn(20)
		for k := rng.Intn(40) + 1; k > 0; k-- {
			yc = append(yc, domain.YearClass{Year: year, Label: labels[rng.Intn(len(labels))]})
			year += 1 + rng.Intn(4)/3 // occasional one-year gap
		}
		simStart := yc[0].Year
		limit := yc[len(yc)-1].Year - rng.Intn(3)
		startBlock := rng.Intn(5) + 1

		res := Segment(SegmentRequest{
			Series:       yc,
			StartBlock:   startBlock,
			YearLimit:    limit,
			SimStartYear: simStart,
			Catalog:      cat,
		})
		require.NotEqual(t, StatusError, res.Status, "trial %d: %s", trial, res.Message)

		byYear := map[int]domain.Regime{}
		for _, y := range yc {
			byYear[y.Year] = y.Regime()
		}

		prevLast := simStart - 1
		for k, b := range res.Blocks {
			assert.Equal(t, startBlock+k, b.Number, "trial %d: contiguous numbering", trial)
			assert.NoError(t, b.CheckSpan(), "trial %d", trial)
			assert.Greater(t, b.OutputStartYear, prevLast, "trial %d: blocks must not overlap", trial)
			assert.LessOrEqual(t, b.LastYear, limit, "trial %d: block past year limit", trial)
			if b.Template == "savanna-standard" {
				assert.LessOrEqual(t, b.Repeats, SavannaMaxSpan, "trial %d: savanna cap", trial)
			}
			for y := b.OutputStartYear; y <= b.LastYear; y++ {
				r, ok := byYear[y]
				assert.True(t, ok, "trial %d: block %d covers missing year %d", trial, b.Number, y)
				assert.True(t, r.Managed(), "trial %d: block %d covers OUTRO year %d", trial, b.Number, y)
			}
			prevLast = b.LastYear
		}
		assert.Len(t, res.Entries, 2*len(res.Blocks), "trial %d", trial)
	}
}
