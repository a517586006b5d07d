package abtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltbalente/adlab/internal/domain"
)

func TestCompareVariations_IdenticalPair(t *testing.T) {
	v := domain.Variation{
		Label:     "A",
		Tone:      "emocional",
		Headlines: []string{"Amarres de Amor Efectivos"},
	}
	w := v
	w.Label = "B"

	overlaps := CompareVariations([]domain.Variation{v, w})

	assert.Len(t, overlaps, 1)
	assert.Equal(t, "A", overlaps[0].LabelA)
	assert.Equal(t, "B", overlaps[0].LabelB)
	assert.InDelta(t, 1.0, overlaps[0].Similarity, 0.001)
}

func TestCompareVariations_DisjointVocabulary(t *testing.T) {
	overlaps := CompareVariations([]domain.Variation{
		{Label: "A", Headlines: []string{"Tarot Certero Inmediato"}},
		{Label: "B", Headlines: []string{"Limpieza Espiritual Profunda"}},
	})
	assert.Empty(t, overlaps)
}

func TestCompareVariations_SortedBySimilarity(t *testing.T) {
	base := domain.Variation{Label: "A", Headlines: []string{"uno dos tres cuatro cinco"}}
	near := domain.Variation{Label: "B", Headlines: []string{"uno dos tres cuatro cinco"}}
	partial := domain.Variation{Label: "C", Headlines: []string{"uno dos tres cuatro seis"}}

	overlaps := CompareVariations([]domain.Variation{base, near, partial})

	// A-B idénticas (1.0) deben salir antes que los pares con C (4/6 ≈ 0.67
	// queda bajo el umbral, así que solo sobrevive el par idéntico)
	assert.Len(t, overlaps, 1)
	assert.InDelta(t, 1.0, overlaps[0].Similarity, 0.001)
}

func TestCompareVariations_EmptyVariations(t *testing.T) {
	overlaps := CompareVariations([]domain.Variation{
		{Label: "A"}, {Label: "B"},
	})
	// dos conjuntos vacíos no cuentan como solapados
	assert.Empty(t, overlaps)
}

func TestOverlapRecommendations(t *testing.T) {
	recs := overlapRecommendations([]VariationOverlap{
		{LabelA: "A", LabelB: "B", Similarity: 0.85},
	})
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "A y B comparten 85%")
}
