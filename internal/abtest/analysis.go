package abtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saltbalente/adlab/internal/domain"
)

// Umbral de similitud Jaccard a partir del cual dos variaciones se
// consideran demasiado parecidas para un test A/B útil.
const similarityThreshold = 0.7

// VariationOverlap es un par de variaciones con su similitud léxica.
type VariationOverlap struct {
	LabelA     string  `json:"label_a"`
	LabelB     string  `json:"label_b"`
	Similarity float64 `json:"similarity"` // Jaccard sobre palabras, 0-1
}

// CompareVariations calcula la similitud Jaccard de cada par de variaciones
// y devuelve los pares que superan el umbral, ordenados por similitud
// descendente. Un test con pares solapados mide poco: las variaciones
// deberían diferenciarse en vocabulario, no solo en orden.
func CompareVariations(variations []domain.Variation) []VariationOverlap {
	sets := make([]map[string]struct{}, len(variations))
	for i, v := range variations {
		sets[i] = wordSet(v.PooledText())
	}

	var overlaps []VariationOverlap
	for i := 0; i < len(variations); i++ {
		for j := i + 1; j < len(variations); j++ {
			sim := jaccard(sets[i], sets[j])
			if sim >= similarityThreshold {
				overlaps = append(overlaps, VariationOverlap{
					LabelA:     variations[i].Label,
					LabelB:     variations[j].Label,
					Similarity: round2(sim),
				})
			}
		}
	}

	sort.Slice(overlaps, func(i, j int) bool {
		return overlaps[i].Similarity > overlaps[j].Similarity
	})
	return overlaps
}

func wordSet(pooled string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(pooled) {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// overlapRecommendations traduce los pares solapados a recomendaciones de test.
func overlapRecommendations(overlaps []VariationOverlap) []string {
	var recs []string
	for _, o := range overlaps {
		recs = append(recs, fmt.Sprintf(
			"Las variaciones %s y %s comparten %.0f%% del vocabulario - diferéncialas más",
			o.LabelA, o.LabelB, o.Similarity*100))
	}
	return recs
}
