package abtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltbalente/adlab/internal/domain"
)

func statsTest(best string, results ...domain.VariationResult) *domain.ABTest {
	return &domain.ABTest{ID: "t", BestPredicted: best, Results: results}
}

func variationResult(label, tone string, score, ctr float64) domain.VariationResult {
	return domain.VariationResult{
		Variation:  domain.Variation{Label: label, Tone: tone},
		Report:     domain.AdScoreReport{OverallScore: score},
		Prediction: domain.PredictionResult{PredictedCTR: ctr},
	}
}

func TestStats_RecordAndPerformance(t *testing.T) {
	stats := NewStats()
	stats.Record(statsTest("B",
		variationResult("A", "emocional", 7.0, 4.2),
		variationResult("B", "urgente", 8.0, 5.4),
	))
	stats.Record(statsTest("A",
		variationResult("A", "urgente", 6.0, 5.0),
		variationResult("B", "emocional", 9.0, 4.6),
	))

	perf := stats.TonePerformance()
	require.Len(t, perf, 2)

	// urgente: CTR medio (5.4+5.0)/2 = 5.2, una victoria por test
	assert.Equal(t, "urgente", perf[0].Tone)
	assert.Equal(t, 2, perf[0].Tests)
	assert.InDelta(t, 5.2, perf[0].AvgCTR, 0.001)
	assert.InDelta(t, 7.0, perf[0].AvgScore, 0.001)
	assert.Equal(t, 2, perf[0].Wins)

	assert.Equal(t, "emocional", perf[1].Tone)
	assert.Equal(t, 0, perf[1].Wins)
}

func TestStats_BestTone(t *testing.T) {
	stats := NewStats()
	assert.Empty(t, stats.BestTone())

	stats.Record(statsTest("A", variationResult("A", "místico", 8.0, 4.5)))
	assert.Equal(t, "místico", stats.BestTone())
}

func TestStats_NilTestIgnored(t *testing.T) {
	stats := NewStats()
	stats.Record(nil)
	assert.Empty(t, stats.TonePerformance())
}

func TestStats_TieBreaksAlphabetically(t *testing.T) {
	stats := NewStats()
	stats.Record(statsTest("",
		variationResult("A", "urgente", 7.0, 4.0),
		variationResult("B", "emocional", 7.0, 4.0),
	))

	perf := stats.TonePerformance()
	require.Len(t, perf, 2)
	assert.Equal(t, "emocional", perf[0].Tone)
}
