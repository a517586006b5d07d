package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltbalente/adlab/internal/domain"
)

func sampleTest() *domain.ABTest {
	return &domain.ABTest{
		ID:              "0194fdc2-fa2f-4cc0-81d3-ff12045b73c8",
		Status:          domain.StatusDraft,
		BusinessType:    "esoteric",
		Keywords:        []string{"amarres de amor"},
		BestPredicted:   "B",
		BestReason:      "Mejor CTR predicho basado en 2 características detectadas",
		ConfidenceLevel: "medium",
		Results: []domain.VariationResult{
			{
				Variation: domain.Variation{Label: "A", Tone: "emocional", Headlines: []string{"Recupera Amarres De Amor"}},
				Report:    domain.AdScoreReport{OverallScore: 6.2, OverallGrade: domain.GradeC, TotalIssues: 1},
				Prediction: domain.PredictionResult{
					VariationLabel: "A", PredictedCTR: 4.2, QualityScore: 6.5, EstimatedCPC: 2.31,
				},
			},
			{
				Variation: domain.Variation{Label: "B", Tone: "urgente", Headlines: []string{"Amarres De Amor Hoy Mismo"}},
				Report:    domain.AdScoreReport{OverallScore: 7.8, OverallGrade: domain.GradeB},
				Prediction: domain.PredictionResult{
					VariationLabel: "B", PredictedCTR: 6.0, QualityScore: 7.0, EstimatedCPC: 2.14,
				},
			},
		},
		Recommendations: []string{"La variación A tiene score 6.2 - optimiza su copy antes de lanzar"},
	}
}

func TestNotify_CompactMode(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false, false)

	require.NoError(t, c.Notify(context.Background(), sampleTest()))

	out := buf.String()
	assert.Contains(t, out, "2 variaciones")
	assert.Contains(t, out, "mejor: B")
	assert.Contains(t, out, "A emocional score:6.2")
	assert.Contains(t, out, "B urgente score:7.8")
	// el modo compacto es una sola línea
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNotify_TableMode(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true, false)

	require.NoError(t, c.Notify(context.Background(), sampleTest()))

	out := buf.String()
	assert.Contains(t, out, "emocional")
	assert.Contains(t, out, "urgente")
	assert.Contains(t, out, "B *") // marca de mejor predicha
	assert.Contains(t, out, "Recomendaciones:")
	assert.Contains(t, out, "optimiza su copy")
}

func TestNotify_VerbosePrintsFields(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false, true)

	test := sampleTest()
	test.Results[0].Report.HeadlineScores = []domain.ScoredField{
		{Text: "Recupera Amarres De Amor", Score: 9.0, Grade: domain.GradeAPlus, Length: 24},
	}

	require.NoError(t, c.Notify(context.Background(), test))

	out := buf.String()
	assert.Contains(t, out, "--- Variación A (emocional) ---")
	assert.Contains(t, out, "Recupera Amarres De Amor")
}

func TestNotify_EmptyTest(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true, true)

	require.NoError(t, c.Notify(context.Background(), nil))
	assert.Contains(t, buf.String(), "test sin variaciones")
}

func TestNotifyWinner_WithWinner(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false, false)

	cpconv := 8.0
	decision := domain.WinnerDecision{
		WinnerLabel:           "A",
		StatisticalConfidence: 0.95,
		IsSignificant:         true,
		Performance: map[string]domain.VariationPerformance{
			"A": {CTR: 5.0, ConversionRate: 10.0, CPC: 0.8, CostPerConversion: &cpconv, CompositeScore: 82.6},
			"B": {CTR: 4.0, ConversionRate: 5.0, CPC: 1.0, CompositeScore: 56.0},
		},
		NextSteps: []string{"Implementa la variación A como anuncio principal"},
	}

	require.NoError(t, c.NotifyWinner(context.Background(), decision))

	out := buf.String()
	assert.Contains(t, out, "Ganador: A")
	assert.Contains(t, out, "95%")
	assert.Contains(t, out, "[SIGNIFICATIVO]")
	assert.Contains(t, out, "$8.00")
	assert.Contains(t, out, "Próximos pasos:")
	assert.Contains(t, out, "Implementa la variación A")
}

func TestNotifyWinner_NoWinner(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false, false)

	decision := domain.WinnerDecision{
		InsufficientData: []domain.InsufficientData{
			{Label: "A", ObservedCount: 12, RequiredCount: 100},
		},
		NextSteps: []string{"Continúa el test hasta alcanzar 100 clics por variación"},
	}

	require.NoError(t, c.NotifyWinner(context.Background(), decision))

	out := buf.String()
	assert.Contains(t, out, "Sin ganador")
	assert.Contains(t, out, "A: 12 clics de 100 requeridos")
	assert.Contains(t, out, "Continúa el test")
}
