package abtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltbalente/adlab/internal/domain"
)

func urgentVariation() domain.Variation {
	return domain.Variation{
		Label:     "A",
		Tone:      "urgente",
		Headlines: []string{"Amarres de Amor Garantizado Ahora"},
	}
}

func TestPredict_UrgentWithTwoFeatures(t *testing.T) {
	// tono urgente en esoteric parte de 5.1; el texto aporta power_words
	// ("garantizado") y urgency ("ahora"): +0.3 +0.6 = 0.9. El titular de
	// 33 runas queda fuera del rango de longitud óptima.
	pred := NewPredictor("esoteric").Predict(urgentVariation())

	assert.InDelta(t, 5.1, pred.BaseCTR, 0.001)
	assert.InDelta(t, 0.9, pred.Adjustments, 0.001)
	assert.InDelta(t, 6.0, pred.PredictedCTR, 0.001)
	assert.Equal(t, []domain.Feature{domain.FeaturePowerWords, domain.FeatureUrgency}, pred.FeaturesDetected)
	assert.InDelta(t, 7.0, pred.QualityScore, 0.001)
	assert.InDelta(t, 2.14, pred.EstimatedCPC, 0.001)
	assert.InDelta(t, 0.66, pred.Confidence, 0.001)
	assert.InDelta(t, 0.3, pred.EstimatedConversionsPer100Clicks, 0.001)
}

func TestPredict_UnknownToneFallsBack(t *testing.T) {
	pred := NewPredictor("esoteric").Predict(domain.Variation{Label: "A", Tone: "sarcástico"})
	assert.InDelta(t, domain.DefaultBaseCTR, pred.BaseCTR, 0.001)
}

func TestPredict_EmptyBusinessTypeDefaultsToEsoteric(t *testing.T) {
	a := NewPredictor("").Predict(urgentVariation())
	b := NewPredictor("esoteric").Predict(urgentVariation())
	assert.Equal(t, b, a)
}

func TestPredict_QualityScoreBounded(t *testing.T) {
	// las seis features detectadas: 6.0 + 0.5×6 = 9.0, dentro del tope de 10
	loaded := domain.Variation{
		Label:     "A",
		Tone:      "urgente",
		Headlines: []string{"Resultado Garantizado Hoy 24"},
		Descriptions: []string{
			"Consulta profesional efectiva con resultado y garantía. Descubre tu éxito ahora.",
		},
	}
	pred := NewPredictor("esoteric").Predict(loaded)
	assert.Len(t, pred.FeaturesDetected, 6)
	assert.InDelta(t, 9.0, pred.QualityScore, 0.001)
	assert.LessOrEqual(t, pred.QualityScore, 10.0)
}

func TestPredict_MoreFeaturesLowerCPC(t *testing.T) {
	bare := NewPredictor("esoteric").Predict(domain.Variation{Label: "A", Tone: "urgente"})
	rich := NewPredictor("esoteric").Predict(urgentVariation())
	assert.Less(t, rich.EstimatedCPC, bare.EstimatedCPC)
}

func TestPredictAll_PicksBestCTR(t *testing.T) {
	variations := []domain.Variation{
		{Label: "A", Tone: "profesional"}, // 3.8 sin ajustes
		urgentVariation(),                 // pero con label B
	}
	variations[1].Label = "B"

	set := NewPredictor("esoteric").PredictAll(variations)

	assert.Equal(t, "B", set.BestLabel)
	assert.InDelta(t, 6.0, set.BestPredictedCTR, 0.001)
	assert.Contains(t, set.BestReason, "2 características")
	assert.Len(t, set.ByVariation, 2)
}

func TestPredictAll_TieGoesToFirst(t *testing.T) {
	variations := []domain.Variation{
		{Label: "A", Tone: "emocional"},
		{Label: "B", Tone: "emocional"},
	}
	set := NewPredictor("esoteric").PredictAll(variations)
	assert.Equal(t, "A", set.BestLabel)
}

func TestPredictAll_ConfidenceLevels(t *testing.T) {
	// sin features la confianza por variación es 0.5 → "low"
	set := NewPredictor("esoteric").PredictAll([]domain.Variation{
		{Label: "A", Tone: "emocional"},
	})
	assert.Equal(t, "low", set.ConfidenceLevel)

	// dos features → 0.66 de media → "medium"
	set = NewPredictor("esoteric").PredictAll([]domain.Variation{urgentVariation()})
	assert.Equal(t, "medium", set.ConfidenceLevel)
}

func TestPredictAll_Empty(t *testing.T) {
	set := NewPredictor("esoteric").PredictAll(nil)
	assert.Empty(t, set.ByVariation)
	assert.Equal(t, "low", set.ConfidenceLevel)
	assert.Empty(t, set.BestLabel)
}

func TestDetectFeatures_LengthOptimal(t *testing.T) {
	// media de titulares 26 runas dentro de [20, 28]
	v := domain.Variation{
		Label:     "A",
		Tone:      "emocional",
		Headlines: []string{"Limpieza Total del Espacio"}, // 26 runas
	}
	pred := NewPredictor("esoteric").Predict(v)
	assert.Contains(t, pred.FeaturesDetected, domain.FeatureLengthOptimal)

	// sin titulares no hay media que evaluar
	empty := NewPredictor("esoteric").Predict(domain.Variation{Label: "B", Tone: "emocional"})
	assert.NotContains(t, empty.FeaturesDetected, domain.FeatureLengthOptimal)
}
