package abtest

// predictor.go — estimación heurística de rendimiento por variación.
//
// El modelo es una tabla de benchmarks por (tipo de negocio, tono) más
// ajustes aditivos por característica detectada. Cada feature aporta una
// sola vez por variación aunque su detector haga match muchas veces.

import (
	"fmt"
	"math"
	"strings"

	"github.com/saltbalente/adlab/internal/domain"
)

// Predictor estima CTR, quality score y CPC de variaciones.
// Es puro y reentrante: no acumula estado entre llamadas.
type Predictor struct {
	businessType string
}

// NewPredictor crea un Predictor para el tipo de negocio dado.
// Un tipo desconocido cae al benchmark genérico por defecto (3.0).
func NewPredictor(businessType string) *Predictor {
	if businessType == "" {
		businessType = domain.BusinessEsoteric
	}
	return &Predictor{businessType: businessType}
}

// Predict estima el rendimiento de una variación.
func (p *Predictor) Predict(v domain.Variation) domain.PredictionResult {
	baseCTR := domain.BaseCTR(p.businessType, v.Tone)

	features := detectFeatures(v)

	adjustments := 0.0
	for _, f := range features {
		adjustments += domain.FeatureImpact[f]
	}

	predictedCTR := round2(baseCTR + adjustments)

	qualityScore := math.Min(10, domain.BaseQualityScore+domain.QualityPerFeature*float64(len(features)))
	estimatedCPC := round2(domain.BaseCPC * (10 / qualityScore))

	confidence := round2(math.Min(1.0, domain.BaseConfidence+domain.ConfidencePerFeature*float64(len(features))))

	return domain.PredictionResult{
		VariationLabel:                   v.Label,
		Tone:                             v.Tone,
		PredictedCTR:                     predictedCTR,
		BaseCTR:                          baseCTR,
		Adjustments:                      round2(adjustments),
		FeaturesDetected:                 features,
		QualityScore:                     round1(qualityScore),
		EstimatedCPC:                     estimatedCPC,
		EstimatedConversionsPer100Clicks: round2(predictedCTR * domain.AvgConversionRate),
		Confidence:                       confidence,
	}
}

// PredictAll estima todas las variaciones y deriva el mejor CTR predicho y
// el nivel de confianza agregado del conjunto.
func (p *Predictor) PredictAll(variations []domain.Variation) domain.PredictionSet {
	set := domain.PredictionSet{
		BusinessType:    p.businessType,
		ConfidenceLevel: "low",
	}
	if len(variations) == 0 {
		return set
	}

	bestCTR := 0.0
	confidenceSum := 0.0

	for _, v := range variations {
		pred := p.Predict(v)
		set.ByVariation = append(set.ByVariation, pred)
		confidenceSum += pred.Confidence

		if pred.PredictedCTR > bestCTR {
			bestCTR = pred.PredictedCTR
			set.BestLabel = v.Label
		}
	}

	set.BestPredictedCTR = bestCTR
	if best := set.Result(set.BestLabel); best != nil {
		set.BestReason = fmt.Sprintf("Mejor CTR predicho basado en %d características detectadas",
			len(best.FeaturesDetected))
	}

	avgConfidence := confidenceSum / float64(len(set.ByVariation))
	switch {
	case avgConfidence >= 0.8:
		set.ConfidenceLevel = "high"
	case avgConfidence >= 0.6:
		set.ConfidenceLevel = "medium"
	default:
		set.ConfidenceLevel = "low"
	}

	return set
}

// detectFeatures devuelve las características presentes en el texto
// agrupado de la variación, en orden estable.
func detectFeatures(v domain.Variation) []domain.Feature {
	pooled := v.PooledText()
	var features []domain.Feature

	for _, f := range []domain.Feature{
		domain.FeaturePowerWords,
		domain.FeatureActionCTA,
	} {
		if anyWordIn(pooled, domain.FeatureWords[f]) {
			features = append(features, f)
		}
	}

	if strings.ContainsAny(pooled, "0123456789") {
		features = append(features, domain.FeatureNumbers)
	}

	for _, f := range []domain.Feature{
		domain.FeatureBenefits,
		domain.FeatureUrgency,
	} {
		if anyWordIn(pooled, domain.FeatureWords[f]) {
			features = append(features, f)
		}
	}

	if avg := v.AvgHeadlineLength(); len(v.Headlines) > 0 &&
		avg >= domain.OptimalHeadlineAvgMin && avg <= domain.OptimalHeadlineAvgMax {
		features = append(features, domain.FeatureLengthOptimal)
	}

	return features
}

func anyWordIn(pooled string, words []string) bool {
	for _, w := range words {
		if strings.Contains(pooled, w) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
