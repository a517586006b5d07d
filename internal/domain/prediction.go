package domain

// prediction.go — tablas de benchmarks de CTR y features del predictor.
//
// Los benchmarks son promedios de industria por (tipo de negocio, tono).
// Un tono o tipo de negocio desconocido cae al CTR genérico por defecto en
// vez de fallar.

// Tipos de negocio con benchmark propio.
const (
	BusinessEsoteric = "esoteric"
	BusinessGeneric  = "generic"
)

// DefaultBaseCTR es el CTR base cuando el tono o el tipo de negocio no
// están en la tabla.
const DefaultBaseCTR = 3.0

// ctrBenchmarks: CTR promedio (%) por tipo de negocio y tono.
var ctrBenchmarks = map[string]map[string]float64{
	BusinessEsoteric: {
		"emocional":      4.2,
		"urgente":        5.1,
		"profesional":    3.8,
		"místico":        4.5,
		"esperanzador":   3.9,
		"poderoso":       4.7,
		"tranquilizador": 3.5,
	},
	BusinessGeneric: {
		"emocional":   2.8,
		"urgente":     3.5,
		"profesional": 3.2,
		"informativo": 2.9,
	},
}

// BaseCTR devuelve el CTR base para el par (tipo de negocio, tono).
func BaseCTR(businessType, tone string) float64 {
	tones, ok := ctrBenchmarks[businessType]
	if !ok {
		return DefaultBaseCTR
	}
	ctr, ok := tones[tone]
	if !ok {
		return DefaultBaseCTR
	}
	return ctr
}

// Feature es una característica del texto que ajusta el CTR predicho.
type Feature string

const (
	FeaturePowerWords    Feature = "power_words"
	FeatureActionCTA     Feature = "action_cta"
	FeatureNumbers       Feature = "numbers"
	FeatureBenefits      Feature = "benefits"
	FeatureUrgency       Feature = "urgency"
	FeatureLengthOptimal Feature = "length_optimal"
)

// FeatureImpact es el delta de CTR (puntos porcentuales) por característica.
// Cada feature aporta como máximo una vez por variación, sin importar
// cuántas veces haga match su detector.
var FeatureImpact = map[Feature]float64{
	FeaturePowerWords:    0.3,
	FeatureActionCTA:     0.5,
	FeatureNumbers:       0.2,
	FeatureBenefits:      0.4,
	FeatureUrgency:       0.6,
	FeatureLengthOptimal: 0.2,
}

// FeatureWords son los detectores léxicos de cada feature: basta con que
// una palabra de la lista aparezca en el texto agrupado de la variación.
// Numbers y length_optimal se detectan estructuralmente, no por palabra.
var FeatureWords = map[Feature][]string{
	FeaturePowerWords: {"garantizado", "efectivo", "profesional", "poderoso"},
	FeatureActionCTA:  {"consulta", "solicita", "obtén", "descubre"},
	FeatureBenefits:   {"resultado", "garantía", "éxito", "efectivo"},
	FeatureUrgency:    {"ahora", "ya", "hoy", "inmediato", "rápido"},
}

// Rango de longitud media de titulares que cuenta como óptima.
const (
	OptimalHeadlineAvgMin = 20
	OptimalHeadlineAvgMax = 28
)

// Parámetros del modelo de predicción.
const (
	BaseQualityScore     = 6.0  // piso del quality score
	QualityPerFeature    = 0.5  // cada feature sube el quality score
	BaseCPC              = 1.50 // USD de referencia del nicho
	AvgConversionRate    = 0.05 // tasa de conversión promedio asumida
	BaseConfidence       = 0.5
	ConfidencePerFeature = 0.08
)

// PredictionResult es la estimación heurística de rendimiento de una
// variación. No es una señal real de la plataforma de anuncios.
type PredictionResult struct {
	VariationLabel string  `json:"variation_label"`
	Tone           string  `json:"tone"`
	PredictedCTR   float64 `json:"predicted_ctr"`
	BaseCTR        float64 `json:"base_ctr"`
	Adjustments    float64 `json:"adjustments"`

	FeaturesDetected []Feature `json:"features_detected"`

	QualityScore float64 `json:"quality_score"` // 6.0-10.0
	EstimatedCPC float64 `json:"estimated_cpc"` // inverso al quality score

	EstimatedConversionsPer100Clicks float64 `json:"estimated_conversions_per_100_clicks"`

	Confidence float64 `json:"confidence"` // 0-1
}

// PredictionSet agrupa las predicciones de todas las variaciones de un test.
type PredictionSet struct {
	BusinessType string             `json:"business_type"`
	ByVariation  []PredictionResult `json:"by_variation"` // en orden de variación

	// BestLabel es la variación con mayor CTR predicho; empates los gana
	// la primera.
	BestLabel        string  `json:"best_label"`
	BestPredictedCTR float64 `json:"best_predicted_ctr"`
	BestReason       string  `json:"best_reason"`

	// ConfidenceLevel: high si la confianza media >= 0.8, medium si >= 0.6,
	// low en otro caso.
	ConfidenceLevel string `json:"confidence_level"`
}

// Result devuelve la predicción de la variación con ese label, o nil.
func (p *PredictionSet) Result(label string) *PredictionResult {
	for i := range p.ByVariation {
		if p.ByVariation[i].VariationLabel == label {
			return &p.ByVariation[i]
		}
	}
	return nil
}
