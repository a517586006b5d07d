package domain

// ObservedMetrics son las métricas reales de una variación en campaña,
// suministradas por el caller (la plataforma de anuncios queda fuera).
type ObservedMetrics struct {
	Impressions int64   `json:"impressions" yaml:"impressions"`
	Clicks      int64   `json:"clicks" yaml:"clicks"`
	Conversions int64   `json:"conversions" yaml:"conversions"`
	Cost        float64 `json:"cost" yaml:"cost"`
}

// VariationPerformance son las métricas derivadas de una variación válida.
type VariationPerformance struct {
	CTR            float64 `json:"ctr"`             // clicks/impressions × 100
	ConversionRate float64 `json:"conversion_rate"` // conversions/clicks × 100
	CPC            float64 `json:"cpc"`             // cost/clicks

	// CostPerConversion es nil cuando no hubo conversiones (se serializa
	// como null); en ese caso no aporta al término de coste del score.
	CostPerConversion *float64 `json:"cost_per_conversion"`

	// CompositeScore (0-100) = 100 × (0.3×min(ctr/10,1) +
	// 0.4×min(conv_rate/10,1) + 0.3×max(0, 1 − cost_per_conv/100)).
	CompositeScore float64 `json:"composite_score"`

	Observed ObservedMetrics `json:"observed"`
}

// InsufficientData identifica una variación descartada por falta de clics.
type InsufficientData struct {
	Label         string `json:"label"`
	ObservedCount int64  `json:"observed_count"`
	RequiredCount int64  `json:"required_count"`
}

// WinnerDecision es el veredicto del selector de ganador. Que ninguna
// variación tenga datos suficientes es un resultado normal (WinnerLabel
// vacío), no un error.
type WinnerDecision struct {
	WinnerLabel string `json:"winner_label"`

	CompositeScores map[string]float64              `json:"composite_scores"`
	Performance     map[string]VariationPerformance `json:"performance"`

	// StatisticalConfidence es una heurística por buckets sobre la
	// diferencia relativa de scores compuestos, no un test de hipótesis.
	StatisticalConfidence float64 `json:"statistical_confidence"`
	IsSignificant         bool    `json:"is_significant"`

	InsufficientData []InsufficientData `json:"insufficient_data"`

	NextSteps []string `json:"next_steps"`
}
