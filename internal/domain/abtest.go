package domain

import "time"

// TestStatus es el estado del ciclo de vida de un test A/B.
type TestStatus string

const (
	StatusDraft     TestStatus = "draft"
	StatusRunning   TestStatus = "running"
	StatusCompleted TestStatus = "completed"
)

// VariationResult empaqueta una variación con su análisis completo.
type VariationResult struct {
	Variation  Variation        `json:"variation"`
	Report     AdScoreReport    `json:"report"`
	Prediction PredictionResult `json:"prediction"`
}

// ABTest es una sesión de comparación de variaciones. Es el objeto que
// persiste el colaborador de storage y el que renderiza la presentación.
type ABTest struct {
	ID           string     `json:"test_id"`
	Status       TestStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	BusinessType string     `json:"business_type"`
	Keywords     []string   `json:"keywords"`

	Results []VariationResult `json:"variations"`

	BestPredicted   string `json:"best_predicted"`   // label con mayor CTR predicho
	BestReason      string `json:"best_reason"`
	ConfidenceLevel string `json:"confidence_level"` // high | medium | low

	Recommendations []string `json:"recommendations"`
}

// Result devuelve el resultado de la variación con ese label, o nil.
func (t *ABTest) Result(label string) *VariationResult {
	for i := range t.Results {
		if t.Results[i].Variation.Label == label {
			return &t.Results[i]
		}
	}
	return nil
}

// Variations devuelve solo las variaciones, en orden.
func (t *ABTest) Variations() []Variation {
	vs := make([]Variation, len(t.Results))
	for i, r := range t.Results {
		vs[i] = r.Variation
	}
	return vs
}
