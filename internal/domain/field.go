package domain

// Grade es la calificación en letra de un score de calidad (1-10).
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// GradeFor convierte un score numérico a calificación en letra.
// Cortes inclusivos en 9/8/7/6/5.
func GradeFor(score float64) Grade {
	switch {
	case score >= 9:
		return GradeAPlus
	case score >= 8:
		return GradeA
	case score >= 7:
		return GradeB
	case score >= 6:
		return GradeC
	case score >= 5:
		return GradeD
	default:
		return GradeF
	}
}

// FieldMetrics son las señales detectadas durante el scoring de un campo.
// Los campos de titular y descripción comparten el tipo; los que no aplican
// quedan en su valor cero.
type FieldMetrics struct {
	PowerWords          int     `json:"power_words"`
	ActionWords         int     `json:"action_words,omitempty"`
	EmotionalWords      int     `json:"emotional_words,omitempty"`
	HasNumbers          bool    `json:"has_numbers,omitempty"`
	HasCTA              bool    `json:"has_cta,omitempty"`
	HasBenefit          bool    `json:"has_benefit,omitempty"`
	HasPunctuation      bool    `json:"has_punctuation,omitempty"`
	CapitalizationRatio float64 `json:"capitalization_ratio,omitempty"`
}

// ScoredField es el resultado de evaluar un titular o una descripción.
// Se construye completo en cada llamada de scoring y es inmutable después.
type ScoredField struct {
	Text            string       `json:"text"`
	Score           float64      `json:"score"` // 1.0-10.0, redondeado a 1 decimal
	Grade           Grade        `json:"grade"`
	Length          int          `json:"length"` // runas, no bytes
	Issues          []string     `json:"issues"`
	Strengths       []string     `json:"strengths"`
	Recommendations []string     `json:"recommendations"`
	Metrics         FieldMetrics `json:"metrics"`

	// Index es la posición del campo dentro del anuncio original.
	// Los campos en blanco se saltan pero el índice se conserva.
	Index int `json:"index,omitempty"`
}
