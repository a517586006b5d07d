package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Variation es una versión del anuncio con un tono concreto dentro de un
// test A/B. Es inmutable después de crearse: regenerar produce una Variation
// nueva y el contador de versión lo lleva el caller.
type Variation struct {
	Label        string    `json:"label"` // A, B, C, ...
	Tone         string    `json:"tone"`
	Headlines    []string  `json:"headlines"`
	Descriptions []string  `json:"descriptions"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// PooledText devuelve todo el texto de la variación en minúsculas,
// separado por espacios. Es la entrada de los detectores del predictor.
func (v Variation) PooledText() string {
	parts := make([]string, 0, len(v.Headlines)+len(v.Descriptions))
	parts = append(parts, v.Headlines...)
	parts = append(parts, v.Descriptions...)
	return strings.ToLower(strings.Join(parts, " "))
}

// AvgHeadlineLength devuelve la longitud media de los titulares en runas,
// o 0 si no hay titulares.
func (v Variation) AvgHeadlineLength() float64 {
	if len(v.Headlines) == 0 {
		return 0
	}
	total := 0
	for _, h := range v.Headlines {
		total += utf8.RuneCountInString(h)
	}
	return float64(total) / float64(len(v.Headlines))
}

// AvgDescriptionLength devuelve la longitud media de las descripciones en
// runas, o 0 si no hay descripciones.
func (v Variation) AvgDescriptionLength() float64 {
	if len(v.Descriptions) == 0 {
		return 0
	}
	total := 0
	for _, d := range v.Descriptions {
		total += utf8.RuneCountInString(d)
	}
	return float64(total) / float64(len(v.Descriptions))
}
