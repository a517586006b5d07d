package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/saltbalente/adlab/internal/domain"
)

// ScoreDescription evalúa una descripción contra las reglas del canal y
// devuelve su score de calidad (1-10). Misma disciplina que ScoreHeadline:
// pura, determinista y sin errores para cualquier entrada.
//
// Umbrales y deltas difieren del titular: límites 90/85/40, el signo
// prohibido resta 0.8, el CTA suma un +0.5 plano y las palabras emocionales
// y la puntuación también suman.
func ScoreDescription(text string, keywords []string) domain.ScoredField {
	score := 10.0
	var issues, strengths, recommendations []string

	lower := strings.ToLower(text)
	length := utf8.RuneCountInString(text)

	switch {
	case length > domain.DescriptionMaxLen:
		score -= 3.0
		issues = append(issues, fmt.Sprintf("Excede límite de %d caracteres (%d chars)", domain.DescriptionMaxLen, length))
	case length > domain.DescriptionNearLimit:
		score -= 1.0
		issues = append(issues, fmt.Sprintf("Cerca del límite (%d/%d chars)", length, domain.DescriptionMaxLen))
	case length < domain.DescriptionMinLen:
		score -= 1.5
		issues = append(issues, fmt.Sprintf("Muy corta, agrega más detalles (%d chars)", length))
	default:
		strengths = append(strengths, fmt.Sprintf("Longitud óptima (%d chars)", length))
	}

	if isAllUpper(text) {
		score -= 2.0
		issues = append(issues, "Todo en mayúsculas (prohibido)")
	}

	if r := firstForbiddenRune(text, domain.ForbiddenPunctuation); r != 0 {
		score -= 0.8
		issues = append(issues, fmt.Sprintf("Contiene caracter prohibido: '%c'", r))
	}

	for _, phrase := range domain.ForbiddenPhrases {
		if strings.Contains(lower, phrase) {
			score -= 2.5
			issues = append(issues, fmt.Sprintf("Contiene frase prohibida: '%s'", phrase))
		}
	}

	powerCount := countContained(lower, domain.PowerWords)
	if powerCount > 0 {
		score += math.Min(float64(powerCount)*0.3, 1.0)
		strengths = append(strengths, fmt.Sprintf("Contiene %d palabra(s) de poder", powerCount))
	}

	emotionalCount := countContained(lower, domain.EmotionalWords)
	if emotionalCount > 0 {
		score += math.Min(float64(emotionalCount)*0.3, 1.0)
		strengths = append(strengths, fmt.Sprintf("Contiene %d palabra(s) emocional(es)", emotionalCount))
	}

	hasCTA := anyContained(lower, domain.ActionWords)
	if hasCTA {
		score += 0.5
		strengths = append(strengths, "Incluye llamada a la acción")
	} else {
		recommendations = append(recommendations, "Considera agregar una llamada a la acción")
	}

	if len(keywords) > 0 {
		matches := countKeywordMatches(lower, keywords)
		if matches > 0 {
			score += math.Min(float64(matches)*0.4, 1.2)
			strengths = append(strengths, fmt.Sprintf("Incluye %d keyword(s) relevante(s)", matches))
		}
	}

	hasPunctuation := strings.ContainsAny(text, ".,")
	if hasPunctuation {
		score += 0.3
		strengths = append(strengths, "Buena estructura con puntuación")
	}

	hasBenefit := anyContained(lower, domain.BenefitKeywords)
	if hasBenefit {
		score += 0.4
		strengths = append(strengths, "Menciona beneficios o garantías")
	}

	score = round1(clampScore(score))

	if len(recommendations) == 0 {
		if score < 7 {
			recommendations = append(recommendations, "Revisa los problemas detectados")
		}
		if !hasCTA {
			recommendations = append(recommendations, "Agrega: Consulta gratis, Solicita ahora, etc.")
		}
		if !hasBenefit {
			recommendations = append(recommendations, "Menciona beneficios concretos o garantías")
		}
	}

	return domain.ScoredField{
		Text:            text,
		Score:           score,
		Grade:           domain.GradeFor(score),
		Length:          length,
		Issues:          issues,
		Strengths:       strengths,
		Recommendations: recommendations,
		Metrics: domain.FieldMetrics{
			PowerWords:     powerCount,
			EmotionalWords: emotionalCount,
			HasNumbers:     containsDigit(text),
			HasCTA:         hasCTA,
			HasBenefit:     hasBenefit,
			HasPunctuation: hasPunctuation,
		},
	}
}
