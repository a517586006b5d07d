package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/saltbalente/adlab/internal/domain"
)

// ScoreHeadline evalúa un titular contra las reglas del canal y devuelve su
// score de calidad (1-10). Es una función pura: mismo texto y keywords
// producen siempre el mismo ScoredField, sin efectos laterales.
//
// El texto vacío no es un error: cae por las ramas de "ausente" de cada
// regla y produce un score determinista.
func ScoreHeadline(text string, keywords []string) domain.ScoredField {
	score := 10.0
	var issues, strengths, recommendations []string

	lower := strings.ToLower(text)
	length := utf8.RuneCountInString(text)

	switch {
	case length > domain.HeadlineMaxLen:
		score -= 3.0
		issues = append(issues, fmt.Sprintf("Excede límite de %d caracteres (%d chars)", domain.HeadlineMaxLen, length))
	case length > domain.HeadlineNearLimit:
		score -= 1.0
		issues = append(issues, fmt.Sprintf("Cerca del límite (%d/%d chars)", length, domain.HeadlineMaxLen))
	case length < domain.HeadlineMinLen:
		score -= 1.5
		issues = append(issues, fmt.Sprintf("Muy corto, podría ser más descriptivo (%d chars)", length))
	default:
		strengths = append(strengths, fmt.Sprintf("Longitud óptima (%d chars)", length))
	}

	capsRatio := capitalizationRatio(text)
	if isAllUpper(text) {
		score -= 2.0
		issues = append(issues, "Todo en mayúsculas (prohibido)")
	} else if capsRatio > 0.5 {
		score -= 1.0
		issues = append(issues, "Demasiadas mayúsculas")
	}

	if r := firstForbiddenRune(text, domain.ForbiddenPunctuation); r != 0 {
		score -= 1.0
		issues = append(issues, fmt.Sprintf("Contiene caracter prohibido: '%c'", r))
	}

	// El denylist se recorre completo: cada frase encontrada penaliza.
	for _, phrase := range domain.ForbiddenPhrases {
		if strings.Contains(lower, phrase) {
			score -= 2.5
			issues = append(issues, fmt.Sprintf("Contiene frase prohibida: '%s'", phrase))
		}
	}

	powerCount := countContained(lower, domain.PowerWords)
	if powerCount > 0 {
		score += math.Min(float64(powerCount)*0.5, 1.5)
		strengths = append(strengths, fmt.Sprintf("Contiene %d palabra(s) de poder", powerCount))
	}

	actionCount := countContained(lower, domain.ActionWords)
	if actionCount > 0 {
		score += math.Min(float64(actionCount)*0.3, 1.0)
		strengths = append(strengths, fmt.Sprintf("Contiene %d palabra(s) de acción", actionCount))
	}

	if len(keywords) > 0 {
		matches := countKeywordMatches(lower, keywords)
		if matches > 0 {
			score += math.Min(float64(matches)*0.5, 1.5)
			strengths = append(strengths, fmt.Sprintf("Incluye %d keyword(s) relevante(s)", matches))
		} else {
			score -= 0.5
			recommendations = append(recommendations, "Considera incluir keywords relevantes")
		}
	}

	hasNumbers := containsDigit(text)
	if hasNumbers {
		score += 0.3
		strengths = append(strengths, "Incluye números (genera confianza)")
	}

	if repeated := repeatedWords(lower); len(repeated) > 0 {
		score -= 0.5
		issues = append(issues, "Palabras repetidas: "+strings.Join(repeated, ", "))
	}

	score = round1(clampScore(score))

	if len(recommendations) == 0 {
		if score < 7 {
			recommendations = append(recommendations, "Revisa los problemas detectados y ajusta el titular")
		}
		if length > 25 {
			recommendations = append(recommendations, "Considera acortar para mejor visibilidad móvil")
		}
		if powerCount == 0 {
			recommendations = append(recommendations, "Agrega palabras de impacto: garantizado, efectivo, profesional")
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
			PowerWords:          powerCount,
			ActionWords:         actionCount,
			HasNumbers:          hasNumbers,
			CapitalizationRatio: capsRatio,
		},
	}
}
