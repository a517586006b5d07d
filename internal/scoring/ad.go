package scoring

// ad.go — scorer agregado: combina los scores por campo de un anuncio
// completo en un reporte con score general, diversidad y uso de keywords.

import (
	"fmt"
	"strings"

	"github.com/saltbalente/adlab/internal/domain"
)

// Ponderación del score general: los titulares pesan más porque son lo
// primero que se ve.
const (
	headlineWeight    = 0.6
	descriptionWeight = 0.4
)

// ScoreAd evalúa un anuncio completo. Los campos en blanco se saltan pero
// conservan su índice original en los campos evaluados.
func ScoreAd(headlines, descriptions, keywords []string) domain.AdScoreReport {
	var headlineScores []domain.ScoredField
	for i, h := range headlines {
		if strings.TrimSpace(h) == "" {
			continue
		}
		sf := ScoreHeadline(h, keywords)
		sf.Index = i
		headlineScores = append(headlineScores, sf)
	}

	var descriptionScores []domain.ScoredField
	for i, d := range descriptions {
		if strings.TrimSpace(d) == "" {
			continue
		}
		sf := ScoreDescription(d, keywords)
		sf.Index = i
		descriptionScores = append(descriptionScores, sf)
	}

	avgHeadline := meanScore(headlineScores)
	avgDescription := meanScore(descriptionScores)

	overall := avgHeadline*headlineWeight + avgDescription*descriptionWeight

	totalIssues := 0
	for _, sf := range headlineScores {
		totalIssues += len(sf.Issues)
	}
	for _, sf := range descriptionScores {
		totalIssues += len(sf.Issues)
	}

	var keywordAnalysis *domain.KeywordAnalysis
	if len(keywords) > 0 {
		keywordAnalysis = analyzeKeywordUsage(headlines, descriptions, keywords)
	}

	return domain.AdScoreReport{
		HeadlineScores:      headlineScores,
		DescriptionScores:   descriptionScores,
		AvgHeadlineScore:    round1(avgHeadline),
		AvgDescriptionScore: round1(avgDescription),
		OverallScore:        round1(overall),
		OverallGrade:        domain.GradeFor(round1(overall)),
		TotalIssues:         totalIssues,
		DiversityScore:      diversityScore(headlines, descriptions),
		KeywordAnalysis:     keywordAnalysis,
		Summary:             summarize(round1(overall), totalIssues),
		TopRecommendations:  topRecommendations(headlineScores, descriptionScores, keywordAnalysis),
	}
}

// meanScore devuelve el promedio de los scores, o 0 si el grupo está vacío.
func meanScore(fields []domain.ScoredField) float64 {
	if len(fields) == 0 {
		return 0
	}
	sum := 0.0
	for _, sf := range fields {
		sum += sf.Score
	}
	return sum / float64(len(fields))
}

// diversityScore = palabras únicas / palabras totales × 10, juntando todos
// los campos en minúsculas. No deduplica plural/singular: es una
// aproximación conocida y aceptada.
func diversityScore(headlines, descriptions []string) float64 {
	unique := make(map[string]struct{})
	total := 0

	for _, text := range append(append([]string{}, headlines...), descriptions...) {
		for _, w := range strings.Fields(strings.ToLower(text)) {
			unique[w] = struct{}{}
			total++
		}
	}

	if total == 0 {
		return 0
	}
	return round1(float64(len(unique)) / float64(total) * 10)
}

// analyzeKeywordUsage cuenta apariciones de cada keyword en la
// concatenación de todos los campos.
func analyzeKeywordUsage(headlines, descriptions, keywords []string) *domain.KeywordAnalysis {
	allText := strings.ToLower(strings.Join(append(append([]string{}, headlines...), descriptions...), " "))

	counts := make(map[string]int, len(keywords))
	used := 0
	var unused []string
	for _, kw := range keywords {
		n := strings.Count(allText, strings.ToLower(kw))
		counts[kw] = n
		if n > 0 {
			used++
		} else {
			unused = append(unused, kw)
		}
	}

	rate := 0.0
	if len(keywords) > 0 {
		rate = round1(float64(used) / float64(len(keywords)) * 100)
	}

	return &domain.KeywordAnalysis{
		Total:            len(keywords),
		Used:             used,
		UsageRatePercent: rate,
		Unused:           unused,
		Counts:           counts,
	}
}

// summarize produce el resumen textual del reporte.
func summarize(overall float64, totalIssues int) string {
	var quality string
	switch {
	case overall >= 8:
		quality = "excelente"
	case overall >= 7:
		quality = "buena"
	case overall >= 6:
		quality = "aceptable"
	default:
		quality = "necesita mejoras"
	}

	summary := fmt.Sprintf("El anuncio tiene una calidad %s con score %.1f/10 (%s). ",
		quality, overall, domain.GradeFor(overall))

	switch {
	case totalIssues == 0:
		summary += "No se detectaron problemas."
	case totalIssues <= 3:
		summary += fmt.Sprintf("Se detectaron %d problema(s) menor(es).", totalIssues)
	default:
		summary += fmt.Sprintf("Se detectaron %d problemas que deben corregirse.", totalIssues)
	}
	return summary
}

// topRecommendations genera como máximo 5 recomendaciones priorizadas:
// campos con score bajo primero, keywords sin usar después. Si no hay nada
// crítico, emite las dos líneas genéricas de "bien optimizado".
func topRecommendations(headlineScores, descriptionScores []domain.ScoredField, ka *domain.KeywordAnalysis) []string {
	var recs []string

	lowHeadlines := countBelow(headlineScores, 7)
	if lowHeadlines > 0 {
		recs = append(recs, fmt.Sprintf("Mejorar %d titular(es) con score bajo", lowHeadlines))
	}

	lowDescriptions := countBelow(descriptionScores, 7)
	if lowDescriptions > 0 {
		recs = append(recs, fmt.Sprintf("Mejorar %d descripción(es) con score bajo", lowDescriptions))
	}

	if ka != nil && len(ka.Unused) > 0 {
		recs = append(recs, fmt.Sprintf("Incorporar %d keyword(s) no utilizada(s)", len(ka.Unused)))
	}

	if len(recs) == 0 {
		recs = append(recs,
			"El anuncio está bien optimizado",
			"Considera hacer pruebas A/B para mejorar rendimiento",
		)
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

func countBelow(fields []domain.ScoredField, threshold float64) int {
	n := 0
	for _, sf := range fields {
		if sf.Score < threshold {
			n++
		}
	}
	return n
}
