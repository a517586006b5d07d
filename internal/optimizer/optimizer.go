package optimizer

// optimizer.go — reescritura determinista de campos hacia un score objetivo.
//
// La optimización es UNA sola pasada con pasos en orden fijo, no una
// búsqueda iterativa: re-optimizar el resultado no debe cambiarlo si el
// objetivo ya se alcanzó. Que el resultado siga por debajo del objetivo es
// un desenlace reportable, no un error.

import (
	"fmt"
	"strings"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/scoring"
)

// DefaultTargetScore es el score objetivo si el caller no fija uno.
const DefaultTargetScore = 8.0

// Margen de longitud por debajo del cual tiene sentido insertar el filler.
const (
	headlineFillerRoom    = 25
	descriptionFillerRoom = 75
)

// OptimizeHeadline aplica los pasos de corrección a un titular:
// truncado inteligente, limpieza de signos prohibidos, corrección de
// mayúsculas, eliminación de frases prohibidas e inserción de una palabra
// de poder si falta y cabe.
func OptimizeHeadline(headline string, keywords []string, targetScore float64) domain.OptimizationResult {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	initial := scoring.ScoreHeadline(headline, keywords)
	if initial.Score >= targetScore {
		return unchangedResult(headline, initial, targetScore)
	}

	optimized := headline
	var improvements []string

	if runeLen(optimized) > domain.HeadlineMaxLen {
		optimized = truncateAtWord(optimized, domain.HeadlineMaxLen)
		improvements = append(improvements, fmt.Sprintf("Ajustada longitud a límite de %d caracteres", domain.HeadlineMaxLen))
	}

	for _, r := range domain.ForbiddenPunctuation {
		if strings.ContainsRune(optimized, r) {
			optimized = strings.ReplaceAll(optimized, string(r), "")
			improvements = append(improvements, fmt.Sprintf("Removido caracter prohibido: '%c'", r))
		}
	}

	if isAllUpper(optimized) {
		optimized = titleCase(optimized)
		improvements = append(improvements, "Corregido uso de mayúsculas")
	}

	for _, phrase := range domain.ForbiddenPhrases {
		var removed int
		optimized, removed = removeAllFold(optimized, phrase)
		if removed > 0 {
			optimized = collapseSpaces(optimized)
			improvements = append(improvements, "Removida frase prohibida")
		}
	}

	if runeLen(optimized) < headlineFillerRoom && !containsAnyFold(optimized, domain.PowerWords) {
		candidate := optimized + " " + domain.FillerPowerWord
		if runeLen(candidate) <= domain.HeadlineMaxLen {
			optimized = candidate
			improvements = append(improvements, fmt.Sprintf("Agregada palabra de poder: '%s'", domain.FillerPowerWord))
		}
	}

	optimized = collapseSpaces(optimized)

	final := scoring.ScoreHeadline(optimized, keywords)
	return buildResult(headline, optimized, initial, final, improvements, targetScore)
}

// OptimizeDescription aplica los pasos de corrección a una descripción.
// Difiere del titular en que los signos prohibidos se reemplazan por punto,
// las mayúsculas se corrigen a estilo oración y el filler es un CTA.
func OptimizeDescription(description string, keywords []string, targetScore float64) domain.OptimizationResult {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	initial := scoring.ScoreDescription(description, keywords)
	if initial.Score >= targetScore {
		return unchangedResult(description, initial, targetScore)
	}

	optimized := description
	var improvements []string

	if runeLen(optimized) > domain.DescriptionMaxLen {
		optimized = truncateAtWord(optimized, domain.DescriptionMaxLen)
		improvements = append(improvements, fmt.Sprintf("Ajustada longitud a límite de %d caracteres", domain.DescriptionMaxLen))
	}

	for _, r := range domain.ForbiddenPunctuation {
		if strings.ContainsRune(optimized, r) {
			optimized = strings.ReplaceAll(optimized, string(r), ".")
			improvements = append(improvements, fmt.Sprintf("Reemplazado caracter prohibido '%c' por '.'", r))
		}
	}

	if isAllUpper(optimized) {
		optimized = sentenceCase(optimized)
		improvements = append(improvements, "Corregido uso de mayúsculas")
	}

	for _, phrase := range domain.ForbiddenPhrases {
		var removed int
		optimized, removed = removeAllFold(optimized, phrase)
		if removed > 0 {
			optimized = collapseSpaces(optimized)
			improvements = append(improvements, "Removida frase prohibida")
		}
	}

	if runeLen(optimized) < descriptionFillerRoom && !containsAnyFold(optimized, domain.ActionWords) {
		candidate := optimized + " " + domain.FillerCTA
		if runeLen(candidate) <= domain.DescriptionMaxLen {
			optimized = candidate
			improvements = append(improvements, fmt.Sprintf("Agregado CTA: '%s'", domain.FillerCTA))
		}
	}

	optimized = collapseSpaces(optimized)

	final := scoring.ScoreDescription(optimized, keywords)
	return buildResult(description, optimized, initial, final, improvements, targetScore)
}

func unchangedResult(text string, sf domain.ScoredField, targetScore float64) domain.OptimizationResult {
	return domain.OptimizationResult{
		Original:     text,
		Optimized:    text,
		InitialScore: sf.Score,
		FinalScore:   sf.Score,
		Improvement:  0,
		Changed:      false,
		MeetsTarget:  sf.Score >= targetScore,
		InitialData:  sf,
		FinalData:    sf,
	}
}

func buildResult(original, optimized string, initial, final domain.ScoredField, improvements []string, targetScore float64) domain.OptimizationResult {
	return domain.OptimizationResult{
		Original:            original,
		Optimized:           optimized,
		InitialScore:        initial.Score,
		FinalScore:          final.Score,
		Improvement:         round1(final.Score - initial.Score),
		ImprovementsApplied: improvements,
		Changed:             optimized != original,
		MeetsTarget:         final.Score >= targetScore,
		InitialData:         initial,
		FinalData:           final,
	}
}
