package scoring

// text.go — helpers de análisis de texto compartidos por los scorers.
// Todas las longitudes se miden en runas: el copy es español con acentos.

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isAllUpper devuelve true si el texto tiene al menos una letra y ninguna
// minúscula (equivalente a "todo en mayúsculas" para el canal).
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter
}

// capitalizationRatio devuelve la fracción de runas en mayúscula sobre el
// total de runas. 0 para texto vacío.
func capitalizationRatio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}
	upper := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(total)
}

// countContained cuenta cuántas entradas de la lista aparecen como
// substring en el texto (ya en minúsculas). Cuenta entradas, no apariciones.
func countContained(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// anyContained devuelve true si alguna entrada de la lista aparece en el
// texto en minúsculas.
func anyContained(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// countKeywordMatches cuenta cuántas keywords (en minúsculas) aparecen en
// el texto.
func countKeywordMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}

// containsDigit devuelve true si el texto contiene algún dígito.
func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// firstForbiddenRune devuelve el primer signo prohibido presente en el
// texto, o 0 si no hay ninguno. Solo el primero penaliza.
func firstForbiddenRune(s string, forbidden []rune) rune {
	for _, r := range forbidden {
		if strings.ContainsRune(s, r) {
			return r
		}
	}
	return 0
}

// repeatedWords devuelve, en orden de aparición, las palabras de más de 3
// runas que aparecen más de una vez en el texto en minúsculas.
func repeatedWords(lower string) []string {
	counts := make(map[string]int)
	var repeated []string
	for _, w := range strings.Fields(lower) {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		counts[w]++
		if counts[w] == 2 {
			repeated = append(repeated, w)
		}
	}
	return repeated
}

// clampScore normaliza el score al rango [1.0, 10.0].
func clampScore(score float64) float64 {
	return math.Max(1.0, math.Min(10.0, score))
}

// round1 redondea a 1 decimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
