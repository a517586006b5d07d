package optimizer

// text.go — transformaciones de texto del optimizador. Operan en runas
// porque el copy lleva acentos y signos de apertura españoles.

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// truncateAtWord corta el texto al límite y retrocede hasta el último
// espacio si ese espacio queda dentro del 80% final del límite; si no,
// corta en seco. Nunca devuelve más de maxLen runas.
func truncateAtWord(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	truncated := runes[:maxLen]

	lastSpace := -1
	for i, r := range truncated {
		if r == ' ' {
			lastSpace = i
		}
	}

	if lastSpace > int(float64(maxLen)*0.8) {
		return strings.TrimSpace(string(truncated[:lastSpace]))
	}
	return strings.TrimSpace(string(truncated))
}

// removeAllFold elimina todas las apariciones de phrase sin distinguir
// mayúsculas y devuelve cuántas quitó. Las frases del denylist están en
// minúsculas y el folding de español conserva la longitud en bytes.
func removeAllFold(s, phrase string) (string, int) {
	count := 0
	lower := strings.ToLower(s)
	for {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			break
		}
		s = s[:idx] + s[idx+len(phrase):]
		lower = lower[:idx] + lower[idx+len(phrase):]
		count++
	}
	return s, count
}

// containsAnyFold devuelve true si alguna palabra de la lista aparece en el
// texto en minúsculas.
func containsAnyFold(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// isAllUpper replica el criterio del scorer: al menos una letra y ninguna
// minúscula.
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

// titleCase pasa cada palabra a Inicial Mayúscula (para titulares).
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// sentenceCase pasa el texto a estilo oración (para descripciones).
func sentenceCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// collapseSpaces reduce espacios múltiples a uno y recorta extremos.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
