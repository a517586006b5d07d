package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/scoring"
)

func TestOptimizeHeadline_TruncatesAtWordBoundary(t *testing.T) {
	// 45 chars > 30 → -3.0; power garantizado+efectivo +1.0 → inicial 8.0,
	// bajo el objetivo de 9.0. El truncado corta en 30 y retrocede al
	// último espacio (posición 27 > 24 = 80% de 30).
	res := OptimizeHeadline("Amarres de Amor Garantizado Ya Mismo Efectivo", nil, 9.0)

	assert.InDelta(t, 8.0, res.InitialScore, 0.001)
	assert.Equal(t, "Amarres de Amor Garantizado", res.Optimized)
	assert.True(t, res.Changed)
	assert.LessOrEqual(t, res.FinalData.Length, domain.HeadlineMaxLen)
	assert.Contains(t, res.ImprovementsApplied[0], "Ajustada longitud")
}

func TestOptimizeHeadline_AtTargetShortCircuits(t *testing.T) {
	// el mismo titular ya puntúa 8.0, así que con objetivo 8.0 no se toca
	res := OptimizeHeadline("Amarres de Amor Garantizado Ya Mismo Efectivo", nil, 8.0)
	assert.False(t, res.Changed)
	assert.Equal(t, res.Original, res.Optimized)
	assert.True(t, res.MeetsTarget)
}

func TestOptimizeHeadline_NeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"Amarres de Amor Garantizado Ya Mismo Efectivo",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"UNO DOS TRES CUATRO CINCO SEIS SIETE OCHO NUEVE DIEZ!!",
	}
	for _, in := range inputs {
		res := OptimizeHeadline(in, nil, 10.0)
		assert.LessOrEqual(t, runeLen(res.Optimized), domain.HeadlineMaxLen, "input %q", in)
	}
}

func TestOptimizeHeadline_HardCutWithoutSpaces(t *testing.T) {
	// sin espacios en el 20% final no hay dónde retroceder: corte en seco
	res := OptimizeHeadline("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", nil, 10.0)
	assert.Equal(t, domain.HeadlineMaxLen, runeLen(res.Optimized))
}

func TestOptimizeHeadline_StripsForbiddenPunctuation(t *testing.T) {
	// score inicial 9.0: hace falta un objetivo alto para forzar la limpieza
	res := OptimizeHeadline("¿Recuperar a tu pareja?", nil, 10.0)
	assert.NotContains(t, res.Optimized, "?")
	assert.NotContains(t, res.Optimized, "¿")
}

func TestOptimizeHeadline_FixesAllCaps(t *testing.T) {
	res := OptimizeHeadline("AMARRES DE AMOR URGENTES YA!!", nil, 0)
	assert.Equal(t, "Amarres De Amor Urgentes Ya", res.Optimized)
	assert.Contains(t, res.ImprovementsApplied, "Corregido uso de mayúsculas")
}

func TestOptimizeHeadline_AppendsPowerWordWhenRoom(t *testing.T) {
	// "Tarot Amor" (10 chars) no tiene palabra de poder y hay espacio:
	// se agrega el filler fijo
	res := OptimizeHeadline("Tarot Amor", nil, 9.0)
	assert.Equal(t, "Tarot Amor Efectivo", res.Optimized)
	assert.True(t, res.MeetsTarget)
}

func TestOptimizeHeadline_SinglePassStable(t *testing.T) {
	first := OptimizeHeadline("AMARRES DE AMOR URGENTES YA!!", nil, 8.0)
	second := OptimizeHeadline(first.Optimized, nil, 8.0)
	assert.False(t, second.Changed)
	assert.Equal(t, first.Optimized, second.Optimized)
}

func TestOptimizeHeadline_FinalScoreMatchesRescore(t *testing.T) {
	res := OptimizeHeadline("AMARRES DE AMOR URGENTES YA!!", nil, 9.5)
	rescored := scoring.ScoreHeadline(res.Optimized, nil)
	assert.Equal(t, rescored.Score, res.FinalScore)
}

func TestOptimizeDescription_ReplacesPunctuationWithPeriod(t *testing.T) {
	res := OptimizeDescription("¿Quieres recuperar a tu pareja? Nosotros sabemos cómo ayudarte", nil, 10.0)
	assert.NotContains(t, res.Optimized, "?")
	assert.NotContains(t, res.Optimized, "¿")
	assert.Contains(t, res.Optimized, ".")
}

func TestOptimizeDescription_AppendsCTAWhenMissing(t *testing.T) {
	// mayúsculas corregidas a estilo oración y CTA agregado al final
	res := OptimizeDescription("URGENTE AMARRES DE AMOR YA MISMO", nil, 8.0)
	assert.Equal(t, "Urgente amarres de amor ya mismo Consulta ahora.", res.Optimized)
	assert.True(t, res.MeetsTarget)
}

func TestOptimizeDescription_RemovesForbiddenPhrases(t *testing.T) {
	res := OptimizeDescription("Amarres de amor sin costo, milagro asegurado para tu pareja", nil, 9.9)
	assert.NotContains(t, res.Optimized, "milagro")
	assert.Contains(t, res.ImprovementsApplied, "Removida frase prohibida")
}

func TestOptimizeDescription_NeverExceedsLimit(t *testing.T) {
	long := "Esta descripción es demasiado larga para el canal y necesita un recorte inteligente que respete palabras completas"
	res := OptimizeDescription(long, nil, 10.0)
	assert.LessOrEqual(t, runeLen(res.Optimized), domain.DescriptionMaxLen)
}

func TestOptimizeAd_OnlyTouchesFieldsBelowTarget(t *testing.T) {
	headlines := []string{
		"Limpieza Espiritual Total",          // 10.0, por encima del objetivo
		"AMARRES DE AMOR GARANTIZADOS YA!!!", // muy por debajo
	}
	out := OptimizeAd(headlines, nil, nil, 8.0, false)

	assert.Equal(t, headlines[0], out.OptimizedHeadlines[0])
	assert.NotEqual(t, headlines[1], out.OptimizedHeadlines[1])
	assert.Greater(t, out.FinalScore, out.InitialScore)
}

func TestOptimizeAd_BlankFieldsPassThrough(t *testing.T) {
	out := OptimizeAd([]string{"", "Tarot"}, []string{"  "}, nil, 9.9, true)
	assert.Equal(t, "", out.OptimizedHeadlines[0])
	assert.Equal(t, "  ", out.OptimizedDescriptions[0])
}
