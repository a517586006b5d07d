package generate

// template.go — generador offline por plantillas.
//
// Produce texto determinista combinando las keywords con un vocabulario
// fijo por tono. Es el camino por defecto: el cliente de IA es opcional y
// el core nunca lo necesita para funcionar. Todo el texto sale ya dentro
// de los límites de caracteres (30 titular / 90 descripción).

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/ports"
)

// tonePhrases es el vocabulario fijo de cada tono: prefijos de titular y
// plantillas de descripción con un hueco %s para la keyword.
var tonePhrases = map[string]struct {
	headlinePrefixes []string
	headlineSuffixes []string
	descriptions     []string
}{
	"emocional": {
		headlinePrefixes: []string{"Recupera", "Siente", "Vive", "Encuentra", "Renueva"},
		headlineSuffixes: []string{"Con Amor", "De Verdad", "Hoy Mismo", "Para Ti", "Sin Dolor"},
		descriptions: []string{
			"Recupera la paz que mereces con %s. Resultados que se sienten desde la primera consulta.",
			"Tu historia de amor merece otra oportunidad. %s con resultado garantizado. Consulta ahora.",
			"Sanación emocional con %s. Miles de personas ya encontraron su camino. Solicita tu consulta.",
		},
	},
	"urgente": {
		headlinePrefixes: []string{"Consulta Hoy", "Ahora", "Ya", "Resultados Ya", "Urgente"},
		headlineSuffixes: []string{"Inmediato", "Hoy Mismo", "En 24 Horas", "Sin Espera", "Rápido"},
		descriptions: []string{
			"No esperes más: %s con resultados inmediatos. Consulta ahora y cambia tu situación hoy.",
			"Atención inmediata en %s. Primeros resultados en días, no en meses. Solicita ya tu cita.",
			"Tu caso no puede esperar. %s con respuesta en 24 horas. Consulta ahora mismo.",
		},
	},
	"profesional": {
		headlinePrefixes: []string{"Experto En", "Consultor De", "Maestro En", "Especialista", "Profesional"},
		headlineSuffixes: []string{"Certificado", "Con Experiencia", "Serio", "Confiable", "Garantizado"},
		descriptions: []string{
			"Servicio profesional de %s con años de experiencia. Resultados comprobables. Consulta ahora.",
			"Trabajo serio y confidencial en %s. Método efectivo con garantía. Solicita información.",
			"%s con enfoque profesional. Primera evaluación sin costo. Obtén tu diagnóstico hoy.",
		},
	},
	"místico": {
		headlinePrefixes: []string{"Ritual De", "Magia De", "Poder Del", "Secreto Del", "Energía De"},
		headlineSuffixes: []string{"Ancestral", "Poderoso", "Del Destino", "De Luna Llena", "Sagrado"},
		descriptions: []string{
			"Rituales ancestrales de %s con el poder de generaciones. Descubre lo que el destino guarda.",
			"La energía del universo al servicio de tu caso. %s con método ancestral. Consulta ahora.",
			"%s guiado por sabiduría ancestral. Resultado efectivo y discreto. Solicita tu ritual.",
		},
	},
}

// fallbackTone se usa cuando el tono pedido no tiene vocabulario propio.
const fallbackTone = "profesional"

// Template implementa ports.Generator sin dependencias externas.
type Template struct{}

// NewTemplate crea el generador por plantillas.
func NewTemplate() *Template {
	return &Template{}
}

// Generate produce titulares y descripciones deterministas para el tono y
// las keywords dados. Misma entrada, misma salida.
func (t *Template) Generate(_ context.Context, req ports.GenerateRequest) (ports.GeneratedAd, error) {
	phrases, ok := tonePhrases[req.Tone]
	if !ok {
		phrases = tonePhrases[fallbackTone]
	}

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = []string{"consulta espiritual"}
	}

	ad := ports.GeneratedAd{
		Headlines:    make([]string, 0, req.NumHeadlines),
		Descriptions: make([]string, 0, req.NumDescriptions),
	}

	for i := 0; i < req.NumHeadlines; i++ {
		kw := titleWords(keywords[i%len(keywords)])
		var h string
		if i%2 == 0 {
			prefix := phrases.headlinePrefixes[i%len(phrases.headlinePrefixes)]
			h = prefix + " " + kw
		} else {
			suffix := phrases.headlineSuffixes[i%len(phrases.headlineSuffixes)]
			h = kw + " " + suffix
		}
		ad.Headlines = append(ad.Headlines, clip(h, domain.HeadlineMaxLen))
	}

	for i := 0; i < req.NumDescriptions; i++ {
		kw := keywords[i%len(keywords)]
		tpl := phrases.descriptions[i%len(phrases.descriptions)]
		d := strings.Replace(tpl, "%s", kw, 1)
		if strings.HasPrefix(tpl, "%s") {
			d = sentenceStart(d)
		}
		ad.Descriptions = append(ad.Descriptions, clip(d, domain.DescriptionMaxLen))
	}

	return ad, nil
}

// clip recorta en límite de palabra si el texto excede max runas.
func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := runes[:max]
	for i := len(cut) - 1; i > 0; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimRight(string(cut), " ")
}

// titleWords capitaliza la primera letra de cada palabra.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// sentenceStart capitaliza solo la primera letra.
func sentenceStart(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
