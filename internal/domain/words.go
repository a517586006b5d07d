package domain

// words.go — tablas de reglas del canal, centralizadas como constantes.
//
// Todo el vocabulario que usan el scorer, el optimizador y el predictor vive
// aquí para que los tests puedan enumerar cada lista una sola vez. Las tablas
// están compiladas en el binario: el core no lee archivos ni variables de
// entorno.

// Límites duros del canal, en runas (el texto es español, con acentos).
const (
	HeadlineMaxLen       = 30
	HeadlineNearLimit    = 28
	HeadlineMinLen       = 15
	DescriptionMaxLen    = 90
	DescriptionNearLimit = 85
	DescriptionMinLen    = 40
)

// ForbiddenPunctuation son los signos que el canal no permite en titulares
// y penaliza en descripciones.
var ForbiddenPunctuation = []rune{'!', '?', '¡', '¿'}

// ForbiddenPhrases es el denylist de frases que violan las políticas del
// canal. El match es substring en minúsculas y la penalización aplica por
// cada frase encontrada, no solo la primera.
var ForbiddenPhrases = []string{
	"gratis siempre", "100% garantizado", "milagro", "infalible",
	"engaño", "estafa", "magia negra gratuita", "seguro que funciona",
	"nunca falla", "totalmente gratis", "sin riesgo alguno",
}

// PowerWords son las palabras de impacto que suman score.
var PowerWords = []string{
	"garantizado", "efectivo", "profesional", "experto", "certificado",
	"poderoso", "rápido", "inmediato", "real", "auténtico", "discreto",
	"personalizado", "exclusivo", "comprobado", "urgente", "ahora",
}

// ActionWords son los verbos de llamada a la acción.
var ActionWords = []string{
	"descubre", "obtén", "consigue", "solicita", "pide", "consulta",
	"conoce", "aprende", "mejora", "transforma", "cambia", "encuentra",
	"recibe", "accede", "contacta", "llama", "escribe",
}

// EmotionalWords suman score solo en descripciones.
var EmotionalWords = []string{
	"amor", "felicidad", "paz", "esperanza", "confianza", "seguridad",
	"protección", "éxito", "prosperidad", "armonía", "bienestar",
}

// BenefitKeywords marcan la mención de un beneficio o garantía explícita.
var BenefitKeywords = []string{
	"resultado", "garantía", "efectivo", "profesional", "experiencia",
}

// Vocabulario fijo que el optimizador puede insertar. Es la única
// generación de texto que hace el core.
const (
	FillerPowerWord = "Efectivo"
	FillerCTA       = "Consulta ahora."
)
