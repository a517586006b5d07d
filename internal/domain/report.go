package domain

// KeywordAnalysis resume el uso de las keywords dentro del anuncio.
// Una keyword cuenta como usada si su forma en minúsculas aparece como
// substring en la concatenación de todos los campos.
type KeywordAnalysis struct {
	Total            int            `json:"total"`
	Used             int            `json:"used"`
	UsageRatePercent float64        `json:"usage_rate_percent"`
	Unused           []string       `json:"unused"`
	Counts           map[string]int `json:"counts,omitempty"` // apariciones por keyword
}

// AdScoreReport agrega los scores por campo de un anuncio completo.
type AdScoreReport struct {
	HeadlineScores    []ScoredField `json:"headline_scores"`
	DescriptionScores []ScoredField `json:"description_scores"`

	AvgHeadlineScore    float64 `json:"avg_headline_score"`
	AvgDescriptionScore float64 `json:"avg_description_score"`

	// OverallScore = avg(titulares)*0.6 + avg(descripciones)*0.4.
	// Un grupo vacío aporta 0 a su término.
	OverallScore float64 `json:"overall_score"`
	OverallGrade Grade   `json:"overall_grade"`

	TotalIssues int `json:"total_issues"`

	// DiversityScore = palabras únicas / palabras totales × 10, juntando
	// titulares y descripciones en minúsculas. No deduplica plural/singular.
	DiversityScore float64 `json:"diversity_score"`

	KeywordAnalysis *KeywordAnalysis `json:"keyword_analysis,omitempty"`

	Summary            string   `json:"summary"`
	TopRecommendations []string `json:"top_recommendations"` // máximo 5, ordenadas
}
