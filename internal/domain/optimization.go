package domain

// OptimizationResult es el resultado de una pasada de optimización sobre un
// campo. Invariantes: FinalScore == score(Optimized) y
// Changed == (Optimized != Original).
type OptimizationResult struct {
	Original  string `json:"original"`
	Optimized string `json:"optimized"`

	InitialScore float64 `json:"initial_score"`
	FinalScore   float64 `json:"final_score"`

	// Improvement puede ser <= 0 si ningún paso aplicaba; eso es un
	// resultado legítimo, no un error.
	Improvement float64 `json:"improvement"`

	// ImprovementsApplied describe cada paso aplicado, en orden.
	ImprovementsApplied []string `json:"improvements_applied"`

	Changed     bool `json:"changed"`
	MeetsTarget bool `json:"meets_target"`

	InitialData ScoredField `json:"initial_data"`
	FinalData   ScoredField `json:"final_data"`
}
