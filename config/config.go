package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de adlab.
type Config struct {
	ABTest    ABTestConfig    `yaml:"abtest"`
	Generator GeneratorConfig `yaml:"generator"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// ABTestConfig controla el comportamiento del engine de tests A/B.
type ABTestConfig struct {
	BusinessType    string   `yaml:"business_type"` // esoteric | generic
	Tones           []string `yaml:"tones"`
	NumHeadlines    int      `yaml:"num_headlines"`
	NumDescriptions int      `yaml:"num_descriptions"`
	Workers         int      `yaml:"workers"`
	TargetScore     float64  `yaml:"target_score"`
	MinClicks       int64    `yaml:"min_clicks"`
	MinConfidence   float64  `yaml:"min_confidence"`
}

// GeneratorConfig configura el proveedor de generación de texto. Sin API
// key se usa el generador por plantillas.
type GeneratorConfig struct {
	APIBase string `yaml:"api_base"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// StorageConfig controla dónde se persisten los tests.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del entorno sobreescriben los del YAML para las keys que correspondan.
// Un path vacío o inexistente devuelve la configuración por defecto.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// HasAPIKey dice si hay credenciales para el generador externo.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Generator.APIKey) != ""
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Generator.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_BASE"); v != "" {
		cfg.Generator.APIBase = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.ABTest.BusinessType == "" {
		cfg.ABTest.BusinessType = "esoteric"
	}
	if len(cfg.ABTest.Tones) == 0 {
		cfg.ABTest.Tones = []string{"emocional", "urgente", "profesional"}
	}
	if cfg.ABTest.NumHeadlines <= 0 {
		cfg.ABTest.NumHeadlines = 15
	}
	if cfg.ABTest.NumDescriptions <= 0 {
		cfg.ABTest.NumDescriptions = 4
	}
	if cfg.ABTest.Workers <= 0 {
		cfg.ABTest.Workers = 3
	}
	if cfg.ABTest.TargetScore <= 0 {
		cfg.ABTest.TargetScore = 8.0
	}
	if cfg.ABTest.MinClicks <= 0 {
		cfg.ABTest.MinClicks = 100
	}
	if cfg.ABTest.MinConfidence <= 0 {
		cfg.ABTest.MinConfidence = 0.95
	}
	if cfg.Generator.Model == "" {
		cfg.Generator.Model = "gpt-4o-mini"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "adlab.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
