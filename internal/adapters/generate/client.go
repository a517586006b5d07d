package generate

// client.go — cliente HTTP de generación vía API de chat-completions.
//
// El proveedor de IA es un colaborador opcional: si falla o no hay API key,
// el caller usa el generador por plantillas. Las respuestas se recortan a
// los límites de caracteres antes de devolverse, el modelo no siempre los
// respeta.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/saltbalente/adlab/internal/domain"
	"github.com/saltbalente/adlab/internal/ports"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	// Límite conservador por debajo del tier básico del proveedor.
	requestsPerSec = 2

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client implementa ports.Generator contra una API de chat-completions.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *rate.Limiter
}

// NewClient crea un Client. baseURL y model vacíos usan los defaults del
// proveedor; apiKey es obligatoria para que las requests se acepten.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		limiter: rate.NewLimiter(requestsPerSec, 2),
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// generatedPayload es el JSON que se le pide al modelo.
type generatedPayload struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// Generate pide al modelo titulares y descripciones en JSON y recorta el
// resultado a los límites de caracteres.
func (c *Client) Generate(ctx context.Context, req ports.GenerateRequest) (ports.GeneratedAd, error) {
	prompt := buildPrompt(req)

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.8,
		ResponseFormat: &respFormat{Type: "json_object"},
	}

	var resp chatResponse
	if err := c.post(ctx, c.baseURL+"/chat/completions", body, &resp); err != nil {
		return ports.GeneratedAd{}, fmt.Errorf("generate.Generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ports.GeneratedAd{}, fmt.Errorf("generate.Generate: respuesta sin choices")
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return ports.GeneratedAd{}, fmt.Errorf("generate.Generate: parse content: %w", err)
	}

	ad := ports.GeneratedAd{}
	for _, h := range payload.Headlines {
		if h = strings.TrimSpace(h); h != "" {
			ad.Headlines = append(ad.Headlines, clip(h, domain.HeadlineMaxLen))
		}
	}
	for _, d := range payload.Descriptions {
		if d = strings.TrimSpace(d); d != "" {
			ad.Descriptions = append(ad.Descriptions, clip(d, domain.DescriptionMaxLen))
		}
	}

	if len(ad.Headlines) == 0 && len(ad.Descriptions) == 0 {
		return ports.GeneratedAd{}, fmt.Errorf("generate.Generate: el modelo no devolvió texto")
	}
	return ad, nil
}

const systemPrompt = "Eres un redactor de anuncios de Google Ads en español. " +
	"Respondes solo JSON con las claves headlines y descriptions. " +
	"Titulares de máximo 30 caracteres, descripciones de máximo 90. " +
	"Sin signos de exclamación ni interrogación."

func buildPrompt(req ports.GenerateRequest) string {
	return fmt.Sprintf(
		"Genera %d titulares y %d descripciones con tono %s para las keywords: %s.",
		req.NumHeadlines, req.NumDescriptions, req.Tone, strings.Join(req.Keywords, ", "))
}

// post hace un POST JSON con rate limiting y retries.
func (c *Client) post(ctx context.Context, url string, body, out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := c.do(ctx, url, body)
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			slog.Warn("rate limited by provider", "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("server error %d after %d retries", resp.StatusCode, maxRetries)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("client error %d: %s", resp.StatusCode, string(b))
		}

		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("exhausted %d retries", maxRetries)
}

func (c *Client) do(ctx context.Context, url string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return c.http.Do(req)
}

// sleep espera con backoff exponencial, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * baseRetryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
