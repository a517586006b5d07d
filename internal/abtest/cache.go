package abtest

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/saltbalente/adlab/internal/domain"
)

// batchCache memoiza variaciones generadas por entrada normalizada. Dos
// peticiones con las mismas keywords y tonos (en cualquier orden y
// capitalización) comparten entrada. Escrituras concurrentes de la misma
// clave: gana la última, ambas son equivalentes.
type batchCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Variation
}

func newBatchCache() *batchCache {
	return &batchCache{entries: make(map[string][]domain.Variation)}
}

// cacheKey normaliza la entrada y devuelve su hash SHA-256 en hex.
func cacheKey(keywords, tones []string, numHeadlines, numDescriptions int) string {
	normKeywords := normalizeTerms(keywords)
	normTones := normalizeTerms(tones)

	var sb strings.Builder
	sb.WriteString(strings.Join(normKeywords, ","))
	sb.WriteString("|")
	sb.WriteString(strings.Join(normTones, ","))
	sb.WriteString("|")
	sb.WriteString(strconv.Itoa(numHeadlines))
	sb.WriteString("|")
	sb.WriteString(strconv.Itoa(numDescriptions))

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func (c *batchCache) get(key string) ([]domain.Variation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vs, ok := c.entries[key]
	return vs, ok
}

func (c *batchCache) put(key string, vs []domain.Variation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = vs
}
