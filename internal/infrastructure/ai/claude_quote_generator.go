package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"metalmetrics/internal/domain/entities"
	"metalmetrics/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")
var ErrQuoteServiceUnavailable = errors.New("quote service unavailable")
var ErrUnparsableQuoteResponse = errors.New("unparsable quote response")

const (
	messagesEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-6"
	defaultMaxTokens = 1024
	maxRetries       = 2
)

// ClaudeQuoteGenerator produces estimate suggestions through the Anthropic
// Messages API. The model is asked for a strict JSON object; the suggestion
// is then treated as ordinary estimate input downstream.
//
// Mock mode (AI_QUOTE_MOCK) skips the network entirely and derives a
// deterministic suggestion from the request, which keeps local development
// and demos keyless.
type ClaudeQuoteGenerator struct {
	apiKey   string
	model    string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IQuoteGenerator = (*ClaudeQuoteGenerator)(nil)

func NewClaudeQuoteGenerator() (*ClaudeQuoteGenerator, error) {
	if isQuoteMockEnabled() {
		log.Printf("[quote][generator] mock mode enabled")
		return &ClaudeQuoteGenerator{mockMode: true}, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		log.Printf("[quote][generator] missing ANTHROPIC_API_KEY")
		return nil, ErrMissingAnthropicAPIKey
	}

	model := strings.TrimSpace(os.Getenv("ANTHROPIC_MODEL"))
	if model == "" {
		model = defaultModel
	}
	log.Printf("[quote][generator] anthropic client initialized model=%s", model)

	return &ClaudeQuoteGenerator{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// quotePayload is the JSON schema the model is instructed to emit.
type quotePayload struct {
	EstimatedLaborHours   decimal.Decimal `json:"estimatedLaborHours"`
	EstimatedMaterialCost decimal.Decimal `json:"estimatedMaterialCost"`
	EstimatedMachineHours decimal.Decimal `json:"estimatedMachineHours"`
	OverheadPercent       decimal.Decimal `json:"overheadPercent"`
	SuggestedQuotePrice   decimal.Decimal `json:"suggestedQuotePrice"`
	Reasoning             string          `json:"reasoning"`
	Assumptions           []string        `json:"assumptions"`
	ConfidenceLevel       string          `json:"confidenceLevel"`
}

func (g *ClaudeQuoteGenerator) GenerateQuote(ctx context.Context, req entities.AIQuoteRequest) (entities.AIQuoteSuggestion, string, error) {
	userPrompt := buildUserPrompt(req)
	snapshot := marshalSnapshot(userPrompt, "")

	if g != nil && g.mockMode {
		log.Printf("[quote][generator] mock generate quantity=%d complexity=%s", req.Quantity, req.Complexity)
		return mockSuggestion(req), snapshot, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[quote][generator] generator not configured")
		return entities.AIQuoteSuggestion{}, snapshot, ErrQuoteServiceUnavailable
	}

	body, err := json.Marshal(map[string]any{
		"model":      g.model,
		"max_tokens": defaultMaxTokens,
		"system":     systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	})
	if err != nil {
		return entities.AIQuoteSuggestion{}, snapshot, err
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		log.Printf("[quote][generator] calling anthropic attempt=%d", attempt+1)

		raw, status, err := g.post(ctx, body)
		if err != nil {
			if attempt < maxRetries {
				continue
			}
			log.Printf("[quote][generator] request failed err=%v", err)
			return entities.AIQuoteSuggestion{}, snapshot, err
		}

		if status == http.StatusTooManyRequests && attempt < maxRetries {
			delay := time.Duration(1<<(attempt+1)) * time.Second
			log.Printf("[quote][generator] rate limited, retrying in %s", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return entities.AIQuoteSuggestion{}, snapshot, ctx.Err()
			}
			continue
		}
		if status != http.StatusOK {
			log.Printf("[quote][generator] anthropic returned status=%d body=%s", status, truncate(string(raw), 512))
			return entities.AIQuoteSuggestion{}, snapshot, fmt.Errorf("%w: http %d", ErrQuoteServiceUnavailable, status)
		}

		payload, err := parseResponse(raw)
		if err != nil {
			log.Printf("[quote][generator] parse failed err=%v", err)
			return entities.AIQuoteSuggestion{}, snapshot, err
		}

		snapshot = marshalSnapshot(userPrompt, string(raw))
		log.Printf("[quote][generator] generate success confidence=%s", payload.ConfidenceLevel)
		return entities.AIQuoteSuggestion{
			LaborHours:          payload.EstimatedLaborHours,
			MaterialCost:        payload.EstimatedMaterialCost,
			MachineHours:        payload.EstimatedMachineHours,
			OverheadPercent:     payload.OverheadPercent,
			SuggestedQuotePrice: payload.SuggestedQuotePrice,
			Reasoning:           payload.Reasoning,
			Assumptions:         payload.Assumptions,
			ConfidenceLevel:     payload.ConfidenceLevel,
		}, snapshot, nil
	}

	return entities.AIQuoteSuggestion{}, snapshot, ErrQuoteServiceUnavailable
}

func (g *ClaudeQuoteGenerator) post(ctx context.Context, body []byte) ([]byte, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}

// parseResponse pulls the first text block out of the Messages API response
// and decodes the JSON object it carries, tolerating markdown code fences.
func parseResponse(raw []byte) (quotePayload, error) {
	var envelope struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return quotePayload{}, ErrUnparsableQuoteResponse
	}

	var text string
	for _, block := range envelope.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return quotePayload{}, ErrUnparsableQuoteResponse
	}

	if strings.HasPrefix(text, "```") {
		if i := strings.IndexByte(text, '\n'); i > 0 {
			text = text[i+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var payload quotePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return quotePayload{}, ErrUnparsableQuoteResponse
	}
	return payload, nil
}

// mockSuggestion derives a deterministic estimate from the request so mock
// mode exercises the full flow with repeatable numbers.
func mockSuggestion(req entities.AIQuoteRequest) entities.AIQuoteSuggestion {
	qty := decimal.NewFromInt(int64(req.Quantity))
	if !qty.IsPositive() {
		qty = decimal.NewFromInt(1)
	}

	multiplier := decimal.NewFromInt(1)
	switch strings.ToLower(strings.TrimSpace(req.Complexity)) {
	case "medium":
		multiplier = decimal.RequireFromString("1.5")
	case "complex", "high":
		multiplier = decimal.NewFromInt(2)
	}

	perPartLabor := decimal.RequireFromString("0.25")
	perPartMachine := decimal.RequireFromString("0.1")
	perPartMaterial := decimal.NewFromInt(12)

	laborHours := perPartLabor.Mul(qty).Mul(multiplier)
	machineHours := perPartMachine.Mul(qty).Mul(multiplier)
	materialCost := perPartMaterial.Mul(qty).Mul(multiplier)

	cost := laborHours.Mul(req.LaborRate).
		Add(machineHours.Mul(req.MachineRate)).
		Add(materialCost)
	cost = cost.Add(cost.Mul(req.OverheadPercent).Div(decimal.NewFromInt(100)))

	return entities.AIQuoteSuggestion{
		LaborHours:          laborHours,
		MaterialCost:        materialCost,
		MachineHours:        machineHours,
		OverheadPercent:     req.OverheadPercent,
		SuggestedQuotePrice: cost.Mul(decimal.RequireFromString("1.2")).Round(2),
		Reasoning:           "Mock estimate derived from quantity and complexity.",
		Assumptions:         []string{"Mock mode: no AI call was made"},
		ConfidenceLevel:     "Low",
	}
}

func marshalSnapshot(userPrompt, rawResponse string) string {
	snapshot := map[string]string{
		"systemPrompt": systemPrompt,
		"userPrompt":   userPrompt,
	}
	if rawResponse != "" {
		snapshot["aiResponse"] = rawResponse
	}
	b, err := json.Marshal(snapshot)
	if err != nil {
		return ""
	}
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func isQuoteMockEnabled() bool {
	for _, key := range []string{"AI_QUOTE_MOCK", "ANTHROPIC_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
