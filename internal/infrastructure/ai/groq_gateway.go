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

	"finestra/internal/usecase/interfaces"
)

var ErrMissingGroqAPIKey = errors.New("missing GROQ_API_KEY")
var ErrEmptyCompletion = errors.New("empty completion from groq")

const (
	groqChatURL  = "https://api.groq.com/openai/v1/chat/completions"
	groqModel    = "llama-3.1-8b-instant"
	groqTimeout  = 20 * time.Second
	systemPrompt = "Você é um assistente financeiro de pequenas empresas de instalação e reforma. " +
		"Explique em português, em no máximo três frases, por que o custo real do projeto " +
		"desviou do planejado, apontando as categorias que mais contribuíram. Não invente números."
)

type groqChatRequest struct {
	Messages []groqMessage `json:"messages"`
	Model    string        `json:"model"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
}

// GroqGateway asks the Groq chat completion API for a short explanation of
// a cost deviation. In mock mode it returns a canned text, so the endpoint
// stays usable without an API key.
type GroqGateway struct {
	apiKey     string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IExplanationGateway = (*GroqGateway)(nil)

func NewGroqGateway(apiKey string) (*GroqGateway, error) {
	if isExplanationGatewayMockEnabled() {
		log.Printf("[deviation][gateway] mock mode enabled")
		return &GroqGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[deviation][gateway] missing GROQ_API_KEY")
		return nil, ErrMissingGroqAPIKey
	}

	log.Printf("[deviation][gateway] Groq client initialized model=%s", groqModel)
	return &GroqGateway{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: groqTimeout},
	}, nil
}

func (g *GroqGateway) ExplainDeviation(ctx context.Context, input interfaces.DeviationExplanationInput) (string, error) {
	if g.mockMode {
		log.Printf("[deviation][gateway] mock explanation project=%q deviation=%.2f", input.ProjectName, input.DeviationAmount)
		return fmt.Sprintf(
			"O projeto %s custou R$ %.2f contra R$ %.2f planejados, um desvio de %.1f%%.",
			input.ProjectName, input.ActualCost, input.PredictedCost, input.DeviationPercentage,
		), nil
	}

	body, err := json.Marshal(groqChatRequest{
		Model: groqModel,
		Messages: []groqMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(input)},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqChatURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[deviation][gateway] request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Printf("[deviation][gateway] groq api error status=%d body=%s", resp.StatusCode, string(raw))
		return "", fmt.Errorf("groq api error: status %d", resp.StatusCode)
	}

	var parsed groqChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// buildUserPrompt flattens the analysis into plain text. The model only
// ever sees numbers we already computed; it is asked to narrate, not to
// calculate.
func buildUserPrompt(input interfaces.DeviationExplanationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Projeto: %s\n", input.ProjectName)
	if input.ProjectDescription != "" {
		fmt.Fprintf(&b, "Descrição: %s\n", input.ProjectDescription)
	}
	fmt.Fprintf(&b, "Custo planejado: R$ %.2f\n", input.PredictedCost)
	fmt.Fprintf(&b, "Custo real: R$ %.2f\n", input.ActualCost)
	fmt.Fprintf(&b, "Desvio: R$ %.2f (%.1f%%)\n", input.DeviationAmount, input.DeviationPercentage)
	if len(input.Categories) > 0 {
		b.WriteString("Por categoria (planejado / real):\n")
		for _, c := range input.Categories {
			fmt.Fprintf(&b, "- %s: R$ %.2f / R$ %.2f\n", c.Category, c.Predicted, c.Actual)
		}
	}
	return b.String()
}

func isExplanationGatewayMockEnabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("EXPLANATION_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
