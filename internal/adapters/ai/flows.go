package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Flows wraps the two text-generation templates the storefront uses. Both are
// stateless single-shot calls: no retries, no conversation state, a missing
// model output is a hard failure.
type Flows struct {
	client *openai.Client
	model  string
}

func NewFlows(apiKey, model string) *Flows {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Flows{client: openai.NewClient(apiKey), model: model}
}

const describeSystem = "You are an expert copywriter specializing in creating compelling product descriptions. Always answer with valid JSON."

const describeTemplate = `Based on the following informal product note, generate a detailed and engaging product description that will attract customers.

Product Note: %s

Return JSON: {"productDescription": "..."}`

// GenerateProductDescription expands a short informal product note into a
// full description.
func (f *Flows) GenerateProductDescription(ctx context.Context, productNote string) (string, error) {
	var out struct {
		ProductDescription string `json:"productDescription"`
	}
	if err := f.completeJSON(ctx, describeSystem, fmt.Sprintf(describeTemplate, productNote), &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.ProductDescription) == "" {
		return "", fmt.Errorf("model returned no product description")
	}
	return out.ProductDescription, nil
}

const recommendSystem = "You are a product recommendation expert. Always answer with valid JSON."

const recommendTemplate = `Given a product description, you will find similar products and return a list of product descriptions for the recommended products.

Product Description: %s

Please return %d similar products.

Ensure that the products are different from each other and provide a variety of options.

Return JSON: {"recommendedProducts": ["...", "..."]}`

// RecommendSimilarProducts suggests n similar products for a description.
// n defaults to 3 when not positive.
func (f *Flows) RecommendSimilarProducts(ctx context.Context, productDescription string, n int) ([]string, error) {
	if n <= 0 {
		n = 3
	}
	var out struct {
		RecommendedProducts []string `json:"recommendedProducts"`
	}
	if err := f.completeJSON(ctx, recommendSystem, fmt.Sprintf(recommendTemplate, productDescription, n), &out); err != nil {
		return nil, err
	}
	if len(out.RecommendedProducts) == 0 {
		return nil, fmt.Errorf("model returned no recommendations")
	}
	return out.RecommendedProducts, nil
}

func (f *Flows) completeJSON(ctx context.Context, system, user string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty response from model")
	}
	content := stripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("parsing model output: %w", err)
	}
	return nil
}

// Models tend to wrap JSON in markdown fences even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
