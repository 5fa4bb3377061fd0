package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeModel) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestGateway(model completionModel) *Gateway {
	return &Gateway{
		model:     model,
		provider:  "openai",
		modelName: "test-model",
		maxTokens: 1024,
		timeout:   5 * time.Second,
		logger:    zap.NewNop(),
	}
}

func TestGatewayComplete(t *testing.T) {
	model := &fakeModel{response: "  some text  "}
	g := newTestGateway(model)

	result := g.Complete(context.Background(), "prompt")
	assert.Equal(t, "some text", result)
	assert.Equal(t, []string{"prompt"}, model.prompts)
}

func TestGatewayCompleteFailureReturnsEmpty(t *testing.T) {
	g := newTestGateway(&fakeModel{err: errors.New("rate limited")})

	assert.Equal(t, "", g.Complete(context.Background(), "prompt"))
}

func TestGatewayCompleteArrayFailureReturnsEmptyArray(t *testing.T) {
	g := newTestGateway(&fakeModel{err: errors.New("network down")})

	assert.Equal(t, "[]", g.CompleteArray(context.Background(), "prompt"))
}

func TestNewGatewayUnsupportedProvider(t *testing.T) {
	_, err := NewGateway(config.LLMConfig{Provider: "bedrock"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewGatewayMissingOpenAIKey(t *testing.T) {
	_, err := NewGateway(config.LLMConfig{Provider: "openai", Model: "gpt-4o-mini"}, zap.NewNop())
	assert.Error(t, err)
}

func TestNewGatewayMissingOllamaURL(t *testing.T) {
	_, err := NewGateway(config.LLMConfig{Provider: "ollama", Model: "llama3"}, zap.NewNop())
	assert.Error(t, err)
}
