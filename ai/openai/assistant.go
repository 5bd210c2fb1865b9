// Copyright 2025 Mycostore
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mycostore/poradnyk/ai"
	"github.com/mycostore/poradnyk/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Assistant implements ai.Assistant using OpenAI-compatible chat APIs.
type Assistant struct {
	client      llms.Model
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

// newAssistant is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAssistant(config *ai.Config) (*Assistant, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Assistant{
		client:      client,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-assistant"),
	}, nil
}

// NewAssistant creates a new assistant using the provided configuration.
//
// Returns ai.Assistant interface to enforce abstraction.
func NewAssistant(config *ai.Config) (ai.Assistant, error) {
	return newAssistant(config)
}

// Reply generates a recommendation for the customer message, constrained to
// the provided product cards.
func (a *Assistant) Reply(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
	systemPrompt, err := buildAdvisorPrompt(cards)
	if err != nil {
		return "", err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(message),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content,
		llms.WithTemperature(a.temperature),
		llms.WithMaxTokens(a.maxTokens))
	if err != nil {
		a.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		a.logger.Debug("no choices returned from model")
		return "", errors.New("openai: empty response from model")
	}

	reply := strings.TrimSpace(response.Choices[0].Content)
	if reply == "" {
		return "", errors.New("openai: blank reply from model")
	}

	a.logger.Debug("generated reply", "cards", len(cards), "chars", len(reply))
	return reply, nil
}
