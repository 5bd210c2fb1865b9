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


package mock

import "github.com/mycostore/poradnyk/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	assistant *MockAssistant
}

// NewMockProvider creates a new mock provider with a default mock assistant.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockAssistant() to access the concrete type for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		assistant: NewMockAssistant(),
	}
}

// NewMockProviderWithAssistant creates a mock provider with a custom mock
// assistant. This allows full control over the assistant's behavior.
func NewMockProviderWithAssistant(assistant *MockAssistant) ai.AIProvider {
	return &MockProvider{
		assistant: assistant,
	}
}

// Assistant returns the mock assistant.
func (p *MockProvider) Assistant() ai.Assistant {
	return p.assistant
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockAssistant returns the underlying mock assistant for test assertions.
func (p *MockProvider) GetMockAssistant() *MockAssistant {
	return p.assistant
}
