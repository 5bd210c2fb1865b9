// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Assistant and ai.AIProvider
// for use in unit tests. The mocks allow tests to run without external AI
// service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	reply, err := mockProvider.Assistant().Reply(ctx, "test", cards)
//
//	// Custom behavior injection
//	assistant := mock.NewMockAssistant()
//	assistant.ReplyFunc = func(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
//	    return "custom reply", nil
//	}
package mock
