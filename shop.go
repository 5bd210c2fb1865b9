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


package poradnyk

import (
	"log/slog"

	"github.com/mycostore/poradnyk/ai"
	"github.com/mycostore/poradnyk/ai/openai"
	"github.com/mycostore/poradnyk/chat"
	"github.com/mycostore/poradnyk/feed"
	"github.com/mycostore/poradnyk/relevance"
	"github.com/mycostore/poradnyk/storage"
	"github.com/mycostore/poradnyk/storage/badger"
)

// Shop bundles the catalog store, the relevance engine, and the AI provider
// behind one handle. It is the top-level entry point for embedding poradnyk
// into an application.
type Shop struct {
	backend     *badger.Backend
	productRepo storage.ProductRepository
	engine      *relevance.Engine
	provider    ai.AIProvider
	logger      *slog.Logger
}

// ShopOption configures a Shop.
type ShopOption func(*shopOptions)

type shopOptions struct {
	aiConfig   *ai.Config
	engineOpts []relevance.Option
	inMemory   bool
}

// WithAIConfig supplies the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) ShopOption {
	return func(o *shopOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEngineOptions forwards options to the relevance engine.
func WithEngineOptions(opts ...relevance.Option) ShopOption {
	return func(o *shopOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithInMemory opens the catalog store in memory, discarding data on Close.
// Useful for tests and demos.
func WithInMemory() ShopOption {
	return func(o *shopOptions) {
		o.inMemory = true
	}
}

// NewShop opens the catalog store at filePath and wires up the engine and
// the AI provider.
func NewShop(filePath string, opts ...ShopOption) (*Shop, error) {
	// Apply options
	options := &shopOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create product repository
	productRepo, err := badger.NewProductRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create relevance engine
	engine, err := relevance.NewEngine(options.engineOpts...)
	if err != nil {
		productRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		productRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Shop{
		backend:     backend,
		productRepo: productRepo,
		engine:      engine,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

// Close releases the AI provider and the catalog store.
func (s *Shop) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := s.productRepo.Close(); err != nil {
		s.logger.Error("error closing product repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ProductRepository exposes the catalog store.
func (s *Shop) ProductRepository() storage.ProductRepository {
	return s.productRepo
}

// Engine exposes the relevance engine.
func (s *Shop) Engine() *relevance.Engine {
	return s.engine
}

// NewAdvisor creates an advisor over this shop's catalog and assistant.
func (s *Shop) NewAdvisor(opts ...chat.Option) (*chat.Advisor, error) {
	return chat.NewAdvisor(s.productRepo, s.engine, s.provider.Assistant(), opts...)
}

// NewImportPipeline creates a feed import pipeline over this shop's catalog.
func (s *Shop) NewImportPipeline(opts ...feed.Option) (*feed.Pipeline, error) {
	return feed.NewPipeline(s.productRepo, opts...)
}
