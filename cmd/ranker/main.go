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


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mycostore/poradnyk/relevance"
	"github.com/mycostore/poradnyk/storage/badger"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	backend, err := badger.OpenBackend("./catalog_db", false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	engine, err := relevance.NewEngine()
	if err != nil {
		panic(err)
	}

	query := "кордицепс для енергії"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	snapshot, err := repo.Snapshot(ctx)
	if err != nil {
		panic(err)
	}

	ranking := engine.Rank(query, snapshot)
	fmt.Printf("Found %d hits\n", len(ranking))
	for i, hit := range ranking {
		fmt.Printf("%d: '%s' (%d)[%0.1f]\n", i, hit.Product.Name, hit.Product.Id, hit.Score)
	}
}
