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


// Package relevance implements the lexical product-relevance engine behind the
// "find me a product" conversation flow.
//
// Given a free-text user message (mixed Ukrainian/Russian, informal, often
// misspelled or declined) and a catalog snapshot, the engine returns a small
// ranked set of plausibly relevant products. The ranked list is fed verbatim
// into a language-model prompt as the only products the model may recommend,
// so false positives are worse than empty results.
//
// The pipeline is a fixed sequence of pure stages:
//
//   - text normalization (lowercase + orthographic folding of UA/RU variants)
//   - tokenization with stopword removal
//   - rule-based suffix stemming
//   - substring-fragment intent detection
//   - additive per-product scoring
//   - adaptive threshold selection, bounded to six results
//
// The engine holds no mutable shared state and performs no I/O; a single
// Engine value is safe for concurrent use from any number of goroutines.
// Cancellation is the caller's responsibility: one Rank call is expected to
// finish well within typical request timeouts for realistic catalog sizes.
package relevance
