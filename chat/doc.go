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


// Package chat provides the conversational advisory layer.
//
// The Advisor type connects the pieces end to end: it fetches a catalog
// snapshot, ranks it against the customer message with the relevance engine,
// converts the surviving products into cards, and asks the assistant for a
// conversational recommendation constrained to those cards.
//
// The advisory layer degrades gracefully. A failing language-model call is
// never surfaced as an error: the customer still receives the ranked cards,
// with a fixed fallback text in place of generated prose. An empty ranking
// yields a fixed clarifying message instead.
package chat
