package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It comes from the shop feed for catalog items, from database sequences,
// or from content-based hashing for feed offers without a numeric id.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Product is a read-only snapshot of a catalog item.
// Any of the text fields may be empty; the relevance engine treats missing
// fields as empty strings.
type Product struct {
	Id          ID
	Name        string
	Category    string
	Description string
	Usage       string // Dosage and usage instructions
	Composition string // Ingredient list
	Price       float64
	OldPrice    float64 // Pre-discount price, 0 when there is no discount
	Image       string  // Primary image URL
	Unit        string  // Sale unit, e.g. "шт", "г"
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// ScoredProduct pairs a catalog item with its relevance score.
// Only items with Score > 0 are candidates; the score has no upper bound.
type ScoredProduct struct {
	Product *Product
	Score   float64
}

// Ranking is an ordered sequence of scored products, descending by score,
// bounded to at most MaxRankingSize entries. An empty ranking is a normal
// outcome meaning "no lexical match".
type Ranking []ScoredProduct

// MaxRankingSize bounds how many products a ranking may carry.
const MaxRankingSize = 6

// MaxCardDescription is the longest description, in runes, that a ProductCard
// carries downstream.
const MaxCardDescription = 280

// ProductCard is the thin payload handed to the prompt layer and to UI cards.
type ProductCard struct {
	Id          ID      `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	OldPrice    float64 `json:"old_price,omitempty"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CardForProduct builds the downstream payload for a product, truncating the
// description to MaxCardDescription runes.
func CardForProduct(p *Product) ProductCard {
	desc := p.Description
	if runes := []rune(desc); len(runes) > MaxCardDescription {
		desc = string(runes[:MaxCardDescription])
	}
	return ProductCard{
		Id:          p.Id,
		Name:        p.Name,
		Price:       p.Price,
		OldPrice:    p.OldPrice,
		Image:       p.Image,
		Description: desc,
	}
}
