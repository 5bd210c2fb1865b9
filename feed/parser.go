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


package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mycostore/poradnyk/core"
)

// category is a feed category entry, keyed by id from offers.
type category struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

// offer is the superset of offer/item/product fields seen across feed
// dialects. Absent elements decode to empty strings.
type offer struct {
	ID          string `xml:"id,attr"`
	URL         string `xml:"url"`
	Name        string `xml:"name"`
	Model       string `xml:"model"`
	Title       string `xml:"title"`
	Price       string `xml:"price"`
	OldPrice    string `xml:"old_price"`
	PriceOld    string `xml:"price_old"`
	CategoryID  string `xml:"categoryId"`
	Category    string `xml:"category"`
	Picture     string `xml:"picture"`
	Image       string `xml:"image"`
	Description string `xml:"description"`
	Usage       string `xml:"usage"`
	Application string `xml:"application"`
	Composition string `xml:"composition"`
	Ingredients string `xml:"ingredients"`
	Unit        string `xml:"unit"`
}

// ParseCatalog reads a catalog feed and returns the offers as products.
//
// It accepts the common export shapes by scanning for offer/item/product
// elements anywhere in the document, so yml_catalog/shop/offers/offer and
// flat root/items/item both work. Category elements seen before the offers
// resolve categoryId references.
func ParseCatalog(r io.Reader) ([]*core.Product, error) {
	decoder := xml.NewDecoder(r)
	categories := make(map[string]string)
	var products []*core.Product

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "category":
			var c category
			if err := decoder.DecodeElement(&c, &start); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
			}
			categories[c.ID] = strings.TrimSpace(c.Name)

		case "offer", "item", "product":
			var o offer
			if err := decoder.DecodeElement(&o, &start); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
			}
			if product, ok := o.toProduct(categories); ok {
				products = append(products, product)
			}
		}
	}

	return products, nil
}

// toProduct converts an offer into a product. Returns false for entries that
// carry neither a name nor a price.
func (o *offer) toProduct(categories map[string]string) (*core.Product, bool) {
	name := firstNonEmpty(o.Name, o.Model, o.Title)
	price := firstNonEmpty(o.Price, o.PriceOld)
	if name == "" && price == "" {
		return nil, false
	}
	if name == "" {
		name = "Без назви"
	}

	cat := strings.TrimSpace(o.Category)
	if cat == "" && o.CategoryID != "" {
		cat = categories[strings.TrimSpace(o.CategoryID)]
	}

	unit := strings.TrimSpace(o.Unit)
	if unit == "" {
		unit = "шт"
	}

	return &core.Product{
		Id:          offerID(o.ID, o.URL, name),
		Name:        name,
		Category:    cat,
		Description: strings.TrimSpace(o.Description),
		Usage:       strings.TrimSpace(firstNonEmpty(o.Usage, o.Application)),
		Composition: strings.TrimSpace(firstNonEmpty(o.Composition, o.Ingredients)),
		Price:       parsePrice(price),
		OldPrice:    parsePrice(firstNonEmpty(o.OldPrice, o.PriceOld)),
		Image:       strings.TrimSpace(firstNonEmpty(o.Picture, o.Image)),
		Unit:        unit,
	}, true
}

// offerID derives a stable product ID. Numeric offer ids are used directly;
// otherwise the id, url, or name content is hashed so re-imports hit the same
// record.
func offerID(id, url, name string) core.ID {
	id = strings.TrimSpace(id)
	if id != "" {
		if n, err := strconv.ParseUint(id, 10, 64); err == nil && n != 0 {
			return core.ID(n)
		}
		return core.IDFromContent(id)
	}
	if url = strings.TrimSpace(url); url != "" {
		return core.IDFromContent(url)
	}
	return core.IDFromContent(name)
}

// parsePrice reads a feed price, tolerating decimal commas and embedded
// spaces ("1 234,50"). Unparseable prices become 0.
func parsePrice(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
