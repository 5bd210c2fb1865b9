package badger

import (
	"fmt"

	"github.com/mycostore/poradnyk/core"
)

// Key prefixes for different data types
const (
	productRecordPrefix   = "prodrec"
	productCategoryPrefix = "prodcat"
	productIDSeq          = "prodrecseq"
)

// makeProductKey generates a key for a product by ID.
func makeProductKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", productRecordPrefix, id))
}

// makeProductCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
func makeProductCategoryKey(category string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", productCategoryPrefix, category, id))
}

// makePartialProductCategoryKey generates a partial key for category scans.
// Format: prefix:category:
func makePartialProductCategoryKey(category string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", productCategoryPrefix, category))
}
