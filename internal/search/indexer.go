package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/cyclegear/storefront/internal/models"
)

// IndexCatalog bulk-indexes the static catalog so search serves the same
// products the listing surfaces do. Run once at startup.
func IndexCatalog(ctx context.Context, es *elasticsearch.Client, index string, products []models.Product) error {
	var buf bytes.Buffer
	for _, p := range products {
		meta := map[string]any{
			"index": map[string]any{"_index": index, "_id": strconv.Itoa(p.ID)},
		}
		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("es: encode bulk meta: %w", err)
		}
		if err := json.NewEncoder(&buf).Encode(p); err != nil {
			return fmt.Errorf("es: encode product %d: %w", p.ID, err)
		}
	}

	res, err := es.Bulk(
		bytes.NewReader(buf.Bytes()),
		es.Bulk.WithContext(ctx),
		es.Bulk.WithIndex(index),
		es.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("es: bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: bulk index returned %s", res.Status())
	}
	return nil
}
