package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/ecomstack/order_service/internal/models"
)

// Index upserts an order document so it is findable by customer fields.
func Index(ctx context.Context, es *elasticsearch.Client, index string, order *models.Order) error {
	doc := map[string]any{
		"id":               order.ID,
		"user_id":          order.UserID,
		"customer_name":    order.CustomerName,
		"customer_email":   order.CustomerEmail,
		"shipping_address": order.ShippingAddress,
		"status":           order.Status,
		"total":            order.Total,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("search index: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(body),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(strconv.FormatUint(uint64(order.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("search index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search index: %s", res.Status())
	}
	return nil
}

func Delete(ctx context.Context, es *elasticsearch.Client, index string, orderID uint) error {
	res, err := es.Delete(
		index,
		strconv.FormatUint(uint64(orderID), 10),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search delete: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search delete: %s", res.Status())
	}
	return nil
}

type Hit struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	ShippingAddress string  `json:"shipping_address"`
	Status          string  `json:"status"`
	Total           float64 `json:"total"`
}

// Search runs a fuzzy multi_match over the customer fields, scoped to the
// caller's own orders.
func Search(ctx context.Context, es *elasticsearch.Client, index string, userID uint, query string, from, size int) (int64, []Hit, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"customer_name^2", "customer_email", "shipping_address"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source Hit `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	hits := make([]Hit, len(r.Hits.Hits))
	for i, h := range r.Hits.Hits {
		hits[i] = h.Source
	}
	return r.Hits.Total.Value, hits, nil
}

func IndexName(serviceName string) string {
	name := strings.TrimSpace(serviceName)
	if name == "" {
		return "orders"
	}
	return name + "-orders"
}
