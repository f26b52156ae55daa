// Package oracle is the JSON-over-HTTP client for the dispatch assistant.
// Everything it returns is advisory; callers revalidate identifiers against
// live state and fall back to deterministic logic on any failure.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client implements ports.DispatchOracle against the oracle service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an oracle client. A non-positive timeout falls back to
// the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type orderPayload struct {
	ID         string  `json:"id"`
	Number     string  `json:"number"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	PriceCents int64   `json:"price_cents"`
}

type courierPayload struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Status string  `json:"status"`
}

type productPayload struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Stock         int     `json:"stock"`
	AvgDailySales float64 `json:"avg_daily_sales"`
}

func toOrderPayload(o *order.Order) orderPayload {
	return orderPayload{
		ID:         o.ID().String(),
		Number:     o.Number(),
		Address:    o.Address(),
		Lat:        o.Location().Lat(),
		Lng:        o.Location().Lng(),
		PriceCents: o.Price().Cents(),
	}
}

func toCourierPayload(c *courier.Courier) courierPayload {
	return courierPayload{
		ID:     c.ID().String(),
		Name:   c.Name(),
		Lat:    c.Location().Lat(),
		Lng:    c.Location().Lng(),
		Status: c.Status().String(),
	}
}

func toOrderPayloads(orders []*order.Order) []orderPayload {
	payloads := make([]orderPayload, len(orders))
	for i, o := range orders {
		payloads[i] = toOrderPayload(o)
	}
	return payloads
}

func toCourierPayloads(couriers []*courier.Courier) []courierPayload {
	payloads := make([]courierPayload, len(couriers))
	for i, c := range couriers {
		payloads[i] = toCourierPayload(c)
	}
	return payloads
}

// SuggestAssignment proposes a courier for the order from the given pool.
func (c *Client) SuggestAssignment(
	ctx context.Context,
	o *order.Order,
	pool []*courier.Courier,
) (string, error) {
	request := struct {
		Order    orderPayload     `json:"order"`
		Couriers []courierPayload `json:"couriers"`
	}{
		Order:    toOrderPayload(o),
		Couriers: toCourierPayloads(pool),
	}

	var response struct {
		CourierID string `json:"courier_id"`
	}

	if err := c.post(ctx, "/v1/assignment", request, &response); err != nil {
		return "", err
	}

	return response.CourierID, nil
}

// ParseVoiceCommand interprets a spoken operator command.
func (c *Client) ParseVoiceCommand(
	ctx context.Context,
	transcript string,
	pending []*order.Order,
	roster []*courier.Courier,
) (ports.VoiceDispatchResult, error) {
	request := struct {
		Transcript    string           `json:"transcript"`
		PendingOrders []orderPayload   `json:"pending_orders"`
		Couriers      []courierPayload `json:"couriers"`
	}{
		Transcript:    transcript,
		PendingOrders: toOrderPayloads(pending),
		Couriers:      toCourierPayloads(roster),
	}

	var response struct {
		OrderID   string `json:"order_id"`
		CourierID string `json:"courier_id"`
		Success   bool   `json:"success"`
		Message   string `json:"message"`
	}

	if err := c.post(ctx, "/v1/voice", request, &response); err != nil {
		return ports.VoiceDispatchResult{}, err
	}

	return ports.VoiceDispatchResult{
		OrderID:   response.OrderID,
		CourierID: response.CourierID,
		Success:   response.Success,
		Message:   response.Message,
	}, nil
}

// SequenceRoute proposes a visiting sequence for the courier's drops.
func (c *Client) SequenceRoute(
	ctx context.Context,
	courierAgg *courier.Courier,
	inRoute []*order.Order,
) (ports.RouteSuggestionResult, error) {
	request := struct {
		Courier courierPayload `json:"courier"`
		Orders  []orderPayload `json:"orders"`
	}{
		Courier: toCourierPayload(courierAgg),
		Orders:  toOrderPayloads(inRoute),
	}

	var response struct {
		OrderedIDs   []string `json:"ordered_ids"`
		TotalKm      float64  `json:"total_km"`
		TotalMinutes float64  `json:"total_minutes"`
		Advice       string   `json:"advice"`
	}

	if err := c.post(ctx, "/v1/route", request, &response); err != nil {
		return ports.RouteSuggestionResult{}, err
	}

	return ports.RouteSuggestionResult{
		OrderedIDs:   response.OrderedIDs,
		TotalKm:      response.TotalKm,
		TotalMinutes: response.TotalMinutes,
		Advice:       response.Advice,
	}, nil
}

// PredictRestock projects inventory coverage for a store's catalog.
func (c *Client) PredictRestock(
	ctx context.Context,
	catalog []*product.Product,
) ([]ports.RestockForecastItem, error) {
	payloads := make([]productPayload, len(catalog))
	for i, p := range catalog {
		payloads[i] = productPayload{
			ID:            p.ID().String(),
			Name:          p.Name(),
			Stock:         p.Stock(),
			AvgDailySales: p.AvgDailySales(),
		}
	}

	request := struct {
		Products []productPayload `json:"products"`
	}{Products: payloads}

	var response struct {
		Items []struct {
			ProductID              string  `json:"product_id"`
			EstimatedDaysRemaining float64 `json:"estimated_days_remaining"`
			RecommendedRestock     int     `json:"recommended_restock"`
			Reasoning              string  `json:"reasoning"`
		} `json:"items"`
	}

	if err := c.post(ctx, "/v1/restock", request, &response); err != nil {
		return nil, err
	}

	items := make([]ports.RestockForecastItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = ports.RestockForecastItem{
			ProductID:              item.ProductID,
			EstimatedDaysRemaining: item.EstimatedDaysRemaining,
			RecommendedRestock:     item.RecommendedRestock,
			Reasoning:              item.Reasoning,
		}
	}

	return items, nil
}

// post sends the request body and decodes the response into out. Any
// non-200 status is an error carrying a truncated response excerpt.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("oracle returned %d: %s", resp.StatusCode, string(excerpt))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode oracle response: %w", err)
	}

	return nil
}
