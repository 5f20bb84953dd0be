// Package notify posts report summaries to an operator-configured webhook.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Summary is the payload delivered after a scheduled report export.
type Summary struct {
	FarmName       string  `json:"farm_name"`
	GeneratedAt    string  `json:"generated_at"`
	TotalRevenue   float64 `json:"total_revenue"`
	InventoryValue float64 `json:"inventory_value"`
	BusinessHealth string  `json:"business_health"`
}

// Client delivers summaries over HTTP.
type Client interface {
	SendSummary(ctx context.Context, summary Summary) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier targeting the given URL.
func NewWebhookClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{httpClient: restyClient, url: url}
}

// SendSummary posts the summary as JSON.
func (c *WebhookClient) SendSummary(ctx context.Context, summary Summary) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(summary).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send report summary: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook rejected summary: status %d", resp.StatusCode())
	}
	return nil
}
