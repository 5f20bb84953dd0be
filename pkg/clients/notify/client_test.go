package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSummaryPostsJSON(t *testing.T) {
	var received Summary
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL)
	err := client.SendSummary(context.Background(), Summary{
		FarmName:       "Green Acres",
		TotalRevenue:   850,
		InventoryValue: 7500,
		BusinessHealth: "Growing Steadily",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", received.FarmName)
	assert.Equal(t, 7500.0, received.InventoryValue)
}

func TestSendSummaryRejectedByWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewWebhookClient(srv.URL).SendSummary(context.Background(), Summary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
