package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got pushMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Send(context.Background(), []string{"ExponentPushToken[x]"}, "Loan Application", "You are eligible for a loan", map[string]string{"type": "loan"})
	require.NoError(t, err)
	require.Equal(t, []string{"ExponentPushToken[x]"}, got.To)
	require.Equal(t, "Loan Application", got.Title)
	require.Equal(t, "default", got.Sound)
	require.Equal(t, "loan", got.Data["type"])
}

func TestClient_Send_NoTokensIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Send(context.Background(), nil, "t", "b", nil))
	require.False(t, called)
}

func TestClient_Send_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Send(context.Background(), []string{"tok"}, "t", "b", nil)
	require.Error(t, err)
}
