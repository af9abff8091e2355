package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Analyze(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sentiment", r.URL.Path)

		var req struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "what a great day", req.Content)

		json.NewEncoder(w).Encode(map[string]string{"sentiment": "positive"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	sentiment, err := client.Analyze(context.Background(), "what a great day")
	require.NoError(t, err)
	require.Equal(t, "positive", sentiment)
}

func TestClient_AnalyzeServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), "hello")
	require.Error(t, err)
}

func TestClient_AnalyzeUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), "hello")
	require.Error(t, err)
}
