package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIClient(baseURL string) *AIClient {
	return &AIClient{
		apiKey:      "test-key",
		model:       "llama-3.1-8b-instant",
		baseURL:     baseURL,
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestBuildTripPrompt(t *testing.T) {
	assert.Equal(t,
		"Create a 3-day trip plan for Tokyo in April.",
		buildTripPrompt("Tokyo", 3, "April"),
	)
}

func TestGenerateTripPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-8b-instant", req.Model)
		assert.Equal(t, 0.7, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "travel advisor")
		assert.Contains(t, req.Messages[0].Content, "Cultural etiquette")
		assert.Equal(t, "Create a 3-day trip plan for Tokyo in April.", req.Messages[1].Content)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Day 1: Asakusa..."}}]}`))
	}))
	defer srv.Close()

	plan, err := newTestAIClient(srv.URL).GenerateTripPlan("Tokyo", 3, "April")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Asakusa...", plan)
}

func TestGenerateTripPlanNoKey(t *testing.T) {
	c := newTestAIClient("http://localhost:0")
	c.apiKey = ""

	_, err := c.GenerateTripPlan("Tokyo", 3, "April")
	assert.Error(t, err)
}

func TestGenerateTripPlanEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAIClient(srv.URL).GenerateTripPlan("Tokyo", 3, "April")
	assert.Error(t, err)
}

func TestGenerateTripPlanUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAIClient(srv.URL).GenerateTripPlan("Tokyo", 3, "April")
	assert.Error(t, err)
}
