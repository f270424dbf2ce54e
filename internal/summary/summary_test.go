package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf_x", r.Header.Get("Authorization"))
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "long release notes", req.Inputs)
		assert.Equal(t, parameters{MinLength: 20, MaxLength: 50}, req.Parameters)
		w.Write([]byte(`[{"summary_text":"short notes"}]`))
	}))
	defer srv.Close()

	c := &Client{Endpoint: srv.URL, Token: "hf_x", MinLength: 20, MaxLength: 50}
	got, err := c.Summarize(context.Background(), "long release notes")
	require.NoError(t, err)
	assert.Equal(t, "short notes", got)
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"model loading", http.StatusServiceUnavailable, `{"error":"Model is loading"}`, "Model is loading"},
		{"api error payload", http.StatusOK, `{"error":"input too long"}`, "input too long"},
		{"empty", http.StatusOK, `[]`, "empty summary"},
		{"garbage", http.StatusOK, `<html>`, "decoding summary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := &Client{Endpoint: srv.URL}
			_, err := c.Summarize(context.Background(), "text")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	c := &Client{Endpoint: "http://127.0.0.1:0"}
	_, err := c.Summarize(context.Background(), "")
	assert.Error(t, err)
}

func TestOrMessage(t *testing.T) {
	assert.Equal(t, "ok", OrMessage("ok", nil))
	assert.Equal(t, "Error summarizing content. boom", OrMessage("", errors.New("boom")))
}
