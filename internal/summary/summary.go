// Package summary shortens release notes through a hosted summarization
// model (Hugging Face Inference API).
package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/youruser/postgen/internal/util"
)

type Client struct {
	Endpoint  string
	Token     string
	MinLength int
	MaxLength int
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type result struct {
	SummaryText string `json:"summary_text"`
}

// Summarize returns a summary of text bounded by MinLength and MaxLength
// tokens.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", errors.New("nothing to summarize")
	}
	header := http.Header{}
	if c.Token != "" {
		header.Set("Authorization", "Bearer "+c.Token)
	}
	body, err := util.PostJSON(ctx, c.Endpoint, header, request{
		Inputs:     text,
		Parameters: parameters{MinLength: c.MinLength, MaxLength: c.MaxLength},
	})
	if err != nil {
		return "", err
	}

	var out []result
	if err := json.Unmarshal(body, &out); err != nil {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", errors.New(apiErr.Error)
		}
		return "", fmt.Errorf("decoding summary: %w", err)
	}
	if len(out) == 0 || out[0].SummaryText == "" {
		return "", errors.New("empty summary")
	}
	return out[0].SummaryText, nil
}

// OrMessage turns a failed summarization into display text.
func OrMessage(summary string, err error) string {
	if err != nil {
		return fmt.Sprintf("Error summarizing content. %v", err)
	}
	return summary
}
