// Package release fetches the latest published release of a GitHub repository.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/youruser/postgen/internal/util"
)

var (
	ErrNoReleases  = errors.New("no releases found")
	ErrInvalidRepo = errors.New("repository must be in the form owner/name")
)

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

type Release struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Client struct {
	BaseURL      string
	Token        string
	ContentLimit int
}

// ValidateRepo checks an "owner/name" identifier.
func ValidateRepo(repo string) error {
	if !repoPattern.MatchString(repo) || strings.Contains(repo, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidRepo, repo)
	}
	return nil
}

// PageURL is the public page listing the releases of repo.
func PageURL(repo string) string {
	return "https://github.com/" + repo + "/releases"
}

// Latest returns the first release listed for repo, its body cut to
// ContentLimit characters. A release without a title or body counts as
// missing.
func (c *Client) Latest(ctx context.Context, repo string) (*Release, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		header.Set("Authorization", "Bearer "+c.Token)
	}
	url := strings.TrimRight(c.BaseURL, "/") + "/repos/" + repo + "/releases"
	body, err := util.GetBytes(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("fetching releases for %s: %w", repo, err)
	}

	var releases []struct {
		Name string `json:"name"`
		Body string `json:"body"`
	}
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("decoding releases for %s: %w", repo, err)
	}
	if len(releases) == 0 || releases[0].Name == "" || releases[0].Body == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoReleases, repo)
	}
	latest := releases[0]
	content := latest.Body
	if c.ContentLimit > 0 {
		content = util.Truncate(content, c.ContentLimit)
	}
	return &Release{Title: latest.Name, Content: content}, nil
}
