package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/time/rate"

	"github.com/abhineethp/repostats/internal/contrib"
)

// Fetcher lists the commits of the configured repository inside a window.
type Fetcher interface {
	ListCommits(ctx context.Context, w contrib.DateWindow) ([]contrib.CommitRecord, error)
}

// Client wraps the GitHub API client with rate limiting for one fixed
// owner/repo pair.
type Client struct {
	client      *github.Client
	rateLimiter *rate.Limiter
	owner       string
	repo        string
}

// NewClient creates a GitHub client for owner/repo. The token is optional;
// unauthenticated calls use GitHub's anonymous rate limits.
func NewClient(owner, repo, token string, rateLimit int) *Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		owner:       owner,
		repo:        repo,
	}
}

// ListCommits retrieves every commit in the window, following pagination,
// and keeps only the author fields the aggregators consume. A single
// attempt per call; any API or transport error aborts the whole listing.
func (c *Client) ListCommits(ctx context.Context, w contrib.DateWindow) ([]contrib.CommitRecord, error) {
	opts := &github.CommitsListOptions{
		Since: w.Since,
		Until: w.Until,
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var records []contrib.CommitRecord

	for {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		commits, resp, err := c.client.Repositories.ListCommits(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("fetch commits: %w", err)
		}

		for _, commit := range commits {
			author := commit.GetCommit().GetAuthor()
			records = append(records, contrib.CommitRecord{
				AuthorName:  author.GetName(),
				AuthorEmail: author.GetEmail(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return records, nil
}
