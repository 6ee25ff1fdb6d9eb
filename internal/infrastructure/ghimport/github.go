// Package ghimport fetches GitHub issues for import into the schedule.
package ghimport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/google/go-github/v69/github"
	"golang.org/x/oauth2"

	"feasly/pkg/application"
)

// Fetcher retrieves issues from the GitHub API. It implements
// application.IssueFetcher.
type Fetcher struct {
	client      *github.Client
	retryConfig retry.Config
}

// NewFetcher creates a fetcher. An empty token yields an unauthenticated
// client, which is enough for public repositories.
func NewFetcher(ctx context.Context, token string) *Fetcher {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return &Fetcher{
		client: github.NewClient(httpClient),
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  200 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// FetchIssues lists all issues of the repository (open and closed),
// excluding pull requests.
func (f *Fetcher) FetchIssues(ctx context.Context, owner, repo string) ([]application.ExternalIssue, error) {
	retryer := retry.New[[]application.ExternalIssue](f.retryConfig)

	return retryer.Do(ctx, func(ctx context.Context) ([]application.ExternalIssue, error) {
		opts := &github.IssueListByRepoOptions{
			State:       "all",
			ListOptions: github.ListOptions{PerPage: 100},
		}

		var result []application.ExternalIssue
		for {
			issues, resp, err := f.client.Issues.ListByRepo(ctx, owner, repo, opts)
			if err != nil {
				return nil, fmt.Errorf("failed to list issues: %w", err)
			}

			for _, issue := range issues {
				if issue.IsPullRequest() {
					continue
				}
				result = append(result, convertIssue(issue))
			}

			if resp.NextPage == 0 {
				return result, nil
			}
			opts.Page = resp.NextPage
		}
	})
}

func convertIssue(issue *github.Issue) application.ExternalIssue {
	ext := application.ExternalIssue{
		Key:       fmt.Sprintf("gh-%d", issue.GetNumber()),
		Title:     issue.GetTitle(),
		Closed:    issue.GetState() == "closed",
		Assigned:  issue.GetAssignee() != nil,
		CreatedAt: issue.GetCreatedAt().Time,
	}

	for _, label := range issue.Labels {
		ext.Labels = append(ext.Labels, label.GetName())
	}

	if issue.ClosedAt != nil {
		closed := issue.GetClosedAt().Time
		ext.ClosedAt = &closed
	}
	if m := issue.GetMilestone(); m != nil && m.DueOn != nil {
		due := m.GetDueOn().Time
		ext.DueOn = &due
	}

	return ext
}
