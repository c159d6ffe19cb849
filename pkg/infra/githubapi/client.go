package githubapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/labelbot/pkg/domain/interfaces"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"
)

const (
	listPerPage = 100
	maxRetries  = 3
)

// Client talks to the GitHub REST API with a personal access token
type Client struct {
	client *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

func New(ctx context.Context, token types.GitHubToken) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: string(token),
	})

	return &Client{
		client: github.NewClient(oauth2.NewClient(ctx, ts)),
	}, nil
}

// NewWithClient is for testing with a pre-built go-github client
func NewWithClient(client *github.Client) *Client {
	return &Client{client: client}
}

func splitFullName(repoFullName string) (string, string, error) {
	parts := strings.SplitN(repoFullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.New("repo full name must be 'owner/name'", goerr.V("repo", repoFullName))
	}
	return parts[0], parts[1], nil
}

func retryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = 30 * time.Second
	return backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx)
}

// asRetryable marks client errors other than rate limiting as permanent so the
// backoff loop does not retry requests that can never succeed.
func asRetryable(resp *github.Response, err error) error {
	if err == nil {
		return nil
	}
	if resp != nil &&
		resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		resp.StatusCode != http.StatusTooManyRequests &&
		resp.StatusCode != http.StatusForbidden {
		return backoff.Permanent(err)
	}
	return err
}

// Validate checks the credential by fetching the authenticated user
func (x *Client) Validate(ctx context.Context) error {
	user, resp, err := x.client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return goerr.Wrap(types.ErrAuth, "credential rejected by GitHub")
		}
		return goerr.Wrap(err, "failed to verify GitHub credential")
	}

	logging.From(ctx).Debug("verified GitHub credential", "login", user.GetLogin())
	return nil
}

func (x *Client) ListAccessibleRepos(ctx context.Context) ([]*model.Repo, error) {
	var all []*model.Repo
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: listPerPage},
	}

	for {
		var (
			repos []*github.Repository
			resp  *github.Response
		)
		op := func() error {
			var err error
			repos, resp, err = x.client.Repositories.List(ctx, "", opts)
			return asRetryable(resp, err)
		}
		if err := backoff.Retry(op, retryPolicy(ctx)); err != nil {
			return nil, goerr.Wrap(err, "failed to list accessible repositories")
		}

		for _, repo := range repos {
			all = append(all, &model.Repo{
				URL:      repo.GetHTMLURL(),
				FullName: repo.GetFullName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("listed accessible repositories", "count", len(all))

	return all, nil
}

func (x *Client) ListIssues(ctx context.Context, repoFullName string) ([]*model.Issue, error) {
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return nil, err
	}

	var all []*model.Issue
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: listPerPage},
	}

	for {
		var (
			issues []*github.Issue
			resp   *github.Response
		)
		op := func() error {
			var err error
			issues, resp, err = x.client.Issues.ListByRepo(ctx, owner, name, opts)
			return asRetryable(resp, err)
		}
		if err := backoff.Retry(op, retryPolicy(ctx)); err != nil {
			return nil, goerr.Wrap(err, "failed to list issues", goerr.V("repo", repoFullName))
		}

		for _, issue := range issues {
			// GitHub returns pull requests from the issue listing as well
			if issue.IsPullRequest() {
				continue
			}

			labels := make([]string, 0, len(issue.Labels))
			for _, label := range issue.Labels {
				labels = append(labels, label.GetName())
			}

			all = append(all, &model.Issue{
				RepoFullName: repoFullName,
				Number:       issue.GetNumber(),
				Title:        issue.GetTitle(),
				Body:         issue.GetBody(),
				Labels:       labels,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (x *Client) ListComments(ctx context.Context, repoFullName string, number int) ([]*model.Comment, error) {
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return nil, err
	}

	var all []*model.Comment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: listPerPage},
	}

	for {
		var (
			comments []*github.IssueComment
			resp     *github.Response
		)
		op := func() error {
			var err error
			comments, resp, err = x.client.Issues.ListComments(ctx, owner, name, number, opts)
			return asRetryable(resp, err)
		}
		if err := backoff.Retry(op, retryPolicy(ctx)); err != nil {
			return nil, goerr.Wrap(err, "failed to list issue comments",
				goerr.V("repo", repoFullName),
				goerr.V("issue", number),
			)
		}

		for _, comment := range comments {
			all = append(all, &model.Comment{Body: comment.GetBody()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (x *Client) UpdateIssueLabels(ctx context.Context, repoFullName string, number int, labels []string) error {
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return err
	}

	op := func() error {
		_, resp, err := x.client.Issues.ReplaceLabelsForIssue(ctx, owner, name, number, labels)
		return asRetryable(resp, err)
	}
	if err := backoff.Retry(op, retryPolicy(ctx)); err != nil {
		return goerr.Wrap(err, "failed to update issue labels",
			goerr.V("repo", repoFullName),
			goerr.V("issue", number),
			goerr.V("labels", labels),
		)
	}

	return nil
}
