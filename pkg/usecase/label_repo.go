package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/utils/errutil"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"
)

// LabelRepoIssues runs one labeling cycle for a repository: fetch open issues,
// evaluate the rule set against each, and apply the merged label set when it
// differs from the existing one. Per-issue failures are isolated so one broken
// issue does not abort the rest of the cycle; a failure to list issues fails
// the whole cycle and is retried on the next tick.
func (x *UseCase) LabelRepoIssues(ctx context.Context, input *model.LabelRepoInput) (*model.CycleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	issues, err := x.clients.GitHub().ListIssues(ctx, input.RepoFullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues", goerr.V("repo", input.RepoFullName))
	}

	result := &model.CycleResult{RepoFullName: input.RepoFullName}
	for _, issue := range issues {
		if !input.Recheck {
			seen, err := x.clients.SeenRepo().IsSeen(ctx, input.RepoFullName, issue.Number)
			if err != nil {
				errutil.HandleError(ctx, "failed to check seen state", err)
			} else if seen {
				result.Skipped++
				continue
			}
		}

		updated, err := x.labelIssue(ctx, issue)
		if err != nil {
			errutil.HandleError(ctx, "failed to label issue", err)
			result.Failed++
			continue
		}

		result.Checked++
		if updated {
			result.Updated++
		}

		if err := x.clients.SeenRepo().MarkSeen(ctx, input.RepoFullName, issue.Number); err != nil {
			errutil.HandleError(ctx, "failed to mark issue as seen", err)
		}
	}

	logging.From(ctx).Info("labeling cycle finished",
		"repo", result.RepoFullName,
		"checked", result.Checked,
		"skipped", result.Skipped,
		"updated", result.Updated,
		"failed", result.Failed,
	)

	return result, nil
}

func (x *UseCase) labelIssue(ctx context.Context, issue *model.Issue) (bool, error) {
	fields := []string{issue.Title, issue.Body}
	if x.checkComments {
		comments, err := x.clients.GitHub().ListComments(ctx, issue.RepoFullName, issue.Number)
		if err != nil {
			return false, goerr.Wrap(err, "failed to list comments", goerr.V("issue", issue.Number))
		}
		for _, comment := range comments {
			fields = append(fields, comment.Body)
		}
	}

	matched := x.rules.Match(fields...)
	diff := model.Reconcile(issue.Labels, matched, x.defaultLabel)
	if !diff.Changed {
		return false, nil
	}

	if err := x.clients.GitHub().UpdateIssueLabels(ctx, issue.RepoFullName, issue.Number, diff.Labels); err != nil {
		return false, goerr.Wrap(err, "failed to update issue labels",
			goerr.V("issue", issue.Number),
			goerr.V("labels", diff.Labels),
		)
	}

	logging.From(ctx).Info("updated issue labels",
		"repo", issue.RepoFullName,
		"issue", issue.Number,
		"labels", diff.Labels,
	)

	return true, nil
}
