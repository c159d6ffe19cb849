package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Issue is a per-cycle snapshot of a tracker issue. It is fetched on each tick
// and discarded after reconciliation.
type Issue struct {
	RepoFullName string
	Number       int
	Title        string
	Body         string
	Labels       []string
}

// Comment holds one issue comment body, fetched only when comment checking is
// enabled.
type Comment struct {
	Body string
}

// Repo is one entry of the accessible repository listing
type Repo struct {
	URL      string
	FullName string
}

// RepoIndex maps repository references to full names. Built once at startup
// from the accessible repository listing, read-only afterwards.
type RepoIndex struct {
	byURL     map[string]string
	fullNames map[string]struct{}
}

func NewRepoIndex(repos []*Repo) *RepoIndex {
	index := &RepoIndex{
		byURL:     make(map[string]string, len(repos)),
		fullNames: make(map[string]struct{}, len(repos)),
	}
	for _, repo := range repos {
		index.byURL[strings.TrimSuffix(repo.URL, "/")] = repo.FullName
		index.fullNames[repo.FullName] = struct{}{}
	}
	return index
}

// Resolve maps a user-supplied reference (repository URL or owner/name) to the
// repository's full name. The second return value reports whether the reference
// is accessible.
func (x *RepoIndex) Resolve(ref string) (string, bool) {
	if fullName, ok := x.byURL[strings.TrimSuffix(ref, "/")]; ok {
		return fullName, true
	}
	if _, ok := x.fullNames[ref]; ok {
		return ref, true
	}
	return "", false
}

// LabelRepoInput is the request for one labeling cycle of a repository
type LabelRepoInput struct {
	RepoFullName string
	Recheck      bool
}

func (x *LabelRepoInput) Validate() error {
	if x.RepoFullName == "" {
		return goerr.New("repo full name is required")
	}
	if !strings.Contains(x.RepoFullName, "/") {
		return goerr.New("repo full name must be 'owner/name'", goerr.V("repo", x.RepoFullName))
	}
	return nil
}

// CycleResult summarizes one labeling cycle for a repository
type CycleResult struct {
	RepoFullName string
	Checked      int
	Skipped      int
	Updated      int
	Failed       int
}
