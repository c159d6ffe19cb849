package types

import "log/slog"

type (
	GitHubToken string
	RequestID   string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
