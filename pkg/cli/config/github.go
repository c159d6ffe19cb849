package config

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token     types.GitHubToken `masq:"secret"`
	tokenFile string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("LABELBOT_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-token-file",
			Usage:       "File containing the GitHub token on its first line",
			Category:    "GitHub",
			Destination: &x.tokenFile,
			Sources:     cli.EnvVars("LABELBOT_GITHUB_TOKEN_FILE"),
		},
	}
}

// Token returns the configured credential. A directly supplied token wins over
// the token file.
func (x *GitHub) Token() (types.GitHubToken, error) {
	if x.token != "" {
		return x.token, nil
	}
	if x.tokenFile == "" {
		return "", goerr.Wrap(types.ErrConfig, "either github-token or github-token-file is required")
	}

	fd, err := os.Open(filepath.Clean(x.tokenFile))
	if err != nil {
		return "", goerr.Wrap(types.ErrConfig, "failed to open token file", goerr.V("path", x.tokenFile))
	}
	defer safe.Close(fd)

	scanner := bufio.NewScanner(fd)
	if !scanner.Scan() || scanner.Text() == "" {
		return "", goerr.Wrap(types.ErrConfig, "token file is empty", goerr.V("path", x.tokenFile))
	}

	return types.GitHubToken(scanner.Text()), nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("tokenFile", x.tokenFile),
	)
}
