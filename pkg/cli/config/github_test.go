package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/labelbot/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// parseFlags runs a throwaway command so that flag values land in the config
// struct the same way they do in production.
func parseFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-token-file"])
}

func TestGitHubToken(t *testing.T) {
	t.Run("no token and no file is a config error", func(t *testing.T) {
		githubConfig := &config.GitHub{}
		_, err := githubConfig.Token()
		gt.Error(t, err)
	})

	t.Run("token is read from the first line of the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		gt.NoError(t, os.WriteFile(path, []byte("ghp_dummytoken\nsecond line ignored\n"), 0600))

		githubConfig := &config.GitHub{}
		parseFlags(t, githubConfig.Flags(), "--github-token-file", path)

		token := gt.R1(githubConfig.Token()).NoError(t)
		gt.V(t, string(token)).Equal("ghp_dummytoken")
	})

	t.Run("empty token file is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		gt.NoError(t, os.WriteFile(path, []byte(""), 0600))

		githubConfig := &config.GitHub{}
		parseFlags(t, githubConfig.Flags(), "--github-token-file", path)

		_, err := githubConfig.Token()
		gt.Error(t, err)
	})

	t.Run("missing token file is a config error", func(t *testing.T) {
		githubConfig := &config.GitHub{}
		parseFlags(t, githubConfig.Flags(), "--github-token-file", "/no/such/file")

		_, err := githubConfig.Token()
		gt.Error(t, err)
	})
}
