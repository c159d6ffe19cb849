package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/labelbot/pkg/cli/config"
	"github.com/secmon-lab/labelbot/pkg/controller/poller"
	"github.com/secmon-lab/labelbot/pkg/controller/server"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/infra"
	"github.com/secmon-lab/labelbot/pkg/infra/githubapi"
	"github.com/secmon-lab/labelbot/pkg/usecase"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func startCommand() *cli.Command {
	var (
		addr string

		github   config.GitHub
		labeling config.Labeling
		sentry   config.Sentry
	)
	startFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address of the status endpoint, disabled when empty",
			Sources:     cli.EnvVars("LABELBOT_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:      "start",
		Aliases:   []string{"s"},
		Usage:     "Start polling and labeling the given repositories",
		ArgsUsage: "<repository URL or owner/name>...",
		Flags: slice.Flatten(
			startFlags,
			github.Flags(),
			labeling.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting labelbot",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Labeling", labeling),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			token, err := github.Token()
			if err != nil {
				return err
			}

			ghClient, err := githubapi.New(ctx, token)
			if err != nil {
				return err
			}
			if err := ghClient.Validate(ctx); err != nil {
				return err
			}

			ruleSet, warnings, err := labeling.Load()
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				logging.Default().Warn("skipping invalid rule", "detail", warning)
			}
			logging.Default().Info("loaded labeling rules", "count", ruleSet.Len())

			clients := infra.New(infra.WithGitHub(ghClient))
			uc := usecase.New(clients, ruleSet,
				usecase.WithDefaultLabel(labeling.DefaultLabel()),
				usecase.WithCheckComments(labeling.CheckComments()),
			)

			repos, err := uc.ResolveRepos(ctx, c.Args().Slice())
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return goerr.Wrap(types.ErrConfig, "no accessible repositories to track")
			}

			ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			p := poller.New(uc)
			for _, repo := range repos {
				if err := p.Register(ctx, repo, labeling.Interval(), labeling.Recheck()); err != nil {
					return err
				}
			}

			serverErr := make(chan error, 1)
			var httpServer *http.Server
			if addr != "" {
				s := server.New(p)
				httpServer = &http.Server{
					Addr:    addr,
					Handler: s.Mux(),

					ReadHeaderTimeout: 10 * time.Second,
					ReadTimeout:       30 * time.Second,
					WriteTimeout:      30 * time.Second,
				}

				go func() {
					logging.Default().Info("starting status server", "addr", addr)
					if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
						serverErr <- goerr.Wrap(err, "failed to listen and serve")
					}
				}()
			}

			pollerDone := make(chan struct{})
			go func() {
				p.Run(ctx)
				close(pollerDone)
			}()

			select {
			case err := <-serverErr:
				return err

			case <-ctx.Done():
				logging.Default().Info("shutting down")
			}

			<-pollerDone

			if httpServer != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown status server")
				}
			}

			return nil
		},
	}
}
