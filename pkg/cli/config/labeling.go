package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Labeling struct {
	rulesPath     string
	defaultLabel  string
	interval      time.Duration
	checkComments bool
	recheck       bool
}

func (x *Labeling) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rules",
			Usage:       "Path to labeling rule file, one '<pattern>::<label>' per line",
			Category:    "Labeling",
			Destination: &x.rulesPath,
			Sources:     cli.EnvVars("LABELBOT_RULES"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "default-label",
			Usage:       "Label applied when no rule matches an issue",
			Category:    "Labeling",
			Destination: &x.defaultLabel,
			Sources:     cli.EnvVars("LABELBOT_DEFAULT_LABEL"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Polling interval per repository",
			Category:    "Labeling",
			Destination: &x.interval,
			Sources:     cli.EnvVars("LABELBOT_INTERVAL"),
			Value:       time.Minute,
		},
		&cli.BoolFlag{
			Name:        "check-comments",
			Usage:       "Match rules against issue comments as well",
			Category:    "Labeling",
			Destination: &x.checkComments,
			Sources:     cli.EnvVars("LABELBOT_CHECK_COMMENTS"),
		},
		&cli.BoolFlag{
			Name:        "recheck",
			Usage:       "Re-evaluate all issues every cycle instead of only unseen ones",
			Category:    "Labeling",
			Destination: &x.recheck,
			Sources:     cli.EnvVars("LABELBOT_RECHECK"),
			Value:       true,
		},
	}
}

// Load reads and compiles the rule set from the configured path
func (x *Labeling) Load() (*model.RuleSet, []string, error) {
	return model.LoadRuleSetFile(x.rulesPath)
}

func (x *Labeling) DefaultLabel() string    { return x.defaultLabel }
func (x *Labeling) Interval() time.Duration { return x.interval }
func (x *Labeling) CheckComments() bool     { return x.checkComments }
func (x *Labeling) Recheck() bool           { return x.recheck }

func (x Labeling) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("rules", x.rulesPath),
		slog.String("defaultLabel", x.defaultLabel),
		slog.Duration("interval", x.interval),
		slog.Bool("checkComments", x.checkComments),
		slog.Bool("recheck", x.recheck),
	)
}
