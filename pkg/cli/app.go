// Package cli implements the scoremock command line application.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v2"

	"github.com/mchmarny/scoremock/pkg/logging"
	"github.com/mchmarny/scoremock/pkg/score"
	"github.com/mchmarny/scoremock/pkg/server"
)

// expected positional arguments: <label> <port>
const argCount = 2

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:            "scoremock",
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "Mock scoring service that answers every POST with a fixed score and label",
		ArgsUsage:       "<label> <port>",
		Flags: []urfave.Flag{
			debugFlag,
		},
		Action: run,
	}
}

func run(c *urfave.Context) error {
	if c.Bool(debugFlag.Name) {
		logging.SetDefaultCLILogger("debug")
	}

	if c.NArg() != argCount {
		if err := urfave.ShowAppHelp(c); err != nil {
			return errors.Wrap(err, "error printing usage")
		}
		return errors.Errorf("expected %d arguments (<label> <port>), got %d", argCount, c.NArg())
	}

	label := c.Args().Get(0)
	port, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return errors.Wrapf(err, "invalid port: %q", c.Args().Get(1))
	}

	result := score.NewResult(label)
	s := server.New(fmt.Sprintf(":%d", port), result)

	slog.Info("starting mock scoring service",
		"label", result.Label, "score", result.Score, "port", port)

	return s.ListenAndServe()
}
