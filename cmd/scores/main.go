package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deedles.dev/xlist"
	"deedles.dev/xlist/internal/scores"
	"github.com/urfave/cli"
)

const defaultFile = "Scores.txt"

type writeFunc func(io.Writer, *xlist.List[scores.Record]) error

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "scores"
	app.Usage = "print the records of a tab-separated score file"
	app.ArgsUsage = "[FILE]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "format, f",
			Value:  "tsv",
			Usage:  "output format, either tsv or yaml",
			EnvVar: "SCORES_FORMAT",
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "minimum level of log messages written to stderr",
			EnvVar: "SCORES_LOG_LEVEL",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if c.NArg() > 1 {
		return errors.New("expected at most one argument: the name of a score file")
	}
	name := defaultFile
	if c.Args().Present() {
		name = c.Args().First()
	}

	write, err := formatter(c.String("format"))
	if err != nil {
		return err
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	l, err := scores.Read(f)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	slog.Debug("loaded scores", "file", name, "records", l.Len())

	return write(c.App.Writer, l)
}

func formatter(name string) (writeFunc, error) {
	switch name {
	case "tsv":
		return scores.WriteTSV, nil
	case "yaml":
		return scores.WriteYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
