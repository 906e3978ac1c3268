// Package main provides the CLI entrypoint for processmap-generator.
//
// processmap-generator converts the semicolon-delimited export of business
// interface processes into an OpenAPI 3.0 YAML document:
//   - Groups records into paths by chapter (gas sector) or label
//   - Renders a Markdown table of all process steps into each path
//   - Emits one JSON Schema component per check identifier
//   - Keeps a plain-text progress log next to the run
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"processmap-generator/internal/config"
	"processmap-generator/internal/convert"
)

const (
	version = "0.1.0"
	name    = "processmap-generator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	source := flags.String("source", "", "semicolon-delimited process export")
	output := flags.String("output", "", "generated OpenAPI YAML document")
	logFile := flags.String("log", "", "progress log file")
	encoding := flags.String("encoding", "", "source encoding: utf-8|windows-1252|iso-8859-1")
	title := flags.String("title", "", "info.title of the generated document")
	envFile := flags.String("env-file", ".env", "optional .env file with PROCESSMAP_* variables")
	verbose := flags.Bool("verbose", false, "log every processed record")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("%s version %s\n", name, version)
		return 0
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	if err := config.LoadEnvFile(*envFile); err != nil {
		logger.Error().Err(err).Msg("could not load env file")
		return 1
	}

	cfg, err := config.Load(map[string]string{
		config.KeySource:    *source,
		config.KeyOutput:    *output,
		config.KeyLogFile:   *logFile,
		config.KeyEncoding:  *encoding,
		config.KeyInfoTitle: *title,
	})
	if err != nil {
		logger.Error().Err(err).Msg("could not load config")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := convert.New(*cfg, convert.WithLogger(logger)).Run(ctx); err != nil {
		event := logger.Error().Err(err)

		switch {
		case errors.Is(err, convert.ErrSourceNotFound), errors.Is(err, convert.ErrSourceUnreadable):
			event.Str("source", cfg.Source).Msg("cannot read source, nothing written")
		case errors.Is(err, convert.ErrOutputUnwritable):
			event.Str("output", cfg.Output).Msg("cannot write output")
		default:
			event.Msg("conversion failed")
		}

		return 1
	}

	return 0
}
