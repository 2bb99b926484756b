// Package main provides the CLI entrypoint for energymodel-translator.
//
// energymodel-translator reads abridged energy-model JSON records, validates
// them against the record schema, resolves name references and materializes
// the result into an in-memory simulation model:
//   - a single record, an array of records, or a Model document
//   - a YAML summary of the populated model on stdout
//   - -dump prints every created object
package main

import (
	"flag"
	"os"

	"energymodel-translator/internal/cli"
	"energymodel-translator/internal/config"
	"energymodel-translator/internal/logging"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		config.Exitf("logger: %v", err)
	}

	defer func() { _ = logger.Sync() }()

	if err := cli.Run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		_ = logger.Sync()
		config.Exitf("energymodel-translator: %v", err)
	}
}
