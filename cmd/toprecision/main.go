// toprecision prints numbers rounded to a number of significant digits.
//
// Usage:
//
//	toprecision [flags] [--] [number ...]
//
// If no numbers are given as arguments, they are read from stdin, one per line. Negative
// numbers given as arguments have to follow "--".
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/toprecision/configuration"
	"github.com/iotaledger/toprecision/logger"
)

const (
	envPrefix = "TOPRECISION"

	configurationKeyPrecision = "precision"
	configurationKeyConfig    = "config"

	defaultPrecision = 6
)

const (
	exitOK = iota
	exitError
	exitSkipped
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	flagSet := newFlagSet(stderr)
	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitError
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		fmt.Fprintf(stderr, "toprecision: %s\n", err)

		return exitError
	}

	log, err := logger.NewRootLogger(logger.Config{
		Level:         config.String(logger.ConfigurationKeyLevel),
		Encoding:      config.String(logger.ConfigurationKeyEncoding),
		DisableCaller: config.Bool(logger.ConfigurationKeyDisableCaller),
	}, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "toprecision: %s\n", err)

		return exitError
	}

	if settings, err := config.JSON(); err == nil {
		log.Debugf("loaded configuration: %s", settings)
	}

	proc, err := newProcessor(config.Int(configurationKeyPrecision), log.Named("toprecision"))
	if err != nil {
		log.Errorf("invalid configuration: %s", err)
		_ = log.Sync()

		return exitError
	}
	defer proc.Sync()

	if flagSet.NArg() > 0 {
		err = proc.ProcessArgs(flagSet.Args(), stdout)
	} else {
		err = proc.ProcessLines(stdin, stdout)
	}
	if err != nil {
		proc.LogErrorf("processing failed: %s", err)

		return exitError
	}

	if proc.Skipped() > 0 {
		return exitSkipped
	}

	return exitOK
}

func newFlagSet(output io.Writer) *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("toprecision", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.IntP(configurationKeyPrecision, "p", defaultPrecision, "number of significant digits (1-21)")
	flagSet.StringP(configurationKeyConfig, "c", "", "path to a JSON or YAML config file")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (options: \"json\", \"console\")")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, logger.DefaultCfg.DisableCaller, "omit the calling file and line from log entries")

	return flagSet
}

// loadConfiguration merges the settings with increasing priority: flag defaults, config file,
// environment variables and flags given on the command line.
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()
	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "unable to load flags")
	}

	if configFile, _ := flagSet.GetString(configurationKeyConfig); configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "unable to load flags")
	}

	return config, nil
}
