package main

import (
	"context"
	"fmt"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/swcarpentry/swc-installer/pkg/config"
	"github.com/swcarpentry/swc-installer/pkg/installer"
	"github.com/swcarpentry/swc-installer/pkg/logger"
	"github.com/swcarpentry/swc-installer/pkg/os"
)

var Version = "0.4.0"

func main() {
	showVersion := flag.BoolP("version", "V", false, "print the version and exit")
	config.ParseFlags()
	if *showVersion {
		fmt.Printf("swc-installer %v\n", Version)
		return
	}

	conf, err := config.NewAppConfig()
	if err != nil {
		logger.Default().Fatal().Err(err).Msg("couldn't load the configuration")
	}
	level, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		logger.Default().Fatal().Err(err).Msgf("unknown log level %v", conf.Log.Level)
	}
	log := logger.NewConsole(level, "swc", false)

	log.Info().Msg("Preparing your Software Carpentry awesomeness!")
	log.Info().Msgf("installer version %v", Version)
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.TerminationSignals()...)
	defer stop()

	m, err := installer.New(conf, log)
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't initialize the installer")
	}
	if err := m.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("installation failed")
	}
	log.Info().Msg("Installation complete.")
}
