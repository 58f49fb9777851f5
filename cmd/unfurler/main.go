package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/config"
	"github.com/aleister1102/unfurler/internal/discord"
	"github.com/aleister1102/unfurler/internal/forge"
	"github.com/aleister1102/unfurler/internal/logger"
	"github.com/aleister1102/unfurler/internal/pipeline"
	"github.com/aleister1102/unfurler/internal/recognizer"
	"github.com/aleister1102/unfurler/internal/webpage"
)

func main() {
	configPath := flag.String("config", "", "Path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "unfurler: %v\n", err)
		os.Exit(1)
	}
}

func run(configPathFlag string) error {
	cfg, err := config.LoadGlobalConfig(configPathFlag)
	if err != nil {
		return err
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return err
	}

	appLogger.Info().
		Str("forge_host", cfg.ForgeConfig.Host).
		Msg("Starting unfurler")

	bot, err := buildBot(cfg, appLogger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Start(ctx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		appLogger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	appLogger.Info().Msg("Unfurler stopped")
	return nil
}

// buildBot wires the recognizer, the two source chains, and the Discord
// sink into a running bot.
func buildBot(cfg *config.GlobalConfig, appLogger zerolog.Logger) (*discord.Bot, error) {
	forgeClient, err := forge.NewClient(cfg.ForgeConfig, appLogger)
	if err != nil {
		return nil, err
	}

	fetcher, err := webpage.NewFetcher(cfg.PageConfig, appLogger)
	if err != nil {
		return nil, err
	}

	converter := webpage.NewConverter(cfg.PageConfig.FaviconConverter, appLogger)
	renderer := webpage.NewRenderer(fetcher, converter, appLogger)
	rec := recognizer.NewRecognizer(cfg.ForgeConfig.Scheme, cfg.ForgeConfig.Host, appLogger)

	session, err := discord.NewSession(cfg.DiscordConfig)
	if err != nil {
		return nil, err
	}

	sink := discord.NewSink(session, appLogger)
	dispatcher := pipeline.NewDispatcher(rec, forgeClient, fetcher, renderer, sink, appLogger)

	return discord.NewBotWithSession(session, dispatcher, appLogger), nil
}
