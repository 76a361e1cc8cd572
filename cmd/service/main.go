package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/leancoach/internal"
	"github.com/2beens/leancoach/internal/config"
	"github.com/2beens/leancoach/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "leancoach-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	llmAPIKey := os.Getenv("LEANCOACH_LLM_API_KEY")
	if llmAPIKey == "" {
		log.Errorf("llm api key not set, use LEANCOACH_LLM_API_KEY env var to set it")
	}

	nutrientAPIKey := os.Getenv("LEANCOACH_NUTRIENT_API_KEY")
	if nutrientAPIKey == "" {
		log.Errorf("nutrient api key not set, use LEANCOACH_NUTRIENT_API_KEY env var to set it")
	}

	redisPassword := os.Getenv("LEANCOACH_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use LEANCOACH_REDIS_PASS")
	}

	tracingEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if tracingEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:         cfg,
			LLMAPIKey:      llmAPIKey,
			NutrientAPIKey: nutrientAPIKey,
			RedisPassword:  redisPassword,
			VersionInfo:    versionInfo,
			TracingEnabled: tracingEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the built executable runs from project root.
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
