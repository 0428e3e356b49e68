package main

import (
	"fmt"
	"os"

	"bankops/internal/config"
	"bankops/internal/handler/cli"
	"bankops/internal/logger"
	"bankops/internal/platform"
	"bankops/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("bankctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	configPath := fs.String("config", "", "path to a config.yaml file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitUsage
	}

	var locations []string
	if *configPath != "" {
		locations = append(locations, *configPath)
	}
	cfg, err := config.Load(locations...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		return cli.ExitUsage
	}

	log, err := logger.New(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		return cli.ExitUsage
	}
	defer func() { _ = log.Sync() }()

	log.Debug("configuration loaded",
		zap.String("file", cfg.File),
		zap.String("id_strategy", cfg.Transaction.IDStrategy),
	)

	ids, err := platform.NewIDGenerator(cfg.Transaction.IDStrategy)
	if err != nil {
		log.Error("invalid transaction id strategy", zap.Error(err))
		return cli.ExitUsage
	}

	svc := service.NewBankingService(platform.SystemClock{}, ids, log)
	handler := cli.NewBankingHandler(svc, os.Stdout, os.Stderr, log)

	return handler.Run(fs.Args())
}
