package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func setupLogger(level string) *slog.Logger {
	logLevel, err := log.ParseLevel(level)

	if err != nil {
		logLevel = log.InfoLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           logLevel,
		Prefix:          "converter",
	})

	logger := slog.New(handler).With(slog.String("session", uuid.NewString()))
	slog.SetDefault(logger)

	return logger
}
