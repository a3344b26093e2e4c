package impl

import (
	"io"
	"log/slog"

	"petstar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 12}
	cfg.Mail = &config.MailConfig{PublicBaseURL: "https://petstar.example.com"}

	return cfg
}
