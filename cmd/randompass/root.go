package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"randompass/internal/config"
	"randompass/internal/domain"
	"randompass/internal/service"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "randompass",
		Short: "Generate a random password",
		Long: `
Generate a random password containing at least one character from every
enabled class: lowercase, uppercase, numbers and special characters.

Every option may also be supplied through an environment variable
prefixed with RANDOMPASS_, e.g. RANDOMPASS_LENGTH=32.
`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	man := config.NewManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		settings, err := man.Load()
		if err != nil {
			return err
		}

		setupLogging(cmd.ErrOrStderr(), settings.Verbose)

		svc := service.NewPasswordService(domain.CryptoSeed{}, service.WithMaxAttempts(settings.MaxAttempts))
		pass, err := svc.Generate(settings.Password)
		if err != nil {
			slog.Debug("generation failed", "error", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), pass)
		return nil
	}

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
