// Package cli holds the cobra commands behind the litreview binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/config"
	"github.com/spec-kit/litreview/internal/observability"
)

// NewRootCommand assembles the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "litreview",
		Short:         "Book and article review service",
		Long:          `litreview serves the ticket, review and follow API and manages its database schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		NewServeCommand(),
		NewMigrateCommand(),
	)
	return root
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logger, nil
}
