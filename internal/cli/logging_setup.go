package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrydex/internal/config"
	"github.com/rshade/countrydex/internal/logging"
)

// setupLogging configures logging from the loaded config and CLI flags, and
// stores the logger and a trace id in the command context.
//
// Logs stay in the log file even with --debug so the interactive directory
// is not overwritten by log lines.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	if err := loggingCfg.EnsureLogDir(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = logging.ContextWithFileOutput(ctx, result.UsingFile)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	return logResult.Close()
}
