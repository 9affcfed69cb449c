package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fontdex/fontdex/internal/scan"
	"github.com/fontdex/fontdex/internal/store"
)

func runScan(cmd *cobra.Command, opts *RootOptions, root, storePath string) error {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: opts.LogLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	slog.Info("creating store", "path", storePath)
	st, err := store.Create(storePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create store", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing store", "error", closeErr)
		}
	}()

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, stopping scan", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slog.Info("scan starting", "root", root)
	scanner := scan.New(fsys, st, scan.Options{
		Workers:  opts.Workers,
		Progress: cmd.OutOrStdout(),
		Logger:   logger,
	})
	sum, err := scanner.Run(ctx, root)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitFailure, "scan interrupted", err)
		}
		return WrapExitError(ExitFailure, "scan failed", err)
	}

	counts, err := st.CountRows(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to count rows", err)
	}
	slog.Info("scan complete",
		"files", sum.Files,
		"fonts", counts.Fonts,
		"names", counts.Names,
		"errors", counts.Errors,
	)
	return nil
}
