package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/upxgui/cli"
	"github.com/grovetools/upxgui/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file in the working directory may carry UPXGUI_* settings.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	cli.NewErrorHandler(verbose).Handle(err)
	os.Exit(1)
}
