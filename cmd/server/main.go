// Command server runs the HTTP backend of the job-seeker companion app.
//
// It stops gracefully on SIGINT or SIGTERM. Exit codes: 0 = clean
// shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dawoodjaved5/soventure-project/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
