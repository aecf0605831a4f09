package main

import (
	"context"
	"log/slog"
	"os"

	"capsheet-backend/cmd/capsheet-cli/cmd"
	"capsheet-backend/lib/scrapers/spotrac"
	"capsheet-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(os.Getenv("CAPSHEET_DEBUG") != "")

	tel, err := telemetry.SetupFromEnv(context.Background(), "capsheet-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer tel.Shutdown(context.Background())

	baseUrl := spotrac.DefaultBaseURL
	if fromEnv, ok := os.LookupEnv("CAPSHEET_BASE_URL"); ok {
		baseUrl = fromEnv
	}
	cmd.BaseUrl = baseUrl

	cmd.Execute()
}
