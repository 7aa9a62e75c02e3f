package main

import (
	"context"

	"aoewatch/cmd/aoewatch-cli/commands"
	"aoewatch/lib/serviceutil"
	"aoewatch/lib/telemetry"
)

func main() {
	ctx := context.Background()

	telemetry.InitSlog(false)
	t, err := telemetry.SetupFromEnv(ctx, "aoewatch-cli")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
