package main

import (
	"context"

	"sdamgia-go/cmd/sdamgia-cli/commands"
	"sdamgia-go/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "sdamgia-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
