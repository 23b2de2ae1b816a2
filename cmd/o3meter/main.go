package main

import (
	"log"
	"os"

	"o3meter/internal/app"
	"o3meter/internal/logger"
)

func main() {
	appLogger := buildLogger()

	application, err := app.NewApplication(appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	// An optional path argument opens a photograph at startup, which is
	// handy when the meter is launched from a file manager.
	if len(os.Args) > 1 {
		application.OpenPath(os.Args[1])
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// buildLogger picks console or JSON output from the environment. Console
// output is the default for interactive use.
func buildLogger() logger.Logger {
	level := logger.LevelFromEnv()
	if os.Getenv("O3METER_JSON_LOGS") == "1" {
		return logger.NewZerolog(os.Stdout, level)
	}
	return logger.NewConsoleLogger(level)
}
