package main

import (
	"log"
	"os"

	"github.com/aiops-console/console"
	"github.com/aiops-console/console/handler"
	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/upload"

	"github.com/labstack/echo/v4"
)

// main embeds the console in a custom echo server with its own fixture file
// and reports kept in a local directory.
func main() {
	logger := console.NewLogger(os.Stdout)

	fixtureStore, err := store.NewFixtureStoreFromFile("fixtures.yaml", logger)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}

	ch := handler.NewConsoleHandler(fixtureStore, upload.NewFilesystemLocal("./reports"), logger)

	e := echo.New()
	console.SetupRoutes(e, ch, logger, "localhost:3000")

	err = e.Start(":3000")
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
