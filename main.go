package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/config"
	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.academia-admin.academia"
	AppName = "Academia"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	logger, err := logging.New(settings.GetLogLevel(), version == "dev")
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	// Log version information
	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, logger)

	// Show and run
	myWindow.ShowAndRun()
}
