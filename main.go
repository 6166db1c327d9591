package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ytget/recipe-book/internal/config"
	"github.com/ytget/recipe-book/internal/logging"
	"github.com/ytget/recipe-book/internal/recipes"
	"github.com/ytget/recipe-book/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipe-book"
	AppName = "Recipe Book"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to the YAML config file (default $"+config.EnvConfigPath+" or "+config.DefaultConfigPath+")")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, cfgErr := config.Load(config.ConfigPath(*configPath))
	cfg.ApplyEnv()

	level := cfg.Log.Level
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("using default configuration", zap.Error(cfgErr))
	}
	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewRecipeTheme())

	settings := config.NewSettings(myApp)
	if cfg.Language != "" && settings.GetLanguage() == config.DefaultLanguage {
		settings.SetLanguage(cfg.Language)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	width, height := settings.GetWindowSize(cfg.Window.Width, cfg.Window.Height)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	store := recipes.NewStore(logger.Named("recipes"))
	ui.NewRootUI(myWindow, myApp, store, settings, logger)

	myWindow.ShowAndRun()
	logger.Info("stopped", zap.Int("recipes", store.Len()))
}
