package main

import (
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/youruser/postgen/internal/api"
	"github.com/youruser/postgen/internal/config"
	"github.com/youruser/postgen/internal/fonts"
	imagepkg "github.com/youruser/postgen/internal/image"
	"github.com/youruser/postgen/internal/post"
	"github.com/youruser/postgen/internal/release"
	"github.com/youruser/postgen/internal/summary"
	"github.com/youruser/postgen/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	configPath := flag.String("config", "postgen.yaml", "Path to the YAML config file.")
	listen := flag.String("listen", "", "The address to listen on (overrides config).")
	logLevel := flag.String("loglevel", "info", "The log level (debug, info, warn, error).")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if cfg.LogFile != "" {
		if err := util.EnsureParentDir(cfg.LogFile); err != nil {
			logrus.WithError(err).Fatal("creating log dir")
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logrus.WithError(err).Fatal("opening log file")
		}
		defer f.Close()
		logrus.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	// Scan fonts at startup (best-effort)
	names, err := fonts.List(cfg.FontDir)
	if err != nil {
		logrus.WithError(err).Warn("failed to scan font dir at startup")
	} else if len(names) == 0 {
		logrus.WithField("dir", cfg.FontDir).Warn("No fonts available. Add .ttf font files to the font directory.")
	}

	if _, err := os.Stat(cfg.EmojiFontPath); err != nil {
		logrus.WithField("path", cfg.EmojiFontPath).Warn("Emoji font not found; the emoji stage will be skipped. See postgen.example.yaml.")
	}

	log := logrus.WithField("component", "postgen")
	svc := &post.Service{
		Composer: &imagepkg.Composer{
			FontDir:       cfg.FontDir,
			EmojiFontPath: cfg.EmojiFontPath,
			Log:           log.WithField("component", "composer"),
		},
		Releases: &release.Client{
			BaseURL:      cfg.GitHub.APIBase,
			Token:        cfg.GitHub.Token,
			ContentLimit: cfg.GitHub.ContentLimit,
		},
		Summarizer: &summary.Client{
			Endpoint:  cfg.Summary.Endpoint,
			Token:     cfg.Summary.Token,
			MinLength: cfg.Summary.MinLength,
			MaxLength: cfg.Summary.MaxLength,
		},
		OutputPath: cfg.OutputPath,
		Log:        log,
	}

	r := gin.Default()
	api.RegisterRoutes(r, &api.Handler{Service: svc, Config: cfg, Log: log.WithField("component", "api")})

	logrus.WithField("addr", cfg.Listen).Info("starting server")
	if err := r.Run(cfg.Listen); err != nil && err != http.ErrServerClosed {
		logrus.WithField("event", "start server").Fatal(err)
	}
}
