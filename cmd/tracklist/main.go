package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-tracklist/internal/config"
	"github.com/hazadus/go-tracklist/internal/data"
	"github.com/hazadus/go-tracklist/internal/logging"
	"github.com/hazadus/go-tracklist/internal/resolver"
	"github.com/hazadus/go-tracklist/internal/s3"
	"github.com/hazadus/go-tracklist/internal/track"
)

const (
	defaultConfigPath   = "~/.tracklist"
	defaultPlaylistName = "default"
)

// trackResolver создает трек по ссылке на внешний источник
type trackResolver interface {
	Resolve(ctx context.Context, url string) (track.Track, error)
}

// Application содержит зависимости команд
type Application struct {
	Config *config.Config
	Data   *data.Library

	playlistName string
	resolver     trackResolver
	newStorage   func(cfg *config.Config) (s3.Storage, error)
}

// NewApplication создает приложение с реальными клиентами YouTube и S3
func NewApplication(cfg *config.Config, library *data.Library) *Application {
	return &Application{
		Config:       cfg,
		Data:         library,
		playlistName: defaultPlaylistName,
		resolver:     resolver.NewYouTube(nil),
		newStorage:   newS3Storage,
	}
}

// SaveData сохраняет библиотеку в файл данных
func (app *Application) SaveData() error {
	return app.Data.SaveData(app.Config.DataFile)
}

func newS3Storage(cfg *config.Config) (s3.Storage, error) {
	bucket, err := s3.NewBucket(&s3.Config{
		Region:     cfg.AwsRegion,
		AccessKey:  cfg.AwsAccessKey,
		SecretKey:  cfg.AwsSecretKey,
		Endpoint:   cfg.AwsEndpoint,
		BucketName: cfg.AwsBucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента S3: %w", err)
	}
	return bucket, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.SetupLogger(os.Stderr, cfg.Log))

	library := data.NewLibrary()
	if err := library.LoadData(cfg.DataFile); err != nil {
		slog.Error("Ошибка загрузки данных", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	app := NewApplication(cfg, library)
	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
