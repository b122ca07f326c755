package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tracklist/internal/s3"
)

var errS3NotConfigured = errors.New("S3 не настроен: укажите aws_bucket_name и aws_region в конфигурации")

// createPushCommand создает команду push
func (app *Application) createPushCommand(ctx context.Context) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Export the playlist to S3 storage",
		Long:  `Upload a text rendering of the playlist to the configured S3 bucket, or delete it with --delete.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !app.Config.HasS3() {
				return errS3NotConfigured
			}

			storage, err := app.newStorage(app.Config)
			if err != nil {
				return err
			}
			exporter := s3.NewExporter(storage)

			pushCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			if remove {
				if err := exporter.Remove(pushCtx, app.playlistName); err != nil {
					return err
				}
				fmt.Printf("✅ Плейлист «%s» удален из S3\n", app.playlistName)
				return nil
			}

			p, err := app.loadPlaylist()
			if err != nil {
				return err
			}

			fmt.Printf("📤 Выгружаем плейлист в S3:\n")
			fmt.Printf("   Плейлист: %s\n", p.Name())
			fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)

			url, err := exporter.Export(pushCtx, p)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Плейлист успешно выгружен в S3!\n")
			fmt.Printf("   URL: %s\n", url)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "delete", false, "delete the exported playlist from S3")

	return cmd
}
