// Package resolver создает треки по ссылкам на внешние источники
package resolver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kkdai/youtube/v2"

	"github.com/hazadus/go-tracklist/internal/track"
)

// Паттерны для различных форматов YouTube URL
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:music\.youtube\.com/watch\?v=)([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// VideoClient часть youtube.Client, которая нужна резолверу
type VideoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// YouTube создает треки по метаданным видео
type YouTube struct {
	client VideoClient
}

// NewYouTube создает резолвер; nil клиент заменяется на youtube.Client
func NewYouTube(client VideoClient) *YouTube {
	if client == nil {
		client = &youtube.Client{}
	}
	return &YouTube{client: client}
}

// Resolve получает метаданные видео и строит по ним трек
func (y *YouTube) Resolve(ctx context.Context, url string) (track.Track, error) {
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return track.Track{}, err
	}

	video, err := y.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return track.Track{}, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}
	if video == nil {
		return track.Track{}, fmt.Errorf("видео %s не найдено", videoID)
	}

	t, err := track.New(video.Title, video.Author, int(video.Duration.Seconds()))
	if err != nil {
		return track.Track{}, fmt.Errorf("видео %s: %w", videoID, err)
	}
	return t, nil
}

// ExtractVideoID извлекает ID видео из различных форматов YouTube URL
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		if matches := re.FindStringSubmatch(url); len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareVideoID.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", url)
}
