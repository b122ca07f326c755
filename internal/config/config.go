// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultDataFile  = "~/.tracklist-data.yaml"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// LogConfig настройки логирования
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json logfmt"`
}

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFile      string    `yaml:"data_file" validate:"required"`
	Log           LogConfig `yaml:"log"`
	AwsBucketName string    `yaml:"aws_bucket_name"`
	AwsAccessKey  string    `yaml:"aws_access_key"`
	AwsSecretKey  string    `yaml:"aws_secret_key"`
	AwsRegion     string    `yaml:"aws_region"`
	AwsEndpoint   string    `yaml:"aws_endpoint" validate:"omitempty,url"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		DataFile: defaultDataFile,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Работаем без файла конфигурации
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.DataFile == "" {
		config.DataFile = defaultDataFile
	}
	if config.Log.Level == "" {
		config.Log.Level = defaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = defaultLogFormat
	}

	// Раскрываем тильду в пути к данным
	config.DataFile = strings.Replace(config.DataFile, "~", home, 1)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("ошибка проверки конфигурации: %w", err)
	}

	return config, nil
}

// HasS3 сообщает, заданы ли настройки для выгрузки в S3
func (c *Config) HasS3() bool {
	return c.AwsBucketName != "" && c.AwsRegion != ""
}
