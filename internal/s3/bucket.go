// Package s3 предоставляет функционал для выгрузки плейлистов в Amazon S3
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const textContentType = "text/plain; charset=utf-8"

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

type putAPI interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

type deleteAPI interface {
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Bucket хранит текстовые объекты в одном бакете
type Bucket struct {
	name    string
	baseURL string
	put     putAPI
	del     deleteAPI
}

// NewBucket создает клиент бакета. Сеть при создании не используется
func NewBucket(config *Config) (*Bucket, error) {
	awsConfig := &aws.Config{
		Region:      aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
	}
	// S3-совместимые хранилища адресуют бакет в пути
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newBucket(config, s3manager.NewUploader(sess), s3.New(sess)), nil
}

func newBucket(config *Config, put putAPI, del deleteAPI) *Bucket {
	return &Bucket{
		name:    config.BucketName,
		baseURL: bucketURL(config),
		put:     put,
		del:     del,
	}
}

// bucketURL адрес бакета: путь на своем endpoint или виртуальный хост AWS
func bucketURL(config *Config) string {
	if config.Endpoint != "" {
		return strings.TrimSuffix(config.Endpoint, "/") + "/" + config.BucketName
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.BucketName, config.Region)
}

// ObjectURL возвращает адрес объекта с экранированным ключом
func (b *Bucket) ObjectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return b.baseURL + "/" + strings.Join(segments, "/")
}

// Put записывает текст под ключом key и возвращает адрес объекта
func (b *Bucket) Put(ctx context.Context, key string, body io.Reader) (string, error) {
	_, err := b.put.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(textContentType),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка записи %s в бакет %s: %w", key, b.name, err)
	}
	return b.ObjectURL(key), nil
}

// Delete удаляет объект; отсутствие объекта ошибкой не считается
func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.del.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления %s из бакета %s: %w", key, b.name, err)
	}
	return nil
}
