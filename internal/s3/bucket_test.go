package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// fakePut запоминает последний запрос на запись
type fakePut struct {
	input *s3manager.UploadInput
	body  string
	err   error
}

func (f *fakePut) UploadWithContext(_ context.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(body)
	return &s3manager.UploadOutput{}, nil
}

// fakeDelete запоминает последний запрос на удаление
type fakeDelete struct {
	input *s3.DeleteObjectInput
	err   error
}

func (f *fakeDelete) DeleteObjectWithContext(_ context.Context, input *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.input = input
	return &s3.DeleteObjectOutput{}, f.err
}

func testConfig() *Config {
	return &Config{
		Region:     "us-east-1",
		AccessKey:  "test-access-key",
		SecretKey:  "test-secret-key",
		Endpoint:   "http://localhost:9000/",
		BucketName: "test-bucket",
	}
}

func TestPut(t *testing.T) {
	put := &fakePut{}
	bucket := newBucket(testConfig(), put, &fakeDelete{})

	url, err := bucket.Put(context.Background(), "playlists/mix.txt", strings.NewReader("Playlist 'mix' [0 tracks]:\n"))
	if err != nil {
		t.Fatalf("Неожиданная ошибка записи: %v", err)
	}

	if url != "http://localhost:9000/test-bucket/playlists/mix.txt" {
		t.Errorf("Неожиданный URL: %s", url)
	}
	if aws.StringValue(put.input.Bucket) != "test-bucket" || aws.StringValue(put.input.Key) != "playlists/mix.txt" {
		t.Errorf("Неожиданные bucket/key: %s/%s", aws.StringValue(put.input.Bucket), aws.StringValue(put.input.Key))
	}
	if aws.StringValue(put.input.ContentType) != textContentType {
		t.Errorf("Неожиданный ContentType: %s", aws.StringValue(put.input.ContentType))
	}
	if put.body != "Playlist 'mix' [0 tracks]:\n" {
		t.Errorf("Неожиданное содержимое: %q", put.body)
	}
}

func TestPutError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"InvalidCredentials", awserr.New("InvalidAccessKeyId", "The AWS Access Key Id you provided does not exist in our records.", nil)},
		{"NetworkError", awserr.New("RequestTimeout", "Request timeout", nil)},
		{"BucketAccessError", awserr.New("AccessDenied", "Access Denied", nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bucket := newBucket(testConfig(), &fakePut{err: tc.err}, &fakeDelete{})

			_, err := bucket.Put(context.Background(), "playlists/mix.txt", strings.NewReader(""))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Ошибка должна оборачивать исходную: %v", err)
			}
			if !strings.Contains(err.Error(), "playlists/mix.txt") || !strings.Contains(err.Error(), "test-bucket") {
				t.Errorf("Сообщение должно содержать ключ и бакет: %v", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	del := &fakeDelete{}
	bucket := newBucket(testConfig(), &fakePut{}, del)

	if err := bucket.Delete(context.Background(), "playlists/mix.txt"); err != nil {
		t.Fatalf("Неожиданная ошибка удаления: %v", err)
	}
	if aws.StringValue(del.input.Bucket) != "test-bucket" || aws.StringValue(del.input.Key) != "playlists/mix.txt" {
		t.Errorf("Неожиданные bucket/key: %s/%s", aws.StringValue(del.input.Bucket), aws.StringValue(del.input.Key))
	}

	del.err = awserr.New("NoSuchBucket", "The specified bucket does not exist", nil)
	if err := bucket.Delete(context.Background(), "playlists/mix.txt"); !errors.Is(err, del.err) {
		t.Errorf("Ошибка должна оборачивать исходную: %v", err)
	}
}

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		key      string
		expected string
	}{
		{"CustomEndpoint", Config{Endpoint: "https://storage.example.com", BucketName: "b"}, "playlists/mix.txt", "https://storage.example.com/b/playlists/mix.txt"},
		{"AWS", Config{Region: "eu-west-1", BucketName: "b"}, "playlists/mix.txt", "https://b.s3.eu-west-1.amazonaws.com/playlists/mix.txt"},
		{"EscapedKey", Config{Region: "eu-west-1", BucketName: "b"}, "playlists/песни.txt", "https://b.s3.eu-west-1.amazonaws.com/playlists/%D0%BF%D0%B5%D1%81%D0%BD%D0%B8.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bucket := newBucket(&tc.config, &fakePut{}, &fakeDelete{})
			if got := bucket.ObjectURL(tc.key); got != tc.expected {
				t.Errorf("ObjectURL(%q) = %s; expected %s", tc.key, got, tc.expected)
			}
		})
	}
}

func TestNewBucket(t *testing.T) {
	bucket, err := NewBucket(testConfig())
	if err != nil {
		t.Fatalf("Ошибка создания клиента бакета: %v", err)
	}
	if bucket.put == nil || bucket.del == nil {
		t.Error("Ожидались инициализированные клиенты S3")
	}
}
