package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/loja-web/internal/config"
	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
)

const s3Prefix = "produtos/"

// s3API é o subconjunto do cliente usado pelo store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client    s3API
	bucket    string
	publicURL string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("S3_BUCKET is required when IMAGE_STORAGE=s3")
	}

	opts := s3.Options{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}
	if cfg.S3Endpoint != "" {
		// MinIO e afins
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}, nil
}

func (s *S3Store) key(id uint) string {
	return s3Prefix + produto.ImageName(id)
}

func (s *S3Store) Save(ctx context.Context, id uint, jpeg []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(id)),
		Body:          bytes.NewReader(jpeg),
		ContentType:   aws.String("image/jpeg"),
		ContentLength: aws.Int64(int64(len(jpeg))),
	})
	return err
}

// Delete: o S3 já responde sucesso para chaves inexistentes.
func (s *S3Store) Delete(ctx context.Context, id uint) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	return err
}

func (s *S3Store) URL(id uint) string {
	return s.publicURL + "/" + s.key(id)
}

var _ ImageStore = (*S3Store)(nil)
