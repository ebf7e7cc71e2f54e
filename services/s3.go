package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"io"
	"log"
)

// ObjectStore is the blob storage the seed document lives in.
type ObjectStore interface {
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

type S3Client struct {
	Client *s3.Client
	Bucket string
}

func NewS3Client(ctx context.Context, bucket string) (*S3Client, error) {
	if bucket == "" {
		return nil, errors.New("no bucket configured")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("unable to load SDK config: %v", err)
		return nil, errors.New("unable to load SDK config")
	}
	return &S3Client{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

func (c *S3Client) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := c.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", c.Bucket, key, err)
	}
	return out.Body, nil
}

func (c *S3Client) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := c.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		log.Printf("failed to put object: %v", err)
		return fmt.Errorf("put s3://%s/%s: %w", c.Bucket, key, err)
	}
	return nil
}
