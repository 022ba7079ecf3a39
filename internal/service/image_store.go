package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/healthscan/backend/config"
)

// imageURLTTL bounds how long a handed-out scan photo link stays valid.
const imageURLTTL = time.Hour

// S3ImageStore keeps scan photos in a private bucket and serves them
// through presigned URLs.
type S3ImageStore struct {
	s3Config *config.S3Config
}

// Ensure S3ImageStore implements ImageStore
var _ ImageStore = (*S3ImageStore)(nil)

func NewS3ImageStore(s3Config *config.S3Config) *S3ImageStore {
	return &S3ImageStore{s3Config: s3Config}
}

// Save uploads data under key
func (s *S3ImageStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[ImageStore] Uploaded scan image %s (%d bytes)", key, len(data))
	return nil
}

// URL returns a short-lived GET link for key
func (s *S3ImageStore) URL(ctx context.Context, key string) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, imageURLTTL)
}

// Delete removes the object under key. Deleting a missing key succeeds.
func (s *S3ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.s3Config.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	log.Printf("[ImageStore] Deleted scan image %s", key)
	return nil
}
