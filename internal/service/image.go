package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/trichocare/backend/config"
)

// ScalpImageService stores scalp photos in S3-compatible object storage.
// The payload arrives as base64 from the intake wizard and stays opaque to
// the scoring engine.
type ScalpImageService struct {
	s3Config *config.S3Config
}

func NewScalpImageService(s3Config *config.S3Config) *ScalpImageService {
	return &ScalpImageService{s3Config: s3Config}
}

// StoreScalpImage decodes the base64 payload and uploads it under the
// analysis test ID. Returns the object's public URL.
func (s *ScalpImageService) StoreScalpImage(ctx context.Context, testID, imageBase64 string) (string, error) {
	payload := imageBase64
	contentType := "image/jpeg"

	// Data URI prefixes ("data:image/png;base64,....") carry the content type.
	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) == 2 {
			meta := strings.TrimPrefix(parts[0], "data:")
			contentType = strings.TrimSuffix(meta, ";base64")
			payload = parts[1]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode scalp image: %w", err)
	}

	ext := "jpg"
	if strings.Contains(contentType, "png") {
		ext = "png"
	}
	key := fmt.Sprintf("scalp-images/%s.%s", testID, ext)

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload scalp image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("Stored scalp image for %s at %s", testID, url)
	return url, nil
}
