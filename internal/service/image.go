package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/pantry-match/backend/config"
)

// MaxImageBytes caps the decoded size of an uploaded image
const MaxImageBytes = 5 << 20

// ErrInvalidImage is returned for empty, undecodable or oversized images
var ErrInvalidImage = errors.New("invalid image")

// Image is an uploaded photo after its data URL wrapper was removed
type Image struct {
	Base64      string
	Data        []byte
	ContentType string
}

// DecodeImage accepts raw base64 or a data URL such as
// "data:image/jpeg;base64,...".
func DecodeImage(raw string) (*Image, error) {
	raw = strings.TrimSpace(raw)
	contentType := "application/octet-stream"

	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: malformed data URL", ErrInvalidImage)
		}
		if mime := strings.TrimSuffix(header, ";base64"); mime != "" {
			contentType = mime
		}
		raw = payload
	}

	if raw == "" {
		return nil, fmt.Errorf("%w: no image provided", ErrInvalidImage)
	}
	if base64.StdEncoding.DecodedLen(len(raw)) > MaxImageBytes+3 {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return nil, fmt.Errorf("%w: not valid base64", ErrInvalidImage)
		}
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	return &Image{Base64: raw, Data: data, ContentType: contentType}, nil
}

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive keeps a copy of every uploaded pantry photo in a bucket
type S3Archive struct {
	client s3PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Archive creates an archive writing under the uploads/ prefix
func NewS3Archive(s3Config *config.S3Config) *S3Archive {
	return newS3Archive(s3Config.Client, s3Config.BucketName)
}

func newS3Archive(client s3PutObjectAPI, bucket string) *S3Archive {
	return &S3Archive{
		client: client,
		bucket: bucket,
		prefix: "uploads",
		now:    time.Now,
	}
}

// Archive uploads the image and returns its s3:// location
func (a *S3Archive) Archive(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s%s", a.prefix, a.now().UTC().Format("2006/01/02"), uuid.NewString(), extensionFor(contentType))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
