package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubDetector struct {
	concepts []Concept
	err      error
	block    bool
	got      string
}

func (d *stubDetector) Detect(ctx context.Context, imageBase64 string) ([]Concept, error) {
	d.got = imageBase64
	if d.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return d.concepts, d.err
}

type stubArchive struct {
	mu          sync.Mutex
	data        []byte
	contentType string
	err         error
}

func (a *stubArchive) Archive(ctx context.Context, data []byte, contentType string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = data
	a.contentType = contentType
	if a.err != nil {
		return "", a.err
	}
	return "s3://bucket/uploads/x.jpg", nil
}

var testImage = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))

func detectionConfig() DetectionConfig {
	return DetectionConfig{MinConfidence: 0.7, Timeout: time.Second}
}

func TestDetectIngredients_MapsConfidentConcepts(t *testing.T) {
	detector := &stubDetector{concepts: []Concept{
		{Name: "ripe tomato", Value: 0.95},
		{Name: "cheddar cheese slice", Value: 0.82},
		{Name: "plate", Value: 0.40},
		{Name: "lettuce", Value: 0.70},
	}}
	svc := NewDetectionService(detector, nil, detectionConfig(), nil)

	res, err := svc.DetectIngredients(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, []string{"tomato", "cheese"}, res.Ingredients, "confidence must be strictly above the threshold")
	assert.Equal(t, SourceClarifai, res.Source)
	assert.False(t, res.Failed)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg bytes")), detector.got, "data URL prefix is stripped")
}

func TestDetectIngredients_DemoMode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewDetectionService(nil, nil, detectionConfig(), zap.New(core))

	res, err := svc.DetectIngredients(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, []string{"tomato", "cheese", "lettuce", "onion"}, res.Ingredients)
	assert.Equal(t, SourceDemo, res.Source)
	assert.False(t, res.Failed)
	assert.Equal(t, 1, logs.Len())

	res.Ingredients[0] = "changed"
	assert.Equal(t, "tomato", DemoIngredients[0])
}

func TestDetectIngredients_FailureYieldsEmptyList(t *testing.T) {
	svc := NewDetectionService(&stubDetector{err: errors.New("clarifai API error: status 500")}, nil, detectionConfig(), nil)

	res, err := svc.DetectIngredients(context.Background(), testImage)

	require.NoError(t, err)
	assert.True(t, res.Failed)
	assert.Equal(t, SourceError, res.Source)
	assert.NotNil(t, res.Ingredients)
	assert.Empty(t, res.Ingredients)
}

func TestDetectIngredients_Timeout(t *testing.T) {
	cfg := DetectionConfig{MinConfidence: 0.7, Timeout: 20 * time.Millisecond}
	svc := NewDetectionService(&stubDetector{block: true}, nil, cfg, nil)

	start := time.Now()
	res, err := svc.DetectIngredients(context.Background(), testImage)

	require.NoError(t, err)
	assert.True(t, res.Failed)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDetectIngredients_InvalidImage(t *testing.T) {
	svc := NewDetectionService(&stubDetector{}, nil, detectionConfig(), nil)

	for _, image := range []string{"", "data:image/png;base64,", "not base64 !!", "data:image/png,abc"} {
		_, err := svc.DetectIngredients(context.Background(), image)
		assert.ErrorIs(t, err, ErrInvalidImage, "image %q", image)
	}
}

func TestDetectIngredients_Archive(t *testing.T) {
	t.Run("stores the decoded image", func(t *testing.T) {
		archive := &stubArchive{}
		svc := NewDetectionService(nil, archive, detectionConfig(), nil)

		res, err := svc.DetectIngredients(context.Background(), testImage)

		require.NoError(t, err)
		assert.Equal(t, "s3://bucket/uploads/x.jpg", res.ArchivedAt)
		assert.Equal(t, []byte("jpeg bytes"), archive.data)
		assert.Equal(t, "image/jpeg", archive.contentType)
	})

	t.Run("archive failures are ignored", func(t *testing.T) {
		archive := &stubArchive{err: errors.New("access denied")}
		svc := NewDetectionService(&stubDetector{concepts: []Concept{{Name: "onion", Value: 0.9}}}, archive, detectionConfig(), nil)

		res, err := svc.DetectIngredients(context.Background(), testImage)

		require.NoError(t, err)
		assert.Empty(t, res.ArchivedAt)
		assert.Equal(t, []string{"onion"}, res.Ingredients)
	})
}

func TestDetectIngredients_OversizedImage(t *testing.T) {
	big := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", MaxImageBytes+1)))
	svc := NewDetectionService(nil, nil, detectionConfig(), nil)

	_, err := svc.DetectIngredients(context.Background(), big)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
