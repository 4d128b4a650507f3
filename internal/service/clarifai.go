package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	clarifaiUserID      = "clarifai"
	clarifaiAppID       = "main"
	clarifaiStatusOK    = 10000
	maxClarifaiBodySize = 1 << 20
)

// Concept is one label returned by the vision model with its confidence
type Concept struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type clarifaiRequest struct {
	UserAppID clarifaiUserApp `json:"user_app_id"`
	Inputs    []clarifaiInput `json:"inputs"`
}

type clarifaiUserApp struct {
	UserID string `json:"user_id"`
	AppID  string `json:"app_id"`
}

type clarifaiInput struct {
	Data struct {
		Image struct {
			Base64 string `json:"base64"`
		} `json:"image"`
	} `json:"data"`
}

type clarifaiResponse struct {
	Status struct {
		Code        int    `json:"code"`
		Description string `json:"description"`
	} `json:"status"`
	Outputs []struct {
		Data struct {
			Concepts []Concept `json:"concepts"`
		} `json:"data"`
	} `json:"outputs"`
}

// ClarifaiDetector calls the Clarifai food-item-recognition model
type ClarifaiDetector struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClarifaiDetector creates a detector posting to endpoint. A nil client
// gets a 30 second timeout; callers bound individual calls with a context.
func NewClarifaiDetector(apiKey, endpoint string, client *http.Client) *ClarifaiDetector {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ClarifaiDetector{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   client,
	}
}

// Detect sends one image and returns the concepts of the first output
func (d *ClarifaiDetector) Detect(ctx context.Context, imageBase64 string) ([]Concept, error) {
	var input clarifaiInput
	input.Data.Image.Base64 = imageBase64

	jsonData, err := json.Marshal(clarifaiRequest{
		UserAppID: clarifaiUserApp{UserID: clarifaiUserID, AppID: clarifaiAppID},
		Inputs:    []clarifaiInput{input},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxClarifaiBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("clarifai API error: status %d", resp.StatusCode)
	}

	var result clarifaiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Status.Code != clarifaiStatusOK {
		return nil, fmt.Errorf("clarifai API returned status %d: %s", result.Status.Code, result.Status.Description)
	}

	if len(result.Outputs) == 0 {
		return []Concept{}, nil
	}
	concepts := result.Outputs[0].Data.Concepts
	if concepts == nil {
		concepts = []Concept{}
	}
	return concepts, nil
}
