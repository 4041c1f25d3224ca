package biometric

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ExtractorConfig configures the REST client of the face-encoding service.
type ExtractorConfig struct {
	BaseURL string
	Timeout time.Duration
}

// restExtractor is the resty-backed implementation of [Extractor]. It posts
// the raw image to the encoder service and decodes the returned vectors.
type restExtractor struct {
	client *resty.Client
}

// encodeResponse is the encoder service's response payload. Vectors holds
// one entry per detected face.
type encodeResponse struct {
	Vectors [][]float64 `json:"vectors"`
}

// encodeErrorResponse is the encoder service's error payload for
// unprocessable images.
type encodeErrorResponse struct {
	Code string `json:"code"`
}

// NewRESTExtractor constructs an [Extractor] talking to the face-encoding
// service at cfg.BaseURL.
func NewRESTExtractor(cfg ExtractorConfig) Extractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &restExtractor{client: cli}
}

// Extract implements [Extractor].
//
// Zero detected faces and multiple detected faces are business outcomes
// ([ErrNoFaceDetected], [ErrMultipleFaces]); anything else that prevents the
// encoder from answering wraps [ErrExtractorUnavailable].
func (e *restExtractor) Extract(ctx context.Context, image []byte) ([]float64, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetFileReader("image", "probe.jpg", bytes.NewReader(image)).
		Post("/api/v1/encode")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractorUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnprocessableEntity:
		var payload encodeErrorResponse
		if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Code == "multiple_faces" {
			return nil, ErrMultipleFaces
		}
		return nil, ErrNoFaceDetected
	default:
		return nil, fmt.Errorf("%w: encoder returned status %d", ErrExtractorUnavailable, resp.StatusCode())
	}

	var payload encodeResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrExtractorUnavailable, err)
	}

	switch len(payload.Vectors) {
	case 0:
		return nil, ErrNoFaceDetected
	case 1:
	default:
		return nil, ErrMultipleFaces
	}

	vector := payload.Vectors[0]
	if len(vector) != VectorDim {
		return nil, fmt.Errorf("%w: encoder returned a %d-dimensional vector, want %d", ErrExtractorUnavailable, len(vector), VectorDim)
	}

	return vector, nil
}
