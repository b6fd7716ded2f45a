package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"options-strategy/interfaces"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrInvalidOptionChain is returned when the reference payload is not valid JSON
var ErrInvalidOptionChain = errors.New("invalid option chain payload")

// FileOptionChainLoader reads the option chain from a local JSON file
type FileOptionChainLoader struct {
	Path string
}

// NewFileOptionChainLoader creates a loader for the given file path
func NewFileOptionChainLoader(path string) *FileOptionChainLoader {
	return &FileOptionChainLoader{Path: path}
}

// Load reads the whole file
func (l *FileOptionChainLoader) Load(ctx context.Context) (json.RawMessage, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option chain file: %w", err)
	}
	return data, nil
}

// HTTPOptionChainLoader fetches the option chain from a remote endpoint
type HTTPOptionChainLoader struct {
	URL    string
	client *http.Client
}

// NewHTTPOptionChainLoader creates a loader that GETs the given URL
func NewHTTPOptionChainLoader(url string, timeout time.Duration) *HTTPOptionChainLoader {
	return &HTTPOptionChainLoader{
		URL:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Load performs a single GET and returns the response body
func (l *HTTPOptionChainLoader) Load(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch option chain: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read option chain response: %w", err)
	}
	return data, nil
}

// OptionChainService holds the reference option chain loaded once at startup.
// The payload is never mutated after construction, so it is shared without locking.
type OptionChainService struct {
	raw      json.RawMessage
	loadedAt time.Time
}

// NewOptionChainService loads and validates the option chain
func NewOptionChainService(ctx context.Context, loader interfaces.OptionChainLoader, logger *logrus.Logger) (*OptionChainService, error) {
	data, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Compact so the bytes served are stable regardless of source formatting
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptionChain, err)
	}

	svc := &OptionChainService{
		raw:      buf.Bytes(),
		loadedAt: time.Now(),
	}

	logger.WithFields(logrus.Fields{
		"bytes": len(svc.raw),
	}).Info("Option chain loaded")

	return svc, nil
}

// Raw returns a copy of the option chain payload
func (s *OptionChainService) Raw() json.RawMessage {
	out := make(json.RawMessage, len(s.raw))
	copy(out, s.raw)
	return out
}

// LoadedAt returns when the chain was loaded
func (s *OptionChainService) LoadedAt() time.Time {
	return s.loadedAt
}
