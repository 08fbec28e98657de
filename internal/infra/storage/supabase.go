package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseStore talks to the Supabase storage REST API. Payment screenshots
// live in a private bucket; the stored path is opaque and display always goes
// through a freshly minted short-lived signed URL.
type SupabaseStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewSupabaseStore(projectURL, apiKey string, timeout time.Duration) *SupabaseStore {
	return &SupabaseStore{
		baseURL:    strings.TrimRight(projectURL, "/") + "/storage/v1",
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	endpoint := fmt.Sprintf("%s/object/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	s.authorize(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("storage upload returned status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

// CreateSignedURL mints a time-limited link to a private object.
func (s *SupabaseStore) CreateSignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	endpoint := fmt.Sprintf("%s/object/sign/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	body, err := json.Marshal(map[string]int{"expiresIn": int(ttl.Seconds())})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("storage sign returned status %d: %s", resp.StatusCode, readBody(resp.Body))
	}

	var out struct {
		SignedURL string `json:"signedURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.SignedURL == "" {
		return "", fmt.Errorf("storage sign returned an empty URL")
	}
	return s.baseURL + out.SignedURL, nil
}

func (s *SupabaseStore) authorize(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}

// escapePath escapes each segment but keeps the separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
