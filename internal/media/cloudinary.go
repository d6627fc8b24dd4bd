package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"inkwell/internal/config"
)

// CloudinaryClient uploads images to Cloudinary's REST upload endpoint using
// signed requests. It implements Uploader.
type CloudinaryClient struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	now        func() time.Time
}

// NewCloudinaryClient builds a client from configuration.
func NewCloudinaryClient(cfg *config.Config) *CloudinaryClient {
	baseURL := cfg.CloudinaryBaseURL
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com"
	}
	return &CloudinaryClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		cloudName:  cfg.CloudinaryCloudName,
		apiKey:     cfg.CloudinaryAPIKey,
		apiSecret:  cfg.CloudinaryAPISecret,
		now:        time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes the file at localPath to Cloudinary and returns the hosted
// URL. The temp file is left in place; cleanup belongs to the caller.
func (c *CloudinaryClient) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read upload file: %w", err)
	}

	_ = w.WriteField("api_key", c.apiKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("signature", c.sign(timestamp))
	if err := w.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("cloudinary response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("cloudinary upload failed (%d): %s", resp.StatusCode, parsed.Error.Message)
	}

	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	return parsed.URL, nil
}

// sign produces the SHA-1 request signature over the signed params, per
// Cloudinary's signed-upload scheme.
func (c *CloudinaryClient) sign(timestamp string) string {
	payload := "timestamp=" + timestamp + c.apiSecret
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
