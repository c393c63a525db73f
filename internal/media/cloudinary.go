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
	"strconv"
	"time"
)

// CloudinaryUploader uploads images to the Cloudinary REST API and returns
// the resulting secure URLs.
type CloudinaryUploader struct {
	httpClient *http.Client
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
}

// NewCloudinaryUploader creates an uploader for the given cloud and folder.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) *CloudinaryUploader {
	return &CloudinaryUploader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
	}
}

// Upload validates and uploads files one by one, preserving input order.
func (u *CloudinaryUploader) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := ValidateFiles(files); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := u.uploadOne(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *CloudinaryUploader) uploadOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", fh.Filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", err
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	_ = w.WriteField("api_key", u.apiKey)
	_ = w.WriteField("timestamp", timestamp)
	_ = w.WriteField("folder", u.folder)
	_ = w.WriteField("signature", u.sign(timestamp))
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, payload)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	return out.SecureURL, nil
}

// sign builds the SHA-1 signature Cloudinary expects over the signed params.
func (u *CloudinaryUploader) sign(timestamp string) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%s%s", u.folder, timestamp, u.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
