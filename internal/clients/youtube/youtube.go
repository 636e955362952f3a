package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/intervid/intervid-backend/internal/pkg/logger"
)

const defaultOEmbedBaseURL = "https://www.youtube.com"

// Some oEmbed deployments reject requests without a browser User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// VideoID extracts the video ID from a YouTube watch or short URL. When
// neither pattern matches, the input is returned unchanged; callers must
// treat the result as best effort rather than a validated ID.
func VideoID(rawURL string) string {
	if _, after, ok := strings.Cut(rawURL, "v="); ok {
		id, _, _ := strings.Cut(after, "&")
		return id
	}
	if _, after, ok := strings.Cut(rawURL, "youtu.be/"); ok {
		id, _, _ := strings.Cut(after, "?")
		return id
	}
	return rawURL
}

// ThumbnailURL returns the medium-quality thumbnail for a video ID, or an
// empty string when no ID is known.
func ThumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", videoID)
}

// TitleClient resolves video titles through the oEmbed endpoint.
type TitleClient struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func NewTitleClient(baseLog *logger.Logger, baseURL string) *TitleClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOEmbedBaseURL
	}
	return &TitleClient{
		log:        baseLog.With("client", "YouTubeTitleClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup fetches the title for a video URL. Errors are returned to the
// caller; the pipeline substitutes "Untitled Video" on its own.
func (tc *TitleClient) Lookup(ctx context.Context, videoURL string) (string, error) {
	q := url.Values{}
	q.Set("url", videoURL)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"/oembed?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed http %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("oembed decode error: %w", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return "", fmt.Errorf("oembed response missing title")
	}
	return payload.Title, nil
}
