package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/intervid/intervid-backend/internal/pkg/logger"
)

// Part is one entry of a multimodal request: either plain text or a file
// attached by reference (a YouTube URL in this backend).
type Part struct {
	Text    string
	FileURI string
}

type ImageGeneration struct {
	Bytes    []byte
	MimeType string
}

// Client is the Gemini API surface used by the rest of the backend.
type Client interface {
	// GenerateJSON issues one generateContent call constrained to a JSON
	// response matching schema, and returns the raw JSON text of the first
	// candidate. The caller decodes it into its own typed structure.
	GenerateJSON(ctx context.Context, parts []Part, schema map[string]any, temperature float64) (json.RawMessage, error)

	// GenerateImage issues one text+image generateContent call with a fixed
	// 16:9 aspect ratio and returns the first inline image part.
	GenerateImage(ctx context.Context, prompt string) (ImageGeneration, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	imageModel string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-3-pro-preview"
	}

	imageModel := strings.TrimSpace(os.Getenv("GEMINI_IMAGE_MODEL"))
	if imageModel == "" {
		imageModel = "gemini-3-pro-image-preview"
	}

	timeoutSec := 120
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	return &client{
		log:        log.With("client", "GeminiClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		imageModel: imageModel,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type geminiHTTPError struct {
	StatusCode int
	Body       string
}

func (e *geminiHTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

// -------------------- generateContent wire types --------------------

type fileData struct {
	FileURI string `json:"fileUri"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	FileData   *fileData   `json:"fileData,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generationConfig struct {
	ResponseMimeType   string         `json:"responseMimeType,omitempty"`
	ResponseSchema     map[string]any `json:"responseSchema,omitempty"`
	Temperature        *float64       `json:"temperature,omitempty"`
	ResponseModalities []string       `json:"responseModalities,omitempty"`
	ImageConfig        *imageConfig   `json:"imageConfig,omitempty"`
}

type generateContentRequest struct {
	Contents         []requestContent  `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

func (c *client) generateContent(ctx context.Context, model string, req generateContentRequest) (generateContentResponse, error) {
	var out generateContentResponse

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return out, err
	}

	path := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return out, err
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return out, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return out, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("gemini decode error: %w; raw=%s", err, string(raw))
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return out, fmt.Errorf("gemini prompt blocked: %s", out.PromptFeedback.BlockReason)
	}
	return out, nil
}

func candidateText(resp generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var out strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			out.WriteString(p.Text)
		}
	}
	return out.String()
}

func (c *client) GenerateJSON(ctx context.Context, parts []Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
	if len(parts) == 0 {
		return nil, errors.New("at least one part required")
	}
	if schema == nil {
		return nil, errors.New("schema required")
	}

	wireParts := make([]contentPart, 0, len(parts))
	for _, p := range parts {
		cp := contentPart{Text: p.Text}
		if strings.TrimSpace(p.FileURI) != "" {
			cp.FileData = &fileData{FileURI: strings.TrimSpace(p.FileURI)}
		}
		wireParts = append(wireParts, cp)
	}

	temp := temperature
	req := generateContentRequest{
		Contents: []requestContent{{Parts: wireParts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
			Temperature:      &temp,
		},
	}

	resp, err := c.generateContent(ctx, c.model, req)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(candidateText(resp))
	if text == "" {
		return nil, errors.New("no text part in gemini response")
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("gemini returned non-JSON text: %s", text)
	}
	return json.RawMessage(text), nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string) (ImageGeneration, error) {
	var out ImageGeneration
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return out, errors.New("image prompt required")
	}

	req := generateContentRequest{
		Contents: []requestContent{{Parts: []contentPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: "16:9"},
		},
	}

	resp, err := c.generateContent(ctx, c.imageModel, req)
	if err != nil {
		return out, err
	}
	if len(resp.Candidates) == 0 {
		return out, errors.New("no candidates in gemini response")
	}

	// First inline image part wins; additional image parts are ignored.
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData == nil || strings.TrimSpace(p.InlineData.Data) == "" {
			continue
		}
		raw, decErr := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if decErr != nil {
			return out, fmt.Errorf("decode inline image data: %w", decErr)
		}
		if len(raw) == 0 {
			return out, errors.New("empty inline image data")
		}
		out.Bytes = raw
		out.MimeType = p.InlineData.MimeType
		if out.MimeType == "" {
			out.MimeType = "image/png"
		}
		return out, nil
	}

	return out, errors.New("no inline image part in gemini response")
}
