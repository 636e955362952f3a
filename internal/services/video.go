package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intervid/intervid-backend/internal/clients/gemini"
	"github.com/intervid/intervid-backend/internal/clients/youtube"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/types"
)

const (
	untitledVideoTitle = "Untitled Video"
	demoVideoTitle     = "Demo Video"

	chapterTemperature = 0.2
	segmentTemperature = 0.3
)

// TitleLookup resolves a human-readable title for a video URL.
type TitleLookup interface {
	Lookup(ctx context.Context, videoURL string) (string, error)
}

type VideoService interface {
	// ProcessVideo runs the full analysis for one video URL. Upstream
	// failures degrade to a smaller but well-formed response; the only
	// caller-facing error is an unusable URL, which handlers reject before
	// calling here.
	ProcessVideo(ctx context.Context, videoURL string) (*types.VideoAnalysisResponse, error)
}

type videoService struct {
	log    *logger.Logger
	ai     gemini.Client // nil when no API credentials are configured
	titles TitleLookup
}

func NewVideoService(baseLog *logger.Logger, ai gemini.Client, titles TitleLookup) VideoService {
	return &videoService{
		log:    baseLog.With("service", "VideoService"),
		ai:     ai,
		titles: titles,
	}
}

func (vs *videoService) ProcessVideo(ctx context.Context, videoURL string) (*types.VideoAnalysisResponse, error) {
	videoID := youtube.VideoID(videoURL)

	if vs.ai == nil {
		vs.log.Info("No AI credentials configured, returning demo response", "video_id", videoID)
		return demoResponse(videoID), nil
	}

	vs.log.Info("Step 1: planning chapters", "video_id", videoID)
	chapters := vs.videoChapters(ctx, videoURL)
	if len(chapters) == 0 {
		vs.log.Warn("No chapters produced, returning empty result", "video_id", videoID)
		return &types.VideoAnalysisResponse{
			Segments:   []types.Segment{},
			VideoID:    videoID,
			VideoTitle: demoVideoTitle,
		}, nil
	}

	vs.log.Info("Step 2: generating content per chapter", "video_id", videoID, "chapters", len(chapters))
	segments := make([]types.Segment, 0, len(chapters))
	for i, chapter := range chapters {
		vs.log.Debug("Processing chapter", "index", i+1, "total", len(chapters), "name", chapter.ChapterName)
		interactiveType, content := vs.segmentContent(ctx, videoURL, chapter.StartTime, chapter.EndTime)
		segments = append(segments, types.Segment{
			StartTime:       chapter.StartTime,
			EndTime:         chapter.EndTime,
			Title:           chapter.ChapterName,
			Summary:         chapter.ChapterSummary,
			InteractiveType: interactiveType,
			Content:         content,
		})
	}

	title := untitledVideoTitle
	if vs.titles != nil {
		if t, err := vs.titles.Lookup(ctx, videoURL); err == nil {
			title = t
		} else {
			vs.log.Warn("Title lookup failed", "video_id", videoID, "error", err)
		}
	}

	return &types.VideoAnalysisResponse{
		Segments:   segments,
		VideoID:    videoID,
		VideoTitle: title,
	}, nil
}

// videoChapters asks the model to split the video into at most 5 chapters.
// Every failure mode collapses to an empty list.
func (vs *videoService) videoChapters(ctx context.Context, videoURL string) []types.VideoChapter {
	parts := []gemini.Part{
		{FileURI: videoURL},
		{Text: chapterPrompt},
	}
	raw, err := vs.ai.GenerateJSON(ctx, parts, chapterListSchema(), chapterTemperature)
	if err != nil {
		vs.log.Warn("Chapter planning call failed", "error", err)
		return nil
	}
	var list types.ChapterList
	if err := json.Unmarshal(raw, &list); err != nil {
		vs.log.Warn("Chapter planning response did not match schema", "error", err)
		return nil
	}
	return list.Chapters
}

type segmentContentResult struct {
	Type    string                   `json:"type"`
	Content types.InteractiveContent `json:"content"`
}

// segmentContent classifies one chapter window and returns the generated
// content. On any failure it falls back to a fixed quiz so the pipeline
// always yields exactly one segment per chapter.
func (vs *videoService) segmentContent(ctx context.Context, videoURL string, startTime, endTime float64) (string, types.InteractiveContent) {
	parts := []gemini.Part{
		{FileURI: videoURL},
		{Text: fmt.Sprintf(segmentPromptTemplate, startTime, endTime)},
	}
	raw, err := vs.ai.GenerateJSON(ctx, parts, segmentContentSchema(), segmentTemperature)
	if err != nil {
		vs.log.Warn("Segment content call failed, using fallback quiz", "start", startTime, "end", endTime, "error", err)
		return fallbackQuiz()
	}

	var result segmentContentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		vs.log.Warn("Segment content response did not match schema, using fallback quiz", "error", err)
		return fallbackQuiz()
	}
	if !validInteractiveType(result.Type) {
		vs.log.Warn("Segment content returned unknown interactive type, using fallback quiz", "type", result.Type)
		return fallbackQuiz()
	}
	return result.Type, result.Content
}

func validInteractiveType(t string) bool {
	switch t {
	case types.InteractiveTypeQuiz,
		types.InteractiveTypeInfographic,
		types.InteractiveTypeGraph,
		types.InteractiveTypeThreeDModel:
		return true
	}
	return false
}

func fallbackQuiz() (string, types.InteractiveContent) {
	return types.InteractiveTypeQuiz, types.InteractiveContent{
		Question: "Could not generate content. What is this video regarding?",
		Options:  []string{"Topic A", "Topic B", "Topic C"},
		Answer:   "Topic A",
	}
}

// demoResponse is the canned single-segment answer used for offline
// operation when no API key is configured.
func demoResponse(videoID string) *types.VideoAnalysisResponse {
	return &types.VideoAnalysisResponse{
		VideoID:    videoID,
		VideoTitle: untitledVideoTitle,
		Segments: []types.Segment{
			{
				StartTime:       0,
				EndTime:         60,
				Title:           "Intro",
				Summary:         "Intro",
				InteractiveType: types.InteractiveTypeInfographic,
				Content: types.InteractiveContent{
					InfographicTitle:       "Welcome",
					InfographicDescription: "This is a demo.",
					ImagePrompt:            "A welcome banner",
				},
			},
		},
	}
}
