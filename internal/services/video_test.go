package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/intervid/intervid-backend/internal/clients/gemini"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/types"
)

type fakeAI struct {
	generateJSON  func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error)
	generateImage func(ctx context.Context, prompt string) (gemini.ImageGeneration, error)
	jsonCalls     int
	imageCalls    int
}

func (f *fakeAI) GenerateJSON(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
	f.jsonCalls++
	if f.generateJSON == nil {
		return nil, errors.New("not implemented")
	}
	return f.generateJSON(ctx, parts, schema, temperature)
}

func (f *fakeAI) GenerateImage(ctx context.Context, prompt string) (gemini.ImageGeneration, error) {
	f.imageCalls++
	if f.generateImage == nil {
		return gemini.ImageGeneration{}, errors.New("not implemented")
	}
	return f.generateImage(ctx, prompt)
}

type fakeTitles struct {
	title string
	err   error
}

func (f *fakeTitles) Lookup(ctx context.Context, videoURL string) (string, error) {
	return f.title, f.err
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1s"

func TestProcessVideo_DemoBypassWithoutCredentials(t *testing.T) {
	vs := NewVideoService(newTestLogger(t), nil, &fakeTitles{title: "should not be used"})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if resp.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("video_id=%q", resp.VideoID)
	}
	if resp.VideoTitle != "Untitled Video" {
		t.Fatalf("video_title=%q", resp.VideoTitle)
	}
	if len(resp.Segments) != 1 {
		t.Fatalf("expected single demo segment, got %d", len(resp.Segments))
	}
	seg := resp.Segments[0]
	if seg.InteractiveType != types.InteractiveTypeInfographic {
		t.Fatalf("demo segment type=%q", seg.InteractiveType)
	}
	if seg.StartTime != 0 || seg.EndTime != 60 {
		t.Fatalf("demo segment window %v-%v", seg.StartTime, seg.EndTime)
	}
	if seg.Content.InfographicTitle != "Welcome" {
		t.Fatalf("demo infographic title=%q", seg.Content.InfographicTitle)
	}
}

func TestProcessVideo_PlannerFailureYieldsEmptyResult(t *testing.T) {
	ai := &fakeAI{
		generateJSON: func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
			return nil, errors.New("upstream down")
		},
	}
	vs := NewVideoService(newTestLogger(t), ai, &fakeTitles{title: "ignored"})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if resp.VideoID != "dQw4w9WgXcQ" {
		t.Fatalf("video_id=%q", resp.VideoID)
	}
	if resp.VideoTitle != "Demo Video" {
		t.Fatalf("video_title=%q", resp.VideoTitle)
	}
	if len(resp.Segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(resp.Segments))
	}
	if resp.Segments == nil {
		t.Fatalf("segments must be an empty slice, not nil")
	}
}

func TestProcessVideo_EmptyChapterListYieldsEmptyResult(t *testing.T) {
	ai := &fakeAI{
		generateJSON: func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
			return json.RawMessage(`{"chapters":[]}`), nil
		},
	}
	vs := NewVideoService(newTestLogger(t), ai, &fakeTitles{title: "ignored"})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if resp.VideoTitle != "Demo Video" || len(resp.Segments) != 0 {
		t.Fatalf("unexpected degraded result: title=%q segments=%d", resp.VideoTitle, len(resp.Segments))
	}
	if ai.jsonCalls != 1 {
		t.Fatalf("expected exactly one AI call, got %d", ai.jsonCalls)
	}
}

func chapterPlanJSON() json.RawMessage {
	return json.RawMessage(`{
		"chapters": [
			{"start_time": 0, "end_time": 30, "chapter_name": "Basics", "chapter_summary": "The basics."},
			{"start_time": 30, "end_time": 90, "chapter_name": "Deep Dive", "chapter_summary": "Details."}
		]
	}`)
}

func TestProcessVideo_ContentFailureFallsBackToQuiz(t *testing.T) {
	ai := &fakeAI{}
	ai.generateJSON = func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
		if ai.jsonCalls == 1 {
			return chapterPlanJSON(), nil
		}
		return nil, errors.New("content generation failed")
	}
	vs := NewVideoService(newTestLogger(t), ai, &fakeTitles{err: errors.New("no title")})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("one segment per chapter expected, got %d", len(resp.Segments))
	}
	for i, seg := range resp.Segments {
		if seg.InteractiveType != types.InteractiveTypeQuiz {
			t.Fatalf("segment %d type=%q, want quiz fallback", i, seg.InteractiveType)
		}
		if len(seg.Content.Options) != 3 {
			t.Fatalf("segment %d has %d options, want 3", i, len(seg.Content.Options))
		}
		if seg.Content.Answer != seg.Content.Options[0] {
			t.Fatalf("segment %d answer=%q, want options[0]=%q", i, seg.Content.Answer, seg.Content.Options[0])
		}
	}
	if resp.VideoTitle != "Untitled Video" {
		t.Fatalf("title lookup failure should yield Untitled Video, got %q", resp.VideoTitle)
	}
}

func TestProcessVideo_AssemblesSegmentsInChapterOrder(t *testing.T) {
	ai := &fakeAI{}
	ai.generateJSON = func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
		switch ai.jsonCalls {
		case 1:
			return chapterPlanJSON(), nil
		case 2:
			return json.RawMessage(`{
				"type": "graph",
				"content": {"graph_title": "Slope", "equations": ["y = 2x"], "x_label": "x", "y_label": "y"}
			}`), nil
		default:
			return json.RawMessage(`{
				"type": "three_d_model",
				"content": {"three_d_model_code": "function init3D(scene) {}", "three_d_model_description": "A cube."}
			}`), nil
		}
	}
	vs := NewVideoService(newTestLogger(t), ai, &fakeTitles{title: "Linear Algebra 101"})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if resp.VideoTitle != "Linear Algebra 101" {
		t.Fatalf("video_title=%q", resp.VideoTitle)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("segments=%d", len(resp.Segments))
	}

	first, second := resp.Segments[0], resp.Segments[1]
	if first.Title != "Basics" || second.Title != "Deep Dive" {
		t.Fatalf("chapter order not preserved: %q then %q", first.Title, second.Title)
	}
	if first.InteractiveType != types.InteractiveTypeGraph {
		t.Fatalf("first segment type=%q", first.InteractiveType)
	}
	if len(first.Content.Equations) != 1 || first.Content.Equations[0] != "y = 2x" {
		t.Fatalf("graph equations=%v", first.Content.Equations)
	}
	if second.InteractiveType != types.InteractiveTypeThreeDModel {
		t.Fatalf("second segment type=%q", second.InteractiveType)
	}
	if second.Content.ThreeDModelCode == "" {
		t.Fatalf("three_d_model_code should be passed through")
	}
	// 1 planning call + 1 per chapter.
	if ai.jsonCalls != 3 {
		t.Fatalf("AI calls=%d, want 3", ai.jsonCalls)
	}
}

func TestProcessVideo_UnknownInteractiveTypeFallsBack(t *testing.T) {
	ai := &fakeAI{}
	ai.generateJSON = func(ctx context.Context, parts []gemini.Part, schema map[string]any, temperature float64) (json.RawMessage, error) {
		if ai.jsonCalls == 1 {
			return json.RawMessage(`{"chapters":[{"start_time":0,"end_time":10,"chapter_name":"A","chapter_summary":"a"}]}`), nil
		}
		return json.RawMessage(`{"type":"essay","content":{}}`), nil
	}
	vs := NewVideoService(newTestLogger(t), ai, &fakeTitles{title: "T"})

	resp, err := vs.ProcessVideo(context.Background(), testVideoURL)
	if err != nil {
		t.Fatalf("ProcessVideo error: %v", err)
	}
	if resp.Segments[0].InteractiveType != types.InteractiveTypeQuiz {
		t.Fatalf("unknown type must degrade to the quiz fallback, got %q", resp.Segments[0].InteractiveType)
	}
}
