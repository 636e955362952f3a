package services

import "github.com/intervid/intervid-backend/internal/types"

// Response schemas for the two model calls, in the OpenAPI subset the
// generateContent API accepts. Decoding and per-type validation happen in
// code after the response comes back.

func chapterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"start_time":      map[string]any{"type": "number"},
			"end_time":        map[string]any{"type": "number"},
			"chapter_name":    map[string]any{"type": "string"},
			"chapter_summary": map[string]any{"type": "string"},
		},
		"required": []string{"start_time", "end_time", "chapter_name", "chapter_summary"},
	}
}

func chapterListSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chapters": map[string]any{
				"type":  "array",
				"items": chapterSchema(),
			},
		},
		"required": []string{"chapters"},
	}
}

func interactiveContentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer":                  map[string]any{"type": "string"},
			"instruction":             map[string]any{"type": "string"},
			"initial_code":            map[string]any{"type": "string"},
			"solution":                map[string]any{"type": "string"},
			"infographic_title":       map[string]any{"type": "string"},
			"infographic_description": map[string]any{"type": "string"},
			"image_prompt":            map[string]any{"type": "string"},
			"graph_title":             map[string]any{"type": "string"},
			"graph_description":       map[string]any{"type": "string"},
			"equations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"x_label":                   map[string]any{"type": "string"},
			"y_label":                   map[string]any{"type": "string"},
			"three_d_model_code":        map[string]any{"type": "string"},
			"three_d_model_description": map[string]any{"type": "string"},
		},
	}
}

func segmentContentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []string{
					types.InteractiveTypeQuiz,
					types.InteractiveTypeInfographic,
					types.InteractiveTypeGraph,
					types.InteractiveTypeThreeDModel,
				},
			},
			"content": interactiveContentSchema(),
		},
		"required": []string{"type", "content"},
	}
}
