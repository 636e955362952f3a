package types

// Interactive content variants a segment can carry. The "code" variant is
// part of the persisted shape but the classifier prompt never requests it.
const (
	InteractiveTypeQuiz        = "quiz"
	InteractiveTypeCode        = "code"
	InteractiveTypeInfographic = "infographic"
	InteractiveTypeGraph       = "graph"
	InteractiveTypeThreeDModel = "three_d_model"
)

// VideoChapter is one time-bounded section of a video as returned by the
// chapter-planning model call.
type VideoChapter struct {
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	ChapterName    string  `json:"chapter_name"`
	ChapterSummary string  `json:"chapter_summary"`
}

type ChapterList struct {
	Chapters []VideoChapter `json:"chapters"`
}

// InteractiveContent is a union over the five variants; only the fields
// matching the segment's interactive type are populated.
type InteractiveContent struct {
	// quiz
	Question string   `json:"question,omitempty"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer,omitempty"`

	// code
	Instruction string `json:"instruction,omitempty"`
	InitialCode string `json:"initial_code,omitempty"`
	Solution    string `json:"solution,omitempty"`

	// infographic
	InfographicTitle       string `json:"infographic_title,omitempty"`
	InfographicDescription string `json:"infographic_description,omitempty"`
	ImagePrompt            string `json:"image_prompt,omitempty"`

	// graph
	GraphTitle       string   `json:"graph_title,omitempty"`
	GraphDescription string   `json:"graph_description,omitempty"`
	Equations        []string `json:"equations,omitempty"`
	XLabel           string   `json:"x_label,omitempty"`
	YLabel           string   `json:"y_label,omitempty"`

	// three_d_model; the code string is passed through verbatim and is
	// executed (if at all) by the rendering host, never here.
	ThreeDModelCode        string `json:"three_d_model_code,omitempty"`
	ThreeDModelDescription string `json:"three_d_model_description,omitempty"`
}

// Segment is a chapter enriched with one generated interactive content
// variant. Segments keep chapter order.
type Segment struct {
	StartTime       float64            `json:"start_time"`
	EndTime         float64            `json:"end_time"`
	Title           string             `json:"title"`
	Summary         string             `json:"summary"`
	InteractiveType string             `json:"interactive_type"`
	Content         InteractiveContent `json:"content"`
}

// VideoAnalysisResponse is the full result of processing one video and the
// shape typically persisted as a notebook.
type VideoAnalysisResponse struct {
	Segments   []Segment `json:"segments"`
	VideoID    string    `json:"video_id"`
	VideoTitle string    `json:"video_title"`
}
