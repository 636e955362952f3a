package types

// NotebookSummary is one entry of the notebook listing. Filename is the
// stored name without the .json extension.
type NotebookSummary struct {
	Filename   string `json:"filename"`
	VideoTitle string `json:"video_title"`
	VideoID    string `json:"video_id"`
	Thumbnail  string `json:"thumbnail"`
}
