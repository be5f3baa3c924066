package types

const SegmentTypeText = "text"

// Segment is one block of a provider reply. Non-text blocks keep their
// provider type name (tool_use, thinking, image, ...) and an empty Text.
type Segment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Completion is a provider reply translated into a provider-neutral shape.
type Completion struct {
	Model    string    `json:"model"`
	Segments []Segment `json:"segments"`
	Usage    Usage     `json:"usage"`
}

// FirstText returns the first text segment of the reply, skipping non-text
// segments. ok is false when the reply carries no text segment at all.
func (c *Completion) FirstText() (text string, ok bool) {
	if c == nil {
		return "", false
	}
	for _, seg := range c.Segments {
		if seg.Type == SegmentTypeText {
			return seg.Text, true
		}
	}
	return "", false
}
