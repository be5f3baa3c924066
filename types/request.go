package types

type PromptRequest struct {
	Input string `json:"input"`
}
