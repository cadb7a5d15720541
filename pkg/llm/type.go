package llm

import "github.com/anthropics/anthropic-sdk-go"

// Config holds the settings for the Anthropic client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

type anthropicClient struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}
