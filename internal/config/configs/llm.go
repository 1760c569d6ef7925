package configs

import "time"

// LLM configures the OpenAI compatible chat completion endpoint. The
// defaults point at Groq.
type LLM struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"https://api.groq.com/openai/v1/"`
	// AgentModel parses budgets and campaign details with function calling.
	AgentModel string `env:"AGENT_MODEL" envDefault:"llama-3.3-70b-versatile"`
	// RecommendModel answers the JSON mode recommendation prompts.
	RecommendModel string        `env:"RECOMMEND_MODEL" envDefault:"llama3-70b-8192"`
	MaxTokens      int64         `env:"MAX_TOKENS" envDefault:"4096"`
	Temperature    float64       `env:"TEMPERATURE" envDefault:"0"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// ImageGen configures the Gemini image model used for logos.
type ImageGen struct {
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"gemini-2.0-flash-exp"`
	BaseURL string        `env:"BASE_URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"120s"`
}
