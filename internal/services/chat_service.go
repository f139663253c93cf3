package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/avaldivia/childbot-be/internal/auth"
	"github.com/avaldivia/childbot-be/internal/config"
)

// ErrUpstream is returned when the language-model service fails or returns
// an unusable response. Callers map it to 500.
var ErrUpstream = errors.New("language model request failed")

// DefaultMaxTokens caps answers when the client does not ask for a limit.
const DefaultMaxTokens = 2000

const systemPromptFmt = "You are an educational assistant for 12-year-old children. " +
	"Answer in a clear, simple and friendly way, using examples a sixth grader can understand. " +
	"Avoid technical jargon and explain any difficult term. " +
	"The question is related to the topic: %s. Answers must be at most 2000 tokens long."

// ChatServiceProvider defines the interface for the chat relay.
type ChatServiceProvider interface {
	Ask(ctx context.Context, question string, maxTokens int) (string, error)
}

// completionClient is the slice of the OpenAI client the relay uses.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatService relays questions to an OpenAI-compatible chat-completions API
// with a fixed child-friendly system prompt.
type ChatService struct {
	client completionClient
	model  string
	events EventServiceProvider
}

// NewChatService builds the OpenAI client from configuration.
func NewChatService(cfg *config.Config, events EventServiceProvider) *ChatService {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &ChatService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAIModel,
		events: events,
	}
}

// SplitTopic extracts a leading "[topic]" tag from a question. The topic is
// lower-cased and the remainder trimmed; questions without a tag fall under
// the "general" topic unchanged.
func SplitTopic(question string) (topic, remainder string) {
	if strings.HasPrefix(question, "[") {
		if end := strings.Index(question, "]"); end >= 0 {
			return strings.ToLower(question[1:end]), strings.TrimSpace(question[end+1:])
		}
	}
	return "general", question
}

// Ask forwards the question to the language model and returns the top
// response text verbatim. No retries; upstream failures surface as
// ErrUpstream with the underlying message.
func (s *ChatService) Ask(ctx context.Context, question string, maxTokens int) (string, error) {
	topic, content := SplitTopic(question)
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(systemPromptFmt, topic)},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	if username, ok := auth.CurrentUser(ctx); ok {
		if err := s.events.CreateEvent(ctx, EventChatRelayed, "info", fmt.Sprintf("chat question relayed (topic %s)", topic), &username); err != nil {
			log.Warn().Err(err).Msg("Failed to record event")
		}
	}
	return resp.Choices[0].Message.Content, nil
}
