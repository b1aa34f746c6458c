package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"alfredoptarigan/jobpost-assistant/internal/config"
	"alfredoptarigan/jobpost-assistant/internal/models"
)

type AIService interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
	GenerateChat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type openAIService struct {
	client          *openai.Client
	chatModel       string
	transcribeModel string
}

// NewOpenAIService wraps the OpenAI client behind AIService. An empty API
// key is tolerated here; every upstream call will fail with 401 instead.
func NewOpenAIService(cfg config.OpenAIConfig) AIService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAIService{
		client:          openai.NewClientWithConfig(clientConfig),
		chatModel:       cfg.ChatModel,
		transcribeModel: cfg.TranscribeModel,
	}
}

// Transcribe implements AIService.
func (s *openAIService) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.transcribeModel,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	// Whatever text came back is accepted, including empty.
	return resp.Text, nil
}

// GenerateChat implements AIService.
func (s *openAIService) GenerateChat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.chatModel,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", models.ErrGenerationEmpty
	}

	return resp.Choices[0].Message.Content, nil
}
