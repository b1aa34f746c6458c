package services

import (
	"context"
	"fmt"
)

type AssistantService interface {
	Respond(ctx context.Context, userInput, userName string) (string, error)
}

type assistantService struct {
	aiService     AIService
	promptBuilder *PromptBuilder
}

func NewAssistantService(aiService AIService) AssistantService {
	return &assistantService{
		aiService:     aiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Respond handles one conversational turn. Until a name is known the latest
// utterance is taken as the caller's name and answered locally, with no
// upstream call. After that, every turn makes exactly one chat-completion
// call carrying the stored name and the latest utterance only.
func (s *assistantService) Respond(ctx context.Context, userInput, userName string) (string, error) {
	if userName == "" {
		return s.promptBuilder.BuildGreeting(userInput), nil
	}

	message, err := s.aiService.GenerateChat(ctx, s.promptBuilder.BuildAssistantMessages(userInput, userName))
	if err != nil {
		return "", fmt.Errorf("failed to generate assistant reply: %w", err)
	}

	return message, nil
}
