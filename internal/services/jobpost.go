package services

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type JobPostService interface {
	GenerateFromAudio(ctx context.Context, audioPath string) (string, error)
}

type jobPostService struct {
	aiService     AIService
	promptBuilder *PromptBuilder
	retryPolicy   RetryPolicy
}

func NewJobPostService(aiService AIService, retryPolicy RetryPolicy) JobPostService {
	return &jobPostService{
		aiService:     aiService,
		promptBuilder: NewPromptBuilder(),
		retryPolicy:   retryPolicy,
	}
}

// GenerateFromAudio runs the stored upload through transcription and
// job-post generation. Stages run strictly in order; the first failure
// aborts the whole request and no partial result is returned.
func (s *jobPostService) GenerateFromAudio(ctx context.Context, audioPath string) (string, error) {
	log.Println("🎙 Sending transcription request...")
	transcript, err := s.retryPolicy.Do(ctx, func(ctx context.Context) (string, error) {
		return s.aiService.Transcribe(ctx, audioPath)
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	if strings.TrimSpace(transcript) == "" {
		// An empty transcript is still sent to generation.
		log.Println("⚠️ Empty transcript received, generating anyway")
	}
	log.Printf("📝 Transcript received: %d characters", len(transcript))

	log.Println("🤖 Generating job post...")
	jobPost, err := s.aiService.GenerateChat(ctx, s.promptBuilder.BuildJobPostMessages(transcript))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	log.Printf("✅ Job post generated: %d characters", len(jobPost))
	return jobPost, nil
}
