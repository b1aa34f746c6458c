package services

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/jobpost-assistant/internal/models"
)

// fakeAIService stands in for the OpenAI client in service tests.
type fakeAIService struct {
	transcribeCalls int
	transcribeErrs  []error // consumed before transcript is returned
	transcript      string

	chatCalls    int
	chatMessages [][]openai.ChatCompletionMessage
	chatReply    string
	chatErr      error
}

func (f *fakeAIService) Transcribe(ctx context.Context, filePath string) (string, error) {
	f.transcribeCalls++
	if len(f.transcribeErrs) > 0 {
		err := f.transcribeErrs[0]
		f.transcribeErrs = f.transcribeErrs[1:]
		return "", err
	}
	return f.transcript, nil
}

func (f *fakeAIService) GenerateChat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	f.chatCalls++
	f.chatMessages = append(f.chatMessages, messages)
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

func TestGenerateFromAudio(t *testing.T) {
	ai := &fakeAIService{
		transcript: "We need a backend engineer",
		chatReply:  "Job Post: Backend Engineer (Remote)",
	}
	svc := NewJobPostService(ai, NewRetryPolicy(3, 0))

	jobPost, err := svc.GenerateFromAudio(context.Background(), "/tmp/audio_test.wav")

	require.NoError(t, err)
	assert.Equal(t, "Job Post: Backend Engineer (Remote)", jobPost)
	assert.Equal(t, 1, ai.transcribeCalls)

	require.Len(t, ai.chatMessages, 1)
	messages := ai.chatMessages[0]
	require.Len(t, messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "We need a backend engineer", messages[1].Content)
}

func TestGenerateFromAudioRetriesTransientTranscriptionFailures(t *testing.T) {
	ai := &fakeAIService{
		transcribeErrs: []error{errors.New("timeout"), errors.New("timeout")},
		transcript:     "We need a backend engineer",
		chatReply:      "Job Post: Backend Engineer",
	}
	svc := NewJobPostService(ai, NewRetryPolicy(3, 0))

	jobPost, err := svc.GenerateFromAudio(context.Background(), "/tmp/audio_test.wav")

	require.NoError(t, err)
	assert.Equal(t, "Job Post: Backend Engineer", jobPost)
	assert.Equal(t, 3, ai.transcribeCalls)
}

func TestGenerateFromAudioFailsWhenRetriesExhausted(t *testing.T) {
	ai := &fakeAIService{
		transcribeErrs: []error{
			errors.New("timeout"),
			errors.New("timeout"),
			errors.New("timeout"),
		},
	}
	svc := NewJobPostService(ai, NewRetryPolicy(3, 0))

	_, err := svc.GenerateFromAudio(context.Background(), "/tmp/audio_test.wav")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcription failed")
	assert.Equal(t, 3, ai.transcribeCalls)
	assert.Equal(t, 0, ai.chatCalls, "generation must not run after transcription fails")
}

func TestGenerateFromAudioStillGeneratesOnEmptyTranscript(t *testing.T) {
	ai := &fakeAIService{
		transcript: "   ",
		chatReply:  "Job Post: (details pending)",
	}
	svc := NewJobPostService(ai, NewRetryPolicy(3, 0))

	jobPost, err := svc.GenerateFromAudio(context.Background(), "/tmp/audio_test.wav")

	require.NoError(t, err)
	assert.Equal(t, "Job Post: (details pending)", jobPost)
	assert.Equal(t, 1, ai.chatCalls)
}

func TestGenerateFromAudioFailsOnEmptyGeneration(t *testing.T) {
	ai := &fakeAIService{
		transcript: "We need a backend engineer",
		chatErr:    models.ErrGenerationEmpty,
	}
	svc := NewJobPostService(ai, NewRetryPolicy(3, 0))

	_, err := svc.GenerateFromAudio(context.Background(), "/tmp/audio_test.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrGenerationEmpty)
	assert.Contains(t, err.Error(), "generation failed")
	assert.Equal(t, 1, ai.chatCalls, "empty generation is not retried")
}
