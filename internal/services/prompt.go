package services

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	jobPostSystemPrompt   = "Generate a job post from user input."
	assistantSystemPrompt = "You are a friendly assistant helping users create job posts step by step."
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildJobPostMessages creates the message list for turning a transcript
// into a job post.
func (pb *PromptBuilder) BuildJobPostMessages(transcript string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: jobPostSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: transcript},
	}
}

// BuildAssistantMessages creates the message list for a conversational
// turn. Only the stored name and the latest utterance are carried; there is
// no longer transcript to send.
func (pb *PromptBuilder) BuildAssistantMessages(userInput, userName string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
	}

	if userName != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("My name is %s.", userName),
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userInput,
	})

	return messages
}

// BuildGreeting is the reply to the very first utterance, which is taken as
// the caller's name.
func (pb *PromptBuilder) BuildGreeting(name string) string {
	return fmt.Sprintf("Nice to meet you, %s! What job are you looking to post?", name)
}
