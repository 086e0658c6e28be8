// Package tailor rewrites a resume against a job description through an
// OpenAI-compatible chat endpoint and generates interview-prep material from
// the result.
package tailor

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the minimal surface needed from an OpenAI-compatible
// backend, so tests and local models can stand in for the real service.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps a chat backend with the resume-tailoring operations.
type Client struct {
	llm   ChatClient
	model string
}

// New builds a Client against the given endpoint. An empty baseURL targets
// the default OpenAI API; model defaults to gpt-4o-mini.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{llm: openai.NewClientWithConfig(cfg), model: model}
}

// NewWithBackend wires in any ChatClient directly.
func NewWithBackend(llm ChatClient, model string) *Client {
	return &Client{llm: llm, model: model}
}

// TailorResume rewrites resume content to match the job description and
// returns the tailored resume as line-oriented text with **bold** spans.
func (c *Client) TailorResume(ctx context.Context, resume, jobDesc string) (string, error) {
	return c.complete(ctx, resumePrompt(resume, jobDesc))
}

// InterviewQuestions generates categorized interview questions from a
// tailored resume.
func (c *Client) InterviewQuestions(ctx context.Context, resume string) (string, error) {
	return c.complete(ctx, questionsPrompt(resume))
}

// LearningResources suggests learning resources matched to the skills in a
// tailored resume.
func (c *Client) LearningResources(ctx context.Context, resume string) (string, error) {
	return c.complete(ctx, resourcesPrompt(resume))
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
