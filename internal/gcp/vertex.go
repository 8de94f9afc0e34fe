package gcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// --- Summary Model Prompts ---
const SummarySystemPrompt = "You are a careful technical writer. Your task is to summarize documents faithfully. Only use information present in the provided content and never invent facts."

// VertexClient holds the pre-configured generative model used for summaries.
type VertexClient struct {
	SummaryModel *genai.GenerativeModel
	baseClient   *genai.Client
	initErr      error
}

// NewVertexClient creates the Gemini client. On failure the returned client
// reports Ready() == false.
func NewVertexClient(ctx context.Context, projectID, region, modelName string) (*VertexClient, error) {
	c := &VertexClient{}
	if projectID == "" || region == "" {
		c.initErr = fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
		return c, c.initErr
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		c.initErr = fmt.Errorf("genai.NewClient: %w", err)
		return c, c.initErr
	}

	summaryModel := baseClient.GenerativeModel(modelName)
	summaryModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SummarySystemPrompt)},
	}
	summaryModel.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.2),
	}

	c.SummaryModel = summaryModel
	c.baseClient = baseClient
	slog.Info("Vertex AI client initialized.", "model", modelName, "region", region)
	return c, nil
}

func (c *VertexClient) Ready() bool {
	return c != nil && c.SummaryModel != nil
}

// Summarize sends prompt to the summary model and returns the generated text.
func (c *VertexClient) Summarize(ctx context.Context, prompt string) (string, error) {
	if !c.Ready() {
		return "", ErrUnavailable
	}
	resp, err := c.SummaryModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("Call to Vertex AI for summary failed.", "error", err)
		return "", fmt.Errorf("failed to generate summary from gemini: %w", err)
	}

	summary := extractText(resp)
	if summary == "" {
		return "", errors.New("gemini returned an empty summary")
	}
	return summary, nil
}

func (c *VertexClient) Close() error {
	if c != nil && c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var contentBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			contentBuilder.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(contentBuilder.String())
}
