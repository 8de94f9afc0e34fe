package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Lllllllleong/translatorstorage/internal/models"
)

// ErrEmptyContent is returned when there is nothing to summarize.
var ErrEmptyContent = errors.New("content is empty, nothing to summarize")

// Summarizer is the generative capability used to write summaries.
type Summarizer interface {
	Ready() bool
	Summarize(ctx context.Context, prompt string) (string, error)
}

// SummaryOptions carries the optional hints of a summary request.
// MaxLength is an approximate word count; zero means no hint.
type SummaryOptions struct {
	CustomPrompt string
	MaxLength    int
}

// SummaryService flattens stored content and asks the model for a summary.
type SummaryService struct {
	summarizer Summarizer
}

func NewSummaryService(summarizer Summarizer) *SummaryService {
	return &SummaryService{summarizer: summarizer}
}

// Summarize flattens raw, builds the prompt and calls the model. It returns
// ErrEmptyContent without calling the model when the flattened text is blank.
func (s *SummaryService) Summarize(ctx context.Context, raw string, opts SummaryOptions) (*models.SummaryResult, string, error) {
	flat, format := FlattenForSummary(raw)
	if strings.TrimSpace(flat) == "" {
		return nil, format, ErrEmptyContent
	}

	prompt := BuildSummaryPrompt(flat, opts.CustomPrompt, opts.MaxLength)
	summary, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		return nil, format, err
	}

	slog.Debug("Summary generated.", "format", format, "inputChars", utf8.RuneCountInString(flat))
	return &models.SummaryResult{
		Summary:        summary,
		OriginalLength: utf8.RuneCountInString(flat),
		SummaryLength:  utf8.RuneCountInString(summary),
		PromptUsed:     prompt,
	}, format, nil
}

// FlattenForSummary renders raw as plain text suitable for a prompt and
// reports whether it was JSON or text.
func FlattenForSummary(raw string) (string, string) {
	obj, isObject, err := models.ParseObject([]byte(raw))
	if err == nil && isObject {
		lines := make([]string, 0, len(obj.Members))
		for _, m := range obj.Members {
			switch m.Value.Kind {
			case models.StringValue:
				lines = append(lines, fmt.Sprintf("%s: %s", m.Key, m.Value.Str))
			case models.StringListValue:
				lines = append(lines, fmt.Sprintf("%s: %s", m.Key, strings.Join(m.Value.List, ", ")))
			case models.OpaqueValue:
				lines = append(lines, fmt.Sprintf("%s: %s", m.Key, compactJSON(m.Value.Raw)))
			}
		}
		return strings.Join(lines, "\n"), FormatJSON
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) > 0 && json.Valid(trimmed) {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, trimmed, "", "  "); err == nil {
			return pretty.String(), FormatJSON
		}
	}
	return raw, FormatText
}

// BuildSummaryPrompt assembles the instruction sent to the model. The same
// text is echoed back to clients as prompt_used.
func BuildSummaryPrompt(text, customPrompt string, maxLength int) string {
	var b strings.Builder
	b.WriteString("Summarize the following content clearly and concisely.")
	if maxLength > 0 {
		fmt.Fprintf(&b, " Aim for approximately %d words.", maxLength)
	}
	if custom := strings.TrimSpace(customPrompt); custom != "" {
		fmt.Fprintf(&b, " Additional instructions: %s", custom)
	}
	b.WriteString("\n\nContent:\n")
	b.WriteString(text)
	b.WriteString("\n\nSummary:")
	return b.String()
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
