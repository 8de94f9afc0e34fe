package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubSummarizer struct {
	ready   bool
	reply   string
	err     error
	prompts []string
}

func (s *stubSummarizer) Ready() bool { return s.ready }

func (s *stubSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestFlattenForSummary(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantText   string
		wantFormat string
	}{
		{
			name:       "object",
			raw:        `{"a": "hi", "b": ["x","y"], "c": 5}`,
			wantText:   "a: hi\nb: x, y\nc: 5",
			wantFormat: FormatJSON,
		},
		{
			name:       "nested values are compact json",
			raw:        `{"meta": {"k": [1, 2]}, "ok": true, "none": null}`,
			wantText:   "meta: {\"k\":[1,2]}\nok: true\nnone: null",
			wantFormat: FormatJSON,
		},
		{
			name:       "array is pretty printed",
			raw:        `[1,2]`,
			wantText:   "[\n  1,\n  2\n]",
			wantFormat: FormatJSON,
		},
		{
			name:       "scalar json",
			raw:        `7`,
			wantText:   "7",
			wantFormat: FormatJSON,
		},
		{
			name:       "plain text",
			raw:        "Meeting notes\n- item",
			wantText:   "Meeting notes\n- item",
			wantFormat: FormatText,
		},
		{
			name:       "empty object",
			raw:        `{}`,
			wantText:   "",
			wantFormat: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, format := FlattenForSummary(tt.raw)
			if text != tt.wantText {
				t.Fatalf("unexpected text:\n got %q\nwant %q", text, tt.wantText)
			}
			if format != tt.wantFormat {
				t.Fatalf("unexpected format: got %q want %q", format, tt.wantFormat)
			}
		})
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	base := BuildSummaryPrompt("body", "", 0)
	want := "Summarize the following content clearly and concisely.\n\nContent:\nbody\n\nSummary:"
	if base != want {
		t.Fatalf("unexpected base prompt:\n got %q\nwant %q", base, want)
	}

	full := BuildSummaryPrompt("body", "  focus on dates ", 50)
	if !strings.HasPrefix(full, "Summarize the following content clearly and concisely. Aim for approximately 50 words. Additional instructions: focus on dates\n\n") {
		t.Fatalf("unexpected full prompt: %q", full)
	}
	if !strings.HasSuffix(full, "\n\nSummary:") {
		t.Fatalf("prompt must end with the summary cue: %q", full)
	}
}

func TestSummaryServiceSummarize(t *testing.T) {
	stub := &stubSummarizer{ready: true, reply: "Short summary."}
	svc := NewSummaryService(stub)

	result, format, err := svc.Summarize(context.Background(), `{"title": "Report", "pages": 12}`, SummaryOptions{MaxLength: 20, CustomPrompt: "bullet points"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatJSON {
		t.Fatalf("unexpected format: %q", format)
	}
	if result.Summary != "Short summary." || result.SummaryLength != len("Short summary.") {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if result.OriginalLength != len("title: Report\npages: 12") {
		t.Fatalf("unexpected original length: %d", result.OriginalLength)
	}
	if len(stub.prompts) != 1 || stub.prompts[0] != result.PromptUsed {
		t.Fatalf("prompt_used must echo the prompt sent")
	}
}

func TestSummaryServiceRejectsEmptyContent(t *testing.T) {
	stub := &stubSummarizer{ready: true, reply: "never"}
	svc := NewSummaryService(stub)

	for _, raw := range []string{"", "   \n\t", "{}"} {
		_, _, err := svc.Summarize(context.Background(), raw, SummaryOptions{})
		if !errors.Is(err, ErrEmptyContent) {
			t.Fatalf("%q: expected ErrEmptyContent, got %v", raw, err)
		}
	}
	if len(stub.prompts) != 0 {
		t.Fatalf("summarizer must not be called for empty content")
	}
}

func TestSummaryServicePropagatesModelError(t *testing.T) {
	stub := &stubSummarizer{ready: true, err: errors.New("model overloaded")}
	svc := NewSummaryService(stub)

	_, _, err := svc.Summarize(context.Background(), "some text", SummaryOptions{})
	if err == nil || err.Error() != "model overloaded" {
		t.Fatalf("expected model error, got %v", err)
	}
}
