package gcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/Lllllllleong/translatorstorage/internal/models"
)

// maxContentsPerRequest is the Translation v3 limit on strings per request.
const maxContentsPerRequest = 1024

type translateTextFunc func(ctx context.Context, req *translatepb.TranslateTextRequest) (*translatepb.TranslateTextResponse, error)

// Translator wraps the Cloud Translation v3 API.
type Translator struct {
	client        *translate.TranslationClient
	translateText translateTextFunc
	parent        string
	initErr       error
}

// NewTranslator creates the translation client for projectID. On failure the
// returned Translator reports Ready() == false.
func NewTranslator(ctx context.Context, projectID string) (*Translator, error) {
	t := &Translator{}
	if strings.TrimSpace(projectID) == "" {
		t.initErr = fmt.Errorf("PROJECT_ID environment variable must be set")
		return t, t.initErr
	}

	client, err := translate.NewTranslationClient(ctx)
	if err != nil {
		t.initErr = fmt.Errorf("failed to create translation client: %w", err)
		return t, t.initErr
	}

	t.client = client
	t.translateText = func(ctx context.Context, req *translatepb.TranslateTextRequest) (*translatepb.TranslateTextResponse, error) {
		return client.TranslateText(ctx, req)
	}
	t.parent = fmt.Sprintf("projects/%s/locations/global", projectID)
	slog.Info("Translation API client initialized.", "parent", t.parent)
	return t, nil
}

func (t *Translator) Ready() bool {
	return t != nil && t.translateText != nil
}

// Translate translates a single text.
func (t *Translator) Translate(ctx context.Context, text, target, source string) (*models.Translation, error) {
	results, err := t.TranslateBatch(ctx, []string{text}, target, source)
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// TranslateBatch translates texts, at most maxContentsPerRequest per call.
// Results keep the input order.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]models.Translation, error) {
	if !t.Ready() {
		return nil, ErrUnavailable
	}

	results := make([]models.Translation, 0, len(texts))
	for start := 0; start < len(texts); start += maxContentsPerRequest {
		end := min(start+maxContentsPerRequest, len(texts))
		chunk, err := t.translateChunk(ctx, texts[start:end], target, source)
		if err != nil {
			return nil, err
		}
		results = append(results, chunk...)
	}
	return results, nil
}

func (t *Translator) translateChunk(ctx context.Context, texts []string, target, source string) ([]models.Translation, error) {
	req := &translatepb.TranslateTextRequest{
		Parent:             t.parent,
		Contents:           texts,
		TargetLanguageCode: target,
		MimeType:           "text/plain",
	}
	if explicitSource(source) {
		req.SourceLanguageCode = source
	}

	resp, err := t.translateText(ctx, req)
	if err != nil {
		slog.Error("Translation request failed.", "target", target, "source", source, "count", len(texts), "error", err)
		return nil, fmt.Errorf("translate text: %w", err)
	}
	if len(resp.GetTranslations()) != len(texts) {
		return nil, fmt.Errorf("translation service returned %d results for %d texts", len(resp.GetTranslations()), len(texts))
	}

	results := make([]models.Translation, len(texts))
	for i, tr := range resp.GetTranslations() {
		results[i] = models.Translation{
			Original:         texts[i],
			Translated:       tr.GetTranslatedText(),
			DetectedLanguage: detectedLanguage(tr.GetDetectedLanguageCode(), source),
		}
	}
	return results, nil
}

// SupportedLanguages lists the language codes the service can translate.
// displayLang, when set, selects the language of the returned names.
func (t *Translator) SupportedLanguages(ctx context.Context, displayLang string) ([]models.Language, error) {
	if !t.Ready() || t.client == nil {
		return nil, ErrUnavailable
	}
	req := &translatepb.GetSupportedLanguagesRequest{
		Parent:              t.parent,
		DisplayLanguageCode: displayLang,
	}
	resp, err := t.client.GetSupportedLanguages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("get supported languages: %w", err)
	}

	languages := make([]models.Language, 0, len(resp.GetLanguages()))
	for _, lang := range resp.GetLanguages() {
		languages = append(languages, models.Language{
			Code: lang.GetLanguageCode(),
			Name: lang.GetDisplayName(),
		})
	}
	return languages, nil
}

func (t *Translator) Close() error {
	if t != nil && t.client != nil {
		return t.client.Close()
	}
	return nil
}

// explicitSource reports whether source names a language rather than asking
// the service to detect it.
func explicitSource(source string) bool {
	return source != "" && source != models.AutoDetect
}

func detectedLanguage(detected, source string) string {
	if detected != "" {
		return detected
	}
	if source == "" {
		return models.AutoDetect
	}
	return source
}
