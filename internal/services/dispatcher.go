package services

import (
	"context"
	"log/slog"

	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/models"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// Translator is the translation capability the dispatcher depends on.
type Translator interface {
	Ready() bool
	Translate(ctx context.Context, text, target, source string) (*models.Translation, error)
	TranslateBatch(ctx context.Context, texts []string, target, source string) ([]models.Translation, error)
}

// Dispatcher decides whether fetched content is structured or flat text and
// routes each unit of text through the translator.
type Dispatcher struct {
	translator Translator
}

func NewDispatcher(translator Translator) *Dispatcher {
	return &Dispatcher{translator: translator}
}

// ClassifyAndTranslate classifies raw and, when targetLang is set and the
// translator is ready, attaches translations. Translation failures never fail
// the call: they are embedded in the returned Content.
func (d *Dispatcher) ClassifyAndTranslate(ctx context.Context, raw, targetLang, sourceLang string) models.Content {
	if sourceLang == "" {
		sourceLang = models.AutoDetect
	}
	translate := targetLang != "" && d.translator != nil && d.translator.Ready()

	obj, isObject, err := models.ParseObject([]byte(raw))
	if err != nil {
		slog.Warn("Structured content could not be decoded, treating as text.", "error", err)
		isObject = false
	}

	if isObject {
		content := models.Content{Data: obj, Format: FormatJSON}
		if translate {
			content.TranslatedData = d.translateObject(ctx, obj, targetLang, sourceLang)
			content.TranslationInfo = &models.TranslationInfo{TargetLanguage: targetLang, SourceLanguage: sourceLang}
		}
		return content
	}

	// Anything that is not a JSON object, valid JSON or not, is flat text.
	content := models.Content{Data: raw, Format: FormatText}
	if translate {
		result, err := d.translator.Translate(ctx, raw, targetLang, sourceLang)
		if err != nil {
			content.TranslationError = gcp.ErrorMessage(err)
			return content
		}
		content.TranslatedData = result
		content.TranslationInfo = &models.TranslationInfo{TargetLanguage: targetLang, SourceLanguage: sourceLang}
	}
	return content
}

// translateObject translates each member in key order. A failed member gets a
// FieldError in its slot; siblings are still translated.
func (d *Dispatcher) translateObject(ctx context.Context, obj *models.Object, targetLang, sourceLang string) models.Fields {
	translated := make(models.Fields, 0, len(obj.Members))
	for _, m := range obj.Members {
		var slot any
		switch m.Value.Kind {
		case models.StringValue:
			result, err := d.translator.Translate(ctx, m.Value.Str, targetLang, sourceLang)
			if err != nil {
				slog.Warn("Field translation failed.", "key", m.Key, "error", err)
				slot = models.FieldError{Original: m.Value.Str, Error: gcp.ErrorMessage(err)}
			} else {
				slot = result
			}
		case models.StringListValue:
			results, err := d.translator.TranslateBatch(ctx, m.Value.List, targetLang, sourceLang)
			if err != nil {
				slog.Warn("List translation failed.", "key", m.Key, "error", err)
				slot = models.FieldError{Original: m.Value.List, Error: gcp.ErrorMessage(err)}
			} else {
				slot = results
			}
		case models.OpaqueValue:
			slot = m.Value.Raw
		}
		translated = append(translated, models.Field{Key: m.Key, Value: slot})
	}
	return translated
}
