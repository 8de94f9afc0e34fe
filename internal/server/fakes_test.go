package server

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Lllllllleong/translatorstorage/internal/gcp"
	"github.com/Lllllllleong/translatorstorage/internal/models"
)

type fakeStore struct {
	ready   bool
	objects map[string]*models.StoredObject
	calls   int
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{ready: true, objects: map[string]*models.StoredObject{}}
}

func (f *fakeStore) put(name, contentType, content string) {
	f.objects[name] = &models.StoredObject{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Created:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Content:     content,
	}
}

func (f *fakeStore) Ready() bool  { return f.ready }
func (f *fakeStore) Name() string { return "test-bucket" }

func (f *fakeStore) Exists(_ context.Context, name string) (bool, error) {
	f.calls++
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeStore) Read(_ context.Context, name string) (*models.StoredObject, error) {
	f.calls++
	obj, ok := f.objects[name]
	if !ok {
		return nil, gcp.ErrNotFound
	}
	cp := *obj
	return &cp, nil
}

func (f *fakeStore) Write(_ context.Context, name, content, contentType string) (int64, error) {
	f.calls++
	f.put(name, contentType, content)
	return int64(len(content)), nil
}

func (f *fakeStore) List(_ context.Context) ([]models.FileInfo, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.objects))
	for name := range f.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]models.FileInfo, 0, len(names))
	for _, name := range names {
		obj := f.objects[name]
		files = append(files, models.NewFileInfo(obj.Name, obj.Size, obj.Created, obj.ContentType))
	}
	return files, nil
}

type fakeTranslator struct {
	ready        bool
	fail         string
	rejectTarget string
	calls        int
}

func (f *fakeTranslator) Ready() bool { return f.ready }

func (f *fakeTranslator) Translate(_ context.Context, text, target, source string) (*models.Translation, error) {
	f.calls++
	if f.fail != "" && strings.Contains(text, f.fail) {
		return nil, errors.New("translation backend error")
	}
	if f.rejectTarget != "" && target == f.rejectTarget {
		return nil, errors.New("target language is invalid")
	}
	detected := source
	if source == models.AutoDetect {
		detected = "en"
	}
	return &models.Translation{Original: text, Translated: strings.ToUpper(text), DetectedLanguage: detected}, nil
}

func (f *fakeTranslator) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]models.Translation, error) {
	out := make([]models.Translation, 0, len(texts))
	for _, text := range texts {
		tr, err := f.Translate(ctx, text, target, source)
		if err != nil {
			return nil, err
		}
		out = append(out, *tr)
	}
	return out, nil
}

func (f *fakeTranslator) SupportedLanguages(_ context.Context, displayLang string) ([]models.Language, error) {
	f.calls++
	if displayLang == "" {
		return []models.Language{{Code: "en"}, {Code: "es"}}, nil
	}
	return []models.Language{{Code: "en", Name: "English"}, {Code: "es", Name: "Spanish"}}, nil
}

type fakeSummarizer struct {
	ready   bool
	reply   string
	err     error
	prompts []string
}

func (f *fakeSummarizer) Ready() bool { return f.ready }

func (f *fakeSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
