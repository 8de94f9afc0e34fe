package models

import "encoding/json"

// AutoDetect is the source-language sentinel asking the translation service
// to detect the language itself. It is never sent as an explicit source.
const AutoDetect = "auto"

// These structs define the JSON payloads exchanged with HTTP clients.

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Translation is the structured result of translating one piece of text.
type Translation struct {
	Original         string `json:"original"`
	Translated       string `json:"translated"`
	DetectedLanguage string `json:"detected_language"`
}

// FieldError replaces a translated slot when the translation of that field failed.
type FieldError struct {
	Original any    `json:"original"`
	Error    string `json:"error"`
}

// TranslationInfo echoes the languages a translation was requested with.
type TranslationInfo struct {
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// Content is the classified, optionally translated body of an object.
type Content struct {
	Data             any              `json:"data"`
	Format           string           `json:"format"`
	TranslatedData   any              `json:"translated_data,omitempty"`
	TranslationInfo  *TranslationInfo `json:"translation_info,omitempty"`
	TranslationError string           `json:"translation_error,omitempty"`
}

// FileResponse is returned by GET /file/{name}.
type FileResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Content
}

// RawFileResponse is returned by the ReadFile function: the object body untouched.
type RawFileResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        string `json:"data"`
}

// FileListResponse is returned by GET /files.
type FileListResponse struct {
	Bucket string     `json:"bucket"`
	Files  []FileInfo `json:"files"`
	Count  int        `json:"count"`
}

// TranslateRequest is the POST /translate body. Text is either a string or a
// list of strings.
type TranslateRequest struct {
	Text   json.RawMessage `json:"text"`
	Target string          `json:"target"`
	Source string          `json:"source"`
}

// TranslateResponse is returned by /translate. Translation is a Translation
// or a list of them, mirroring the request text.
type TranslateResponse struct {
	Translation    any    `json:"translation"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// Language is one entry of the supported-language list.
type Language struct {
	Code string `json:"language"`
	Name string `json:"name,omitempty"`
}

// LanguagesResponse is returned by GET /languages.
type LanguagesResponse struct {
	SupportedLanguages []Language `json:"supported_languages"`
	Count              int        `json:"count"`
}

// UploadRequest is the POST /upload body. Content is a string, or a JSON
// object for .json files.
type UploadRequest struct {
	Filename string          `json:"filename"`
	Content  json.RawMessage `json:"content"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	URL      string `json:"url"`
}

// SummaryResult is the outcome of one summarization call.
type SummaryResult struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
	PromptUsed     string `json:"prompt_used"`
}

// SummaryResponse is returned by GET /summarize/{name}.
type SummaryResponse struct {
	Filename       string `json:"filename"`
	OriginalFormat string `json:"original_format"`
	SummaryResult
	MaxLength    int    `json:"max_length,omitempty"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status                   string `json:"status"`
	Service                  string `json:"service"`
	BucketConfigured         bool   `json:"bucket_configured"`
	StorageClientReady       bool   `json:"storage_client_ready"`
	TranslationClientReady   bool   `json:"translation_client_ready"`
	SummarizationClientReady bool   `json:"summarization_client_ready"`
}
