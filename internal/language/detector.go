package language

import (
	"context"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Detector reports the language of a file. Implementations may use the file
// path, the already extracted text, or both.
type Detector interface {
	Detect(ctx context.Context, path, text string) (string, error)
}

// Local detects languages in-process with lingua. The language models load on
// first use.
type Local struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLocal returns an in-process detector.
func NewLocal() *Local {
	return &Local{}
}

// Detect returns the ISO 639-1 code of text, or "" when text is blank or no
// language is reliable.
func (l *Local) Detect(_ context.Context, _ string, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	l.once.Do(func() {
		l.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages()...).
			Build()
	})
	detected, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return "", nil
	}
	if e, found := byLingua[detected]; found {
		return e.code2, nil
	}
	return "", nil
}

// LanguageService is the subset of the Tika client used by Remote.
type LanguageService interface {
	Language(ctx context.Context, path string) (string, error)
}

// Remote asks the Tika server for the file's language.
type Remote struct {
	service LanguageService
}

// NewRemote returns a detector backed by service.
func NewRemote(service LanguageService) *Remote {
	return &Remote{service: service}
}

// Detect returns the normalized language code the server reports.
func (r *Remote) Detect(ctx context.Context, path, _ string) (string, error) {
	code, err := r.service.Language(ctx, path)
	if err != nil {
		return "", err
	}
	return ToISO2(code), nil
}
