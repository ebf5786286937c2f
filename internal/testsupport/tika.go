package testsupport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeTika is an in-process stand-in for a Tika server.
type FakeTika struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int

	// Detect, Text, Meta and Language compute responses from the uploaded
	// bytes. Change them through Configure once the server is running.
	Detect   func(body []byte) string
	Text     func(body []byte) string
	Meta     func(body []byte) string
	Language func(body []byte) string
	// Fail lists "METHOD /path" keys that answer with 500.
	Fail map[string]bool
}

// NewFakeTika starts a fake server that echoes uploads as text, reports
// text/plain and returns empty metadata. Callers override the response funcs
// before issuing requests.
func NewFakeTika(t testing.TB) *FakeTika {
	t.Helper()
	f := &FakeTika{
		calls:    map[string]int{},
		Detect:   func([]byte) string { return "text/plain" },
		Text:     func(body []byte) string { return string(body) },
		Meta:     func([]byte) string { return "{}" },
		Language: func([]byte) string { return "en" },
		Fail:     map[string]bool{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

// Configure applies fn while holding the server lock.
func (f *FakeTika) Configure(fn func(f *FakeTika)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

// Calls returns how many times "METHOD /path" was requested.
func (f *FakeTika) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *FakeTika) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls[key]++
	fail := f.Fail[key]
	detect, text, meta, language := f.Detect, f.Text, f.Meta, f.Language
	f.mu.Unlock()

	if fail {
		http.Error(w, "failure", http.StatusInternalServerError)
		return
	}

	var resp string
	switch key {
	case "GET /tika":
		resp = "This is Tika Server. Please PUT\n"
	case "PUT /detect/stream":
		resp = detect(body)
	case "PUT /tika":
		resp = text(body)
	case "PUT /meta":
		w.Header().Set("Content-Type", "application/json")
		resp = meta(body)
	case "PUT /language/stream":
		resp = language(body)
	default:
		http.NotFound(w, r)
		return
	}
	_, _ = io.WriteString(w, resp)
}
