package identify_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"isccgen/internal/extraction"
	"isccgen/internal/identify"
	"isccgen/internal/iscc"
	"isccgen/internal/iscc/digest"
	"isccgen/internal/mediatype"
	"isccgen/internal/services"
	"isccgen/internal/services/tika"
	"isccgen/internal/testsupport"
)

type fakeBackend struct {
	typ         mediatype.Type
	result      extraction.Result
	classifyErr error
	extracted   bool
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Classify(context.Context, string) (mediatype.Type, error) {
	return f.typ, f.classifyErr
}

func (f *fakeBackend) Extract(context.Context, string, mediatype.Type) (extraction.Result, error) {
	f.extracted = true
	return f.result, nil
}

func newPipeline(backend extraction.Backend) *identify.Pipeline {
	return identify.New(backend, iscc.NewAssembler(digest.New()), nil)
}

func TestGenerateWithoutGuessUsesCallerTitle(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "a.txt"), "Detected title\nbody")
	backend := &fakeBackend{
		typ:    mediatype.Type{Category: mediatype.Text, Subtype: "plain"},
		result: extraction.Result{Content: "Detected title\nbody", Title: "Detected title", Extra: "auto"},
	}

	code, err := newPipeline(backend).Generate(context.Background(), identify.Request{Path: path, Title: "X"})
	require.NoError(t, err)
	require.Equal(t, "X", code.Title)
	require.Equal(t, "", code.Extra)
}

func TestGenerateWithGuessKeepsDetectedTitle(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "a.txt"), "Detected title\nbody")
	backend := &fakeBackend{
		typ:    mediatype.Type{Category: mediatype.Text, Subtype: "plain"},
		result: extraction.Result{Content: "Detected title\nbody", Title: "Detected title"},
	}

	code, err := newPipeline(backend).Generate(context.Background(), identify.Request{Path: path, Title: "ignored", Guess: true})
	require.NoError(t, err)
	require.Equal(t, "Detected title", code.Title)
}

func TestGenerateStopsOnClassificationError(t *testing.T) {
	backend := &fakeBackend{classifyErr: services.Wrap(services.ErrClassification, "classify", "", "", nil)}
	_, err := newPipeline(backend).Generate(context.Background(), identify.Request{Path: "x"})
	require.True(t, errors.Is(err, services.ErrClassification))
	require.False(t, backend.extracted)
}

func TestGenerateIsDeterministicForPlainText(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "test.txt"), "Lorem ipsum dolor sit amet,\nconsetetur sadipscing\n")
	pipeline := newPipeline(extraction.NewLocal(nil))

	first, err := pipeline.Generate(context.Background(), identify.Request{Path: path})
	require.NoError(t, err)
	second, err := pipeline.Generate(context.Background(), identify.Request{Path: path})
	require.NoError(t, err)
	require.Equal(t, first.String(), second.String())
	require.Equal(t, mediatype.Text, first.Category)
}

func TestGenerateRemoteGuessUsesMetadataTitle(t *testing.T) {
	fake := testsupport.NewFakeTika(t)
	fake.Configure(func(f *testsupport.FakeTika) {
		f.Meta = func([]byte) string { return `{"meta":{"title":{"nested":"World"}}}` }
	})
	backend := extraction.NewRemote(tika.NewClientWithBaseURL(fake.URL, fake.Client()), nil)
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "doc.txt"), "first line\nsecond")

	code, err := newPipeline(backend).Generate(context.Background(), identify.Request{Path: path, Guess: true})
	require.NoError(t, err)
	require.Equal(t, "World", code.Title)

	fake.Configure(func(f *testsupport.FakeTika) { f.Meta = func([]byte) string { return `{}` } })
	code, err = newPipeline(backend).Generate(context.Background(), identify.Request{Path: path, Guess: true})
	require.NoError(t, err)
	require.Equal(t, "first line", code.Title)
}

func TestGenerateAudioFailsFast(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "song.mp3"), "ID3")
	_, err := newPipeline(extraction.NewLocal(nil)).Generate(context.Background(), identify.Request{Path: path})
	require.True(t, errors.Is(err, services.ErrNotImplemented))
}
