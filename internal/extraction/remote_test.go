package extraction_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"isccgen/internal/config"
	"isccgen/internal/extraction"
	"isccgen/internal/mediatype"
	"isccgen/internal/services"
	"isccgen/internal/services/tika"
	"isccgen/internal/testsupport"
)

func newRemote(t *testing.T) (*testsupport.FakeTika, *extraction.Remote) {
	t.Helper()
	fake := testsupport.NewFakeTika(t)
	client := tika.NewClientWithBaseURL(fake.URL, fake.Client())
	return fake, extraction.NewRemote(client, nil)
}

func TestRemoteClassifyIsTolerant(t *testing.T) {
	fake, backend := newRemote(t)
	fake.Configure(func(f *testsupport.FakeTika) { f.Detect = func([]byte) string { return "application/x-custom-binary" } })
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "blob.bin"), "x")

	typ, err := backend.Classify(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, mediatype.Type{Category: mediatype.Text, Subtype: "x-custom-binary"}, typ)
}

func TestRemoteClassifyRejectsUnknownMajor(t *testing.T) {
	fake, backend := newRemote(t)
	fake.Configure(func(f *testsupport.FakeTika) { f.Detect = func([]byte) string { return "message/rfc822" } })
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "mail.eml"), "x")

	_, err := backend.Classify(context.Background(), path)
	require.True(t, errors.Is(err, services.ErrClassification))
}

func TestRemoteExtractUsesMetadataTitle(t *testing.T) {
	fake, backend := newRemote(t)
	fake.Configure(func(f *testsupport.FakeTika) { f.Text = func([]byte) string { return "\nFirst line\nrest" } })
	fake.Configure(func(f *testsupport.FakeTika) {
		f.Meta = func([]byte) string { return `{"Content-Type":"application/pdf","meta":{"dc:title":"Hello"}}` }
	})
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "doc.pdf"), "%PDF")

	res, err := backend.Extract(context.Background(), path, mediatype.Type{Category: mediatype.Text, Subtype: "pdf"})
	require.NoError(t, err)
	require.Equal(t, extraction.Result{Content: "\nFirst line\nrest", Title: "Hello"}, res)
}

func TestRemoteExtractFallsBackToFirstLine(t *testing.T) {
	fake, backend := newRemote(t)
	fake.Configure(func(f *testsupport.FakeTika) { f.Text = func([]byte) string { return "  \nFirst line\nrest" } })
	fake.Configure(func(f *testsupport.FakeTika) { f.Meta = func([]byte) string { return `{"author":"Ann"}` } })
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "doc.txt"), "ignored")

	res, err := backend.Extract(context.Background(), path, mediatype.Type{Category: mediatype.Text, Subtype: "plain"})
	require.NoError(t, err)
	require.Equal(t, "First line", res.Title)
}

func TestRemoteExtractSkipsNonText(t *testing.T) {
	fake, backend := newRemote(t)
	path := testsupport.WritePNG(t, filepath.Join(t.TempDir(), "img.png"), 2, 2)

	res, err := backend.Extract(context.Background(), path, mediatype.Type{Category: mediatype.Image, Subtype: "png"})
	require.NoError(t, err)
	require.Equal(t, extraction.Result{}, res)
	require.Zero(t, fake.Calls("PUT /tika"))
	require.Zero(t, fake.Calls("PUT /meta"))
}

func TestRemoteExtractServiceFailure(t *testing.T) {
	fake, backend := newRemote(t)
	fake.Configure(func(f *testsupport.FakeTika) { f.Fail["PUT /meta"] = true })
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "doc.txt"), "text")

	_, err := backend.Extract(context.Background(), path, mediatype.Type{Category: mediatype.Text, Subtype: "plain"})
	require.True(t, errors.Is(err, services.ErrExtraction))
}

func TestNewSelectsBackendOnce(t *testing.T) {
	fake := testsupport.NewFakeTika(t)
	client := tika.NewClientWithBaseURL(fake.URL, fake.Client())

	local, err := extraction.New(config.BackendConfig{Host: "localhost", Port: 9998}, client, nil)
	require.NoError(t, err)
	require.Equal(t, "local", local.Name())

	remote, err := extraction.New(config.BackendConfig{Host: "localhost", Port: 9998, Active: true}, client, nil)
	require.NoError(t, err)
	require.Equal(t, "tika", remote.Name())
}

func TestNewActiveWithoutServiceFails(t *testing.T) {
	backend, err := extraction.New(config.BackendConfig{Host: "localhost", Port: 9998, Active: true}, nil, nil)
	require.Nil(t, backend)
	require.True(t, errors.Is(err, services.ErrConfiguration), "got %v", err)
}
