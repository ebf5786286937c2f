package digest

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"isccgen/internal/testsupport"
)

func TestComponentsHaveHeadersAndFixedLength(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "a.txt"), "Lorem ipsum dolor sit amet")
	c := New()

	meta, _, _ := c.MetaID("Lorem ipsum", "")
	data, err := c.DataID(path)
	require.NoError(t, err)
	inst, top, err := c.InstanceID(path)
	require.NoError(t, err)
	text := c.ContentIDText("Lorem ipsum dolor sit amet", false)

	for header, code := range map[string]string{
		HeaderMeta: meta, HeaderData: data, HeaderInstance: inst, HeaderText: text,
	} {
		require.True(t, strings.HasPrefix(code, header), "%s lacks header %s", code, header)
		require.Len(t, code, 2+BodyLength)
	}
	require.Len(t, top, 64)
	_, err = hex.DecodeString(top)
	require.NoError(t, err)
}

func TestCodecIsDeterministic(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "a.txt"), "same bytes")
	c1, c2 := New(), New()

	d1, err := c1.DataID(path)
	require.NoError(t, err)
	d2, err := c2.DataID(path)
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	i1, t1, err := c1.InstanceID(path)
	require.NoError(t, err)
	i2, t2, err := c2.InstanceID(path)
	require.NoError(t, err)
	require.Equal(t, i1, i2)
	require.Equal(t, t1, t2)

	require.Equal(t, c1.ContentIDText("x y", false), c2.ContentIDText("x y", false))
}

func TestTextNormalization(t *testing.T) {
	c := New()
	require.Equal(t, c.ContentIDText("Hello   World\n", false), c.ContentIDText(" hello world", false))
	require.NotEqual(t, c.ContentIDText("hello world", false), c.ContentIDText("hello there", false))
}

func TestMetaIDNormalizesTitle(t *testing.T) {
	c := New()
	id1, title, extra := c.MetaID("  Ｔｉｔｌｅ \t with   space ", "")
	require.Equal(t, "Title with space", title)
	require.Equal(t, "", extra)

	id2, _, _ := c.MetaID("title with space", "")
	require.Equal(t, id1, id2)

	long := strings.Repeat("ab ", 100)
	_, trimmed, _ := c.MetaID(long, "")
	require.LessOrEqual(t, len([]rune(trimmed)), MetaTrimLength)
}

func TestPartialContentHeader(t *testing.T) {
	c := New()
	require.True(t, strings.HasPrefix(c.ContentIDText("x", true), "Ct"))

	img := testsupport.WritePNG(t, filepath.Join(t.TempDir(), "i.png"), 3, 3)
	full, err := c.ContentIDImage(img, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(full, HeaderImage))
	part, err := c.ContentIDImage(img, true)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(part, "Cy"))
}

func TestContentIDImageRejectsNonImage(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "fake.png"), "not an image")
	_, err := New().ContentIDImage(path, false)
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := New().DataID(missing)
	require.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = New().InstanceID(missing)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataIDStreamsLargeFiles(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.bin")
	large := filepath.Join(dir, "large.bin")
	testsupport.WriteFile(t, small, 1024)
	testsupport.WriteFile(t, large, 3<<20)
	c := New()

	ds, err := c.DataID(small)
	require.NoError(t, err)
	dl, err := c.DataID(large)
	require.NoError(t, err)
	require.NotEqual(t, ds, dl)

	_, topSmall, err := c.InstanceID(small)
	require.NoError(t, err)
	_, topLarge, err := c.InstanceID(large)
	require.NoError(t, err)
	require.NotEqual(t, topSmall, topLarge)
}
