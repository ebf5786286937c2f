package mediatype

import (
	"errors"
	"testing"
)

func TestFromExtension(t *testing.T) {
	tests := []struct {
		path     string
		category Category
		subtype  string
	}{
		{"notes.txt", Text, "plain"},
		{"INDEX.HTML", Text, "html"},
		{"page.htm", Text, "html"},
		{"readme.md", Text, "markdown"},
		{"report.docx", Text, SubtypeWordprocessing},
		{"sheet.xlsx", Text, SubtypeSpreadsheet},
		{"deck.pptx", Text, SubtypePresentation},
		{"photo.jpeg", Image, "jpeg"},
		{"icon.png", Image, "png"},
		{"song.mp3", Audio, "mpeg"},
		{"clip.mkv", Video, "x-matroska"},
		{"main.py", Text, "x-python"},
		{"lib.c", Text, "x-c"},
		{"app.js", Text, "javascript"},
		{"voice.m4a", Audio, "mp4"},
		{"still.avif", Image, "avif"},
	}
	for _, tc := range tests {
		got, err := FromExtension(tc.path)
		if err != nil {
			t.Fatalf("FromExtension(%q) error: %v", tc.path, err)
		}
		if got.Category != tc.category || got.Subtype != tc.subtype {
			t.Fatalf("FromExtension(%q) = %v, want %s/%s", tc.path, got, tc.category, tc.subtype)
		}
	}
}

func TestFromExtensionUnknown(t *testing.T) {
	// Extensions the host mime.types commonly knows but the table does not.
	for _, path := range []string{"archive.zzzq", "Makefile", "notes.tex", "font.woff2", "data.parquet"} {
		_, err := FromExtension(path)
		if !errors.Is(err, ErrUnknownExtension) {
			t.Fatalf("FromExtension(%q) err = %v, want ErrUnknownExtension", path, err)
		}
	}
}

func TestApplicationSubtypeAsymmetry(t *testing.T) {
	const pdf = "application/pdf"

	if _, err := Parse(pdf, Strict); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("strict parse of %s err = %v, want ErrUnsupported", pdf, err)
	}
	got, err := Parse(pdf, Tolerant)
	if err != nil {
		t.Fatalf("tolerant parse of %s: %v", pdf, err)
	}
	if got.Category != Text || got.Subtype != "pdf" {
		t.Fatalf("tolerant parse of %s = %v, want text/pdf", pdf, got)
	}

	if _, err := FromExtension("paper.pdf"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("local classification of pdf err = %v, want ErrUnsupported", err)
	}
}

func TestParseStripsParameters(t *testing.T) {
	got, err := Parse("  text/plain; charset=ISO-8859-1 \n", Tolerant)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != (Type{Category: Text, Subtype: "plain"}) {
		t.Fatalf("Parse = %v", got)
	}
}

func TestParseRejectsUnknownMajorType(t *testing.T) {
	for _, value := range []string{"font/woff2", "multipart/mixed", "garbage", ""} {
		if _, err := Parse(value, Tolerant); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Parse(%q) err = %v, want ErrUnsupported", value, err)
		}
	}
}

func TestCategoryString(t *testing.T) {
	want := map[Category]string{Text: "text", Image: "image", Audio: "audio", Video: "video"}
	for category, name := range want {
		if category.String() != name {
			t.Fatalf("%d.String() = %q, want %q", int(category), category.String(), name)
		}
	}
}
