package extraction

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"isccgen/internal/mediatype"
)

var errNoDocumentPart = errors.New("document part not found")

// readOOXML opens an office document container and concatenates the text
// runs of its content parts. Paragraphs end with a newline.
func readOOXML(file, subtype string) (string, error) {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return "", fmt.Errorf("open container: %w", err)
	}
	defer zr.Close()

	parts := documentParts(zr.File, subtype)
	if len(parts) == 0 {
		return "", errNoDocumentPart
	}

	var b strings.Builder
	for _, part := range parts {
		if err := appendPartText(&b, part); err != nil {
			return "", fmt.Errorf("%s: %w", part.Name, err)
		}
	}
	return b.String(), nil
}

func documentParts(files []*zip.File, subtype string) []*zip.File {
	switch subtype {
	case mediatype.SubtypeWordprocessing:
		return namedPart(files, "word/document.xml")
	case mediatype.SubtypeSpreadsheet:
		return namedPart(files, "xl/sharedStrings.xml")
	case mediatype.SubtypePresentation:
		return slideParts(files)
	default:
		return nil
	}
}

func namedPart(files []*zip.File, name string) []*zip.File {
	for _, f := range files {
		if f.Name == name {
			return []*zip.File{f}
		}
	}
	return nil
}

// slideParts returns ppt/slides/slideN.xml entries ordered by N.
func slideParts(files []*zip.File) []*zip.File {
	type slide struct {
		index int
		file  *zip.File
	}
	var slides []slide
	for _, f := range files {
		dir, name := path.Split(f.Name)
		if dir != "ppt/slides/" || !strings.HasPrefix(name, "slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "slide"), ".xml"))
		if err != nil {
			continue
		}
		slides = append(slides, slide{index: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].index < slides[j].index })

	out := make([]*zip.File, 0, len(slides))
	for _, s := range slides {
		out = append(out, s.file)
	}
	return out
}

func appendPartText(b *strings.Builder, part *zip.File) error {
	rc, err := part.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	inText := false
	skipDepth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			switch t.Name.Local {
			case "rPh", "phoneticPr", "pPr", "rPr":
				skipDepth = 1
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p", "si":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText && skipDepth == 0 {
				b.Write(t)
			}
		}
	}
}
