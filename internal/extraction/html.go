package extraction

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML converts an HTML document to plain text. Block elements become
// paragraphs separated by blank lines and each paragraph is wrapped at width
// display columns.
func RenderHTML(r io.Reader, width int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find("head,script,style,noscript,template").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	w := &htmlWriter{width: width}
	for _, n := range root.Nodes {
		w.walk(n)
	}
	w.flush()

	if len(w.blocks) == 0 {
		return "", nil
	}
	return strings.Join(w.blocks, "\n\n") + "\n", nil
}

type htmlWriter struct {
	width  int
	blocks []string
	inline strings.Builder
	prefix string
}

func (w *htmlWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.inline.WriteString(n.Data)
		return
	case html.ElementNode:
	case html.DocumentNode:
		w.children(n)
		return
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		w.inline.WriteByte('\n')
	case atom.Pre:
		w.flush()
		if text := strings.TrimRight(goquery.NewDocumentFromNode(n).Text(), "\n"); strings.TrimSpace(text) != "" {
			w.blocks = append(w.blocks, text)
		}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.block(n, strings.Repeat("#", int(n.Data[1]-'0'))+" ")
	case atom.Li:
		w.block(n, "* ")
	case atom.Td, atom.Th:
		w.children(n)
		w.inline.WriteByte(' ')
	case atom.Hr:
		w.flush()
		w.blocks = append(w.blocks, strings.Repeat("-", w.width))
	default:
		if isBlock(n.DataAtom) {
			w.block(n, "")
			return
		}
		w.children(n)
	}
}

func (w *htmlWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *htmlWriter) block(n *html.Node, prefix string) {
	w.flush()
	if prefix != "" {
		w.prefix = prefix
	}
	w.children(n)
	w.flush()
	w.prefix = ""
}

// flush wraps the pending inline text into a block.
func (w *htmlWriter) flush() {
	pending := w.inline.String()
	prefix := w.prefix
	w.inline.Reset()

	var lines []string
	for segment := range strings.SplitSeq(pending, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			continue
		}
		lines = append(lines, wrapWords(words, w.width, prefix)...)
		prefix = strings.Repeat(" ", runewidth.StringWidth(prefix))
	}
	if len(lines) > 0 {
		w.blocks = append(w.blocks, strings.Join(lines, "\n"))
		w.prefix = ""
	}
}

func wrapWords(words []string, width int, prefix string) []string {
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	var (
		lines []string
		line  strings.Builder
		used  int
	)
	line.WriteString(prefix)
	used = runewidth.StringWidth(prefix)
	start := used

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if used > start && used+1+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(indent)
			used = len(indent)
			start = used
		}
		if used > start {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += wordWidth
	}
	return append(lines, line.String())
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Main, atom.Nav, atom.Aside, atom.Blockquote, atom.Ul, atom.Ol,
		atom.Dl, atom.Dt, atom.Dd, atom.Table, atom.Tr, atom.Figure,
		atom.Figcaption, atom.Address:
		return true
	default:
		return false
	}
}
