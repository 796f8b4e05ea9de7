package render

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"mvdan.cc/xurls/v2"
)

// run is a stretch of text sharing one font style.
type run struct {
	text   string
	bold   bool
	italic bool
	link   string
}

var (
	markdown = goldmark.New()
	urlMatch = xurls.Strict()
)

// parseInline turns one line of model output into styled runs. Markdown
// emphasis becomes font style and bare URLs become links.
func parseInline(line string) []run {
	src := []byte(line)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var (
		runs         []run
		bold, italic int
		links        []string
	)
	emit := func(s string) {
		if s == "" {
			return
		}
		r := run{text: s, bold: bold > 0, italic: italic > 0}
		if len(links) > 0 {
			r.link = links[len(links)-1]
		}
		runs = append(runs, r)
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		delta := 1
		if !entering {
			delta = -1
		}
		switch node := n.(type) {
		case *ast.Emphasis:
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.Link:
			if entering {
				links = append(links, string(node.Destination))
			} else {
				links = links[:len(links)-1]
			}
		case *ast.AutoLink:
			if entering {
				url := string(node.URL(src))
				links = append(links, url)
				emit(string(node.Label(src)))
				links = links[:len(links)-1]
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if list, ok := node.Parent().(*ast.List); ok && entering && list.IsOrdered() {
				emit(fmt.Sprintf("%d%c ", list.Start, list.Marker))
			}
		case *ast.Text:
			if entering {
				emit(string(node.Segment.Value(src)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					emit(" ")
				}
			}
		case *ast.String:
			if entering {
				emit(string(node.Value))
			}
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if len(runs) == 0 {
		if s := strings.TrimSpace(line); s != "" {
			return []run{{text: s}}
		}
		return nil
	}
	return splitURLs(mergeRuns(runs))
}

func mergeRuns(runs []run) []run {
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.bold == r.bold && last.italic == r.italic && last.link == r.link {
			last.text += r.text
			continue
		}
		out = append(out, r)
	}
	return out
}

// splitURLs breaks plain runs around bare URLs so each URL gets its own link run.
func splitURLs(runs []run) []run {
	var out []run
	for _, r := range runs {
		if r.link != "" {
			out = append(out, r)
			continue
		}
		pos := 0
		for _, loc := range urlMatch.FindAllStringIndex(r.text, -1) {
			if loc[0] > pos {
				out = append(out, run{text: r.text[pos:loc[0]], bold: r.bold, italic: r.italic})
			}
			url := r.text[loc[0]:loc[1]]
			out = append(out, run{text: url, bold: r.bold, italic: r.italic, link: url})
			pos = loc[1]
		}
		if pos < len(r.text) {
			out = append(out, run{text: r.text[pos:], bold: r.bold, italic: r.italic})
		}
	}
	return out
}

func plainText(runs []run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.text)
	}
	return b.String()
}
