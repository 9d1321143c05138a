// Package parsing turns markdown resumes into the structured ResumeData aggregate.
package parsing

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ResumeSection is the transient parse-time grouping of content lines under
// the nearest enclosing heading. It is discarded once folded into ResumeData.
type ResumeSection struct {
	Title    string            // heading text as written, trimmed
	Key      string            // lower-cased trimmed title, the lookup key
	Content  []string          // content lines in document order
	Level    int               // heading level 1-6
	Metadata map[string]string // optional, unused by the core pipeline
}

var (
	// htmlTagPattern strips inline HTML left inside list items
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	// bulletMarkerPattern strips leading markdown bullet markers
	bulletMarkerPattern = regexp.MustCompile(`^[-*+•]\s*`)
)

type rendererState int

const (
	stateIdle rendererState = iota
	stateInSection
)

// sectionRenderer accumulates content lines under the open section.
// It is an explicit two-state machine (idle / inSection) so correctness does
// not depend on event callback order: a heading always finalizes the open
// section before opening the next, and Finalize flushes the last one.
type sectionRenderer struct {
	state    rendererState
	title    string
	level    int
	buffer   []string
	sections []ResumeSection
	index    map[string]int
}

func newSectionRenderer() *sectionRenderer {
	return &sectionRenderer{index: make(map[string]int)}
}

// OpenSection finalizes the open section, if any, and starts a new one
func (r *sectionRenderer) OpenSection(title string, level int) {
	r.finalizeCurrent()
	r.state = stateInSection
	r.title = strings.TrimSpace(title)
	r.level = level
	r.buffer = nil
}

// AppendLine adds a content line to the open section. Lines arriving while
// idle (before any heading) are dropped.
func (r *sectionRenderer) AppendLine(line string) {
	if r.state != stateInSection {
		return
	}
	r.buffer = append(r.buffer, line)
}

// Finalize flushes the open section and returns all sections in document
// order. Two headings normalizing to the same key keep one entry: the last
// occurrence's content wins (documented last-write-wins).
func (r *sectionRenderer) Finalize() []ResumeSection {
	r.finalizeCurrent()
	return r.sections
}

func (r *sectionRenderer) finalizeCurrent() {
	if r.state != stateInSection {
		return
	}
	section := ResumeSection{
		Title:   r.title,
		Key:     strings.ToLower(r.title),
		Content: r.buffer,
		Level:   r.level,
	}
	if existing, ok := r.index[section.Key]; ok {
		r.sections[existing] = section
	} else {
		r.index[section.Key] = len(r.sections)
		r.sections = append(r.sections, section)
	}
	r.state = stateIdle
	r.buffer = nil
}

// RenderSections walks the markdown document and groups content lines under
// the nearest enclosing heading. An empty document yields no sections; that
// is fatal downstream, not here.
func RenderSections(source []byte) []ResumeSection {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	renderer := newSectionRenderer()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			renderer.OpenSection(inlineText(node, source), node.Level)
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			for _, line := range splitLines(inlineText(node, source)) {
				renderer.AppendLine(cleanListItemText(line))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			for _, line := range splitLines(inlineText(node, source)) {
				renderer.AppendLine(line)
			}
			// keep walking so links inside the paragraph are captured too
			return ast.WalkContinue, nil
		case *ast.Link:
			label := strings.TrimSpace(inlineText(node, source))
			renderer.AppendLine(label + ": " + string(node.Destination))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return renderer.Finalize()
}

// inlineText flattens a node's inline children into plain text. Raw HTML
// nodes contribute nothing; soft line breaks become newlines so callers can
// recover the source lines.
func inlineText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.AutoLink:
			sb.Write(node.URL(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// cleanListItemText strips inline HTML and leading bullet markers
func cleanListItemText(line string) string {
	cleaned := htmlTagPattern.ReplaceAllString(line, "")
	cleaned = bulletMarkerPattern.ReplaceAllString(strings.TrimSpace(cleaned), "")
	return strings.TrimSpace(cleaned)
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
