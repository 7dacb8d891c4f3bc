// Package checklist reads and writes day-grouped todo checklists as markdown
// task lists, and renders them to PDF.
//
// Format:
//
//	---
//	date: 2024-03-10
//	---
//	- [ ] Buy milk
//	- [x] Call mom
//
//	## 2024-03-11
//	- [ ] Dentist
//
// Items before the first date heading belong to the front matter date, or to
// the caller's fallback when there is none.
package checklist

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

// Item is one checklist line.
type Item struct {
	Title   string
	Checked bool
}

// Day is the checklist of one day.
type Day struct {
	Key   string
	Items []Item
}

type frontMatter struct {
	Date string `yaml:"date"`
}

// Parse reads a checklist. fallback is the key used for items that precede
// any date heading when the front matter names no date.
func Parse(r io.Reader, fallback string) ([]Day, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	current := fallback
	if fm.Date != "" {
		d, err := calendar.ParseDay(strings.TrimSpace(fm.Date))
		if err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
		current = d.Format(calendar.KeyLayout)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	doc := md.Parser().Parse(text.NewReader(body))

	var days []Day
	index := make(map[string]int)
	add := func(key string, it Item) {
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, Day{Key: key})
		}
		days[i].Items = append(days[i].Items, it)
	}

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading := strings.TrimSpace(string(node.Text(body)))
			if d, err := calendar.ParseDay(heading); err == nil {
				current = d.Format(calendar.KeyLayout)
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			box, title := taskLine(node, body)
			if box == nil {
				return ast.WalkContinue, nil
			}
			if title != "" {
				add(current, Item{Title: title, Checked: box.IsChecked})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// taskLine returns the checkbox and text of a task list item, or a nil box
// when the item is a plain bullet.
func taskLine(item *ast.ListItem, source []byte) (*extast.TaskCheckBox, string) {
	block := item.FirstChild()
	if block == nil {
		return nil, ""
	}
	box, ok := block.FirstChild().(*extast.TaskCheckBox)
	if !ok {
		return nil, ""
	}
	return box, strings.TrimSpace(inlineText(box, source))
}

// inlineText joins the text of the inline nodes following box. The block's
// own Text covers its raw lines, checkbox marker included.
func inlineText(box ast.Node, source []byte) string {
	var b strings.Builder
	for n := box.NextSibling(); n != nil; n = n.NextSibling() {
		_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(t.Value)
			}
			return ast.WalkContinue, nil
		})
	}
	return b.String()
}

// WriteMarkdown writes days in the format Parse reads.
func WriteMarkdown(w io.Writer, days []Day) error {
	var buf bytes.Buffer
	if len(days) > 0 {
		fm, err := yaml.Marshal(frontMatter{Date: days[0].Key})
		if err != nil {
			return err
		}
		buf.WriteString("---\n")
		buf.Write(fm)
		buf.WriteString("---\n")
	}
	for i, d := range days {
		buf.WriteString("\n")
		if i > 0 {
			fmt.Fprintf(&buf, "## %s\n\n", d.Key)
		}
		for _, it := range d.Items {
			mark := " "
			if it.Checked {
				mark = "x"
			}
			fmt.Fprintf(&buf, "- [%s] %s\n", mark, it.Title)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// FromStore snapshots every non-empty day of s.
func FromStore(s *todo.Store) []Day {
	var days []Day
	for _, key := range s.Days() {
		d := Day{Key: key}
		for _, e := range s.ListOn(key) {
			d.Items = append(d.Items, Item{Title: e.Title, Checked: e.Checked})
		}
		days = append(days, d)
	}
	return days
}

// Apply adds every item to s, keeping the store's clamp and id rules. It
// returns the number of entries added.
func Apply(s *todo.Store, days []Day) int {
	n := 0
	for _, d := range days {
		for _, it := range d.Items {
			e, ok := s.AddOn(d.Key, it.Title)
			if !ok {
				continue
			}
			if it.Checked {
				s.ToggleOn(d.Key, e.ID)
			}
			n++
		}
	}
	return n
}
