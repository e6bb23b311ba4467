package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"braces.dev/errtrace"
	"go.abhg.dev/hljspage/internal/hljs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Help is hljspage's -h/-help flag.
// It supports retrieving help on various topics by passing in a parameter.
type Help string

// Well-known help topics.
const (
	NoHelp      Help = ""
	DefaultHelp Help = "default"
	UsageHelp   Help = "usage"
)

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/config.txt
	_configHelp string

	_usageHelp = firstLineOf(_defaultHelp)

	_helpTopics = map[Help]string{
		"config":    _configHelp,
		"default":   _defaultHelp,
		"languages": catalogHelp("LANGUAGES", languageRows()),
		"themes":    catalogHelp("THEMES", themeRows()),
		"usage":     _usageHelp,
	}
)

func firstLineOf(s string) string {
	if idx := strings.IndexRune(s, '\n'); idx >= 0 {
		s = s[:idx+1]
	}
	return s
}

// Known reports whether this is a known help topic.
func (h Help) Known() bool {
	_, ok := _helpTopics[h]
	return ok
}

// Write writes the help on this topic to the writer.
// If this topic is not known, an error is returned.
func (h Help) Write(w io.Writer) error {
	if len(h) == 0 {
		return nil
	}

	if doc, ok := _helpTopics[h]; ok {
		_, err := io.WriteString(w, doc)
		return errtrace.Wrap(err)
	}

	topics := make([]string, 0, len(_helpTopics))
	for h := range _helpTopics {
		topics = append(topics, string(h))
	}
	sort.Strings(topics)

	return errtrace.Errorf("unknown help topic %q: valid values are %q", string(h), topics)
}

var _ flag.Getter = (*Help)(nil)

// Get returns the value of the Help.
// This is to comply with the [flag.Getter] interface.
func (h *Help) Get() any {
	return *h
}

// IsBoolFlag marks this as a boolean flag
// which allows it to be used without an argument.
func (*Help) IsBoolFlag() bool {
	return true
}

// String returns the name of this topic.
func (h Help) String() string {
	return string(h)
}

// Set receives a command line value.
func (h *Help) Set(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "true" {
		s = "default"
	}
	*h = Help(s)
	return nil
}

// catalogRow is a single entry in the languages or themes topic.
type catalogRow struct {
	Name string
	Note string
}

var _titleCase = cases.Title(language.English)

// displayName turns a catalog name into a human-readable title:
// "atelier-plateau-light" becomes "Atelier Plateau Light".
func displayName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(name)
	return _titleCase.String(name)
}

func languageRows() []catalogRow {
	langs := hljs.Languages()
	rows := make([]catalogRow, 0, len(langs))
	for _, lang := range langs {
		var note string
		if lang.InCommon() {
			note = "common"
		}
		rows = append(rows, catalogRow{Name: lang.String(), Note: note})
	}
	return rows
}

func themeRows() []catalogRow {
	themes := hljs.Themes()
	rows := make([]catalogRow, 0, len(themes))
	for _, theme := range themes {
		var note string
		if theme == hljs.DefaultTheme {
			note = "default"
		}
		rows = append(rows, catalogRow{Name: theme.String(), Note: note})
	}
	return rows
}

// catalogHelp renders a help topic listing a catalog
// as a table of names, display names, and notes.
func catalogHelp(title string, rows []catalogRow) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%v (%d)\n\n", title, len(rows))

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "  %v\t%v\t%v\n", row.Name, displayName(row.Name), row.Note)
	}
	_ = tw.Flush()

	// tabwriter pads the empty last column.
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
