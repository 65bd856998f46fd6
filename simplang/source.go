package simplang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos locates a token in its source. Offset is in bytes, Line and Column are 1-based and Column counts runes.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
