package simplang

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Tokenizer splits source text into whitespace-delimited words.
// There is no quoting or escaping, a word ends at the first whitespace rune.
type Tokenizer struct {
	source  *bufio.Reader
	content string
	current *Token

	currPos Pos
	prevPos Pos
}

var _ TokenStream = new(Tokenizer)

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source:  bufio.NewReader(strings.NewReader(source.Content)),
		content: source.Content,
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, size, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	t.currPos.Offset += size
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	if t.current != nil && t.current.Kind == TokenEOF {
		return
	}
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	if err := t.skipWhitespace(); err != nil {
		return nil, err
	}
	startPos := t.currPos

	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(r) {
			t.unreadRune()
			break
		}
	}

	if t.currPos.Offset == startPos.Offset {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	// slice the source so invalid UTF-8 bytes are kept as is
	return &Token{
		Kind: TokenWord,
		Text: t.content[startPos.Offset:t.currPos.Offset],
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) skipWhitespace() error {
	for {
		r, err := t.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return nil
		}
	}
}

// Tokenize reads every word of source.
func Tokenize(source *Source) ([]*Token, error) {
	tokenizer := NewTokenizer(source)
	var ret []*Token
	for {
		token, err := tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			return ret, nil
		}
		ret = append(ret, token)
		tokenizer.Consume()
	}
}
