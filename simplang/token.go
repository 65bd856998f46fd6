package simplang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenWord
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenEOF:
		return "EOF"
	}
	return "invalid"
}
