package parser

import (
	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token classes returned by the Scanner.
const (
	LeftParenToken = iota + 1
	RightParenToken
	AtomToken
)

// Scanner splits raw S-expression text into atom and parenthesis
// tokens. Spans from ';' to end-of-line are comments and skipped;
// whitespace (space, tab, newline, carriage return) separates tokens;
// '(' and ')' are always standalone tokens, even when not
// whitespace-separated, e.g. "(a)" yields '(', 'a', ')'.
//
// Scanning is side-effect-free with respect to the input: creating a
// fresh Scanner over the same text yields the same token sequence.
//
// Scanner implements the scanner.Tokenizer interface.
type Scanner struct {
	input string
	pos   int
	line  int
	errh  func(error)
}

// NewScanner creates a scanner for S-expression text.
func NewScanner(input string) *Scanner {
	sc := &Scanner{}
	sc.init(input)
	return sc
}

func (sc *Scanner) init(input string) {
	sc.input = input
	sc.pos = 0
	sc.line = 1
	sc.errh = nil
}

// NextToken returns the class, lexeme, input position and length of
// the next token, or scanner.EOF when the input is exhausted. The
// lexeme is the token text as a string.
//
// The expected argument is ignored; S-expression tokens do not depend
// on parser context.
//
// Interface scanner.Tokenizer.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	sc.skipIrrelevant()
	if sc.pos >= len(sc.input) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	start := sc.pos
	switch sc.input[sc.pos] {
	case '(':
		sc.pos++
		return LeftParenToken, "(", uint64(start), 1
	case ')':
		sc.pos++
		return RightParenToken, ")", uint64(start), 1
	}
	for sc.pos < len(sc.input) && !isTokenBoundary(sc.input[sc.pos]) {
		sc.pos++
	}
	lexeme := sc.input[start:sc.pos]
	return AtomToken, lexeme, uint64(start), uint64(len(lexeme))
}

// skipIrrelevant advances over whitespace and ';' line comments,
// counting lines.
func (sc *Scanner) skipIrrelevant() {
	for sc.pos < len(sc.input) {
		switch c := sc.input[sc.pos]; {
		case c == '\n':
			sc.line++
			sc.pos++
		case c == ' ' || c == '\t' || c == '\r':
			sc.pos++
		case c == ';':
			for sc.pos < len(sc.input) && sc.input[sc.pos] != '\n' {
				sc.pos++
			}
		default:
			return
		}
	}
}

func isTokenBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
		c == '(' || c == ')' || c == ';'
}

// Line returns the 1-based line number at the scanner's current
// position; used for error reporting.
func (sc *Scanner) Line() int {
	return sc.line
}

// SetErrorHandler sets an error handler function. The scanner itself
// cannot fail on any input, so the handler is never called; the method
// exists to satisfy the Tokenizer contract.
//
// Interface scanner.Tokenizer.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}
