package fragment

import (
	"regexp"
	"strings"
)

// Matches #include/#define/... directives and using declarations, which
// belong at file scope before everything else.
var includeRe = regexp.MustCompile(`^\s*(#\s*\w+|using\s)`)

// Matches a function definition header, e.g. "int add(int a, int b) {".
var funcDefRe = regexp.MustCompile(
	`^\s*` +
		`(?:(?:static|inline|constexpr|virtual|extern|template\s*<[^>]*>)\s+)*` +
		`(?:\w[\w\s\*&:<>,]*?)\s+` +
		`(\w+)\s*\([^)]*\)\s*` +
		`(?:const\s*)?(?:noexcept\s*)?(?:override\s*)?(?:final\s*)?` +
		`\{`)

// Matches a named type definition, e.g. "struct Point {".
var typeDefRe = regexp.MustCompile(`^\s*(?:typedef\s|(?:struct|class|enum|union|namespace)\s+\w+)`)

// Matches control constructs that are statements even without a
// trailing semicolon on the first line.
var controlRe = regexp.MustCompile(`^\s*(?:if|else|for|while|do|switch|return|break|continue)\b|^\s*[{}]`)

// Classify tags one complete (balance-closed) unit of input. The rules
// are heuristic and line-based; anything ambiguous falls back to
// Statement so user code is never silently dropped.
func Classify(text string) Kind {
	switch {
	case includeRe.MatchString(text):
		return KindInclude
	case funcDefRe.MatchString(text) || typeDefRe.MatchString(text):
		return KindDeclaration
	case controlRe.MatchString(text):
		return KindStatement
	case strings.HasSuffix(strings.TrimSpace(text), ";"),
		strings.HasSuffix(strings.TrimSpace(text), "}"),
		strings.HasSuffix(strings.TrimSpace(text), "{"):
		return KindStatement
	default:
		return KindExpression
	}
}

// Classifier buffers raw input lines until braces, brackets and parens
// balance, then hands the joined text to Classify. One instance serves
// one REPL session.
type Classifier struct {
	buffered       []string
	depth          int
	inBlockComment bool
}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Feed consumes one raw line and reports whether the buffered input now
// forms a complete unit. While it returns false the caller must keep
// feeding continuation lines.
func (c *Classifier) Feed(line string) (complete bool) {
	c.buffered = append(c.buffered, line)
	c.depth += c.countDelta(line)
	if c.depth < 0 {
		// A stray closer never holds the buffer open.
		c.depth = 0
	}
	return c.depth == 0 && !c.inBlockComment
}

// Pending reports whether a continuation is in progress.
func (c *Classifier) Pending() bool {
	return len(c.buffered) > 0
}

// Take returns the buffered unit and resets the classifier.
func (c *Classifier) Take() string {
	text := strings.Join(c.buffered, "\n")
	c.buffered = nil
	c.depth = 0
	c.inBlockComment = false
	return text
}

// countDelta counts opening minus closing brackets, skipping string and
// character literals and comments.
func (c *Classifier) countDelta(line string) int {
	delta := 0
	var inString, inChar bool
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case c.inBlockComment:
			if ch == '*' && i+1 < len(line) && line[i+1] == '/' {
				c.inBlockComment = false
				i++
			}
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case inChar:
			if ch == '\\' {
				i++
			} else if ch == '\'' {
				inChar = false
			}
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return delta // rest of the line is a comment
		case ch == '/' && i+1 < len(line) && line[i+1] == '*':
			c.inBlockComment = true
			i++
		case ch == '"':
			inString = true
		case ch == '\'':
			inChar = true
		case ch == '{' || ch == '(' || ch == '[':
			delta++
		case ch == '}' || ch == ')' || ch == ']':
			delta--
		}
	}
	return delta
}
