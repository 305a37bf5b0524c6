// Package assemble renders the full compilable program from the
// session's accumulated fragments. Rendering is a pure function of its
// inputs: the same state always yields byte-identical text, and it
// never fails — malformed input surfaces later as a compile error.
package assemble

import (
	"strings"

	"igcpp/fragment"
)

// DisplayMacro wraps display expressions; the boilerplate preamble is
// expected to define it to print the value and its type.
const DisplayMacro = "IGCPP_DISPLAY"

const indent = "    "

// Render concatenates, in order: the boilerplate preamble, the user
// includes (deduplicated by exact text), the declarations, and an
// int main() whose body is the statements followed by the current
// turn's display expressions.
func Render(preamble string, includes, decls, stmts, exprs []fragment.Fragment) string {
	var b strings.Builder

	if p := strings.TrimRight(preamble, "\n"); p != "" {
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	seen := make(map[string]struct{}, len(includes))
	for _, inc := range includes {
		if _, dup := seen[inc.Text]; dup {
			continue
		}
		seen[inc.Text] = struct{}{}
		b.WriteString(inc.Text)
		b.WriteString("\n")
	}
	if len(includes) > 0 {
		b.WriteString("\n")
	}

	for _, decl := range decls {
		b.WriteString(decl.Text)
		b.WriteString("\n\n")
	}

	b.WriteString("int main() {\n")
	for _, stmt := range stmts {
		writeIndented(&b, stmt.Text)
	}
	for _, expr := range exprs {
		writeIndented(&b, DisplayMacro+"(("+strings.TrimSpace(expr.Text)+"));")
	}
	b.WriteString(indent + "return 0;\n")
	b.WriteString("}\n")

	return collapseBlankLines(b.String())
}

// RenderUser renders only the user-entered program (no boilerplate, no
// display expressions), as shown by full listings.
func RenderUser(includes, decls, stmts []fragment.Fragment) string {
	return Render("", includes, decls, stmts, nil)
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// collapseBlankLines squeezes runs of blank lines down to one.
func collapseBlankLines(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return strings.Join(out, "\n")
}
