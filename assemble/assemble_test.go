package assemble

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"igcpp/fragment"
)

const preamble = "#include <iostream>"

func frag(text string, kind fragment.Kind) fragment.Fragment {
	return fragment.Fragment{Text: text, Kind: kind}
}

func TestRenderLayout(t *testing.T) {
	includes := []fragment.Fragment{frag("#include <vector>", fragment.KindInclude)}
	decls := []fragment.Fragment{frag("int add(int a, int b) { return a + b; }", fragment.KindDeclaration)}
	stmts := []fragment.Fragment{frag("int x = 5;", fragment.KindStatement)}

	got := Render(preamble, includes, decls, stmts, nil)
	expected := strings.Join([]string{
		"#include <iostream>",
		"",
		"#include <vector>",
		"",
		"int add(int a, int b) { return a + b; }",
		"",
		"int main() {",
		"    int x = 5;",
		"    return 0;",
		"}",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Render() mismatch (-expected +got):\n%s", diff)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	includes := []fragment.Fragment{frag("#include <string>", fragment.KindInclude)}
	stmts := []fragment.Fragment{frag(`std::string s = "a";`, fragment.KindStatement)}
	exprs := []fragment.Fragment{frag("s + s", fragment.KindExpression)}

	first := Render(preamble, includes, nil, stmts, exprs)
	second := Render(preamble, includes, nil, stmts, exprs)
	if first != second {
		t.Error("Render() is not byte-identical across calls on equal state")
	}
}

func TestRenderDeduplicatesIncludes(t *testing.T) {
	includes := []fragment.Fragment{
		frag("#include <vector>", fragment.KindInclude),
		frag("#include <map>", fragment.KindInclude),
		frag("#include <vector>", fragment.KindInclude),
	}
	got := Render(preamble, includes, nil, nil, nil)
	if strings.Count(got, "#include <vector>") != 1 {
		t.Errorf("duplicate include survived dedup:\n%s", got)
	}
	if !strings.Contains(got, "#include <map>") {
		t.Errorf("distinct include dropped:\n%s", got)
	}
}

func TestRenderWrapsExpressions(t *testing.T) {
	exprs := []fragment.Fragment{frag("x * 2", fragment.KindExpression)}
	got := Render(preamble, nil, nil, nil, exprs)
	if !strings.Contains(got, "IGCPP_DISPLAY((x * 2));") {
		t.Errorf("expression not wrapped for display:\n%s", got)
	}
}

func TestRenderIndentsMultilineStatements(t *testing.T) {
	stmts := []fragment.Fragment{frag("for (int i = 0; i < 2; ++i) {\nstd::cout << i;\n}", fragment.KindStatement)}
	got := Render(preamble, nil, nil, stmts, nil)
	for _, line := range []string{"    for (int i = 0; i < 2; ++i) {", "    std::cout << i;", "    }"} {
		if !strings.Contains(got, line) {
			t.Errorf("missing indented line %q in:\n%s", line, got)
		}
	}
}

func TestRenderEmptyState(t *testing.T) {
	got := Render(preamble, nil, nil, nil, nil)
	expected := strings.Join([]string{
		"#include <iostream>",
		"",
		"int main() {",
		"    return 0;",
		"}",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Render() mismatch (-expected +got):\n%s", diff)
	}
}

func TestRenderUserOmitsPreambleAndExprs(t *testing.T) {
	includes := []fragment.Fragment{frag("#include <vector>", fragment.KindInclude)}
	stmts := []fragment.Fragment{frag("int x = 5;", fragment.KindStatement)}
	got := RenderUser(includes, nil, stmts)
	if strings.Contains(got, "iostream") {
		t.Errorf("user listing contains boilerplate:\n%s", got)
	}
	if !strings.HasPrefix(got, "#include <vector>") {
		t.Errorf("user listing does not start with user includes:\n%s", got)
	}
}
