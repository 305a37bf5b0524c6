package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "variable definition", text: "int x = 5;", expected: []string{"x"}},
		{name: "pointer variable", text: "int *p = nullptr;", expected: []string{"p"}},
		{name: "templated variable", text: "std::vector<int> vals;", expected: []string{"vals"}},
		{name: "function definition", text: "int add(int a, int b) {\nreturn a + b;\n}", expected: []string{"add"}},
		{name: "struct definition", text: "struct Point {\nint x;\n};", expected: []string{"Point"}},
		{name: "class definition", text: "class Greeter {};", expected: []string{"Greeter"}},
		{name: "no declaration", text: "std::cout << 1;", expected: nil},
		{name: "bare expression", text: "x * 2", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Record(tt.text)
			if diff := cmp.Diff(tt.expected, r.Names()); diff != "" {
				t.Errorf("Names() mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestRecordDeduplicates(t *testing.T) {
	r := New()
	r.Record("int x = 5;")
	r.Record("int x = 7;")
	if diff := cmp.Diff([]string{"x"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-expected +got):\n%s", diff)
	}
}

func TestForget(t *testing.T) {
	r := New()
	r.Record("int x = 5;")
	r.Record("int y = 1;")
	r.Forget("int y = 1;")
	if diff := cmp.Diff([]string{"x"}, r.Names()); diff != "" {
		t.Errorf("Names() after Forget mismatch (-expected +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	r := New()
	r.Record("int x = 5;")
	r.Reset()
	if len(r.Names()) != 0 {
		t.Errorf("Names() after Reset = %v, expected empty", r.Names())
	}
}
