// Package registry tracks the identifiers declared by committed
// fragments so the completer can offer them. Extraction is regex-based
// to match the heuristic, line-oriented view the classifier has of the
// input; it deliberately is not a C++ parser.
package registry

import (
	"regexp"
	"slices"
)

// Named function or type definitions: "int add(...) {", "struct Point {".
var (
	funcNameRe = regexp.MustCompile(
		`^\s*(?:(?:static|inline|constexpr|virtual|extern|template\s*<[^>]*>)\s+)*(?:\w[\w\s\*&:<>,]*?)\s+(\w+)\s*\([^)]*\)\s*(?:const\s*)?(?:noexcept\s*)?\{`)
	typeNameRe = regexp.MustCompile(`^\s*(?:struct|class|enum|union)\s+([A-Za-z_]\w*)`)
	varNameRe  = regexp.MustCompile(`^\s*(?:(?:const|static|unsigned|signed|auto)\s+)*[A-Za-z_][\w:<>,\s]*?[\s\*&]([A-Za-z_]\w*)\s*(?:=|;|\{|\()`)
)

type Registry struct {
	names []string
}

func New() *Registry {
	return &Registry{}
}

// Record extracts declared names from a committed fragment. Text with
// no recognizable declaration records nothing.
func (r *Registry) Record(text string) {
	for _, re := range []*regexp.Regexp{funcNameRe, typeNameRe, varNameRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			r.add(m[1])
			return
		}
	}
}

// Forget drops the names a fragment declared; used when the fragment is
// undone.
func (r *Registry) Forget(text string) {
	for _, re := range []*regexp.Regexp{funcNameRe, typeNameRe, varNameRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == m[1] })
			return
		}
	}
}

func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func (r *Registry) Reset() {
	r.names = nil
}

func (r *Registry) add(name string) {
	if slices.Contains(r.names, name) {
		return
	}
	r.names = append(r.names, name)
}
