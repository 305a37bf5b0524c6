// Package stdinc catalogs the standard C++ headers offered by include
// completion.
package stdinc

// Headers returns every known standard header name.
func Headers() []string {
	var all []string
	all = append(all, containerHeaders()...)
	all = append(all, streamHeaders()...)
	all = append(all, stringHeaders()...)
	all = append(all, utilityHeaders()...)
	all = append(all, numericHeaders()...)
	all = append(all, threadHeaders()...)
	all = append(all, cCompatHeaders()...)
	return all
}

// IsStandardHeader reports whether name is a known standard header.
func IsStandardHeader(name string) bool {
	for _, h := range Headers() {
		if h == name {
			return true
		}
	}
	return false
}

// containerHeaders returns the container library headers.
func containerHeaders() []string {
	return []string{
		"array", "vector", "deque", "list", "forward_list",
		"set", "map", "unordered_set", "unordered_map",
		"stack", "queue", "bitset", "span",
	}
}

// streamHeaders returns the IO library headers.
func streamHeaders() []string {
	return []string{
		"iostream", "iomanip", "fstream", "sstream", "istream",
		"ostream", "streambuf", "syncstream", "filesystem",
	}
}

// stringHeaders returns the text-handling headers.
func stringHeaders() []string {
	return []string{
		"string", "string_view", "charconv", "format", "regex", "locale",
	}
}

// utilityHeaders returns the general utility headers.
func utilityHeaders() []string {
	return []string{
		"algorithm", "functional", "iterator", "memory", "utility",
		"tuple", "optional", "variant", "any", "typeinfo", "typeindex",
		"type_traits", "initializer_list", "chrono", "exception",
		"stdexcept", "system_error", "source_location", "concepts",
		"ranges", "expected",
	}
}

// numericHeaders returns the numerics headers.
func numericHeaders() []string {
	return []string{
		"cmath", "complex", "numeric", "random", "ratio", "limits",
		"numbers", "bit", "cfenv",
	}
}

// threadHeaders returns the concurrency headers.
func threadHeaders() []string {
	return []string{
		"thread", "mutex", "shared_mutex", "condition_variable",
		"future", "atomic", "semaphore", "latch", "barrier",
		"stop_token", "coroutine",
	}
}

// cCompatHeaders returns the C compatibility headers.
func cCompatHeaders() []string {
	return []string{
		"cstdio", "cstdlib", "cstring", "cctype", "cstdint", "cstddef",
		"ctime", "cassert", "cerrno", "climits", "cfloat", "csignal",
		"csetjmp", "cstdarg", "cuchar", "cwchar", "cwctype", "cinttypes",
		"clocale",
	}
}
