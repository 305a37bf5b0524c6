// Package completer implements go-prompt completion for the console:
// dot-commands, standard includes, language keywords, and identifiers
// declared earlier in the session.
package completer

import (
	"strings"

	"github.com/c-bata/go-prompt"

	"igcpp/dotcmd"
	"igcpp/registry"
	"igcpp/stdinc"
)

type Completer struct {
	registry *registry.Registry
}

func New(reg *registry.Registry) *Completer {
	return &Completer{
		registry: reg,
	}
}

// Complete implements the go-prompt completer interface.
func (c *Completer) Complete(d prompt.Document) []prompt.Suggest {
	text := strings.TrimLeft(d.Text, " \t")
	switch {
	case text == "":
		return nil
	case strings.HasPrefix(text, "."):
		return prompt.FilterHasPrefix(dotCommandSuggests(), text, false)
	case strings.HasPrefix(text, "#"):
		return prompt.FilterHasPrefix(includeSuggests(), text, false)
	}

	word := lastWord(text)
	if word == "" {
		return nil
	}
	suggests := keywordSuggests()
	for _, name := range c.registry.Names() {
		suggests = append(suggests, prompt.Suggest{Text: name, Description: "session"})
	}
	return prompt.FilterHasPrefix(suggests, word, false)
}

func dotCommandSuggests() []prompt.Suggest {
	cmds := dotcmd.Commands()
	suggests := make([]prompt.Suggest, len(cmds))
	for i, cmd := range cmds {
		suggests[i] = prompt.Suggest{Text: cmd.Name, Description: cmd.Desc}
	}
	return suggests
}

func includeSuggests() []prompt.Suggest {
	headers := stdinc.Headers()
	suggests := make([]prompt.Suggest, len(headers))
	for i, header := range headers {
		suggests[i] = prompt.Suggest{Text: "#include <" + header + ">", Description: "standard header"}
	}
	return suggests
}

func keywordSuggests() []prompt.Suggest {
	suggests := make([]prompt.Suggest, len(keywords))
	for i, kw := range keywords {
		suggests[i] = prompt.Suggest{Text: kw, Description: "keyword"}
	}
	return suggests
}

// lastWord returns the trailing identifier-like run of the input, the
// part completion would replace.
func lastWord(text string) string {
	end := len(text)
	start := end
	for start > 0 {
		ch := text[start-1]
		if ch == '_' || ch == ':' ||
			(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			start--
			continue
		}
		break
	}
	return text[start:end]
}

var keywords = []string{
	"auto", "bool", "break", "case", "char", "class", "const",
	"constexpr", "continue", "default", "delete", "double", "else",
	"enum", "false", "float", "for", "if", "inline", "int", "long",
	"namespace", "new", "nullptr", "private", "public", "return",
	"short", "signed", "sizeof", "static", "struct", "switch",
	"template", "this", "throw", "true", "try", "typedef", "typename",
	"union", "unsigned", "using", "virtual", "void", "while",
	"std::cout", "std::cerr", "std::cin", "std::endl", "std::string",
	"std::vector", "std::map",
}
