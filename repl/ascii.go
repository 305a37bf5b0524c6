package repl

import (
	_ "embed"
	"fmt"
)

//go:embed igcpp_ascii.txt
var ascii []byte

func printAscii() {
	fmt.Print(string(ascii))
}
