package repl

const VERSION = "v0.1.0"
