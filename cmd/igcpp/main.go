package main

import (
	"os"

	"igcpp/completer"
	"igcpp/config"
	"igcpp/dotcmd"
	"igcpp/engine"
	"igcpp/errs"
	"igcpp/registry"
	"igcpp/repl"
	"igcpp/session"
	"igcpp/toolchain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}

	compilerVersion, err := toolchain.Probe(cfg.Compiler.Command, cfg.Compiler.MinVersion)
	if err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}

	comp, err := toolchain.NewGccCompiler(cfg.Compiler)
	if err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}

	sess := session.New()
	reg := registry.New()
	eng := engine.New(sess, reg, comp, toolchain.NewExecRunner(), cfg.Preamble)

	exit := func(code int) {
		comp.Close()
		os.Exit(code)
	}
	dot := dotcmd.New(sess, eng, reg, cfg, os.Stdout, exit)

	r := repl.New(eng, dot, completer.New(reg), cfg, compilerVersion, os.Stdout, exit)
	r.Run()
	comp.Close()
}
