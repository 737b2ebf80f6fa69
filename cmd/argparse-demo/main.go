// Command argparse-demo parses a compiler invocation and echoes the parsed
// values.
//
//	argparse-demo gcc 5 -op 3 -strings a b
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/janert/argparse"
)

func main() {
	var (
		compiler string
		i        int
		op       = 2
		strs     []string
	)

	logger := log.New(os.Stderr)
	logger.SetTimeFormat("")
	logger.SetLevel(log.InfoLevel)

	p := argparse.New("Echo a compiler invocation.", argparse.Logger(logger))

	argparse.Var(p, "compiler", &compiler, argparse.Help("compiler to invoke"))
	argparse.Var(p, "int", &i, argparse.Help("an integer"))
	argparse.Var(p, "-op", &op, argparse.Help("optimisation level (default 2)"))
	argparse.SliceVar(p, "-strings", &strs,
		argparse.Arity(argparse.AtLeastOne),
		argparse.Metavar("string"),
		argparse.Help("strings to echo"))
	p.Func("-debug", func(*argparse.Running, *argparse.Tokens, string) error {
		logger.SetLevel(log.DebugLevel)
		return nil
	}, argparse.Arity(argparse.None), argparse.Help("trace the rest of the parse"))

	switch outcome, _ := p.ParseArgs(); outcome {
	case argparse.HelpRequested:
		return
	case argparse.Failed:
		os.Exit(2)
	}

	fmt.Println(compiler, i, op)
	for _, s := range strs {
		fmt.Println(s)
	}
}
