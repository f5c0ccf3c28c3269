/*
Command lalrgen is an interactive inspector for the LALR(1) pipeline in
github.com/lalrgen/lalrgen: load one of a handful of canned grammars,
then poke at its automaton, lookahead sets and packed tables from a
REPL. It is a diagnostic sandbox in the spirit of gorgo's T.REPL
(terex/terexlang/trepl), not a replacement for a .y compiler -- it never
lexes grammar source, only grammars already expressed through the Go
builder API.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2024, The lalrgen Authors
All rights reserved.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/lalrgen/lalrgen/generator"
)

func tracer() tracing.Trace { return gtrace.SyntaxTracer }

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	load := flag.String("load", "expr", "Canned example to load at startup")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))

	pterm.Info.Prefix = pterm.Prefix{Text: " lalrgen ", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: " error ", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
	pterm.Info.Println("LALR(1) table inspector -- type :help for commands")

	insp := &inspector{}
	if err := insp.use(*load); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	repl, err := readline.New("lalrgen> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF, ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := insp.dispatch(line); quit {
			break
		}
	}
	fmt.Println("bye")
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}

// inspector holds the currently loaded grammar's generated tables and
// dispatches REPL command lines against them.
type inspector struct {
	exampleName string
	tables      *generator.Tables
}

func (insp *inspector) use(name string) error {
	ex := findExample(name)
	if ex == nil {
		return fmt.Errorf("no such example %q (try :list)", name)
	}
	tables, err := generator.New().Generate(ex.build())
	if err != nil {
		return err
	}
	insp.exampleName = name
	insp.tables = tables
	return nil
}

func (insp *inspector) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		insp.help()
	case ":list":
		insp.list()
	case ":use":
		if len(args) != 1 {
			pterm.Error.Println(":use requires exactly one example name")
			return false
		}
		if err := insp.use(args[0]); err != nil {
			pterm.Error.Println(err.Error())
		} else {
			pterm.Info.Printf("loaded %q\n", args[0])
		}
	case ":states":
		insp.printStates()
	case ":table":
		insp.printTable()
	case ":conflicts":
		insp.printConflicts()
	case ":first":
		if len(args) != 1 {
			pterm.Error.Println(":first requires a nonterminal name")
			return false
		}
		insp.printFirst(args[0])
	case ":dot":
		if len(args) != 1 {
			pterm.Error.Println(":dot requires a destination filename")
			return false
		}
		if err := insp.writeDot(args[0]); err != nil {
			pterm.Error.Println(err.Error())
		} else {
			pterm.Info.Printf("wrote CFSM to %s\n", args[0])
		}
	default:
		pterm.Error.Printf("unknown command %q (try :help)\n", cmd)
	}
	return false
}

func (insp *inspector) help() {
	pterm.DefaultBasicText.Println(strings.TrimSpace(`
:list                 list the canned example grammars
:use <name>            load an example grammar
:states                render the LR(0)/LALR automaton as a tree
:table                  render the packed ACTION/GOTO base offsets
:conflicts              list shift/reduce and reduce/reduce conflicts
:first <nonterminal>    list the FirstDerives rule set for a nonterminal
:dot <file>             export the CFSM as a Graphviz dot file
:quit                   leave the inspector
`))
}

func (insp *inspector) list() {
	data := pterm.TableData{{"name", "description"}}
	for _, ex := range examples {
		data = append(data, []string{ex.name, ex.description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
