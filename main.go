package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/linuskmr/forty-two-lang/lexer"
	"github.com/linuskmr/forty-two-lang/parser"
)

const historyFile = ".ftl_history"

type ftlModule struct {
	Package string `yaml:"Package"`
}

// openSource returns the file named by the first argument, or stdin when no
// argument is given.
func openSource(c *cli.Context) (io.ReadCloser, string, error) {
	name := c.Args().First()
	if name == "" {
		return os.Stdin, "stdin", nil
	}
	handle, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	return handle, name, nil
}

func dumpTokens(c *cli.Context) error {
	source, _, err := openSource(c)
	if err != nil {
		return err
	}
	defer source.Close()

	l := lexer.New(source)
	for {
		tok, ok := l.Next()
		if !ok {
			return nil
		}
		repr.Println(tok)
	}
}

func dumpAst(c *cli.Context) error {
	source, name, err := openSource(c)
	if err != nil {
		return err
	}
	defer source.Close()

	p := parser.New(lexer.New(source))
	for {
		node, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			tracerr.PrintSourceColor(tracerr.Wrap(err))
			os.Exit(1)
		}
		repr.Println(node)
	}
}

func repl(c *cli.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("ftl> ")
		if err != nil {
			// Ctrl-C or Ctrl-D ends the session.
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		p := parser.New(lexer.New(strings.NewReader(line)))
		nodes, err := p.ParseAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, node := range nodes {
			repr.Println(node)
		}
	}
}

func initModule(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		fmt.Println("no module name provided")
		os.Exit(1)
	}
	yml := ftlModule{
		Package: name,
	}
	fi, err := os.Create("ftl.yaml")
	if err != nil {
		return fmt.Errorf("error creating ftl.yaml: %w", err)
	}
	defer fi.Close()

	out, err := yaml.Marshal(yml)
	if err != nil {
		return fmt.Errorf("error creating ftl.yaml: %w", err)
	}
	if _, err := fi.Write(out); err != nil {
		return fmt.Errorf("error creating ftl.yaml: %w", err)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "ftl",
		Usage: "fortytwo-lang compiler frontend",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				log.Fatalf("error with ftl: %s", err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init an ftl module in the current directory",
				ArgsUsage: "<name>",
				Action:    initModule,
			},
			{
				Name:      "lex",
				Usage:     "dump the tokens of a source file (or stdin)",
				ArgsUsage: "[file]",
				Action:    dumpTokens,
			},
			{
				Name:      "parse",
				Usage:     "dump the AST of a source file (or stdin)",
				ArgsUsage: "[file]",
				Action:    dumpAst,
			},
			{
				Name:   "repl",
				Usage:  "parse expressions interactively",
				Action: repl,
			},
		},
	}
	app.Run(os.Args)
}
