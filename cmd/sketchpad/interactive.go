package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
)

const defaultPreviewCols = 60

type interactiveCmd struct {
	*root
	fs *flag.FlagSet
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	c := &interactiveCmd{root: r.subcommand("interactive"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (i *interactiveCmd) Run() error {
	s := i.newSession()
	defer s.Close()
	parser := i.scriptParser()
	ctx := context.Background()

	fmt.Fprintln(i.stdout, "Enter actions, 'show', 'preview [cols]' or 'help' (type 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args := strings.Fields(line)
		switch args[0] {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(i.stdout, "actions: tool NAME | color C | thickness W | begin | move X Y | end | clear | fill X Y | init W H")
			continue
		case "show":
			writeSummary(i.stdout, s)
			continue
		case "preview":
			cols := defaultPreviewCols
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n <= 0 {
					fmt.Fprintf(os.Stderr, "preview: invalid width %q\n", args[1])
					continue
				}
				cols = n
			}
			fmt.Fprint(i.stdout, render.ASCII(render.Render(s.Snapshot(), i.config.Brush.Smoothness), cols))
			continue
		}
		a, err := parser.ParseAction(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := replay(ctx, s, []sketch.Action{a}); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scanner.Err()
}
