package main

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"
)

// Op is a single operation of a command line, e.g. "lookup:2B:prefix".
type Op struct {
	code int
	args []string
}

// Command is a sequence of operations, separated by spaces on the command
// line.
type Command struct {
	ops []Op
}

const (
	QUIT int = iota
	HELP
	LOOKUP
	VERTICAL
	FORMS
	LIST
	RESOLVE
	FONT
	COVER
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"lookup":   LOOKUP,
	"vertical": VERTICAL,
	"forms":    FORMS,
	"list":     LIST,
	"resolve":  RESOLVE,
	"font":     FONT,
	"cover":    COVER,
}

var opNames = []string{
	"quit",
	"help",
	"lookup",
	"vertical",
	"forms",
	"list",
	"resolve",
	"font",
	"cover",
}

var errNoFont = errors.New("no font loaded, use font:<path>")

// parseCommand splits a command line into operations. Unknown operations
// turn into calls for help.
func parseCommand(line string) (*Command, error) {
	steps := strings.Fields(line)
	if len(steps) == 0 {
		return nil, errors.New("empty command")
	}
	cmd := &Command{ops: make([]Op, 0, len(steps))}
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "lookup:2B:prefix:explicit" or "list:2190-21FF"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			tracer().Infof("unknown command %q", c[0])
			code = HELP
			c = []string{"help"}
		}
		cmd.ops = append(cmd.ops, Op{code: code, args: c[1:]})
		tracer().Debugf("parsed command: %v", c)
		if code == QUIT {
			break
		}
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	LOOKUP:   lookupOp,
	VERTICAL: verticalOp,
	FORMS:    formsOp,
	LIST:     listOp,
	RESOLVE:  resolveOp,
	FONT:     fontOp,
	COVER:    coverOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	for _, op := range cmd.ops {
		f, ok := commandFn[op.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", op.code)
			return nil, false
		}
		tracer().Debugf("executing %s %v", opNames[op.code], op.args)
		if err, stop = f(intp, &op); err != nil || stop {
			return
		}
	}
	return
}

func (op *Op) arg(i int) string {
	if i < len(op.args) {
		return op.args[i]
	}
	return ""
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}
