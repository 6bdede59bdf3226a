package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mathml/internal/codepoint"
	"github.com/npillmayer/mathml/mathop"
	"github.com/npillmayer/mathml/opdict"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"
)

// lookup:<cp>[:<form>[:explicit]]
func lookupOp(intp *Intp, op *Op) (error, bool) {
	ch, err := codepoint.Parse(op.arg(0))
	if err != nil {
		return err, false
	}
	form := opdict.Infix
	if f := op.arg(1); f != "" {
		if form, err = opdict.ParseForm(strings.ToLower(f)); err != nil {
			return err, false
		}
	}
	explicit := op.arg(2) == "explicit"
	p, ok := opdict.Search(ch, form, explicit)
	if !ok {
		pterm.Printf("%s: not in dictionary as %s (explicit=%v)\n", charName(ch), form, explicit)
		return nil, false
	}
	pterm.Printf("%s: %s\n", charName(ch), p)
	return nil, false
}

// vertical:<cp>
func verticalOp(intp *Intp, op *Op) (error, bool) {
	ch, err := codepoint.Parse(op.arg(0))
	if err != nil {
		return err, false
	}
	dir := "horizontally"
	if opdict.IsVertical(ch) {
		dir = "vertically"
	}
	pterm.Printf("%s stretches %s\n", charName(ch), dir)
	return nil, false
}

// forms:<cp>
func formsOp(intp *Intp, op *Op) (error, bool) {
	ch, err := codepoint.Parse(op.arg(0))
	if err != nil {
		return err, false
	}
	forms := opdict.Forms(ch)
	if len(forms) == 0 {
		pterm.Printf("%s is not an operator\n", charName(ch))
		return nil, false
	}
	data := [][]string{{"Form", "LSpace", "RSpace", "Flags"}}
	for _, f := range forms {
		p, _ := opdict.Search(ch, f, true)
		data = append(data, propertyRow(p))
	}
	pterm.Println(charName(ch))
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// list[:<from>-<to>]
func listOp(intp *Intp, op *Op) (error, bool) {
	from, to := rune(0), rune(0x10FFFF)
	if r := op.arg(0); r != "" {
		var err error
		if from, to, err = codepoint.ParseRange(r); err != nil {
			return err, false
		}
	}
	data := [][]string{{"Char", "Name", "Form", "LSpace", "RSpace", "Flags"}}
	for e := range opdict.Entries() {
		if e.Char < from || e.Char > to {
			continue
		}
		row := append([]string{fmt.Sprintf("%U", e.Char), runenames.Name(e.Char)}, propertyRow(e.Property)...)
		data = append(data, row)
	}
	if len(data) == 1 {
		pterm.Printf("no operators in range %U-%U\n", from, to)
		return nil, false
	}
	pterm.Printf("%d dictionary entries\n", len(data)-1)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// resolve:<text>[:<index>/<count>]
func resolveOp(intp *Intp, op *Op) (error, bool) {
	text, index, count, err := resolveArgs(op.args)
	if err != nil {
		return err, false
	}
	mo := mathop.Resolve(text, mathop.Attributes{}, index, count)
	lead, trail := mo.Spacing(mathop.Metrics{EmSize: fixed.I(18)})
	pterm.Printf("%s\n", mo)
	pterm.Printf("spacing at 18px: lspace=%v rspace=%v\n", lead, trail)
	return nil, false
}

// resolveArgs splits the arguments of resolve into operator text and
// position. The text may itself contain ':', so the position is taken from
// the last argument only, and only if there is more than one argument.
func resolveArgs(args []string) (text string, index, count int, err error) {
	index, count = 1, 3
	if len(args) < 2 || !strings.Contains(args[len(args)-1], "/") {
		return strings.Join(args, ":"), index, count, nil
	}
	pos := args[len(args)-1]
	i, n, _ := strings.Cut(pos, "/")
	var err1, err2 error
	index, err1 = strconv.Atoi(i)
	count, err2 = strconv.Atoi(n)
	if err1 != nil || err2 != nil || index < 0 || index >= count {
		return "", 0, 0, fmt.Errorf("invalid position %q, expected <index>/<count>", pos)
	}
	return strings.Join(args[:len(args)-1], ":"), index, count, nil
}

// font:<path>
func fontOp(intp *Intp, op *Op) (error, bool) {
	path := strings.Join(op.args, ":")
	if path == "" {
		return errors.New("font path missing"), false
	}
	return intp.loadFont(path), false
}

// cover[:<cp>]
func coverOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	if op.arg(0) != "" {
		ch, err := codepoint.Parse(op.arg(0))
		if err != nil {
			return err, false
		}
		g := intp.font.Check(ch)
		if !g.Present {
			pterm.Printf("%s: no glyph in %s\n", charName(ch), intp.font.Name)
			return nil, false
		}
		pterm.Printf("%s: glyph %d, advance %.0f\n", charName(ch), g.GID, g.Advance)
		return nil, false
	}
	r := intp.font.Report()
	pterm.Printf("%s covers %d of %d operators (%.1f%%)\n", r.Font,
		len(r.Operators)-len(r.Missing()), len(r.Operators), 100*r.Ratio())
	scripts, groups := r.MissingByScript()
	data := [][]string{{"Script", "Missing"}}
	for _, s := range scripts {
		data = append(data, []string{s.String(), strconv.Itoa(len(groups[s]))})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

func propertyRow(p opdict.Property) []string {
	return []string{
		p.Form.String(),
		strconv.Itoa(int(p.LeadingSpace)),
		strconv.Itoa(int(p.TrailingSpace)),
		p.Flags.String(),
	}
}

func charName(ch rune) string {
	name := runenames.Name(ch)
	if name == "" {
		return fmt.Sprintf("%U", ch)
	}
	return fmt.Sprintf("%U %s", ch, name)
}
