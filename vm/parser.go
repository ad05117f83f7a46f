package vm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined names available to compile-time $() expressions.
var sysDefine = map[string]string{
	"LINENO":    "0",
	"MEM_SIZE":  fmt.Sprintf("%v", MemorySize),
	"REGISTERS": fmt.Sprintf("%v", RegisterCount),
}

// Parser is a single pass parser and linker for assembly source text.
type Parser struct {
	Verbose bool              // If set, verbosely logs parsed lines.
	Define  map[string]string // Names visible to $() expressions.

	predefine map[string]string
}

// Predefine adds a name to the $() expression environment, on top of the
// system predefines.
func (p *Parser) Predefine(name string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{name: value}
	} else {
		p.predefine[name] = value
	}
}

// parenEval does a compile-time $(...) evaluation.
func (p *Parser) parenEval(expr string) (value float64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Define {
		v, verr := ParseLiteral(str)
		if verr != nil {
			// Ignore non-numeric defines.
			continue
		}
		if v == math.Trunc(v) {
			pred[key] = starlark.MakeInt64(int64(v))
		} else {
			pred[key] = starlark.Float(v)
		}
	}

	text := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", text, pred)
	if err != nil {
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	switch v := rc.(type) {
	case starlark.Int:
		i64, exact := v.Int64()
		if !exact {
			err = ErrParseExpression(expr)
			return
		}
		value = float64(i64)
	case starlark.Float:
		value = float64(v)
	default:
		err = ErrParseExpression(expr)
	}

	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// expand substitutes the numeric results of $() expressions into a line.
func (p *Parser) expand(line string) (out string, err error) {
	out = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		if value == math.Trunc(value) && math.Abs(value) < (1<<53) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'g', -1, 64)
	})

	return
}

// Parse parses an input stream into a linked Program.
//
// Per line: everything from the first ';' is a comment, surrounding
// whitespace is trimmed, and blank lines are skipped. A leading token
// ending in ':' defines a label pointing at the next real instruction;
// labels occupy no program slots. Otherwise the first token is the
// mnemonic and the rest, re-joined and re-split on commas, are the
// operands.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	p.Define = maps.Clone(sysDefine)
	for name, value := range p.predefine {
		p.Define[name] = value
	}

	prog = &Program{
		Labels: make(map[string]int, 16),
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		code, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(code)
		if len(line) == 0 {
			continue
		}

		p.Define["LINENO"] = strconv.Itoa(lineno)

		expanded := line
		if strings.Contains(expanded, "$(") {
			expanded, err = p.expand(expanded)
			if err != nil {
				return
			}
		}

		words := strings.Fields(expanded)

		for len(words) > 0 && strings.HasSuffix(words[0], ":") {
			label := strings.TrimSuffix(words[0], ":")
			_, ok := prog.Labels[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			prog.Labels[label] = len(prog.Instructions) + 1
			words = words[1:]
		}

		if len(words) == 0 {
			continue
		}

		inst := Instruction{
			Mnemonic: strings.ToLower(words[0]),
			Line:     line,
			LineNo:   lineno,
		}

		for _, token := range strings.Split(strings.Join(words[1:], ""), ",") {
			if len(token) == 0 {
				continue
			}
			inst.Operands = append(inst.Operands, ParseOperand(token))
		}

		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()

	return
}
