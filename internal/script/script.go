// Package script runs a small line oriented command language over two
// integer lists, named a and b.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Asutorufa/flist/pkg/log"
	"github.com/Asutorufa/flist/pkg/utils/list"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
	ErrRegister       = errors.New("unknown list")
	ErrIndex          = errors.New("index out of range")
	ErrSnapshot       = errors.New("bad snapshot")
)

// MaxLineSize bounds a single command line read by Run.
const MaxLineSize = 16 << 20

const Help = `commands:
  push <a|b> <int>...       push each value to the front
  pop <a|b>                 remove the first value
  insert <a|b> <idx> <int>  insert after the idx-th value (0 is before the first)
  erase <a|b> <idx>         erase the value after the idx-th value
  clear <a|b>
  set <a|b> <int>...        replace the list with the values in order
  copy <dst> <src>          replace dst with a copy of src
  swap                      exchange a and b
  cmp                       compare a with b
  print [a|b]
  save <a|b> <file>
  load <a|b> <file>
  help`

type Interpreter struct {
	a, b list.List[int]
	out  io.Writer
}

func New(out io.Writer) *Interpreter { return &Interpreter{out: out} }

// List returns the list registered under name.
func (i *Interpreter) List(name string) (*list.List[int], error) {
	switch name {
	case "a":
		return &i.a, nil
	case "b":
		return &i.b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrRegister, name)
	}
}

// Run executes every line read from r. A failing line is logged and does
// not stop the run. It returns the number of failed lines.
func (i *Interpreter) Run(ctx context.Context, r io.Reader, prompt func()) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for line := 1; ; line++ {
		if prompt != nil {
			prompt()
		}

		if !scanner.Scan() {
			return failed, scanner.Err()
		}

		if err := ctx.Err(); err != nil {
			return failed, err
		}

		if err := i.Exec(scanner.Text()); err != nil {
			log.Error("exec failed", "line", line, "err", err)
			failed++
		}
	}
}

// Exec executes a single command line.
func (i *Interpreter) Exec(text string) error {
	text, _, _ = strings.Cut(text, "#")
	args := strings.Fields(text)
	if len(args) == 0 {
		return nil
	}

	cmd, args := args[0], args[1:]
	log.Debug("exec", "cmd", cmd, "args", args)

	switch cmd {
	case "push":
		return i.push(args)
	case "pop":
		return i.pop(args)
	case "insert":
		return i.insert(args)
	case "erase":
		return i.erase(args)
	case "clear":
		return i.withList(args, 1, func(l *list.List[int]) error {
			l.Clear()
			return nil
		})
	case "set":
		return i.set(args)
	case "copy":
		return i.copy(args)
	case "swap":
		if len(args) != 0 {
			return fmt.Errorf("%w: swap takes none", ErrArguments)
		}
		list.Swap(&i.a, &i.b)
		return nil
	case "cmp":
		return i.cmp(args)
	case "print":
		return i.print(args)
	case "save":
		return i.withList(args, 2, func(l *list.List[int]) error { return Save(args[1], l) })
	case "load":
		return i.load(args)
	case "help":
		_, err := fmt.Fprintln(i.out, Help)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (i *Interpreter) withList(args []string, n int, f func(*list.List[int]) error) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrArguments, n, len(args))
	}

	l, err := i.List(args[0])
	if err != nil {
		return err
	}
	return f(l)
}

func (i *Interpreter) push(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: push needs a list and values", ErrArguments)
	}

	l, err := i.List(args[0])
	if err != nil {
		return err
	}

	values, err := parseInts(args[1:])
	if err != nil {
		return err
	}

	for _, v := range values {
		l.PushFront(v)
	}
	return nil
}

func (i *Interpreter) pop(args []string) error {
	return i.withList(args, 1, func(l *list.List[int]) error {
		if v, ok := l.PopFront(); ok {
			_, err := fmt.Fprintln(i.out, v)
			return err
		}
		return nil
	})
}

func (i *Interpreter) insert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: insert <list> <idx> <value>", ErrArguments)
	}

	l, err := i.List(args[0])
	if err != nil {
		return err
	}

	pos, err := position(l, args[1])
	if err != nil {
		return err
	}

	v, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parse value failed: %w", err)
	}

	l.InsertAfter(pos, v)
	return nil
}

func (i *Interpreter) erase(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: erase <list> <idx>", ErrArguments)
	}

	l, err := i.List(args[0])
	if err != nil {
		return err
	}

	pos, err := position(l, args[1])
	if err != nil {
		return err
	}

	l.EraseAfter(pos)
	return nil
}

func (i *Interpreter) set(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: set needs a list", ErrArguments)
	}

	l, err := i.List(args[0])
	if err != nil {
		return err
	}

	values, err := parseInts(args[1:])
	if err != nil {
		return err
	}

	l.Assign(list.Of(values...))
	return nil
}

func (i *Interpreter) copy(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: copy <dst> <src>", ErrArguments)
	}

	dst, err := i.List(args[0])
	if err != nil {
		return err
	}

	src, err := i.List(args[1])
	if err != nil {
		return err
	}

	dst.Assign(src)
	return nil
}

func (i *Interpreter) cmp(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: cmp takes none", ErrArguments)
	}

	a, b := &i.a, &i.b
	_, err := fmt.Fprintf(i.out, "eq=%t ne=%t lt=%t le=%t gt=%t ge=%t\n",
		list.Equal(a, b), list.NotEqual(a, b),
		list.Less(a, b), list.LessOrEqual(a, b),
		list.Greater(a, b), list.GreaterOrEqual(a, b))
	return err
}

func (i *Interpreter) print(args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{"a", "b"}
	}

	for _, name := range names {
		l, err := i.List(name)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(i.out, "%s: %v size=%d\n", name, l, l.Len()); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) load(args []string) error {
	return i.withList(args, 2, func(l *list.List[int]) error {
		loaded, err := Load(args[1])
		if err != nil {
			return err
		}
		l.Swap(loaded)
		return nil
	})
}

// position resolves idx to the position idx steps after BeforeBegin.
func position(l *list.List[int], idx string) (list.Position[int], error) {
	n, err := strconv.Atoi(idx)
	if err != nil {
		return list.Position[int]{}, fmt.Errorf("parse index failed: %w", err)
	}

	if n < 0 || n > l.Len() {
		return list.Position[int]{}, fmt.Errorf("%w: %d not in [0, %d]", ErrIndex, n, l.Len())
	}

	pos := l.BeforeBegin()
	for range n {
		pos = pos.Next()
	}
	return pos, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parse value failed: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}
