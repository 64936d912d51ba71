package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Group    bool   // list grouped by pending/done
	JSON     bool   // print results as JSON instead of panels
	DataPath string // seed file; empty uses the built-in seed
	Theme    string
	Color    string // auto, always or never
	IDs      store.IDGenerator

	Out, Err io.Writer
}

func (o *Options) defaults() {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "ls", "get", "add", "done", "rm", "ui":
	default:
		ui.Fail(opt.Err, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Err)
		PrintHelp(opt.Err)
		return 2
	}

	if code := checkArgs(cmd, a, opt.Err); code != 0 {
		return code
	}

	s, err := open(opt)
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}

	switch cmd {
	case "ls":
		return doList(s, opt)
	case "get":
		return doGet(s, a[0], opt)
	case "add":
		return doAdd(s, strings.Join(a, " "), opt)
	case "done":
		return doComplete(s, a[0], opt)
	case "rm":
		return doRemove(s, a[0], opt)
	default:
		if err := tui.Run(s); err != nil {
			ui.Fail(opt.Err, "ui: "+err.Error())
			return 1
		}
		return 0
	}
}

func checkArgs(cmd string, a []string, errOut io.Writer) int {
	switch cmd {
	case "add":
		if len(a) == 0 {
			ui.Fail(errOut, "usage: todo add <title...>")
			return 2
		}
	case "get", "done", "rm":
		if len(a) != 1 {
			ui.Fail(errOut, fmt.Sprintf("usage: todo %s <id>", cmd))
			return 2
		}
	}
	return 0
}

func open(opt Options) (*store.Store, error) {
	todos, err := jsonstore.Load(opt.DataPath)
	if err != nil {
		return nil, err
	}
	var opts []store.Option
	if opt.IDs != nil {
		opts = append(opts, store.WithIDGenerator(opt.IDs))
	}
	return store.New(todos, opts...), nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny in-memory todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls                 List todos
  get <id>           Show one todo
  add <title...>     Add a todo (title can be multiple words)
  done <id>          Mark a todo completed
  rm <id>            Delete a todo
  ui                 Interactive list

Changes live for the current process only; every run starts from the seed.

Flags:
  -data <file>       JSON seed file (env TADA_DATA)
  -theme <name>      classic, neon or mono (env TADA_THEME)
  -ids <strategy>    sequence or random (env TADA_IDS)
  -color <when>      auto, always or never (env TADA_COLOR; NO_COLOR means never)
  -group             group listing by pending/done
  -json              print results as JSON

Examples:
  todo ls
  todo add "Buy milk"
  todo done 2
  todo -json get 1
`)
}

// -------------- subcommand impls ----------------

func doList(s *store.Store, opt Options) int {
	todos := s.List()
	if opt.JSON {
		return writeJSON(opt.Out, todos)
	}
	printPanel(opt.Out, todos, opt.Group)
	return 0
}

func doGet(s *store.Store, raw string, opt Options) int {
	id, err := store.ParseID(raw)
	if err != nil {
		return failed(err, opt)
	}
	t, err := s.Get(id)
	if err != nil {
		return failed(asTyped(err, raw), opt)
	}
	if opt.JSON {
		return writeJSON(opt.Out, t)
	}
	fmt.Fprintln(opt.Out, todoLine(t))
	return 0
}

func doAdd(s *store.Store, title string, opt Options) int {
	title = strings.TrimSpace(title)
	if title == "" {
		ui.Fail(opt.Err, "add: empty title")
		return 2
	}
	t := s.Create(model.Draft{Title: title})
	if opt.JSON {
		return writeJSON(opt.Out, t)
	}
	ui.OK(opt.Out, fmt.Sprintf("added #%d", t.ID))
	printPanel(opt.Out, s.List(), opt.Group)
	return 0
}

func doComplete(s *store.Store, raw string, opt Options) int {
	id, err := store.ParseID(raw)
	if err != nil {
		return failed(err, opt)
	}
	t, err := s.Complete(id)
	if err != nil {
		return failed(asTyped(err, raw), opt)
	}
	if opt.JSON {
		return writeJSON(opt.Out, t)
	}
	ui.OK(opt.Out, fmt.Sprintf("completed #%d", t.ID))
	printPanel(opt.Out, s.List(), opt.Group)
	return 0
}

func doRemove(s *store.Store, raw string, opt Options) int {
	id, err := store.ParseID(raw)
	if err != nil {
		return failed(err, opt)
	}
	msg, err := s.Delete(id)
	if err != nil {
		return failed(asTyped(err, raw), opt)
	}
	if opt.JSON {
		return writeJSON(opt.Out, map[string]string{"message": msg})
	}
	ui.OK(opt.Out, msg)
	printPanel(opt.Out, s.List(), opt.Group)
	return 0
}

// asTyped reports a not-found id the way the caller typed it, not as parsed.
func asTyped(err error, raw string) error {
	if errors.Is(err, store.ErrNotFound) {
		return store.NotFound(raw)
	}
	return err
}

func failed(err error, opt Options) int {
	var nf *store.NotFoundError
	if opt.JSON && errors.As(err, &nf) {
		writeJSON(opt.Err, nf)
		return 1
	}
	ui.Fail(opt.Err, err.Error())
	if errors.Is(err, store.ErrNotFound) {
		ui.Hint(opt.Err, "run `todo ls` to see valid ids")
	}
	return 1
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, "json: "+err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func printPanel(w io.Writer, todos []*model.Todo, group bool) {
	th := ui.Current()
	d, p := stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(th.Title, "Todos"),
		ui.C(th.Success, th.SymDone), d,
		ui.C(th.Pending, th.SymPending), p,
		ui.C(th.Accent, "Total"), len(todos),
	)

	lines := []string{header, ui.C(th.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	ui.Panel(w, lines)
}

func stats(todos []*model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func todoLine(t *model.Todo) string {
	th := ui.Current()
	box, color := th.BoxUnchecked, th.Muted
	if t.Completed {
		box, color = th.BoxChecked, th.Success
	}
	title := t.Title
	if r := []rune(title); len(r) > 80 {
		title = string(r[:77]) + "..."
	}
	return fmt.Sprintf("%s %s %s", ui.C(th.Dim, fmt.Sprintf("#%-3d", t.ID)), ui.C(color, box), title)
}

func flatLines(todos []*model.Todo) []string {
	if len(todos) == 0 {
		return []string{ui.C(ui.Current().Muted, "no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, todoLine(t))
	}
	return out
}

func groupLines(todos []*model.Todo) []string {
	var pend, done []*model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	th := ui.Current()
	section := func(name string, ts []*model.Todo) []string {
		lines := []string{ui.C(th.Accent, name)}
		if len(ts) == 0 {
			return append(lines, ui.C(th.Muted, "(none)"))
		}
		return append(lines, flatLines(ts)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
