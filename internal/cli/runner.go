package cli

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/taskpad/internal/config"
	"github.com/idilsaglam/taskpad/internal/export"
	"github.com/idilsaglam/taskpad/internal/model"
	"github.com/idilsaglam/taskpad/internal/store"
	"github.com/idilsaglam/taskpad/internal/store/jsonstore"
	"github.com/idilsaglam/taskpad/internal/tui"
	"github.com/idilsaglam/taskpad/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // plain listing grouped by pending/done
	Plain bool // print the list instead of opening the TUI
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.SetTheme(cfg.Theme)
	st := jsonstore.New(cfg.DataDir, slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(st, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: taskpad add <text...>")
			return 2
		}
		return doAdd(st, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: taskpad done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(st, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: taskpad rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(st, n)

	case "edit":
		if len(a) < 2 {
			ui.Fail("usage: taskpad edit <index> <text...>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("edit: not a number: " + a[0])
			return 2
		}
		return doEdit(st, n, strings.Join(a[1:], " "))

	case "export":
		return doExport(st, a)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`taskpad - a tiny task list

Usage:
  taskpad <subcommand> [args]

Subcommands:
  add <text...>            Add a new task (text can be multiple words)
  ls                       Open the interactive list (use -plain to print)
  done <index>             Toggle completion for task at 1-based index
  rm <index>               Remove task at 1-based index
  edit <index> <text...>   Replace the text of task at 1-based index
  export [-format f] [-o path]   Export the list (json, csv or pdf)

Examples:
  taskpad add "Buy milk"
  taskpad ls
  taskpad done 2
  taskpad edit 2 "Buy oat milk"
  taskpad export -format pdf -o tasks.pdf
`)
}

// -------------- subcommand impls ----------------

func doList(st *jsonstore.Store, opt Options) int {
	loaded, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	// One-time hydration dispatch; everything after this flows through
	// the same reducer.
	tasks := store.Apply(nil, store.ReplaceAll{Tasks: loaded})

	if !opt.Plain {
		// Interactive TUI; it dispatches and saves on every committed change.
		if err := tui.Run(st, tasks); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}

	d, p := store.Stats(tasks)
	header := fmt.Sprintf("%s  %s %d  %s %d left  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), d,
		ui.PendingStyle.Render("•"), p,
		ui.AccentStyle.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.MutedStyle.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.MutedStyle.Render("Tip: add with `taskpad add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(st *jsonstore.Store, text string) int {
	text, err := validateText(text)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	tasks, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	tasks = store.Apply(tasks, store.Add{Text: text})
	if err := st.Save(tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("added")
	return 0
}

func doToggle(st *jsonstore.Store, userIndex int) int {
	tasks, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	id, code := resolveIndex(tasks, userIndex)
	if code != 0 {
		return code
	}
	tasks = store.Apply(tasks, store.Toggle{ID: id})
	if err := st.Save(tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("toggled")
	return 0
}

func doRemove(st *jsonstore.Store, userIndex int) int {
	tasks, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	id, code := resolveIndex(tasks, userIndex)
	if code != 0 {
		return code
	}
	tasks = store.Apply(tasks, store.Delete{ID: id})
	if err := st.Save(tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed")
	return 0
}

func doEdit(st *jsonstore.Store, userIndex int, text string) int {
	text, err := validateText(text)
	if err != nil {
		ui.Fail("edit: " + err.Error())
		return 2
	}
	tasks, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	id, code := resolveIndex(tasks, userIndex)
	if code != 0 {
		return code
	}
	tasks = store.Apply(tasks, store.UpdateText{ID: id, Text: text})
	if err := st.Save(tasks); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("edited")
	return 0
}

func doExport(st *jsonstore.Store, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "json", "output format: json, csv or pdf")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	tasks, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	b, err := export.Export(tasks, *format)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 2
	}
	if *out == "" {
		os.Stdout.Write(b)
		return 0
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK("exported to " + *out)
	return 0
}

// resolveIndex maps a 1-based display index to the task id at that
// position. The id, not the index, is what gets dispatched.
func resolveIndex(tasks []model.Task, userIndex int) (string, int) {
	if userIndex < 1 || userIndex > len(tasks) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(tasks), userIndex))
		fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Hint: run `taskpad -plain ls` to see valid indexes"))
		return "", 2
	}
	return tasks[userIndex-1].ID, 0
}

// -------------- rendering helpers --------------

func flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.MutedStyle.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.BoxUnchecked
		style := ui.MutedStyle
		if t.Completed {
			box, style = ui.BoxChecked, ui.SuccessStyle
		}
		text := t.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.MutedStyle.Render(idx), style.Render(box), text))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, ui.AccentStyle.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.AccentStyle.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
