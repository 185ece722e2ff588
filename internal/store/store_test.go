package store

import (
	"testing"
	"time"

	"github.com/idilsaglam/taskpad/internal/model"
)

func task(id, text string, completed bool) model.Task {
	return model.Task{
		ID:        id,
		Text:      text,
		Completed: completed,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func tasksEqual(a, b []model.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID ||
			a[i].Text != b[i].Text ||
			a[i].Completed != b[i].Completed ||
			!a[i].CreatedAt.Equal(b[i].CreatedAt) {
			return false
		}
	}
	return true
}

func TestApply_Add_AppendsPendingTask(t *testing.T) {
	in := []model.Task{task("1", "Buy milk", false)}
	out := Apply(in, Add{Text: "Walk dog"})

	if len(out) != len(in)+1 {
		t.Fatalf("expected length %d, got %d", len(in)+1, len(out))
	}
	added := out[len(out)-1]
	if added.Text != "Walk dog" {
		t.Fatalf("expected appended text %q, got %q", "Walk dog", added.Text)
	}
	if added.Completed {
		t.Fatalf("new task must start pending")
	}
	if added.ID == "" {
		t.Fatalf("new task must get an id")
	}
	if added.CreatedAt.IsZero() {
		t.Fatalf("new task must get a creation time")
	}
	if added.CreatedAt.Location() != time.UTC {
		t.Fatalf("creation time must be UTC")
	}
}

func TestApply_Add_GeneratesUniqueIDs(t *testing.T) {
	var list []model.Task
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		list = Apply(list, Add{Text: "item"})
		id := list[len(list)-1].ID
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestApply_Toggle_FlipsOnlyMatch(t *testing.T) {
	in := []model.Task{
		task("1", "Buy milk", false),
		task("2", "Walk dog", false),
	}
	out := Apply(in, Toggle{ID: "1"})

	if !out[0].Completed {
		t.Fatalf("expected task 1 completed")
	}
	if out[1].Completed {
		t.Fatalf("task 2 must be untouched")
	}
	if out[0].Text != "Buy milk" || out[0].ID != "1" {
		t.Fatalf("toggle must not change other fields")
	}

	// flipping back restores the original value
	back := Apply(out, Toggle{ID: "1"})
	if !tasksEqual(back, in) {
		t.Fatalf("double toggle must restore original list")
	}
}

func TestApply_Toggle_UnknownIDIsNoop(t *testing.T) {
	in := []model.Task{task("1", "Buy milk", false)}
	out := Apply(in, Toggle{ID: "nope"})
	if !tasksEqual(out, in) {
		t.Fatalf("unknown id must leave list value-equal")
	}
}

func TestApply_Delete_RemovesExactlyOne(t *testing.T) {
	in := []model.Task{
		task("1", "a", false),
		task("2", "b", true),
		task("3", "c", false),
	}
	out := Apply(in, Delete{ID: "2"})
	want := []model.Task{task("1", "a", false), task("3", "c", false)}
	if !tasksEqual(out, want) {
		t.Fatalf("delete must remove the match and keep order: got %+v", out)
	}
}

func TestApply_Delete_Idempotent(t *testing.T) {
	in := []model.Task{task("1", "a", false), task("2", "b", false)}
	once := Apply(in, Delete{ID: "1"})
	twice := Apply(once, Delete{ID: "1"})
	if !tasksEqual(once, twice) {
		t.Fatalf("deleting the same id twice must equal deleting it once")
	}
}

func TestApply_UpdateText_ChangesTextOnly(t *testing.T) {
	in := []model.Task{task("1", "Old text", true)}
	out := Apply(in, UpdateText{ID: "1", Text: "New text"})

	if out[0].Text != "New text" {
		t.Fatalf("expected updated text, got %q", out[0].Text)
	}
	if out[0].ID != in[0].ID || out[0].Completed != in[0].Completed || !out[0].CreatedAt.Equal(in[0].CreatedAt) {
		t.Fatalf("update-text must leave id, completed and createdAt unchanged")
	}
}

func TestApply_UpdateText_UnknownIDIsNoop(t *testing.T) {
	in := []model.Task{task("1", "a", false)}
	out := Apply(in, UpdateText{ID: "nope", Text: "b"})
	if !tasksEqual(out, in) {
		t.Fatalf("unknown id must leave list value-equal")
	}
}

func TestApply_ReplaceAll_DiscardsCurrentList(t *testing.T) {
	in := []model.Task{task("1", "old", false)}
	hydrated := []model.Task{task("9", "restored", true)}
	out := Apply(in, ReplaceAll{Tasks: hydrated})
	if !tasksEqual(out, hydrated) {
		t.Fatalf("replace-all must return the payload as-is")
	}
}

func TestApply_NeverMutatesInput(t *testing.T) {
	in := []model.Task{
		task("1", "a", false),
		task("2", "b", true),
	}
	snapshot := append([]model.Task(nil), in...)

	actions := []Action{
		ReplaceAll{Tasks: nil},
		Add{Text: "c"},
		Toggle{ID: "1"},
		Delete{ID: "2"},
		UpdateText{ID: "1", Text: "z"},
	}
	for _, a := range actions {
		_ = Apply(in, a)
		if !tasksEqual(in, snapshot) {
			t.Fatalf("action %T mutated its input", a)
		}
	}
}

func TestApply_ScenarioAddAddToggle(t *testing.T) {
	var list []model.Task
	list = Apply(list, Add{Text: "Buy milk"})
	list = Apply(list, Add{Text: "Walk dog"})
	list = Apply(list, Toggle{ID: list[0].ID})

	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if list[0].Text != "Buy milk" || list[1].Text != "Walk dog" {
		t.Fatalf("insertion order must be preserved: %+v", list)
	}
	if !list[0].Completed {
		t.Fatalf("first task must be completed")
	}
	if list[1].Completed {
		t.Fatalf("second task must stay pending")
	}
}

func TestStats(t *testing.T) {
	cases := []struct {
		name          string
		tasks         []model.Task
		done, pending int
	}{
		{"empty", nil, 0, 0},
		{"all pending", []model.Task{task("1", "a", false), task("2", "b", false)}, 0, 2},
		{"mixed", []model.Task{task("1", "a", true), task("2", "b", false)}, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, p := Stats(tc.tasks)
			if d != tc.done || p != tc.pending {
				t.Fatalf("got done=%d pending=%d, want done=%d pending=%d", d, p, tc.done, tc.pending)
			}
		})
	}
}
