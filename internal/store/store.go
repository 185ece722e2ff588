package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/taskpad/internal/model"
)

// Actions form a closed set; Apply is the only way the list changes.
// Callers trim and validate text before constructing Add/UpdateText;
// the reducer itself never rejects input.

type Action interface{ isAction() }

// ReplaceAll discards the current list. Used once, at hydration.
type ReplaceAll struct {
	Tasks []model.Task
}

// Add appends a new task with a fresh id, completed=false, createdAt=now.
type Add struct {
	Text string
}

// Toggle flips completed on the matching task.
type Toggle struct {
	ID string
}

// Delete removes the matching task.
type Delete struct {
	ID string
}

// UpdateText replaces the matching task's text; other fields untouched.
type UpdateText struct {
	ID   string
	Text string
}

func (ReplaceAll) isAction() {}
func (Add) isAction()        {}
func (Toggle) isAction()     {}
func (Delete) isAction()     {}
func (UpdateText) isAction() {}

// Apply computes the next list state. Pure: the input slice is never
// mutated and the result is always a fresh copy. Unmatched ids are a
// silent no-op, so retries are safe.
func Apply(list []model.Task, a Action) []model.Task {
	switch a := a.(type) {
	case ReplaceAll:
		return append([]model.Task(nil), a.Tasks...)

	case Add:
		out := make([]model.Task, 0, len(list)+1)
		out = append(out, list...)
		out = append(out, model.Task{
			ID:        uuid.NewString(),
			Text:      a.Text,
			Completed: false,
			CreatedAt: time.Now().UTC(),
		})
		return out

	case Toggle:
		out := append([]model.Task(nil), list...)
		for i := range out {
			if out[i].ID == a.ID {
				out[i].Completed = !out[i].Completed
				break
			}
		}
		return out

	case Delete:
		out := make([]model.Task, 0, len(list))
		for _, t := range list {
			if t.ID == a.ID {
				continue
			}
			out = append(out, t)
		}
		return out

	case UpdateText:
		out := append([]model.Task(nil), list...)
		for i := range out {
			if out[i].ID == a.ID {
				out[i].Text = a.Text
				break
			}
		}
		return out
	}
	return append([]model.Task(nil), list...)
}

// Stats counts completed and pending tasks; the surfaces use it for
// their live headers.
func Stats(list []model.Task) (done, pending int) {
	for _, t := range list {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
