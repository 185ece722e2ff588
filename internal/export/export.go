package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/taskpad/internal/model"
)

// Export renders a read-only snapshot of the list in the requested
// format. It never touches the storage entry.
func Export(tasks []model.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")

	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "text", "completed", "createdAt"})
		for _, t := range tasks {
			_ = w.Write([]string{t.ID, t.Text, fmt.Sprint(t.Completed), t.CreatedAt.Format(time.RFC3339Nano)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			line := fmt.Sprintf("%s %s  (added %s)", box, t.Text, t.CreatedAt.Format("2006-01-02"))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	}
	return nil, fmt.Errorf("unknown format %s", format)
}
