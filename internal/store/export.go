package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amirbrooks/tasker-shell/internal/task"
)

// ExportedTask is the JSON view of a task.
type ExportedTask struct {
	Number      int    `json:"number"`
	Type        string `json:"type"`
	Done        bool   `json:"done"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	By          string `json:"by,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Display     string `json:"display"`
}

func ExportView(tasks []*task.Task) []ExportedTask {
	out := make([]ExportedTask, 0, len(tasks))
	for i, t := range tasks {
		e := ExportedTask{
			Number:      i + 1,
			Type:        t.Kind.String(),
			Done:        t.Done,
			Description: t.Description,
			Tag:         t.Tag,
			Display:     t.String(),
		}
		switch t.Kind {
		case task.KindDeadline:
			e.By = t.By.Raw
		case task.KindEvent:
			e.From, e.To = t.From.Raw, t.To.Raw
		}
		out = append(out, e)
	}
	return out
}

func MarshalJSON(tasks []*task.Task) ([]byte, error) {
	b, err := json.MarshalIndent(ExportView(tasks), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func MarshalNDJSON(tasks []*task.Task) ([]byte, error) {
	var b strings.Builder
	for _, item := range ExportView(tasks) {
		line, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// WriteExport writes data to <root>/exports/<base>-<timestamp>.<ext> and
// returns the path. An existing file is never overwritten.
func (w *Workspace) WriteExport(base, ext string, data []byte) (string, error) {
	dir := w.ExportDir()
	if strings.TrimSpace(dir) == "" {
		return "", errors.New("export directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	ts := timeNow().Format("20060102-150405")
	name := fmt.Sprintf("%s-%s.%s", base, ts, ext)
	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			break
		}
		name = fmt.Sprintf("%s-%s-%d.%s", base, ts, i, ext)
		path = filepath.Join(dir, name)
	}
	if err := atomicWriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: export: %w", ErrPersistence, err)
	}
	return path, nil
}
