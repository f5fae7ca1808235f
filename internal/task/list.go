package task

import "fmt"

// NotFoundError reports an index outside the list. Index is 0-based; the
// message shows the 1-based number the user typed.
// It satisfies errors.Is(err, ErrTaskNotFound).
type NotFoundError struct {
	Index int
	Size  int
}

func (e *NotFoundError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("task %d does not exist, the list is empty", e.Index+1)
	}
	return fmt.Sprintf("task %d does not exist, pick a number from 1 to %d", e.Index+1, e.Size)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// List is an ordered, index-addressable collection of tasks. Insertion order
// is display order and duplicates are allowed.
type List struct {
	items []*Task
}

func NewList(tasks ...*Task) *List {
	l := &List{}
	for _, t := range tasks {
		l.Add(t)
	}
	return l
}

func (l *List) Add(t *Task) {
	l.items = append(l.items, t)
}

// Get returns the task at i. The task is shared, not copied.
func (l *List) Get(i int) (*Task, error) {
	if i < 0 || i >= len(l.items) {
		return nil, &NotFoundError{Index: i, Size: len(l.items)}
	}
	return l.items[i], nil
}

// Remove deletes the task at i and shifts the tail down by one.
func (l *List) Remove(i int) (*Task, error) {
	t, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return t, nil
}

func (l *List) Len() int {
	return len(l.items)
}

// All returns the tasks in order. The slice is a copy; the tasks are not.
func (l *List) All() []*Task {
	out := make([]*Task, len(l.items))
	copy(out, l.items)
	return out
}
