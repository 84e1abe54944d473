package board

import (
	"fmt"
	"strings"
)

// Task is a single card on the board.
type Task struct {
	ID          int64
	Title       string
	Description string
	Stage       Stage
}

// Store owns the tasks of one board, in insertion order.
type Store struct {
	tasks  []Task
	nextID int64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewWithTasks returns a store holding tasks in the given order. Ids must be
// positive and unique, titles non-blank and stages valid. New ids continue
// after the largest seeded id.
func NewWithTasks(tasks []Task) (*Store, error) {
	s := &Store{tasks: make([]Task, 0, len(tasks))}
	seen := make(map[int64]bool, len(tasks))
	for i, t := range tasks {
		if t.ID <= 0 {
			return nil, fmt.Errorf("task %d: id must be positive, got %d", i, t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task %d: duplicate id %d", i, t.ID)
		}
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("task %d: title is blank", i)
		}
		if !t.Stage.Valid() {
			return nil, fmt.Errorf("task %d: invalid stage %q", i, t.Stage)
		}
		seen[t.ID] = true
		if t.ID > s.nextID {
			s.nextID = t.ID
		}
		s.tasks = append(s.tasks, t)
	}
	return s, nil
}

// Add appends a new To Do task. A title that is blank after trimming leaves
// the store untouched and returns false.
func (s *Store) Add(title, description string) (Task, bool) {
	if strings.TrimSpace(title) == "" {
		return Task{}, false
	}
	s.nextID++
	task := Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Stage:       StageToDo,
	}
	s.tasks = append(s.tasks, task)
	return task, true
}

// Delete removes the task with the given id. It returns false when no such
// task exists.
func (s *Store) Delete(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Advance moves the task with the given id to target. Only the stage
// changes. Unknown ids and invalid targets are ignored and return false.
func (s *Store) Advance(id int64, target Stage) bool {
	if !target.Valid() {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Stage = target
	return true
}

// TasksByStage returns the tasks in stage, in insertion order.
func (s *Store) TasksByStage(stage Stage) []Task {
	out := make([]Task, 0)
	for _, t := range s.tasks {
		if t.Stage == stage {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns every task in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Counts returns the number of tasks per stage. Every stage is present.
func (s *Store) Counts() map[Stage]int {
	counts := make(map[Stage]int, len(stageOrder))
	for _, st := range stageOrder {
		counts[st] = 0
	}
	for _, t := range s.tasks {
		counts[t.Stage]++
	}
	return counts
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
