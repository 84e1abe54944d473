package board

import (
	"fmt"
	"strings"
)

// Stage is one of the three board columns.
type Stage string

const (
	StageToDo       Stage = "todo"
	StageInProgress Stage = "in_progress"
	StageDone       Stage = "done"
)

// stageOrder is the cyclic column order.
var stageOrder = [...]Stage{StageToDo, StageInProgress, StageDone}

// Stages returns all stages in column order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])
	return out
}

// Valid reports whether s is one of the three stages.
func (s Stage) Valid() bool {
	return s.index() >= 0
}

// Next returns the stage after s, wrapping from Done back to To Do.
// An invalid stage yields To Do.
func (s Stage) Next() Stage {
	i := s.index()
	if i < 0 {
		return StageToDo
	}
	return stageOrder[(i+1)%len(stageOrder)]
}

// Label returns the column title shown to users.
func (s Stage) Label() string {
	switch s {
	case StageToDo:
		return "To Do"
	case StageInProgress:
		return "In Progress"
	case StageDone:
		return "Done"
	default:
		return string(s)
	}
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStage converts a key ("in_progress") or a label ("In Progress") to a
// Stage. Matching ignores case, surrounding whitespace, and treats '-' and
// ' ' like '_'.
func ParseStage(s string) (Stage, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch norm {
	case "todo", "to_do":
		return StageToDo, nil
	case "in_progress", "inprogress", "doing":
		return StageInProgress, nil
	case "done":
		return StageDone, nil
	}
	return "", fmt.Errorf("invalid stage %q, must be one of: todo, in_progress, done", s)
}
