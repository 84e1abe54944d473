package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewWithTasks([]Task{
		{ID: 1, Title: "Configurer Vite", Description: "Initialiser le projet", Stage: StageDone},
		{ID: 2, Title: "Créer les composants", Description: "Column, TaskCard, TaskForm", Stage: StageInProgress},
		{ID: 3, Title: "Ajouter les styles", Description: "Utiliser Tailwind CSS", Stage: StageToDo},
	})
	if err != nil {
		t.Fatalf("NewWithTasks() error = %v", err)
	}
	return s
}

func ids(tasks []Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantOK      bool
	}{
		{"plain title", "Write tests", "", true},
		{"title with description", "Ship", "release notes", true},
		{"padded title", "  padded  ", "x", true},
		{"empty title", "", "desc", false},
		{"spaces only", "   ", "desc", false},
		{"tabs and newlines", "\t\n ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := s.Len()
			got, ok := s.Add(tt.title, tt.description)
			if ok != tt.wantOK {
				t.Fatalf("Add(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if !tt.wantOK {
				if s.Len() != before {
					t.Errorf("Len() = %d after rejected Add, want %d", s.Len(), before)
				}
				if got != (Task{}) {
					t.Errorf("Add(%q) returned %+v, want zero Task", tt.title, got)
				}
				return
			}
			if s.Len() != before+1 {
				t.Errorf("Len() = %d, want %d", s.Len(), before+1)
			}
			if got.Stage != StageToDo {
				t.Errorf("Stage = %s, want %s", got.Stage, StageToDo)
			}
			if got.Title != tt.title || got.Description != tt.description {
				t.Errorf("Add stored %+v, want title %q description %q", got, tt.title, tt.description)
			}
			stored, ok := s.Get(got.ID)
			if !ok || stored != got {
				t.Errorf("Get(%d) = %+v, %v; want %+v, true", got.ID, stored, ok, got)
			}
		})
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s := seededStore(t)
	seen := map[int64]bool{1: true, 2: true, 3: true}
	for i := 0; i < 100; i++ {
		task, ok := s.Add("task", "")
		if !ok {
			t.Fatalf("Add() ok = false on iteration %d", i)
		}
		if seen[task.ID] {
			t.Fatalf("Add() reused id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestIDsNeverReusedAfterDelete(t *testing.T) {
	s := New()
	first, _ := s.Add("first", "")
	s.Delete(first.ID)
	second, _ := s.Add("second", "")
	if second.ID == first.ID {
		t.Fatalf("id %d reused after delete", first.ID)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := seededStore(t)

	if !s.Delete(2) {
		t.Fatal("first Delete(2) = false, want true")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Delete(2) {
		t.Fatal("second Delete(2) = true, want false")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d after repeated delete, want 2", s.Len())
	}
	if diff := cmp.Diff([]int64{1, 3}, ids(s.Tasks())); diff != "" {
		t.Errorf("remaining ids mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := seededStore(t)
	if s.Delete(999) {
		t.Error("Delete(999) = true, want false")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestAdvanceCycleReturnsToStart(t *testing.T) {
	for _, start := range Stages() {
		t.Run(start.String(), func(t *testing.T) {
			s, err := NewWithTasks([]Task{{ID: 7, Title: "cycle", Stage: start}})
			if err != nil {
				t.Fatalf("NewWithTasks() error = %v", err)
			}
			for i := 0; i < 3; i++ {
				cur, _ := s.Get(7)
				if !s.Advance(7, cur.Stage.Next()) {
					t.Fatalf("Advance step %d = false", i)
				}
			}
			got, _ := s.Get(7)
			if got.Stage != start {
				t.Errorf("Stage after three advances = %s, want %s", got.Stage, start)
			}
		})
	}
}

func TestAdvanceOnlyChangesStage(t *testing.T) {
	s := seededStore(t)
	before, _ := s.Get(1)
	if !s.Advance(1, StageToDo) {
		t.Fatal("Advance(1, todo) = false")
	}
	after, _ := s.Get(1)
	want := before
	want.Stage = StageToDo
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceAcceptsAnyValidTarget(t *testing.T) {
	s := seededStore(t)
	// Done -> In Progress skips the cyclic successor.
	if !s.Advance(1, StageInProgress) {
		t.Fatal("Advance(1, in_progress) = false")
	}
	got, _ := s.Get(1)
	if got.Stage != StageInProgress {
		t.Errorf("Stage = %s, want %s", got.Stage, StageInProgress)
	}
}

func TestAdvanceNoOps(t *testing.T) {
	s := seededStore(t)
	want := s.Tasks()

	if s.Advance(42, StageDone) {
		t.Error("Advance(unknown) = true, want false")
	}
	if s.Advance(3, Stage("archived")) {
		t.Error("Advance(invalid stage) = true, want false")
	}
	if s.Advance(3, "") {
		t.Error("Advance(empty stage) = true, want false")
	}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("store changed (-want +got):\n%s", diff)
	}
}

func TestTasksByStagePartitions(t *testing.T) {
	s := seededStore(t)
	s.Add("a", "")
	s.Add("b", "")
	s.Advance(4, StageDone)

	seen := make(map[int64]int)
	total := 0
	for _, st := range Stages() {
		for _, task := range s.TasksByStage(st) {
			if task.Stage != st {
				t.Errorf("TasksByStage(%s) returned task %d in %s", st, task.ID, task.Stage)
			}
			seen[task.ID]++
			total++
		}
	}
	if total != s.Len() {
		t.Errorf("union size = %d, want %d", total, s.Len())
	}
	for _, task := range s.Tasks() {
		if seen[task.ID] != 1 {
			t.Errorf("task %d appears %d times, want 1", task.ID, seen[task.ID])
		}
	}
}

func TestTasksByStageReturnsCopy(t *testing.T) {
	s := seededStore(t)
	view := s.TasksByStage(StageToDo)
	view[0].Title = "mutated"
	got, _ := s.Get(3)
	if got.Title != "Ajouter les styles" {
		t.Errorf("store title = %q, mutation leaked through view", got.Title)
	}
}

func TestSeedScenario(t *testing.T) {
	s := seededStore(t)

	if diff := cmp.Diff([]int64{3}, ids(s.TasksByStage(StageToDo))); diff != "" {
		t.Fatalf("TasksByStage(todo) mismatch (-want +got):\n%s", diff)
	}

	s.Advance(3, StageInProgress)
	if diff := cmp.Diff([]int64{2, 3}, ids(s.TasksByStage(StageInProgress))); diff != "" {
		t.Fatalf("TasksByStage(in_progress) mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedScenarioAdd(t *testing.T) {
	s := seededStore(t)

	if _, ok := s.Add("", "desc"); ok {
		t.Fatal(`Add("", "desc") ok = true, want false`)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	task, ok := s.Add("Write tests", "")
	if !ok {
		t.Fatal(`Add("Write tests", "") ok = false`)
	}
	if task.ID <= 3 {
		t.Errorf("new id = %d, want > 3", task.ID)
	}
	if task.Stage != StageToDo {
		t.Errorf("Stage = %s, want %s", task.Stage, StageToDo)
	}
	if diff := cmp.Diff([]int64{3, task.ID}, ids(s.TasksByStage(StageToDo))); diff != "" {
		t.Errorf("TasksByStage(todo) mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	s := New()
	want := map[Stage]int{StageToDo: 0, StageInProgress: 0, StageDone: 0}
	if diff := cmp.Diff(want, s.Counts()); diff != "" {
		t.Errorf("empty Counts mismatch (-want +got):\n%s", diff)
	}

	s = seededStore(t)
	s.Add("x", "")
	want = map[Stage]int{StageToDo: 2, StageInProgress: 1, StageDone: 1}
	if diff := cmp.Diff(want, s.Counts()); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithTasksRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
	}{
		{"zero id", []Task{{ID: 0, Title: "t", Stage: StageToDo}}},
		{"negative id", []Task{{ID: -1, Title: "t", Stage: StageToDo}}},
		{"duplicate id", []Task{
			{ID: 1, Title: "a", Stage: StageToDo},
			{ID: 1, Title: "b", Stage: StageDone},
		}},
		{"blank title", []Task{{ID: 1, Title: "  ", Stage: StageToDo}}},
		{"bad stage", []Task{{ID: 1, Title: "t", Stage: "blocked"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWithTasks(tt.tasks); err == nil {
				t.Error("NewWithTasks() error = nil, want error")
			}
		})
	}
}

func TestNewWithTasksContinuesAfterMaxID(t *testing.T) {
	s, err := NewWithTasks([]Task{
		{ID: 10, Title: "a", Stage: StageToDo},
		{ID: 4, Title: "b", Stage: StageDone},
	})
	if err != nil {
		t.Fatalf("NewWithTasks() error = %v", err)
	}
	task, _ := s.Add("c", "")
	if task.ID != 11 {
		t.Errorf("new id = %d, want 11", task.ID)
	}
}
