// Package board holds the in-memory task board.
//
// A Store owns an ordered collection of tasks. Each task sits in exactly one
// of three stages:
//
//   - "todo": To Do (initial stage of every new task)
//   - "in_progress": In Progress
//   - "done": Done
//
// The store is the only mutation surface. Add, Delete and Advance never
// return errors: a blank title or an unknown id is a silent no-op, reported
// only through the boolean result. Advance accepts any valid target stage;
// callers that want the cyclic To Do → In Progress → Done → To Do flow
// compute the target with Stage.Next.
//
// A Store is not safe for concurrent use. It is meant to be owned by a
// single caller, such as the Bubble Tea update loop.
package board
