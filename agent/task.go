package agent

import (
	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// Task identifies one of the façade's operations. The set is closed;
// requests naming anything else fail with ErrUnknownTask.
type Task string

// String returns the task identifier.
func (t Task) String() string { return string(t) }

// Supported tasks.
const (
	TaskDraft         Task = "draft"
	TaskSummarize     Task = "summarize"
	TaskGenerateImage Task = "generate_image"
	TaskQueryCode     Task = "query_code"
	TaskListFiles     Task = "list_files"
)

// taskRoutes maps each task to the backend variant that serves it.
// Routing is by tag, never by model-name lookup.
var taskRoutes = map[Task]ai.BackendKind{
	TaskDraft:         ai.BackendText,
	TaskSummarize:     ai.BackendContent,
	TaskGenerateImage: ai.BackendImage,
	TaskQueryCode:     ai.BackendCode,
	TaskListFiles:     ai.BackendDrive,
}

// RouteOf returns the backend kind serving a task, and whether the task
// is part of the closed set.
func RouteOf(task Task) (ai.BackendKind, bool) {
	kind, ok := taskRoutes[task]
	return kind, ok
}

// Tasks returns the closed task set. Order is not guaranteed.
func Tasks() []Task {
	tasks := make([]Task, 0, len(taskRoutes))
	for t := range taskRoutes {
		tasks = append(tasks, t)
	}
	return tasks
}

// Request carries the parameters of one task invocation. Only the fields
// the named task reads are consulted; the rest are ignored.
type Request struct {
	// Task selects the operation.
	Task Task

	// Prompt is the text prompt for draft and generate_image.
	Prompt string

	// Document is the text to summarize.
	Document string

	// Code and Question are the inputs for query_code.
	Code     string
	Question string

	// Query and PageSize drive list_files. An empty query lists all
	// files up to the page size; zero PageSize applies the default.
	Query    string
	PageSize int

	// Options are the generation parameters for the generative tasks.
	Options []ai.Option
}

// Result is the outcome of one task invocation. Text tasks populate Text;
// generate_image populates ImageData and ImageMIMEType; list_files
// populates Files.
type Result struct {
	Text          string
	ImageData     []byte
	ImageMIMEType string
	Files         []ai.FileRecord
	Model         string
	Usage         ai.Usage
}
