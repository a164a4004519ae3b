package engine

import "sync"

// Registry maps tasks to engine instances. One engine may serve several
// tasks (a single remote inference server typically does).
type Registry struct {
	engines map[Task]Engine
	mu      sync.RWMutex
}

// NewRegistry creates a new engine registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[Task]Engine),
	}
}

// Register assigns an engine to a task, replacing any previous assignment.
func (r *Registry) Register(task Task, e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.engines[task] = e
}

// Get retrieves the engine assigned to a task.
func (r *Registry) Get(task Task) (Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[task]
	return e, ok
}

// Tasks returns the tasks that currently have an engine assigned.
func (r *Registry) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]Task, 0, len(r.engines))
	for task := range r.engines {
		tasks = append(tasks, task)
	}

	return tasks
}

// Close closes every registered engine exactly once, even when an engine
// serves several tasks.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := make(map[Engine]bool)
	for _, e := range r.engines {
		if closed[e] {
			continue
		}
		closed[e] = true

		if err := e.Close(); err != nil {
			return err
		}
	}

	return nil
}
