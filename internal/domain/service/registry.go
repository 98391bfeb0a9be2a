package service

import (
	"context"
	"sync"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

// taskRegistry tracks the cancel handle of every running reminder task so an
// explicit cancellation can stop it early. It is never a source of truth:
// a task whose handle is lost still exits once its mission is gone.
type taskRegistry struct {
	mu    sync.Mutex
	seq   uint64
	tasks map[entity.MissionKey]taskHandle
}

type taskHandle struct {
	id     uint64
	cancel context.CancelFunc
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{tasks: make(map[entity.MissionKey]taskHandle)}
}

// add stores cancel under key, cancelling a task previously registered there.
func (r *taskRegistry) add(key entity.MissionKey, cancel context.CancelFunc) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.tasks[key]; ok {
		prev.cancel()
	}

	r.seq++
	r.tasks[key] = taskHandle{id: r.seq, cancel: cancel}
	return r.seq
}

// cancel stops the task under key; false when nothing was running.
func (r *taskRegistry) cancel(key entity.MissionKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.tasks[key]
	if !ok {
		return false
	}

	handle.cancel()
	delete(r.tasks, key)
	return true
}

// done drops the handle of a finished task unless a newer task replaced it.
func (r *taskRegistry) done(key entity.MissionKey, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, ok := r.tasks[key]; ok && handle.id == id {
		delete(r.tasks, key)
	}
}

// reset cancels everything and starts from an empty map.
func (r *taskRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, handle := range r.tasks {
		handle.cancel()
	}
	r.tasks = make(map[entity.MissionKey]taskHandle)
}

func (r *taskRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tasks)
}

func (r *taskRegistry) has(key entity.MissionKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[key]
	return ok
}
