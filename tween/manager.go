package tween

type entry struct {
	id   uint64
	task Task
}

// Manager owns every running task, keyed by target
// Not safe for concurrent use; the frame loop and event handlers share one goroutine
type Manager struct {
	tasks map[Key]entry
	order []Key // start order, for deterministic Update
	next  uint64
}

// Handle cancels the task it was returned for, and nothing started later on the same key
type Handle struct {
	m   *Manager
	key Key
	id  uint64
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{tasks: make(map[Key]entry)}
}

// Start runs task on key, cancelling any task already running there
func (m *Manager) Start(key Key, task Task) Handle {
	m.Cancel(key)
	m.next++
	m.tasks[key] = entry{id: m.next, task: task}
	m.order = append(m.order, key)
	return Handle{m: m, key: key, id: m.next}
}

// Cancel stops the task on key without running its completion
func (m *Manager) Cancel(key Key) bool {
	if _, ok := m.tasks[key]; !ok {
		return false
	}
	delete(m.tasks, key)
	m.removeOrder(key)
	return true
}

// CancelAll stops every task, returns how many were running
func (m *Manager) CancelAll() int {
	n := len(m.tasks)
	clear(m.tasks)
	m.order = m.order[:0]
	return n
}

// Active reports whether key has a running task
func (m *Manager) Active(key Key) bool {
	_, ok := m.tasks[key]
	return ok
}

// Len returns the number of running tasks
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Update advances every task by dt seconds
// Completion callbacks run after the task is removed, so they may start new tasks on the same key
func (m *Manager) Update(dt float32) {
	if len(m.tasks) == 0 {
		return
	}
	keys := append([]Key(nil), m.order...)
	for _, key := range keys {
		e, ok := m.tasks[key]
		if !ok {
			continue
		}
		if !e.task.Step(dt) {
			continue
		}
		// A callback from an earlier task this frame may have replaced the entry
		if cur, ok := m.tasks[key]; !ok || cur.id != e.id {
			continue
		}
		delete(m.tasks, key)
		m.removeOrder(key)
		e.task.Finish()
	}
}

func (m *Manager) removeOrder(key Key) {
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// Cancel stops the task if it is still the one running on its key
func (h Handle) Cancel() bool {
	if h.m == nil || !h.Active() {
		return false
	}
	return h.m.Cancel(h.key)
}

// Active reports whether the handle's task is still running
func (h Handle) Active() bool {
	if h.m == nil {
		return false
	}
	e, ok := h.m.tasks[h.key]
	return ok && e.id == h.id
}
