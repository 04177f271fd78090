package table

// latchEntry is the state of one mounted row.
type latchEntry struct {
	renderedOnce bool
	lastExpanded bool // expanded value seen at the previous commit
}

// LatchStore owns the rendered-once flag of every mounted row, keyed by row
// key. A row is mounted when it first appears in a render pass and unmounted
// when it leaves; its flag lives exactly as long as the mount.
//
// LatchStore is not safe for concurrent use. All access happens on the
// goroutine driving render passes.
type LatchStore struct {
	rows map[Key]*latchEntry
}

// NewLatchStore creates an empty store.
func NewLatchStore() *LatchStore {
	return &LatchStore{rows: make(map[Key]*latchEntry)}
}

// Mount registers key with an unset flag. Mounting a mounted row is a no-op.
// It reports whether the row was newly mounted.
func (s *LatchStore) Mount(key Key) bool {
	if _, ok := s.rows[key]; ok {
		return false
	}
	s.rows[key] = &latchEntry{}
	return true
}

// Unmount drops the state of key.
func (s *LatchStore) Unmount(key Key) {
	delete(s.rows, key)
}

// Mounted reports whether key is mounted.
func (s *LatchStore) Mounted(key Key) bool {
	_, ok := s.rows[key]
	return ok
}

// RenderedOnce reports whether the row has been expanded at least once since
// it was mounted.
func (s *LatchStore) RenderedOnce(key Key) bool {
	if s == nil {
		return false
	}
	e, ok := s.rows[key]
	return ok && e.renderedOnce
}

// Commit is the post-commit hook for one row. It runs after the output of a
// render pass is in place and compares expanded with the value seen at the
// previous commit. A false to true transition sets the flag, which is then
// visible to the next render pass. The flag never resets while mounted.
// Committing an unmounted key mounts it.
func (s *LatchStore) Commit(key Key, expanded bool) {
	e, ok := s.rows[key]
	if !ok {
		e = &latchEntry{}
		s.rows[key] = e
	}
	if expanded && !e.lastExpanded {
		e.renderedOnce = true
	}
	e.lastExpanded = expanded
}

// Retain unmounts every row whose key is not in live and returns the keys
// that were dropped.
func (s *LatchStore) Retain(live []Key) []Key {
	keep := make(map[Key]struct{}, len(live))
	for _, k := range live {
		keep[k] = struct{}{}
	}
	var dropped []Key
	for k := range s.rows {
		if _, ok := keep[k]; !ok {
			delete(s.rows, k)
			dropped = append(dropped, k)
		}
	}
	return dropped
}

// Len returns the number of mounted rows.
func (s *LatchStore) Len() int {
	return len(s.rows)
}
