// Package history keeps a bounded, newest-first log of submitted lines
// with an independent navigation cursor.
package history

// unset marks a navigation cursor that is not browsing history.
const unset = -1

// DefaultCapacity bounds the ring when New is given a non-positive size.
const DefaultCapacity = 50

// Ring holds up to capacity previously submitted lines, newest first.
type Ring struct {
	entries  []string
	capacity int
	cursor   int
}

// New creates a Ring holding at most capacity entries.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
		cursor:   unset,
	}
}

// Add records entry at the front and resets the navigation cursor.
// Empty strings and immediate duplicates of the newest entry are
// silently rejected. When full, the oldest entry is evicted.
func (r *Ring) Add(entry string) {
	if entry == "" {
		return
	}
	if len(r.entries) > 0 && r.entries[0] == entry {
		return
	}
	if len(r.entries) >= r.capacity {
		r.entries = r.entries[:r.capacity-1]
	}
	r.entries = append(r.entries, "")
	copy(r.entries[1:], r.entries)
	r.entries[0] = entry
	r.cursor = unset
}

// Prev moves toward older entries and returns the one under the
// cursor. ok is false, with state unchanged, when already at the
// oldest entry (or the ring is empty).
func (r *Ring) Prev() (entry string, ok bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.cursor == unset {
		r.cursor = 0
		return r.entries[0], true
	}
	if r.cursor+1 < len(r.entries) {
		r.cursor++
		return r.entries[r.cursor], true
	}
	return "", false
}

// Next moves toward newer entries. Stepping forward past the newest
// entry resets the cursor and returns ok=false: the caller should
// interpret that as "back to a blank input line". A Next with the
// cursor already unset is a no-op returning ok=false.
func (r *Ring) Next() (entry string, ok bool) {
	if r.cursor == unset {
		return "", false
	}
	if r.cursor > 0 {
		r.cursor--
		return r.entries[r.cursor], true
	}
	r.cursor = unset
	return "", false
}

// Len returns the number of stored entries.
func (r *Ring) Len() int { return len(r.entries) }

// At returns the entry at index i (0 = newest). It panics on an
// out-of-range index, matching slice semantics.
func (r *Ring) At(i int) string { return r.entries[i] }

// Browsing reports whether the navigation cursor is set.
func (r *Ring) Browsing() bool { return r.cursor != unset }
