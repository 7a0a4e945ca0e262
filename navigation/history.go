package navigation

// RootPath is where a visitor lands with an empty history
const RootPath = "/"

// Entry is one step of a visitor's navigation, carrying transient state for the page at Path.
// State is never persisted or validated.
type Entry struct {
	Path  string
	State any
}

// History is a stack of entries. It always holds at least the root entry.
type History struct {
	entries []Entry
}

func NewHistory() History {
	return History{entries: []Entry{{Path: RootPath}}}
}

// Push navigates forward to path with state attached.
func (h *History) Push(path string, state any) {
	h.ensureRoot()
	h.entries = append(h.entries, Entry{Path: path, State: state})
}

// Back pops exactly one entry and returns the entry now current.
// At the root it does nothing and reports false.
func (h *History) Back() (Entry, bool) {
	h.ensureRoot()
	if len(h.entries) == 1 {
		return h.entries[0], false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Current is the entry at the top of the stack.
func (h *History) Current() Entry {
	h.ensureRoot()
	return h.entries[len(h.entries)-1]
}

func (h *History) Len() int {
	h.ensureRoot()
	return len(h.entries)
}

func (h *History) clone() History {
	h.ensureRoot()
	return History{entries: append([]Entry(nil), h.entries...)}
}

func (h *History) ensureRoot() {
	if len(h.entries) == 0 {
		h.entries = []Entry{{Path: RootPath}}
	}
}
