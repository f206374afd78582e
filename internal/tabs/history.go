package tabs

import "strings"

// Location is the addressable fragment of the current view.
type Location interface {
	// Hash returns the fragment including its leading '#', or "".
	Hash() string
	// SetHash accepts the fragment with or without the leading '#'.
	SetHash(hash string)
}

// PopStateMsg reports a back/forward move through History.
type PopStateMsg struct {
	Hash string
}

// History is an in-memory Location with a back/forward stack.
type History struct {
	entries []string
	cursor  int
}

// NewHistory starts with a single entry. An empty initial hash is allowed.
func NewHistory(initial string) *History {
	return &History{entries: []string{normalizeHash(initial)}}
}

func normalizeHash(h string) string {
	h = strings.TrimSpace(h)
	if h == "" || h == "#" {
		return ""
	}
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	return h
}

func (h *History) Hash() string {
	return h.entries[h.cursor]
}

// SetHash pushes a new entry and discards any forward entries. Setting the
// current hash again is a no-op.
func (h *History) SetHash(hash string) {
	hash = normalizeHash(hash)
	if hash == h.entries[h.cursor] {
		return
	}
	h.entries = append(h.entries[:h.cursor+1], hash)
	h.cursor++
}

// Back moves one entry back. ok is false at the start of history.
func (h *History) Back() (msg PopStateMsg, ok bool) {
	if h.cursor == 0 {
		return PopStateMsg{}, false
	}
	h.cursor--
	return PopStateMsg{Hash: h.Hash()}, true
}

// Forward moves one entry forward. ok is false at the end of history.
func (h *History) Forward() (msg PopStateMsg, ok bool) {
	if h.cursor >= len(h.entries)-1 {
		return PopStateMsg{}, false
	}
	h.cursor++
	return PopStateMsg{Hash: h.Hash()}, true
}

// Len is the number of entries.
func (h *History) Len() int { return len(h.entries) }
