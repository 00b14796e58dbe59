package selection

import "sync"

// Set is an id set snapshot. Coordinators hand out fresh copies and never
// mutate a set a caller already holds, so change detection by reference
// comparison stays correct.
type Set map[string]struct{}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

func (s Set) clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Coordinator tracks a set of selected entity ids independently of the list
// they came from. It does not watch the list; consumers call Prune on every
// data refresh so stale ids survive at most one render cycle.
type Coordinator struct {
	mu      sync.Mutex
	current Set
}

func New() *Coordinator { return &Coordinator{current: Set{}} }

func (c *Coordinator) Current() Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Toggle flips membership of id and returns the new set.
func (c *Coordinator) Toggle(id string) Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.current.clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	c.current = next
	return next
}

func (c *Coordinator) SelectAll(candidateIDs []string) Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make(Set, len(candidateIDs))
	for _, id := range candidateIDs {
		next[id] = struct{}{}
	}
	c.current = next
	return next
}

func (c *Coordinator) Clear() Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = Set{}
	return c.current
}

func (c *Coordinator) IsFullySelected(candidateIDs []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(candidateIDs) > 0 && len(c.current) == len(candidateIDs)
}

// Prune drops selected ids that are no longer candidates, returning the new
// set.
func (c *Coordinator) Prune(candidateIDs []string) Set {
	valid := make(map[string]struct{}, len(candidateIDs))
	for _, id := range candidateIDs {
		valid[id] = struct{}{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make(Set, len(c.current))
	for id := range c.current {
		if _, ok := valid[id]; ok {
			next[id] = struct{}{}
		}
	}
	c.current = next
	return next
}
