package synth

import (
	"fmt"

	"github.com/blimu-dev/schemagen/pkg/model"
	"github.com/blimu-dev/schemagen/pkg/typeinfo"
)

// Cache is the registry of models known to a synthesis run, keyed by origin type handle and
// indexed by id. A Cache is single-writer: share it across roots, not across goroutines.
type Cache struct {
	byHandle map[any]*model.Model
	byID     map[string]*model.Model
	pending  map[string]bool
	order    []*model.Model

	// journal records insertions so a failed run can be undone
	journal []journalEntry
}

type journalEntry struct {
	handle any
	id     string
}

// NewCache returns a cache seeded with known models. Models without an Origin are known by
// id only.
func NewCache(known ...*model.Model) (*Cache, error) {
	c := &Cache{
		byHandle: map[any]*model.Model{},
		byID:     map[string]*model.Model{},
		pending:  map[string]bool{},
	}
	for i, m := range known {
		if m == nil {
			return nil, fmt.Errorf("known model %d is nil", i)
		}
		if m.ID == "" {
			return nil, fmt.Errorf("known model %d: %w", i, ErrEmptyID)
		}
		if _, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("known model %d: %w %q", i, ErrDuplicateID, m.ID)
		}
		c.byID[m.ID] = m
		if m.Origin != nil {
			c.byHandle[m.Origin.Handle()] = m
		}
		c.order = append(c.order, m)
	}
	return c, nil
}

// Lookup returns the model synthesized for t, or a placeholder while t is being resolved.
func (c *Cache) Lookup(t typeinfo.Type) (*model.Model, bool) {
	m, ok := c.byHandle[t.Handle()]
	return m, ok
}

// LookupID returns the model with the given id.
func (c *Cache) LookupID(id string) (*model.Model, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Placeholder registers an empty entry for t so re-entrant lookups resolve to a reference.
func (c *Cache) Placeholder(t typeinfo.Type, id string) *model.Model {
	m := &model.Model{ID: id, Origin: t}
	c.insert(t.Handle(), m)
	c.pending[id] = true
	return m
}

// Commit inserts or overwrites the entry for t. The first commit of a completed entry fixes
// its position in Models.
func (c *Cache) Commit(t typeinfo.Type, m *model.Model) {
	prev, existed := c.byID[m.ID]
	c.insert(t.Handle(), m)
	delete(c.pending, m.ID)
	for i, o := range c.order {
		if o == prev && existed {
			c.order[i] = m
			return
		}
	}
	c.order = append(c.order, m)
}

func (c *Cache) insert(handle any, m *model.Model) {
	_, knownHandle := c.byHandle[handle]
	_, knownID := c.byID[m.ID]
	if !knownHandle || !knownID {
		c.journal = append(c.journal, journalEntry{handle: handle, id: m.ID})
	}
	c.byHandle[handle] = m
	c.byID[m.ID] = m
}

// IsPending reports whether id is registered but not yet committed.
func (c *Cache) IsPending(id string) bool {
	return c.pending[id]
}

// Models returns the committed models: seeds first, then synthesized entries in the order
// they were completed.
func (c *Cache) Models() []*model.Model {
	return append([]*model.Model(nil), c.order...)
}

// Len returns the number of committed models.
func (c *Cache) Len() int {
	return len(c.order)
}

func (c *Cache) checkpoint() int {
	return len(c.journal)
}

func (c *Cache) rollback(cp int) {
	removed := map[string]bool{}
	for _, e := range c.journal[cp:] {
		delete(c.byHandle, e.handle)
		delete(c.byID, e.id)
		delete(c.pending, e.id)
		removed[e.id] = true
	}
	c.journal = c.journal[:cp]
	kept := c.order[:0]
	for _, m := range c.order {
		if !removed[m.ID] {
			kept = append(kept, m)
		}
	}
	c.order = kept
}
