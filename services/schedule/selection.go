package schedule

import (
	"context"
	"sort"
)

// BulkManager tracks a selection over the currently loaded ghost intervals
// and performs bulk deletion through the source adapter. There is a single
// admin actor, so no locking is needed.
type BulkManager struct {
	source   *SourceAdapter
	ghostIDs []string
	selected map[string]bool
}

// NewBulkManager constructs an empty bulk manager.
func NewBulkManager(source *SourceAdapter) *BulkManager {
	return &BulkManager{
		source:   source,
		selected: make(map[string]bool),
	}
}

// SetGhosts replaces the known ghost-id universe after a reload, dropping
// any selected ids that no longer exist.
func (m *BulkManager) SetGhosts(ids []string) {
	m.ghostIDs = append([]string(nil), ids...)
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	for id := range m.selected {
		if !known[id] {
			delete(m.selected, id)
		}
	}
}

// Toggle flips membership of id in the selection set. Unknown ids are
// ignored.
func (m *BulkManager) Toggle(id string) {
	known := false
	for _, g := range m.ghostIDs {
		if g == id {
			known = true
			break
		}
	}
	if !known {
		return
	}
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
}

// SelectAll selects every loaded ghost. When everything is already
// selected it clears the selection instead, acting as a toggle.
func (m *BulkManager) SelectAll() {
	if len(m.selected) == len(m.ghostIDs) && len(m.ghostIDs) > 0 {
		m.Clear()
		return
	}
	for _, id := range m.ghostIDs {
		m.selected[id] = true
	}
}

// Clear empties the selection set.
func (m *BulkManager) Clear() {
	m.selected = make(map[string]bool)
}

// Selected returns the selected ids in stable order.
func (m *BulkManager) Selected() []string {
	ids := make([]string, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DeleteSelected issues one bulk delete for all selected ids and clears the
// selection on success. Partial failure is not distinguished from total
// failure; the caller re-fetches before retrying.
func (m *BulkManager) DeleteSelected(ctx context.Context) (int64, error) {
	ids := m.Selected()
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := m.source.Bookouts.DeleteManyByIDs(ctx, ids)
	if err != nil {
		return 0, NewStoreWriteError("failed to bulk delete ghosts", err)
	}
	m.Clear()

	remaining := m.ghostIDs[:0]
	for _, id := range m.ghostIDs {
		found := false
		for _, del := range ids {
			if del == id {
				found = true
				break
			}
		}
		if !found {
			remaining = append(remaining, id)
		}
	}
	m.ghostIDs = remaining
	return deleted, nil
}
