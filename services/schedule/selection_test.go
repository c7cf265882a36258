package schedule

import (
	"context"
	"testing"

	"studiobook/models"
)

func ghostBookouts(n int) []models.Bookout {
	out := make([]models.Bookout, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Bookout{
			ID:        string(rune('a' + i)),
			Reason:    "hold",
			Type:      models.BookoutTypeGhost,
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		})
	}
	return out
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{}))
	m.SetGhosts([]string{"a", "b", "c"})

	m.Toggle("b")
	if got := m.Selected(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected selection [b], got %v", got)
	}
	m.Toggle("b")
	if got := m.Selected(); len(got) != 0 {
		t.Fatalf("double toggle must restore the empty selection, got %v", got)
	}
}

func TestToggleIgnoresUnknownIDs(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{}))
	m.SetGhosts([]string{"a"})

	m.Toggle("nope")
	if got := m.Selected(); len(got) != 0 {
		t.Errorf("unknown id must not enter the selection, got %v", got)
	}
}

func TestSelectAllTogglesWhenComplete(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{}))
	m.SetGhosts([]string{"a", "b", "c"})

	m.SelectAll()
	if got := m.Selected(); len(got) != 3 {
		t.Fatalf("expected all 3 selected, got %v", got)
	}
	m.SelectAll()
	if got := m.Selected(); len(got) != 0 {
		t.Fatalf("select-all on a full selection must clear it, got %v", got)
	}

	// A partial selection is completed, not cleared.
	m.Toggle("a")
	m.SelectAll()
	if got := m.Selected(); len(got) != 3 {
		t.Errorf("select-all on a partial selection must complete it, got %v", got)
	}
}

func TestSelectAllOnEmptyUniverse(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{}))
	m.SelectAll()
	if got := m.Selected(); len(got) != 0 {
		t.Errorf("no ghosts loaded, selection must stay empty, got %v", got)
	}
}

func TestSetGhostsPrunesStaleSelection(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{}))
	m.SetGhosts([]string{"a", "b"})
	m.Toggle("a")
	m.Toggle("b")

	m.SetGhosts([]string{"b", "c"})
	if got := m.Selected(); len(got) != 1 || got[0] != "b" {
		t.Errorf("reload must drop selections for vanished ghosts, got %v", got)
	}
}

func TestDeleteSelectedRemovesOnlySelection(t *testing.T) {
	bookouts := &fakeBookoutRepo{bookouts: ghostBookouts(5)}
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, bookouts))
	m.SetGhosts([]string{"a", "b", "c", "d", "e"})

	m.Toggle("a")
	m.Toggle("c")
	m.Toggle("e")

	deleted, err := m.DeleteSelected(context.Background())
	if err != nil {
		t.Fatalf("DeleteSelected returned error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
	if len(bookouts.bookouts) != 2 {
		t.Fatalf("expected 2 bookouts to survive, got %d", len(bookouts.bookouts))
	}
	for _, b := range bookouts.bookouts {
		if b.ID != "b" && b.ID != "d" {
			t.Errorf("unselected ghost %s was deleted", b.ID)
		}
	}
	if got := m.Selected(); len(got) != 0 {
		t.Errorf("selection must be cleared after delete, got %v", got)
	}

	// The universe shrinks too: select-all now covers just the survivors.
	m.SelectAll()
	if got := m.Selected(); len(got) != 2 {
		t.Errorf("expected the 2 surviving ghosts selectable, got %v", got)
	}
}

func TestDeleteSelectedEmptySelectionIsNoop(t *testing.T) {
	bookouts := &fakeBookoutRepo{bookouts: ghostBookouts(2)}
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, bookouts))
	m.SetGhosts([]string{"a", "b"})

	deleted, err := m.DeleteSelected(context.Background())
	if err != nil {
		t.Fatalf("DeleteSelected returned error: %v", err)
	}
	if deleted != 0 || len(bookouts.bookouts) != 2 {
		t.Errorf("empty selection must delete nothing, deleted=%d remaining=%d",
			deleted, len(bookouts.bookouts))
	}
}

func TestDeleteSelectedKeepsSelectionOnFailure(t *testing.T) {
	m := NewBulkManager(newTestAdapter(&fakeBookingRepo{}, &fakeBookoutRepo{failWrite: true, bookouts: ghostBookouts(2)}))
	m.SetGhosts([]string{"a", "b"})
	m.Toggle("a")

	_, err := m.DeleteSelected(context.Background())
	if err == nil {
		t.Fatal("expected store write error")
	}
	ee, ok := err.(*EngineError)
	if !ok || ee.Code != CodeStoreWrite {
		t.Errorf("expected %s, got %v", CodeStoreWrite, err)
	}
	if got := m.Selected(); len(got) != 1 || got[0] != "a" {
		t.Errorf("failed delete must leave the selection intact, got %v", got)
	}
}
