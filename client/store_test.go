package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitStore() *Store[Unit] {
	return NewStore(func(u Unit) string { return u.ID })
}

func TestFulfilledListReplacesWholesale(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a"}, {ID: "b"}}, &Pagination{Page: 1, Total: 2})

	store.FulfilledList([]Unit{{ID: "c"}}, &Pagination{Page: 1, Total: 1})

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, 1, store.Pagination().Total)
	assert.False(t, store.IsLoading())
}

func TestFulfilledCreatePrepends(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a"}, {ID: "b"}}, nil)

	store.FulfilledCreate(Unit{ID: "new"})

	items := store.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}

func TestFulfilledUpdatePatchesInPlace(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a", UnitNumber: "101"}, {ID: "b", UnitNumber: "102"}, {ID: "c", UnitNumber: "103"}}, nil)
	store.FulfilledCurrent(&Unit{ID: "b", UnitNumber: "102"})

	store.FulfilledUpdate(Unit{ID: "b", UnitNumber: "102-renumbered"})

	items := store.Items()
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "102-renumbered", items[1].UnitNumber)
	assert.Equal(t, "102-renumbered", store.Current().UnitNumber)
}

func TestFulfilledUpdateUnknownIDIsNoop(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a"}}, nil)

	store.FulfilledUpdate(Unit{ID: "ghost"})

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestFulfilledDeleteRemovesByID(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a"}, {ID: "b"}}, nil)

	store.FulfilledDelete("a")
	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	store.FulfilledDelete("ghost")
	assert.Len(t, store.Items(), 1)
}

func TestRejectedPreservesItemsAndCurrent(t *testing.T) {
	store := unitStore()
	store.FulfilledList([]Unit{{ID: "a"}, {ID: "b"}}, &Pagination{Total: 2})
	store.FulfilledCurrent(&Unit{ID: "a"})

	store.Pending(true)
	store.Rejected("database unavailable")

	assert.Len(t, store.Items(), 2)
	assert.Equal(t, "a", store.Current().ID)
	assert.Equal(t, "database unavailable", store.Err())
	assert.False(t, store.IsLoading())
}

func TestPendingErrorClearing(t *testing.T) {
	store := unitStore()
	store.Rejected("previous failure")

	// Detail fetches keep the prior error visible.
	store.Pending(false)
	assert.Equal(t, "previous failure", store.Err())
	assert.True(t, store.IsLoading())

	// List and create operations start clean.
	store.Pending(true)
	assert.Empty(t, store.Err())
}

func TestSettleSkipsSessionAndValidationErrors(t *testing.T) {
	store := unitStore()

	store.Pending(true)
	store.settle(ErrSessionExpired)
	assert.Empty(t, store.Err())
	assert.False(t, store.IsLoading())

	store.Pending(true)
	store.settle(&ValidationError{Fields: map[string]string{"Email": "is required"}})
	assert.Empty(t, store.Err())
	assert.False(t, store.IsLoading())

	store.Pending(true)
	store.settle(errors.New("connection refused"))
	assert.Equal(t, "connection refused", store.Err())
}
