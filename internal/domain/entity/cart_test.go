package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeItem(t *testing.T) {
	items := []CartItem{}

	items = MergeItem(items, "p1", 2)
	items = MergeItem(items, "p2", 1)
	items = MergeItem(items, "p1", 3)

	assert.Equal(t, []CartItem{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	}, items)
}

func TestRemoveItem(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 4},
	}

	items = RemoveItem(items, "p2")
	assert.Equal(t, []CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p3", Quantity: 4},
	}, items)

	// Missing product leaves the slice untouched.
	items = RemoveItem(items, "p9")
	assert.Len(t, items, 2)
}

func TestReviewID(t *testing.T) {
	assert.Equal(t, "u1_p1", ReviewID("u1", "p1"))
}
