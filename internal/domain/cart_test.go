package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pants  = Product{ID: "1", Name: "Premium Track Pants", Price: 1999, Category: "Lowers", Sizes: []string{"S", "M"}}
	shorts = Product{ID: "3", Name: "Performance Shorts", Price: 1499, Category: "Lowers"}
	bra    = Product{ID: "4", Name: "Sports Bra", Price: 1299, Category: "Accessories"}
)

func assertTotal(t *testing.T, s CartState) {
	t.Helper()
	assert.InDelta(t, s.Subtotal(), s.Total, 1e-9, "total drifted from line sum")
}

func TestReduceCart_TotalInvariant(t *testing.T) {
	actions := []CartAction{
		AddItem(CartItem{Product: pants}),
		AddItem(CartItem{Product: shorts}),
		AddItem(CartItem{Product: pants}),
		UpdateQuantity("3", 5),
		AddItem(CartItem{Product: bra}),
		RemoveItem("1"),
		UpdateQuantity("4", 0),
		RemoveItem("missing"),
		UpdateQuantity("missing", 3),
		AddItem(CartItem{Product: pants}),
		UpdateQuantity("1", -2),
	}
	s := EmptyCart()
	for _, a := range actions {
		s = ReduceCart(s, a)
		assertTotal(t, s)
	}
}

func TestReduceCart_AddSameProductTwice(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: pants, Size: "M", Color: "Black"}))
	s = ReduceCart(s, AddItem(CartItem{Product: pants, Size: "S", Color: "Navy"}))

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, "M", s.Items[0].Size, "first line keeps its variation")
	assert.Equal(t, "Black", s.Items[0].Color)
	assert.Equal(t, 3998.0, s.Total)
	assert.Equal(t, 2, s.ItemCount())
}

func TestReduceCart_AddIgnoresPayloadQuantity(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: shorts, Quantity: 7}))
	require.Len(t, s.Items, 1)
	assert.Equal(t, 1, s.Items[0].Quantity)
	assert.Equal(t, 1499.0, s.Total)
}

func TestReduceCart_RemoveAbsentIsNoop(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: pants}))
	before := s.Clone()

	after := ReduceCart(s, RemoveItem("nope"))
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("state changed (-before +after):\n%s", diff)
	}
	assert.Same(t, &s.Items[0], &after.Items[0], "no-op returns the same backing state")
}

func TestReduceCart_Remove(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: pants}))
	s = ReduceCart(s, AddItem(CartItem{Product: shorts}))
	s = ReduceCart(s, UpdateQuantity("1", 3))

	s = ReduceCart(s, RemoveItem("1"))
	require.Len(t, s.Items, 1)
	assert.Equal(t, "3", s.Items[0].ID)
	assert.Equal(t, 1499.0, s.Total)
}

func TestReduceCart_UpdateQuantityDoesNotClamp(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: bra}))

	s = ReduceCart(s, UpdateQuantity("4", 0))
	require.Len(t, s.Items, 1)
	assert.Equal(t, 0, s.Items[0].Quantity)
	assert.Equal(t, 0.0, s.Total)

	s = ReduceCart(s, UpdateQuantity("4", -1))
	assert.Equal(t, -1, s.Items[0].Quantity)
	assert.Equal(t, -1299.0, s.Total)
}

func TestReduceCart_DoesNotMutateInput(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: pants}))
	snapshot := s.Clone()

	_ = ReduceCart(s, AddItem(CartItem{Product: pants}))
	_ = ReduceCart(s, UpdateQuantity("1", 9))
	_ = ReduceCart(s, RemoveItem("1"))
	_ = ReduceCart(s, ClearCart())

	assert.Empty(t, cmp.Diff(snapshot, s))
}

func TestReduceCart_Flags(t *testing.T) {
	s := ReduceCart(EmptyCart(), SetLoading(true))
	assert.True(t, s.IsLoading)
	s = ReduceCart(s, SetSearching(true))
	assert.True(t, s.IsSearching)
	s = ReduceCart(s, ClearCart())
	assert.False(t, s.IsLoading)
	assert.False(t, s.IsSearching)
	assert.NotNil(t, s.Items)
	assert.Zero(t, s.Total)
}

func TestReduceCart_HydrateForcesSearchingOff(t *testing.T) {
	snap := CartState{
		Items:       []CartItem{{Product: shorts, Quantity: 2}},
		Total:       2998,
		IsLoading:   true,
		IsSearching: true,
	}
	s := ReduceCart(EmptyCart(), HydrateCart(snap))
	assert.False(t, s.IsSearching)
	assert.True(t, s.IsLoading, "loading flag is owned by the store, not the reducer")
	assert.Equal(t, snap.Items, s.Items)
	assert.Equal(t, snap.Total, s.Total)
}

func TestReduceCart_UnknownActionIsNoop(t *testing.T) {
	s := ReduceCart(EmptyCart(), AddItem(CartItem{Product: pants}))
	assert.Equal(t, s, ReduceCart(s, CartAction{Type: "BOGUS"}))
}

func TestCartState_Subtotal(t *testing.T) {
	s := CartState{Items: []CartItem{{Product: pants, Quantity: 2}, {Product: bra, Quantity: 1}}}
	assert.True(t, math.Abs(s.Subtotal()-5297) < 1e-9)
	assert.Equal(t, 3, s.ItemCount())
}
