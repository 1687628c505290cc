package cart

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu  sync.Mutex
	ops map[string]int
}

func (c *countingObserver) IncMutation(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ops == nil {
		c.ops = map[string]int{}
	}
	c.ops[op]++
}

func TestAddOrIncrementSameIDKeepsSingleEntry(t *testing.T) {
	store := NewStore(nil)
	for i := 0; i < 5; i++ {
		store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, store.ItemCount())
}

func TestAddOrIncrementCapturesFieldsOnInsertOnly(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", " Tenun A ", 150000, ImageRef{URL: "https://cdn.example/a.jpg"})
	got := store.AddOrIncrement("1", "Renamed", 999, ImageRef{Style: "red"})

	assert.Equal(t, " Tenun A ", got.Name)
	assert.Equal(t, int64(150000), got.UnitPrice)
	assert.Equal(t, "https://cdn.example/a.jpg", got.Image.URL)
	assert.Empty(t, got.Image.Style)
	assert.Equal(t, 2, got.Quantity)
}

func TestAddTwiceDoublesQuantity(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(300000), store.Subtotal())
}

func TestDecrementLastUnitRemoves(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	_, present := store.ChangeQuantity("1", -1)

	assert.False(t, present)
	assert.True(t, store.IsEmpty())
}

func TestChangeQuantityByNegativeQuantityAlwaysRemoves(t *testing.T) {
	for qty := 1; qty <= 4; qty++ {
		store := NewStore(nil)
		for i := 0; i < qty; i++ {
			store.AddOrIncrement("x", "Songket", 200000, ImageRef{})
		}
		store.AddOrIncrement("y", "Selendang", 75000, ImageRef{})

		_, present := store.ChangeQuantity("x", -qty)
		require.False(t, present, "qty=%d", qty)
		_, found := store.Get("x")
		require.False(t, found, "qty=%d", qty)
		require.Len(t, store.Items(), 1)
	}
}

func TestChangeQuantityOvershootRemoves(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	_, present := store.ChangeQuantity("1", -10)
	assert.False(t, present)
	assert.True(t, store.IsEmpty())
}

func TestChangeQuantityIncrements(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	item, present := store.ChangeQuantity("1", 3)
	require.True(t, present)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, int64(600000), store.Subtotal())
}

func TestChangeQuantityUnknownIDIsNoop(t *testing.T) {
	obs := &countingObserver{}
	store := NewStore(obs)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	_, present := store.ChangeQuantity("missing", -1)

	assert.False(t, present)
	assert.Len(t, store.Items(), 1)
	assert.Equal(t, 0, obs.ops[OpChangeQuantity])
}

func TestRemove(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.AddOrIncrement("2", "Tenun B", 90000, ImageRef{})

	assert.True(t, store.Remove("1"))
	assert.False(t, store.Remove("1"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestClearEmptiesStore(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.AddOrIncrement("2", "Tenun B", 90000, ImageRef{})

	store.Clear()

	assert.True(t, store.IsEmpty())
	assert.Zero(t, store.ItemCount())
	assert.Zero(t, store.Subtotal())
}

func TestItemsPreserveInsertionOrderAfterRemoval(t *testing.T) {
	store := NewStore(nil)
	for _, id := range []string{"a", "b", "c", "d"} {
		store.AddOrIncrement(id, id, 1000, ImageRef{})
	}
	store.Remove("b")
	store.AddOrIncrement("b", "b", 1000, ImageRef{})

	var ids []string
	for _, item := range store.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids)
}

func TestItemsReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	items := store.Items()
	items[0].Quantity = 99

	got, _ := store.Get("1")
	assert.Equal(t, 1, got.Quantity)
}

func TestSubtotalNeverStale(t *testing.T) {
	store := NewStore(nil)
	check := func() {
		var want int64
		for _, item := range store.Items() {
			want += item.UnitPrice * int64(item.Quantity)
		}
		require.Equal(t, want, store.Subtotal())
	}

	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	check()
	store.AddOrIncrement("2", "Tenun B", 90000, ImageRef{})
	check()
	store.ChangeQuantity("2", 2)
	check()
	store.Remove("1")
	check()
	store.ChangeQuantity("2", -3)
	check()
}

func TestObserverCountsAppliedMutations(t *testing.T) {
	obs := &countingObserver{}
	store := NewStore(obs)

	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.ChangeQuantity("1", -1)
	store.Remove("nope")
	store.Remove("1")
	store.Clear()

	assert.Equal(t, 2, obs.ops[OpAdd])
	assert.Equal(t, 1, obs.ops[OpChangeQuantity])
	assert.Equal(t, 1, obs.ops[OpRemove])
	assert.Equal(t, 1, obs.ops[OpClear])
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	store := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
		}()
	}
	wg.Wait()

	item, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, 50, item.Quantity)
}

func TestAddOrIncrementStopsAtMaxQuantity(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})
	store.ChangeQuantity("1", MaxQuantity-1)

	got := store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	assert.Equal(t, MaxQuantity, got.Quantity)
}

func TestChangeQuantityClampsAtMaxQuantity(t *testing.T) {
	store := NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, ImageRef{})

	got, present := store.ChangeQuantity("1", math.MaxInt)

	require.True(t, present)
	assert.Equal(t, MaxQuantity, got.Quantity)
}

func TestSubtotalCapsInsteadOfWrapping(t *testing.T) {
	items := []LineItem{
		{ID: "1", UnitPrice: 5000000000000000000, Quantity: 1},
		{ID: "2", UnitPrice: 5000000000000000000, Quantity: 1},
	}

	assert.Equal(t, int64(math.MaxInt64), Subtotal(items))
	assert.Equal(t, int64(math.MaxInt64), LineItem{UnitPrice: MaxUnitPrice, Quantity: math.MaxInt}.LineTotal())
}
