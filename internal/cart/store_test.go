package cart

import (
	"testing"

	"github.com/samgau/atelier-storefront/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coat() (types.Product, types.Variant) {
	return types.Product{ID: "p1", Name: "Wool Coat", Price: types.MoneyFromInt(5000)},
		types.Variant{Size: "S", Color: "black", Stock: 4}
}

func TestAddMergesDuplicateKey(t *testing.T) {
	store := NewStore()
	product, variant := coat()

	store.Add(product, variant)
	store.Add(product, variant)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, store.Total().Equal(types.MoneyFromInt(10000)), "total %s", store.Total())
	assert.Equal(t, 2, store.Count())
}

func TestAddQuantityEqualsAddCalls(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	for i := 0; i < 7; i++ {
		store.Add(product, variant)
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestDistinctVariantsAreDistinctLines(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	other := types.Variant{Size: "M", Color: "black", Stock: 2}

	store.Add(product, variant)
	store.Add(product, other)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, ItemKey("p1", "S", "black"), items[0].Key)
	assert.Equal(t, ItemKey("p1", "M", "black"), items[1].Key)
}

func TestAddThenRemoveRestoresTotal(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	shirt := types.Product{ID: "p2", Name: "Shirt", Price: types.MoneyFromInt(900)}
	shirtVariant := types.Variant{Size: "M", Color: "white", Stock: 10}

	store.Add(shirt, shirtVariant)
	before := store.Total()

	store.Add(product, variant)
	store.Remove(ItemKey("p1", "S", "black"))

	assert.True(t, store.Total().Equal(before), "got %s want %s", store.Total(), before)
}

func TestDecrementRemovesLineAtOne(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	key := ItemKey("p1", "S", "black")

	store.Add(product, variant)
	store.Add(product, variant)

	store.Decrement(key)
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	store.Decrement(key)
	assert.Empty(t, store.Items(), "decrementing a quantity-1 line removes it")
}

func TestAddWithoutSelectionUsesFirstVariant(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	product.Variants = []types.Variant{variant, {Size: "M", Color: "black", Stock: 2}}

	store.Add(product, types.Variant{})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, ItemKey("p1", "S", "black"), items[0].Key)
	assert.Equal(t, variant, items[0].Variant)
}

func TestAddWithoutVariantsFallsBackToPlaceholder(t *testing.T) {
	store := NewStore()
	product, _ := coat()

	store.Add(product, types.Variant{})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, ItemKey("p1", "M", "black"), items[0].Key)
	assert.Equal(t, types.Variant{Size: "M", Color: "black", Stock: 1}, items[0].Variant)
}

func TestIncrementUnknownKeyIsNoOp(t *testing.T) {
	store := NewStore()
	store.Increment("nope")
	assert.Empty(t, store.Items())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	store.Add(product, variant)

	snapshot := store.Items()
	store.Increment(snapshot[0].Key)

	assert.Equal(t, 1, snapshot[0].Quantity, "earlier snapshot must not observe later mutations")
	assert.Equal(t, 2, store.Items()[0].Quantity)
}

func TestClearEmptiesEverything(t *testing.T) {
	store := NewStore()
	product, variant := coat()
	store.Add(product, variant)
	store.Clear()

	assert.Zero(t, store.Count())
	assert.Empty(t, store.Items())
	assert.True(t, store.Total().Equal(types.Money{}), "got %s", store.Total())
}
