package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

func newCatalogStore(t *testing.T, content string) *CatalogStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "food_items.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	store, err := OpenCatalogStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	return store
}

const catalogFixture = "FoodID,Name,Quantity,Price,Discount,Stock\n" +
	"10001,Samosa,4pieces,40.00,0,10\n" +
	"10002,Dosa,1plate,80.5,5,7\n" +
	"10003,Paneer Tikka,250gm,120,10,3\n"

func testItem(id string) domain.FoodItem {
	return domain.FoodItem{
		ID:              id,
		Name:            "Chai",
		QuantityUnit:    "100ml",
		Price:           decimal.RequireFromString("15"),
		DiscountPercent: decimal.RequireFromString("0"),
		Stock:           50,
	}
}

func TestCatalogStore_CreatesFileWithHeader(t *testing.T) {
	store := newCatalogStore(t, "")

	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Equal(t, "FoodID,Name,Quantity,Price,Discount,Stock\n", string(content))

	items, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogStore_InsertAndGet(t *testing.T) {
	store := newCatalogStore(t, "")
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testItem("12345")))

	got, err := store.GetByID(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "Chai", got.Name)
	assert.Equal(t, 50, got.Stock)

	_, err = store.GetByID(ctx, "99999")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestCatalogStore_ListAll_FileOrderAndIdempotent(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)
	ctx := context.Background()

	first, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"10001", "10002", "10003"}, []string{first[0].ID, first[1].ID, first[2].ID})

	second, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalogStore_Update(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)
	ctx := context.Background()

	updated := domain.FoodItem{
		ID:              "10002",
		Name:            "Masala Dosa",
		QuantityUnit:    "1plate",
		Price:           decimal.RequireFromString("95"),
		DiscountPercent: decimal.RequireFromString("5"),
		Stock:           6,
	}
	require.NoError(t, store.Update(ctx, updated))

	got, err := store.GetByID(ctx, "10002")
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("95")))
	assert.Equal(t, 6, got.Stock)

	// every other row is byte-identical, down to the "40.00" formatting
	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "10001,Samosa,4pieces,40.00,0,10\n")
	assert.Contains(t, string(content), "10003,Paneer Tikka,250gm,120,10,3\n")
}

func TestCatalogStore_Update_NormalizesForeignQuoting(t *testing.T) {
	// a hand-edited file may quote fields the CSV writer would not; a
	// rewrite re-emits them unquoted with the same values
	fixture := "FoodID,Name,Quantity,Price,Discount,Stock\n" +
		"10001,\"Samosa\",4pieces,40.00,0,10\n" +
		"10002,Dosa,1plate,80.5,5,7\n"
	store := newCatalogStore(t, fixture)
	ctx := context.Background()

	updated := testItem("10002")
	require.NoError(t, store.Update(ctx, updated))

	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "10001,Samosa,4pieces,40.00,0,10\n")
	assert.NotContains(t, string(content), "\"Samosa\"")

	got, err := store.GetByID(ctx, "10001")
	require.NoError(t, err)
	assert.Equal(t, "Samosa", got.Name)
}

func TestCatalogStore_Update_NotFound(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)

	err := store.Update(context.Background(), testItem("55555"))
	require.ErrorIs(t, err, port.ErrNotFound)

	// nothing changed
	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Equal(t, catalogFixture, string(content))
}

func TestCatalogStore_Delete(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "10002"))

	items, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, "10002", item.ID)
	}

	err = store.Delete(ctx, "10002")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestCatalogStore_MalformedRow(t *testing.T) {
	fixture := "FoodID,Name,Quantity,Price,Discount,Stock\n" +
		"10001,Samosa,4pieces,40,0,10\n" +
		"10002,Broken,1plate,80.5\n" +
		"10003,Paneer Tikka,250gm,120,10,3\n"
	store := newCatalogStore(t, fixture)
	ctx := context.Background()

	// read-only listing skips the bad row
	items, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// write paths must not trust shifted columns
	err = store.Update(ctx, testItem("10001"))
	require.ErrorIs(t, err, port.ErrMalformedRecord)

	err = store.Delete(ctx, "10001")
	require.ErrorIs(t, err, port.ErrMalformedRecord)
}

func TestCatalogStore_AllocateID_Unique(t *testing.T) {
	store := newCatalogStore(t, "")
	ctx := context.Background()

	// shrink the ID space so exhaustion pressure is real
	store.idLow, store.idHigh = 1, 3

	require.NoError(t, store.Insert(ctx, testItem("1")))
	require.NoError(t, store.Insert(ctx, testItem("2")))

	for i := 0; i < 25; i++ {
		id, err := store.AllocateID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "3", id)
	}
}

func TestCatalogStore_AllocateID_ReservesMalformedRowIDs(t *testing.T) {
	// the row's price no longer decodes, but its ID is still in the file
	// and must never be handed out again
	fixture := "FoodID,Name,Quantity,Price,Discount,Stock\n" +
		"1,Samosa,4pieces,not-a-price,0,10\n"
	store := newCatalogStore(t, fixture)
	ctx := context.Background()

	store.idLow, store.idHigh = 1, 2

	for i := 0; i < 25; i++ {
		id, err := store.AllocateID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2", id)
	}
}

func TestCatalogStore_AllocateID_FiveDigits(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)

	id, err := store.AllocateID(context.Background())
	require.NoError(t, err)
	assert.Len(t, id, 5)
	assert.NotContains(t, []string{"10001", "10002", "10003"}, id)
	for _, r := range id {
		assert.GreaterOrEqual(t, r, '0')
		assert.LessOrEqual(t, r, '9')
	}
}

func TestCatalogStore_LeftoverScratchIgnored(t *testing.T) {
	store := newCatalogStore(t, catalogFixture)

	// a scratch file from a crashed run sits next to the data file
	stale := store.path + ".dead-beef.tmp"
	require.NoError(t, os.WriteFile(stale, []byte("garbage"), 0o644))

	items, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)

	content, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "FoodID,"))
}
