package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

func newUserStore(t *testing.T, content string) *UserStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	store, err := OpenUserStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	return store
}

func testUser(email string) domain.UserAccount {
	return domain.UserAccount{
		FullName:    "Asha Rao",
		PhoneNumber: "9876543210",
		Email:       email,
		Address:     "12 MG Road",
		Password:    "secretpass",
	}
}

func TestUserStore_InsertAndGet(t *testing.T) {
	store := newUserStore(t, "")
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testUser("asha@example.com")))

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Empty(t, got.OrderHistory)

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestUserStore_GetByEmail_FirstMatchWins(t *testing.T) {
	store := newUserStore(t, "")
	ctx := context.Background()

	first := testUser("dup@example.com")
	first.FullName = "First Account"
	second := testUser("dup@example.com")
	second.FullName = "Second Account"

	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	got, err := store.GetByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First Account", got.FullName)
}

func TestUserStore_UpdateProfile(t *testing.T) {
	store := newUserStore(t, "")
	ctx := context.Background()

	u := testUser("asha@example.com")
	u.OrderHistory = []string{"old entry"}
	require.NoError(t, store.Insert(ctx, u))
	require.NoError(t, store.Insert(ctx, testUser("other@example.com")))

	err := store.UpdateProfile(ctx, "asha@example.com", domain.Profile{
		FullName:    "Asha R",
		PhoneNumber: "9999999999",
		Address:     "99 Brigade Road",
	})
	require.NoError(t, err)

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha R", got.FullName)
	assert.Equal(t, "9999999999", got.PhoneNumber)
	assert.Equal(t, "99 Brigade Road", got.Address)
	// password and history pass through untouched
	assert.Equal(t, "secretpass", got.Password)
	assert.Equal(t, []string{"old entry"}, got.OrderHistory)

	// the other account is not collaterally mutated
	other, err := store.GetByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", other.FullName)
}

func TestUserStore_UpdateProfile_NotFound(t *testing.T) {
	store := newUserStore(t, "")

	err := store.UpdateProfile(context.Background(), "nobody@example.com", domain.Profile{
		FullName: "X", PhoneNumber: "1234567890", Address: "Y",
	})
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestUserStore_AppendOrderHistory_Ordered(t *testing.T) {
	store := newUserStore(t, "")
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testUser("asha@example.com")))

	require.NoError(t, store.AppendOrderHistory(ctx, "asha@example.com", "entry one"))
	require.NoError(t, store.AppendOrderHistory(ctx, "asha@example.com", "entry two"))

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"entry one", "entry two"}, got.OrderHistory)
}

func TestUserStore_AppendOrderHistory_LegacyFiveFieldRow(t *testing.T) {
	// a row written before the history column existed
	fixture := "Full Name,Phone Number,Email,Address,Password,Order History\n" +
		"Asha Rao,9876543210,asha@example.com,12 MG Road,secretpass\n"
	store := newUserStore(t, fixture)
	ctx := context.Background()

	require.NoError(t, store.AppendOrderHistory(ctx, "asha@example.com", "first entry"))

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"first entry"}, got.OrderHistory)
}

func TestUserStore_AppendOrderHistory_NotFound(t *testing.T) {
	store := newUserStore(t, "")

	err := store.AppendOrderHistory(context.Background(), "nobody@example.com", "entry")
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestUserStore_HistorySurvivesRewrites(t *testing.T) {
	store := newUserStore(t, "")
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testUser("asha@example.com")))
	require.NoError(t, store.AppendOrderHistory(ctx, "asha@example.com", "entry one"))

	// a profile rewrite must not reorder or truncate history
	require.NoError(t, store.UpdateProfile(ctx, "asha@example.com", domain.Profile{
		FullName: "Asha R", PhoneNumber: "9876543210", Address: "12 MG Road",
	}))
	require.NoError(t, store.AppendOrderHistory(ctx, "asha@example.com", "entry two"))

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"entry one", "entry two"}, got.OrderHistory)
}
