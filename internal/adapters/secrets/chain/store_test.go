package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/bnema/dreamlog/internal/adapters/secrets/pass"
	"github.com/bnema/dreamlog/internal/ports"
	portmocks "github.com/bnema/dreamlog/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenKey = "supabase/access_token"

func newTestStore(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback, nil)
	require.NoError(t, err)
	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil, nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPassIsUnavailable(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetKeepsNotFoundWhenBothMiss(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", ports.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, ports.ErrSecretNotFound)
	assert.ErrorContains(t, err, "primary secret store get")
	assert.ErrorContains(t, err, "fallback secret store get")
}

func TestStoreGetDoesNotFallBackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestStore(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePut(t *testing.T) {
	t.Parallel()

	t.Run("primary succeeds", func(t *testing.T) {
		store, primary, _ := newTestStore(t)
		primary.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(nil).Once()

		require.NoError(t, store.Put(context.Background(), tokenKey, "jwt"))
	})

	t.Run("falls back", func(t *testing.T) {
		store, primary, fallback := newTestStore(t)
		primary.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(errors.New("gpg failed")).Once()
		fallback.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(nil).Once()

		require.NoError(t, store.Put(context.Background(), tokenKey, "jwt"))
	})

	t.Run("both fail", func(t *testing.T) {
		store, primary, fallback := newTestStore(t)
		primary.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(errors.New("gpg failed")).Once()
		fallback.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(errors.New("read-only fs")).Once()

		err := store.Put(context.Background(), tokenKey, "jwt")
		require.Error(t, err)
		assert.ErrorContains(t, err, "gpg failed")
		assert.ErrorContains(t, err, "read-only fs")
	})
}

func TestStoreDeleteClearsBothStores(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDeleteSucceedsWhenOneStoreFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDeleteReportsBothFailures(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestStore(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("permission denied")).Once()

	err := store.Delete(context.Background(), tokenKey)
	require.ErrorIs(t, err, passstore.ErrUnavailable)
	assert.ErrorContains(t, err, "permission denied")
}
