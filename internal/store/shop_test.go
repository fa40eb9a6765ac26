package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fallencrown/crown-cli/internal/client"
	"github.com/fallencrown/crown-cli/internal/model"
	"github.com/fallencrown/crown-cli/internal/testutil"
)

func shopBody(gold int) map[string]any {
	return map[string]any{
		"wallet": map[string]any{"gold": gold, "gems": 2},
		"offers": []map[string]any{
			{"offer_id": 31, "item_name": "Velvet Cloak", "rarity": "rare", "price_gold": 300, "slot": "chest", "cosmetic": true},
			{"offer_id": 32, "item_name": "Tin Ring", "rarity": "common", "price_gold": 40, "slot": "trinket", "owned": true},
		},
	}
}

func newShopFixture(t *testing.T) (*fakeBackend, *Shop) {
	t.Helper()
	backend := newFakeBackend(t)
	return backend, NewShop(backend.client(), testutil.NopLogger())
}

func TestShop_Fetch(t *testing.T) {
	backend, shop := newShopFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/shop", http.StatusOK, shopBody(500))

	snapshot, err := shop.Fetch(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, 500, snapshot.Wallet.Gold)
	require.Len(t, snapshot.Offers, 2)
	assert.True(t, snapshot.Offers[1].Owned)
	assert.Same(t, snapshot, shop.Snapshot())

	reqs := backend.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/player/7/shop", reqs[0].Path)
}

func TestShop_BuySuccessUpdatesWallet(t *testing.T) {
	backend, shop := newShopFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/shop", http.StatusOK, shopBody(500))
	backend.respond(http.MethodPost, "/player/{id}/shop/buy", http.StatusOK, map[string]any{
		"status": "purchased",
		"wallet": map[string]any{"gold": 200, "gems": 2},
		"granted": map[string]any{
			"inventory_item_id": 99,
			"catalog_item_id":   31,
		},
	})

	_, err := shop.Fetch(context.Background(), 7)
	require.NoError(t, err)

	resp, err := shop.Buy(context.Background(), 7, 31)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "purchased", resp.Status)
	assert.Equal(t, 99, resp.Granted.InventoryItemID)
	assert.Equal(t, 200, shop.Snapshot().Wallet.Gold)
	assert.Zero(t, shop.Buying())

	reqs := backend.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/player/7/shop/buy", reqs[1].Path)
	assert.JSONEq(t, `{"offer_id":31}`, reqs[1].Body)
}

func TestShop_BuyInsufficientFunds(t *testing.T) {
	backend, shop := newShopFixture(t)
	backend.respond(http.MethodGet, "/player/{id}/shop", http.StatusOK, shopBody(10))
	backend.respond(http.MethodPost, "/player/{id}/shop/buy", http.StatusPaymentRequired,
		map[string]string{"detail": "not enough gold"})

	_, err := shop.Fetch(context.Background(), 7)
	require.NoError(t, err)

	_, err = shop.Buy(context.Background(), 7, 31)
	require.Error(t, err)
	assert.True(t, client.IsInsufficientFunds(err))
	assert.Equal(t, "not enough gold", shop.Error())
	assert.Zero(t, shop.Buying())

	// A failed purchase must not touch the wallet
	assert.Equal(t, 10, shop.Snapshot().Wallet.Gold)
}

func TestShop_BuyInsufficientFundsByCode(t *testing.T) {
	backend, shop := newShopFixture(t)
	backend.respond(http.MethodPost, "/player/{id}/shop/buy", http.StatusConflict, map[string]any{
		"error": map[string]string{
			"code":    "INSUFFICIENT_FUNDS",
			"message": "you cannot afford this",
		},
	})

	_, err := shop.Buy(context.Background(), 7, 31)
	require.Error(t, err)
	assert.True(t, client.IsInsufficientFunds(err))
	assert.Equal(t, "you cannot afford this", shop.Error())
}

func TestShop_BuyWithoutPlayerID(t *testing.T) {
	backend, shop := newShopFixture(t)

	_, err := shop.Buy(context.Background(), 0, 31)
	require.ErrorIs(t, err, model.ErrPlayerNotSet)
	assert.Empty(t, backend.requests())
}
