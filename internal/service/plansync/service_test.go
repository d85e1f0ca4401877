package plansync

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mexared/carrier-gateway/internal/infrastructure/cache"
	"github.com/mexared/carrier-gateway/internal/infrastructure/config"
)

// fakeCatalogClient serves canned catalog pages keyed by page URL. The first
// page lives under the "" key.
type fakeCatalogClient struct {
	pages    map[string]map[string]interface{}
	requests []string
	err      error
}

func (f *fakeCatalogClient) PlanCatalogPage(ctx context.Context, pageURL string) (map[string]interface{}, error) {
	f.requests = append(f.requests, pageURL)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[pageURL], nil
}

func singlePageClient(plans ...interface{}) *fakeCatalogClient {
	return &fakeCatalogClient{
		pages: map[string]map[string]interface{}{
			"": {"result": plans},
		},
	}
}

func newTestService(t *testing.T, client *fakeCatalogClient) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	store, err := cache.NewRedisCache(&config.RedisConfig{
		URL:         mr.Addr(),
		DialTimeout: 5 * time.Second,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return New(client, store, zaptest.NewLogger(t), time.Hour), mr
}

func TestSync_WritesCatalogToCache(t *testing.T) {
	client := singlePageClient("MEXA FLASH 500 MB")
	svc, mr := newTestService(t, client)

	plans, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"MEXA FLASH 500 MB"}, plans)
	assert.True(t, mr.Exists(CatalogKey))
}

func TestSync_FollowsPaginationToExhaustion(t *testing.T) {
	client := &fakeCatalogClient{
		pages: map[string]map[string]interface{}{
			"": {
				"result":   []interface{}{"plan-a", "plan-b"},
				"next_url": "https://api.example.com/planes_disponibles?page=2",
			},
			"https://api.example.com/planes_disponibles?page=2": {
				"result": []interface{}{"plan-c"},
			},
		},
	}
	svc, _ := newTestService(t, client)

	plans, err := svc.Sync(context.Background())
	require.NoError(t, err)

	// All pages merged, fetched in link order, and the pagination link is
	// not stored as catalog data.
	assert.Equal(t, []interface{}{"plan-a", "plan-b", "plan-c"}, plans)
	assert.Equal(t, []string{"", "https://api.example.com/planes_disponibles?page=2"}, client.requests)

	cached, err := svc.Plans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, plans, cached)
}

func TestPlans_CacheHitSkipsCarrier(t *testing.T) {
	client := singlePageClient("MIFI SHARE 50GB")
	svc, _ := newTestService(t, client)

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, client.requests, 1)

	plans, err := svc.Plans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"MIFI SHARE 50GB"}, plans)
	assert.Len(t, client.requests, 1, "cache hit must not call the carrier")
}

func TestPlans_CacheMissTriggersSync(t *testing.T) {
	client := singlePageClient()
	svc, mr := newTestService(t, client)

	plans, err := svc.Plans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.Len(t, client.requests, 1)
	assert.True(t, mr.Exists(CatalogKey))
}

func TestPlans_ExpiredEntryRefetches(t *testing.T) {
	client := singlePageClient("plan-a")
	svc, mr := newTestService(t, client)

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = svc.Plans(context.Background())
	require.NoError(t, err)
	assert.Len(t, client.requests, 2)
}

func TestSync_CarrierFailurePropagates(t *testing.T) {
	client := &fakeCatalogClient{err: assert.AnError}
	svc, mr := newTestService(t, client)

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.False(t, mr.Exists(CatalogKey))
}
