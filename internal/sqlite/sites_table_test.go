package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedforge/channelstore/pkg/types"
)

// mustCreateSource inserts a source under the given channel and returns its id.
func mustCreateSource(t *testing.T, store *Store, channelID int64) int64 {
	t.Helper()
	id, err := store.Sources().Create(&types.Source{
		ChannelID: channelID,
		SourceURL: "https://feeds.example.org/a",
	})
	require.NoError(t, err)
	return id
}

func TestSiteLifecycle(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	id, err := sites.Create(&types.Site{
		SourceID: sourceID,
		SiteURL:  "https://listings.example.org",
		SiteType: types.SiteTypeAuto,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	all, err := sites.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, sourceID, got.SourceID)
	assert.Equal(t, "https://listings.example.org", got.SiteURL)
	assert.Equal(t, types.SiteTypeAuto, got.SiteType)

	require.NoError(t, sites.Delete(id))
	all, err = sites.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSiteTypes(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	for _, st := range types.SiteTypes {
		id, err := sites.Create(&types.Site{
			SourceID: sourceID,
			SiteURL:  "https://" + string(st),
			SiteType: st,
		})
		require.NoError(t, err)

		got, err := sites.Get(id)
		require.NoError(t, err)
		assert.Equal(t, st, got.SiteType)
	}
}

func TestSiteInvalidType(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	_, err := sites.Create(&types.Site{
		SourceID: sourceID,
		SiteURL:  "https://s",
		SiteType: types.SiteType("LEASE"),
	})
	assert.ErrorIs(t, err, types.ErrInvalidEnum)

	all, err := sites.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSiteUpdateInvalidType(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	id, err := sites.Create(&types.Site{
		SourceID: sourceID,
		SiteURL:  "https://s",
		SiteType: types.SiteTypeRent,
	})
	require.NoError(t, err)

	err = sites.Update(id, &types.Site{
		SourceID: sourceID,
		SiteURL:  "https://s",
		SiteType: types.SiteType("LEASE"),
	})
	assert.ErrorIs(t, err, types.ErrInvalidEnum)

	// Record unchanged.
	got, err := sites.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.SiteTypeRent, got.SiteType)
}

func TestSiteForeignKey(t *testing.T) {
	store := openTestStore(t)
	sites := store.Sites()

	_, err := sites.Create(&types.Site{
		SourceID: 12345,
		SiteURL:  "https://s",
		SiteType: types.SiteTypeFree,
	})
	assert.ErrorIs(t, err, types.ErrForeignKey)

	all, err := sites.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSiteUpdateReplacesRecord(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceA := mustCreateSource(t, store, channelID)
	sourceB := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	id, err := sites.Create(&types.Site{
		SourceID: sourceA,
		SiteURL:  "https://s",
		SiteType: types.SiteTypeBuy,
	})
	require.NoError(t, err)

	err = sites.Update(id, &types.Site{
		SourceID: sourceB,
		SiteURL:  "https://t",
		SiteType: types.SiteTypeRent,
	})
	require.NoError(t, err)

	got, err := sites.Get(id)
	require.NoError(t, err)
	assert.Equal(t, sourceB, got.SourceID)
	assert.Equal(t, "https://t", got.SiteURL)
	assert.Equal(t, types.SiteTypeRent, got.SiteType)
}

func TestSiteNotFound(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)
	sites := store.Sites()

	err := sites.Update(999, &types.Site{
		SourceID: sourceID,
		SiteURL:  "https://s",
		SiteType: types.SiteTypeAuto,
	})
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, sites.Delete(999), types.ErrNotFound)
}

func TestDeleteChannelCascades(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceID := mustCreateSource(t, store, channelID)

	_, err := store.Sites().Create(&types.Site{
		SourceID: sourceID,
		SiteURL:  "https://s",
		SiteType: types.SiteTypeAuto,
	})
	require.NoError(t, err)

	require.NoError(t, store.Channels().Delete(channelID))

	sources, err := store.Sources().List()
	require.NoError(t, err)
	assert.Empty(t, sources, "sources of a deleted channel must be gone")

	sites, err := store.Sites().List()
	require.NoError(t, err)
	assert.Empty(t, sites, "sites must be gone transitively through the source")
}

func TestDeleteSourceCascades(t *testing.T) {
	store := openTestStore(t)
	channelID := mustCreateChannel(t, store, "news")
	sourceA := mustCreateSource(t, store, channelID)
	sourceB := mustCreateSource(t, store, channelID)

	_, err := store.Sites().Create(&types.Site{
		SourceID: sourceA,
		SiteURL:  "https://a",
		SiteType: types.SiteTypeAuto,
	})
	require.NoError(t, err)
	kept, err := store.Sites().Create(&types.Site{
		SourceID: sourceB,
		SiteURL:  "https://b",
		SiteType: types.SiteTypeFree,
	})
	require.NoError(t, err)

	require.NoError(t, store.Sources().Delete(sourceA))

	// Only the deleted source's sites are removed; the channel and the
	// sibling source are untouched.
	sites, err := store.Sites().List()
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, kept, sites[0].SiteID)

	_, err = store.Channels().Get(channelID)
	assert.NoError(t, err)
}
