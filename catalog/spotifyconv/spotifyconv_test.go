package spotifyconv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	cm "github.com/reoring/catalogmodel"
	"github.com/reoring/catalogmodel/catalog/spotifyconv"
)

func TestCategory(t *testing.T) {
	c := spotify.Category{
		Endpoint: "https://api.spotify.com/v1/browse/categories/party",
		Icons:    []spotify.Image{{Height: 274, Width: 274, URL: "https://t.scdn.co/images/party.jpg"}},
		ID:       "party",
		Name:     "Party",
	}
	r, err := spotifyconv.Category(cm.WithoutWarnings(context.Background()), c)
	require.NoError(t, err)

	id, _ := r.GetString("id")
	assert.Equal(t, "party", id)
	icons, ok := r.GetList("icons")
	require.True(t, ok)
	require.Equal(t, 1, icons.Len())
	h, _ := icons.At(0).GetInt("height")
	assert.Equal(t, 274, h)

	out, err := r.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"href": "https://api.spotify.com/v1/browse/categories/party",
		"icons": [{"height": 274, "url": "https://t.scdn.co/images/party.jpg", "width": 274}],
		"id": "party",
		"name": "Party"
	}`, out)
}

func TestSavedAlbum(t *testing.T) {
	a := spotify.SavedAlbum{
		AddedAt: "2019-08-24T14:15:22Z",
		FullAlbum: spotify.FullAlbum{
			SimpleAlbum: spotify.SimpleAlbum{Name: "Night Drive", ID: "2up3OPMp9Tb4dAKM2erWXQ", AlbumType: "ALBUM"},
			Genres:      []string{"synthwave"},
			Popularity:  57,
		},
	}
	r, err := spotifyconv.SavedAlbum(cm.WithoutWarnings(context.Background()), a)
	require.NoError(t, err)

	added, ok := r.GetTimestamp("added_at")
	require.True(t, ok)
	assert.Equal(t, "2019-08-24T14:15:22Z", added.Format())

	album, ok := r.GetRecord("album")
	require.True(t, ok)
	b := album.Builtin()
	assert.Equal(t, "Night Drive", b["name"])
	assert.Equal(t, "album", b["album_type"])
	assert.Equal(t, 57, b["popularity"])
	assert.Equal(t, []any{"synthwave"}, b["genres"])
	assert.Nil(t, b["release_date_precision"])
}
