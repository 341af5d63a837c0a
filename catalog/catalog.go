// Package catalog declares the record schemas of the music-catalog API:
// albums, tracks, artists, categories and their paging objects.
package catalog

import (
	"slices"

	"github.com/samber/lo"

	cm "github.com/reoring/catalogmodel"
)

// Image is artwork in one size. Dimensions are missing for some images.
var Image = cm.Object("Image").
	Field("height", cm.Int()).Optional().
	Field("url", cm.String()).
	Field("width", cm.Int()).Optional().
	MustBuild()

var Copyright = cm.Object("Copyright").
	Field("text", cm.String()).
	Field("type", cm.Enum(CopyrightType)).
	MustBuild()

// item holds the fields shared by every addressable resource.
var item = cm.Object("Item").
	Field("href", cm.String()).
	Field("id", cm.String()).
	Field("type", cm.String()).
	Field("uri", cm.String()).
	MustBuild()

var SimpleArtist = cm.Object("SimpleArtist").Extends(item).
	Field("external_urls", cm.Any()).
	Field("name", cm.String()).
	MustBuild()

// SimpleTrack is a track without album information. available_markets is
// only present when no market was requested.
var SimpleTrack = cm.Object("SimpleTrack").Extends(item).
	Field("artists", cm.ListOf(SimpleArtist)).
	Field("disc_number", cm.Int()).
	Field("duration_ms", cm.Int()).
	Field("explicit", cm.Bool()).
	Field("external_urls", cm.Any()).
	Field("name", cm.String()).
	Field("preview_url", cm.String()).Optional().
	Field("track_number", cm.Int()).
	Field("available_markets", cm.Array(cm.String())).Optional().
	Field("is_local", cm.Bool()).Optional().
	Field("is_playable", cm.Bool()).Optional().
	MustBuild()

// Paging is a cursor over items; subtypes redeclare items with their record type.
var Paging = cm.Object("Paging").
	Field("href", cm.String()).
	Field("items", cm.Array(cm.Any())).
	Field("limit", cm.Int()).
	Field("next", cm.String()).Optional().
	MustBuild()

var OffsetPaging = cm.Object("OffsetPaging").Extends(Paging).
	Field("offset", cm.Int()).
	Field("previous", cm.String()).Optional().
	Field("total", cm.Int()).
	MustBuild()

var SimpleTrackPaging = pagingOf("SimpleTrackPaging", SimpleTrack)

var Album = cm.Object("Album").Extends(item).
	Field("album_type", cm.Enum(AlbumType)).
	Field("artists", cm.ListOf(SimpleArtist)).
	Field("external_urls", cm.Any()).
	Field("images", cm.ListOf(Image)).
	Field("name", cm.String()).
	Field("release_date", cm.String()).
	Field("release_date_precision", cm.Enum(ReleaseDatePrecision)).
	Field("total_tracks", cm.Int()).
	MustBuild()

// FullAlbum is the complete album object. album_group is undocumented and
// is_playable seems to be present only when true.
var FullAlbum = cm.Object("FullAlbum").Extends(Album).
	Field("album_group", cm.Enum(AlbumGroup)).Optional().
	Field("copyrights", cm.ListOf(Copyright)).
	Field("external_ids", cm.Any()).
	Field("genres", cm.Array(cm.String())).
	Field("label", cm.String()).
	Field("popularity", cm.Int()).
	Field("tracks", cm.RecordOf(SimpleTrackPaging)).
	Field("available_markets", cm.Array(cm.String())).Optional().
	Field("is_playable", cm.Bool()).Optional().
	MustBuild()

// SavedAlbum is an album in the user's library.
var SavedAlbum = cm.Object("SavedAlbum").
	Field("added_at", cm.Timestamp()).
	Field("album", cm.RecordOf(FullAlbum)).
	MustBuild()

var SavedAlbumPaging = pagingOf("SavedAlbumPaging", SavedAlbum)

// Category is a browse tag such as "party" or "mood".
var Category = cm.Object("Category").
	Field("href", cm.String()).
	Field("icons", cm.ListOf(Image)).
	Field("id", cm.String()).
	Field("name", cm.String()).
	MustBuild()

var CategoryPaging = pagingOf("CategoryPaging", Category)

func pagingOf(name string, s *cm.Schema) *cm.Schema {
	return cm.Object(name).Extends(OffsetPaging).
		Field("items", cm.ListOf(s)).
		MustBuild()
}

var registry = func() map[string]*cm.Schema {
	all := []*cm.Schema{
		Image, Copyright, SimpleArtist, SimpleTrack, Paging, OffsetPaging,
		SimpleTrackPaging, Album, FullAlbum, SavedAlbum, SavedAlbumPaging,
		Category, CategoryPaging,
	}
	return lo.SliceToMap(all, func(s *cm.Schema) (string, *cm.Schema) { return s.Name(), s })
}()

// Lookup returns the schema registered under name, e.g. "FullAlbum".
func Lookup(name string) (*cm.Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns every registered schema name, sorted.
func Names() []string {
	ns := lo.Keys(registry)
	slices.Sort(ns)
	return ns
}
