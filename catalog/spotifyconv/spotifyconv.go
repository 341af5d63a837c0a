// Package spotifyconv turns objects of the github.com/zmb3/spotify/v2 client
// into catalog records, so code already using that client can share the
// record rendering and error model.
package spotifyconv

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/zmb3/spotify/v2"

	cm "github.com/reoring/catalogmodel"
	"github.com/reoring/catalogmodel/catalog"
	"github.com/reoring/catalogmodel/source"
)

func Category(ctx context.Context, c spotify.Category) (*cm.Record, error) {
	return convert(ctx, catalog.Category, c)
}

func FullAlbum(ctx context.Context, a spotify.FullAlbum) (*cm.Record, error) {
	return convert(ctx, catalog.FullAlbum, a)
}

func SavedAlbum(ctx context.Context, a spotify.SavedAlbum) (*cm.Record, error) {
	return convert(ctx, catalog.SavedAlbum, a)
}

func SimpleTrack(ctx context.Context, t spotify.SimpleTrack) (*cm.Record, error) {
	return convert(ctx, catalog.SimpleTrack, t)
}

// convert re-encodes v and builds a record of s from it. The client leaves
// fields it does not model out of its output and renders absent strings as "",
// so both are mapped to null first.
func convert(ctx context.Context, s *cm.Schema, v any) (*cm.Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	raw, err := source.JSONBytes(b)
	if err != nil {
		return nil, err
	}
	if o, ok := raw.(*source.Object); ok {
		fill(o, s)
	}
	return s.FromMapping(ctx, raw)
}

func fill(o *source.Object, s *cm.Schema) {
	for _, name := range s.Fields() {
		ft, _ := s.FieldType(name)
		v, ok := o.Get(name)
		if !ok {
			o.Set(name, nil)
			continue
		}
		if str, isStr := v.(string); isStr && str == "" && zeroIsAbsent(ft) {
			o.Set(name, nil)
			continue
		}
		elem := ft.Elem()
		if elem == nil {
			continue
		}
		switch t := v.(type) {
		case *source.Object:
			fill(t, elem)
		case []any:
			for _, it := range t {
				if obj, ok := it.(*source.Object); ok {
					fill(obj, elem)
				}
			}
		}
	}
}

func zeroIsAbsent(ft cm.FieldType) bool {
	return ft.Kind() == "timestamp" || strings.HasPrefix(ft.Kind(), "enum<")
}
