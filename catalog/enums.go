package catalog

import "github.com/reoring/catalogmodel/enum"

// The catalog API is inconsistent about the case of these values; lookups
// ignore case and output keeps the declared payload.
var (
	AlbumType = enum.MustFromNames("AlbumType", "album single compilation")

	AlbumGroup = enum.MustFromNames("AlbumGroup", "album single compilation appears_on")

	ReleaseDatePrecision = enum.MustFromNames("ReleaseDatePrecision", "year month day")

	CopyrightType = enum.MustNew("CopyrightType",
		enum.Pair{Name: "copyright", Value: "C"},
		enum.Pair{Name: "performance", Value: "P"},
	)
)
