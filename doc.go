package catalogmodel

// Package catalogmodel turns loosely typed JSON objects from a music-catalog
// web API into records described by declarative schemas, and renders them
// back as JSON or as plain Go values.
//
// It provides:
//
// - Schemas built with Object(...).Field(...).Build(), with defaults, post-init hooks and an unknown-key policy
// - Records and Lists that keep declared field order and any extra attributes in input order
// - Field types for enumerations (package enum) and timestamps (package timestamp)
// - An Encoder that writes records, members and timestamps nested at any depth
// - A stable error model via Issues (JSON Pointer, code, message) and a warning channel for unknown attributes
//
// Design policy:
// - Unknown keys never fail construction unless the schema is strict; they are reported to a WarningHandler.
// - Extra attributes are omitted from Builtin and JSON output unless WithExtras or Encoder.IncludeExtras is used.
// - String and Pretty output is diagnostic only.
//
// Typical usage:
//
//  image := catalogmodel.Object("Image").
//      Field("height", catalogmodel.Int()).Optional().
//      Field("url", catalogmodel.String()).
//      Field("width", catalogmodel.Int()).Optional().
//      MustBuild()
//
//  rec, err := image.FromJSON(ctx, data)
//  out, err := rec.JSON()
//
// Warnings go to the package zap logger unless a handler is installed:
//
//  var wc catalogmodel.WarningCollector
//  ctx = catalogmodel.WithWarningHandler(ctx, &wc)
