package catalogmodel_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	cm "github.com/reoring/catalogmodel"
)

// ---- Helpers ----

func benchSchemas(tb testing.TB) (*cm.Schema, *cm.Schema) {
	tb.Helper()
	image, err := cm.Object("Image").
		Field("height", cm.Int()).Optional().
		Field("url", cm.String()).
		Field("width", cm.Int()).Optional().
		Build()
	if err != nil {
		tb.Fatalf("schema build failed: %v", err)
	}
	page, err := cm.Object("ImagePaging").
		Field("items", cm.ListOf(image)).
		Field("total", cm.Int()).
		Build()
	if err != nil {
		tb.Fatalf("schema build failed: %v", err)
	}
	return image, page
}

// imagePageJSON returns {"items":[{"height":0,"url":"u0","width":0,"x0":"v0",...},...],"total":n}.
func imagePageJSON(n, extras int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"items":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		s := strconv.Itoa(i)
		buf.WriteString(`{"height":` + s + `,"url":"u` + s + `","width":` + s)
		for j := 0; j < extras; j++ {
			js := strconv.Itoa(j)
			buf.WriteString(`,"x` + js + `":"v` + js + `"`)
		}
		buf.WriteByte('}')
	}
	buf.WriteString(`],"total":` + strconv.Itoa(n) + `}`)
	return buf.Bytes()
}

// ---- Benchmarks ----

func BenchmarkFromJSON_Page(b *testing.B) {
	_, page := benchSchemas(b)
	data := imagePageJSON(100, 0)
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := page.FromJSON(ctx, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromJSON_PageWithExtras(b *testing.B) {
	_, page := benchSchemas(b)
	data := imagePageJSON(100, 8)
	ctx := cm.WithoutWarnings(context.Background())
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := page.FromJSON(ctx, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecord_JSON(b *testing.B) {
	_, page := benchSchemas(b)
	r, err := page.FromJSON(context.Background(), imagePageJSON(100, 0))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.JSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecord_Builtin(b *testing.B) {
	_, page := benchSchemas(b)
	r, err := page.FromJSON(context.Background(), imagePageJSON(100, 0))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Builtin()
	}
}
