/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package klvregistry_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suparena/klvregistry"
	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/dictionary"
	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/metric"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/ul"
)

var (
	contentStorageUL = ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.18.00")
	prefaceUL        = ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.2f.00")
)

func newResolver(t *testing.T, opts ...klvregistry.Option) *klvregistry.Resolver {
	t.Helper()
	r, err := klvregistry.New(opts...)
	require.NoError(t, err)
	return r
}

func variantByName(t *testing.T, name string) codec.Variant {
	t.Helper()
	for _, v := range codec.DefaultVariants() {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("no variant %s", name)
	return codec.Variant{}
}

func TestResolveShapes(t *testing.T) {
	r := newResolver(t)

	res, err := r.Resolve(contentStorageUL.Bytes(), klvregistry.ExpectMetadata)
	require.NoError(t, err)
	assert.Equal(t, klvregistry.ShapeResolution{UL: contentStorageUL, Shape: registry.ContentStorage, Name: "ContentStorage"}, res)

	counts := map[registry.Shape]int{}
	for _, e := range registry.DefaultShapeEntries() {
		res, err := r.Resolve(e.UL.Bytes(), klvregistry.ExpectMetadata)
		require.NoError(t, err)

		sr, ok := res.(klvregistry.ShapeResolution)
		require.True(t, ok, "%s resolved to %v", e.Name, res)
		assert.Equal(t, e.Shape, sr.Shape, e.Name)
		assert.Equal(t, e.UL, sr.Key())
		counts[sr.Shape]++
	}
	assert.Equal(t, 4, counts[registry.Track])
	assert.Equal(t, 11, counts[registry.PartitionPack])
	assert.Equal(t, 7, counts[registry.GenericDescriptor])
}

func TestResolveCodecs(t *testing.T) {
	r := newResolver(t)

	for _, v := range codec.DefaultVariants() {
		res, err := r.Resolve(v.UL.Bytes(), klvregistry.ExpectEssenceCoding)
		require.NoError(t, err)
		assert.Equal(t, klvregistry.CodecResolution{UL: v.UL, Codec: v.Codec, Variant: v.Name}, res, v.Name)
	}

	tests := []struct {
		variant string
		want    codec.Codec
	}{
		{"MPEG2_HL_422_I", codec.MPEG2},
		{"AVC_INTRA", codec.H264},
		{"PCM_S16LE_1", codec.None},
		{"PCM_S16LE_2", codec.None},
		{"PCM_S16LE_3", codec.None},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			got, ok := r.LookupCodec(variantByName(t, tt.variant).UL)
			require.True(t, ok, "raw variants are found, not missing")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodecLabelOutsideEssenceContextIsUnknown(t *testing.T) {
	r := newResolver(t)
	key := variantByName(t, "JPEG2000").UL

	res, err := r.Resolve(key.Bytes(), klvregistry.ExpectMetadata)
	require.NoError(t, err)
	assert.Equal(t, klvregistry.Unknown{UL: key}, res)
}

func TestResolveUnknown(t *testing.T) {
	r := newResolver(t)

	for _, key := range []ul.UL{prefaceUL, contentStorageUL.WithVersion(0x02), {}} {
		for _, expect := range []klvregistry.Expectation{klvregistry.ExpectMetadata, klvregistry.ExpectEssenceCoding} {
			res, err := r.Resolve(key.Bytes(), expect)
			require.NoError(t, err)
			assert.Equal(t, klvregistry.Unknown{UL: key}, res)
		}
	}
}

func TestResolveInvalidLength(t *testing.T) {
	r := newResolver(t)

	for _, n := range []int{0, 1, 15, 17, 32} {
		res, err := r.Resolve(make([]byte, n), klvregistry.ExpectMetadata)
		assert.Nil(t, res)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidLength(err), "length %d", n)

		var le *errors.InvalidLengthError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, n, le.Length)
	}
}

func TestShapeTakesPrecedence(t *testing.T) {
	catalog, err := codec.NewCatalog(codec.Variant{Name: "Clash", UL: contentStorageUL, Codec: codec.DV})
	require.NoError(t, err)
	r := newResolver(t, klvregistry.WithCatalog(catalog))

	res := r.ResolveUL(contentStorageUL, klvregistry.ExpectEssenceCoding)
	sr, ok := res.(klvregistry.ShapeResolution)
	require.True(t, ok, "got %v", res)
	assert.Equal(t, registry.ContentStorage, sr.Shape)

	got, ok := r.LookupCodec(contentStorageUL)
	assert.True(t, ok)
	assert.Equal(t, codec.DV, got)
}

func TestWithShapeRegistryReplacesDefaults(t *testing.T) {
	shapes, err := registry.NewShapeRegistry(registry.ShapeEntry{Name: "Preface", UL: prefaceUL, Shape: registry.ContentStorage})
	require.NoError(t, err)
	r := newResolver(t, klvregistry.WithShapeRegistry(shapes))

	got, ok := r.LookupShape(prefaceUL)
	assert.True(t, ok)
	assert.Equal(t, registry.ContentStorage, got)

	_, ok = r.LookupShape(contentStorageUL)
	assert.False(t, ok)
	assert.Same(t, shapes, r.Shapes())
}

func TestWithDictionary(t *testing.T) {
	trackUL := ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00")
	j2kUL := ul.MustParse("06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04")
	d := &dictionary.Dictionary{
		Name: "vendor-x",
		Shapes: []registry.ShapeEntry{
			{Name: "VendorTrack", UL: trackUL, Shape: registry.Track},
			// identical duplicate of a default entry is an alias
			{Name: "ContentStorageAlias", UL: contentStorageUL, Shape: registry.ContentStorage},
		},
		Variants: []codec.Variant{{Name: "VendorJ2K", UL: j2kUL, Codec: codec.JPEG2000}},
	}

	r := newResolver(t, klvregistry.WithDictionary(d))

	assert.Equal(t, klvregistry.ShapeResolution{UL: trackUL, Shape: registry.Track, Name: "VendorTrack"},
		r.ResolveUL(trackUL, klvregistry.ExpectMetadata))
	assert.Equal(t, klvregistry.CodecResolution{UL: j2kUL, Codec: codec.JPEG2000, Variant: "VendorJ2K"},
		r.ResolveUL(j2kUL, klvregistry.ExpectEssenceCoding))
	assert.Equal(t, "ContentStorage", r.ResolveUL(contentStorageUL, klvregistry.ExpectMetadata).(klvregistry.ShapeResolution).Name)
	assert.Equal(t, len(registry.DefaultShapeEntries())+1, r.Shapes().Len())
	assert.Equal(t, 1, r.Shapes().Aliases())
}

func TestWithDictionaryConflict(t *testing.T) {
	tests := []struct {
		name string
		dict *dictionary.Dictionary
	}{
		{
			name: "shape",
			dict: &dictionary.Dictionary{Shapes: []registry.ShapeEntry{{Name: "Bad", UL: contentStorageUL, Shape: registry.Sequence}}},
		},
		{
			name: "codec",
			dict: &dictionary.Dictionary{Variants: []codec.Variant{{Name: "Bad", UL: variantByName(t, "AC3").UL, Codec: codec.MP2}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := klvregistry.New(klvregistry.WithDictionary(tt.dict))
			require.Error(t, err)
			assert.True(t, errors.IsDuplicateKeyConflict(err))
		})
	}
}

func TestLocalTags(t *testing.T) {
	r := newResolver(t)

	for _, tag := range []uint16{0x3201, 0x3D06} {
		assert.Equal(t, klvregistry.ExpectEssenceCoding, r.ExpectationForLocalTag(tag))
	}
	assert.Equal(t, klvregistry.ExpectMetadata, r.ExpectationForLocalTag(0x3C0A))
	assert.Equal(t, klvregistry.ExpectMetadata, r.ExpectationForLocalTag(0xFFFF))

	it, ok := r.LookupLocalTag(0x3201)
	require.True(t, ok)
	assert.Equal(t, "PictureEssenceCoding", it.Name)
	assert.True(t, it.EssenceCoding)
}

func TestDefault(t *testing.T) {
	a, err := klvregistry.Default()
	require.NoError(t, err)
	b, err := klvregistry.Default()
	require.NoError(t, err)
	assert.Same(t, a, b)

	got, ok := a.LookupShape(contentStorageUL)
	assert.True(t, ok)
	assert.Equal(t, registry.ContentStorage, got)
}

func TestConcurrentResolve(t *testing.T) {
	r := newResolver(t)
	entries := registry.DefaultShapeEntries()
	variants := codec.DefaultVariants()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				e := entries[i%len(entries)]
				if res := r.ResolveUL(e.UL, klvregistry.ExpectMetadata); res != (klvregistry.ShapeResolution{UL: e.UL, Shape: e.Shape, Name: e.Name}) {
					errs <- assert.AnError
					return
				}
				v := variants[i%len(variants)]
				if c, ok := r.LookupCodec(v.UL); !ok || c != v.Codec {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	assert.Empty(t, errs)
}

func TestResolveLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newResolver(t, klvregistry.WithLogger(zap.New(core)))

	_, err := r.Resolve(make([]byte, 15), klvregistry.ExpectMetadata)
	require.Error(t, err)
	r.ResolveUL(prefaceUL, klvregistry.ExpectMetadata)

	warns := logs.FilterMessage("invalid KLV key").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, int64(15), warns[0].ContextMap()["length"])

	unknown := logs.FilterMessage("unknown KLV key").All()
	require.Len(t, unknown, 1)
	assert.Equal(t, zapcore.DebugLevel, unknown[0].Level)
	assert.Equal(t, prefaceUL.String(), unknown[0].ContextMap()["ul"])
}

func TestResolveMetrics(t *testing.T) {
	m, err := metric.NewMetrics(nil)
	require.NoError(t, err)
	r := newResolver(t, klvregistry.WithMetrics(m))

	r.ResolveUL(contentStorageUL, klvregistry.ExpectMetadata)
	r.ResolveUL(variantByName(t, "DV_25_PAL").UL, klvregistry.ExpectEssenceCoding)
	r.ResolveUL(prefaceUL, klvregistry.ExpectMetadata)
	_, _ = r.Resolve([]byte{0x06}, klvregistry.ExpectMetadata)
	_, _ = r.Resolve([]byte{0x06}, klvregistry.ExpectMetadata)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(metric.OutcomeShape)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(metric.OutcomeCodec)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(metric.OutcomeUnknown)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(metric.OutcomeInvalidKey)))

	assert.Equal(t, float64(len(codec.DefaultVariants())), testutil.ToFloat64(m.RegistryEntries.WithLabelValues(codec.CatalogTableName)))
	assert.Equal(t, float64(r.Shapes().Len()), testutil.ToFloat64(m.RegistryEntries.WithLabelValues(registry.ShapeTableName)))
}

func TestResolutionString(t *testing.T) {
	r := newResolver(t)

	assert.Equal(t, "06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.18.00 shape ContentStorage (ContentStorage)",
		r.ResolveUL(contentStorageUL, klvregistry.ExpectMetadata).String())
	assert.Equal(t, "06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.2f.00 unknown",
		r.ResolveUL(prefaceUL, klvregistry.ExpectMetadata).String())
	assert.Equal(t, "essence-coding", klvregistry.ExpectEssenceCoding.String())
}
