/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dictionary

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/datastore/mock"
	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/storagemodels"
	"github.com/suparena/klvregistry/ul"
)

func vendorDictionary() *Dictionary {
	return &Dictionary{
		Name: "vendor-x",
		Shapes: []registry.ShapeEntry{
			{Name: "VendorTimelineTrack", UL: ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00"), Shape: registry.Track},
			{Name: "VendorDescriptor", UL: ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7f.00"), Shape: registry.GenericDescriptor},
		},
		Variants: []codec.Variant{
			{Name: "VendorJ2K", UL: ul.MustParse("06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04"), Codec: codec.JPEG2000},
			{Name: "VendorPCM", UL: ul.MustParse("06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.02.00.00.01"), Codec: codec.None},
		},
	}
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile("testdata/vendor.yaml")
	require.NoError(t, err)

	if diff := cmp.Diff(vendorDictionary(), d); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, d.Len())
}

func TestLoadFileNamesAfterFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/studio.yml"
	require.NoError(t, writeFile(path, "codecs:\n  - name: X\n    ul: 06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.00.00.09\n    codec: dv\n"))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "studio", d.Name)
	require.Len(t, d.Variants, 1)
	assert.Equal(t, codec.DV, d.Variants[0].Codec)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	d, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "bad ul",
			doc:   "shapes:\n  - name: A\n    ul: 06.0e.2b\n    shape: Track\n",
			field: "shapes[0].ul",
		},
		{
			name:  "unknown shape",
			doc:   "shapes:\n  - name: A\n    ul: 06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00\n    shape: Preface\n",
			field: "shapes[0].shape",
		},
		{
			name:  "missing name",
			doc:   "codecs:\n  - ul: 06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04\n    codec: h264\n",
			field: "codecs[0].name",
		},
		{
			name:  "unknown codec",
			doc:   "codecs:\n  - name: A\n    ul: 06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04\n    codec: hevc\n",
			field: "codecs[0].codec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)

			var ve *errors.ValidationError
			require.True(t, stderrors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("name: x\nlabels: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "labels")
}

func TestMarshalRoundTrip(t *testing.T) {
	want := vendorDictionary()

	data, err := Marshal(want)
	require.NoError(t, err)

	got, err := Load(strings.NewReader(string(data)))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	a := &Dictionary{Name: "a", Shapes: vendorDictionary().Shapes}
	b := &Dictionary{Name: "b", Variants: vendorDictionary().Variants}

	m := Merge("both", a, nil, b)
	assert.Equal(t, "both", m.Name)
	assert.Len(t, m.Shapes, 2)
	assert.Len(t, m.Variants, 2)
}

func TestPublishAndLoadFromStore(t *testing.T) {
	ctx := context.Background()
	store := mock.NewLabelStore()

	require.NoError(t, Publish(ctx, store, vendorDictionary()))
	require.NoError(t, Publish(ctx, store, &Dictionary{
		Name:   "other",
		Shapes: []registry.ShapeEntry{{Name: "Other", UL: ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7c.00"), Shape: registry.Sequence}},
	}))
	assert.Equal(t, 5, store.Count())

	d, err := LoadFromStore(ctx, store, "labels", "vendor-x")
	require.NoError(t, err)
	if diff := cmp.Diff(vendorDictionary(), d); diff != "" {
		t.Errorf("LoadFromStore mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishNeedsName(t *testing.T) {
	d := vendorDictionary()
	d.Name = ""

	err := Publish(context.Background(), mock.NewLabelStore(), d)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadFromStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("stream error", func(t *testing.T) {
		boom := stderrors.New("throttled")
		store := mock.NewLabelStore().WithQueryError(boom)

		_, err := LoadFromStore(ctx, store, "labels", "vendor-x")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("bad record", func(t *testing.T) {
		store := mock.NewLabelStore()
		require.NoError(t, store.Put(ctx, storagemodels.LabelRecord{
			ID:         "odd:1",
			Dictionary: "vendor-x",
			Kind:       "odd",
			Name:       "Odd",
			UL:         "06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04",
		}))

		_, err := LoadFromStore(ctx, store, "labels", "vendor-x")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestLoadFromStoreReleasesStream(t *testing.T) {
	ctx := context.Background()
	store := mock.NewLabelStore()
	require.NoError(t, store.Put(ctx, storagemodels.LabelRecord{
		ID:         "vendor-x#odd:0",
		Dictionary: "vendor-x",
		Kind:       "odd",
		UL:         "06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04",
	}))
	for i := 0; i < 300; i++ {
		label := fmt.Sprintf("06.0e.2b.34.02.53.01.01.0d.0e.0e.0e.%02x.%02x.00.00", i>>8, i&0xff)
		require.NoError(t, store.Put(ctx, storagemodels.LabelRecord{
			ID:         storagemodels.LabelID("vendor-x", storagemodels.KindShape, label),
			Dictionary: "vendor-x",
			Kind:       storagemodels.KindShape,
			Name:       fmt.Sprintf("Track%d", i),
			UL:         label,
			Tag:        "Track",
		}))
	}

	before := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		_, err := LoadFromStore(ctx, store, "labels", "vendor-x")
		require.Error(t, err)
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "stream producers still running")
}

func TestPublishSameLabelInTwoDictionaries(t *testing.T) {
	ctx := context.Background()
	store := mock.NewLabelStore()
	shared := ul.MustParse("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00")

	require.NoError(t, Publish(ctx, store, &Dictionary{
		Name:   "vendor-a",
		Shapes: []registry.ShapeEntry{{Name: "TrackA", UL: shared, Shape: registry.Track}},
	}))
	require.NoError(t, Publish(ctx, store, &Dictionary{
		Name:   "vendor-b",
		Shapes: []registry.ShapeEntry{{Name: "TrackB", UL: shared, Shape: registry.Track}},
	}))
	assert.Equal(t, 2, store.Count())

	a, err := LoadFromStore(ctx, store, "labels", "vendor-a")
	require.NoError(t, err)
	require.Len(t, a.Shapes, 1)
	assert.Equal(t, "TrackA", a.Shapes[0].Name)

	b, err := LoadFromStore(ctx, store, "labels", "vendor-b")
	require.NoError(t, err)
	require.Len(t, b.Shapes, 1)
	assert.Equal(t, "TrackB", b.Shapes[0].Name)
}

func TestRecords(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	recs := vendorDictionary().Records(now)

	require.Len(t, recs, 4)
	assert.Equal(t, storagemodels.LabelRecord{
		ID:         "vendor-x#shape:06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00",
		Dictionary: "vendor-x",
		Kind:       storagemodels.KindShape,
		Name:       "VendorTimelineTrack",
		UL:         "06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.7b.00",
		Tag:        "Track",
		UpdatedAt:  "2025-06-01T08:30:00.000Z",
	}, recs[0])
	assert.Equal(t, "none", recs[3].Tag)
}
