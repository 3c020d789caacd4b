/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/ul"
)

func TestDefaultLocalTags(t *testing.T) {
	d, err := NewDefaultLocalTagDictionary()
	require.NoError(t, err)
	assert.Equal(t, len(DefaultLocalTagItems()), d.Len())

	it, ok := d.Lookup(0x3201)
	require.True(t, ok)
	assert.Equal(t, "PictureEssenceCoding", it.Name)
	assert.True(t, it.EssenceCoding)
	assert.Equal(t, "06.0e.2b.34.01.01.01.02.04.01.06.01.00.00.00.00", it.UL.String())

	it, ok = d.Lookup(0x3D06)
	require.True(t, ok)
	assert.True(t, it.EssenceCoding)

	it, ok = d.Lookup(0x4801)
	require.True(t, ok)
	assert.Equal(t, "GenericTrack", it.Set)
	assert.False(t, it.EssenceCoding)

	_, ok = d.Lookup(0xFFFF)
	assert.False(t, ok)

	coding := 0
	for _, it := range d.Items() {
		if it.EssenceCoding {
			coding++
		}
	}
	assert.Equal(t, 2, coding)
}

func TestLocalTagDuplicates(t *testing.T) {
	a := ul.MustParse("06.0e.2b.34.01.01.01.02.01.07.01.01.00.00.00.00")
	b := ul.MustParse("06.0e.2b.34.01.01.01.02.01.04.01.03.00.00.00.00")

	d, err := NewLocalTagDictionary(
		LocalTagItem{Tag: 0x4801, Name: "TrackID", UL: a},
		LocalTagItem{Tag: 0x4801, Name: "TrackID", UL: a},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	_, err = NewLocalTagDictionary(
		LocalTagItem{Tag: 0x4801, Name: "TrackID", UL: a},
		LocalTagItem{Tag: 0x4801, Name: "TrackNumber", UL: b},
	)
	assert.True(t, errors.IsDuplicateKeyConflict(err))
	assert.Contains(t, err.Error(), "0x4801")
}
