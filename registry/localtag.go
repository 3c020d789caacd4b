/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/ul"
)

// LocalTagTableName is the table name reported in local-tag conflict errors.
const LocalTagTableName = "localtags"

// LocalTagItem describes one item of a local set: its 2-byte local tag, the
// full item label and the set it belongs to. EssenceCoding marks items whose
// value is itself an essence-coding label to be looked up in the codec catalog.
type LocalTagItem struct {
	Tag           uint16
	Name          string
	Set           string
	UL            ul.UL
	EssenceCoding bool
}

// LocalTagDictionary maps local tags to item definitions.
type LocalTagDictionary struct {
	byTag map[uint16]LocalTagItem
	order []uint16
}

// NewLocalTagDictionary builds a dictionary. A tag defined twice with
// different item labels is a DuplicateKeyConflictError.
func NewLocalTagDictionary(items ...LocalTagItem) (*LocalTagDictionary, error) {
	d := &LocalTagDictionary{byTag: make(map[uint16]LocalTagItem, len(items))}
	for _, it := range items {
		if existing, exists := d.byTag[it.Tag]; exists {
			if existing.UL == it.UL {
				continue
			}
			return nil, errors.NewDuplicateKeyConflictError(LocalTagTableName, fmt.Sprintf("0x%04X", it.Tag), existing.UL.String(), it.UL.String())
		}
		d.byTag[it.Tag] = it
		d.order = append(d.order, it.Tag)
	}
	return d, nil
}

// NewDefaultLocalTagDictionary builds a dictionary from DefaultLocalTagItems.
func NewDefaultLocalTagDictionary() (*LocalTagDictionary, error) {
	return NewLocalTagDictionary(DefaultLocalTagItems()...)
}

// Lookup returns the item for a local tag.
func (d *LocalTagDictionary) Lookup(tag uint16) (LocalTagItem, bool) {
	it, ok := d.byTag[tag]
	return it, ok
}

// Len returns the number of tags.
func (d *LocalTagDictionary) Len() int {
	return len(d.byTag)
}

// Items returns the items in registration order.
func (d *LocalTagDictionary) Items() []LocalTagItem {
	out := make([]LocalTagItem, 0, len(d.order))
	for _, tag := range d.order {
		out = append(out, d.byTag[tag])
	}
	return out
}

func tag(t uint16, set, name, label string) LocalTagItem {
	return LocalTagItem{Tag: t, Name: name, Set: set, UL: ul.MustParse(label)}
}

func codingTag(t uint16, set, name, label string) LocalTagItem {
	it := tag(t, set, name, label)
	it.EssenceCoding = true
	return it
}

// DefaultLocalTagItems returns the static local tags of the header metadata
// sets resolved by the shape registry.
func DefaultLocalTagItems() []LocalTagItem {
	return []LocalTagItem{
		tag(0x3C0A, "InterchangeObject", "InstanceUID", "06.0e.2b.34.01.01.01.01.01.01.15.02.00.00.00.00"),

		tag(0x3B02, "Preface", "LastModifiedDate", "06.0e.2b.34.01.01.01.02.07.02.01.10.02.04.00.00"),
		tag(0x3B05, "Preface", "Version", "06.0e.2b.34.01.01.01.02.03.01.02.01.05.00.00.00"),
		tag(0x3B06, "Preface", "Identifications", "06.0e.2b.34.01.01.01.02.06.01.01.04.06.04.00.00"),
		tag(0x3B03, "Preface", "ContentStorage", "06.0e.2b.34.01.01.01.02.06.01.01.04.02.01.00.00"),
		tag(0x3B09, "Preface", "OperationalPattern", "06.0e.2b.34.01.01.01.05.01.02.02.03.00.00.00.00"),
		tag(0x3B0A, "Preface", "EssenceContainers", "06.0e.2b.34.01.01.01.05.01.02.02.10.02.01.00.00"),
		tag(0x3B0B, "Preface", "DMSchemes", "06.0e.2b.34.01.01.01.05.01.02.02.10.02.02.00.00"),

		tag(0x3C09, "Identification", "ThisGenerationUID", "06.0e.2b.34.01.01.01.02.05.20.07.01.01.00.00.00"),
		tag(0x3C01, "Identification", "CompanyName", "06.0e.2b.34.01.01.01.02.05.20.07.01.02.01.00.00"),
		tag(0x3C02, "Identification", "ProductName", "06.0e.2b.34.01.01.01.02.05.20.07.01.03.01.00.00"),
		tag(0x3C04, "Identification", "VersionString", "06.0e.2b.34.01.01.01.02.05.20.07.01.05.01.00.00"),
		tag(0x3C05, "Identification", "ProductID", "06.0e.2b.34.01.01.01.02.05.20.07.01.07.00.00.00"),
		tag(0x3C06, "Identification", "ModificationDate", "06.0e.2b.34.01.01.01.02.07.02.01.10.02.03.00.00"),

		tag(0x1901, "ContentStorage", "Packages", "06.0e.2b.34.01.01.01.02.06.01.01.04.05.01.00.00"),
		tag(0x1902, "ContentStorage", "EssenceContainerData", "06.0e.2b.34.01.01.01.02.06.01.01.04.05.02.00.00"),

		tag(0x2701, "EssenceContainerData", "LinkedPackageUID", "06.0e.2b.34.01.01.01.02.06.01.01.06.01.00.00.00"),
		tag(0x3F07, "EssenceContainerData", "BodySID", "06.0e.2b.34.01.01.01.04.01.03.04.04.00.00.00.00"),

		tag(0x4401, "GenericPackage", "PackageUID", "06.0e.2b.34.01.01.01.01.01.01.15.10.00.00.00.00"),
		tag(0x4405, "GenericPackage", "PackageCreationDate", "06.0e.2b.34.01.01.01.02.07.02.01.10.01.03.00.00"),
		tag(0x4404, "GenericPackage", "PackageModifiedDate", "06.0e.2b.34.01.01.01.02.07.02.01.10.02.05.00.00"),
		tag(0x4403, "GenericPackage", "Tracks", "06.0e.2b.34.01.01.01.02.06.01.01.04.06.05.00.00"),
		tag(0x4701, "SourcePackage", "Descriptor", "06.0e.2b.34.01.01.01.02.06.01.01.04.02.03.00.00"),

		tag(0x4801, "GenericTrack", "TrackID", "06.0e.2b.34.01.01.01.02.01.07.01.01.00.00.00.00"),
		tag(0x4804, "GenericTrack", "TrackNumber", "06.0e.2b.34.01.01.01.02.01.04.01.03.00.00.00.00"),
		tag(0x4B01, "TimelineTrack", "EditRate", "06.0e.2b.34.01.01.01.02.05.30.04.05.00.00.00.00"),
		tag(0x4B02, "TimelineTrack", "Origin", "06.0e.2b.34.01.01.01.02.07.02.01.03.01.03.00.00"),
		tag(0x4803, "GenericTrack", "Sequence", "06.0e.2b.34.01.01.01.02.06.01.01.04.02.04.00.00"),

		tag(0x0201, "StructuralComponent", "DataDefinition", "06.0e.2b.34.01.01.01.02.04.07.01.00.00.00.00.00"),
		tag(0x0202, "StructuralComponent", "Duration", "06.0e.2b.34.01.01.01.02.07.02.02.01.01.03.00.00"),
		tag(0x1001, "Sequence", "StructuralComponents", "06.0e.2b.34.01.01.01.02.06.01.01.04.06.09.00.00"),

		tag(0x1201, "SourceClip", "StartPosition", "06.0e.2b.34.01.01.01.02.07.02.01.03.01.04.00.00"),
		tag(0x1101, "SourceClip", "SourcePackageID", "06.0e.2b.34.01.01.01.02.06.01.01.03.01.00.00.00"),
		tag(0x1102, "SourceClip", "SourceTrackID", "06.0e.2b.34.01.01.01.02.06.01.01.03.02.00.00.00"),

		tag(0x1501, "TimecodeComponent", "StartTimecode", "06.0e.2b.34.01.01.01.02.07.02.01.03.01.05.00.00"),
		tag(0x1502, "TimecodeComponent", "RoundedTimecodeBase", "06.0e.2b.34.01.01.01.02.04.04.01.01.02.06.00.00"),
		tag(0x1503, "TimecodeComponent", "DropFrame", "06.0e.2b.34.01.01.01.01.04.04.01.01.05.00.00.00"),

		tag(0x3F01, "MultipleDescriptor", "SubDescriptors", "06.0e.2b.34.01.01.01.04.06.01.01.04.06.0b.00.00"),
		tag(0x3006, "FileDescriptor", "LinkedTrackID", "06.0e.2b.34.01.01.01.05.06.01.01.03.05.00.00.00"),
		tag(0x3001, "FileDescriptor", "SampleRate", "06.0e.2b.34.01.01.01.01.04.06.01.01.00.00.00.00"),
		tag(0x3004, "FileDescriptor", "EssenceContainer", "06.0e.2b.34.01.01.01.02.06.01.01.04.01.02.00.00"),

		tag(0x320C, "GenericPictureEssenceDescriptor", "FrameLayout", "06.0e.2b.34.01.01.01.01.04.01.03.01.04.00.00.00"),
		tag(0x320D, "GenericPictureEssenceDescriptor", "VideoLineMap", "06.0e.2b.34.01.01.01.02.04.01.03.02.05.00.00.00"),
		tag(0x3203, "GenericPictureEssenceDescriptor", "StoredWidth", "06.0e.2b.34.01.01.01.01.04.01.05.02.02.00.00.00"),
		tag(0x3202, "GenericPictureEssenceDescriptor", "StoredHeight", "06.0e.2b.34.01.01.01.01.04.01.05.02.01.00.00.00"),
		tag(0x3209, "GenericPictureEssenceDescriptor", "DisplayWidth", "06.0e.2b.34.01.01.01.01.04.01.05.01.0c.00.00.00"),
		tag(0x3208, "GenericPictureEssenceDescriptor", "DisplayHeight", "06.0e.2b.34.01.01.01.01.04.01.05.01.0b.00.00.00"),
		tag(0x320E, "GenericPictureEssenceDescriptor", "AspectRatio", "06.0e.2b.34.01.01.01.01.04.01.01.01.01.00.00.00"),
		codingTag(0x3201, "GenericPictureEssenceDescriptor", "PictureEssenceCoding", "06.0e.2b.34.01.01.01.02.04.01.06.01.00.00.00.00"),

		tag(0x3301, "CDCIEssenceDescriptor", "ComponentDepth", "06.0e.2b.34.01.01.01.02.04.01.05.03.0a.00.00.00"),
		tag(0x3302, "CDCIEssenceDescriptor", "HorizontalSubsampling", "06.0e.2b.34.01.01.01.01.04.01.05.01.05.00.00.00"),

		tag(0x3D02, "GenericSoundEssenceDescriptor", "Locked", "06.0e.2b.34.01.01.01.04.04.02.03.01.04.00.00.00"),
		tag(0x3D03, "GenericSoundEssenceDescriptor", "AudioSamplingRate", "06.0e.2b.34.01.01.01.05.04.02.03.01.01.01.00.00"),
		tag(0x3D07, "GenericSoundEssenceDescriptor", "ChannelCount", "06.0e.2b.34.01.01.01.05.04.02.01.01.04.00.00.00"),
		tag(0x3D01, "GenericSoundEssenceDescriptor", "QuantizationBits", "06.0e.2b.34.01.01.01.04.04.02.03.03.04.00.00.00"),
		codingTag(0x3D06, "GenericSoundEssenceDescriptor", "SoundEssenceCompression", "06.0e.2b.34.01.01.01.02.04.02.04.02.00.00.00.00"),

		tag(0x3F0B, "IndexTableSegment", "IndexEditRate", "06.0e.2b.34.01.01.01.05.05.30.04.06.00.00.00.00"),
		tag(0x3F0C, "IndexTableSegment", "IndexStartPosition", "06.0e.2b.34.01.01.01.05.07.02.01.03.01.0a.00.00"),
		tag(0x3F0D, "IndexTableSegment", "IndexDuration", "06.0e.2b.34.01.01.01.05.07.02.02.01.01.02.00.00"),
		tag(0x3F05, "IndexTableSegment", "EditUnitByteCount", "06.0e.2b.34.01.01.01.04.04.06.02.01.00.00.00.00"),
		tag(0x3F06, "IndexTableSegment", "IndexSID", "06.0e.2b.34.01.01.01.04.01.03.04.05.00.00.00.00"),
		tag(0x3F08, "IndexTableSegment", "SliceCount", "06.0e.2b.34.01.01.01.04.04.04.04.01.01.00.00.00"),
		tag(0x3F09, "IndexTableSegment", "DeltaEntryArray", "06.0e.2b.34.01.01.01.05.04.04.04.01.06.00.00.00"),
		tag(0x3F0A, "IndexTableSegment", "IndexEntryArray", "06.0e.2b.34.01.01.01.05.04.04.04.02.05.00.00.00"),

		tag(0x8000, "MPEG2VideoDescriptor", "BitRate", "06.0e.2b.34.01.01.01.05.04.01.06.02.01.0b.00.00"),
		tag(0x8007, "MPEG2VideoDescriptor", "ProfileAndLevel", "06.0e.2b.34.01.01.01.05.04.01.06.02.01.0a.00.00"),

		tag(0x3D09, "WaveAudioDescriptor", "AverageBytesPerSecond", "06.0e.2b.34.01.01.01.05.04.02.03.03.05.00.00.00"),
		tag(0x3D0A, "WaveAudioDescriptor", "BlockAlign", "06.0e.2b.34.01.01.01.05.04.02.03.02.01.00.00.00"),
	}
}
