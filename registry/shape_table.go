/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "github.com/suparena/klvregistry/ul"

// DefaultShapeEntries returns the built-in set labels. The slice is a fresh
// copy on every call.
func DefaultShapeEntries() []ShapeEntry {
	return []ShapeEntry{
		{"ContentStorage", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x18, 0x00), ContentStorage},
		{"SourcePackage", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x37, 0x00), SourcePackage},
		{"Sequence", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x0f, 0x00), Sequence},
		{"SourceClip", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x11, 0x00), SourceClip},

		// Track family
		{"GenericTrack", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x38, 0x00), Track},
		{"EventTrack", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x39, 0x00), Track},
		{"StaticTrack", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x3a, 0x00), Track},
		{"TimelineTrack", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x3b, 0x00), Track},

		{"MaterialPackage", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x36, 0x00), MaterialPackage},
		{"IndexTableSegment", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x10, 0x01, 0x00), IndexTableSegment},

		// Descriptor family; the descriptor parser reads subtype fields itself.
		{"MultipleDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x44, 0x00), GenericDescriptor},
		{"GenericSoundEssenceDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x42, 0x00), GenericDescriptor},
		{"CDCIEssenceDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x28, 0x00), GenericDescriptor},
		{"RGBAEssenceDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x29, 0x00), GenericDescriptor},
		{"MPEG2VideoDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x51, 0x00), GenericDescriptor},
		{"WaveAudioDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x48, 0x00), GenericDescriptor},
		{"AES3AudioDescriptor", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0d, 0x01, 0x01, 0x01, 0x01, 0x01, 0x47, 0x00), GenericDescriptor},

		// Partition pack family. Byte 13 is header/body/footer, byte 14 is
		// open/closed and incomplete/complete; the partition parser re-reads them.
		// The primer pack label is routed to the same parser.
		{"PrimerPack", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x05, 0x01, 0x00), PartitionPack},
		{"HeaderPartitionOpenIncomplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x02, 0x01, 0x00), PartitionPack},
		{"HeaderPartitionClosedIncomplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x02, 0x02, 0x00), PartitionPack},
		{"HeaderPartitionOpenComplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x02, 0x03, 0x00), PartitionPack},
		{"HeaderPartitionClosedComplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x02, 0x04, 0x00), PartitionPack},
		{"BodyPartitionOpenIncomplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x03, 0x01, 0x00), PartitionPack},
		{"BodyPartitionClosedIncomplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x00), PartitionPack},
		{"BodyPartitionOpenComplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x03, 0x03, 0x00), PartitionPack},
		{"BodyPartitionClosedComplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x03, 0x04, 0x00), PartitionPack},
		{"FooterPartitionClosedIncomplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x00), PartitionPack},
		{"FooterPartitionClosedComplete", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x04, 0x04, 0x00), PartitionPack},
	}
}
