/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// LabelKind says which table a stored label extends.
type LabelKind string

const (
	KindShape LabelKind = "shape"
	KindCodec LabelKind = "codec"
)

// LabelIndexMap is the key layout of label records: one item per label,
// addressable by ID, and GSI1 grouping the labels of one dictionary.
var LabelIndexMap = map[string]string{
	"PK":  "LABEL#{Id}",
	"SK":  "LABEL#{Id}",
	"PK1": "DICT#{Dictionary}",
	"SK1": "{Id}",
}

// LabelRecord is a persisted extension label.
type LabelRecord struct {
	// ID is "<dictionary>#<kind>:<ul>", see LabelID.
	ID string `json:"Id" dynamodbav:"Id"`
	// Dictionary groups records that are loaded together.
	Dictionary string `json:"Dictionary" dynamodbav:"Dictionary"`
	// Kind selects the shape registry or the codec catalog.
	Kind LabelKind `json:"Kind" dynamodbav:"Kind"`
	// Name is the entry or variant name.
	Name string `json:"Name" dynamodbav:"Name"`
	// UL is the label in dotted text form.
	UL string `json:"UL" dynamodbav:"UL"`
	// Tag is the shape or codec name.
	Tag string `json:"Tag" dynamodbav:"Tag"`
	// UpdatedAt is an RFC 3339 date-time.
	// Format: date-time
	UpdatedAt string `json:"UpdatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

// LabelID builds the record ID of a label. The dictionary is part of the ID
// so that two dictionaries may carry the same label without overwriting
// each other. A label outside any dictionary is "<kind>:<ul>".
func LabelID(dictionary string, kind LabelKind, ul string) string {
	if dictionary == "" {
		return fmt.Sprintf("%s:%s", kind, ul)
	}
	return fmt.Sprintf("%s#%s:%s", dictionary, kind, ul)
}

// Touch stamps the record with t.
func (r *LabelRecord) Touch(t time.Time) {
	r.UpdatedAt = strfmt.DateTime(t.UTC()).String()
}

// UpdatedTime parses UpdatedAt. A record never touched returns the zero value.
func (r LabelRecord) UpdatedTime() (strfmt.DateTime, error) {
	if r.UpdatedAt == "" {
		return strfmt.DateTime{}, nil
	}
	return strfmt.ParseDateTime(r.UpdatedAt)
}

// DictionaryPartition is the GSI1 partition value of a dictionary, matching
// the PK1 template of LabelIndexMap.
func DictionaryPartition(dictionary string) string {
	return "DICT#" + dictionary
}
