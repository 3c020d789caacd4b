/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/suparena/klvregistry/datastore"
	"github.com/suparena/klvregistry/datastore/ddb"
	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/storagemodels"
)

// LabelStore persists label records.
type LabelStore = datastore.DataStore[storagemodels.LabelRecord]

// LoadFromStore streams every record of the named dictionary out of table.
// Records are validated like YAML entries; the first invalid record or
// stream error aborts the load.
func LoadFromStore(ctx context.Context, store LabelStore, table, name string, opts ...storagemodels.StreamOption) (*Dictionary, error) {
	// Returning early abandons the stream; cancel stops its producer.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := &Dictionary{Name: name}
	for res := range store.Stream(ctx, ddb.DictionaryQuery(table, name), opts...) {
		if res.Error != nil {
			return nil, fmt.Errorf("loading dictionary %s: %w", name, res.Error)
		}
		if err := d.addRecord(res.Item); err != nil {
			return nil, fmt.Errorf("loading dictionary %s: %w", name, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) addRecord(rec storagemodels.LabelRecord) error {
	field := fmt.Sprintf("record %s", rec.ID)
	switch rec.Kind {
	case storagemodels.KindShape:
		e, err := parseShapeEntry(field, rec.Name, rec.UL, rec.Tag)
		if err != nil {
			return err
		}
		d.Shapes = append(d.Shapes, e)
	case storagemodels.KindCodec:
		v, err := parseVariant(field, rec.Name, rec.UL, rec.Tag)
		if err != nil {
			return err
		}
		d.Variants = append(d.Variants, v)
	default:
		return errors.NewValidationError(field+".kind", fmt.Sprintf("unknown kind %q", rec.Kind))
	}
	return nil
}

// Records converts d into label records stamped with now.
func (d *Dictionary) Records(now time.Time) []storagemodels.LabelRecord {
	out := make([]storagemodels.LabelRecord, 0, d.Len())
	add := func(kind storagemodels.LabelKind, name, label, tag string) {
		rec := storagemodels.LabelRecord{
			ID:         storagemodels.LabelID(d.Name, kind, label),
			Dictionary: d.Name,
			Kind:       kind,
			Name:       name,
			UL:         label,
			Tag:        tag,
		}
		rec.Touch(now)
		out = append(out, rec)
	}
	for _, s := range d.Shapes {
		add(storagemodels.KindShape, s.Name, s.UL.String(), s.Shape.String())
	}
	for _, v := range d.Variants {
		add(storagemodels.KindCodec, v.Name, v.UL.String(), v.Codec.String())
	}
	return out
}

// Publish writes every label of d to store.
func Publish(ctx context.Context, store LabelStore, d *Dictionary) error {
	if d.Name == "" {
		return errors.NewValidationError("name", "a published dictionary needs a name")
	}
	for _, rec := range d.Records(time.Now()) {
		if err := store.Put(ctx, rec); err != nil {
			return fmt.Errorf("publishing %s: %w", rec.ID, err)
		}
	}
	return nil
}
