// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	kvTable = "kv"

	colKey       = "key"
	colValue     = "value"
	colRemoved   = "removed"
	colSeq       = "seq"
	colUpdatedAt = "updated_at"
)

const upsertKVSuffix = `ON CONFLICT(key) DO UPDATE SET
	value = excluded.value,
	removed = excluded.removed,
	seq = excluded.seq,
	updated_at = excluded.updated_at`

func selectMaxSeq() squirrel.SelectBuilder {
	return builder.Select("COALESCE(MAX(seq), 0)").From(kvTable)
}

func selectLiveValues(keys []string) squirrel.SelectBuilder {
	return builder.Select(colKey, colValue).
		From(kvTable).
		Where(squirrel.Eq{colKey: keys, colRemoved: false})
}

func selectChangesSince(seq int64) squirrel.SelectBuilder {
	return builder.Select(colKey, colValue, colRemoved, colSeq).
		From(kvTable).
		Where(squirrel.Gt{colSeq: seq}).
		OrderBy(colSeq)
}

func upsertValue(key string, value []byte, seq int64, now time.Time) squirrel.InsertBuilder {
	return builder.Insert(kvTable).
		Columns(colKey, colValue, colRemoved, colSeq, colUpdatedAt).
		Values(key, value, false, seq, now).
		Suffix(upsertKVSuffix)
}

// markRemoved keeps the row as a tombstone so the removal itself is a change.
func markRemoved(key string, seq int64, now time.Time) squirrel.UpdateBuilder {
	return builder.Update(kvTable).
		Set(colValue, nil).
		Set(colRemoved, true).
		Set(colSeq, seq).
		Set(colUpdatedAt, now).
		Where(squirrel.Eq{colKey: key, colRemoved: false})
}
