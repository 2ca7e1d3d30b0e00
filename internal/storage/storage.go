package storage

import "dexScope/internal/model"

// SnapshotSink is a destination for aggregated snapshots.
type SnapshotSink interface {
	Write(data model.DexData) error
}
