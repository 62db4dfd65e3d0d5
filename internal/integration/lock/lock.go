// Package lock implements per-wallet mutual exclusion for ledger writers.
package lock

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// orderedKeys removes duplicates and sorts ids so every caller acquires locks in the same order.
func orderedKeys(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	keys := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, id)
	}

	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys
}
