package ledger

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// entrySnapshot holds the fields of an entry that decide its balance effect.
type entrySnapshot struct {
	WalletID uuid.UUID
	Type     entity.EntryType
	Status   entity.EntryStatus
	Amount   valueobject.Money
}

func snapshotOf(e *entity.LedgerEntry) entrySnapshot {
	return entrySnapshot{
		WalletID: e.WalletID,
		Type:     e.Type,
		Status:   e.Status,
		Amount:   e.Amount,
	}
}

// entryEffects returns the balance change the entry contributes per wallet.
// Pending entries contribute nothing.
func entryEffects(s entrySnapshot) map[uuid.UUID]valueobject.Money {
	effects := make(map[uuid.UUID]valueobject.Money, 1)
	if s.Status != entity.EntryStatusConfirmed {
		return effects
	}
	effects[s.WalletID] = entity.SignedAmount(s.Type, s.Amount)
	return effects
}

// balanceDeltas returns, per wallet, the change needed to go from the effects
// of old to the effects of updated. Wallets touched by either side are present,
// possibly with a zero delta.
func balanceDeltas(old, updated entrySnapshot) map[uuid.UUID]valueobject.Money {
	deltas := make(map[uuid.UUID]valueobject.Money, 2)
	for id, effect := range entryEffects(old) {
		deltas[id] = deltas[id].Sub(effect)
	}
	for id, effect := range entryEffects(updated) {
		deltas[id] = deltas[id].Add(effect)
	}
	return deltas
}
