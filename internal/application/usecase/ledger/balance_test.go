package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// sequentialDeltas replays the step-by-step revert/apply algorithm: wallet
// move, type flip, amount diff, then the status transition evaluated last.
func sequentialDeltas(old, updated entrySnapshot) map[uuid.UUID]valueobject.Money {
	balances := map[uuid.UUID]valueobject.Money{}
	confirmed := old.Status == entity.EntryStatusConfirmed
	wallet, entryType, amount := old.WalletID, old.Type, old.Amount

	if updated.WalletID != wallet {
		if confirmed {
			balances[wallet] = balances[wallet].Sub(entity.SignedAmount(entryType, amount))
			balances[updated.WalletID] = balances[updated.WalletID].Add(entity.SignedAmount(entryType, amount))
		}
		wallet = updated.WalletID
	}

	if updated.Type != entryType {
		if confirmed {
			balances[wallet] = balances[wallet].Sub(entity.SignedAmount(entryType, amount))
			balances[wallet] = balances[wallet].Add(entity.SignedAmount(updated.Type, amount))
		}
		entryType = updated.Type
	}

	if !updated.Amount.Equal(amount) {
		if confirmed {
			diff := amount.Sub(updated.Amount).Abs()
			grew := updated.Amount.GreaterThan(amount)
			if (entryType == entity.EntryTypeExpense) == grew {
				balances[wallet] = balances[wallet].Sub(diff)
			} else {
				balances[wallet] = balances[wallet].Add(diff)
			}
		}
		amount = updated.Amount
	}

	if updated.Status != old.Status {
		if updated.Status == entity.EntryStatusConfirmed {
			balances[wallet] = balances[wallet].Add(entity.SignedAmount(entryType, amount))
		} else {
			balances[wallet] = balances[wallet].Sub(entity.SignedAmount(entryType, amount))
		}
	}

	return balances
}

func TestBalanceDeltas_MatchesSequentialAlgorithm(t *testing.T) {
	walletA, walletB := uuid.New(), uuid.New()
	types := []entity.EntryType{entity.EntryTypeIncome, entity.EntryTypeExpense}
	statuses := []entity.EntryStatus{entity.EntryStatusPending, entity.EntryStatusConfirmed}
	amounts := []valueobject.Money{valueobject.MustParseMoney("200.00"), valueobject.MustParseMoney("75.25")}

	for _, oldType := range types {
		for _, newType := range types {
			for _, oldStatus := range statuses {
				for _, newStatus := range statuses {
					for _, newWallet := range []uuid.UUID{walletA, walletB} {
						for _, newAmount := range amounts {
							old := entrySnapshot{WalletID: walletA, Type: oldType, Status: oldStatus, Amount: amounts[0]}
							updated := entrySnapshot{WalletID: newWallet, Type: newType, Status: newStatus, Amount: newAmount}

							got := balanceDeltas(old, updated)
							want := sequentialDeltas(old, updated)

							for _, id := range []uuid.UUID{walletA, walletB} {
								assert.True(t, got[id].Equal(want[id]),
									"old=%+v updated=%+v wallet=%s got=%s want=%s", old, updated, id, got[id], want[id])
							}
						}
					}
				}
			}
		}
	}
}

func TestBalanceDeltas_Examples(t *testing.T) {
	walletA, walletB := uuid.New(), uuid.New()
	amount := valueobject.MustParseMoney("200.00")

	tests := []struct {
		name    string
		old     entrySnapshot
		updated entrySnapshot
		wantA   string
		wantB   string
	}{
		{
			name:    "expense flipped to income",
			old:     entrySnapshot{WalletID: walletA, Type: entity.EntryTypeExpense, Status: entity.EntryStatusConfirmed, Amount: amount},
			updated: entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: amount},
			wantA:   "400.00",
			wantB:   "0.00",
		},
		{
			name:    "confirmed income moved to another wallet",
			old:     entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: amount},
			updated: entrySnapshot{WalletID: walletB, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: amount},
			wantA:   "-200.00",
			wantB:   "200.00",
		},
		{
			name:    "pending changes have no effect",
			old:     entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusPending, Amount: amount},
			updated: entrySnapshot{WalletID: walletB, Type: entity.EntryTypeExpense, Status: entity.EntryStatusPending, Amount: valueobject.MustParseMoney("1.00")},
			wantA:   "0.00",
			wantB:   "0.00",
		},
		{
			name:    "income amount raised",
			old:     entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: amount},
			updated: entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: valueobject.MustParseMoney("250.00")},
			wantA:   "50.00",
			wantB:   "0.00",
		},
		{
			name:    "income amount lowered",
			old:     entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: amount},
			updated: entrySnapshot{WalletID: walletA, Type: entity.EntryTypeIncome, Status: entity.EntryStatusConfirmed, Amount: valueobject.MustParseMoney("150.00")},
			wantA:   "-50.00",
			wantB:   "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltas := balanceDeltas(tt.old, tt.updated)
			assert.Equal(t, tt.wantA, deltas[walletA].String())
			assert.Equal(t, tt.wantB, deltas[walletB].String())
		})
	}
}
