package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/sqlitetest"
)

func TestWalletRepository_OptimisticVersion(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewWalletRepository(sqlitetest.Open(t))

	wallet := entity.NewWallet("Checking", valueobject.MustParseMoney("100.00"))
	require.NoError(t, repo.Create(ctx, wallet))

	stale, err := repo.FindByID(ctx, wallet.ID)
	require.NoError(t, err)

	wallet.Credit(valueobject.MustParseMoney("50.00"))
	require.NoError(t, repo.Update(ctx, wallet))
	assert.Equal(t, int64(2), wallet.Version)

	stale.Debit(valueobject.MustParseMoney("10.00"))
	err = repo.Update(ctx, stale)
	assert.ErrorIs(t, err, domainerror.ErrWalletVersionConflict)

	stored, err := repo.FindByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "150.00", stored.Balance.String())
}

func TestWalletRepository_ExistsByName(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewWalletRepository(sqlitetest.Open(t))

	wallet := entity.NewWallet("Savings", valueobject.Zero)
	require.NoError(t, repo.Create(ctx, wallet))

	exists, err := repo.ExistsByName(ctx, "savings", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "SAVINGS", wallet.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrWalletNotFound)
}

func TestTransactor_RollbackAndSavepoint(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	tx := persistence.NewTransactor(db)
	repo := persistence.NewCategoryRepository(db)
	boom := errors.New("boom")

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, entity.NewCategory("Rolled back", entity.EntryTypeExpense)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, entity.NewCategory("Kept", entity.EntryTypeExpense)); err != nil {
			return err
		}
		nestedErr := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := repo.Create(ctx, entity.NewCategory("Savepoint", entity.EntryTypeIncome)); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, nestedErr, boom)
		return nil
	})
	require.NoError(t, err)

	categories, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Kept", categories[0].Name)
}

func TestLedgerEntryRepository_TemplateDedupe(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewLedgerEntryRepository(sqlitetest.Open(t))

	templateID := uuid.New()
	due := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)

	entry := entity.NewLedgerEntry(uuid.New(), uuid.New(), entity.EntryTypeExpense, entity.EntryStatusPending,
		valueobject.MustParseMoney("9.90"), due, "Streaming")
	entry.RecurringTemplateID = &templateID
	require.NoError(t, repo.Create(ctx, entry))

	exists, err := repo.ExistsByTemplateAndDate(ctx, templateID, due)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTemplateAndDate(ctx, templateID, due.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, exists)

	duplicate := entity.NewLedgerEntry(entry.WalletID, entry.CategoryID, entity.EntryTypeExpense, entity.EntryStatusPending,
		valueobject.MustParseMoney("9.90"), due, "Streaming")
	duplicate.RecurringTemplateID = &templateID
	assert.Error(t, repo.Create(ctx, duplicate), "unique (template, date) index")
}

func TestCreditCardPaymentRepository_CardQueries(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	cards := persistence.NewCreditCardRepository(db)
	debts := persistence.NewCreditCardDebtRepository(db)
	payments := persistence.NewCreditCardPaymentRepository(db)

	card := entity.NewCreditCard("Visa", valueobject.MustParseMoney("1000.00"), 5, 10, "1234")
	require.NoError(t, cards.Create(ctx, card))

	debt := entity.NewCreditCardDebt(card.ID, uuid.New(), time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		valueobject.MustParseMoney("100.00"), 3, "Headphones")
	require.NoError(t, debts.Create(ctx, debt))
	installments := debt.Installments(card.BillingDueDay)
	require.NoError(t, payments.CreateBatch(ctx, installments))

	total, err := debts.SumTotalByCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", total.String())

	march, err := payments.FindByCardAndMonth(ctx, card.ID, time.March, 2024, false)
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, 2, march[0].InstallmentIndex)

	stale := *installments[0]
	installments[0].Settle(uuid.New(), time.Now().UTC())
	require.NoError(t, payments.Settle(ctx, installments[0]))

	stale.Settle(uuid.New(), time.Now().UTC())
	assert.ErrorIs(t, payments.Settle(ctx, &stale), domainerror.ErrPaymentAlreadySettled)
	stored, err := payments.FindByID(ctx, installments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, *installments[0].SettlingWalletID, *stored.SettlingWalletID, "the first settlement wins")

	paid, err := payments.SumPaidByCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "33.33", paid.String())

	pending, err := payments.CountPendingByCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	next, err := payments.FindNextPendingDueDate(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), next.UTC())

	require.NoError(t, payments.DeleteByDebt(ctx, debt.ID))
	installments[1].Settle(uuid.New(), time.Now().UTC())
	assert.ErrorIs(t, payments.Settle(ctx, installments[1]), domainerror.ErrCreditCardPaymentNotFound)

	remaining, err := payments.FindByDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "settling a deleted payment does not recreate it")
}
