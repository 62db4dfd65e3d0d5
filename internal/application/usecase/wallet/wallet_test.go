package wallet

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/lock"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/sqlitetest"
)

func TestCreateWalletUseCase(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewWalletRepository(sqlitetest.Open(t))
	create := NewCreateWalletUseCase(repo)

	out, err := create.Execute(ctx, CreateWalletInput{Name: " Checking ", InitialBalance: valueobject.MustParseMoney("250.5")})
	require.NoError(t, err)
	assert.Equal(t, "Checking", out.Wallet.Name)
	assert.Equal(t, "250.50", out.Wallet.Balance.String())

	tests := []struct {
		name  string
		input CreateWalletInput
		code  domainerror.WalletErrorCode
	}{
		{name: "blank name", input: CreateWalletInput{Name: "   "}, code: domainerror.ErrCodeWalletNameRequired},
		{name: "name too long", input: CreateWalletInput{Name: strings.Repeat("a", MaxWalletNameLength+1)}, code: domainerror.ErrCodeWalletNameTooLong},
		{name: "duplicate ignoring case", input: CreateWalletInput{Name: "CHECKING"}, code: domainerror.ErrCodeWalletNameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create.Execute(ctx, tt.input)
			var walletErr *domainerror.WalletError
			require.ErrorAs(t, err, &walletErr)
			assert.Equal(t, tt.code, walletErr.Code)
			assert.Equal(t, domainerror.KindInvalidArgument, domainerror.KindOf(err))
		})
	}
}

func TestUpdateWalletUseCase(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewWalletRepository(sqlitetest.Open(t))
	create := NewCreateWalletUseCase(repo)
	update := NewUpdateWalletUseCase(lock.NewLocalLocker(), repo)

	checking, err := create.Execute(ctx, CreateWalletInput{Name: "Checking", InitialBalance: valueobject.MustParseMoney("10")})
	require.NoError(t, err)
	_, err = create.Execute(ctx, CreateWalletInput{Name: "Savings"})
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		out, err := update.Rename(ctx, RenameWalletInput{WalletID: checking.Wallet.ID, Name: "Daily"})
		require.NoError(t, err)
		assert.Equal(t, "Daily", out.Wallet.Name)
		assert.Equal(t, "10.00", out.Wallet.Balance.String())
	})

	t.Run("rename to own name with other case", func(t *testing.T) {
		_, err := update.Rename(ctx, RenameWalletInput{WalletID: checking.Wallet.ID, Name: "DAILY"})
		require.NoError(t, err)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		_, err := update.Rename(ctx, RenameWalletInput{WalletID: checking.Wallet.ID, Name: "savings"})
		assert.ErrorIs(t, err, domainerror.ErrWalletNameExists)
	})

	t.Run("archive and unarchive", func(t *testing.T) {
		_, err := update.SetArchived(ctx, SetArchivedInput{WalletID: checking.Wallet.ID, Archived: true})
		require.NoError(t, err)

		active, err := NewListWalletsUseCase(repo).Execute(ctx, ListWalletsInput{})
		require.NoError(t, err)
		assert.Len(t, active.Wallets, 1)

		all, err := NewListWalletsUseCase(repo).Execute(ctx, ListWalletsInput{IncludeArchived: true})
		require.NoError(t, err)
		assert.Len(t, all.Wallets, 2)

		out, err := update.SetArchived(ctx, SetArchivedInput{WalletID: checking.Wallet.ID, Archived: false})
		require.NoError(t, err)
		assert.False(t, out.Wallet.Archived)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		_, err := update.SetArchived(ctx, SetArchivedInput{WalletID: uuid.New(), Archived: true})
		assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
	})
}

func TestDeleteWalletUseCase(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	tx := persistence.NewTransactor(db)
	locker := lock.NewLocalLocker()
	walletRepo := persistence.NewWalletRepository(db)
	entryRepo := persistence.NewLedgerEntryRepository(db)
	transferRepo := persistence.NewTransferRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	category := entity.NewCategory("Salary", entity.EntryTypeIncome)
	require.NoError(t, categoryRepo.Create(ctx, category))

	newWallet := func(name string) *entity.Wallet {
		out, err := NewCreateWalletUseCase(walletRepo).Execute(ctx, CreateWalletInput{Name: name, InitialBalance: valueobject.MustParseMoney("100")})
		require.NoError(t, err)
		return out.Wallet
	}
	withEntry := newWallet("With entry")
	sender := newWallet("Sender")
	receiver := newWallet("Receiver")
	empty := newWallet("Empty")

	_, err := ledger.NewAddEntryUseCase(tx, locker, walletRepo, entryRepo, categoryRepo).Execute(ctx, ledger.AddEntryInput{
		WalletID:   withEntry.ID,
		CategoryID: category.ID,
		Type:       entity.EntryTypeIncome,
		Status:     entity.EntryStatusPending,
		Amount:     valueobject.MustParseMoney("5"),
		Date:       time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = ledger.NewTransferMoneyUseCase(tx, locker, walletRepo, transferRepo).Execute(ctx, ledger.TransferMoneyInput{
		SenderWalletID:   sender.ID,
		ReceiverWalletID: receiver.ID,
		Amount:           valueobject.MustParseMoney("1"),
		Date:             time.Now().UTC(),
	})
	require.NoError(t, err)

	remove := NewDeleteWalletUseCase(tx, locker, walletRepo, entryRepo, transferRepo)

	for _, w := range []*entity.Wallet{withEntry, sender, receiver} {
		err := remove.Execute(ctx, DeleteWalletInput{WalletID: w.ID})
		assert.ErrorIs(t, err, domainerror.ErrWalletHasHistory, w.Name)
		assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err), w.Name)
	}

	require.NoError(t, remove.Execute(ctx, DeleteWalletInput{WalletID: empty.ID}))
	_, err = NewGetWalletUseCase(walletRepo).Execute(ctx, GetWalletInput{WalletID: empty.ID})
	assert.ErrorIs(t, err, domainerror.ErrWalletNotFound)

	err = remove.Execute(ctx, DeleteWalletInput{WalletID: empty.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}
