package creditcard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/lock"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/sqlitetest"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fixture struct {
	clock        *fixedClock
	tx           adapter.Transactor
	locker       adapter.WalletLocker
	addEntry     *ledger.AddEntryUseCase
	walletRepo   adapter.WalletRepository
	entryRepo    adapter.LedgerEntryRepository
	cardRepo     adapter.CreditCardRepository
	debtRepo     adapter.CreditCardDebtRepository
	paymentRepo  adapter.CreditCardPaymentRepository
	categoryRepo adapter.CategoryRepository

	create     *CreateCreditCardUseCase
	update     *UpdateCreditCardUseCase
	remove     *DeleteCreditCardUseCase
	register   *RegisterDebtUseCase
	deleteDebt *DeleteDebtUseCase
	available  *GetAvailableCreditUseCase
	nextDate   *GetNextInvoiceDateUseCase
	invoice    *GetInvoiceUseCase
	settle     *SettlePaymentUseCase
	payInvoice *PayInvoiceUseCase

	category *entity.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := sqlitetest.Open(t)
	tx := persistence.NewTransactor(db)
	locker := lock.NewLocalLocker()

	f := &fixture{
		clock:        &fixedClock{now: time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC)},
		tx:           tx,
		locker:       locker,
		walletRepo:   persistence.NewWalletRepository(db),
		entryRepo:    persistence.NewLedgerEntryRepository(db),
		cardRepo:     persistence.NewCreditCardRepository(db),
		debtRepo:     persistence.NewCreditCardDebtRepository(db),
		paymentRepo:  persistence.NewCreditCardPaymentRepository(db),
		categoryRepo: persistence.NewCategoryRepository(db),
	}

	addEntry := ledger.NewAddEntryUseCase(tx, locker, f.walletRepo, f.entryRepo, f.categoryRepo)
	f.addEntry = addEntry

	f.create = NewCreateCreditCardUseCase(f.cardRepo)
	f.update = NewUpdateCreditCardUseCase(f.cardRepo, f.paymentRepo)
	f.remove = NewDeleteCreditCardUseCase(f.cardRepo, f.debtRepo)
	f.register = NewRegisterDebtUseCase(tx, locker, f.cardRepo, f.debtRepo, f.paymentRepo, f.categoryRepo, 0)
	f.deleteDebt = NewDeleteDebtUseCase(tx, locker, f.debtRepo, f.paymentRepo)
	f.available = NewGetAvailableCreditUseCase(f.cardRepo, f.debtRepo, f.paymentRepo)
	f.nextDate = NewGetNextInvoiceDateUseCase(f.cardRepo, f.paymentRepo, f.clock)
	f.invoice = NewGetInvoiceUseCase(f.cardRepo, f.paymentRepo, f.clock)
	f.settle = NewSettlePaymentUseCase(tx, locker, f.walletRepo, f.cardRepo, f.debtRepo, f.paymentRepo, addEntry, f.clock)
	f.payInvoice = NewPayInvoiceUseCase(locker, f.walletRepo, f.cardRepo, f.paymentRepo, f.settle)

	f.category = entity.NewCategory("Shopping", entity.EntryTypeExpense)
	require.NoError(t, f.categoryRepo.Create(context.Background(), f.category))

	return f
}

func (f *fixture) newCard(t *testing.T, maxDebt string, closingDay, dueDay int) *entity.CreditCard {
	t.Helper()
	out, err := f.create.Execute(context.Background(), CreateCreditCardInput{
		Name:           "Card " + uuid.NewString()[:8],
		MaxDebt:        valueobject.MustParseMoney(maxDebt),
		ClosingDay:     closingDay,
		BillingDueDay:  dueDay,
		LastFourDigits: "1234",
	})
	require.NoError(t, err)
	return out.CreditCard
}

func (f *fixture) registerDebt(cardID uuid.UUID, total string, installments int, date time.Time) (*RegisterDebtOutput, error) {
	return f.register.Execute(context.Background(), RegisterDebtInput{
		CreditCardID:     cardID,
		CategoryID:       f.category.ID,
		Date:             date,
		TotalAmount:      valueobject.MustParseMoney(total),
		InstallmentCount: installments,
		Description:      "Laptop",
	})
}

func (f *fixture) availableCredit(t *testing.T, cardID uuid.UUID) string {
	t.Helper()
	out, err := f.available.Execute(context.Background(), GetAvailableCreditInput{CreditCardID: cardID})
	require.NoError(t, err)
	return out.AvailableCredit.String()
}

func TestCreateCreditCardUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.newCard(t, "500", 10, 20)

	existing, err := f.create.Execute(ctx, CreateCreditCardInput{
		Name: " Visa ", MaxDebt: valueobject.MustParseMoney("0"), ClosingDay: 1, BillingDueDay: 28, LastFourDigits: "0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Visa", existing.CreditCard.Name)

	valid := CreateCreditCardInput{
		Name: "Master", MaxDebt: valueobject.MustParseMoney("100"), ClosingDay: 5, BillingDueDay: 15, LastFourDigits: "9876",
	}

	tests := []struct {
		name   string
		mutate func(*CreateCreditCardInput)
		code   domainerror.CreditCardErrorCode
	}{
		{name: "blank name", mutate: func(in *CreateCreditCardInput) { in.Name = " " }, code: domainerror.ErrCodeCreditCardNameRequired},
		{name: "duplicate name", mutate: func(in *CreateCreditCardInput) { in.Name = "VISA" }, code: domainerror.ErrCodeCreditCardNameExists},
		{name: "closing day zero", mutate: func(in *CreateCreditCardInput) { in.ClosingDay = 0 }, code: domainerror.ErrCodeInvalidClosingDay},
		{name: "due day after 28", mutate: func(in *CreateCreditCardInput) { in.BillingDueDay = 29 }, code: domainerror.ErrCodeInvalidBillingDueDay},
		{name: "negative limit", mutate: func(in *CreateCreditCardInput) { in.MaxDebt = valueobject.MustParseMoney("-1") }, code: domainerror.ErrCodeInvalidMaxDebt},
		{name: "three digits", mutate: func(in *CreateCreditCardInput) { in.LastFourDigits = "123" }, code: domainerror.ErrCodeInvalidLastFourDigits},
		{name: "letters", mutate: func(in *CreateCreditCardInput) { in.LastFourDigits = "12a4" }, code: domainerror.ErrCodeInvalidLastFourDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := f.create.Execute(ctx, input)
			var cardErr *domainerror.CreditCardError
			require.ErrorAs(t, err, &cardErr)
			assert.Equal(t, tt.code, cardErr.Code)
			assert.Equal(t, domainerror.KindInvalidArgument, domainerror.KindOf(err))
		})
	}
}

func TestRegisterDebt_CreditCeiling(t *testing.T) {
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 10, 20)

	_, err := f.registerDebt(card.ID, "800.00", 1, f.clock.now)
	require.NoError(t, err)
	assert.Equal(t, "200.00", f.availableCredit(t, card.ID))

	_, err = f.registerDebt(card.ID, "300.00", 1, f.clock.now)
	assert.ErrorIs(t, err, domainerror.ErrInsufficientCredit)
	assert.Equal(t, domainerror.KindInvariantViolation, domainerror.KindOf(err))

	debts, err := NewListDebtsUseCase(f.cardRepo, f.debtRepo).Execute(context.Background(), ListDebtsInput{CreditCardID: card.ID})
	require.NoError(t, err)
	assert.Len(t, debts.Debts, 1)
	assert.Equal(t, "200.00", f.availableCredit(t, card.ID))

	_, err = f.registerDebt(card.ID, "200.00", 1, f.clock.now)
	require.NoError(t, err)
	assert.Equal(t, "0.00", f.availableCredit(t, card.ID))
}

func TestRegisterDebt_Installments(t *testing.T) {
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 5, 10)

	out, err := f.registerDebt(card.ID, "100.00", 3, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, out.Payments, 3)

	sum := valueobject.Zero
	for i, payment := range out.Payments {
		sum = sum.Add(payment.Amount)
		assert.Equal(t, i+1, payment.InstallmentIndex)
		assert.False(t, payment.IsPaid())
	}
	assert.Equal(t, "100.00", sum.String())
	assert.Equal(t, "33.33", out.Payments[0].Amount.String())
	assert.Equal(t, "33.34", out.Payments[2].Amount.String())

	stored, err := f.paymentRepo.FindByDebt(context.Background(), out.Debt.ID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), stored[0].DueDate.UTC())
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), stored[1].DueDate.UTC())
	assert.Equal(t, time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), stored[2].DueDate.UTC())
}

func TestRegisterDebt_Validation(t *testing.T) {
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 5, 10)
	f.register = NewRegisterDebtUseCase(f.register.transactor, f.register.locker, f.cardRepo, f.debtRepo, f.paymentRepo, f.categoryRepo, 12)

	tests := []struct {
		name  string
		input RegisterDebtInput
		code  domainerror.CreditCardErrorCode
	}{
		{
			name:  "negative total",
			input: RegisterDebtInput{CreditCardID: card.ID, CategoryID: f.category.ID, TotalAmount: valueobject.MustParseMoney("-1"), InstallmentCount: 1},
			code:  domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name:  "no installments",
			input: RegisterDebtInput{CreditCardID: card.ID, CategoryID: f.category.ID, TotalAmount: valueobject.MustParseMoney("1"), InstallmentCount: 0},
			code:  domainerror.ErrCodeInvalidInstallmentCount,
		},
		{
			name:  "above configured ceiling",
			input: RegisterDebtInput{CreditCardID: card.ID, CategoryID: f.category.ID, TotalAmount: valueobject.MustParseMoney("1"), InstallmentCount: 13},
			code:  domainerror.ErrCodeInvalidInstallmentCount,
		},
		{
			name:  "unknown card",
			input: RegisterDebtInput{CreditCardID: uuid.New(), CategoryID: f.category.ID, TotalAmount: valueobject.MustParseMoney("1"), InstallmentCount: 1},
			code:  domainerror.ErrCodeCreditCardNotFound,
		},
		{
			name:  "unknown category",
			input: RegisterDebtInput{CreditCardID: card.ID, CategoryID: uuid.New(), TotalAmount: valueobject.MustParseMoney("1"), InstallmentCount: 1},
			code:  domainerror.ErrCodeDebtCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(context.Background(), tt.input)
			var cardErr *domainerror.CreditCardError
			require.ErrorAs(t, err, &cardErr)
			assert.Equal(t, tt.code, cardErr.Code)
		})
	}

	_, err := f.registerDebt(card.ID, "0.00", 2, f.clock.now)
	assert.NoError(t, err, "zero-amount debts are allowed")
}

func TestInvoice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 25, 5)

	next, err := f.nextDate.Execute(ctx, GetNextInvoiceDateInput{CreditCardID: card.ID})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), next.NextInvoiceDate, "before the closing day")

	f.clock.now = time.Date(2024, time.January, 26, 9, 0, 0, 0, time.UTC)
	next, err = f.nextDate.Execute(ctx, GetNextInvoiceDateInput{CreditCardID: card.ID})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), next.NextInvoiceDate, "after the closing day")

	_, err = f.registerDebt(card.ID, "300.00", 3, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = f.registerDebt(card.ID, "50.00", 1, time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	next, err = f.nextDate.Execute(ctx, GetNextInvoiceDateInput{CreditCardID: card.ID})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), next.NextInvoiceDate.UTC())

	tests := []struct {
		month  int
		year   int
		status entity.InvoiceStatus
		amount string
		count  int
	}{
		{month: 1, year: 2024, status: entity.InvoiceStatusClosed, amount: "0.00", count: 0},
		{month: 2, year: 2024, status: entity.InvoiceStatusOpen, amount: "150.00", count: 2},
		{month: 3, year: 2024, status: entity.InvoiceStatusOpen, amount: "100.00", count: 1},
		{month: 2, year: 2025, status: entity.InvoiceStatusOpen, amount: "0.00", count: 0},
		{month: 12, year: 2023, status: entity.InvoiceStatusClosed, amount: "0.00", count: 0},
	}

	for _, tt := range tests {
		out, err := f.invoice.Execute(ctx, GetInvoiceInput{CreditCardID: card.ID, Month: tt.month, Year: tt.year})
		require.NoError(t, err)
		assert.Equal(t, tt.status, out.Status, "%d/%d", tt.month, tt.year)
		assert.Equal(t, tt.amount, out.Amount.String(), "%d/%d", tt.month, tt.year)
		assert.Len(t, out.Payments, tt.count, "%d/%d", tt.month, tt.year)
	}

	_, err = f.invoice.Execute(ctx, GetInvoiceInput{CreditCardID: card.ID, Month: 13, Year: 2024})
	assert.ErrorIs(t, err, domainerror.ErrInvalidInvoicePeriod)
}

func TestPayInvoice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 25, 5)

	wallet := entity.NewWallet("Checking", valueobject.MustParseMoney("500.00"))
	require.NoError(t, f.walletRepo.Create(ctx, wallet))

	debt, err := f.registerDebt(card.ID, "300.00", 3, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "700.00", f.availableCredit(t, card.ID))

	_, err = f.payInvoice.Execute(ctx, PayInvoiceInput{CreditCardID: card.ID, WalletID: uuid.New(), Month: 2, Year: 2024})
	assert.ErrorIs(t, err, domainerror.ErrWalletNotFound)

	out, err := f.payInvoice.Execute(ctx, PayInvoiceInput{CreditCardID: card.ID, WalletID: wallet.ID, Month: 2, Year: 2024})
	require.NoError(t, err)
	require.Len(t, out.Settled, 1)
	require.NotNil(t, out.Settled[0].Entry)
	assert.Equal(t, entity.EntryStatusConfirmed, out.Settled[0].Entry.Status)
	assert.Equal(t, entity.EntryTypeExpense, out.Settled[0].Entry.Type)
	assert.Equal(t, "Laptop (1/3)", out.Settled[0].Entry.Description)

	stored, err := f.walletRepo.FindByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "400.00", stored.Balance.String())
	assert.Equal(t, "800.00", f.availableCredit(t, card.ID))

	again, err := f.payInvoice.Execute(ctx, PayInvoiceInput{CreditCardID: card.ID, WalletID: wallet.ID, Month: 2, Year: 2024})
	require.NoError(t, err)
	assert.Empty(t, again.Settled, "paid installments are not settled twice")

	_, err = f.settle.Execute(ctx, SettlePaymentInput{PaymentID: debt.Payments[0].ID, WalletID: wallet.ID})
	assert.ErrorIs(t, err, domainerror.ErrPaymentAlreadySettled)
	assert.Equal(t, domainerror.KindInvariantViolation, domainerror.KindOf(err))

	err = f.deleteDebt.Execute(ctx, DeleteDebtInput{DebtID: debt.Debt.ID})
	assert.ErrorIs(t, err, domainerror.ErrDebtHasSettledPayments)
	assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err))

	stored, err = f.walletRepo.FindByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "400.00", stored.Balance.String())
}

// stalePaymentRepo keeps returning a payment as it was before any settlement.
type stalePaymentRepo struct {
	adapter.CreditCardPaymentRepository
	stale entity.CreditCardPayment
}

func (r *stalePaymentRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.CreditCardPayment, error) {
	payment := r.stale
	return &payment, nil
}

func TestSettlePayment_SecondSettlementFromStaleRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 25, 5)

	first := entity.NewWallet("Checking", valueobject.MustParseMoney("500.00"))
	require.NoError(t, f.walletRepo.Create(ctx, first))
	second := entity.NewWallet("Savings", valueobject.MustParseMoney("500.00"))
	require.NoError(t, f.walletRepo.Create(ctx, second))

	debt, err := f.registerDebt(card.ID, "300.00", 3, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	pending := *debt.Payments[0]

	_, err = f.settle.Execute(ctx, SettlePaymentInput{PaymentID: pending.ID, WalletID: first.ID})
	require.NoError(t, err)

	racing := NewSettlePaymentUseCase(f.tx, f.locker, f.walletRepo, f.cardRepo, f.debtRepo,
		&stalePaymentRepo{CreditCardPaymentRepository: f.paymentRepo, stale: pending}, f.addEntry, f.clock)
	_, err = racing.Execute(ctx, SettlePaymentInput{PaymentID: pending.ID, WalletID: second.ID})
	assert.ErrorIs(t, err, domainerror.ErrPaymentAlreadySettled)
	assert.Equal(t, domainerror.KindInvariantViolation, domainerror.KindOf(err))

	stored, err := f.paymentRepo.FindByID(ctx, pending.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.SettlingWalletID)
	assert.Equal(t, first.ID, *stored.SettlingWalletID)

	entries, err := f.entryRepo.FindByFilter(ctx, adapter.EntryFilter{WalletID: &second.ID})
	require.NoError(t, err)
	assert.Empty(t, entries)

	reloaded, err := f.walletRepo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", reloaded.Balance.String())
}

func TestArchiveAndDeleteCreditCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	card := f.newCard(t, "1000.00", 25, 5)

	debt, err := f.registerDebt(card.ID, "120.00", 2, f.clock.now)
	require.NoError(t, err)

	_, err = f.update.SetArchived(ctx, SetArchivedInput{CreditCardID: card.ID, Archived: true})
	assert.ErrorIs(t, err, domainerror.ErrCreditCardHasPendingPayments)
	assert.Equal(t, domainerror.KindInvariantViolation, domainerror.KindOf(err))

	err = f.remove.Execute(ctx, DeleteCreditCardInput{CreditCardID: card.ID})
	assert.ErrorIs(t, err, domainerror.ErrCreditCardHasDebts)
	assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err))

	require.NoError(t, f.deleteDebt.Execute(ctx, DeleteDebtInput{DebtID: debt.Debt.ID}))
	payments, err := f.paymentRepo.FindByDebt(ctx, debt.Debt.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.Equal(t, "1000.00", f.availableCredit(t, card.ID))

	archived, err := f.update.SetArchived(ctx, SetArchivedInput{CreditCardID: card.ID, Archived: true})
	require.NoError(t, err)
	assert.True(t, archived.CreditCard.Archived)

	list, err := NewListCreditCardsUseCase(f.cardRepo).Execute(ctx, ListCreditCardsInput{})
	require.NoError(t, err)
	assert.Empty(t, list.CreditCards)

	updated, err := f.update.Execute(ctx, UpdateCreditCardInput{
		CreditCardID:   card.ID,
		Name:           "Renamed",
		MaxDebt:        valueobject.MustParseMoney("2000"),
		ClosingDay:     1,
		BillingDueDay:  2,
		LastFourDigits: "4321",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.CreditCard.Name)
	assert.True(t, updated.CreditCard.Archived)

	require.NoError(t, f.remove.Execute(ctx, DeleteCreditCardInput{CreditCardID: card.ID}))
	_, err = f.available.Execute(ctx, GetAvailableCreditInput{CreditCardID: card.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}
