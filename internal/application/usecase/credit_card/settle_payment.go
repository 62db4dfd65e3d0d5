package creditcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const maxLabelLength = 200

// SettlePaymentInput represents the input for paying one installment.
type SettlePaymentInput struct {
	PaymentID uuid.UUID
	WalletID  uuid.UUID
}

// SettlePaymentOutput represents the output of paying one installment.
// Entry is nil for zero-amount installments.
type SettlePaymentOutput struct {
	Payment *entity.CreditCardPayment
	Entry   *entity.LedgerEntry
}

// SettlePaymentUseCase pays an installment from a wallet. Assigning the
// settling wallet and recording the confirmed expense on that wallet are two
// separate atomic steps; both run while the wallet and card locks are held.
type SettlePaymentUseCase struct {
	transactor  adapter.Transactor
	locker      adapter.WalletLocker
	walletRepo  adapter.WalletRepository
	cardRepo    adapter.CreditCardRepository
	debtRepo    adapter.CreditCardDebtRepository
	paymentRepo adapter.CreditCardPaymentRepository
	addEntry    *ledger.AddEntryUseCase
	clock       adapter.Clock
}

// NewSettlePaymentUseCase creates a new SettlePaymentUseCase instance.
func NewSettlePaymentUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	debtRepo adapter.CreditCardDebtRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
	addEntry *ledger.AddEntryUseCase,
	clock adapter.Clock,
) *SettlePaymentUseCase {
	return &SettlePaymentUseCase{
		transactor:  transactor,
		locker:      locker,
		walletRepo:  walletRepo,
		cardRepo:    cardRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		addEntry:    addEntry,
		clock:       clock,
	}
}

// Execute settles the payment and records the matching expense.
func (uc *SettlePaymentUseCase) Execute(ctx context.Context, input SettlePaymentInput) (*SettlePaymentOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, paymentLookupError(err)
	}
	debt, err := findDebt(ctx, uc.debtRepo, payment.DebtID)
	if err != nil {
		return nil, err
	}

	ctx, unlock, err := ledger.LockWallets(ctx, uc.locker, input.WalletID, debt.CreditCardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := uc.clock.Now()

	var card *entity.CreditCard
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		payment, err = uc.paymentRepo.FindByID(ctx, input.PaymentID)
		if err != nil {
			return paymentLookupError(err)
		}

		if payment.IsPaid() {
			return domainerror.NewCreditCardError(
				domainerror.ErrCodePaymentAlreadySettled,
				fmt.Sprintf("payment was already settled from wallet %s", payment.SettlingWalletID),
				domainerror.ErrPaymentAlreadySettled,
			)
		}

		if err := checkSettlingWallet(ctx, uc.walletRepo, input.WalletID); err != nil {
			return err
		}

		if card, err = findCard(ctx, uc.cardRepo, debt.CreditCardID); err != nil {
			return err
		}

		payment.Settle(input.WalletID, now)
		if err := uc.paymentRepo.Settle(ctx, payment); err != nil {
			if errors.Is(err, domainerror.ErrPaymentAlreadySettled) {
				return domainerror.NewCreditCardError(
					domainerror.ErrCodePaymentAlreadySettled,
					"payment was already settled",
					domainerror.ErrPaymentAlreadySettled,
				)
			}
			if errors.Is(err, domainerror.ErrCreditCardPaymentNotFound) {
				return paymentLookupError(err)
			}
			return fmt.Errorf("failed to settle payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Credit card payment settled",
		"payment_id", payment.ID,
		"debt_id", debt.ID,
		"wallet_id", input.WalletID,
		"amount", payment.Amount.String(),
	)

	output := &SettlePaymentOutput{Payment: payment}
	if !payment.Amount.IsPositive() {
		return output, nil
	}

	entryOut, err := uc.addEntry.Execute(ctx, ledger.AddEntryInput{
		WalletID:    input.WalletID,
		CategoryID:  debt.CategoryID,
		Type:        entity.EntryTypeExpense,
		Status:      entity.EntryStatusConfirmed,
		Amount:      payment.Amount,
		Date:        now,
		Description: installmentDescription(card, debt, payment),
	})
	if err != nil {
		slog.Error("Failed to record expense for settled payment",
			"payment_id", payment.ID,
			"wallet_id", input.WalletID,
			"error", err,
		)
		return output, fmt.Errorf("payment %s settled but its expense entry failed: %w", payment.ID, err)
	}
	output.Entry = entryOut.Entry

	return output, nil
}

// paymentLookupError converts a repository lookup failure into a domain error.
func paymentLookupError(err error) error {
	if errors.Is(err, domainerror.ErrCreditCardPaymentNotFound) {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardPaymentNotFound,
			"payment not found",
			domainerror.ErrCreditCardPaymentNotFound,
		)
	}
	return fmt.Errorf("failed to find payment: %w", err)
}

func checkSettlingWallet(ctx context.Context, walletRepo adapter.WalletRepository, walletID uuid.UUID) error {
	if _, err := walletRepo.FindByID(ctx, walletID); err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return domainerror.NewCreditCardError(
				domainerror.ErrCodeSettlingWalletNotFound,
				"settling wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return fmt.Errorf("failed to find wallet: %w", err)
	}
	return nil
}

func installmentDescription(card *entity.CreditCard, debt *entity.CreditCardDebt, payment *entity.CreditCardPayment) string {
	label := debt.Description
	if label == "" {
		label = card.Name
	}
	if r := []rune(label); len(r) > maxLabelLength {
		label = string(r[:maxLabelLength])
	}
	return fmt.Sprintf("%s (%d/%d)", label, payment.InstallmentIndex, debt.InstallmentCount)
}

// PayInvoiceInput represents the input for paying a monthly invoice.
type PayInvoiceInput struct {
	CreditCardID uuid.UUID
	WalletID     uuid.UUID
	Month        int
	Year         int
}

// PayInvoiceOutput represents the output of paying a monthly invoice.
type PayInvoiceOutput struct {
	Settled []*SettlePaymentOutput
}

// PayInvoiceUseCase settles every pending installment due in a month from one wallet.
type PayInvoiceUseCase struct {
	locker      adapter.WalletLocker
	walletRepo  adapter.WalletRepository
	cardRepo    adapter.CreditCardRepository
	paymentRepo adapter.CreditCardPaymentRepository
	settle      *SettlePaymentUseCase
}

// NewPayInvoiceUseCase creates a new PayInvoiceUseCase instance.
func NewPayInvoiceUseCase(
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	cardRepo adapter.CreditCardRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
	settle *SettlePaymentUseCase,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		locker:      locker,
		walletRepo:  walletRepo,
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
		settle:      settle,
	}
}

// Execute pays the invoice. Payments settled before a failure stay settled
// and are returned alongside the error.
func (uc *PayInvoiceUseCase) Execute(ctx context.Context, input PayInvoiceInput) (*PayInvoiceOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	ctx, unlock, err := ledger.LockWallets(ctx, uc.locker, input.WalletID, card.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := checkSettlingWallet(ctx, uc.walletRepo, input.WalletID); err != nil {
		return nil, err
	}

	pending, err := uc.paymentRepo.FindByCardAndMonth(ctx, card.ID, time.Month(input.Month), input.Year, true)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending payments: %w", err)
	}

	output := &PayInvoiceOutput{Settled: make([]*SettlePaymentOutput, 0, len(pending))}
	for _, payment := range pending {
		settled, err := uc.settle.Execute(ctx, SettlePaymentInput{
			PaymentID: payment.ID,
			WalletID:  input.WalletID,
		})
		if settled != nil {
			output.Settled = append(output.Settled, settled)
		}
		if err != nil {
			return output, err
		}
	}

	slog.Info("Credit card invoice paid",
		"credit_card_id", card.ID,
		"wallet_id", input.WalletID,
		"month", input.Month,
		"year", input.Year,
		"payments", len(output.Settled),
	)

	return output, nil
}
