package recurring

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
	templateRepo adapter.RecurringTemplateRepository

	create  *CreateTemplateUseCase
	update  *UpdateTemplateUseCase
	process *ProcessDueTemplatesUseCase

	wallet   *entity.Wallet
	category *entity.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := sqlitetest.Open(t)
	tx := persistence.NewTransactor(db)
	locker := lock.NewLocalLocker()
	categoryRepo := persistence.NewCategoryRepository(db)

	f := &fixture{
		clock:        &fixedClock{now: time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		tx:           tx,
		locker:       locker,
		walletRepo:   persistence.NewWalletRepository(db),
		entryRepo:    persistence.NewLedgerEntryRepository(db),
		templateRepo: persistence.NewRecurringTemplateRepository(db),
	}

	addEntry := ledger.NewAddEntryUseCase(tx, locker, f.walletRepo, f.entryRepo, categoryRepo)
	f.addEntry = addEntry
	f.create = NewCreateTemplateUseCase(f.templateRepo, f.walletRepo, categoryRepo, f.clock, time.Time{})
	f.update = NewUpdateTemplateUseCase(locker, f.templateRepo, f.walletRepo, categoryRepo)
	f.process = NewProcessDueTemplatesUseCase(tx, locker, f.templateRepo, f.entryRepo, addEntry)

	f.wallet = entity.NewWallet("Checking", valueobject.MustParseMoney("100.00"))
	require.NoError(t, f.walletRepo.Create(ctx, f.wallet))
	f.category = entity.NewCategory("Rent", entity.EntryTypeExpense)
	require.NoError(t, categoryRepo.Create(ctx, f.category))

	return f
}

// storeTemplate persists a template directly, bypassing the start date check.
func (f *fixture) storeTemplate(t *testing.T, walletID uuid.UUID, start, end time.Time, frequency valueobject.Frequency) *entity.RecurringTemplate {
	t.Helper()
	template := entity.NewRecurringTemplate(
		walletID,
		f.category.ID,
		entity.EntryTypeExpense,
		valueobject.MustParseMoney("12.50"),
		start,
		end,
		frequency,
		"Gym",
	)
	require.NoError(t, f.templateRepo.Create(context.Background(), template))
	return template
}

func (f *fixture) today() time.Time {
	return valueobject.StartOfDay(f.clock.now)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTemplateUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	today := f.today()

	valid := func() CreateTemplateInput {
		end := today.AddDate(0, 0, 1)
		return CreateTemplateInput{
			WalletID:   f.wallet.ID,
			CategoryID: f.category.ID,
			Type:       entity.EntryTypeExpense,
			Amount:     valueobject.MustParseMoney("10"),
			StartDate:  today,
			EndDate:    &end,
			Frequency:  valueobject.FrequencyDaily,
		}
	}

	out, err := f.create.Execute(ctx, valid())
	require.NoError(t, err)
	assert.Equal(t, valueobject.EndOfDay(today), out.Template.NextDueDate)
	assert.Equal(t, entity.RecurringStatusActive, out.Template.Status)

	noEnd := valid()
	noEnd.EndDate = nil
	out, err = f.create.Execute(ctx, noEnd)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndDate, out.Template.EndDate)

	at := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name   string
		mutate func(*CreateTemplateInput)
		code   domainerror.RecurringErrorCode
	}{
		{name: "zero amount", mutate: func(in *CreateTemplateInput) { in.Amount = valueobject.Zero }, code: domainerror.ErrCodeInvalidRecurringAmount},
		{name: "unknown frequency", mutate: func(in *CreateTemplateInput) { in.Frequency = "hourly" }, code: domainerror.ErrCodeInvalidFrequency},
		{name: "unknown wallet", mutate: func(in *CreateTemplateInput) { in.WalletID = uuid.New() }, code: domainerror.ErrCodeRecurringWalletNotFound},
		{name: "unknown category", mutate: func(in *CreateTemplateInput) { in.CategoryID = uuid.New() }, code: domainerror.ErrCodeRecurringCategoryNotFound},
		{name: "start yesterday", mutate: func(in *CreateTemplateInput) { in.StartDate = today.AddDate(0, 0, -1) }, code: domainerror.ErrCodeStartDateInPast},
		{name: "end before start", mutate: func(in *CreateTemplateInput) { in.EndDate = at(today.AddDate(0, 0, -1)) }, code: domainerror.ErrCodeEndDateBeforeStartDate},
		{name: "daily same day", mutate: func(in *CreateTemplateInput) { in.EndDate = at(today) }, code: domainerror.ErrCodeIntervalTooShort},
		{
			name: "weekly six days",
			mutate: func(in *CreateTemplateInput) {
				in.Frequency = valueobject.FrequencyWeekly
				in.EndDate = at(today.AddDate(0, 0, 6))
			},
			code: domainerror.ErrCodeIntervalTooShort,
		},
		{
			name: "monthly short month",
			mutate: func(in *CreateTemplateInput) {
				in.Frequency = valueobject.FrequencyMonthly
				in.StartDate = date(2024, time.March, 31)
				in.EndDate = at(date(2024, time.April, 29))
			},
			code: domainerror.ErrCodeIntervalTooShort,
		},
		{
			name: "yearly eleven months",
			mutate: func(in *CreateTemplateInput) {
				in.Frequency = valueobject.FrequencyYearly
				in.EndDate = at(today.AddDate(0, 11, 0))
			},
			code: domainerror.ErrCodeIntervalTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)

			_, err := f.create.Execute(ctx, input)
			var recErr *domainerror.RecurringError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, tt.code, recErr.Code)
		})
	}

	t.Run("monthly clamps to the last day", func(t *testing.T) {
		input := valid()
		input.Frequency = valueobject.FrequencyMonthly
		input.StartDate = date(2024, time.March, 31)
		input.EndDate = at(date(2024, time.April, 30))

		_, err := f.create.Execute(ctx, input)
		assert.NoError(t, err)
	})
}

func TestProcessDueTemplates_CatchUp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	today := f.today()
	now := valueobject.EndOfDay(today)

	template := f.storeTemplate(t, f.wallet.ID, today.AddDate(0, 0, -9), DefaultEndDate, valueobject.FrequencyDaily)

	out, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: now})
	require.NoError(t, err)
	require.Len(t, out.Created, 10)
	assert.Empty(t, out.Failed)
	assert.Empty(t, out.Skipped)

	for i, entry := range out.Created {
		assert.Equal(t, valueobject.EndOfDay(today.AddDate(0, 0, i-9)), entry.Date.UTC(), "occurrences are generated oldest first")
		assert.Equal(t, entity.EntryStatusPending, entry.Status)
		require.NotNil(t, entry.RecurringTemplateID)
		assert.Equal(t, template.ID, *entry.RecurringTemplateID)
	}

	stored, err := f.templateRepo.FindByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, valueobject.EndOfDay(today.AddDate(0, 0, 1)), stored.NextDueDate.UTC())
	assert.Equal(t, entity.RecurringStatusActive, stored.Status)

	wallet, err := f.walletRepo.FindByID(ctx, f.wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", wallet.Balance.String(), "generated entries are pending")

	t.Run("second pass is a no-op", func(t *testing.T) {
		out, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: now})
		require.NoError(t, err)
		assert.Empty(t, out.Created)
		assert.Empty(t, out.Skipped)
	})

	t.Run("lost next due date does not duplicate entries", func(t *testing.T) {
		stored.NextDueDate = valueobject.EndOfDay(today.AddDate(0, 0, -9))
		require.NoError(t, f.templateRepo.Update(ctx, stored))

		out, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: now})
		require.NoError(t, err)
		assert.Empty(t, out.Created)
		assert.Len(t, out.Skipped, 10)

		entries, err := f.entryRepo.FindByFilter(ctx, adapter.EntryFilter{WalletID: &f.wallet.ID})
		require.NoError(t, err)
		assert.Len(t, entries, 10)

		reloaded, err := f.templateRepo.FindByID(ctx, template.ID)
		require.NoError(t, err)
		assert.Equal(t, valueobject.EndOfDay(today.AddDate(0, 0, 1)), reloaded.NextDueDate.UTC())
	})
}

func TestProcessDueTemplates_Frequencies(t *testing.T) {
	tests := []struct {
		name      string
		frequency valueobject.Frequency
		start     time.Time
		now       time.Time
		wantDates []time.Time
		wantNext  time.Time
	}{
		{
			name:      "weekly",
			frequency: valueobject.FrequencyWeekly,
			start:     date(2024, time.February, 20),
			now:       time.Date(2024, time.March, 12, 8, 0, 0, 0, time.UTC),
			wantDates: []time.Time{date(2024, time.February, 20), date(2024, time.February, 27), date(2024, time.March, 5)},
			wantNext:  date(2024, time.March, 12),
		},
		{
			name:      "monthly from the 31st",
			frequency: valueobject.FrequencyMonthly,
			start:     date(2023, time.December, 31),
			now:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantDates: []time.Time{date(2023, time.December, 31), date(2024, time.January, 31), date(2024, time.February, 29)},
			wantNext:  date(2024, time.March, 29),
		},
		{
			name:      "yearly from leap day",
			frequency: valueobject.FrequencyYearly,
			start:     date(2020, time.February, 29),
			now:       time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantDates: []time.Time{date(2020, time.February, 29), date(2021, time.February, 28), date(2022, time.February, 28), date(2023, time.February, 28), date(2024, time.February, 28)},
			wantNext:  date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			template := f.storeTemplate(t, f.wallet.ID, tt.start, DefaultEndDate, tt.frequency)

			out, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: tt.now})
			require.NoError(t, err)
			require.Len(t, out.Created, len(tt.wantDates))
			for i, want := range tt.wantDates {
				assert.Equal(t, valueobject.EndOfDay(want), out.Created[i].Date.UTC())
			}

			stored, err := f.templateRepo.FindByID(ctx, template.ID)
			require.NoError(t, err)
			assert.Equal(t, valueobject.EndOfDay(tt.wantNext), stored.NextDueDate.UTC())
		})
	}
}

func TestProcessDueTemplates_Isolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	today := f.today()
	now := valueobject.EndOfDay(today)

	orphan := f.storeTemplate(t, uuid.New(), today.AddDate(0, 0, -2), DefaultEndDate, valueobject.FrequencyDaily)
	healthy := f.storeTemplate(t, f.wallet.ID, today.AddDate(0, 0, -1), DefaultEndDate, valueobject.FrequencyDaily)
	ended := f.storeTemplate(t, f.wallet.ID, today.AddDate(0, 0, -30), today.AddDate(0, 0, -3), valueobject.FrequencyWeekly)
	future := f.storeTemplate(t, f.wallet.ID, today.AddDate(0, 0, 5), DefaultEndDate, valueobject.FrequencyDaily)

	out, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: now})
	require.NoError(t, err)
	assert.Len(t, out.Created, 2)
	assert.Len(t, out.Failed, 3)
	assert.Equal(t, 1, out.Deactivated)
	assert.Zero(t, out.Errors)

	for _, occurrence := range out.Failed {
		assert.Equal(t, orphan.ID, occurrence.TemplateID)
	}

	reloaded := func(id uuid.UUID) *entity.RecurringTemplate {
		template, err := f.templateRepo.FindByID(ctx, id)
		require.NoError(t, err)
		return template
	}

	assert.Equal(t, valueobject.EndOfDay(today.AddDate(0, 0, 1)), reloaded(orphan.ID).NextDueDate.UTC(), "failed occurrences are skipped")
	assert.Equal(t, valueobject.EndOfDay(today.AddDate(0, 0, 1)), reloaded(healthy.ID).NextDueDate.UTC())
	assert.Equal(t, entity.RecurringStatusInactive, reloaded(ended.ID).Status)
	assert.Equal(t, ended.NextDueDate, reloaded(ended.ID).NextDueDate.UTC(), "ended templates are not caught up")
	assert.Equal(t, future.NextDueDate, reloaded(future.ID).NextDueDate.UTC())
	assert.Equal(t, entity.RecurringStatusActive, reloaded(future.ID).Status)
}

func TestStopAndDeleteTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	template := f.storeTemplate(t, f.wallet.ID, f.today(), DefaultEndDate, valueobject.FrequencyMonthly)

	out, err := f.update.Stop(ctx, StopTemplateInput{TemplateID: template.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.RecurringStatusInactive, out.Template.Status)

	_, err = f.update.Stop(ctx, StopTemplateInput{TemplateID: template.ID})
	assert.ErrorIs(t, err, domainerror.ErrRecurringTemplateInactive)
	assert.Equal(t, domainerror.KindInvariantViolation, domainerror.KindOf(err))

	processed, err := f.process.Execute(ctx, ProcessDueTemplatesInput{Now: valueobject.EndOfDay(f.today())})
	require.NoError(t, err)
	assert.Empty(t, processed.Created, "stopped templates generate nothing")

	active := entity.RecurringStatusActive
	list, err := NewListTemplatesUseCase(f.templateRepo).Execute(ctx, ListTemplatesInput{Status: &active})
	require.NoError(t, err)
	assert.Empty(t, list.Templates)

	remove := NewDeleteTemplateUseCase(f.locker, f.templateRepo)
	require.NoError(t, remove.Execute(ctx, DeleteTemplateInput{TemplateID: template.ID}))

	err = remove.Execute(ctx, DeleteTemplateInput{TemplateID: template.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	_, err = f.update.Stop(ctx, StopTemplateInput{TemplateID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrRecurringTemplateNotFound)
}

// listHookRepo runs afterList once the active templates have been listed.
type listHookRepo struct {
	adapter.RecurringTemplateRepository
	afterList func()
}

func (r *listHookRepo) FindByStatus(ctx context.Context, status entity.RecurringStatus) ([]*entity.RecurringTemplate, error) {
	templates, err := r.RecurringTemplateRepository.FindByStatus(ctx, status)
	if err == nil && r.afterList != nil {
		r.afterList()
	}
	return templates, err
}

func TestProcessDueTemplates_ChangedAfterListing(t *testing.T) {
	ctx := context.Background()

	t.Run("stopped template generates nothing", func(t *testing.T) {
		f := newFixture(t)
		template := f.storeTemplate(t, f.wallet.ID, f.today().AddDate(0, 0, -2), DefaultEndDate, valueobject.FrequencyDaily)

		repo := &listHookRepo{RecurringTemplateRepository: f.templateRepo, afterList: func() {
			_, err := f.update.Stop(ctx, StopTemplateInput{TemplateID: template.ID})
			require.NoError(t, err)
		}}
		process := NewProcessDueTemplatesUseCase(f.tx, f.locker, repo, f.entryRepo, f.addEntry)

		out, err := process.Execute(ctx, ProcessDueTemplatesInput{Now: valueobject.EndOfDay(f.today())})
		require.NoError(t, err)
		assert.Empty(t, out.Created)

		stored, err := f.templateRepo.FindByID(ctx, template.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RecurringStatusInactive, stored.Status)
		assert.Equal(t, template.NextDueDate, stored.NextDueDate.UTC())
	})

	t.Run("edit is kept and the next due date advances", func(t *testing.T) {
		f := newFixture(t)
		template := f.storeTemplate(t, f.wallet.ID, f.today().AddDate(0, 0, -2), DefaultEndDate, valueobject.FrequencyDaily)

		repo := &listHookRepo{RecurringTemplateRepository: f.templateRepo, afterList: func() {
			_, err := f.update.Execute(ctx, UpdateTemplateInput{
				TemplateID:  template.ID,
				WalletID:    f.wallet.ID,
				CategoryID:  f.category.ID,
				Type:        entity.EntryTypeExpense,
				Amount:      valueobject.MustParseMoney("20.00"),
				EndDate:     DefaultEndDate,
				Frequency:   valueobject.FrequencyDaily,
				Description: "Pool",
			})
			require.NoError(t, err)
		}}
		process := NewProcessDueTemplatesUseCase(f.tx, f.locker, repo, f.entryRepo, f.addEntry)

		out, err := process.Execute(ctx, ProcessDueTemplatesInput{Now: valueobject.EndOfDay(f.today())})
		require.NoError(t, err)
		require.Len(t, out.Created, 3)
		for _, entry := range out.Created {
			assert.Equal(t, "20.00", entry.Amount.String())
			assert.Equal(t, "Pool", entry.Description)
		}

		stored, err := f.templateRepo.FindByID(ctx, template.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pool", stored.Description)
		assert.Equal(t, "20.00", stored.Amount.String())
		assert.Equal(t, valueobject.EndOfDay(f.today().AddDate(0, 0, 1)), stored.NextDueDate.UTC())
	})

	t.Run("deleted template is skipped", func(t *testing.T) {
		f := newFixture(t)
		template := f.storeTemplate(t, f.wallet.ID, f.today().AddDate(0, 0, -2), DefaultEndDate, valueobject.FrequencyDaily)

		repo := &listHookRepo{RecurringTemplateRepository: f.templateRepo, afterList: func() {
			require.NoError(t, NewDeleteTemplateUseCase(f.locker, f.templateRepo).Execute(ctx, DeleteTemplateInput{TemplateID: template.ID}))
		}}
		process := NewProcessDueTemplatesUseCase(f.tx, f.locker, repo, f.entryRepo, f.addEntry)

		out, err := process.Execute(ctx, ProcessDueTemplatesInput{Now: valueobject.EndOfDay(f.today())})
		require.NoError(t, err)
		assert.Empty(t, out.Created)
		assert.Zero(t, out.Errors)

		_, err = f.templateRepo.FindByID(ctx, template.ID)
		assert.ErrorIs(t, err, domainerror.ErrRecurringTemplateNotFound)
	})
}

func TestUpdateTemplateUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := f.today().AddDate(0, -2, 0)
	template := f.storeTemplate(t, f.wallet.ID, start, DefaultEndDate, valueobject.FrequencyMonthly)

	input := UpdateTemplateInput{
		TemplateID:  template.ID,
		WalletID:    f.wallet.ID,
		CategoryID:  f.category.ID,
		Type:        entity.EntryTypeIncome,
		Amount:      valueobject.MustParseMoney("99.99"),
		EndDate:     start.AddDate(1, 0, 0),
		Frequency:   valueobject.FrequencyWeekly,
		Description: "Side job",
	}

	out, err := f.update.Execute(ctx, input)
	require.NoError(t, err, "a start date in the past is allowed on update")
	assert.Equal(t, "99.99", out.Template.Amount.String())
	assert.Equal(t, valueobject.EndOfDay(start.AddDate(1, 0, 0)), out.Template.EndDate)
	assert.Equal(t, template.NextDueDate, out.Template.NextDueDate.UTC())

	input.EndDate = start.AddDate(0, 0, 3)
	_, err = f.update.Execute(ctx, input)
	assert.ErrorIs(t, err, domainerror.ErrIntervalTooShort)

	input.EndDate = start.AddDate(0, 0, -1)
	_, err = f.update.Execute(ctx, input)
	assert.ErrorIs(t, err, domainerror.ErrEndDateBeforeStartDate)
}

func TestLastOccurrenceDate(t *testing.T) {
	tests := []struct {
		name      string
		frequency valueobject.Frequency
		start     time.Time
		end       time.Time
		want      time.Time
	}{
		{name: "daily", frequency: valueobject.FrequencyDaily, start: date(2024, time.January, 1), end: date(2024, time.January, 10), want: date(2024, time.January, 10)},
		{name: "weekly", frequency: valueobject.FrequencyWeekly, start: date(2024, time.January, 1), end: date(2024, time.January, 20), want: date(2024, time.January, 15)},
		{name: "monthly", frequency: valueobject.FrequencyMonthly, start: date(2024, time.January, 15), end: date(2024, time.June, 14), want: date(2024, time.May, 15)},
		{name: "monthly short month", frequency: valueobject.FrequencyMonthly, start: date(2024, time.January, 31), end: date(2024, time.March, 30), want: date(2024, time.February, 29)},
		{name: "yearly", frequency: valueobject.FrequencyYearly, start: date(2024, time.January, 1), end: date(2026, time.December, 31), want: date(2026, time.January, 1)},
		{name: "yearly from leap day", frequency: valueobject.FrequencyYearly, start: date(2024, time.February, 29), end: date(2025, time.February, 28), want: date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastOccurrenceDate(tt.start, tt.end, tt.frequency))
		})
	}
}

func TestComputeLastOccurrenceDateUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewComputeLastOccurrenceDateUseCase(f.clock)

	out, err := uc.Execute(context.Background(), ComputeLastOccurrenceDateInput{
		StartDate: f.today(),
		EndDate:   f.today().AddDate(0, 0, 20),
		Frequency: valueobject.FrequencyWeekly,
	})
	require.NoError(t, err)
	assert.Equal(t, f.today().AddDate(0, 0, 14), out.LastOccurrenceDate)

	_, err = uc.Execute(context.Background(), ComputeLastOccurrenceDateInput{
		StartDate: f.today().AddDate(0, 0, -1),
		EndDate:   f.today().AddDate(0, 0, 20),
		Frequency: valueobject.FrequencyWeekly,
	})
	assert.ErrorIs(t, err, domainerror.ErrStartDateInPast)
}

func TestProjectOccurrencesUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	monthly := f.storeTemplate(t, f.wallet.ID, date(2024, time.March, 20), DefaultEndDate, valueobject.FrequencyMonthly)
	f.storeTemplate(t, f.wallet.ID, date(2024, time.March, 20), date(2024, time.April, 10), valueobject.FrequencyWeekly)

	out, err := NewProjectOccurrencesUseCase(f.templateRepo).Execute(ctx, ProjectOccurrencesInput{
		From: date(2024, time.April, 1),
		To:   date(2024, time.June, 20),
	})
	require.NoError(t, err)

	var monthlyDates, weeklyDates []time.Time
	for _, entry := range out.Entries {
		assert.Equal(t, entity.EntryStatusPending, entry.Status)
		if *entry.RecurringTemplateID == monthly.ID {
			monthlyDates = append(monthlyDates, entry.Date)
		} else {
			weeklyDates = append(weeklyDates, entry.Date)
		}
	}

	assert.Equal(t, []time.Time{
		valueobject.EndOfDay(date(2024, time.April, 20)),
		valueobject.EndOfDay(date(2024, time.May, 20)),
		valueobject.EndOfDay(date(2024, time.June, 20)),
	}, monthlyDates)
	assert.Equal(t, []time.Time{
		valueobject.EndOfDay(date(2024, time.April, 3)),
		valueobject.EndOfDay(date(2024, time.April, 10)),
	}, weeklyDates)

	stored, err := f.templateRepo.FindByID(ctx, monthly.ID)
	require.NoError(t, err)
	assert.Equal(t, monthly.NextDueDate, stored.NextDueDate.UTC(), "projection does not advance templates")

	entries, err := f.entryRepo.FindByFilter(ctx, adapter.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWorker(t *testing.T) {
	f := newFixture(t)
	f.storeTemplate(t, f.wallet.ID, f.today(), DefaultEndDate, valueobject.FrequencyDaily)
	f.clock.now = valueobject.EndOfDay(f.today())

	worker := NewWorker(f.process, f.clock, "not a spec", time.Minute)
	assert.Error(t, worker.Start(false))

	worker = NewWorker(f.process, f.clock, "@every 1h", time.Minute)
	require.NoError(t, worker.Start(true))
	worker.Stop()

	entries, err := f.entryRepo.FindByFilter(context.Background(), adapter.EntryFilter{WalletID: &f.wallet.ID})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
