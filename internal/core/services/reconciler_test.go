package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledExpense(expenseID string, date time.Time, amount string) domain.CashEvent {
	return domain.CashEvent{
		Date:               date,
		Amount:             dec(amount),
		Description:        "Scheduled " + expenseID,
		Type:               domain.EventFixedExpense,
		Origin:             domain.OriginConfigured,
		RecurringExpenseID: strPtr(expenseID),
	}
}

func actualizedIDs(events []domain.CashEvent) map[string]string {
	out := make(map[string]string)
	for _, e := range events {
		if e.TransactionID != nil {
			out[*e.TransactionID] = e.Date.Format("2006-01-02")
		}
	}
	return out
}

func TestReconcileEvents_ExactMatch(t *testing.T) {
	events := []domain.CashEvent{scheduledExpense("rent", day(2025, time.March, 1), "-1500")}
	// Time of day is ignored when comparing dates.
	txns := []domain.Transaction{expenseTxn("t1", "rent", time.Date(2025, time.March, 1, 23, 30, 0, 0, time.UTC), "-1525.5")}

	out := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)

	require.Len(t, out, 1)
	e := out[0]
	assert.True(t, e.Actualized)
	assert.Equal(t, "t1", *e.TransactionID)
	assert.True(t, e.Amount.Equal(dec("-1525.5")))
	require.NotNil(t, e.ForecastedAmount)
	assert.True(t, e.ForecastedAmount.Equal(dec("-1500")))
	assert.True(t, e.Variance().Equal(dec("-25.5")))
	assert.Equal(t, "txn t1", e.Description)
	assert.Equal(t, day(2025, time.March, 1), e.Date)

	// The input is left untouched.
	assert.False(t, events[0].Actualized)
	assert.Nil(t, events[0].TransactionID)
}

func TestReconcileEvents_FuzzyWindowBoundary(t *testing.T) {
	tests := []struct {
		name        string
		txnDate     time.Time
		wantMatched bool
	}{
		{name: "seven days late matches", txnDate: day(2025, time.March, 17), wantMatched: true},
		{name: "seven days early matches", txnDate: day(2025, time.March, 3), wantMatched: true},
		{name: "eight days late does not", txnDate: day(2025, time.March, 18), wantMatched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []domain.CashEvent{scheduledExpense("gym", day(2025, time.March, 10), "-50")}
			txns := []domain.Transaction{expenseTxn("t1", "gym", tt.txnDate, "-50")}

			out := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)

			if tt.wantMatched {
				require.Len(t, out, 1)
				assert.True(t, out[0].Actualized)
				assert.Equal(t, tt.txnDate, out[0].Date)
				return
			}
			// The scheduled event stays and the transaction is surfaced on its own.
			require.Len(t, out, 2)
			assert.False(t, out[0].Actualized)
			assert.True(t, out[1].Actualized)
			assert.Nil(t, out[1].ForecastedAmount)
			assert.Equal(t, domain.EventFixedExpense, out[1].Type)
		})
	}
}

func TestReconcileEvents_ExactBeatsNeighbourFuzzy(t *testing.T) {
	// Two weekly events a week apart; the transaction dated on the second one
	// must not be taken by the first through the fuzzy window.
	events := []domain.CashEvent{
		scheduledExpense("cleaner", day(2025, time.March, 5), "-80"),
		scheduledExpense("cleaner", day(2025, time.March, 12), "-80"),
	}
	txns := []domain.Transaction{
		expenseTxn("late", "cleaner", day(2025, time.March, 12), "-80"),
	}

	out := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)

	require.Len(t, out, 2)
	assert.False(t, out[0].Actualized)
	assert.True(t, out[1].Actualized)
	assert.Equal(t, map[string]string{"late": "2025-03-12"}, actualizedIDs(out))
}

func TestReconcileEvents_FuzzyTiePicksEarliest(t *testing.T) {
	events := []domain.CashEvent{scheduledExpense("gym", day(2025, time.March, 10), "-50")}
	txns := []domain.Transaction{
		expenseTxn("after", "gym", day(2025, time.March, 12), "-51"),
		expenseTxn("before", "gym", day(2025, time.March, 8), "-49"),
	}

	out := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)

	require.Len(t, out, 2)
	assert.Equal(t, "before", *out[0].TransactionID)
	assert.Equal(t, "after", *out[1].TransactionID)
}

func TestReconcileEvents_TransactionConsumedOnce(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.March, 1), Amount: dec("750"), Type: domain.EventIncome, IncomeRuleID: strPtr("salary")},
		{Date: day(2025, time.March, 3), Amount: dec("750"), Type: domain.EventIncome, IncomeRuleID: strPtr("salary")},
	}
	txns := []domain.Transaction{incomeTxn("pay", "salary", day(2025, time.March, 2), "760")}

	out := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)

	require.Len(t, out, 2)
	matched := 0
	for _, e := range out {
		if e.Actualized {
			matched++
		}
	}
	assert.Equal(t, 1, matched)
}

func TestReconcileEvents_OneOffAndLeftovers(t *testing.T) {
	expenses := map[string]domain.RecurringExpense{
		"food": {ExpenseID: "food", IsVariable: true},
	}
	txns := []domain.Transaction{
		{TransactionID: "refund", Date: day(2025, time.March, 4), Amount: dec("20"), Description: "Refund"},
		{TransactionID: "coffee", Date: day(2025, time.March, 2), Amount: dec("-4.5"), Description: "Coffee"},
		expenseTxn("groceries", "food", day(2025, time.March, 6), "-60"),
		incomeTxn("bonus", "salary", day(2025, time.March, 5), "300"),
	}

	out := services.ReconcileEvents(nil, txns, expenses, services.DefaultFuzzyMatchWindowDays)

	require.Len(t, out, 4)
	byID := make(map[string]domain.CashEvent)
	for _, e := range out {
		byID[*e.TransactionID] = e
	}
	assert.Equal(t, domain.EventIncome, byID["refund"].Type)
	assert.Equal(t, domain.EventFixedExpense, byID["coffee"].Type)
	assert.Equal(t, domain.EventVariableExpense, byID["groceries"].Type)
	assert.Equal(t, domain.EventIncome, byID["bonus"].Type)
	for _, e := range out {
		assert.True(t, e.Actualized)
	}
	assert.Equal(t, "coffee", *out[0].TransactionID, "result is date ordered")
}

func TestReconcileEvents_Idempotent(t *testing.T) {
	events := []domain.CashEvent{
		scheduledExpense("rent", day(2025, time.March, 1), "-1500"),
		scheduledExpense("gym", day(2025, time.March, 10), "-50"),
		{Date: day(2025, time.March, 15), Amount: dec("750"), Type: domain.EventIncome, IncomeRuleID: strPtr("salary")},
	}
	txns := []domain.Transaction{
		expenseTxn("t-rent", "rent", day(2025, time.March, 1), "-1500"),
		expenseTxn("t-gym", "gym", day(2025, time.March, 13), "-55"),
		expenseTxn("t-gym-extra", "gym", day(2025, time.March, 25), "-20"),
		{TransactionID: "t-misc", Date: day(2025, time.March, 20), Amount: dec("-9.99")},
	}

	once := services.ReconcileEvents(events, txns, nil, services.DefaultFuzzyMatchWindowDays)
	twice := services.ReconcileEvents(once, txns, nil, services.DefaultFuzzyMatchWindowDays)

	assert.Equal(t, once, twice)
	assert.Len(t, actualizedIDs(twice), 4)
}
