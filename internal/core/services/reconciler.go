package services

import (
	"sort"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
)

// DefaultFuzzyMatchWindowDays is how far a linked transaction may drift from
// its scheduled date and still actualize the event.
const DefaultFuzzyMatchWindowDays = 7

// ReconcileEvents overlays actual transactions on generated events and returns
// a new, date-sorted slice. Neither input is modified.
//
// Linked transactions first match an event of the same rule on the same day,
// then the nearest event within window days. Each transaction actualizes at
// most one event; events that already carry a transaction id keep it, which
// makes the function idempotent. Linked transactions left over, and every
// one-off transaction, become events of their own.
//
// expenses is used to type leftover expense-linked transactions as fixed or
// variable; it may be nil.
func ReconcileEvents(events []domain.CashEvent, txns []domain.Transaction, expenses map[string]domain.RecurringExpense, window int) []domain.CashEvent {
	out := make([]domain.CashEvent, len(events), len(events)+len(txns))
	copy(out, events)

	consumed := make(map[string]bool, len(txns))
	for _, e := range out {
		if e.TransactionID != nil {
			consumed[*e.TransactionID] = true
		}
	}

	linked := make(map[string][]domain.Transaction)
	var oneOffs []domain.Transaction
	for _, t := range txns {
		if consumed[t.TransactionID] {
			continue
		}
		if t.IsOneOff() {
			oneOffs = append(oneOffs, t)
			continue
		}
		if key, ok := transactionRuleKey(t); ok {
			linked[key] = append(linked[key], t)
		}
	}
	for key := range linked {
		bucket := linked[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return calendar.Day(bucket[i].Date).Before(calendar.Day(bucket[j].Date))
		})
	}

	// Exact pass over every event first so a same-day transaction is never
	// taken by a neighbouring event's fuzzy match.
	for i, e := range out {
		key, ok := e.RuleKey()
		if !ok || e.Actualized {
			continue
		}
		for _, t := range linked[key] {
			if consumed[t.TransactionID] || !calendar.SameDay(t.Date, e.Date) {
				continue
			}
			out[i] = ActualizeEvent(e, t)
			consumed[t.TransactionID] = true
			break
		}
	}

	for i, e := range out {
		key, ok := e.RuleKey()
		if !ok || e.Actualized {
			continue
		}
		best := -1
		bestDist := 0
		for j, t := range linked[key] {
			if consumed[t.TransactionID] {
				continue
			}
			dist := calendar.AbsDaysBetween(e.Date, t.Date)
			if dist > window {
				continue
			}
			// Buckets are date sorted, so strict < keeps the earliest on ties.
			if best == -1 || dist < bestDist {
				best, bestDist = j, dist
			}
		}
		if best >= 0 {
			t := linked[key][best]
			out[i] = ActualizeEvent(e, t)
			consumed[t.TransactionID] = true
		}
	}

	for _, t := range txns {
		if consumed[t.TransactionID] {
			continue
		}
		if t.IsOneOff() {
			continue
		}
		out = append(out, eventFromTransaction(t, linkedEventType(t, expenses)))
		consumed[t.TransactionID] = true
	}

	for _, t := range oneOffs {
		if consumed[t.TransactionID] {
			continue
		}
		eventType := domain.EventFixedExpense
		if t.Amount.IsPositive() {
			eventType = domain.EventIncome
		}
		out = append(out, eventFromTransaction(t, eventType))
		consumed[t.TransactionID] = true
	}

	SortEvents(out)
	return out
}

// ActualizeEvent returns event overwritten by the transaction that realised it.
// The scheduled amount is kept as ForecastedAmount.
func ActualizeEvent(event domain.CashEvent, txn domain.Transaction) domain.CashEvent {
	forecasted := event.Amount
	txnID := txn.TransactionID

	event.Actualized = true
	event.ForecastedAmount = &forecasted
	event.Date = calendar.Day(txn.Date)
	event.Amount = domain.RoundCents(txn.Amount)
	event.Origin = domain.OriginConfigured
	event.TransactionID = &txnID
	if txn.Description != "" {
		event.Description = txn.Description
	}
	return event
}

func eventFromTransaction(t domain.Transaction, eventType domain.EventType) domain.CashEvent {
	txnID := t.TransactionID
	return domain.CashEvent{
		Date:               calendar.Day(t.Date),
		Amount:             domain.RoundCents(t.Amount),
		Description:        t.Description,
		Category:           t.Category,
		Type:               eventType,
		Origin:             domain.OriginConfigured,
		Actualized:         true,
		IncomeRuleID:       t.IncomeRuleID,
		RecurringExpenseID: t.RecurringExpenseID,
		TransactionID:      &txnID,
	}
}

func linkedEventType(t domain.Transaction, expenses map[string]domain.RecurringExpense) domain.EventType {
	if t.IncomeRuleID != nil {
		return domain.EventIncome
	}
	if exp, ok := expenses[*t.RecurringExpenseID]; ok && exp.IsVariable {
		return domain.EventVariableExpense
	}
	return domain.EventFixedExpense
}

func transactionRuleKey(t domain.Transaction) (string, bool) {
	return domain.CashEvent{IncomeRuleID: t.IncomeRuleID, RecurringExpenseID: t.RecurringExpenseID}.RuleKey()
}
