package finance

import (
	"sort"
	"time"

	"finestra/internal/domain/entities"
)

// PaymentStatus is the label derived for a payable or receivable. It is
// computed on every read and never persisted; the persisted CostItem
// status flag is only one of the inputs.

type PaymentStatus string

const (
	StatusAtrasado PaymentStatus = "Atrasado"
	StatusPendente PaymentStatus = "Pendente"
	StatusPago     PaymentStatus = "Pago"
	StatusRecebido PaymentStatus = "Recebido"
)

// CostStatus derives the label of a payable. An item is Pago when its
// persisted flag says so OR when any amount has been realized; the two
// signals may disagree and either one wins. Otherwise the transaction
// date decides between Atrasado and Pendente.
func CostStatus(item entities.CostItem, today time.Time) PaymentStatus {
	if item.Status == entities.CostItemStatusPago || item.ActualAmount > 0 {
		return StatusPago
	}
	if DateOnly(item.TransactionDate).Before(DateOnly(today)) {
		return StatusAtrasado
	}
	return StatusPendente
}

// RevenueStatus derives the label of a receivable. There is no persisted
// flag for revenue; the realized amount is the only paid signal.
func RevenueStatus(item entities.RevenueItem, today time.Time) PaymentStatus {
	if item.ReceivedAmount > 0 {
		return StatusRecebido
	}
	if DateOnly(item.TransactionDate).Before(DateOnly(today)) {
		return StatusAtrasado
	}
	return StatusPendente
}

func statusRank(s PaymentStatus) int {
	switch s {
	case StatusAtrasado:
		return 0
	case StatusPendente:
		return 1
	default:
		return 2
	}
}

// SortCostItems orders a list for display: Atrasado first, then Pendente,
// then Pago. Unpaid items sort by date ascending (most urgent first);
// paid items by date descending (most recently paid first).
func SortCostItems(items []entities.CostItem, today time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := statusRank(CostStatus(items[i], today)), statusRank(CostStatus(items[j], today))
		if ri != rj {
			return ri < rj
		}
		di, dj := DateOnly(items[i].TransactionDate), DateOnly(items[j].TransactionDate)
		if ri == 2 {
			return di.After(dj)
		}
		return di.Before(dj)
	})
}

// SortRevenueItems applies the same ordering to receivables.
func SortRevenueItems(items []entities.RevenueItem, today time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := statusRank(RevenueStatus(items[i], today)), statusRank(RevenueStatus(items[j], today))
		if ri != rj {
			return ri < rj
		}
		di, dj := DateOnly(items[i].TransactionDate), DateOnly(items[j].TransactionDate)
		if ri == 2 {
			return di.After(dj)
		}
		return di.Before(dj)
	})
}

// WeekBounds returns the Monday and Sunday of the ISO week containing
// today, as date-only values.
func WeekBounds(today time.Time) (monday, sunday time.Time) {
	t := DateOnly(today)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday = t.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// InWeek reports whether date falls within [monday, sunday] inclusive.
func InWeek(date, monday, sunday time.Time) bool {
	d := DateOnly(date)
	return !d.Before(monday) && !d.After(sunday)
}

// CostsDueThisWeek returns the items dated inside the current ISO week,
// regardless of status.
func CostsDueThisWeek(items []entities.CostItem, today time.Time) []entities.CostItem {
	monday, sunday := WeekBounds(today)
	out := make([]entities.CostItem, 0)
	for _, it := range items {
		if InWeek(it.TransactionDate, monday, sunday) {
			out = append(out, it)
		}
	}
	return out
}

// OverdueCosts returns the items whose derived status is Atrasado,
// regardless of week.
func OverdueCosts(items []entities.CostItem, today time.Time) []entities.CostItem {
	out := make([]entities.CostItem, 0)
	for _, it := range items {
		if CostStatus(it, today) == StatusAtrasado {
			out = append(out, it)
		}
	}
	return out
}

// RevenuesDueThisWeek mirrors CostsDueThisWeek for receivables.
func RevenuesDueThisWeek(items []entities.RevenueItem, today time.Time) []entities.RevenueItem {
	monday, sunday := WeekBounds(today)
	out := make([]entities.RevenueItem, 0)
	for _, it := range items {
		if InWeek(it.TransactionDate, monday, sunday) {
			out = append(out, it)
		}
	}
	return out
}

// OverdueRevenues mirrors OverdueCosts for receivables.
func OverdueRevenues(items []entities.RevenueItem, today time.Time) []entities.RevenueItem {
	out := make([]entities.RevenueItem, 0)
	for _, it := range items {
		if RevenueStatus(it, today) == StatusAtrasado {
			out = append(out, it)
		}
	}
	return out
}
