package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-07-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = parseDate("")
	if err != nil || !got.IsZero() {
		t.Fatalf("empty date must parse to zero, got %v, %v", got, err)
	}

	if _, err = parseDate("15/07/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err = parseDate("2024-07-15T00:00:00Z"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("timestamps must be rejected, got %v", err)
	}
}

func TestCostItemRequest_ToCreateInput(t *testing.T) {
	r := CostItemRequest{
		ProjectID:       "proj-1",
		Name:            "Cimento",
		Category:        "Materiais",
		PlannedAmount:   100,
		TransactionDate: "2024-07-01",
		Installments:    3,
	}
	in, err := r.ToCreateInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ProjectID != "proj-1" || in.Installments != 3 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.TransactionDate.Equal(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", in.TransactionDate)
	}

	r.TransactionDate = "bogus"
	if _, err := r.ToCreateInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCostItemRequest_ToUpdateInput(t *testing.T) {
	r := CostItemRequest{
		Name:            "Cimento",
		Category:        "Materiais",
		PlannedAmount:   120,
		TransactionDate: "2024-07-02",
		Installments:    5,
	}
	in, err := r.ToUpdateInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Cimento" || in.PlannedAmount != 120 {
		t.Fatalf("unexpected input: %+v", in)
	}
}
