package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatFromString(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Calendar dates (transaction_date, start_date, next_payment_date) are
// stored as "YYYY-MM-DD" strings; audit timestamps as RFC3339Nano.

func dateToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func dateFromString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func timestampToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timestampFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
