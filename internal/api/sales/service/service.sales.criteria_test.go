// Package services - Test chuẩn hóa query string thành TransactionCriteria.
package services

import (
	"testing"
	"time"
)

func TestParseTransactionCriteria_Defaults(t *testing.T) {
	c := ParseTransactionCriteria(map[string]string{})

	if c.Page != 1 {
		t.Errorf("Page mặc định phải là 1, nhận %d", c.Page)
	}
	if c.SortField != "date" {
		t.Errorf("SortField mặc định phải là date, nhận %q", c.SortField)
	}
	if c.SortOrder != -1 {
		t.Errorf("SortOrder mặc định phải là -1 (desc), nhận %d", c.SortOrder)
	}
	if c.Search != "" {
		t.Errorf("Search phải rỗng khi không có q, nhận %q", c.Search)
	}
	if c.PaymentMethods != nil || c.Regions != nil || c.Tags != nil {
		t.Error("các filter dạng danh sách phải là nil khi không truyền")
	}
	if c.DateFrom != nil || c.QuantityMin != nil || c.AgeMax != nil {
		t.Error("các filter dạng khoảng phải là nil khi không truyền")
	}
}

func TestParseTransactionCriteria_InvalidPageFallsBackTo1(t *testing.T) {
	cases := []string{"abc", "0", "-5", "", "1.5"}
	for _, raw := range cases {
		c := ParseTransactionCriteria(map[string]string{"page": raw})
		if c.Page != 1 {
			t.Errorf("page=%q phải về 1, nhận %d", raw, c.Page)
		}
	}

	c := ParseTransactionCriteria(map[string]string{"page": "7"})
	if c.Page != 7 {
		t.Errorf("page=7 phải giữ nguyên, nhận %d", c.Page)
	}
}

func TestParseTransactionCriteria_CsvFilters(t *testing.T) {
	c := ParseTransactionCriteria(map[string]string{
		"payment_methods": "Cash, Card",
		"order_status":    "Completed,,Pending, ",
		"regions":         "North",
		"tags":            " organic , sport ",
	})

	if len(c.PaymentMethods) != 2 || c.PaymentMethods[0] != "Cash" || c.PaymentMethods[1] != "Card" {
		t.Errorf("payment_methods parse sai: %v", c.PaymentMethods)
	}
	if len(c.OrderStatuses) != 2 || c.OrderStatuses[0] != "Completed" || c.OrderStatuses[1] != "Pending" {
		t.Errorf("order_status phải bỏ phần tử rỗng: %v", c.OrderStatuses)
	}
	if len(c.Regions) != 1 || c.Regions[0] != "North" {
		t.Errorf("regions parse sai: %v", c.Regions)
	}
	if len(c.Tags) != 2 || c.Tags[0] != "organic" || c.Tags[1] != "sport" {
		t.Errorf("tags phải được trim: %v", c.Tags)
	}
}

func TestParseTransactionCriteria_NumbersAndDates(t *testing.T) {
	c := ParseTransactionCriteria(map[string]string{
		"quantity_min": "2",
		"quantity_max": "xyz",
		"age_min":      "18.5",
		"date_from":    "2024-06-01",
		"date_to":      "not-a-date",
	})

	if c.QuantityMin == nil || *c.QuantityMin != 2 {
		t.Errorf("quantity_min=2 parse sai: %v", c.QuantityMin)
	}
	if c.QuantityMax != nil {
		t.Errorf("quantity_max không hợp lệ phải bị bỏ qua, nhận %v", *c.QuantityMax)
	}
	if c.AgeMin == nil || *c.AgeMin != 18.5 {
		t.Errorf("age_min=18.5 parse sai: %v", c.AgeMin)
	}

	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if c.DateFrom == nil || !c.DateFrom.Equal(want) {
		t.Errorf("date_from parse sai: %v", c.DateFrom)
	}
	if c.DateTo != nil {
		t.Errorf("date_to không hợp lệ phải bị bỏ qua, nhận %v", *c.DateTo)
	}
}

func TestParseTransactionCriteria_DateRFC3339Fallback(t *testing.T) {
	c := ParseTransactionCriteria(map[string]string{"date_from": "2024-06-01T08:30:00Z"})
	want := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	if c.DateFrom == nil || !c.DateFrom.Equal(want) {
		t.Errorf("date_from dạng RFC3339 parse sai: %v", c.DateFrom)
	}
}

func TestResolveSortField_Whitelist(t *testing.T) {
	cases := map[string]string{
		"customer_name":  "customer.name",
		"product_name":   "product.name",
		"store_location": "store.location",
		"date":           "date",
		"total_amount":   "total_amount",
		"final_amount":   "final_amount",
		"quantity":       "quantity",
		"price_per_unit": "price_per_unit",
		"payment_method": "payment_method",
		"order_status":   "order_status",
		// Khóa lạ hoặc rỗng về mặc định
		"":          "date",
		"evil_key":  "date",
		"__proto__": "date",
	}
	for in, want := range cases {
		if got := resolveSortField(in); got != want {
			t.Errorf("resolveSortField(%q) = %q, muốn %q", in, got, want)
		}
	}
}

func TestResolveSortOrder(t *testing.T) {
	if resolveSortOrder("asc") != 1 {
		t.Error("sort_order=asc phải là 1")
	}
	for _, raw := range []string{"desc", "", "ASC", "descending"} {
		if resolveSortOrder(raw) != -1 {
			t.Errorf("sort_order=%q phải là -1", raw)
		}
	}
}
