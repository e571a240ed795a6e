// Package services - nghiệp vụ duyệt giao dịch bán hàng của domain sales.
package services

import (
	"strconv"
	"strings"
	"time"
)

// PageSize là số dòng cố định trên một trang danh sách giao dịch.
const PageSize int64 = 10

// TransactionCriteria chứa toàn bộ tiêu chí duyệt danh sách giao dịch
// sau khi đã chuẩn hóa từ query string.
type TransactionCriteria struct {
	// Tìm kiếm khách hàng theo tên/SĐT
	Search string

	// Phân trang
	Page int64

	// Sắp xếp: SortField là đường dẫn field trong document đã join,
	// SortOrder là 1 (asc) hoặc -1 (desc)
	SortField string
	SortOrder int

	// Filter trên field của sale (áp trước join)
	PaymentMethods []string
	OrderStatuses  []string
	DateFrom       *time.Time
	DateTo         *time.Time
	QuantityMin    *float64
	QuantityMax    *float64

	// Filter trên field của customer/product (áp sau join)
	Regions    []string
	Genders    []string
	AgeMin     *float64
	AgeMax     *float64
	Categories []string
	Tags       []string
}

// ParseTransactionCriteria chuẩn hóa query string thành TransactionCriteria.
// Giá trị không parse được sẽ bị bỏ qua (không trả lỗi), page sai về 1.
func ParseTransactionCriteria(query map[string]string) TransactionCriteria {
	c := TransactionCriteria{
		Search:    strings.TrimSpace(query["q"]),
		Page:      parsePage(query["page"]),
		SortField: resolveSortField(query["sort_by"]),
		SortOrder: resolveSortOrder(query["sort_order"]),

		PaymentMethods: splitAndTrim(query["payment_methods"]),
		OrderStatuses:  splitAndTrim(query["order_status"]),
		DateFrom:       parseDate(query["date_from"]),
		DateTo:         parseDate(query["date_to"]),
		QuantityMin:    parseNumber(query["quantity_min"]),
		QuantityMax:    parseNumber(query["quantity_max"]),

		Regions:    splitAndTrim(query["regions"]),
		Genders:    splitAndTrim(query["genders"]),
		AgeMin:     parseNumber(query["age_min"]),
		AgeMax:     parseNumber(query["age_max"]),
		Categories: splitAndTrim(query["categories"]),
		Tags:       splitAndTrim(query["tags"]),
	}
	return c
}

// parsePage đọc page từ query, sai hoặc < 1 thì về 1.
func parsePage(raw string) int64 {
	page, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// splitAndTrim tách chuỗi CSV thành slice, bỏ phần tử rỗng.
func splitAndTrim(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseNumber đọc số thực từ query, không parse được thì bỏ qua (nil).
func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseDate đọc ngày dạng YYYY-MM-DD, fallback RFC3339. Không parse được thì bỏ qua.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		t = t.UTC()
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t
	}
	return nil
}
