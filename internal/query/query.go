package query

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"library-admin/internal/shared"
)

// ============================================================
// LIST-QUERY PIPELINE
// ============================================================
// Backend không phân trang các collection list endpoint, nên gateway
// fetch nguyên collection rồi chạy pipeline filter → sort → paginate
// phía mình, giống hệt SPA cũ. Dùng chung cho books, members, loans.
//
// Semantics:
// - Filter: item pass khi MỌI constraint active đều match.
//   Constraint rỗng (nil hoặc "") = auto-pass.
//   String constraint: case-insensitive substring containment.
//   Non-string: strict equality.
// - Sort: stable. desc chỉ đảo dấu của three-way compare, thứ tự
//   tương đối của key bằng nhau giữ nguyên input order.
// - Paginate: totalPages = ceil(total/limit) trên tập ĐÃ filter;
//   page vượt quá totalPages trả data rỗng, không error.

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder chuẩn hóa sort order từ query param, default asc.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder Order
	Filters   map[string]interface{}
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Result[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Apply chạy cả pipeline trên một collection đã fetch đầy đủ.
func Apply[T any](items []T, p Params) (Result[T], error) {
	filtered := Filter(items, p.Filters)
	if p.SortBy != "" {
		filtered = SortBy(filtered, p.SortBy, p.SortOrder)
	}
	return Paginate(filtered, p.Page, p.Limit)
}

// Filter giữ lại items thỏa mãn mọi constraint active.
func Filter[T any](items []T, filters map[string]interface{}) []T {
	if len(filters) == 0 {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if matches(it, filters) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy sắp xếp theo field (json tag hoặc tên field), stable.
func SortBy[T any](items []T, field string, order Order) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		a, okA := fieldValue(out[i], field)
		b, okB := fieldValue(out[j], field)
		if !okA || !okB {
			return false
		}

		cmp := compareValues(a, b)
		if order == Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

// Paginate cắt một page từ tập đã filter.
// limit <= 0 và page < 1 là input không hợp lệ => ValidationError.
func Paginate[T any](items []T, page, limit int) (Result[T], error) {
	if limit <= 0 {
		return Result[T]{}, shared.NewValidationError("limit must be greater than zero")
	}
	if page < 1 {
		return Result[T]{}, shared.NewValidationError("page must be at least 1")
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit

	data := []T{}
	if start < total {
		if end > total {
			end = total
		}
		data = items[start:end]
	}

	return Result[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// ============================================================
// FIELD ACCESS + COMPARISON
// ============================================================
// SPA truy cập field dynamic qua item[key]; bản Go dùng reflection
// theo json tag để giữ đúng hợp đồng "field trong query param khớp
// field trong JSON row".

func matches(item interface{}, filters map[string]interface{}) bool {
	for field, want := range filters {
		if isEmptyConstraint(want) {
			continue
		}

		got, ok := fieldValue(item, field)
		if !ok {
			return false
		}

		if ws, isStr := want.(string); isStr {
			if gs, isStrField := got.(string); isStrField {
				if !strings.Contains(strings.ToLower(gs), strings.ToLower(ws)) {
					return false
				}
				continue
			}
		}

		if !reflect.DeepEqual(normalize(got), normalize(want)) {
			return false
		}
	}
	return true
}

func isEmptyConstraint(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

func fieldValue(item interface{}, field string) (interface{}, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag == field || strings.EqualFold(f.Name, field) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// compareValues trả về three-way compare (-1, 0, 1).
// Type không so sánh được => 0 (giữ nguyên thứ tự, sort vẫn stable).
func compareValues(a, b interface{}) int {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(as, bs)
	}

	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0
		}
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}

	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0
		}
		switch {
		case !ab && bb:
			return -1
		case ab && !bb:
			return 1
		default:
			return 0
		}
	}

	na, okA := numericValue(a)
	nb, okB := numericValue(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	return 0
}

func normalize(v interface{}) interface{} {
	if n, ok := numericValue(v); ok {
		return n
	}
	return v
}

func numericValue(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
