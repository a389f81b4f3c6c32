package shared

// ============================================================
// CACHE INVALIDATION MAP
// ============================================================
// Book status là backend-derived từ loan tồn tại, nên loans và books
// là cross-referential: mutation bên này làm stale collection bên kia.
// Thay vì rải invalidation call ở từng call site, map dưới đây khai báo
// entity type => các collection phải invalidate.

// Entity là một collection type mà gateway cache lại sau khi fetch.
type Entity string

const (
	EntityBooks      Entity = "books"
	EntityCategories Entity = "categories"
	EntityMembers    Entity = "members"
	EntityLoans      Entity = "loans"
)

// CacheKey là key của full collection trong cache layer.
func (e Entity) CacheKey() string {
	return "collection:" + string(e)
}

// dependents: mutation thành công trên entity K => invalidate các entity V.
// - loan mutation ảnh hưởng book status (stock/availability)
// - book mutation ảnh hưởng loan display text (title của sách đã mượn)
var dependents = map[Entity][]Entity{
	EntityBooks:      {EntityBooks, EntityLoans},
	EntityLoans:      {EntityLoans, EntityBooks},
	EntityCategories: {EntityCategories},
	EntityMembers:    {EntityMembers},
}

// InvalidationKeys trả về các cache key phải Delete sau khi một
// mutation trên entity e thành công.
func InvalidationKeys(e Entity) []string {
	deps := dependents[e]
	keys := make([]string, 0, len(deps))
	for _, d := range deps {
		keys = append(keys, d.CacheKey())
	}
	return keys
}
