package cache

import (
	"context"
	"time"
)

// Cache interface định nghĩa contract cho collection cache layer
// Cho phép swap implementation (Redis, In-memory)
//
// Gateway dùng cache để giữ bản copy của các collection đã fetch từ
// library backend. Copy này là ephemeral: mọi mutation thành công sẽ
// Delete các key liên quan (invalidate), lần đọc kế tiếp re-fetch.
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// Returns: (found bool, error)
	// - found = true: cache hit, data đã unmarshal vào dest
	// - found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data vào cache với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa các keys khỏi cache (invalidate)
	Delete(ctx context.Context, keys ...string) error

	// Ping kiểm tra connection
	Ping(ctx context.Context) error
}
