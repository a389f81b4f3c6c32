package container

import (
	"context"
	"fmt"
	"log"

	"library-admin/internal/backend"
	"library-admin/internal/config"
	infraCache "library-admin/internal/infrastructure/cache"
	"library-admin/internal/session"
	"library-admin/pkg/cache"

	"library-admin/internal/domains/admin"
	adminHandler "library-admin/internal/domains/admin/handler"
	adminService "library-admin/internal/domains/admin/service"
	"library-admin/internal/domains/book"
	bookHandler "library-admin/internal/domains/book/handler"
	bookService "library-admin/internal/domains/book/service"
	"library-admin/internal/domains/category"
	categoryHandler "library-admin/internal/domains/category/handler"
	categoryService "library-admin/internal/domains/category/service"
	"library-admin/internal/domains/loan"
	loanHandler "library-admin/internal/domains/loan/handler"
	loanService "library-admin/internal/domains/loan/service"
	"library-admin/internal/domains/member"
	memberHandler "library-admin/internal/domains/member/handler"
	memberService "library-admin/internal/domains/member/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependency graph của gateway.
// Thứ tự khởi tạo: Config => Cache => Backend client + Sessions =>
// Services => Handlers.
type Container struct {
	Config   *config.Config
	Cache    cache.Cache
	Backend  *backend.Client
	Sessions *session.Manager

	BookService     book.Service
	CategoryService category.Service
	MemberService   member.Service
	LoanService     loan.Service
	AdminService    admin.Service

	BookHandler     *bookHandler.BookHandler
	CategoryHandler *categoryHandler.CategoryHandler
	MemberHandler   *memberHandler.MemberHandler
	LoanHandler     *loanHandler.LoanHandler
	AdminHandler    *adminHandler.AdminHandler

	redisCache *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE CACHE
	// ========================================
	switch cfg.Cache.Driver {
	case "redis":
		log.Println("🗄️  Connecting to Redis...")

		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redisCache = redisCache
		c.Cache = redisCache
		log.Println("✅ Redis connected")
	default:
		c.Cache = infraCache.NewMemoryCache()
		log.Println("✅ In-memory cache initialized")
	}

	// ========================================
	// STEP 3: BACKEND CLIENT + SESSIONS
	// ========================================
	log.Printf("🌐 Library backend: %s", cfg.Backend.BaseURL)

	c.Sessions = session.NewManager(cfg.Session)
	c.Backend = backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// 401 từ backend = token chết => hủy session ngay tại chỗ.
	// Request đang bay nhận SESSION_EXPIRED + redirect /login.
	c.Backend.OnUnauthorized(func(ctx context.Context) {
		if id, ok := session.IDFromContext(ctx); ok {
			c.Sessions.Delete(id)
		}
	})

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	ttl := cfg.Cache.TTL
	c.BookService = bookService.NewBookService(c.Backend, c.Cache, ttl)
	c.CategoryService = categoryService.NewCategoryService(c.Backend, c.Cache, ttl)
	c.MemberService = memberService.NewMemberService(c.Backend, c.Cache, ttl)
	c.LoanService = loanService.NewLoanService(c.Backend, c.Cache, ttl)
	c.AdminService = adminService.NewAdminService(c.Backend)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.MemberHandler = memberHandler.NewMemberHandler(c.MemberService)
	c.LoanHandler = loanHandler.NewLoanHandler(c.LoanService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService, c.Sessions)

	log.Println("✅ DI Container initialized")
	return c, nil
}

// Cleanup giải phóng tài nguyên lúc shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
}
