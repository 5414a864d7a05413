package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appbooking "github.com/littlelemon/backend/internal/application/booking"
	appcart "github.com/littlelemon/backend/internal/application/cart"
	appcatalog "github.com/littlelemon/backend/internal/application/catalog"
	appidentity "github.com/littlelemon/backend/internal/application/identity"
	apprating "github.com/littlelemon/backend/internal/application/rating"
	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/infrastructure/auth"
	"github.com/littlelemon/backend/internal/infrastructure/cache"
	"github.com/littlelemon/backend/internal/infrastructure/config"
	"github.com/littlelemon/backend/internal/infrastructure/persistence"
	"github.com/littlelemon/backend/internal/interfaces/http/handler"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testAPI struct {
	engine *gin.Engine
	db     *gorm.DB
	jwt    *auth.JWTService
}

func newTestAPI(t *testing.T, throttle config.ThrottleConfig) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(persistence.Models()...))

	defaultCat, err := catalog.NewCategory("uncategorized", "Uncategorized")
	require.NoError(t, err)
	defaultCat.ID = 1
	require.NoError(t, gdb.Create(defaultCat).Error)

	for _, name := range []string{identity.GroupManager, identity.GroupDeliveryCrew} {
		require.NoError(t, gdb.Create(&identity.Group{Name: name}).Error)
	}

	cfg := &config.Config{
		App:      config.AppConfig{Name: "littlelemon", Env: "test", Port: "0"},
		JWT:      config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "littlelemon-test"},
		Throttle: throttle,
	}

	log := zap.NewNop()
	jwtService := auth.NewJWTService(cfg.JWT)

	store := cache.NewInMemoryThrottleStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	throttler := middleware.NewThrottler(store, throttle.Window, log)

	categoryRepo := persistence.NewGormCategoryRepository(gdb)
	menuItemRepo := persistence.NewGormMenuItemRepository(gdb)
	cartRepo := persistence.NewGormCartRepository(gdb)
	ratingRepo := persistence.NewGormRatingRepository(gdb)
	bookingRepo := persistence.NewGormBookingRepository(gdb)
	userRepo := persistence.NewGormUserRepository(gdb)
	groupRepo := persistence.NewGormGroupRepository(gdb)

	menuItemService := appcatalog.NewMenuItemService(menuItemRepo, categoryRepo, log)
	categoryService := appcatalog.NewCategoryService(categoryRepo, log)
	cartService := appcart.NewService(cartRepo, menuItemRepo, log)
	ratingService := apprating.NewService(ratingRepo, menuItemRepo, log)
	bookingService := appbooking.NewService(bookingRepo, log)
	authService := appidentity.NewAuthService(userRepo, jwtService, log)
	groupService := appidentity.NewGroupService(userRepo, groupRepo, log)

	handlers := Handlers{
		MenuItems:    handler.NewMenuItemHandler(menuItemService, log),
		Categories:   handler.NewCategoryHandler(categoryService, log),
		Cart:         handler.NewCartHandler(cartService, log),
		Ratings:      handler.NewRatingHandler(ratingService, log),
		Bookings:     handler.NewBookingHandler(bookingService, log),
		Auth:         handler.NewAuthHandler(authService, log),
		ManagerGroup: handler.NewGroupHandler(groupService, identity.GroupManager, log),
		DeliveryCrew: handler.NewGroupHandler(groupService, identity.GroupDeliveryCrew, log),
		System:       handler.NewSystemHandler(&persistence.Database{DB: gdb}, log),
	}

	return &testAPI{
		engine: New(cfg, jwtService, throttler, handlers, log),
		db:     gdb,
		jwt:    jwtService,
	}
}

func (a *testAPI) token(t *testing.T, userID uint, username string, groups []string, isAdmin bool) string {
	t.Helper()
	token, err := a.jwt.GenerateToken(auth.GenerateTokenInput{
		UserID:   userID,
		Username: username,
		Groups:   groups,
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)
	return token.AccessToken
}

func (a *testAPI) request(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func noThrottle() config.ThrottleConfig {
	return config.ThrottleConfig{Enabled: false, Window: time.Minute}
}

func (a *testAPI) seedDish(t *testing.T, title, price string) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(title, decimal.RequireFromString(price), 10, 0)
	require.NoError(t, err)
	require.NoError(t, a.db.Create(item).Error)
	return item
}

func TestMenuItemRoutes_RoleGates(t *testing.T) {
	api := newTestAPI(t, noThrottle())

	payload := map[string]any{"title": "Greek Salad", "price": "12.50", "inventory": 10}

	t.Run("anonymous read is open", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/api/v1/menu-items", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous write is unauthorized", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/menu-items", "", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("plain user write is forbidden and writes nothing", func(t *testing.T) {
		token := api.token(t, 2, "customer", nil, false)
		w := api.request(t, http.MethodPost, "/api/v1/menu-items", token, payload)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var count int64
		require.NoError(t, api.db.Model(&catalog.MenuItem{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("manager write succeeds", func(t *testing.T) {
		token := api.token(t, 1, "boss", []string{identity.GroupManager}, false)
		w := api.request(t, http.MethodPost, "/api/v1/menu-items", token, payload)
		assert.Equal(t, http.StatusCreated, w.Code)

		var count int64
		require.NoError(t, api.db.Model(&catalog.MenuItem{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate title is a bad request", func(t *testing.T) {
		token := api.token(t, 1, "boss", []string{identity.GroupManager}, false)
		w := api.request(t, http.MethodPost, "/api/v1/menu-items", token, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/api/v1/menu-items", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMenuItemRoutes_QueryValidation(t *testing.T) {
	api := newTestAPI(t, noThrottle())

	for name, query := range map[string]string{
		"non-numeric to_price": "to_price=abc",
		"zero page":            "page=0",
		"negative perpage":     "perpage=-1",
		"non-numeric page":     "page=two",
	} {
		t.Run(name, func(t *testing.T) {
			w := api.request(t, http.MethodGet, "/api/v1/menu-items?"+query, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDomainValidationFailuresAreBadRequests(t *testing.T) {
	api := newTestAPI(t, noThrottle())
	dish := api.seedDish(t, "Bruschetta", "4.50")

	managerToken := api.token(t, 1, "boss", []string{identity.GroupManager}, false)
	userToken := api.token(t, 2, "customer", nil, false)

	t.Run("menu item price below minimum", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/menu-items", managerToken,
			map[string]any{"title": "Free Bread", "price": "1.00", "inventory": 5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("booking with too few guests", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/bookings", userToken,
			map[string]any{"name": "Alex Smith", "no_of_guests": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative cart quantity", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/cart/menu-items", userToken,
			map[string]any{"menuitem_id": dish.ID, "quantity": -2})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rating above range", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/ratings", userToken,
			map[string]any{"menuitem_id": dish.ID, "rating": 6})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingRoutes_CallerScoped(t *testing.T) {
	api := newTestAPI(t, noThrottle())

	aliceToken := api.token(t, 10, "alice", nil, false)
	bobToken := api.token(t, 11, "bob", nil, false)

	t.Run("anonymous access is unauthorized", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/api/v1/bookings", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create then list own", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/bookings", aliceToken,
			map[string]any{"name": "Alice Jones", "no_of_guests": 4})
		require.Equal(t, http.StatusCreated, w.Code)

		w = api.request(t, http.MethodGet, "/api/v1/bookings", aliceToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed struct {
			Data []appbooking.Response `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed.Data, 1)
		assert.Equal(t, "Alice Jones", listed.Data[0].Name)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/api/v1/bookings", bobToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed struct {
			Data []appbooking.Response `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Empty(t, listed.Data)
	})
}

func TestCartRoutes(t *testing.T) {
	api := newTestAPI(t, noThrottle())
	dish := api.seedDish(t, "Bruschetta", "4.50")
	token := api.token(t, 3, "customer", nil, false)

	t.Run("anonymous cart access is unauthorized", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/api/v1/cart/menu-items", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("add and list", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/cart/menu-items", token,
			map[string]any{"menuitem_id": dish.ID, "quantity": 3})
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			Data appcart.ItemResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "13.50", created.Data.Price.StringFixed(2))

		w = api.request(t, http.MethodGet, "/api/v1/cart/menu-items", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed struct {
			Data []appcart.ItemResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed.Data, 1)
		assert.Equal(t, "Bruschetta", listed.Data[0].MenuItemTitle)
	})

	t.Run("unknown menu item is not found", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/cart/menu-items", token,
			map[string]any{"menuitem_id": 999, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("clear reports the count", func(t *testing.T) {
		w := api.request(t, http.MethodDelete, "/api/v1/cart/menu-items", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cleared struct {
			Data appcart.ClearResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cleared))
		assert.Equal(t, int64(1), cleared.Data.Deleted)
	})
}

func TestGroupRoutes_AdminOnly(t *testing.T) {
	api := newTestAPI(t, noThrottle())

	managerToken := api.token(t, 1, "boss", []string{identity.GroupManager}, false)
	w := api.request(t, http.MethodGet, "/api/v1/groups/manager/users", managerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := api.token(t, 1, "root", nil, true)
	w = api.request(t, http.MethodGet, "/api/v1/groups/manager/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnonThrottle(t *testing.T) {
	api := newTestAPI(t, config.ThrottleConfig{
		Enabled:      true,
		AnonRequests: 2,
		UserRequests: 100,
		AuthRequests: 100,
		Window:       time.Minute,
	})

	for i := 0; i < 2; i++ {
		w := api.request(t, http.MethodGet, "/api/v1/menu-items", "", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := api.request(t, http.MethodGet, "/api/v1/menu-items", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// authenticated callers use their own budget
	token := api.token(t, 3, "customer", nil, false)
	w = api.request(t, http.MethodGet, "/api/v1/menu-items", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRoutes(t *testing.T) {
	api := newTestAPI(t, noThrottle())

	t.Run("register then login", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/auth/register", "",
			map[string]any{"username": "newuser", "password": "s3cret-pass"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = api.request(t, http.MethodPost, "/api/v1/auth/login", "",
			map[string]any{"username": "newuser", "password": "s3cret-pass"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data appidentity.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data.Token)

		claims, err := api.jwt.ValidateToken(resp.Data.Token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "newuser", claims.Username)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/auth/login", "",
			map[string]any{"username": "newuser", "password": "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		w := api.request(t, http.MethodPost, "/api/v1/auth/register", "",
			map[string]any{"username": "newuser", "password": "another-pass"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthRoute(t *testing.T) {
	api := newTestAPI(t, noThrottle())
	w := api.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
