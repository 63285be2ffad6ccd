package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"eshop/internal/handlers"
	"eshop/internal/middleware"
	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp sets up a Fiber app for testing with in-memory SQLite and all
// handlers/services. Two users are seeded: an admin and a buyer holding a
// balance of 100, each with password "password123".
func setupApp(t *testing.T) (*fiber.App, repositories.Store) {
	t.Helper()

	// Configure Viper for testing
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// Initialize in-memory SQLite database, one per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Auto-migrate models
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))

	validate := validator.New()

	// Initialize Repositories
	store := repositories.NewGORMStore(db)
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	cartItemRepo := repositories.NewGORMCartItemRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	orderItemRepo := repositories.NewGORMOrderItemRepository(db)

	// Initialize Services (nil for the RabbitMQ client)
	authService := services.NewAuthService(userRepo, validate, jwtSecret)
	userService := services.NewUserService(userRepo, validate)
	categoryService := services.NewCategoryService(categoryRepo, validate)
	productService := services.NewProductService(productRepo, categoryRepo, validate)
	cartService := services.NewCartService(cartRepo, userRepo, validate)
	cartItemService := services.NewCartItemService(cartItemRepo, cartRepo, productRepo, validate)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, userRepo, productRepo, validate)
	checkoutService := services.NewCheckoutService(store, nil, validate)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService, validate)
	userHandler := handlers.NewUserHandler(userService, productService, validate)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)
	cartHandler := handlers.NewCartHandler(cartService, cartItemService, productService, checkoutService, validate)
	orderHandler := handlers.NewOrderHandler(orderService, validate)

	app := fiber.New()

	// API Routes
	apiV1 := app.Group("/api/v1")

	// Authentication routes (public)
	authHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	adminOnly := middleware.AdminRequired()

	userHandler.RegisterRoutes(protectedRoutes, adminOnly)
	categoryHandler.RegisterRoutes(protectedRoutes, adminOnly)
	productHandler.RegisterRoutes(protectedRoutes, adminOnly)
	cartHandler.RegisterRoutes(protectedRoutes)
	orderHandler.RegisterRoutes(protectedRoutes)

	seedUsersForTest(t, userRepo)

	return app, store
}

// seedUsersForTest populates the user repository with an admin and a buyer.
func seedUsersForTest(t *testing.T, repo repositories.UserRepository) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := []models.User{
		{Username: "admin", Password: string(hashed), FirstName: "Ada", LastName: "Admin",
			Address: "1 Admin Street", Phone: "+300000000001", Role: "admin"},
		{Username: "buyer", Password: string(hashed), FirstName: "Bob", LastName: "Buyer",
			Address: "2 Buyer Street", Phone: "+300000000002", Role: "user", Balance: 100},
	}
	for i := range users {
		require.NoError(t, repo.Create(&users[i]))
	}
}

// doJSON performs one request against the app, optionally authenticated.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginAs logs a seeded user in and returns the issued token.
func loginAs(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _ := setupApp(t)

	// Test Registration
	userToRegister := map[string]string{
		"username":   "testuser",
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
		"address":    "1 Test Street",
		"phone":      "+300000000099",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var registerResp map[string]interface{}
	decodeBody(t, resp, &registerResp)
	assert.Equal(t, "User registered successfully", registerResp["message"])
	registered := registerResp["user"].(map[string]interface{})
	assert.Equal(t, "testuser", registered["username"])
	assert.Equal(t, "user", registered["role"])
	assert.NotContains(t, registered, "password")

	// Test Duplicate Registration (username)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Test Registration with missing profile fields
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "incomplete",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Test Login
	token := loginAs(t, app, "testuser")

	// Test Login with wrong password
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The issued token must open a protected route
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryAndProductEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	adminToken := loginAs(t, app, "admin")

	// --- Create a category ---
	resp := doJSON(t, app, http.MethodPost, "/api/v1/categories", adminToken, map[string]string{
		"title": "Electronics",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var category map[string]interface{}
	decodeBody(t, resp, &category)
	categoryID := category["id"].(string)
	assert.NotEmpty(t, categoryID)

	// --- Create a product ---
	newProduct := map[string]interface{}{
		"name":        "Smartphone",
		"description": "Latest model smartphone",
		"sku":         "PHONE-001",
		"category_id": categoryID,
		"price":       799.99,
		"in_stock":    50,
	}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, newProduct)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var createdProduct map[string]interface{}
	decodeBody(t, resp, &createdProduct)
	productID := createdProduct["id"].(string)
	assert.NotEmpty(t, productID)
	assert.Equal(t, "Smartphone", createdProduct["name"])

	// --- Duplicate SKU is rejected ---
	duplicate := map[string]interface{}{
		"name":        "Other phone",
		"sku":         "PHONE-001",
		"category_id": categoryID,
		"price":       1.0,
		"in_stock":    1,
	}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, duplicate)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// --- Product referencing an unknown category is rejected ---
	orphan := map[string]interface{}{
		"name":        "Orphan product",
		"sku":         "ORPH-001",
		"category_id": "11111111-2222-3333-4444-555555555555",
		"price":       1.0,
		"in_stock":    1,
	}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, orphan)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// --- GET /products ---
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []map[string]interface{}
	decodeBody(t, resp, &products)
	assert.Len(t, products, 1)

	// --- GET /products/:id ---
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetchedProduct map[string]interface{}
	decodeBody(t, resp, &fetchedProduct)
	assert.Equal(t, productID, fetchedProduct["id"])
	assert.Equal(t, "Electronics", fetchedProduct["category_title"])

	// --- PUT /products/:id ---
	updatedProductData := map[string]interface{}{
		"name":        "Smartphone Pro",
		"description": "Latest model smartphone pro edition",
		"sku":         "PHONE-001",
		"category_id": categoryID,
		"price":       899.99,
		"in_stock":    45,
	}
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+productID, adminToken, updatedProductData)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updatedProduct map[string]interface{}
	decodeBody(t, resp, &updatedProduct)
	assert.Equal(t, productID, updatedProduct["id"])
	assert.Equal(t, "Smartphone Pro", updatedProduct["name"])

	// --- DELETE /products/:id ---
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleteResp map[string]string
	decodeBody(t, resp, &deleteResp)
	assert.Contains(t, deleteResp["message"], "deleted successfully")

	// Verify deletion
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCheckoutFlow(t *testing.T) {
	app, store := setupApp(t)
	adminToken := loginAs(t, app, "admin")
	buyerToken := loginAs(t, app, "buyer")

	buyer, err := store.Users().GetByUsername("buyer")
	require.NoError(t, err)

	// Admin sets up the catalog
	resp := doJSON(t, app, http.MethodPost, "/api/v1/categories", adminToken, map[string]string{"title": "Gadgets"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category map[string]interface{}
	decodeBody(t, resp, &category)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, map[string]interface{}{
		"name":        "Widget",
		"description": "A widget",
		"sku":         "WID-001",
		"category_id": category["id"],
		"price":       10.0,
		"in_stock":    5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product map[string]interface{}
	decodeBody(t, resp, &product)

	// Buyer creates a cart and adds two widgets
	resp = doJSON(t, app, http.MethodPost, "/api/v1/carts", buyerToken, map[string]interface{}{
		"user_id": buyer.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cart map[string]interface{}
	decodeBody(t, resp, &cart)
	cartID := cart["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart-items", buyerToken, map[string]interface{}{
		"cart_id":    cartID,
		"product_id": product["id"],
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The cart is reachable by its owner's ID
	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts/user/"+buyer.ID, buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ownedCart map[string]interface{}
	decodeBody(t, resp, &ownedCart)
	assert.Equal(t, cartID, ownedCart["id"])

	// The running total prices the quantity
	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts/"+cartID+"/total", buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var totalResp map[string]interface{}
	decodeBody(t, resp, &totalResp)
	assert.Equal(t, 20.0, totalResp["total"])

	// Purchase: the response body is the bare boolean true
	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts/"+cartID+"/purchase", buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var purchased bool
	decodeBody(t, resp, &purchased)
	assert.True(t, purchased)

	// The order charges the unit price once per cart line
	orders, err := store.Orders().GetAllByUserID(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPlaced, orders[0].Status)
	assert.Equal(t, 10.0, orders[0].Total)
	require.Len(t, orders[0].Items, 1)

	// Stock drops by the quantity, balance by the order total
	after, err := store.Products().GetByID(product["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, 3, after.InStock)
	buyerAfter, err := store.Users().GetByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, buyerAfter.Balance)

	// The placed order is visible over HTTP
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+orders[0].ID, buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orderResp map[string]interface{}
	decodeBody(t, resp, &orderResp)
	assert.Equal(t, "placed", orderResp["status"])

	// The purchased product shows up in the buyer's ordered-products view
	resp = doJSON(t, app, http.MethodGet, "/api/v1/users/"+buyer.ID+"/ordered-products", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ordered []map[string]interface{}
	decodeBody(t, resp, &ordered)
	require.Len(t, ordered, 1)
	assert.Equal(t, "Widget", ordered[0]["name"])

	// The cart survives checkout, so the line is still in the cart-products view
	resp = doJSON(t, app, http.MethodGet, "/api/v1/users/"+buyer.ID+"/cart-products", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var inCart []map[string]interface{}
	decodeBody(t, resp, &inCart)
	require.Len(t, inCart, 1)
	assert.Equal(t, "Widget", inCart[0]["name"])

	// Purchasing an unknown cart is a 404
	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts/11111111-2222-3333-4444-555555555555/purchase", buyerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCheckoutInsufficientFunds(t *testing.T) {
	app, store := setupApp(t)
	adminToken := loginAs(t, app, "admin")
	buyerToken := loginAs(t, app, "buyer")

	buyer, err := store.Users().GetByUsername("buyer")
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/categories", adminToken, map[string]string{"title": "Luxury"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category map[string]interface{}
	decodeBody(t, resp, &category)

	// Costs more than the buyer's balance of 100
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", adminToken, map[string]interface{}{
		"name":        "Gold Widget",
		"sku":         "GOLD-001",
		"category_id": category["id"],
		"price":       500.0,
		"in_stock":    1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product map[string]interface{}
	decodeBody(t, resp, &product)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/carts", buyerToken, map[string]interface{}{
		"user_id": buyer.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cart map[string]interface{}
	decodeBody(t, resp, &cart)
	cartID := cart["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart-items", buyerToken, map[string]interface{}{
		"cart_id":    cartID,
		"product_id": product["id"],
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts/"+cartID+"/purchase", buyerToken, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var errResp map[string]interface{}
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "Purchase failed", errResp["message"])

	// The failed purchase leaves everything untouched
	orders, err := store.Orders().GetAllByUserID(buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	after, err := store.Products().GetByID(product["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, 1, after.InStock)
	buyerAfter, err := store.Users().GetByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, buyerAfter.Balance)
}

func TestEndpointsWithoutAuth(t *testing.T) {
	app, _ := setupApp(t)

	// Test GET /products without token
	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Test POST /products without token
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", "", map[string]interface{}{
		"name":  "Unauthorized Product",
		"sku":   "NOPE-001",
		"price": 100.0,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Test GET /carts without token
	resp = doJSON(t, app, http.MethodGet, "/api/v1/carts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminOnlyEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	buyerToken := loginAs(t, app, "buyer")

	// A regular user can read the catalog
	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", buyerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// but cannot write it
	resp = doJSON(t, app, http.MethodPost, "/api/v1/categories", buyerToken, map[string]string{
		"title": "Forbidden",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", buyerToken, map[string]interface{}{
		"name":        "Forbidden product",
		"sku":         "FORB-001",
		"category_id": "11111111-2222-3333-4444-555555555555",
		"price":       1.0,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// and cannot manage users
	resp = doJSON(t, app, http.MethodGet, "/api/v1/users", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
