package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"mtdstore-backend/config"
	"mtdstore-backend/internal/api"
	"mtdstore-backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	cfg    *config.Config
	store  *store.Store
	router *gin.Engine
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dir := s.T().TempDir()
	s.cfg = config.Load()
	s.cfg.Environment = "test"
	s.cfg.DataDir = filepath.Join(dir, "data")
	s.cfg.UploadDir = filepath.Join(dir, "uploads")

	st, err := store.New(s.cfg.DataDir)
	s.Require().NoError(err)
	s.store = st
	s.router = api.NewRouter(s.cfg, st)
}

// request performs a JSON request against the test router
func (s *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// envelope decodes a JSON object response
func (s *APITestSuite) envelope(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// list decodes a bare JSON array response
func (s *APITestSuite) list(w *httptest.ResponseRecorder) []map[string]interface{} {
	var out []map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *APITestSuite) TestHealth() {
	w := s.request(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestLoginDemoUser() {
	w := s.request(http.MethodPost, "/api/login", gin.H{"username": "mriby", "password": "123"})
	s.Equal(http.StatusOK, w.Code)

	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	s.Equal("buyer", resp["role"])
	s.Equal("mriby", resp["username"])
	s.Equal("Welcome back, mriby!", resp["message"])
	s.NotEmpty(resp["token"])
}

func (s *APITestSuite) TestLoginInvalidCredentials() {
	w := s.request(http.MethodPost, "/api/login", gin.H{"username": "mriby", "password": "nope"})
	s.Equal(http.StatusOK, w.Code)

	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Invalid credentials", resp["message"])
}

func (s *APITestSuite) TestLoginStoredUser() {
	w := s.request(http.MethodPost, "/api/admin/users", gin.H{"username": "asha", "password": "secret", "role": "seller"})
	s.Equal(true, s.envelope(w)["success"])

	w = s.request(http.MethodPost, "/api/login", gin.H{"username": "asha", "password": "secret"})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	s.Equal("seller", resp["role"])
}

func (s *APITestSuite) TestGetProductsReturnsSeedCatalog() {
	w := s.request(http.MethodGet, "/api/products", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(s.list(w), 8)
}

func (s *APITestSuite) TestAddProductAssignsNextID() {
	w := s.request(http.MethodPost, "/api/products", gin.H{
		"name": "Green Chillies", "description": "Hot and fresh", "price": 15,
		"quantity": 70, "seller": "Spice Farm", "sellerId": "mrisell", "category": "vegetables",
	})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	product := resp["product"].(map[string]interface{})
	s.Equal(float64(9), product["id"])
	s.NotEmpty(product["created_at"])

	listing := s.list(s.request(http.MethodGet, "/api/products", nil))
	s.Len(listing, 9)
	s.Equal("Green Chillies", listing[8]["name"])
}

func (s *APITestSuite) TestAddProductCoercesStringNumbers() {
	w := s.request(http.MethodPost, "/api/products", gin.H{
		"name": "Mangoes", "price": "95.5", "quantity": "12", "sellerId": "mrisell",
	})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	product := resp["product"].(map[string]interface{})
	s.Equal(95.5, product["price"])
	s.Equal(float64(12), product["quantity"])
}

func (s *APITestSuite) TestAddProductRejectsBadPrice() {
	w := s.request(http.MethodPost, "/api/products", gin.H{
		"name": "Mangoes", "price": "not-a-number", "quantity": 5,
	})
	s.Equal(http.StatusOK, w.Code)
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Contains(resp["message"], "could not convert")
}

func (s *APITestSuite) TestAddProductDefaults() {
	w := s.request(http.MethodPost, "/api/products", gin.H{
		"name": "Plain Item", "price": 10, "quantity": 1,
	})
	product := s.envelope(w)["product"].(map[string]interface{})
	s.Equal("/static/images/default-product.png", product["image"])
	s.Equal("general", product["category"])
}

func (s *APITestSuite) TestUpdateProduct() {
	w := s.request(http.MethodPut, "/api/products/1", gin.H{"price": 45, "quantity": 55})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	product := resp["product"].(map[string]interface{})
	s.Equal(45.0, product["price"])
	s.Equal(float64(55), product["quantity"])
	// Fields left out of the payload are untouched
	s.Equal("Fresh Tomatoes", product["name"])
}

func (s *APITestSuite) TestUpdateProductNotFound() {
	w := s.request(http.MethodPut, "/api/products/42", gin.H{"price": 45})
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Product not found", resp["message"])
}

func (s *APITestSuite) TestDeleteProduct() {
	w := s.request(http.MethodDelete, "/api/products/3", nil)
	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	s.Equal("Product deleted successfully", resp["message"])

	for _, p := range s.list(s.request(http.MethodGet, "/api/products", nil)) {
		s.NotEqual(float64(3), p["id"])
	}
}

func (s *APITestSuite) TestDeleteProductNotFound() {
	w := s.request(http.MethodDelete, "/api/products/42", nil)
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Product not found", resp["message"])
	s.Len(s.list(s.request(http.MethodGet, "/api/products", nil)), 8)
}

func (s *APITestSuite) TestNonNumericProductIDReturns404() {
	w := s.request(http.MethodPut, "/api/products/abc", gin.H{"price": 45})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(false, s.envelope(w)["success"])

	w = s.request(http.MethodDelete, "/api/products/abc", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestCreateOrder() {
	w := s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 1, "productName": "Fresh Tomatoes", "productImage": "https://example.com/t.jpg",
		"buyer": "mriby", "seller": "mrisell", "quantity": 5, "price": 40, "total": 200,
	})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	order := resp["order"].(map[string]interface{})
	s.Equal(float64(1), order["id"])
	s.Equal("Pending Payment", order["status"])
	s.Equal("pending", order["payment_status"])
	s.NotEmpty(order["order_date"])
	s.NotEmpty(order["expected_delivery"])
}

func (s *APITestSuite) TestOrderListingsByBuyerAndSeller() {
	s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 1, "buyer": "mriby", "seller": "mrisell", "quantity": 1, "price": 40, "total": 40,
	})

	s.Len(s.list(s.request(http.MethodGet, "/api/orders", nil)), 1)
	s.Len(s.list(s.request(http.MethodGet, "/api/orders/user/mriby", nil)), 1)
	s.Empty(s.list(s.request(http.MethodGet, "/api/orders/user/nobody", nil)))
	s.Len(s.list(s.request(http.MethodGet, "/api/orders/seller/mrisell", nil)), 1)
}

func (s *APITestSuite) TestPaymentFlow() {
	w := s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 1, "buyer": "mriby", "seller": "mrisell", "quantity": 5, "price": 40, "total": 200,
	})
	s.Equal(true, s.envelope(w)["success"])

	w = s.request(http.MethodPost, "/api/payment/process", gin.H{
		"order_id": 1, "amount": 200, "seller_id": "mrisell",
	})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	txID := resp["transaction_id"].(string)
	s.Regexp(regexp.MustCompile(`^[0-9A-F]{8}$`), txID)
	s.InDelta(10.0, resp["commission"].(float64), 1e-9)
	s.InDelta(190.0, resp["seller_amount"].(float64), 1e-9)
	s.NotEmpty(resp["expected_delivery"])

	order := s.list(s.request(http.MethodGet, "/api/orders", nil))[0]
	s.Equal("completed", order["payment_status"])
	s.Equal("Processing", order["status"])
	s.Equal(txID, order["transaction_id"])
	s.InDelta(10.0, order["commission"].(float64), 1e-9)
	s.InDelta(190.0, order["seller_amount"].(float64), 1e-9)

	// Product 1 started at 50 units; 5 were fulfilled
	product := s.list(s.request(http.MethodGet, "/api/products", nil))[0]
	s.Equal(float64(45), product["quantity"])
}

func (s *APITestSuite) TestPaymentCanOversell() {
	s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 6, "buyer": "mriby", "seller": "mrisell", "quantity": 30, "price": 35, "total": 1050,
	})
	w := s.request(http.MethodPost, "/api/payment/process", gin.H{
		"order_id": 1, "amount": 1050, "seller_id": "mrisell",
	})
	s.Equal(true, s.envelope(w)["success"])

	for _, p := range s.list(s.request(http.MethodGet, "/api/products", nil)) {
		if p["id"] == float64(6) {
			// Fulfillment has no stock floor
			s.Equal(float64(-5), p["quantity"])
		}
	}
}

func (s *APITestSuite) TestPaymentRequiresAmount() {
	w := s.request(http.MethodPost, "/api/payment/process", gin.H{"order_id": 1})
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("amount is required", resp["message"])
}

func (s *APITestSuite) TestSellerUPILastWriteWins() {
	w := s.request(http.MethodPost, "/api/seller/upi", gin.H{"seller_id": "mrisell", "upi_id": "first@upi"})
	s.Equal(true, s.envelope(w)["success"])

	w = s.request(http.MethodPost, "/api/seller/upi", gin.H{"seller_id": "mrisell", "upi_id": "second@upi"})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	s.Equal("UPI ID updated successfully", resp["message"])

	w = s.request(http.MethodGet, "/api/seller/upi?seller_id=mrisell", nil)
	s.Equal("second@upi", s.envelope(w)["upi_id"])
}

func (s *APITestSuite) TestSellerUPIValidation() {
	w := s.request(http.MethodPost, "/api/seller/upi", gin.H{"seller_id": "mrisell"})
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Invalid data", resp["message"])

	// Unset seller reads back as empty
	w = s.request(http.MethodGet, "/api/seller/upi?seller_id=ghost", nil)
	resp = s.envelope(w)
	s.Equal(true, resp["success"])
	s.Equal("", resp["upi_id"])
}

func (s *APITestSuite) TestAdminCommission() {
	s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 1, "buyer": "mriby", "seller": "mrisell", "quantity": 5, "price": 40, "total": 200,
	})
	s.request(http.MethodPost, "/api/payment/process", gin.H{"order_id": 1, "amount": 200, "seller_id": "mrisell"})

	w := s.request(http.MethodGet, "/api/admin/commission", nil)
	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	s.InDelta(10.0, resp["total_commission"].(float64), 1e-9)
}

func (s *APITestSuite) uploadRequest(field, filename string, contents []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	s.Require().NoError(err)
	_, err = part.Write(contents)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) TestUploadImage() {
	w := s.uploadRequest("file", "tomato photo.png", []byte("fake-png-bytes"))
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	fileURL := resp["file_url"].(string)
	s.Regexp(regexp.MustCompile(`^/uploads/\d{8}_\d{6}_tomato_photo\.png$`), fileURL)

	saved := filepath.Join(s.cfg.UploadDir, strings.TrimPrefix(fileURL, "/uploads/"))
	data, err := os.ReadFile(saved)
	s.Require().NoError(err)
	s.Equal([]byte("fake-png-bytes"), data)
}

func (s *APITestSuite) TestUploadRejectsInvalidFileType() {
	w := s.uploadRequest("file", "notes.txt", []byte("hello"))
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Invalid file type", resp["message"])
}

func (s *APITestSuite) TestUploadRequiresFile() {
	w := s.uploadRequest("wrong_field", "photo.png", []byte("x"))
	resp := s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("No file selected", resp["message"])
}

func (s *APITestSuite) TestAdminUsersLifecycle() {
	// Built-ins only at first, listed without passwords
	users := s.list(s.request(http.MethodGet, "/api/admin/users", nil))
	s.Len(users, 3)
	s.Equal("mritunjay", users[0]["username"])
	s.NotContains(users[0], "password")

	w := s.request(http.MethodPost, "/api/admin/users", gin.H{"username": "asha", "password": "pw"})
	resp := s.envelope(w)
	s.Equal(true, resp["success"])
	created := resp["user"].(map[string]interface{})
	s.Equal("buyer", created["role"]) // default role
	s.Equal("Active", created["status"])

	w = s.request(http.MethodPost, "/api/admin/users", gin.H{"username": "asha", "password": "other"})
	resp = s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("Username already exists", resp["message"])

	s.Len(s.list(s.request(http.MethodGet, "/api/admin/users", nil)), 4)

	w = s.request(http.MethodDelete, "/api/admin/users/asha", nil)
	s.Equal(true, s.envelope(w)["success"])

	w = s.request(http.MethodDelete, "/api/admin/users/asha", nil)
	resp = s.envelope(w)
	s.Equal(false, resp["success"])
	s.Equal("User not found", resp["message"])
}

func (s *APITestSuite) TestCannotDeleteDemoUsers() {
	for _, demo := range []string{"mritunjay", "mriby", "mrisell"} {
		w := s.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%s", demo), nil)
		resp := s.envelope(w)
		s.Equal(false, resp["success"])
		s.Equal("Cannot delete demo users", resp["message"])
	}
	s.Len(s.list(s.request(http.MethodGet, "/api/admin/users", nil)), 3)
}

func (s *APITestSuite) TestAdminStats() {
	s.request(http.MethodPost, "/api/admin/users", gin.H{"username": "b1", "password": "pw", "role": "buyer"})
	s.request(http.MethodPost, "/api/admin/users", gin.H{"username": "s1", "password": "pw", "role": "seller"})

	s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 1, "buyer": "b1", "seller": "mrisell", "quantity": 1, "price": 40, "total": 40,
	})
	s.request(http.MethodPost, "/api/orders", gin.H{
		"productId": 2, "buyer": "b1", "seller": "mrisell", "quantity": 2, "price": 25, "total": 50,
	})
	s.request(http.MethodPost, "/api/payment/process", gin.H{"order_id": 1, "amount": 40, "seller_id": "mrisell"})

	w := s.request(http.MethodGet, "/api/admin/stats", nil)
	resp := s.envelope(w)
	s.Equal(true, resp["success"])

	stats := resp["stats"].(map[string]interface{})
	s.Equal(float64(2), stats["total_buyers"])
	s.Equal(float64(2), stats["total_sellers"])
	s.Equal(float64(2), stats["total_orders"])
	s.InDelta(40.0, stats["total_revenue"].(float64), 1e-9)
}

func (s *APITestSuite) TestUnmatchedRouteReturns404() {
	w := s.request(http.MethodGet, "/api/nope", nil)
	s.Equal(http.StatusNotFound, w.Code)
}
