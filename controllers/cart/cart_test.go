package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Quantity can never pass below 1: the update endpoint answers 400 before
// touching any identity or storage, so a nil db proves the guard ordering.
func TestUpdateItemQuantityRejectsBelowOne(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/cart/items/:item_id", UpdateItemQuantity(nil))

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-3}`} {
		req := httptest.NewRequest(http.MethodPut, "/cart/items/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("quantity %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestUpdateItemQuantityBelowOneSuggestsRemoval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/cart/items/:item_id", UpdateItemQuantity(nil))

	req := httptest.NewRequest(http.MethodPut, "/cart/items/1", strings.NewReader(`{"quantity":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "remove the item instead") {
		t.Errorf("response does not point at removal: %s", w.Body.String())
	}
}
