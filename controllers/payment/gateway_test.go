package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func setGatewayEnv(t *testing.T, apiURL string) {
	t.Setenv("GATEWAY_KEY_ID", "key_test_123")
	t.Setenv("GATEWAY_KEY_SECRET", "secret_test_456")
	t.Setenv("GATEWAY_API_URL", apiURL)
}

func TestCreateGatewayOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("path = %s, want /orders", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_test_123" || pass != "secret_test_456" {
			t.Error("gateway request missing basic auth credentials")
		}

		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["currency"] != "INR" {
			t.Errorf("currency = %v, want INR", payload["currency"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_gw_1",
			"amount":   payload["amount"],
			"currency": payload["currency"],
			"receipt":  payload["receipt"],
		})
	}))
	defer ts.Close()
	setGatewayEnv(t, ts.URL)

	order, err := CreateGatewayOrder(149900, "INR", "ref-1")
	if err != nil {
		t.Fatalf("CreateGatewayOrder() failed: %v", err)
	}
	if order.ID != "order_gw_1" {
		t.Errorf("order id = %s, want order_gw_1", order.ID)
	}
	if order.Amount != 149900 {
		t.Errorf("amount = %d, want 149900", order.Amount)
	}
}

func TestCreateGatewayOrderGatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer ts.Close()
	setGatewayEnv(t, ts.URL)

	if _, err := CreateGatewayOrder(1, "USD", "ref-2"); err == nil {
		t.Fatal("expected gateway-reported error to propagate")
	}
}

func TestCreateGatewayOrderMissingConfig(t *testing.T) {
	setGatewayEnv(t, "")
	if _, err := CreateGatewayOrder(100, "USD", "ref-3"); err == nil {
		t.Fatal("expected error when gateway config is missing")
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	setGatewayEnv(t, "http://unused")

	mac := hmac.New(sha256.New, []byte("secret_test_456"))
	mac.Write([]byte("order_gw_1|pay_77"))
	valid := hex.EncodeToString(mac.Sum(nil))

	if !VerifyPaymentSignature("order_gw_1", "pay_77", valid) {
		t.Error("valid signature rejected")
	}
	if VerifyPaymentSignature("order_gw_1", "pay_77", "deadbeef") {
		t.Error("garbage signature accepted")
	}
	if VerifyPaymentSignature("order_gw_1", "pay_78", valid) {
		t.Error("signature accepted for a different payment id")
	}
}
