package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// GatewayOrder is the gateway-side transaction record created before the
// hosted widget is ever shown to the user.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type gatewayOrderResponse struct {
	GatewayOrder
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// getGatewayConfig reads the gateway credentials; the key id is also handed
// to clients so they can open the hosted widget.
func getGatewayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("GATEWAY_KEY_ID")
	keySecret = os.Getenv("GATEWAY_KEY_SECRET")
	apiURL = os.Getenv("GATEWAY_API_URL")

	if keyID == "" || keySecret == "" || apiURL == "" {
		return "", "", "", fmt.Errorf("payment gateway configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// CreateGatewayOrder registers an order with the payment gateway and returns
// its id for the client-side widget. No retry, no timeout beyond the
// transport default; failures propagate to the caller unchanged.
func CreateGatewayOrder(amountMinor int64, currency, receipt string) (*GatewayOrder, error) {
	keyID, keySecret, apiURL, err := getGatewayConfig()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", strings.TrimRight(apiURL, "/")+"/orders", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway API error (%d): %s", resp.StatusCode, string(body))
	}

	var gwResp gatewayOrderResponse
	if err := json.Unmarshal(body, &gwResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if gwResp.Error != nil {
		return nil, fmt.Errorf("gateway error: %s", gwResp.Error.Description)
	}
	if gwResp.ID == "" {
		return nil, fmt.Errorf("gateway returned empty order id")
	}

	return &gwResp.GatewayOrder, nil
}

// VerifyPaymentSignature checks the three values the payment widget hands
// back: the signature must be HMAC-SHA256("<order_id>|<payment_id>") under
// the gateway key secret. Constant-time compare.
func VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	_, keySecret, _, err := getGatewayConfig()
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// GatewayKeyID exposes the public key id for checkout responses.
func GatewayKeyID() string {
	return os.Getenv("GATEWAY_KEY_ID")
}
