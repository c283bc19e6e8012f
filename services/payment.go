package services

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
	"time"
)

// PaymentGateway là cổng thanh toán bên ngoài: tạo order cho một số tiền
// và xác minh chữ ký thanh toán client gửi về.
type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// RazorpayGateway gọi REST API của Razorpay. Số tiền tính theo đơn vị
// nhỏ nhất của tiền tệ (paise/cent).
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayGateway() *RazorpayGateway {
	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return &RazorpayGateway{
		keyID:     os.Getenv("RAZORPAY_KEY_ID"),
		keySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewRazorpayGatewayWith dùng cho test với server giả
func NewRazorpayGatewayWith(keyID, keySecret, baseURL string, client *http.Client) *RazorpayGateway {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &RazorpayGateway{keyID: keyID, keySecret: keySecret, baseURL: baseURL, client: client}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder tạo order trên cổng thanh toán, trả về order id
func (g *RazorpayGateway) CreateOrder(amountMinor int64, currency, receipt string) (string, error) {
	payload, err := json.Marshal(orderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("payment gateway returned empty order id")
	}
	return order.ID, nil
}

// VerifySignature so sánh chữ ký client gửi về với
// HMAC-SHA256(orderId|paymentId, keySecret), so khớp từng byte.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	expected := SignPayment(orderID, paymentID, g.keySecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignPayment tính chữ ký hex cho cặp order/payment
func SignPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
