package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignPayment(t *testing.T) {
	assert.Equal(t,
		"a23a35a9cc17304682813499f610ed21e20e5e98e04bc2fbe9a198a68b058546",
		SignPayment("o1", "p1", "s"))
	assert.Equal(t,
		"15656b40fea6f2159b578efa459e969de9f5e223fb8a08393e274ac578d9d005",
		SignPayment("order_ABC", "pay_XYZ", "test_secret"))
}

func TestVerifySignature(t *testing.T) {
	g := NewRazorpayGatewayWith("key", "test_secret", "http://unused", nil)

	valid := SignPayment("order_ABC", "pay_XYZ", "test_secret")
	assert.True(t, g.VerifySignature("order_ABC", "pay_XYZ", valid))

	// Sai một ký tự là từ chối
	tampered := valid[:len(valid)-1] + "0"
	if tampered == valid {
		tampered = valid[:len(valid)-1] + "1"
	}
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", tampered))

	// Chữ ký của order khác không dùng lại được
	other := SignPayment("order_OTHER", "pay_XYZ", "test_secret")
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", other))

	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", ""))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 235000, body["amount"])
		assert.Equal(t, "INR", body["currency"])

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer srv.Close()

	g := NewRazorpayGatewayWith("key_id", "key_secret", srv.URL, srv.Client())
	orderID, err := g.CreateOrder(235000, "INR", "receipt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", orderID)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad credentials"}`))
	}))
	defer srv.Close()

	g := NewRazorpayGatewayWith("key_id", "wrong", srv.URL, srv.Client())
	_, err := g.CreateOrder(1000, "INR", "receipt_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateOrderEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	g := NewRazorpayGatewayWith("key_id", "key_secret", srv.URL, srv.Client())
	_, err := g.CreateOrder(1000, "INR", "receipt_1")
	require.Error(t, err)
}
