package notification

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"arabella/services/logger"
)

// SMSSender gửi tin nhắn SMS qua Twilio. Khi thiếu cấu hình thì chạy ở
// chế độ mock: chỉ log nội dung thay vì gửi thật, để môi trường dev
// không cần tài khoản Twilio.
type SMSSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	client     *http.Client
	log        logger.Logger
}

func NewSMSSender(log logger.Logger) *SMSSender {
	baseURL := os.Getenv("TWILIO_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	return &SMSSender{
		accountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		authToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		fromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Configured báo SMSSender có đủ thông tin gửi thật không
func (s *SMSSender) Configured() bool {
	return s.accountSID != "" && s.authToken != "" && s.fromNumber != ""
}

// Send gửi một SMS tới số điện thoại khách
func (s *SMSSender) Send(to, message string) error {
	if to == "" {
		return fmt.Errorf("missing phone number")
	}
	if !s.Configured() {
		s.log.Info("[SMS MOCK] to=%s body=%q", to, message)
		return nil
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.fromNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
