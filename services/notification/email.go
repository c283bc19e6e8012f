package notification

import (
	"fmt"
	"net/smtp"
	"os"

	"arabella/models"
)

// Mailer gửi email HTML qua SMTP
type Mailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewMailer() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &Mailer{
		host:     host,
		port:     port,
		from:     os.Getenv("SMTP_FROM"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

// Configured báo Mailer đã đủ thông tin gửi thật chưa
func (m *Mailer) Configured() bool {
	return m.from != "" && m.password != ""
}

func (m *Mailer) send(to, subject, body string) error {
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}

// statusColor map màu hiển thị theo trạng thái booking trong email
func statusColor(status string) string {
	switch status {
	case models.BookingStatusConfirmed:
		return "#059669"
	case models.BookingStatusCancelled:
		return "#dc2626"
	case models.BookingStatusCheckedIn:
		return "#2563eb"
	default:
		return "#d97706"
	}
}

// SendBookingConfirmation gửi email xác nhận đặt phòng kèm hóa đơn
func (m *Mailer) SendBookingConfirmation(b *models.Booking) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Xác nhận đặt phòng</title>
		</head>
		<body style="font-family: Arial, sans-serif; color: #333;">
			<h2 style="color: #059669;">Arabella Motor Inn - Đặt phòng thành công</h2>
			<p>Xin chào %s,</p>
			<p>Cảm ơn bạn đã đặt phòng tại Arabella Motor Inn. Đặt phòng của bạn đã được xác nhận.</p>
			<table style="border-collapse: collapse; width: 100%%;">
				<tr><td style="padding: 6px 12px;"><strong>Mã hóa đơn</strong></td><td style="padding: 6px 12px;">%s</td></tr>
				<tr><td style="padding: 6px 12px;"><strong>Phòng</strong></td><td style="padding: 6px 12px;">%s</td></tr>
				<tr><td style="padding: 6px 12px;"><strong>Nhận phòng</strong></td><td style="padding: 6px 12px;">%s</td></tr>
				<tr><td style="padding: 6px 12px;"><strong>Trả phòng</strong></td><td style="padding: 6px 12px;">%s</td></tr>
				<tr><td style="padding: 6px 12px;"><strong>Số đêm</strong></td><td style="padding: 6px 12px;">%d</td></tr>
				<tr><td style="padding: 6px 12px;"><strong>Tổng tiền</strong></td><td style="padding: 6px 12px;"><strong>%.2f</strong></td></tr>
			</table>
			<p>Nếu có thắc mắc, vui lòng trả lời email này.</p>
			<p>Trân trọng,<br>Arabella Motor Inn</p>
		</body>
		</html>
	`, b.GuestName, b.InvoiceNumber, b.RoomType.Name,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.Nights, b.TotalPrice)

	return m.send(b.GuestEmail, "Xác nhận đặt phòng "+b.InvoiceNumber, body)
}

// SendStatusUpdate gửi email thông báo trạng thái booking thay đổi
func (m *Mailer) SendStatusUpdate(b *models.Booking) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Cập nhật đặt phòng</title>
		</head>
		<body style="font-family: Arial, sans-serif; color: #333;">
			<h2>Arabella Motor Inn - Cập nhật đặt phòng</h2>
			<p>Xin chào %s,</p>
			<p>Đặt phòng <strong>%s</strong> của bạn vừa được cập nhật trạng thái:</p>
			<p style="font-size: 18px;">
				<span style="display: inline-block; padding: 6px 16px; background-color: %s; color: white; border-radius: 5px;">%s</span>
			</p>
			<p>Nhận phòng %s, trả phòng %s.</p>
			<p>Trân trọng,<br>Arabella Motor Inn</p>
		</body>
		</html>
	`, b.GuestName, b.InvoiceNumber, statusColor(b.Status), b.Status,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))

	return m.send(b.GuestEmail, "Cập nhật đặt phòng "+b.InvoiceNumber, body)
}

// SendManual gửi email nội dung tùy ý do admin soạn
func (m *Mailer) SendManual(b *models.Booking, message string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Thông báo từ Arabella Motor Inn</title>
		</head>
		<body style="font-family: Arial, sans-serif; color: #333;">
			<p>Xin chào %s,</p>
			<p>%s</p>
			<p>Trân trọng,<br>Arabella Motor Inn</p>
		</body>
		</html>
	`, b.GuestName, message)

	return m.send(b.GuestEmail, "Thông báo về đặt phòng "+b.InvoiceNumber, body)
}
