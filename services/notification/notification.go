package notification

import (
	"fmt"

	"arabella/models"
	"arabella/services/logger"

	"github.com/olahol/melody"
)

// Kênh gửi thông báo cho khách
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelBoth  = "both"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcast thông báo realtime tới dashboard admin
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Dispatcher gửi thông báo cho khách theo kênh, kiểu fire-and-forget:
// lỗi gửi chỉ log, không bao giờ làm fail thao tác booking gọi nó.
type Dispatcher struct {
	mailer    *Mailer
	sms       *SMSSender
	broadcast Service
	log       logger.Logger
}

func NewDispatcher(mailer *Mailer, sms *SMSSender, broadcast Service, log logger.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, sms: sms, broadcast: broadcast, log: log}
}

// BookingConfirmed thông báo khách đặt phòng thành công qua email + SMS
// (nếu có số điện thoại), và broadcast cho admin.
func (d *Dispatcher) BookingConfirmed(b *models.Booking) {
	if d.mailer.Configured() {
		if err := d.mailer.SendBookingConfirmation(b); err != nil {
			d.log.Error("Lỗi gửi email xác nhận booking %s: %v", b.InvoiceNumber, err)
		}
	} else {
		d.log.Info("[EMAIL MOCK] xác nhận booking %s gửi tới %s", b.InvoiceNumber, b.GuestEmail)
	}

	if b.GuestPhone != "" {
		msg := fmt.Sprintf("Arabella Motor Inn: đặt phòng %s đã được xác nhận. Nhận phòng %s.",
			b.InvoiceNumber, b.CheckIn.Format("2006-01-02"))
		if err := d.sms.Send(b.GuestPhone, msg); err != nil {
			d.log.Error("Lỗi gửi SMS xác nhận booking %s: %v", b.InvoiceNumber, err)
		}
	}

	if d.broadcast != nil {
		msg := fmt.Sprintf("🔔 Booking mới %s - %s (%d đêm, tổng %.2f)",
			b.InvoiceNumber, b.GuestName, b.Nights, b.TotalPrice)
		if err := d.broadcast.SendMessage(msg); err != nil {
			d.log.Error("Lỗi broadcast booking mới: %v", err)
		}
	}
}

// StatusChanged thông báo khách khi trạng thái booking thay đổi.
// Caller chỉ gọi khi trạng thái thực sự đổi.
func (d *Dispatcher) StatusChanged(b *models.Booking) {
	if d.mailer.Configured() {
		if err := d.mailer.SendStatusUpdate(b); err != nil {
			d.log.Error("Lỗi gửi email cập nhật booking %s: %v", b.InvoiceNumber, err)
		}
	} else {
		d.log.Info("[EMAIL MOCK] cập nhật booking %s -> %s gửi tới %s", b.InvoiceNumber, b.Status, b.GuestEmail)
	}

	if b.GuestPhone != "" {
		msg := fmt.Sprintf("Arabella Motor Inn: đặt phòng %s chuyển sang trạng thái %s.", b.InvoiceNumber, b.Status)
		if err := d.sms.Send(b.GuestPhone, msg); err != nil {
			d.log.Error("Lỗi gửi SMS cập nhật booking %s: %v", b.InvoiceNumber, err)
		}
	}
}

// Manual gửi nội dung admin soạn theo kênh yêu cầu. Kênh rỗng mặc định
// là email.
func (d *Dispatcher) Manual(b *models.Booking, message, channel string) error {
	switch channel {
	case "", ChannelEmail:
		return d.sendManualEmail(b, message)
	case ChannelSMS:
		return d.sms.Send(b.GuestPhone, message)
	case ChannelBoth:
		if err := d.sendManualEmail(b, message); err != nil {
			return err
		}
		if b.GuestPhone != "" {
			return d.sms.Send(b.GuestPhone, message)
		}
		return nil
	}
	return fmt.Errorf("kênh thông báo không hợp lệ: %q", channel)
}

func (d *Dispatcher) sendManualEmail(b *models.Booking, message string) error {
	if !d.mailer.Configured() {
		d.log.Info("[EMAIL MOCK] thông báo thủ công booking %s: %q", b.InvoiceNumber, message)
		return nil
	}
	return d.mailer.SendManual(b, message)
}
