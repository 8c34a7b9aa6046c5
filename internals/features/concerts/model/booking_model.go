package model

import "time"

// ConcertBooking stores only the bare object key for its screenshot:
// the concert bucket is private, and the admin side resolves keys to
// short-lived signed URLs on demand.
type ConcertBooking struct {
	BookingID string `gorm:"column:booking_id;type:varchar(40);primaryKey" json:"booking_id"`

	ShowID      string `gorm:"column:show_id;type:varchar(30);not null;index" json:"show_id"`
	Name        string `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email       string `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Phone       string `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Institution string `gorm:"column:institution;type:varchar(160);not null" json:"institution"`

	TicketType  string `gorm:"column:ticket_type;type:varchar(30);not null" json:"ticket_type"`
	TicketPrice int    `gorm:"column:ticket_price;not null" json:"ticket_price"`

	PartnerName  *string `gorm:"column:partner_name;type:varchar(120)" json:"partner_name,omitempty"`
	PartnerPhone *string `gorm:"column:partner_phone;type:varchar(20)" json:"partner_phone,omitempty"`

	PaymentStatus        string  `gorm:"column:payment_status;type:varchar(20);not null" json:"payment_status"`
	PaymentScreenshotKey *string `gorm:"column:payment_screenshot_key;type:text" json:"payment_screenshot_key,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ConcertBooking) TableName() string {
	return "concert_bookings"
}
