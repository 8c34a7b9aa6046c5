package model

import "time"

// Payment statuses. The pending → confirmed transition is performed by
// an operator directly against the database, not by this service.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
)

type Delegate struct {
	DelegateID string `gorm:"column:delegate_id;type:varchar(40);primaryKey" json:"delegate_id"`

	Name        string `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email       string `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Phone       string `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Institution string `gorm:"column:institution;type:varchar(160);not null" json:"institution"`

	Tier      string `gorm:"column:tier;type:varchar(30);not null" json:"tier"`
	TierPrice int    `gorm:"column:tier_price;not null" json:"tier_price"`

	PaymentStatus        string  `gorm:"column:payment_status;type:varchar(20);not null" json:"payment_status"`
	PaymentScreenshotURL *string `gorm:"column:payment_screenshot_url;type:text" json:"payment_screenshot_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Delegate) TableName() string {
	return "delegates"
}
