package model

import (
	"time"

	"gorm.io/datatypes"
)

// Registration is one event signup. Inserted exactly once by the
// submission pipeline, never updated by this service.
type Registration struct {
	RegistrationID string `gorm:"column:registration_id;type:varchar(40);primaryKey" json:"registration_id"`

	EventID      string `gorm:"column:event_id;type:varchar(60);not null;index" json:"event_id"`
	EventName    string `gorm:"column:event_name;type:varchar(120);not null" json:"event_name"`
	CategoryName string `gorm:"column:category_name;type:varchar(60);not null" json:"category_name"`

	CaptainName  string `gorm:"column:captain_name;type:varchar(120);not null" json:"captain_name"`
	CaptainEmail string `gorm:"column:captain_email;type:varchar(120);not null" json:"captain_email"`
	CaptainPhone string `gorm:"column:captain_phone;type:varchar(20);not null" json:"captain_phone"`
	CaptainYear  string `gorm:"column:captain_year;type:varchar(20)" json:"captain_year"`

	Institution         string `gorm:"column:institution;type:varchar(160);not null" json:"institution"`
	ParticipantCategory string `gorm:"column:participant_category;type:varchar(40)" json:"participant_category"`

	// Full roster incl. the captain at index 0, as [{name,phone,year}].
	TeamMembers datatypes.JSON `gorm:"column:team_members;type:jsonb" json:"team_members"`

	FeeAmount  int     `gorm:"column:fee_amount;not null" json:"fee_amount"`
	DelegateID *string `gorm:"column:delegate_id;type:varchar(40)" json:"delegate_id,omitempty"`
	CouponCode *string `gorm:"column:coupon_code;type:varchar(40)" json:"coupon_code,omitempty"`

	PaymentScreenshotURL *string `gorm:"column:payment_screenshot_url;type:text" json:"payment_screenshot_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}
