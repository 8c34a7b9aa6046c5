package model

import (
	"time"

	"gorm.io/datatypes"
)

type MerchOrder struct {
	OrderID string `gorm:"column:order_id;type:varchar(40);primaryKey" json:"order_id"`

	Name        string `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email       string `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Phone       string `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Institution string `gorm:"column:institution;type:varchar(160);not null" json:"institution"`

	// Ordered line items as [{item_id,name,size,quantity,price}].
	Items       datatypes.JSON `gorm:"column:items;type:jsonb;not null" json:"items"`
	TotalAmount int            `gorm:"column:total_amount;not null" json:"total_amount"`

	PaymentScreenshotURL *string `gorm:"column:payment_screenshot_url;type:text" json:"payment_screenshot_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MerchOrder) TableName() string {
	return "merch_orders"
}
