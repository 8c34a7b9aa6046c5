package dto

// CreateDelegateRequest is the delegate pass purchase form. This form
// is strict about phone numbers (India-only).
type CreateDelegateRequest struct {
	TierID      string `form:"tier_id" json:"tier_id" validate:"required"`
	Name        string `form:"name" json:"name" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Phone       string `form:"phone" json:"phone" validate:"required,phone_strict"`
	Institution string `form:"institution" json:"institution" validate:"required"`
}
