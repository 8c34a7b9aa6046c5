package dto

// CreateBookingRequest is the concert ticket form. Partner fields are
// only meaningful (and only required) for couple tickets.
type CreateBookingRequest struct {
	TicketID    string `form:"ticket_id" json:"ticket_id" validate:"required"`
	Name        string `form:"name" json:"name" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Phone       string `form:"phone" json:"phone" validate:"required,phone_strict"`
	Institution string `form:"institution" json:"institution" validate:"required"`

	PartnerName  string `form:"partner_name" json:"partner_name"`
	PartnerPhone string `form:"partner_phone" json:"partner_phone"`
}
