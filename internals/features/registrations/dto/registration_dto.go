package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"utsav_backend/internals/helpers/validation"
)

// CreateRegistrationRequest is parsed from the multipart registration
// form; the payment screenshot travels as the "payment_screenshot"
// file part and team_members as a JSON-encoded string field.
type CreateRegistrationRequest struct {
	EventID string `form:"event_id" json:"event_id" validate:"required"`

	CaptainName  string `form:"captain_name" json:"captain_name" validate:"required"`
	CaptainEmail string `form:"captain_email" json:"captain_email" validate:"required,email"`
	CaptainPhone string `form:"captain_phone" json:"captain_phone" validate:"required,phone_lenient"`
	CaptainYear  string `form:"captain_year" json:"captain_year" validate:"required"`

	Institution         string `form:"institution" json:"institution" validate:"required"`
	ParticipantCategory string `form:"participant_category" json:"participant_category"`

	TeamMembersJSON string `form:"team_members" json:"team_members"`

	DelegateID string `form:"delegate_id" json:"delegate_id"`
	CouponCode string `form:"coupon_code" json:"coupon_code"`
}

// Roster decodes team_members and builds the full roster with the
// captain at index 0. The contract with the form is teammates-only:
// team_members never carries the captain, whose details come from the
// captain_* fields, so a teammate who happens to share the captain's
// name stays a separate member.
func (r *CreateRegistrationRequest) Roster() ([]validation.TeamMember, error) {
	captain := validation.TeamMember{
		Name:  strings.TrimSpace(r.CaptainName),
		Phone: strings.TrimSpace(r.CaptainPhone),
		Year:  strings.TrimSpace(r.CaptainYear),
	}

	if strings.TrimSpace(r.TeamMembersJSON) == "" {
		return []validation.TeamMember{captain}, nil
	}

	var teammates []validation.TeamMember
	if err := json.Unmarshal([]byte(r.TeamMembersJSON), &teammates); err != nil {
		return nil, fmt.Errorf("team_members is not valid JSON: %w", err)
	}
	return append([]validation.TeamMember{captain}, teammates...), nil
}
