// Package validation holds the form rules shared by every submission
// flow: field shapes, the screenshot size ceiling, and the team-size
// rules parsed out of an event's team type string.
package validation

import (
	"fmt"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Screenshot ceiling, checked before any network call.
const MaxScreenshotBytes = 4 << 20 // 4 MiB

var (
	EmailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Two phone shapes exist on purpose: the lenient one accepts
	// international numbers, the strict one is India-only. Which one a
	// form uses is configuration, not something to unify here.
	PhoneLenientRx = regexp.MustCompile(`^[+]?[\d\s-]{10,15}$`)
	PhoneStrictRx  = regexp.MustCompile(`^(\+91\d{10}|\d{10})$`)
)

// PhoneMode selects which phone regex a form enforces.
type PhoneMode int

const (
	PhoneLenient PhoneMode = iota
	PhoneStrict
)

func (m PhoneMode) Valid(phone string) bool {
	if m == PhoneStrict {
		return PhoneStrictRx.MatchString(phone)
	}
	return PhoneLenientRx.MatchString(phone)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone_lenient", func(fl validator.FieldLevel) bool {
		return PhoneLenientRx.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_strict", func(fl validator.FieldLevel) bool {
		return PhoneStrictRx.MatchString(fl.Field().String())
	})
	return v
}

// Struct runs validator.v10 over a tagged DTO.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// =======================
// TEAM TYPE PARSING
// =======================

// TeamSpec is the allowed member-count range for an event.
type TeamSpec struct {
	Min int
	Max int
}

var (
	teamRx  = regexp.MustCompile(`(?i)^team\s*\((\d+)\)$`)
	groupRx = regexp.MustCompile(`(?i)^group\s*\((\d+)\s*-\s*(\d+)\)$`)
)

// ParseTeamType understands the three encodings used by the catalog:
// "Individual", "Team(N)" and "Group (a-b)".
func ParseTeamType(teamType string) (TeamSpec, error) {
	tt := strings.TrimSpace(teamType)

	if strings.EqualFold(tt, "Individual") {
		return TeamSpec{Min: 1, Max: 1}, nil
	}
	if m := teamRx.FindStringSubmatch(tt); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return TeamSpec{}, fmt.Errorf("bad team size in %q", teamType)
		}
		return TeamSpec{Min: n, Max: n}, nil
	}
	if m := groupRx.FindStringSubmatch(tt); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil || lo < 1 || hi < lo {
			return TeamSpec{}, fmt.Errorf("bad group range in %q", teamType)
		}
		return TeamSpec{Min: lo, Max: hi}, nil
	}
	return TeamSpec{}, fmt.Errorf("unknown team type %q", teamType)
}

// TeamMember is one row of a team roster. The captain is index 0.
type TeamMember struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Year  string `json:"year"`
}

// ValidateTeam checks the roster against the event's team spec. The
// captain always needs phone and year; for teams larger than two the
// remaining members only need a name.
func ValidateTeam(members []TeamMember, spec TeamSpec, mode PhoneMode) map[string]string {
	errs := make(map[string]string)

	n := len(members)
	if n < spec.Min || n > spec.Max {
		if spec.Min == spec.Max {
			errs["team_members"] = fmt.Sprintf("This event requires exactly %d member(s)", spec.Min)
		} else {
			errs["team_members"] = fmt.Sprintf("This event requires %d to %d members", spec.Min, spec.Max)
		}
		return errs
	}

	captain := members[0]
	if strings.TrimSpace(captain.Name) == "" {
		errs["captain_name"] = "Captain name is required"
	}
	if !mode.Valid(captain.Phone) {
		errs["captain_phone"] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(captain.Year) == "" {
		errs["captain_year"] = "Captain year of study is required"
	}

	captainOnly := spec.Max > 2
	for i, m := range members[1:] {
		field := fmt.Sprintf("member_%d", i+2)
		if strings.TrimSpace(m.Name) == "" {
			errs[field+"_name"] = "Member name is required"
			continue
		}
		if captainOnly {
			continue
		}
		if !mode.Valid(m.Phone) {
			errs[field+"_phone"] = "Please enter a valid phone number"
		}
		if strings.TrimSpace(m.Year) == "" {
			errs[field+"_year"] = "Year of study is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CheckScreenshot enforces the conditional-payment rule: a screenshot
// is mandatory whenever the fee is non-zero, and must stay under the
// size ceiling. Runs before any upload.
func CheckScreenshot(fh *multipart.FileHeader, fee int) error {
	if fh == nil {
		if fee > 0 {
			return fmt.Errorf("payment screenshot is required for paid events")
		}
		return nil
	}
	if fh.Size > MaxScreenshotBytes {
		return fmt.Errorf("payment screenshot must be under 4 MB")
	}
	return nil
}
