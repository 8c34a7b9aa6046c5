package validation

import (
	"mime/multipart"
	"strings"
	"testing"
)

func TestParseTeamType(t *testing.T) {
	tests := []struct {
		in      string
		min     int
		max     int
		wantErr bool
	}{
		{"Individual", 1, 1, false},
		{"individual", 1, 1, false},
		{"Team(4)", 4, 4, false},
		{"Team (6)", 6, 6, false},
		{"Group (2-5)", 2, 5, false},
		{"Group(3-8)", 3, 8, false},
		{"Group (5-2)", 0, 0, true}, // inverted range
		{"Team(0)", 0, 0, true},
		{"Duet", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		spec, err := ParseTeamType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTeamType(%q): expected error, got %+v", tt.in, spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTeamType(%q): unexpected error %v", tt.in, err)
			continue
		}
		if spec.Min != tt.min || spec.Max != tt.max {
			t.Errorf("ParseTeamType(%q) = [%d,%d], want [%d,%d]", tt.in, spec.Min, spec.Max, tt.min, tt.max)
		}
	}
}

func TestPhoneModes(t *testing.T) {
	tests := []struct {
		phone   string
		lenient bool
		strict  bool
	}{
		{"9876543210", true, true},
		{"+919876543210", true, true},
		{"+1 408 555 1234", true, false},
		{"98765-43210", true, false},
		{"12345", false, false},
		{"abcdefghij", false, false},
		{"+9198765432101234", false, false},
	}

	for _, tt := range tests {
		if got := PhoneLenient.Valid(tt.phone); got != tt.lenient {
			t.Errorf("lenient(%q) = %v, want %v", tt.phone, got, tt.lenient)
		}
		if got := PhoneStrict.Valid(tt.phone); got != tt.strict {
			t.Errorf("strict(%q) = %v, want %v", tt.phone, got, tt.strict)
		}
	}
}

func TestEmailShape(t *testing.T) {
	valid := []string{"a@b.co", "captain.vox@college.edu.in"}
	invalid := []string{"", "a@b", "a b@c.d", "@x.y", "a@.z"}

	for _, e := range valid {
		if !EmailRx.MatchString(e) {
			t.Errorf("expected %q to be a valid email", e)
		}
	}
	for _, e := range invalid {
		if EmailRx.MatchString(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

func team(n int) []TeamMember {
	members := make([]TeamMember, n)
	for i := range members {
		members[i] = TeamMember{
			Name:  "Member " + strings.Repeat("x", i+1),
			Phone: "9876543210",
			Year:  "2nd",
		}
	}
	return members
}

func TestValidateTeam_GroupBounds(t *testing.T) {
	spec := TeamSpec{Min: 2, Max: 5} // Group (2-5)

	for n := 2; n <= 5; n++ {
		if errs := ValidateTeam(team(n), spec, PhoneLenient); errs != nil {
			t.Errorf("size %d should be accepted, got %v", n, errs)
		}
	}
	for _, n := range []int{1, 6} {
		if errs := ValidateTeam(team(n), spec, PhoneLenient); errs == nil {
			t.Errorf("size %d should be rejected", n)
		}
	}
}

func TestValidateTeam_EmptyRosterFailsTheRangeCheck(t *testing.T) {
	// spec.Min is never below 1, so an empty roster is always a size
	// violation; no separate empty-case branch exists.
	for _, spec := range []TeamSpec{{Min: 1, Max: 1}, {Min: 2, Max: 5}} {
		errs := ValidateTeam(nil, spec, PhoneLenient)
		if errs == nil || errs["team_members"] == "" {
			t.Errorf("empty roster with spec %+v must fail on team_members, got %v", spec, errs)
		}
	}
}

func TestValidateTeam_CaptainOnlyDetails(t *testing.T) {
	spec := TeamSpec{Min: 4, Max: 4}

	members := team(4)
	// non-captain members carry names only for larger teams
	for i := 1; i < 4; i++ {
		members[i].Phone = ""
		members[i].Year = ""
	}
	if errs := ValidateTeam(members, spec, PhoneLenient); errs != nil {
		t.Errorf("captain-only details should pass for team of 4, got %v", errs)
	}

	// but the captain still needs everything
	members[0].Phone = ""
	if errs := ValidateTeam(members, spec, PhoneLenient); errs == nil {
		t.Error("missing captain phone must be rejected")
	}

	// and member names are never optional
	members[0].Phone = "9876543210"
	members[2].Name = "  "
	if errs := ValidateTeam(members, spec, PhoneLenient); errs == nil {
		t.Error("blank member name must be rejected")
	}
}

func TestValidateTeam_PairNeedsFullDetails(t *testing.T) {
	spec := TeamSpec{Min: 2, Max: 2} // duet: everyone needs full details

	members := team(2)
	members[1].Phone = ""
	if errs := ValidateTeam(members, spec, PhoneLenient); errs == nil {
		t.Error("second member of a duo must supply a phone")
	}
}

func TestCheckScreenshot(t *testing.T) {
	small := &multipart.FileHeader{Filename: "pay.png", Size: 512 * 1024}
	big := &multipart.FileHeader{Filename: "pay.png", Size: MaxScreenshotBytes + 1}

	if err := CheckScreenshot(nil, 0); err != nil {
		t.Errorf("free event without screenshot should pass: %v", err)
	}
	if err := CheckScreenshot(nil, 250); err == nil {
		t.Error("paid event without screenshot must be rejected")
	}
	if err := CheckScreenshot(small, 250); err != nil {
		t.Errorf("small screenshot should pass: %v", err)
	}
	if err := CheckScreenshot(big, 250); err == nil {
		t.Error("oversized screenshot must be rejected")
	}
	if err := CheckScreenshot(big, 0); err == nil {
		t.Error("oversized screenshot must be rejected even on free events")
	}
}

type delegateForm struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required,phone_strict"`
	Institution string `validate:"required"`
}

func TestStruct_CustomPhoneTags(t *testing.T) {
	ok := delegateForm{Name: "A", Email: "a@b.co", Phone: "9876543210", Institution: "NIT"}
	if err := Struct(ok); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}

	bad := ok
	bad.Phone = "+1 408 555 1234" // lenient shape, strict form
	if err := Struct(bad); err == nil {
		t.Error("strict form must reject an international number")
	}
}
