package dto

import "testing"

func rosterRequest(membersJSON string) *CreateRegistrationRequest {
	return &CreateRegistrationRequest{
		CaptainName:  "Devika Shah",
		CaptainPhone: "+919876543210",
		CaptainYear:  "3rd",

		TeamMembersJSON: membersJSON,
	}
}

func TestRoster_SoloHasOnlyTheCaptain(t *testing.T) {
	roster, err := rosterRequest("").Roster()
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Devika Shah" {
		t.Errorf("roster = %+v, want just the captain", roster)
	}
}

func TestRoster_TeammatesPrependedAfterCaptain(t *testing.T) {
	roster, err := rosterRequest(`[{"name":"Tarun"},{"name":"Nisha"}]`).Roster()
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(roster) != 3 {
		t.Fatalf("roster size = %d, want 3", len(roster))
	}
	if roster[0].Name != "Devika Shah" || roster[0].Year != "3rd" {
		t.Errorf("index 0 = %+v, want the captain", roster[0])
	}
	if roster[1].Name != "Tarun" || roster[2].Name != "Nisha" {
		t.Errorf("teammates out of order: %+v", roster[1:])
	}
}

// A teammate sharing the captain's name is still a distinct member;
// team_members is teammates-only, never deduplicated by name.
func TestRoster_TeammateWithCaptainsNameIsKept(t *testing.T) {
	roster, err := rosterRequest(`[{"name":"Devika Shah","phone":"+919812345678","year":"1st"}]`).Roster()
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("roster size = %d, want 2 (captain + namesake teammate)", len(roster))
	}
	if roster[0].Phone != "+919876543210" || roster[0].Year != "3rd" {
		t.Errorf("captain details lost: %+v", roster[0])
	}
	if roster[1].Phone != "+919812345678" || roster[1].Year != "1st" {
		t.Errorf("teammate details overwritten: %+v", roster[1])
	}
}

func TestRoster_BadJSONRejected(t *testing.T) {
	if _, err := rosterRequest(`[{"name":`).Roster(); err == nil {
		t.Error("expected an error for malformed team_members")
	}
}
