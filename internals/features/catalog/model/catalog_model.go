package model

// Static catalog for the fest. Loaded once at init, never mutated at
// runtime; registrations resolve fees and team rules from here instead
// of trusting numbers sent by the browser.

type Secretary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Incharge struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Prizes struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Event statuses as shown on the site.
const (
	StatusOpen        = "Open"
	StatusComingSoon  = "Coming Soon"
	StatusClosed      = "Closed"
	StatusUnavailable = "Unavailable"
)

type Event struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Fee      int      `json:"fee"` // whole rupees
	TeamType string   `json:"team_type"`
	Day      string   `json:"day"`
	Duration string   `json:"duration"`
	Status   string   `json:"status"`
	Deadline string   `json:"deadline"`
	Incharge Incharge `json:"incharge"`
	Prizes   Prizes   `json:"prizes"`
	Rules    []string `json:"rules"`
}

type Category struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	DisplayTitle string    `json:"display_title"`
	Emoji        string    `json:"emoji"`
	BorderColor  string    `json:"border_color"`
	Secretary    Secretary `json:"secretary"`
	Events       []Event   `json:"events"`
}

type DelegateTier struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Perks []string `json:"perks"`
}

type TicketType struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Couple bool   `json:"couple"`
}

type ConcertShow struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Prefix  string       `json:"prefix"` // booking ID prefix
	Day     string       `json:"day"`
	Tickets []TicketType `json:"tickets"`
}

type MerchItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Sizes []string `json:"sizes"`
	Image string   `json:"image"`
}
