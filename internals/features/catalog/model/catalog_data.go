package model

// Category order here is the display order on the site.
var Categories = []Category{
	{
		ID:           "music",
		Title:        "Music",
		DisplayTitle: "Swaranjali — Music",
		Emoji:        "🎵",
		BorderColor:  "#f59e0b",
		Secretary:    Secretary{Name: "Ananya Iyer", Phone: "9876501234"},
		Events: []Event{
			{
				ID: "solo-singing", Title: "Solo Singing", Category: "Music",
				Fee: 100, TeamType: "Individual", Day: "Day 1", Duration: "4 min",
				Status: StatusOpen, Deadline: "2026-02-18",
				Incharge: Incharge{Name: "Rahul Menon", Phone: "9876512340"},
				Prizes:   Prizes{First: "₹5000", Second: "₹3000", Third: "₹1500"},
				Rules: []string{
					"One track per participant, 4 minutes max.",
					"Karaoke or a single accompanist allowed.",
					"Film and non-film songs both welcome.",
				},
			},
			{
				ID: "battle-of-bands", Title: "Battle of Bands", Category: "Music",
				Fee: 500, TeamType: "Group (4-8)", Day: "Day 2", Duration: "15 min",
				Status: StatusOpen, Deadline: "2026-02-15",
				Incharge: Incharge{Name: "Sneha Pillai", Phone: "9876523450"},
				Prizes:   Prizes{First: "₹20000", Second: "₹10000", Third: "₹5000"},
				Rules: []string{
					"15 minutes on stage including setup.",
					"Drum kit and two guitar amps provided.",
					"Original composition earns bonus points.",
				},
			},
			{
				ID: "beatboxing", Title: "Beatbox Showdown", Category: "Music",
				Fee: 50, TeamType: "Individual", Day: "Day 2", Duration: "3 min",
				Status: StatusComingSoon, Deadline: "2026-02-20",
				Incharge: Incharge{Name: "Rahul Menon", Phone: "9876512340"},
				Prizes:   Prizes{First: "₹3000", Second: "₹1500", Third: "₹750"},
				Rules:    []string{"No backing tracks.", "Elimination rounds of 90 seconds."},
			},
		},
	},
	{
		ID:           "dance",
		Title:        "Dance",
		DisplayTitle: "Natyam — Dance",
		Emoji:        "💃",
		BorderColor:  "#ec4899",
		Secretary:    Secretary{Name: "Vikram Raj", Phone: "9876534560"},
		Events: []Event{
			{
				ID: "group-dance", Title: "Group Dance", Category: "Dance",
				Fee: 600, TeamType: "Group (6-15)", Day: "Day 3", Duration: "8 min",
				Status: StatusOpen, Deadline: "2026-02-16",
				Incharge: Incharge{Name: "Meera Das", Phone: "9876545670"},
				Prizes:   Prizes{First: "₹25000", Second: "₹12000", Third: "₹6000"},
				Rules: []string{
					"Any style; props allowed, no fire or water on stage.",
					"Submit the track 48 hours before the event.",
				},
			},
			{
				ID: "duet-dance", Title: "Duet Dance", Category: "Dance",
				Fee: 200, TeamType: "Team(2)", Day: "Day 1", Duration: "5 min",
				Status: StatusOpen, Deadline: "2026-02-18",
				Incharge: Incharge{Name: "Meera Das", Phone: "9876545670"},
				Prizes:   Prizes{First: "₹8000", Second: "₹4000", Third: "₹2000"},
				Rules:    []string{"Any two dancers, any style.", "Track under 5 minutes."},
			},
			{
				ID: "solo-dance", Title: "Solo Dance", Category: "Dance",
				Fee: 100, TeamType: "Individual", Day: "Day 2", Duration: "4 min",
				Status: StatusClosed, Deadline: "2026-02-10",
				Incharge: Incharge{Name: "Vikram Raj", Phone: "9876534560"},
				Prizes:   Prizes{First: "₹6000", Second: "₹3000", Third: "₹1500"},
				Rules:    []string{"Classical and western judged separately."},
			},
		},
	},
	{
		ID:           "literary",
		Title:        "Literary",
		DisplayTitle: "Akshara — Literary",
		Emoji:        "📚",
		BorderColor:  "#10b981",
		Secretary:    Secretary{Name: "Divya Nair", Phone: "9876556780"},
		Events: []Event{
			{
				ID: "debate", Title: "Parliamentary Debate", Category: "Literary",
				Fee: 150, TeamType: "Team(3)", Day: "Day 1", Duration: "Full day",
				Status: StatusOpen, Deadline: "2026-02-17",
				Incharge: Incharge{Name: "Arjun Kumar", Phone: "9876567890"},
				Prizes:   Prizes{First: "₹9000", Second: "₹4500", Third: "₹2000"},
				Rules:    []string{"Asian parliamentary format.", "Motions released on the spot."},
			},
			{
				ID: "open-mic-poetry", Title: "Open Mic Poetry", Category: "Literary",
				Fee: 0, TeamType: "Individual", Day: "Day 2", Duration: "5 min",
				Status: StatusOpen, Deadline: "2026-02-19",
				Incharge: Incharge{Name: "Divya Nair", Phone: "9876556780"},
				Prizes:   Prizes{First: "₹2000", Second: "₹1000", Third: "₹500"},
				Rules:    []string{"Original work only.", "Hindi, English and Malayalam accepted."},
			},
		},
	},
	{
		ID:           "fine-arts",
		Title:        "Fine Arts",
		DisplayTitle: "Chitra — Fine Arts",
		Emoji:        "🎨",
		BorderColor:  "#8b5cf6",
		Secretary:    Secretary{Name: "Kavya Shetty", Phone: "9876578900"},
		Events: []Event{
			{
				ID: "face-painting", Title: "Face Painting", Category: "Fine Arts",
				Fee: 100, TeamType: "Team(2)", Day: "Day 3", Duration: "2 hrs",
				Status: StatusOpen, Deadline: "2026-02-19",
				Incharge: Incharge{Name: "Kavya Shetty", Phone: "9876578900"},
				Prizes:   Prizes{First: "₹4000", Second: "₹2000", Third: "₹1000"},
				Rules:    []string{"One painter, one canvas (your teammate).", "Paints provided."},
			},
			{
				ID: "graffiti", Title: "Graffiti Wall", Category: "Fine Arts",
				Fee: 250, TeamType: "Group (2-4)", Day: "Day 3", Duration: "3 hrs",
				Status: StatusUnavailable, Deadline: "2026-02-12",
				Incharge: Incharge{Name: "Kavya Shetty", Phone: "9876578900"},
				Prizes:   Prizes{First: "₹7000", Second: "₹3500", Third: "₹1500"},
				Rules:    []string{"Theme announced on the day."},
			},
		},
	},
	{
		ID:           "gaming",
		Title:        "Gaming",
		DisplayTitle: "Arena — Gaming",
		Emoji:        "🎮",
		BorderColor:  "#3b82f6",
		Secretary:    Secretary{Name: "Rohan Varma", Phone: "9876589010"},
		Events: []Event{
			{
				ID: "valorant", Title: "Valorant 5v5", Category: "Gaming",
				Fee: 500, TeamType: "Team(5)", Day: "Day 1", Duration: "Bracket",
				Status: StatusOpen, Deadline: "2026-02-14",
				Incharge: Incharge{Name: "Rohan Varma", Phone: "9876589010"},
				Prizes:   Prizes{First: "₹15000", Second: "₹7500", Third: "₹3000"},
				Rules:    []string{"Bring your own peripherals.", "Single elimination, BO1 till semis."},
			},
			{
				ID: "chess-blitz", Title: "Blitz Chess", Category: "Gaming",
				Fee: 0, TeamType: "Individual", Day: "Day 2", Duration: "Swiss, 7 rounds",
				Status: StatusOpen, Deadline: "2026-02-19",
				Incharge: Incharge{Name: "Rohan Varma", Phone: "9876589010"},
				Prizes:   Prizes{First: "₹3000", Second: "₹1500", Third: "₹750"},
				Rules:    []string{"3+2 time control.", "FIDE blitz rules apply."},
			},
		},
	},
}

var DelegateTiers = []DelegateTier{
	{
		ID: "platinum", Name: "Platinum", Price: 900,
		Perks: []string{
			"All ticketed events across all three days",
			"Front-zone access for both concerts",
			"Fest kit and merch voucher",
		},
	},
	{
		ID: "gold", Name: "Gold", Price: 500,
		Perks: []string{
			"All ticketed events across all three days",
			"General access to both concerts",
		},
	},
	{
		ID: "silver", Name: "Silver", Price: 250,
		Perks: []string{
			"All ticketed events on one day of your choice",
		},
	},
}

var ConcertShows = []ConcertShow{
	{
		ID: "krishh", Name: "Krishh Live", Prefix: "KRISHH", Day: "Day 2",
		Tickets: []TicketType{
			{ID: "general", Name: "General", Price: 400},
			{ID: "fanpit", Name: "Fan Pit", Price: 750},
			{ID: "couple", Name: "Couple", Price: 700, Couple: true},
		},
	},
	{
		ID: "funkie", Name: "Funkie Fridays Night", Prefix: "FUNKIE", Day: "Day 3",
		Tickets: []TicketType{
			{ID: "general", Name: "General", Price: 350},
			{ID: "couple", Name: "Couple", Price: 600, Couple: true},
		},
	},
}

var MerchItems = []MerchItem{
	{ID: "tee-classic", Name: "Utsav '26 Classic Tee", Price: 399, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Image: "/merch/tee-classic.webp"},
	{ID: "tee-graphic", Name: "Utsav '26 Graphic Tee", Price: 449, Sizes: []string{"S", "M", "L", "XL"}, Image: "/merch/tee-graphic.webp"},
	{ID: "hoodie", Name: "Utsav '26 Hoodie", Price: 899, Sizes: []string{"M", "L", "XL"}, Image: "/merch/hoodie.webp"},
	{ID: "cap", Name: "Snapback Cap", Price: 299, Sizes: []string{"Free"}, Image: "/merch/cap.webp"},
}

/* =======================================================================
   Lookups
======================================================================= */

// EventByID scans all categories for an event ID. Event IDs are unique
// within a category but looked up globally in practice.
func EventByID(eventID string) (*Event, *Category) {
	for ci := range Categories {
		cat := &Categories[ci]
		for ei := range cat.Events {
			if cat.Events[ei].ID == eventID {
				return &cat.Events[ei], cat
			}
		}
	}
	return nil, nil
}

func TierByID(tierID string) *DelegateTier {
	for i := range DelegateTiers {
		if DelegateTiers[i].ID == tierID {
			return &DelegateTiers[i]
		}
	}
	return nil
}

func ShowByID(showID string) *ConcertShow {
	for i := range ConcertShows {
		if ConcertShows[i].ID == showID {
			return &ConcertShows[i]
		}
	}
	return nil
}

func (s *ConcertShow) TicketByID(ticketID string) *TicketType {
	for i := range s.Tickets {
		if s.Tickets[i].ID == ticketID {
			return &s.Tickets[i]
		}
	}
	return nil
}

func MerchItemByID(itemID string) *MerchItem {
	for i := range MerchItems {
		if MerchItems[i].ID == itemID {
			return &MerchItems[i]
		}
	}
	return nil
}
