package scoring

import "testing"

func TestCalculateRedFlags(t *testing.T) {
	tests := []struct {
		name          string
		listings      []RecentListing
		wantScore     int
		wantFlagCount int
	}{
		{
			name: "clean listing keeps full score",
			listings: []RecentListing{
				{Title: "Oak coffee table", Description: "Solid oak, minor wear on one leg. Pickup in Fremont."},
			},
			wantScore:     100,
			wantFlagCount: 0,
		},
		{
			name: "classic scam language stacks three families",
			listings: []RecentListing{
				{Title: "Coffee table", Description: "URGENT, CASH ONLY, message me on WhatsApp"},
			},
			wantScore:     45,
			wantFlagCount: 3,
		},
		{
			name: "family fires once per listing",
			listings: []RecentListing{
				{Title: "Road bike", Description: "Urgent sale, hurry, limited time offer"},
			},
			wantScore:     85,
			wantFlagCount: 1,
		},
		{
			name: "same family counts per listing",
			listings: []RecentListing{
				{Title: "Dresser", Description: "Cash only please"},
				{Title: "Lamp", Description: "cash only, no holds"},
			},
			wantScore:     60,
			wantFlagCount: 2,
		},
		{
			name: "phone number is off-platform contact",
			listings: []RecentListing{
				{Title: "Sofa", Description: "Interested? Reach us at 555-123-4567 anytime."},
			},
			wantScore:     80,
			wantFlagCount: 1,
		},
		{
			name: "shouted title",
			listings: []RecentListing{
				{Title: "AMAZING DEAL ON BIKE", Description: "Lightly used, new tires."},
			},
			wantScore:     95,
			wantFlagCount: 1,
		},
		{
			name: "short caps title is fine",
			listings: []RecentListing{
				{Title: "IPAD", Description: "Fourth generation, good battery."},
			},
			wantScore:     100,
			wantFlagCount: 0,
		},
		{
			name: "emoji wall",
			listings: []RecentListing{
				{Title: "\U0001F525\U0001F525\U0001F525\U0001F525 great bike", Description: "Barely ridden."},
			},
			wantScore:     95,
			wantFlagCount: 1,
		},
		{
			name: "three emoji are tolerated",
			listings: []RecentListing{
				{Title: "\U0001F525\U0001F525\U0001F525 great bike", Description: "Barely ridden."},
			},
			wantScore:     100,
			wantFlagCount: 0,
		},
		{
			name: "heavy flags floor at zero",
			listings: []RecentListing{
				{Title: "Laptop", Description: "URGENT must sell, cash only, first come first serve, text me"},
				{Title: "Monitor", Description: "urgent, need to sell fast, cash app only, first come first serve, text me"},
			},
			wantScore:     0,
			wantFlagCount: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &SellerProfile{Availability: map[ProfileField]Availability{}}

			result := CalculateRedFlags(profile, tt.listings, nil)

			if !result.Available {
				t.Fatal("red flags should be available when listings are supplied")
			}
			if result.Score == nil {
				t.Fatal("score should not be nil")
			}
			if *result.Score != tt.wantScore {
				t.Errorf("CalculateRedFlags() score = %d, want %d", *result.Score, tt.wantScore)
			}
			hits, ok := result.Breakdown["flags"].([]FlagHit)
			if !ok {
				t.Fatalf("breakdown flags has type %T, want []FlagHit", result.Breakdown["flags"])
			}
			if len(hits) != tt.wantFlagCount {
				t.Errorf("flag count = %d, want %d", len(hits), tt.wantFlagCount)
			}
		})
	}
}

func TestCalculateRedFlagsHitDetails(t *testing.T) {
	listings := []RecentListing{
		{Title: "Bookshelf", Description: "Solid pine, five shelves."},
		{Title: "Desk", Description: "Must sell this week, venmo only."},
	}
	profile := &SellerProfile{Availability: map[ProfileField]Availability{}}

	result := CalculateRedFlags(profile, listings, nil)

	hits := result.Breakdown["flags"].([]FlagHit)
	want := []FlagHit{
		{Listing: 2, Flag: FlagFinancial, Penalty: penaltyFinancial},
		{Listing: 2, Flag: FlagCashOnly, Penalty: penaltyCashOnly},
	}
	if len(hits) != len(want) {
		t.Fatalf("hit count = %d, want %d", len(hits), len(want))
	}
	for i, hit := range hits {
		if hit != want[i] {
			t.Errorf("hit[%d] = %+v, want %+v", i, hit, want[i])
		}
	}
	if result.Breakdown["deduction"] != penaltyFinancial+penaltyCashOnly {
		t.Errorf("deduction = %v, want %d", result.Breakdown["deduction"], penaltyFinancial+penaltyCashOnly)
	}
}

func TestCalculateRedFlagsNoListings(t *testing.T) {
	profile := &SellerProfile{Availability: map[ProfileField]Availability{}}

	result := CalculateRedFlags(profile, nil, nil)

	if result.Available {
		t.Error("red flags should be unavailable with no listings")
	}
	if result.Score != nil {
		t.Error("score should be nil when unavailable")
	}
	if result.Breakdown["note"] != "no listings to scan" {
		t.Errorf("note = %v, want seller-side note", result.Breakdown["note"])
	}

	hidden := &SellerProfile{Availability: map[ProfileField]Availability{
		FieldListingCount: AvailabilityPlatformUnavailable,
	}}
	result = CalculateRedFlags(hidden, nil, nil)
	if result.Breakdown["note"] != "platform does not expose listings" {
		t.Errorf("note = %v, want platform note", result.Breakdown["note"])
	}
}

func TestIsAllCapsTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"AMAZING DEAL ON BIKE", true},
		{"SELLING FAST!!", true},
		{"IPAD", false},
		{"Great bike", false},
		{"MOSTLY CAPS but not all", false},
		{"12345678", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isAllCapsTitle(tt.title); got != tt.want {
			t.Errorf("isAllCapsTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestCountPictographs(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"plain title", 0},
		{"\U0001F525 hot deal \U0001F525", 2},
		{"★★★", 3},
		{"✔ checked ➡ next", 2},
		{"→ plain arrow", 0},
	}

	for _, tt := range tests {
		if got := countPictographs(tt.text); got != tt.want {
			t.Errorf("countPictographs(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
