package domain

// VendorType categorizes a vendor and selects its interview question set
type VendorType string

const (
	TypeVenue          VendorType = "venue"
	TypePlanner        VendorType = "planner"
	TypePhotographer   VendorType = "photographer"
	TypeVideographer   VendorType = "videographer"
	TypeCaterer        VendorType = "caterer"
	TypeFlorist        VendorType = "florist"
	TypeDJ             VendorType = "dj"
	TypeBand           VendorType = "band"
	TypeCake           VendorType = "cake"
	TypeHairMakeup     VendorType = "hair_makeup"
	TypeOfficiant      VendorType = "officiant"
	TypeTransportation VendorType = "transportation"
	TypeRentals        VendorType = "rentals"
	TypeStationery     VendorType = "stationery"
	TypeOther          VendorType = "other"
)

// TypeLabels maps each vendor type to its display name.
var TypeLabels = map[VendorType]string{
	TypeVenue:          "Venue",
	TypePlanner:        "Wedding Planner",
	TypePhotographer:   "Photographer",
	TypeVideographer:   "Videographer",
	TypeCaterer:        "Caterer",
	TypeFlorist:        "Florist",
	TypeDJ:             "DJ",
	TypeBand:           "Band",
	TypeCake:           "Cake/Bakery",
	TypeHairMakeup:     "Hair & Makeup",
	TypeOfficiant:      "Officiant",
	TypeTransportation: "Transportation",
	TypeRentals:        "Rentals",
	TypeStationery:     "Stationery",
	TypeOther:          "Other",
}

// ValidType reports whether t is a known vendor type.
func ValidType(t VendorType) bool {
	_, ok := TypeLabels[t]
	return ok
}

// Question is one interview question to ask a vendor before booking
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Tip      string `json:"tip,omitempty"`
}

// universalQuestions apply to every vendor type.
var universalQuestions = []Question{
	{ID: "u1", Question: "What's your cancellation/refund policy?"},
	{ID: "u2", Question: "Do you carry liability insurance?"},
	{ID: "u3", Question: "What's the deposit and payment schedule?"},
	{ID: "u4", Question: "How will you use photos/video from our wedding?"},
	{ID: "u5", Question: "Who is our point of contact?"},
	{ID: "u6", Question: "What's in the contract?"},
}

var typeQuestions = map[VendorType][]Question{
	TypeVenue: {
		{ID: "v1", Question: "Is our date available? What's the rental fee?"},
		{ID: "v2", Question: "What's the guest capacity (ceremony vs reception)?"},
		{ID: "v3", Question: "What's included (tables, chairs, linens, catering)?"},
		{ID: "v4", Question: "Are outside vendors allowed? Any required vendors?"},
		{ID: "v5", Question: "What's the rain/weather backup plan?"},
		{ID: "v6", Question: "How many restrooms?", Tip: "Need 4+ per 100 guests"},
		{ID: "v7", Question: "What time can vendors arrive for setup?"},
		{ID: "v8", Question: "Is there parking? Overnight accommodations?"},
		{ID: "v9", Question: "Can we do a rehearsal here? Is there a fee?"},
		{ID: "v10", Question: "Are there other weddings the same day?"},
	},
	TypePlanner: {
		{ID: "p1", Question: "Are you available on our date?"},
		{ID: "p2", Question: "How many weddings do you book per month?"},
		{ID: "p3", Question: "What's included in your packages (full planning vs day-of)?"},
		{ID: "p4", Question: "Will you be on-site the wedding day, or an assistant?"},
		{ID: "p5", Question: "How do you handle vendor recommendations? Take commissions?"},
		{ID: "p6", Question: "What's your communication style (weekly calls, email, text)?"},
		{ID: "p7", Question: "What's your backup plan if you're sick?"},
		{ID: "p8", Question: "Can we see a recent wedding timeline you created?"},
	},
	TypePhotographer: {
		{ID: "ph1", Question: "Can we see a full wedding gallery (not just highlights)?"},
		{ID: "ph2", Question: "Have you shot at our venue before?"},
		{ID: "ph3", Question: "What's your style (documentary, editorial, traditional)?"},
		{ID: "ph4", Question: "How many hours included? Cost of extra hours?"},
		{ID: "ph5", Question: "Do you bring backup equipment?"},
		{ID: "ph6", Question: "When do we receive photos? How many edited images?"},
		{ID: "ph7", Question: "Do you offer engagement sessions?"},
		{ID: "ph8", Question: "Who owns the rights to the photos?"},
	},
	TypeVideographer: {
		{ID: "vd1", Question: "Can we see full wedding videos (not just trailers)?"},
		{ID: "vd2", Question: "Have you filmed at our venue before?"},
		{ID: "vd3", Question: "What's your filming style (cinematic, documentary)?"},
		{ID: "vd4", Question: "How many videographers will be there?"},
		{ID: "vd5", Question: "Do you bring backup equipment?"},
		{ID: "vd6", Question: "What's the turnaround time for edits?"},
		{ID: "vd7", Question: "What formats do we receive (highlight, full ceremony, raw)?"},
		{ID: "vd8", Question: "Do you coordinate with the photographer?"},
	},
	TypeCaterer: {
		{ID: "c1", Question: "Have you worked at our venue before?"},
		{ID: "c2", Question: "Can we do a tasting before booking?"},
		{ID: "c3", Question: "Can you accommodate dietary restrictions (vegan, allergies, halal, kosher)?"},
		{ID: "c4", Question: "Is the food fresh, frozen, or locally sourced?"},
		{ID: "c5", Question: "What's included (plates, glasses, linens, servers)?"},
		{ID: "c6", Question: "Do you handle bar service? Corkage fees?"},
		{ID: "c7", Question: "How do you handle leftovers?"},
		{ID: "c8", Question: "What's the cost per person?"},
	},
	TypeFlorist: {
		{ID: "f1", Question: "What style do you specialize in?"},
		{ID: "f2", Question: "Can you work within our budget of $___?"},
		{ID: "f3", Question: "Will you visit the venue beforehand?"},
		{ID: "f4", Question: "What's included (bouquets, boutonnieres, centerpieces, ceremony decor)?"},
		{ID: "f5", Question: "Are flowers in-season for our date?"},
		{ID: "f6", Question: "Will you be on-site to distribute personal flowers?"},
		{ID: "f7", Question: "Can we see samples before the wedding?"},
		{ID: "f8", Question: "Do you handle setup and breakdown?"},
	},
	TypeDJ: {
		{ID: "dj1", Question: "Have you worked at our venue before?"},
		{ID: "dj2", Question: "How much setup time do you need?"},
		{ID: "dj3", Question: "Can we provide a must-play and do-not-play list?"},
		{ID: "dj4", Question: "Do you MC and make announcements?"},
		{ID: "dj5", Question: "What will you wear?"},
		{ID: "dj6", Question: "Do you provide lighting?"},
		{ID: "dj7", Question: "What's your backup plan for equipment failure?"},
		{ID: "dj8", Question: "Can we hear you at a live event or see videos?"},
	},
	TypeBand: {
		{ID: "b1", Question: "Have you played at our venue before?"},
		{ID: "b2", Question: "How much setup time and space do you need?"},
		{ID: "b3", Question: "Can we provide song requests?"},
		{ID: "b4", Question: "Do you MC and make announcements?"},
		{ID: "b5", Question: "What will you wear?"},
		{ID: "b6", Question: "How many breaks do you take? What happens during breaks?"},
		{ID: "b7", Question: "Can we see you perform live before booking?"},
		{ID: "b8", Question: "What happens if a band member gets sick?"},
	},
	TypeCake: {
		{ID: "ck1", Question: "Can we do a tasting?"},
		{ID: "ck2", Question: "What flavors and fillings do you offer?"},
		{ID: "ck3", Question: "Can you match our design inspiration?"},
		{ID: "ck4", Question: "How is pricing determined (per slice, per tier)?"},
		{ID: "ck5", Question: "Do you deliver and set up?"},
		{ID: "ck6", Question: "How far in advance is the cake made?"},
		{ID: "ck7", Question: "Do you provide a cake stand and serving set?"},
	},
	TypeHairMakeup: {
		{ID: "hm1", Question: "Can we do a trial?"},
		{ID: "hm2", Question: "How many people can you accommodate?"},
		{ID: "hm3", Question: "Will you travel to our venue?"},
		{ID: "hm4", Question: "What products do you use? Any specific brands?"},
		{ID: "hm5", Question: "How long does each person take?"},
		{ID: "hm6", Question: "Do you stay for touch-ups?"},
		{ID: "hm7", Question: "What's your backup plan if you're sick?"},
	},
	TypeOfficiant: {
		{ID: "o1", Question: "Are you licensed to marry us in our state?"},
		{ID: "o2", Question: "Have you officiated at our venue before?"},
		{ID: "o3", Question: "Can we write our own vows?"},
		{ID: "o4", Question: "Can we see a sample ceremony script?"},
		{ID: "o5", Question: "What do you wear?"},
		{ID: "o6", Question: "Do you handle the marriage license paperwork?"},
		{ID: "o7", Question: "Will you attend the rehearsal?"},
	},
	TypeTransportation: {
		{ID: "t1", Question: "What vehicles do you have available?"},
		{ID: "t2", Question: "How is pricing structured (hourly, flat rate)?"},
		{ID: "t3", Question: "Is gratuity included?"},
		{ID: "t4", Question: "What's the cancellation policy for weather?"},
		{ID: "t5", Question: "Can we see the vehicle before booking?"},
		{ID: "t6", Question: "What happens if the vehicle breaks down?"},
	},
	TypeRentals: {
		{ID: "r1", Question: "What's your inventory for our date?"},
		{ID: "r2", Question: "Do you deliver and pick up? What are the fees?"},
		{ID: "r3", Question: "What's the damage policy?"},
		{ID: "r4", Question: "Can we see items in person?"},
		{ID: "r5", Question: "What condition should items be returned in?"},
		{ID: "r6", Question: "What's the deadline to finalize quantities?"},
	},
	TypeStationery: {
		{ID: "s1", Question: "Can we see samples of your work?"},
		{ID: "s2", Question: "What's the turnaround time?"},
		{ID: "s3", Question: "Do you offer addressing and mailing services?"},
		{ID: "s4", Question: "What paper and printing options do you offer?"},
		{ID: "s5", Question: "How many rounds of revisions are included?"},
		{ID: "s6", Question: "Can you match items to our wedding website?"},
	},
	TypeOther: {},
}

// QuestionsForType returns the type-specific questions followed by the
// universal ones.
func QuestionsForType(t VendorType) []Question {
	specific := typeQuestions[t]
	questions := make([]Question, 0, len(specific)+len(universalQuestions))
	questions = append(questions, specific...)
	questions = append(questions, universalQuestions...)
	return questions
}
