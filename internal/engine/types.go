package engine

// Category classifies a purchase. Unknown values fold into CategoryOther.
type Category string

const (
	CategoryClothes      Category = "clothes"
	CategorySkincare     Category = "skincare"
	CategoryTravel       Category = "travel"
	CategoryFood         Category = "food"
	CategorySubscription Category = "subscription"
	CategoryGift         Category = "gift"
	CategoryJewellery    Category = "jewellery"
	CategoryOther        Category = "other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryClothes,
	CategorySkincare,
	CategoryTravel,
	CategoryFood,
	CategorySubscription,
	CategoryGift,
	CategoryJewellery,
	CategoryOther,
}

// ParseCategory folds an arbitrary string into a valid Category.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Mode selects the tone used for punchline text. It never affects scoring.
type Mode string

const (
	ModeSoftlife Mode = "softlife"
	ModeBestie   Mode = "bestie"
	ModeMBA      Mode = "mba"
)

// Modes lists all valid tone modes.
var Modes = []Mode{ModeSoftlife, ModeBestie, ModeMBA}

// ParseMode folds an arbitrary string into a valid Mode, defaulting to softlife.
func ParseMode(s string) Mode {
	for _, m := range Modes {
		if string(m) == s {
			return m
		}
	}
	return ModeSoftlife
}

// Income is a monthly-income bracket. The empty string means "not provided".
type Income string

const (
	IncomeUnder30  Income = "under30"
	Income30to60   Income = "30to60"
	Income60to100  Income = "60to100"
	Income100to200 Income = "100to200"
	IncomeOver200  Income = "over200"
)

// Incomes lists all valid income brackets in ascending order.
var Incomes = []Income{IncomeUnder30, Income30to60, Income60to100, Income100to200, IncomeOver200}

// ParseIncome returns the matching bracket, or empty if the value is unknown.
func ParseIncome(s string) Income {
	for _, inc := range Incomes {
		if string(inc) == s {
			return inc
		}
	}
	return ""
}

// Verdict is one of four outcome tiers, a strict partition of score [0,100].
type Verdict string

const (
	VerdictApproved     Verdict = "approved"
	VerdictJustified    Verdict = "justified"
	VerdictQuestionable Verdict = "questionable"
	VerdictDenied       Verdict = "denied"
)

// PurchaseInput is the raw, user-supplied purchase description. Numeric fields
// are kept as strings because the steady state of a live-typing form is partial
// or invalid input; every field degrades to a documented default instead of
// erroring.
type PurchaseInput struct {
	Price           string `json:"price"`
	Category        string `json:"category"`
	Mode            string `json:"mode"`
	Uses            string `json:"uses"`
	OriginalPrice   string `json:"originalPrice"`
	DiscountPercent string `json:"discountPercent"`
	Income          string `json:"income"`
	BudgetPercent   string `json:"budgetPercent"`
	SkipVibe        bool   `json:"skipVibe"`
}

// FactorScore is one weighted component of the transparent score breakdown.
type FactorScore struct {
	Points    int    `json:"points"`
	Max       int    `json:"max"`
	Rationale string `json:"rationale"`
}

// BonusScore is the category bonus contribution. Unlike the four factors it
// has no fixed maximum; the tier-protection rule bounds its effect instead.
type BonusScore struct {
	Points    int    `json:"points"`
	Rationale string `json:"rationale"`
}

// Breakdown holds the four scored factors plus the category bonus.
type Breakdown struct {
	PriceThreshold FactorScore `json:"priceThreshold"`
	CostPerUse     FactorScore `json:"costPerUse"`
	BudgetImpact   FactorScore `json:"budgetImpact"`
	DiscountSale   FactorScore `json:"discountSale"`
	CategoryBonus  BonusScore  `json:"categoryBonus"`
}

// VerdictTier describes one verdict band of the 0-100 score range.
type VerdictTier struct {
	Verdict Verdict `json:"verdict"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Stamp   string  `json:"stamp"`
	Message string  `json:"message"`
}

// Metrics is the full evaluation result. It is constructed once per Evaluate
// call and never mutated afterwards. Pointer fields are nil when the value is
// not computable from the given inputs; callers should render those as "—",
// never as zero.
type Metrics struct {
	Price         float64  `json:"price"`
	Category      Category `json:"category"`
	Mode          Mode     `json:"mode"`
	OriginalPrice float64  `json:"originalPrice"`

	UsesProvided  bool `json:"usesProvided"`
	Uses          int  `json:"uses"`
	UsesEstimated bool `json:"usesEstimated"`

	CostPerUse *float64 `json:"costPerUse"`
	CostPerDay *float64 `json:"costPerDay"`

	Savings         float64 `json:"savings"`
	DiscountPercent float64 `json:"discountPercent"`
	AdjustedPrice   float64 `json:"adjustedPrice"`

	Income              Income   `json:"income,omitempty"`
	BudgetPercent       *int     `json:"budgetPercent"`
	Budget              *float64 `json:"budget"`
	BudgetPercentOfVibe *float64 `json:"budgetPercentOfVibe"`

	Breakdown     Breakdown   `json:"breakdown"`
	BaseScore     int         `json:"baseScore"`
	CategoryBonus int         `json:"categoryBonus"`
	Score         int         `json:"score"`
	Verdict       Verdict     `json:"verdict"`
	VerdictInfo   VerdictTier `json:"verdictInfo"`
	Stamp         string      `json:"stamp"`
	Confidence    int         `json:"confidence"`
	Justification string      `json:"justification"`
}
