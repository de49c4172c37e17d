// Package shop generates mock retailer offers for an identified item. Offers
// are deterministic for a given item: the item's identity seeds a mulberry32
// PRNG, so repeated lookups render identical listings without any network or
// retailer API.
package shop

import (
	"fmt"
	"hash/fnv"
	"math"
	"net/url"
)

// Item identifies a product and its estimated price range.
type Item struct {
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	PriceLow  float64 `json:"priceLow"`
	PriceHigh float64 `json:"priceHigh"`
	Currency  string  `json:"currency"`
}

// Offer is one mock retailer listing.
type Offer struct {
	RetailerID      string  `json:"retailerId"`
	RetailerName    string  `json:"retailerName"`
	Price           int     `json:"price"`
	Currency        string  `json:"currency"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"ratingCount"`
	ShippingMinutes int     `json:"shippingMinutes"`
	ShippingLabel   string  `json:"shippingLabel"`
	Condition       string  `json:"condition"`
	URL             string  `json:"url"`
}

type retailer struct {
	id        string
	name      string
	urlPrefix string
}

var retailers = []retailer{
	{"amazon", "Amazon", "https://www.amazon.com/s?k="},
	{"ebay", "eBay", "https://www.ebay.com/sch/i.html?_nkw="},
	{"walmart", "Walmart", "https://www.walmart.com/search?q="},
	{"target", "Target", "https://www.target.com/s?searchTerm="},
	{"sephora", "Sephora", "https://www.sephora.com/search?keyword="},
	{"bestbuy", "Best Buy", "https://www.bestbuy.com/site/searchpage.jsp?st="},
}

const offersPerItem = 5

// defaultLow and defaultHigh bound the estimate when the item carries no
// usable range.
const (
	defaultLow  = 25
	defaultHigh = 200
)

// mulberry32 is a tiny deterministic PRNG matching the widely used JS
// implementation; its stream depends only on the seed.
type mulberry32 struct{ a uint32 }

func (r *mulberry32) next() float64 {
	r.a += 0x6D2B79F5
	t := r.a
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// normalize fills in defaults and orders the price range.
func (it Item) normalize() Item {
	if !(it.PriceLow > 0) || math.IsInf(it.PriceLow, 0) {
		it.PriceLow = defaultLow
	}
	if !(it.PriceHigh > 0) || math.IsInf(it.PriceHigh, 0) {
		it.PriceHigh = defaultHigh
	}
	if it.PriceLow > it.PriceHigh {
		it.PriceLow, it.PriceHigh = it.PriceHigh, it.PriceLow
	}
	if it.Currency == "" {
		it.Currency = "USD"
	}
	return it
}

func (it Item) seed() uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%g|%g", it.Brand, it.Name, it.PriceLow, it.PriceHigh)
	return h.Sum32()
}

// EstimateLabel renders the item's price range for display.
func (it Item) EstimateLabel() string {
	n := it.normalize()
	if n.PriceLow == n.PriceHigh {
		return fmt.Sprintf("Estimated: ~$%.0f", n.PriceLow)
	}
	return fmt.Sprintf("Estimated: $%.0f - $%.0f", n.PriceLow, n.PriceHigh)
}

// MockOffers builds five deterministic retailer offers for the item.
func MockOffers(it Item) []Offer {
	n := it.normalize()
	rng := &mulberry32{a: n.seed()}

	// Stable-but-varied retailer order via seeded Fisher-Yates.
	chosen := make([]retailer, len(retailers))
	copy(chosen, retailers)
	for i := len(chosen) - 1; i > 0; i-- {
		j := int(rng.next() * float64(i+1))
		chosen[i], chosen[j] = chosen[j], chosen[i]
	}
	chosen = chosen[:offersPerItem]

	query := n.Name
	if n.Brand != "" {
		query = n.Brand + " " + n.Name
	}
	q := url.QueryEscape(query)

	span := n.PriceHigh - n.PriceLow
	offers := make([]Offer, 0, len(chosen))
	for idx, r := range chosen {
		price := clamp(n.PriceLow+span*(0.12+rng.next()*0.86), n.PriceLow, n.PriceHigh)
		rating := clamp(3.5+rng.next()*1.4, 1, 5)
		shippingMinutes := int(math.Round(clamp(60*12+rng.next()*60*72, 60, 60*24*7)))

		condition := "New"
		if idx == 0 && rng.next() > 0.6 {
			condition = "Used - good"
		}

		var shippingLabel string
		switch {
		case shippingMinutes <= 60*24:
			shippingLabel = "Fast shipping"
		case shippingMinutes <= 60*72:
			shippingLabel = "2–3 day shipping"
		default:
			shippingLabel = "Standard shipping"
		}

		offers = append(offers, Offer{
			RetailerID:      r.id,
			RetailerName:    r.name,
			Price:           int(math.Round(price)),
			Currency:        n.Currency,
			Rating:          math.Round(rating*10) / 10,
			RatingCount:     int(math.Round(50 + rng.next()*2500)),
			ShippingMinutes: shippingMinutes,
			ShippingLabel:   shippingLabel,
			Condition:       condition,
			URL:             r.urlPrefix + q,
		})
	}

	return offers
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
