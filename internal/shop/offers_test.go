package shop

import (
	"strings"
	"testing"
)

func TestMockOffers_Deterministic(t *testing.T) {
	item := Item{Name: "Glow Serum", Brand: "Lumina", PriceLow: 30, PriceHigh: 90}

	a := MockOffers(item)
	b := MockOffers(item)

	if len(a) != offersPerItem {
		t.Fatalf("got %d offers, want %d", len(a), offersPerItem)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("offer %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMockOffers_DifferentItemsDiffer(t *testing.T) {
	a := MockOffers(Item{Name: "Glow Serum", Brand: "Lumina", PriceLow: 30, PriceHigh: 90})
	b := MockOffers(Item{Name: "Silk Scarf", Brand: "Maison", PriceLow: 30, PriceHigh: 90})

	same := true
	for i := range a {
		if a[i].RetailerID != b[i].RetailerID || a[i].Price != b[i].Price {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct items produced identical offer sets")
	}
}

func TestMockOffers_PricesWithinRange(t *testing.T) {
	item := Item{Name: "Weekender Bag", PriceLow: 120, PriceHigh: 250}

	for _, o := range MockOffers(item) {
		if float64(o.Price) < item.PriceLow || float64(o.Price) > item.PriceHigh {
			t.Errorf("offer price %d outside [%g, %g]", o.Price, item.PriceLow, item.PriceHigh)
		}
		if o.Rating < 1 || o.Rating > 5 {
			t.Errorf("rating %.1f outside [1, 5]", o.Rating)
		}
		if o.ShippingMinutes < 60 || o.ShippingMinutes > 60*24*7 {
			t.Errorf("shipping %dm outside bounds", o.ShippingMinutes)
		}
		if o.ShippingLabel == "" || o.Condition == "" {
			t.Error("missing shipping label or condition")
		}
	}
}

func TestMockOffers_NormalizesBadRange(t *testing.T) {
	// Inverted range swaps; non-positive bounds fall back to defaults.
	offers := MockOffers(Item{Name: "Mystery Thing", PriceLow: 300, PriceHigh: 100})
	for _, o := range offers {
		if o.Price < 100 || o.Price > 300 {
			t.Errorf("price %d outside swapped range [100, 300]", o.Price)
		}
	}

	offers = MockOffers(Item{Name: "Mystery Thing"})
	for _, o := range offers {
		if o.Price < defaultLow || o.Price > defaultHigh {
			t.Errorf("price %d outside default range", o.Price)
		}
		if o.Currency != "USD" {
			t.Errorf("currency %q, want USD default", o.Currency)
		}
	}
}

func TestMockOffers_URLEncodesQuery(t *testing.T) {
	offers := MockOffers(Item{Name: "Glow Serum 2.0", Brand: "Lumina & Co"})
	for _, o := range offers {
		if strings.ContainsAny(o.URL[strings.LastIndex(o.URL, "=")+1:], " &") {
			t.Errorf("unencoded query in %q", o.URL)
		}
	}
}

func TestEstimateLabel(t *testing.T) {
	if got := (Item{PriceLow: 25, PriceHigh: 200}).EstimateLabel(); got != "Estimated: $25 - $200" {
		t.Errorf("EstimateLabel = %q", got)
	}
	if got := (Item{PriceLow: 50, PriceHigh: 50}).EstimateLabel(); got != "Estimated: ~$50" {
		t.Errorf("EstimateLabel = %q", got)
	}
}
