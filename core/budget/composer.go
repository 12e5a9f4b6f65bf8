// Package budget composes tiered trip budgets. Each tier is computed
// independently from the shared transport quote, the accommodation
// estimate, and the destination's cost-of-living index; no tier
// depends on another's result. Multipliers are strictly increasing so
// economy < medium < comfort always holds.
package budget

import (
	"github.com/shopspring/decimal"

	"tripcost/core/types"
)

// Tier multipliers against the medium anchor
const (
	EconomyMultiplier = 0.6
	MediumMultiplier  = 1.0
	ComfortMultiplier = 1.9
)

// Daily expense split of the non-accommodation spend
const (
	FoodShare           = 0.5
	LocalTransportShare = 0.2
	ActivitiesShare     = 0.3
)

// defaultCostIndex applies to cities without a specific entry
const defaultCostIndex = 1.0

// costIndex is the per-city cost-of-living index scaling the daily
// non-accommodation components. Heuristic reference data.
var costIndex = map[string]float64{
	"São Paulo":           1.15,
	"Rio de Janeiro":      1.20,
	"Brasília":            1.05,
	"Florianópolis":       1.10,
	"Fernando de Noronha": 1.60,
	"Salvador":            0.95,
	"Fortaleza":           0.90,
	"Recife":              0.90,
	"Natal":               0.85,
	"Maceió":              0.85,
	"Belo Horizonte":      0.95,
	"Curitiba":            0.95,
	"Porto Alegre":        0.95,
	"Gramado":             1.25,
	"Manaus":              0.90,
	"Belém":               0.85,
	"Bonito":              1.10,
	"Búzios":              1.30,
	"Paraty":              1.15,
	"Jericoacoara":        1.20,
	"Porto Seguro":        1.00,
	"Foz do Iguaçu":       0.90,
	"Campos do Jordão":    1.25,
	"New York":            2.20,
	"Paris":               2.00,
	"London":              2.10,
	"Lisbon":              1.40,
	"Tokyo":               1.90,
	"Dubai":               1.80,
	"Buenos Aires":        0.90,
	"Santiago":            1.10,
	"Montevideo":          1.05,
	"Bariloche":           1.15,
	"Cancún":              1.35,
	"Miami":               1.90,
	"Orlando":             1.70,
	"Bangkok":             0.80,
	"Bali":                0.75,
	"Cape Town":           1.00,
}

// CostOfLivingIndex returns the destination's index, defaulting to 1.0
func CostOfLivingIndex(city string) float64 {
	if idx, ok := costIndex[city]; ok {
		return idx
	}
	return defaultCostIndex
}

// Composer builds three-tier budget recommendations
type Composer struct {
	currency types.Currency
}

// NewComposer creates a Composer
func NewComposer(currency types.Currency) *Composer {
	return &Composer{currency: currency}
}

// Compose builds the three tiers from the shared transport quote and
// the accommodation estimate. It is a pure computation; all I/O has
// already happened upstream.
func (c *Composer) Compose(params types.TripParams, transport *types.TransportQuote, accom types.AccommodationEstimate) types.BudgetRecommendation {
	days := params.Days()
	index := decimal.NewFromFloat(CostOfLivingIndex(params.DestinationCity))

	dailyFood := accom.DailyExpenses.Mul(decimal.NewFromFloat(FoodShare)).Mul(index)
	dailyLocal := accom.DailyExpenses.Mul(decimal.NewFromFloat(LocalTransportShare)).Mul(index)
	dailyActivities := accom.DailyExpenses.Mul(decimal.NewFromFloat(ActivitiesShare)).Mul(index)

	build := func(level types.TierLevel, multiplier float64) types.BudgetTier {
		mult := decimal.NewFromFloat(multiplier)
		tier := types.BudgetTier{
			Level:               level,
			DailyAccommodation:  accom.Accommodation.Mul(mult).Round(2),
			DailyFood:           dailyFood.Mul(mult).Round(2),
			DailyLocalTransport: dailyLocal.Mul(mult).Round(2),
			DailyActivities:     dailyActivities.Mul(mult).Round(2),
			Transport:           transport,
		}
		total := tier.DailyTotal().Mul(decimal.NewFromInt(int64(days)))
		if transport != nil {
			total = total.Add(transport.TotalCost)
		}
		tier.TotalEstimate = total.Round(2)
		return tier
	}

	return types.BudgetRecommendation{
		Economy:             build(types.TierEconomy, EconomyMultiplier),
		Medium:              build(types.TierMedium, MediumMultiplier),
		Comfort:             build(types.TierComfort, ComfortMultiplier),
		Days:                days,
		Currency:            c.currency,
		AccommodationSource: accom.Source,
	}
}
