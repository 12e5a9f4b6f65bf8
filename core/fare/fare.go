// Package fare computes transport quotes from distance, class,
// passenger count, and seasonality. The adjustment ordering is fixed:
// base rate, class multiplier, short-haul surcharge, long-haul
// discount, season surcharge, group discount, passenger total,
// rounding. Regression tests depend on this exact ordering.
//
// Callers are responsible for input validation; every function here
// assumes passengers >= 1 and distance >= 0.
package fare

import (
	"github.com/shopspring/decimal"

	"tripcost/core/types"
)

var one = decimal.NewFromInt(1)

// RoundToNearest rounds d to the nearest multiple of denomination.
// Quotes are presented as clean round numbers on purpose; re-rounding
// an already-rounded value is a no-op.
func RoundToNearest(d decimal.Decimal, denomination int) decimal.Decimal {
	denom := decimal.NewFromInt(int64(denomination))
	return d.Div(denom).Round(0).Mul(denom)
}

// groupDiscount returns the diminishing per-unit volume discount
// multiplier for the given passenger count. The discount grows with
// each extra passenger up to GroupDiscountMaxExtra.
func groupDiscount(passengers int, perPax float64) decimal.Decimal {
	extra := passengers - 1
	if extra > GroupDiscountMaxExtra {
		extra = GroupDiscountMaxExtra
	}
	if extra <= 0 {
		return one
	}
	discount := decimal.NewFromFloat(perPax).Mul(decimal.NewFromInt(int64(extra)))
	return one.Sub(discount)
}

// PriceFlight computes a flight quote
func PriceFlight(distanceKm float64, class types.FlightClass, passengers int, highSeason bool, currency types.Currency) types.TransportQuote {
	distance := decimal.NewFromFloat(distanceKm)
	base := distance.Mul(decimal.NewFromFloat(FlightRatePerKm))

	classMult := one
	if class == types.FlightBusiness {
		classMult = decimal.NewFromFloat(FlightBusinessMultiplier)
	}
	cost := base.Mul(classMult)

	if distanceKm < FlightShortHaulKm {
		cost = cost.Add(decimal.NewFromFloat(FlightMinFareSurcharge))
	}
	if distanceKm > FlightLongHaulKm {
		cost = cost.Mul(decimal.NewFromFloat(FlightLongHaulDiscount))
	}

	seasonalAdj := decimal.Zero
	if highSeason {
		withSeason := cost.Mul(decimal.NewFromFloat(FlightHighSeasonMultiplier))
		seasonalAdj = withSeason.Sub(cost)
		cost = withSeason
	}

	unit := cost.Mul(groupDiscount(passengers, FlightGroupDiscountPerPax))
	total := RoundToNearest(unit.Mul(decimal.NewFromInt(int64(passengers))), FlightRoundTo)

	return types.TransportQuote{
		DistanceKm:    distanceKm,
		TotalCost:     total,
		CostPerPerson: total.Div(decimal.NewFromInt(int64(passengers))).Round(2),
		Currency:      currency,
		IsHighSeason:  highSeason,
		Breakdown: types.FareBreakdown{
			BaseCost:           base.Round(2),
			SeasonalAdjustment: seasonalAdj.Round(2),
			ClassMultiplier:    classMult,
			TotalCost:          total,
		},
	}
}

// PriceBus computes a bus quote. Buses have no long-haul discount.
func PriceBus(distanceKm float64, class types.BusClass, passengers int, highSeason bool, currency types.Currency) types.TransportQuote {
	distance := decimal.NewFromFloat(distanceKm)
	base := distance.Mul(decimal.NewFromFloat(BusRatePerKm))

	classMult := one
	if class == types.BusSleeper {
		classMult = decimal.NewFromFloat(BusSleeperMultiplier)
	}
	cost := base.Mul(classMult)

	if distanceKm < BusShortHaulKm {
		cost = cost.Add(decimal.NewFromFloat(BusMinFareSurcharge))
	}

	seasonalAdj := decimal.Zero
	if highSeason {
		withSeason := cost.Mul(decimal.NewFromFloat(BusHighSeasonMultiplier))
		seasonalAdj = withSeason.Sub(cost)
		cost = withSeason
	}

	unit := cost.Mul(groupDiscount(passengers, BusGroupDiscountPerPax))
	total := RoundToNearest(unit.Mul(decimal.NewFromInt(int64(passengers))), BusRoundTo)

	return types.TransportQuote{
		DistanceKm:    distanceKm,
		TotalCost:     total,
		CostPerPerson: total.Div(decimal.NewFromInt(int64(passengers))).Round(2),
		Currency:      currency,
		IsHighSeason:  highSeason,
		Breakdown: types.FareBreakdown{
			BaseCost:           base.Round(2),
			SeasonalAdjustment: seasonalAdj.Round(2),
			ClassMultiplier:    classMult,
			TotalCost:          total,
		},
	}
}

// PriceCar computes the operating cost of driving: fuel plus tolls
// plus vehicle wear. The cost is shared by the whole group rather than
// multiplied per passenger; above CarComfortPaxThreshold a larger
// vehicle is assumed and a comfort surcharge applies. Seasonality does
// not change what the road costs.
func PriceCar(distanceKm float64, passengers int, highSeason bool, currency types.Currency) types.TransportQuote {
	distance := decimal.NewFromFloat(distanceKm)

	fuelPerKm := decimal.NewFromFloat(CarFuelPricePerLiter).
		Div(decimal.NewFromFloat(CarFuelKmPerLiter))
	perKm := fuelPerKm.
		Add(decimal.NewFromFloat(CarTollPerKm)).
		Add(decimal.NewFromFloat(CarWearPerKm))
	base := distance.Mul(perKm)

	classMult := one
	if passengers > CarComfortPaxThreshold {
		classMult = decimal.NewFromFloat(CarComfortMultiplier)
	}
	cost := base.Mul(classMult)

	total := RoundToNearest(cost, CarRoundTo)

	return types.TransportQuote{
		DistanceKm:    distanceKm,
		TotalCost:     total,
		CostPerPerson: total.Div(decimal.NewFromInt(int64(passengers))).Round(2),
		Currency:      currency,
		IsHighSeason:  highSeason,
		Breakdown: types.FareBreakdown{
			BaseCost:           base.Round(2),
			SeasonalAdjustment: decimal.Zero,
			ClassMultiplier:    classMult,
			TotalCost:          total,
		},
	}
}
