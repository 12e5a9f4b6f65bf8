// Package fare - Pricing rate constants
// These are heuristic business constants tuned for BRL-denominated
// quotes. They are preserved as documented values; regression tests
// depend on them bit-for-bit.
package fare

// Flight pricing
const (
	// FlightRatePerKm is the base flight rate per kilometre
	FlightRatePerKm = 1.10

	// FlightBusinessMultiplier scales business class over economy
	FlightBusinessMultiplier = 2.5

	// FlightShortHaulKm is the distance below which the minimum-fare
	// surcharge applies
	FlightShortHaulKm = 500.0

	// FlightMinFareSurcharge is the flat surcharge for short flights
	FlightMinFareSurcharge = 150.0

	// FlightLongHaulKm is the distance above which the long-distance
	// discount applies
	FlightLongHaulKm = 2000.0

	// FlightLongHaulDiscount is the multiplier applied above FlightLongHaulKm
	FlightLongHaulDiscount = 0.85

	// FlightHighSeasonMultiplier is the high-season surcharge for flights
	FlightHighSeasonMultiplier = 1.6

	// FlightGroupDiscountPerPax is the per-extra-passenger discount
	FlightGroupDiscountPerPax = 0.05

	// FlightRoundTo is the rounding denomination for flight quotes
	FlightRoundTo = 50
)

// Bus pricing
const (
	// BusRatePerKm is the base bus rate per kilometre
	BusRatePerKm = 0.42

	// BusSleeperMultiplier scales sleeper class over conventional
	BusSleeperMultiplier = 1.8

	// BusShortHaulKm is the distance below which the minimum-fare
	// surcharge applies
	BusShortHaulKm = 300.0

	// BusMinFareSurcharge is the flat surcharge for short bus trips
	BusMinFareSurcharge = 35.0

	// BusHighSeasonMultiplier is the high-season surcharge for buses
	BusHighSeasonMultiplier = 1.3

	// BusGroupDiscountPerPax is the per-extra-passenger discount
	BusGroupDiscountPerPax = 0.03

	// BusRoundTo is the rounding denomination for bus quotes
	BusRoundTo = 10
)

// GroupDiscountMaxExtra caps how many extra passengers earn the
// diminishing volume discount
const GroupDiscountMaxExtra = 3

// Car operating-cost model. Car cost is not a fare lookup: it is fuel
// plus tolls plus vehicle wear, shared by the whole group.
const (
	// CarFuelKmPerLiter is the assumed fuel consumption
	CarFuelKmPerLiter = 12.0

	// CarFuelPricePerLiter is the assumed fuel price
	CarFuelPricePerLiter = 5.90

	// CarTollPerKm is the estimated toll cost per kilometre
	CarTollPerKm = 0.18

	// CarWearPerKm is the estimated vehicle wear per kilometre
	CarWearPerKm = 0.12

	// CarComfortPaxThreshold is the passenger count above which the
	// comfort surcharge applies (larger vehicle assumed)
	CarComfortPaxThreshold = 3

	// CarComfortMultiplier is the comfort surcharge multiplier
	CarComfortMultiplier = 1.15

	// CarRoundTo is the rounding denomination for car quotes
	CarRoundTo = 50
)
