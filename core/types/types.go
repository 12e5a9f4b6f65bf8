// Package types - Core travel estimation domain types
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// TransportMode identifies how the traveller gets to the destination
type TransportMode string

const (
	// ModeFlight is commercial air travel
	ModeFlight TransportMode = "flight"

	// ModeBus is intercity bus travel
	ModeBus TransportMode = "bus"

	// ModeCar is private car travel (operating-cost model, not a fare)
	ModeCar TransportMode = "car"
)

// Valid reports whether the mode is a known transport mode
func (m TransportMode) Valid() bool {
	switch m {
	case ModeFlight, ModeBus, ModeCar:
		return true
	}
	return false
}

// FlightClass is the cabin class for flights
type FlightClass string

const (
	FlightEconomy  FlightClass = "economy"
	FlightBusiness FlightClass = "business"
)

// BusClass is the seat class for buses
type BusClass string

const (
	BusConventional BusClass = "conventional"
	BusSleeper      BusClass = "sleeper"
)

// TierLevel identifies a budget recommendation tier
type TierLevel string

const (
	TierEconomy TierLevel = "economy"
	TierMedium  TierLevel = "medium"
	TierComfort TierLevel = "comfort"
)

// PriceSource records whether a value came from a live quote or a heuristic
type PriceSource string

const (
	// SourceAPI means the value is backed by a live external quote
	SourceAPI PriceSource = "api"

	// SourceEstimated means the value was derived heuristically
	SourceEstimated PriceSource = "estimated"
)
