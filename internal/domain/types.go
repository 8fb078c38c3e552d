package domain

// Currency tags — charges and payments in distinct currencies are never netted.
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
)

// Trip types supported by the agency.
const (
	TripGrupal     = "grupal"
	TripIndividual = "individual"
	TripCrucero    = "crucero"
	TripAereo      = "aereo"
)

// Payment movement types.
const (
	MovementPayment = "payment"
	MovementCharge  = "charge"
)

// ValidCurrency reports whether c is one of the supported currency tags.
func ValidCurrency(c string) bool {
	return c == CurrencyARS || c == CurrencyUSD
}

// ValidTripType reports whether t is a known trip type.
func ValidTripType(t string) bool {
	switch t {
	case TripGrupal, TripIndividual, TripCrucero, TripAereo:
		return true
	default:
		return false
	}
}
