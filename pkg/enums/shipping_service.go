package enums

import "fmt"

// ShippingService is the courier tier used for interlocal deliveries.
type ShippingService string

const (
	ShippingServiceRegular ShippingService = "regular"
	ShippingServiceFast    ShippingService = "fast"
	ShippingServiceCargo   ShippingService = "cargo"
)

var validShippingServices = []ShippingService{
	ShippingServiceRegular,
	ShippingServiceFast,
	ShippingServiceCargo,
}

// String implements fmt.Stringer.
func (s ShippingService) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingService.
func (s ShippingService) IsValid() bool {
	for _, candidate := range validShippingServices {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingService converts raw input into a ShippingService.
func ParseShippingService(value string) (ShippingService, error) {
	for _, candidate := range validShippingServices {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping service %q", value)
}
