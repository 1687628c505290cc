package enums

import "fmt"

// ShippingRegion describes where an order is delivered relative to the shop.
type ShippingRegion string

const (
	ShippingRegionLocal      ShippingRegion = "local"
	ShippingRegionInterlocal ShippingRegion = "interlocal"
)

var validShippingRegions = []ShippingRegion{
	ShippingRegionLocal,
	ShippingRegionInterlocal,
}

// String implements fmt.Stringer.
func (s ShippingRegion) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingRegion.
func (s ShippingRegion) IsValid() bool {
	for _, candidate := range validShippingRegions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingRegion converts raw input into a ShippingRegion.
func ParseShippingRegion(value string) (ShippingRegion, error) {
	for _, candidate := range validShippingRegions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping region %q", value)
}
