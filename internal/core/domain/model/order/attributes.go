package order

import (
	"fmt"

	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PackageType classifies what is being shipped. It does not affect pricing
// but is surfaced to couriers so they can judge handling requirements.
type PackageType int

const (
	// PackageTypeUnknown represents an invalid or undefined package type.
	PackageTypeUnknown PackageType = iota
	// PackageTypeDocument is an envelope or paperwork shipment.
	PackageTypeDocument
	// PackageTypeFood is a prepared-food shipment.
	PackageTypeFood
	// PackageTypeParcel is a general boxed shipment.
	PackageTypeParcel
	// PackageTypeFragile requires careful handling.
	PackageTypeFragile
	// PackageTypeOther covers everything else.
	PackageTypeOther
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		PackageTypeDocument: "DOCUMENT",
		PackageTypeFood:     "FOOD",
		PackageTypeParcel:   "PARCEL",
		PackageTypeFragile:  "FRAGILE",
		PackageTypeOther:    "OTHER",
	}
}

// ParsePackageType converts the wire representation to a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	for t, str := range getPackageTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return PackageTypeUnknown, errs.NewValueIsInvalidErrorWithCause("packageType",
		fmt.Errorf("%q is not a valid package type", s))
}

// Validate checks if the PackageType is one of the defined values.
func (t PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%d is not a valid package type", t))
	}
	return nil
}

// String returns the wire representation of the package type.
func (t PackageType) String() string {
	if s, ok := getPackageTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// PackageSize scales the raw delivery price by the bulk of the shipment.
type PackageSize int

const (
	// PackageSizeUnknown represents an invalid or undefined package size.
	PackageSizeUnknown PackageSize = iota
	// PackageSizeSmall applies no surcharge (factor 1).
	PackageSizeSmall
	// PackageSizeMedium applies factor 1.2.
	PackageSizeMedium
	// PackageSizeLarge applies factor 1.5.
	PackageSizeLarge
	// PackageSizeExtraLarge applies factor 2.
	PackageSizeExtraLarge
)

func getPackageSizeStrings() map[PackageSize]string {
	return map[PackageSize]string{
		PackageSizeSmall:      "SMALL",
		PackageSizeMedium:     "MEDIUM",
		PackageSizeLarge:      "LARGE",
		PackageSizeExtraLarge: "EXTRA_LARGE",
	}
}

// ParsePackageSize converts the wire representation to a PackageSize.
func ParsePackageSize(s string) (PackageSize, error) {
	for size, str := range getPackageSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return PackageSizeUnknown, errs.NewValueIsInvalidErrorWithCause("packageSize",
		fmt.Errorf("%q is not a valid package size", s))
}

// Validate checks if the PackageSize is one of the defined values.
func (s PackageSize) Validate() error {
	if _, ok := getPackageSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageSize",
			fmt.Errorf("%d is not a valid package size", s))
	}
	return nil
}

// String returns the wire representation of the package size.
func (s PackageSize) String() string {
	if str, ok := getPackageSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Factor returns the price multiplier for the package size.
func (s PackageSize) Factor() decimal.Decimal {
	switch s {
	case PackageSizeMedium:
		return decimal.NewFromFloat(1.2)
	case PackageSizeLarge:
		return decimal.NewFromFloat(1.5)
	case PackageSizeExtraLarge:
		return decimal.NewFromInt(2)
	default:
		return decimal.NewFromInt(1)
	}
}

// DeliveryType distinguishes the service level of an order.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	DeliveryTypeUnknown DeliveryType = iota
	// DeliveryTypeStandard is the default service level.
	DeliveryTypeStandard
	// DeliveryTypeExpress multiplies the price by 1.5 and reduces the
	// estimated travel time by 30%.
	DeliveryTypeExpress
	// DeliveryTypeScheduled is delivered at a requested time slot; priced
	// like standard.
	DeliveryTypeScheduled
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		DeliveryTypeStandard:  "STANDARD",
		DeliveryTypeExpress:   "EXPRESS",
		DeliveryTypeScheduled: "SCHEDULED",
	}
}

// ParseDeliveryType converts the wire representation to a DeliveryType.
func ParseDeliveryType(s string) (DeliveryType, error) {
	for t, str := range getDeliveryTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryType",
		fmt.Errorf("%q is not a valid delivery type", s))
}

// Validate checks if the DeliveryType is one of the defined values.
func (t DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

// String returns the wire representation of the delivery type.
func (t DeliveryType) String() string {
	if s, ok := getDeliveryTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsExpress reports whether the express surcharge and time reduction apply.
func (t DeliveryType) IsExpress() bool {
	return t == DeliveryTypeExpress
}

// Urgency scales the price by how quickly the shipment must move.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota
	// UrgencyNormal applies no surcharge (factor 1).
	UrgencyNormal
	// UrgencyUrgent applies factor 1.3.
	UrgencyUrgent
	// UrgencyVeryUrgent applies factor 1.6.
	UrgencyVeryUrgent
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyNormal:     "NORMAL",
		UrgencyUrgent:     "URGENT",
		UrgencyVeryUrgent: "VERY_URGENT",
	}
}

// ParseUrgency converts the wire representation to an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	for u, str := range getUrgencyStrings() {
		if str == s {
			return u, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency",
		fmt.Errorf("%q is not a valid urgency", s))
}

// Validate checks if the Urgency is one of the defined values.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("urgency",
			fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String returns the wire representation of the urgency.
func (u Urgency) String() string {
	if s, ok := getUrgencyStrings()[u]; ok {
		return s
	}
	return "UNKNOWN"
}

// Factor returns the price multiplier for the urgency.
func (u Urgency) Factor() decimal.Decimal {
	switch u {
	case UrgencyUrgent:
		return decimal.NewFromFloat(1.3)
	case UrgencyVeryUrgent:
		return decimal.NewFromFloat(1.6)
	default:
		return decimal.NewFromInt(1)
	}
}
