package stock

import (
	"math"
	"strings"

	"stock-ledger/internal/pkg/errs"
)

// DefaultLocation is used when a caller does not model warehouses.
const DefaultLocation = "default"

// MaxQuantity bounds every stored quantity.
const MaxQuantity = math.MaxInt32

const maxIDLength = 128

// Key identifies one stock record: a product at a location.
type Key struct {
	ProductID  string
	LocationID string
}

func NewKey(productID, locationID string) (Key, error) {
	productID = strings.TrimSpace(productID)
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		locationID = DefaultLocation
	}
	if productID == "" {
		return Key{}, errs.Wrap(errs.ErrValidation, "product id is required")
	}
	if len(productID) > maxIDLength || len(locationID) > maxIDLength {
		return Key{}, errs.Wrapf(errs.ErrValidation, "ids must be at most %d characters", maxIDLength)
	}
	return Key{ProductID: productID, LocationID: locationID}, nil
}

func (k Key) String() string {
	return k.ProductID + "@" + k.LocationID
}
