package providers

import "errors"

var (
	// ErrNoAddress is returned if a node carries an empty server
	// address so there is nothing to geolocate.
	ErrNoAddress = errors.New("address is empty")
)
