package unicolour

import (
	"errors"
)

var (
	ErrUnsupportedSpace      = errors.New("unsupported colour space")
	ErrConfigurationMismatch = errors.New("colours have different configurations")
	ErrInvalidHex            = errors.New("invalid hex colour")
	ErrUnknownColourName     = errors.New("unknown colour name")
	ErrUnknownMetric         = errors.New("unknown difference metric")
	ErrUnknownDeficiency     = errors.New("unknown colour vision deficiency")
	ErrInvalidConfiguration  = errors.New("invalid configuration")
)
