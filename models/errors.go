package models

import "errors"

// Sentinel errors returned by graph stores.
var (
	// ErrEndpointMissing is returned when a relationship cannot be created
	// because its start or end node no longer exists.
	ErrEndpointMissing      = errors.New("relationship endpoint missing")
	ErrNodeNotFound         = errors.New("node not found")
	ErrRelationshipNotFound = errors.New("relationship not found")
)
