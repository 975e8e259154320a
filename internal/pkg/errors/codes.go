package errors

import "net/http"

var (
	ErrAddressRequired = New(
		"ADDRESS_REQUIRED",
		"Address is required",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Address not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrGeocodeUnavailable = New(
		"GEOCODE_UNAVAILABLE",
		"Geocoding service is unavailable",
		http.StatusBadGateway,
	)

	ErrPOIServiceUnavailable = New(
		"POI_SERVICE_UNAVAILABLE",
		"POI discovery service is unavailable",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrRatingFailed = New(
		"RATING_FAILED",
		"Failed to compute neighborhood rating",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
