package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ProviderBusinessError represents a non-zero status code returned by the ETF data provider.
	ProviderBusinessError ErrorCode = "provider_business_error"
	// ProviderTransportError represents a network or decoding failure talking to the ETF data provider.
	ProviderTransportError ErrorCode = "provider_transport_error"

	// SnapshotUpsertError represents a failure writing a single ETF snapshot row.
	SnapshotUpsertError ErrorCode = "snapshot_upsert_error"
	// HistoryUpsertError represents a failure writing a single ETF history row.
	HistoryUpsertError ErrorCode = "history_upsert_error"

	// CacheGetError represents an error when getting a value from the cache.
	CacheGetError ErrorCode = "cache_get_error"
	// CacheSetError represents an error when setting a value in the cache.
	CacheSetError ErrorCode = "cache_set_error"

	// InvalidAssetTypeError represents a request for an unsupported asset class.
	InvalidAssetTypeError ErrorCode = "invalid_asset_type_error"
	// InvalidGranularityError represents a request for an unsupported chart granularity.
	InvalidGranularityError ErrorCode = "invalid_granularity_error"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryDatabase indicates an error related to database operations.
	CategoryDatabase Category = "database"
	// CategoryNetwork indicates an error related to network operations.
	CategoryNetwork Category = "network"
	// CategoryValidation indicates an error related to validation of input data.
	CategoryValidation Category = "validation"
	// CategoryExternal indicates an error related to external services or APIs.
	CategoryExternal Category = "external"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)

// CodedError is an `error` carrying a machine-readable code alongside its message.
type CodedError struct {
	Code     ErrorCode
	Message  string
	Category Category
}

// NewCodedError creates a CodedError with the given code and message.
func NewCodedError(code ErrorCode, message string, category Category) *CodedError {
	return &CodedError{
		Code:     code,
		Message:  message,
		Category: category,
	}
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	coded, ok := err.(*CodedError)
	if !ok {
		return false
	}

	return coded.Code == code
}
