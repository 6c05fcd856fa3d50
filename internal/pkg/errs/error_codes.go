/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both inside the server
and in the response envelope sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed or has unknown fields.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: User and Profile Errors
const (
	// ErrUserNotFound indicates that no user exists for the requested identifier.
	ErrUserNotFound = 2001

	// ErrUserAlreadyExists indicates a uniqueness conflict that could not be attributed to one field.
	ErrUserAlreadyExists = 2002

	// ErrEmailTaken indicates that the email address is already registered.
	ErrEmailTaken = 2003

	// ErrPhoneTaken indicates that the phone number is already registered.
	ErrPhoneTaken = 2004

	// ErrFileTypeNotAllowed indicates that an avatar upload was requested for an unsupported file type.
	ErrFileTypeNotAllowed = 2101

	// ErrFileSizeTooLarge indicates that an avatar upload exceeds the size limit.
	ErrFileSizeTooLarge = 2102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStoreUnavailable indicates that a backing store could not be reached in time.
	ErrStoreUnavailable = 5001

	// ErrProfileNotSaved indicates that the account was created but its profile attribute was not.
	ErrProfileNotSaved = 5002

	// ErrFileStorageFailed indicates that the object storage rejected a presign request.
	ErrFileStorageFailed = 5003
)
