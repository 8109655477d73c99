package errors

import (
	"net/http"

	"petwelfare/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error carrying a more specific user message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError with the same error code, so copies made by
// WithDetails and WithMessage still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Request-level errors
	ErrValidationFailed  = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", "")
	ErrInvalidID         = NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid ID format", "")
	ErrDuplicateKey      = NewBaseError(http.StatusConflict, "DUPLICATE_KEY", "Resource already exists", "")
	ErrNotFound          = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	ErrConflict          = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict", "")
	ErrForbidden         = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrInternalError     = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed", "")

	// Authentication errors
	ErrUnauthorized           = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrInvalidToken           = NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token", "")
	ErrTokenExpired           = NewBaseError(http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired", "")
	ErrInvalidCredentials     = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", "")
	ErrAccountDeactivated     = NewBaseError(http.StatusForbidden, "ACCOUNT_DEACTIVATED", "Your account has been deactivated", "")
	ErrPasswordNotSet         = NewBaseError(http.StatusBadRequest, "PASSWORD_NOT_SET", "This account signs in with Google; set a password with the forgot password flow", "")
	ErrPasswordHashFailed     = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed", "")
	ErrPasswordStrength       = NewBaseError(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password is too weak", "")
	ErrPasswordForbiddenWords = NewBaseError(http.StatusBadRequest, "PASSWORD_FORBIDDEN_WORDS", "Password contains a forbidden word or pattern", "")
	ErrPasswordMismatch       = NewBaseError(http.StatusBadRequest, "PASSWORD_MISMATCH", "Passwords do not match", "")
	ErrOAuthTokenInvalid      = NewBaseError(http.StatusUnauthorized, "OAUTH_TOKEN_INVALID", "Invalid Google ID token", "")
	ErrOTPInvalid             = NewBaseError(http.StatusBadRequest, "OTP_INVALID", "Invalid OTP", "")
	ErrOTPExpired             = NewBaseError(http.StatusBadRequest, "OTP_EXPIRED", "OTP has expired", "")

	// User and RBAC errors
	ErrUserNotFound       = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrUserAlreadyExists  = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered", "")
	ErrRoleNotFound       = NewBaseError(http.StatusNotFound, "ROLE_NOT_FOUND", "Role not found", "")
	ErrRoleAlreadyExists  = NewBaseError(http.StatusConflict, "DUPLICATE_KEY", "Role with this name already exists", "")
	ErrSystemRoleReadOnly = NewBaseError(http.StatusBadRequest, "SYSTEM_ROLE_READONLY", "System roles cannot be modified", "")
	ErrRoleInUse          = NewBaseError(http.StatusBadRequest, "ROLE_IN_USE", "Role is assigned to users", "")
	ErrPermissionNotFound = NewBaseError(http.StatusNotFound, "PERMISSION_NOT_FOUND", "Permission not found", "")
	ErrPermissionExists   = NewBaseError(http.StatusConflict, "DUPLICATE_KEY", "Permission with this name already exists", "")
	ErrPermissionInUse    = NewBaseError(http.StatusBadRequest, "PERMISSION_IN_USE", "Permission is used by an active role", "")
	ErrInvalidModule      = NewBaseError(http.StatusBadRequest, "INVALID_MODULE", "Invalid module", "")
	ErrInvalidAction      = NewBaseError(http.StatusBadRequest, "INVALID_ACTION", "Invalid action", "")
	ErrInvalidRole        = NewBaseError(http.StatusBadRequest, "INVALID_ROLE", "Invalid role for this operation", "")

	// Adoption errors
	ErrPetNotFound         = NewBaseError(http.StatusNotFound, "PET_NOT_FOUND", "Pet not found", "")
	ErrPetNotAvailable     = NewBaseError(http.StatusBadRequest, "PET_NOT_AVAILABLE", "Pet is not available for adoption", "")
	ErrApplicationNotFound = NewBaseError(http.StatusNotFound, "APPLICATION_NOT_FOUND", "Application not found", "")
	ErrApplicationExists   = NewBaseError(http.StatusConflict, "APPLICATION_EXISTS", "An active application already exists", "")
	ErrInvalidStatus       = NewBaseError(http.StatusBadRequest, "INVALID_STATUS", "Operation not allowed in the current status", "")

	// Pet registry errors
	ErrOwnedPetNotFound = NewBaseError(http.StatusNotFound, "OWNED_PET_NOT_FOUND", "Pet not found in your registry", "")
	ErrUnknownSpecies   = NewBaseError(http.StatusBadRequest, "UNKNOWN_SPECIES", "Unknown species", "")

	// Pet shop errors
	ErrItemNotFound        = NewBaseError(http.StatusNotFound, "ITEM_NOT_FOUND", "Inventory item not found", "")
	ErrItemNotAvailable    = NewBaseError(http.StatusBadRequest, "ITEM_NOT_AVAILABLE", "Item is not available", "")
	ErrReservationNotFound = NewBaseError(http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found", "")

	// Veterinary errors
	ErrAppointmentNotFound = NewBaseError(http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Appointment not found", "")
	ErrInvalidBookingDate  = NewBaseError(http.StatusBadRequest, "INVALID_BOOKING_DATE", "Booking date is outside the allowed window", "")
	ErrSlotTaken           = NewBaseError(http.StatusConflict, "SLOT_TAKEN", "Time slot is already booked", "")

	// Pharmacy errors
	ErrMedicineNotFound      = NewBaseError(http.StatusNotFound, "MEDICINE_NOT_FOUND", "Medicine not found", "")
	ErrPrescriptionNotFound  = NewBaseError(http.StatusNotFound, "PRESCRIPTION_NOT_FOUND", "Prescription not found", "")
	ErrPrescriptionRequired  = NewBaseError(http.StatusBadRequest, "PRESCRIPTION_REQUIRED", "An approved prescription is required", "")
	ErrInsufficientStock     = NewBaseError(http.StatusBadRequest, "INSUFFICIENT_STOCK", "Insufficient stock", "")
	ErrPharmacyOrderNotFound = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", "")

	// Rescue and shelter errors
	ErrRescueNotFound  = NewBaseError(http.StatusNotFound, "RESCUE_NOT_FOUND", "Rescue report not found", "")
	ErrAnimalNotFound  = NewBaseError(http.StatusNotFound, "ANIMAL_NOT_FOUND", "Shelter animal not found", "")
	ErrKennelOccupied  = NewBaseError(http.StatusConflict, "KENNEL_OCCUPIED", "Kennel is occupied", "")
	ErrAlreadyAdoption = NewBaseError(http.StatusConflict, "ALREADY_LISTED", "Animal is already listed for adoption", "")

	// Temporary care errors
	ErrBookingNotFound  = NewBaseError(http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found", "")
	ErrServiceNotFound  = NewBaseError(http.StatusNotFound, "SERVICE_NOT_FOUND", "Care service not found", "")
	ErrBookingConflict  = NewBaseError(http.StatusConflict, "BOOKING_CONFLICT", "Pet already has a booking for these dates", "")
	ErrCancelWindow     = NewBaseError(http.StatusBadRequest, "CANCEL_WINDOW_PASSED", "Bookings can only be cancelled more than 24 hours before start", "")
	ErrInvalidDateRange = NewBaseError(http.StatusBadRequest, "INVALID_DATE_RANGE", "End date must be after start date", "")

	// E-commerce errors
	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrCartEmpty       = NewBaseError(http.StatusBadRequest, "CART_EMPTY", "Cart is empty", "")
	ErrCartItemMissing = NewBaseError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Item not in cart", "")
	ErrOrderNotFound   = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", "")
	ErrReviewExists    = NewBaseError(http.StatusConflict, "REVIEW_EXISTS", "You have already reviewed this product", "")
	ErrProductReserved = NewBaseError(http.StatusConflict, "PRODUCT_HAS_OPEN_ORDERS", "Product has stock reserved by open orders", "")

	// Upload errors
	ErrFileTooLarge        = NewBaseError(http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File is too large", "")
	ErrUnsupportedFileType = NewBaseError(http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "Unsupported file type", "")

	// Device errors
	ErrDeviceNotFound = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
