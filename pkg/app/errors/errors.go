// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request
	CategoryDataError
	// CategoryUnauthorized The client is not authorized to access the requested resource
	CategoryUnauthorized
	// CategoryForbidden The client, or the wallet acting for it, refused the operation
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryPaymentRequired The payer cannot cover the requested amount
	CategoryPaymentRequired
	// CategoryDataConflict The request conflicts with the current state of the resource
	CategoryDataConflict
	// CategoryPreconditionFailed A precondition such as the active network does not hold
	CategoryPreconditionFailed
	// CategoryLocked The resource is busy with another operation
	CategoryLocked
	// CategoryDependencyFailure A dependent service (ledger, wallet) is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryPaymentRequired:
		return "CategoryPaymentRequired"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryPreconditionFailed:
		return "CategoryPreconditionFailed"
	case CategoryLocked:
		return "CategoryLocked"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	// Message is returned to the user, Err is only logged.
	Message string
	// Kind is the machine readable failure class, Action an optional corrective action.
	Kind   string
	Action string
	Err    error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// New returns a service error of the given category
func New(cat Category, err error, message string) error {
	if err == nil {
		err = errors.New(message)
	}
	return &ServiceError{
		Category: cat,
		Message:  message,
		Err:      err,
	}
}

// GeneralError returns a general service error
// this error message sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return New(CategoryResourceNotFound, err, message)
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return New(CategoryDataError, err, message)
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	return New(CategoryUnauthorized, err, message)
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryPaymentRequired:
		return http.StatusPaymentRequired
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryPreconditionFailed:
		return http.StatusPreconditionFailed
	case CategoryLocked:
		return http.StatusLocked
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
