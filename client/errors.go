package client

// GenericErrorMessage is shown when the service fails without a usable detail
const GenericErrorMessage = "An error occurred"

// TransportError means the request never completed (DNS, refused connection,
// timeout, cancellation)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError means the service answered with a non-success status
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GenericErrorMessage
}
