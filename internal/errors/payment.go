package errors

var (
	ErrGatewayUnavailable = &DomainError{
		Code:    "GATEWAY_UNAVAILABLE",
		Message: "payment gateway request failed",
	}
	ErrGatewayResponse = &DomainError{
		Code:    "GATEWAY_BAD_RESPONSE",
		Message: "invalid payment gateway response",
	}
)
