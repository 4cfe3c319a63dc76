package routing

import "fmt"

// UnresolvableRecipientError means no document could be produced for the
// recipient DID. The caller may retry after acquiring the document through a
// side channel; the engine itself never will.
type UnresolvableRecipientError struct {
	Did string
}

func (e *UnresolvableRecipientError) Error() string {
	return fmt.Sprintf("unable to resolve recipient did: %s", e.Did)
}

// UnresolvableMediatorError means the recipient's service endpoint pointed
// at a DID that did not resolve to a usable mediator document.
type UnresolvableMediatorError struct {
	Did string
}

func (e *UnresolvableMediatorError) Error() string {
	return fmt.Sprintf("unable to resolve mediator did: %s", e.Did)
}

// NoServiceEndpointError means the document resolved but carries no
// DIDCommMessaging service to deliver to.
type NoServiceEndpointError struct {
	Did string
}

func (e *NoServiceEndpointError) Error() string {
	return fmt.Sprintf("no DIDCommMessaging service on did: %s", e.Did)
}

// TransportError is a non-2xx HTTP response without a problem report.
// Retrying is the caller's responsibility.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("delivery failed with status %d", e.Status)
}

// ProblemReportError is an explicit rejection by the counterparty, surfaced
// verbatim for diagnosis and never retried automatically.
type ProblemReportError struct {
	Code    string
	Comment string
}

func (e *ProblemReportError) Error() string {
	return fmt.Sprintf("problem report %s: %s", e.Code, e.Comment)
}
