package dids

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DidDocument represents a DID Document according to the DID specification.
// A document used as encoding input carries no Id; the identifier is derived
// from the document and injected during contextualization.
type DidDocument struct {
	Context              []string                  `json:"@context,omitempty"`
	Id                   string                    `json:"id,omitempty"`
	AlsoKnownAs          []string                  `json:"alsoKnownAs,omitempty"`
	Controller           []string                  `json:"controller,omitempty"`
	VerificationMethod   []*VerificationMethod     `json:"verificationMethod,omitempty"`
	Authentication       VerificationMethodRefList `json:"authentication,omitempty"`
	AssertionMethod      VerificationMethodRefList `json:"assertionMethod,omitempty"`
	KeyAgreement         VerificationMethodRefList `json:"keyAgreement,omitempty"`
	CapabilityInvocation VerificationMethodRefList `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation VerificationMethodRefList `json:"capabilityDelegation,omitempty"`
	Service              []*Service                `json:"service,omitempty"`
}

// VerificationMethod represents a verification method in a DID Document
type VerificationMethod struct {
	Id                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller,omitempty"`
	PublicKeyMultibase string `json:"publicKeyMultibase,omitempty"`
}

// VerificationMethodRef represents a reference to a verification method.
// It can be either a string (reference) or an embedded VerificationMethod.
type VerificationMethodRef interface {
	GetId() string
	IsEmbedded() bool
	GetVerificationMethod() *VerificationMethod
}

// VerificationMethodRefString represents a string reference to a verification method
type VerificationMethodRefString struct {
	Ref string
}

func (r *VerificationMethodRefString) GetId() string { return r.Ref }

func (r *VerificationMethodRefString) IsEmbedded() bool { return false }

func (r *VerificationMethodRefString) GetVerificationMethod() *VerificationMethod { return nil }

// MarshalJSON implements json.Marshaler for VerificationMethodRefString
func (r *VerificationMethodRefString) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Ref)
}

// VerificationMethodRefEmbedded represents an embedded verification method
type VerificationMethodRefEmbedded struct {
	Method *VerificationMethod
}

func (r *VerificationMethodRefEmbedded) GetId() string {
	if r.Method != nil {
		return r.Method.Id
	}
	return ""
}

func (r *VerificationMethodRefEmbedded) IsEmbedded() bool { return true }

func (r *VerificationMethodRefEmbedded) GetVerificationMethod() *VerificationMethod {
	return r.Method
}

// MarshalJSON implements json.Marshaler for VerificationMethodRefEmbedded
func (r *VerificationMethodRefEmbedded) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Method)
}

// VerificationMethodRefList is a JSON array of string or embedded references
type VerificationMethodRefList []VerificationMethodRef

// UnmarshalJSON handles the string-or-object duality of reference entries
func (l *VerificationMethodRefList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	refs := make(VerificationMethodRefList, 0, len(raw))
	for _, entry := range raw {
		ref, err := UnmarshalVerificationMethodRef(entry)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}
	*l = refs
	return nil
}

// UnmarshalVerificationMethodRef parses a single string or embedded reference
func UnmarshalVerificationMethodRef(data []byte) (VerificationMethodRef, error) {
	var refString string
	if err := json.Unmarshal(data, &refString); err == nil {
		return &VerificationMethodRefString{Ref: refString}, nil
	}

	var method VerificationMethod
	if err := json.Unmarshal(data, &method); err == nil {
		return &VerificationMethodRefEmbedded{Method: &method}, nil
	}

	return nil, fmt.Errorf("unable to unmarshal verification method reference")
}

// ServiceEndpoint is the DIDComm v2 service endpoint object. Uri is either an
// HTTP(S) URL or another DID, the latter signaling an intermediary relay.
type ServiceEndpoint struct {
	Uri         string   `json:"uri"`
	Accept      []string `json:"accept,omitempty"`
	RoutingKeys []string `json:"routingKeys,omitempty"`
}

// UnmarshalJSON accepts both the endpoint object and a bare URI string
func (se *ServiceEndpoint) UnmarshalJSON(data []byte) error {
	var uri string
	if err := json.Unmarshal(data, &uri); err == nil {
		se.Uri = uri
		se.Accept = nil
		se.RoutingKeys = nil
		return nil
	}

	type endpointAlias ServiceEndpoint
	var alias endpointAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*se = ServiceEndpoint(alias)
	return nil
}

// Service represents a service in a DID Document
type Service struct {
	Id              string           `json:"id"`
	Type            string           `json:"type"`
	ServiceEndpoint *ServiceEndpoint `json:"serviceEndpoint"`
}

// Common verification method types
const (
	VerificationMethodTypeMultikey                   = "Multikey"
	VerificationMethodTypeEd25519VerificationKey2020 = "Ed25519VerificationKey2020"
	VerificationMethodTypeX25519KeyAgreementKey2020  = "X25519KeyAgreementKey2020"
)

// Common service types
const (
	ServiceTypeDIDCommMessaging = "DIDCommMessaging"
)

// AddVerificationMethod adds a verification method to the DID Document
func (doc *DidDocument) AddVerificationMethod(method *VerificationMethod) {
	doc.VerificationMethod = append(doc.VerificationMethod, method)
}

// AddService adds a service to the DID Document
func (doc *DidDocument) AddService(service *Service) {
	doc.Service = append(doc.Service, service)
}

// AddAuthentication adds an authentication relationship
func (doc *DidDocument) AddAuthentication(ref VerificationMethodRef) {
	doc.Authentication = append(doc.Authentication, ref)
}

// AddKeyAgreement adds a key agreement relationship
func (doc *DidDocument) AddKeyAgreement(ref VerificationMethodRef) {
	doc.KeyAgreement = append(doc.KeyAgreement, ref)
}

// FindVerificationMethodById finds a verification method by its ID
func (doc *DidDocument) FindVerificationMethodById(id string) *VerificationMethod {
	for _, method := range doc.VerificationMethod {
		if method.Id == id || strings.HasSuffix(method.Id, "#"+id) {
			return method
		}
	}
	return nil
}

// DereferenceVerificationMethod finds a verification method by key ID.
// This handles both full IDs and fragment-only references.
func (doc *DidDocument) DereferenceVerificationMethod(keyId string) (*VerificationMethod, error) {
	for _, method := range doc.VerificationMethod {
		if method.Id == keyId {
			return method, nil
		}
	}
	for _, method := range doc.VerificationMethod {
		if strings.HasSuffix(method.Id, keyId) {
			return method, nil
		}
	}
	return nil, fmt.Errorf("unable to locate verification method with id '%s'", keyId)
}

// FindDIDCommService returns the first DIDCommMessaging service, or nil
func (doc *DidDocument) FindDIDCommService() *Service {
	for _, service := range doc.Service {
		if service != nil && service.Type == ServiceTypeDIDCommMessaging {
			return service
		}
	}
	return nil
}

// Clone creates a deep copy of the DID Document
func (doc *DidDocument) Clone() *DidDocument {
	clone := &DidDocument{Id: doc.Id}

	if doc.Context != nil {
		clone.Context = append([]string{}, doc.Context...)
	}
	if doc.AlsoKnownAs != nil {
		clone.AlsoKnownAs = append([]string{}, doc.AlsoKnownAs...)
	}
	if doc.Controller != nil {
		clone.Controller = append([]string{}, doc.Controller...)
	}

	if doc.VerificationMethod != nil {
		clone.VerificationMethod = make([]*VerificationMethod, len(doc.VerificationMethod))
		for i, vm := range doc.VerificationMethod {
			cloned := *vm
			clone.VerificationMethod[i] = &cloned
		}
	}

	clone.Authentication = cloneVerificationMethodRefs(doc.Authentication)
	clone.AssertionMethod = cloneVerificationMethodRefs(doc.AssertionMethod)
	clone.KeyAgreement = cloneVerificationMethodRefs(doc.KeyAgreement)
	clone.CapabilityInvocation = cloneVerificationMethodRefs(doc.CapabilityInvocation)
	clone.CapabilityDelegation = cloneVerificationMethodRefs(doc.CapabilityDelegation)

	if doc.Service != nil {
		clone.Service = make([]*Service, len(doc.Service))
		for i, svc := range doc.Service {
			clonedSvc := &Service{Id: svc.Id, Type: svc.Type}
			if svc.ServiceEndpoint != nil {
				ep := &ServiceEndpoint{Uri: svc.ServiceEndpoint.Uri}
				if svc.ServiceEndpoint.Accept != nil {
					ep.Accept = append([]string{}, svc.ServiceEndpoint.Accept...)
				}
				if svc.ServiceEndpoint.RoutingKeys != nil {
					ep.RoutingKeys = append([]string{}, svc.ServiceEndpoint.RoutingKeys...)
				}
				clonedSvc.ServiceEndpoint = ep
			}
			clone.Service[i] = clonedSvc
		}
	}

	return clone
}

// cloneVerificationMethodRefs clones a slice of verification method references
func cloneVerificationMethodRefs(refs VerificationMethodRefList) VerificationMethodRefList {
	if refs == nil {
		return nil
	}

	cloned := make(VerificationMethodRefList, len(refs))
	for i, ref := range refs {
		if ref.IsEmbedded() {
			if original := ref.GetVerificationMethod(); original != nil {
				method := *original
				cloned[i] = &VerificationMethodRefEmbedded{Method: &method}
			}
		} else {
			cloned[i] = &VerificationMethodRefString{Ref: ref.GetId()}
		}
	}

	return cloned
}
