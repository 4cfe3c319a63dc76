package dids

import (
	"fmt"
	"regexp"
	"strings"
)

// ParsedDid represents a parsed DID according to the DID specification
type ParsedDid struct {
	Did      string `json:"did"`
	Method   string `json:"method"`
	Id       string `json:"id"`
	Path     string `json:"path,omitempty"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`
}

// DID regular expression based on the DID specification
// did = "did:" method-name ":" method-specific-id
// method-specific-id can contain one or more colon-separated idstrings.
// This regex allows any characters except '/', '?', '#' in the method-specific-id part,
// which includes ':' for sub-segments (e.g., did:peer:4hash:document).
var didRegex = regexp.MustCompile(`^did:([a-z0-9]+):([^/?#]+)(?:/([^?#]*))?(?:\?([^#]*))?(?:#(.*))?$`)

// ParseDid parses a DID string and returns a ParsedDid or an error
func ParseDid(did string) (*ParsedDid, error) {
	parsed := TryParseDid(did)
	if parsed == nil {
		return nil, fmt.Errorf("error parsing DID '%s': invalid format", did)
	}
	return parsed, nil
}

// TryParseDid attempts to parse a DID string and returns a ParsedDid or nil if parsing fails
func TryParseDid(did string) *ParsedDid {
	if did == "" {
		return nil
	}

	did = strings.TrimSpace(did)

	matches := didRegex.FindStringSubmatch(did)
	if matches == nil || len(matches) < 3 {
		return nil
	}

	parsed := &ParsedDid{
		Did:    did,
		Method: matches[1],
		Id:     matches[2],
	}

	if len(matches) > 3 && matches[3] != "" {
		parsed.Path = matches[3]
	}
	if len(matches) > 4 && matches[4] != "" {
		parsed.Query = matches[4]
	}
	if len(matches) > 5 && matches[5] != "" {
		parsed.Fragment = matches[5]
	}

	return parsed
}

// IsValidDid checks if a string is a valid DID
func IsValidDid(did string) bool {
	return TryParseDid(did) != nil
}

// Common DID method constants
const (
	MethodKey  = "key"
	MethodPeer = "peer"
)

// DidMethodClass is the closed set of identifier variants the store
// dispatches on. All method branching goes through ClassifyDid; string
// prefix checks stay out of call sites.
type DidMethodClass int

const (
	// ClassUnknown covers identifiers no registered resolver handles
	ClassUnknown DidMethodClass = iota
	// ClassKey is a did:key raw-key identifier
	ClassKey
	// ClassPeer2 is a did:peer numalgo 2 identifier
	ClassPeer2
	// ClassPeer4 is a did:peer numalgo 4 identifier (short or long form)
	ClassPeer4
)

func (c DidMethodClass) String() string {
	switch c {
	case ClassKey:
		return "key"
	case ClassPeer2:
		return "peer:2"
	case ClassPeer4:
		return "peer:4"
	default:
		return "unknown"
	}
}

// ClassifyDid maps a DID string onto its method class
func ClassifyDid(did string) DidMethodClass {
	parsed := TryParseDid(did)
	if parsed == nil {
		return ClassUnknown
	}

	switch parsed.Method {
	case MethodKey:
		return ClassKey
	case MethodPeer:
		if len(parsed.Id) == 0 {
			return ClassUnknown
		}
		switch parsed.Id[0] {
		case '2':
			return ClassPeer2
		case '4':
			return ClassPeer4
		}
	}
	return ClassUnknown
}
