package dids

import (
	"sync"
)

// MethodResolver resolves a DID of one method class to a contextualized
// document. A (nil, nil) return means cleanly unresolvable: the identifier
// is well formed but this resolver cannot produce a document for it.
type MethodResolver interface {
	ResolveDid(did string) (*DidDocument, error)
}

// DidStore is the in-memory identity cache: DID string (and every alias in
// alsoKnownAs) to resolved document. Entries are populated lazily on first
// resolution and eagerly for the local identity at startup; nothing is ever
// evicted for the lifetime of the process.
type DidStore struct {
	mutex     sync.RWMutex
	documents map[string]*DidDocument
	resolvers map[DidMethodClass]MethodResolver
}

// NewDidStore creates an empty store with no method resolvers registered
func NewDidStore() *DidStore {
	return &DidStore{
		documents: make(map[string]*DidDocument),
		resolvers: make(map[DidMethodClass]MethodResolver),
	}
}

// RegisterResolver registers the resolver for one method class
func (s *DidStore) RegisterResolver(class DidMethodClass, resolver MethodResolver) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.resolvers[class] = resolver
}

// AddDocument inserts or overwrites the entry for did and, when the document
// lists aliases, for every alias too.
func (s *DidStore) AddDocument(did string, doc *DidDocument) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.insertLocked(did, doc)
}

func (s *DidStore) insertLocked(did string, doc *DidDocument) {
	s.documents[did] = doc
	for _, alias := range doc.AlsoKnownAs {
		s.documents[alias] = doc
	}
}

// Resolve returns the document for did, consulting the cache first and
// falling back to the registered method resolver. A (nil, nil) return means
// the identifier is unresolvable here: an uncached short-form peer DID, or a
// method without a registered resolver. The cache is only written after a
// successful resolution; a failing decode leaves it untouched.
func (s *DidStore) Resolve(did string) (*DidDocument, error) {
	s.mutex.RLock()
	cached, ok := s.documents[did]
	s.mutex.RUnlock()
	if ok {
		return cached, nil
	}

	s.mutex.RLock()
	resolver := s.resolvers[ClassifyDid(did)]
	s.mutex.RUnlock()
	if resolver == nil {
		return nil, nil
	}

	doc, err := resolver.ResolveDid(did)
	if err != nil || doc == nil {
		return nil, err
	}

	// Concurrent resolutions of the same identifier may race to this
	// insert; decoding is deterministic, so last writer wins with
	// content-identical state.
	s.mutex.Lock()
	s.insertLocked(did, doc)
	if doc.Id != "" && doc.Id != did {
		s.documents[doc.Id] = doc
	}
	s.mutex.Unlock()

	return doc, nil
}
