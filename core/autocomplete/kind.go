package autocomplete

import (
	"fmt"
	"strings"
)

const (
	KindRelational    Kind = "relational"
	KindDocument      Kind = "document"
	KindFulltextIndex Kind = "fulltext-index"
)

// AllKinds holds every backend kind a collection can be classified into
var AllKinds = []Kind{
	KindRelational,
	KindDocument,
	KindFulltextIndex,
}

// Kind specifies the family of store a collection lives in
type Kind string

// String cast Kind to string
func (k Kind) String() string {
	return string(k)
}

// IsValid will validate whether the kind is one of the supported kinds
func (k Kind) IsValid() bool {
	switch k {
	case KindRelational, KindDocument, KindFulltextIndex:
		return true
	}
	return false
}

const (
	TraitFulltextIndex = "fulltext_index"
	TraitRelational    = "relational"
	TraitDocument      = "document"
)

// Traits are the capability markers a collection declares when it is
// registered. A collection may declare more than one of them.
type Traits struct {
	FulltextIndex bool
	Relational    bool
	Document      bool
}

// ParseTraits builds Traits from their configuration names.
func ParseTraits(names []string) (Traits, error) {
	var t Traits
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case TraitFulltextIndex:
			t.FulltextIndex = true
		case TraitRelational:
			t.Relational = true
		case TraitDocument:
			t.Document = true
		default:
			return Traits{}, fmt.Errorf("unknown trait %q", name)
		}
	}
	return t, nil
}

type Classifier interface {
	Classify(Collection) (Kind, error)
}

// TraitClassifier classifies a collection from its declared traits.
// The checks are ordered and the first match wins: a collection that is
// both relational and full-text indexed is searched through its index.
type TraitClassifier struct{}

func (TraitClassifier) Classify(c Collection) (Kind, error) {
	switch {
	case c.Traits.FulltextIndex:
		return KindFulltextIndex, nil
	case c.Traits.Relational:
		return KindRelational, nil
	case c.Traits.Document:
		return KindDocument, nil
	}
	return "", UnsupportedBackendError{Collection: c.Name, Reason: "no recognised trait"}
}

// ClassifyPool classifies the first collection of a pool and requires the
// rest of the pool to share its kind.
func ClassifyPool(classifier Classifier, collections []Collection) (Kind, error) {
	if len(collections) == 0 {
		return "", ErrEmptyTarget
	}

	kind, err := classifier.Classify(collections[0])
	if err != nil {
		return "", err
	}

	for _, c := range collections[1:] {
		k, err := classifier.Classify(c)
		if err != nil {
			return "", err
		}
		if k != kind {
			return "", UnsupportedBackendError{
				Collection: c.Name,
				Kind:       k,
				Reason:     fmt.Sprintf("pool mixes %s and %s collections", kind, k),
			}
		}
	}
	return kind, nil
}
