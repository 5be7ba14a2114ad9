package fdo

import (
	"errors"
	"fmt"
)

// Kind is a schema.org class which an entity is rendered as.
type Kind string

const (
	KindThing              Kind = "Thing"
	KindPerson             Kind = "Person"
	KindScholarlyArticle   Kind = "ScholarlyArticle"
	KindDataset            Kind = "Dataset"
	KindSoftwareSourceCode Kind = "SoftwareSourceCode"
)

var ErrUnknownKind = errors.New("unknown kind")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindThing, KindPerson, KindScholarlyArticle, KindDataset, KindSoftwareSourceCode:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IRI returns schema.org IRI of the kind.
func (k Kind) IRI() string {
	return schemaOrg + string(k)
}

// DefaultTypes maps classes (objects of "instance of" statements) to kinds.
func DefaultTypes() map[string]Kind {
	return map[string]Kind{
		"Q56887": KindScholarlyArticle,
		"Q57162": KindPerson,
	}
}
