package fdo

import (
	"github.com/goccy/go-json"
)

const (
	schemaOrg     = "https://schema.org/"
	fdoContextV1  = "https://w3id.org/fdo/context/v1"
	provNamespace = "http://www.w3.org/ns/prov#"
	fdoVocabulary = "https://w3id.org/fdo/vocabulary/"

	KernelVersion = "v1"

	// the only value of Envelope.Type
	DigitalObject = "DigitalObject"

	EntityMediaType = "application/vnd.mardi.entity+json"
)

// Envelope is a FAIR Digital Object rendered as JSON-LD.
//
// Every field is always serialized; fields are never omitted.
type Envelope struct {
	Context    Context    `json:"@context"`
	ID         string     `json:"@id"`
	Type       string     `json:"@type"`
	Identifier string     `json:"identifier"`
	Kernel     Kernel     `json:"kernel"`
	Profile    Profile    `json:"profile"`
	Access     Access     `json:"access"`
	Provenance Provenance `json:"provenance"`
}

// Context is a JSON-LD context: the FDO base context followed by prefix definitions.
type Context struct {
	Base  string
	Terms ContextTerms
}

func (c Context) MarshalJSON() ([]byte, error) {
	return json.MarshalNoEscape([]any{c.Base, c.Terms})
}

type ContextTerms struct {
	Schema    string `json:"schema"`
	Prov      string `json:"prov"`
	FDO       string `json:"fdo"`
	Mardi     string `json:"mardi"`
	Kernel    string `json:"kernel"`
	Access    string `json:"access"`
	AccessURL string `json:"accessURL"`
	MediaType string `json:"mediaType"`
}

func newContext(entityRoot string) Context {
	return Context{
		Base: fdoContextV1,
		Terms: ContextTerms{
			Schema:    schemaOrg,
			Prov:      provNamespace,
			FDO:       fdoVocabulary,
			Mardi:     entityRoot,
			Kernel:    "fdo:kernel",
			Access:    "fdo:access",
			AccessURL: "fdo:accessURL",
			MediaType: "fdo:mediaType",
		},
	}
}

// Kernel is the kernel information record of the digital object.
type Kernel struct {
	ID                string      `json:"@id"`
	DigitalObjectType string      `json:"digitalObjectType"`
	PrimaryIdentifier string      `json:"primaryIdentifier"`
	KernelVersion     string      `json:"kernelVersion"`
	Immutable         bool        `json:"immutable"`
	Modified          string      `json:"modified"`
	Components        []Component `json:"fdo:hasComponent"`
}

// Component is a bit-sequence belonging to the digital object, like a fulltext PDF.
type Component struct {
	ID          string `json:"@id"`
	ComponentID string `json:"componentId"`
	MediaType   string `json:"mediaType"`
	AccessURL   string `json:"accessURL"`
}

func newComponent(id, mediaType, accessURL string) Component {
	return Component{
		ID:          "#" + id,
		ComponentID: id,
		MediaType:   mediaType,
		AccessURL:   accessURL,
	}
}

type Access struct {
	AccessURL string `json:"accessURL"`
	MediaType string `json:"mediaType"`
}

type Provenance struct {
	GeneratedAtTime string `json:"prov:generatedAtTime"`
	WasAttributedTo string `json:"prov:wasAttributedTo"`
}

// Marshal serializes the envelope.
//
// The output depends only on env: keys are in declaration order and
// lists keep the order of source statements.
func Marshal(env Envelope) ([]byte, error) {
	return json.MarshalNoEscape(env)
}
