package fdo

// Profile is a schema.org description of the entity.
//
// Each implementation has a fixed set of keys; absent values are "" or [].
type Profile interface {
	Kind() Kind
}

// ProfileBase holds keys common to all profiles.
type ProfileBase struct {
	Context     string `json:"@context"`
	Type        Kind   `json:"@type"`
	ID          string `json:"@id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (p ProfileBase) Kind() Kind {
	return p.Type
}

// Ref is a reference to another entity.
type Ref struct {
	ID string `json:"@id"`
}

type PropertyValue struct {
	Type       string `json:"@type"`
	PropertyID string `json:"propertyID"`
	Value      string `json:"value"`
	URL        string `json:"url"`
}

func newPropertyValue(propertyID, value, url string) PropertyValue {
	return PropertyValue{Type: "PropertyValue", PropertyID: propertyID, Value: value, URL: url}
}

type MediaObject struct {
	Type           string `json:"@type"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat"`
}

type DataDownload struct {
	Type           string `json:"@type"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat"`
}

// ThingProfile is used for entities of unknown or unmapped classes.
type ThingProfile struct {
	ProfileBase

	// IRI of the class of the entity, or "" if it has no "instance of" statement.
	AdditionalType string `json:"additionalType"`
}

type PersonProfile struct {
	ProfileBase
	Affiliation []Ref           `json:"affiliation"`
	SameAs      []string        `json:"sameAs"`
	Identifier  []PropertyValue `json:"identifier"`
}

type ScholarlyArticleProfile struct {
	ProfileBase
	Headline      string          `json:"headline"`
	DatePublished string          `json:"datePublished"`
	Author        []Ref           `json:"author"`
	IsPartOf      []Ref           `json:"isPartOf"`
	Publisher     []Ref           `json:"publisher"`
	About         []Ref           `json:"about"`
	InLanguage    []string        `json:"inLanguage"`
	Identifier    []PropertyValue `json:"identifier"`
	SameAs        []string        `json:"sameAs"`
	PageStart     string          `json:"pageStart"`
	PageEnd       string          `json:"pageEnd"`
	Pagination    string          `json:"pagination"`
	License       []Ref           `json:"license"`
	Comment       string          `json:"comment"`
	Keywords      []Ref           `json:"keywords"`
	Citation      []Ref           `json:"citation"`
	Encoding      []MediaObject   `json:"encoding"`
}

type DatasetProfile struct {
	ProfileBase
	DatePublished string          `json:"datePublished"`
	Creator       []Ref           `json:"creator"`
	License       []Ref           `json:"license"`
	Identifier    []PropertyValue `json:"identifier"`
	SameAs        []string        `json:"sameAs"`
	Distribution  []DataDownload  `json:"distribution"`
	About         []Ref           `json:"about"`
	Citation      []Ref           `json:"citation"`
}

type SoftwareSourceCodeProfile struct {
	ProfileBase
	DatePublished       string          `json:"datePublished"`
	SoftwareVersion     string          `json:"softwareVersion"`
	ProgrammingLanguage []Ref           `json:"programmingLanguage"`
	CodeRepository      string          `json:"codeRepository"`
	SoftwareHelp        string          `json:"softwareHelp"`
	Creator             []Ref           `json:"creator"`
	License             []Ref           `json:"license"`
	Identifier          []PropertyValue `json:"identifier"`
	SameAs              []string        `json:"sameAs"`
	Distribution        []DataDownload  `json:"distribution"`
	Citation            []Ref           `json:"citation"`
}
