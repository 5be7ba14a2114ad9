package fdo

import (
	"maps"
	"strings"

	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
)

const (
	DefaultFDORoot     = "https://fdo.portal.mardi4nfdi.de/fdo/"
	DefaultEntityRoot  = "https://portal.mardi4nfdi.de/entity/"
	DefaultAttribution = "MaRDI Knowledge Graph"
	DefaultLanguage    = "en"
)

type Options struct {
	// FDORoot is prefixed to identifiers to make IRIs of digital objects.
	FDORoot string

	// EntityRoot is prefixed to identifiers to make IRIs of knowledge graph entities.
	EntityRoot string

	// Attribution is the agent which provenance is attributed to.
	Attribution string

	// Language of labels and descriptions.
	Language string

	// Types are class -> kind mappings, applied over DefaultTypes.
	Types map[string]Kind
}

// Translator renders raw entities as FDO envelopes.
//
// Translator is immutable and safe for concurrent use.
type Translator struct {
	fdoRoot     string
	entityRoot  string
	attribution string
	language    string
	types       map[string]Kind
}

// NewTranslator creates a Translator. Empty options fall back to the defaults.
func NewTranslator(opts Options) *Translator {
	types := DefaultTypes()
	maps.Copy(types, opts.Types)

	return &Translator{
		fdoRoot:     slashed(or(opts.FDORoot, DefaultFDORoot)),
		entityRoot:  slashed(or(opts.EntityRoot, DefaultEntityRoot)),
		attribution: or(opts.Attribution, DefaultAttribution),
		language:    or(opts.Language, DefaultLanguage),
		types:       types,
	}
}

// Translate renders an entity as an FDO envelope.
//
// This is a pure function of its arguments and never fails:
// whatever is absent in the entity is rendered as its default.
// The id is echoed as it is.
func (tr *Translator) Translate(id wikibase.Identifier, entity *wikibase.Entity) Envelope {
	if entity == nil {
		entity = &wikibase.Entity{}
	}

	kind, class := tr.Classify(entity.Claims)
	src := source{
		id:         id.String(),
		iri:        tr.entityRoot + id.String(),
		label:      or(entity.Labels[tr.language].Value, id.String()),
		desc:       entity.Descriptions[tr.language].Value,
		claimReader: claimReader{
			claims:     entity.Claims,
			entityRoot: tr.entityRoot,
		},
	}

	var profile Profile
	components := []Component{}
	switch kind {
	case KindPerson:
		profile = personProfile(src)
	case KindScholarlyArticle:
		profile, components = scholarlyArticleProfile(src)
	case KindDataset:
		profile, components = datasetProfile(src)
	case KindSoftwareSourceCode:
		profile, components = softwareSourceCodeProfile(src)
	default:
		kind = KindThing
		p := ThingProfile{ProfileBase: src.base(KindThing)}
		if class != "" {
			p.AdditionalType = tr.entityRoot + class
		}
		profile = p
	}

	fdoID := tr.fdoRoot + id.String()
	return Envelope{
		Context:    newContext(tr.entityRoot),
		ID:         fdoID,
		Type:       DigitalObject,
		Identifier: id.String(),
		Kernel: Kernel{
			ID:                fdoID,
			DigitalObjectType: kind.IRI(),
			PrimaryIdentifier: "mardi:" + id.String(),
			KernelVersion:     KernelVersion,
			Immutable:         true,
			Modified:          entity.Modified,
			Components:        components,
		},
		Profile: profile,
		Access: Access{
			AccessURL: src.iri,
			MediaType: EntityMediaType,
		},
		Provenance: Provenance{
			GeneratedAtTime: entity.Modified,
			WasAttributedTo: tr.attribution,
		},
	}
}

// Classify decides the kind by the first "instance of" statement.
//
// # Returns
//
// - Kind: kind mapped from the class. KindThing if the class is unmapped or absent.
//
// - string: id of the class, or "" if there are no "instance of" statement.
func (tr *Translator) Classify(claims wikibase.Claims) (Kind, string) {
	v, ok := claims.First(propInstanceOf)
	if !ok || v.EntityID == "" {
		return KindThing, ""
	}
	if k, ok := tr.types[v.EntityID]; ok {
		return k, v.EntityID
	}
	return KindThing, v.EntityID
}

type source struct {
	claimReader
	id    string
	iri   string
	label string
	desc  string
}

func (s source) base(k Kind) ProfileBase {
	return ProfileBase{
		Context:     schemaOrg,
		Type:        k,
		ID:          s.iri,
		Name:        s.label,
		Description: s.desc,
		URL:         s.iri,
	}
}

func doiOf(doi string) (PropertyValue, string) {
	url := "https://doi.org/" + doi
	return newPropertyValue("doi", doi, url), url
}

func personProfile(s source) PersonProfile {
	p := PersonProfile{
		ProfileBase: s.base(KindPerson),
		Affiliation: s.refs(propAffiliation),
		SameAs:      []string{},
		Identifier:  []PropertyValue{},
	}
	if website := s.str(propWebsite); website != "" {
		p.SameAs = append(p.SameAs, website)
	}
	if orcid := s.str(propORCID); orcid != "" {
		p.Identifier = append(
			p.Identifier,
			newPropertyValue("orcid", orcid, "https://orcid.org/"+orcid),
		)
	}
	return p
}

func scholarlyArticleProfile(s source) (ScholarlyArticleProfile, []Component) {
	p := ScholarlyArticleProfile{
		ProfileBase:   s.base(KindScholarlyArticle),
		Headline:      s.label,
		DatePublished: s.date(propPublicationDate),
		Author:        s.refs(propAuthor),
		IsPartOf:      s.refs(propPublishedIn),
		Publisher:     s.refs(propPublisher),
		About:         s.refs(propMainSubject),
		InLanguage:    s.iris(propLanguage),
		Identifier:    []PropertyValue{},
		SameAs:        []string{},
		License:       s.refs(propArticleLicense),
		Comment:       s.str(propComment),
		Keywords:      s.refs(propKeyword),
		Citation:      s.refs(propCites),
		Encoding:      []MediaObject{},
	}
	components := []Component{}

	if doi := s.str(propDOI); doi != "" {
		pv, url := doiOf(doi)
		p.Identifier = append(p.Identifier, pv)
		p.SameAs = append(p.SameAs, url)
	}

	if pages := s.str(propPages); pages != "" {
		p.Pagination = pages
		if start, end, ok := strings.Cut(pages, "-"); ok {
			p.PageStart, p.PageEnd = start, end
		}
	}

	if arxiv := s.str(propArXivID); arxiv != "" {
		abs := "https://arxiv.org/abs/" + arxiv
		pdf := "https://arxiv.org/pdf/" + arxiv
		p.Identifier = append(p.Identifier, newPropertyValue("arxiv", arxiv, abs))
		p.SameAs = append(p.SameAs, abs)
		p.Encoding = append(p.Encoding, MediaObject{
			Type: "MediaObject", ContentURL: pdf, EncodingFormat: "application/pdf",
		})
		components = append(components, newComponent("fulltext", "application/pdf", pdf))
	}

	return p, components
}

func datasetProfile(s source) (DatasetProfile, []Component) {
	p := DatasetProfile{
		ProfileBase:   s.base(KindDataset),
		DatePublished: s.date(propPublicationDate),
		Creator:       s.refs(propAuthor),
		License:       s.refs(propLicense),
		Identifier:    []PropertyValue{},
		SameAs:        []string{},
		Distribution:  []DataDownload{},
		About:         s.refs(propCommunity),
		Citation:      s.refs(propDescribedBy),
	}
	components := []Component{}

	if doi := s.str(propDOI); doi != "" {
		pv, url := doiOf(doi)
		p.Identifier = append(p.Identifier, pv)
		p.SameAs = append(p.SameAs, url)
	}
	if zenodo := s.str(propZenodoID); zenodo != "" {
		p.SameAs = append(p.SameAs, "https://zenodo.org/record/"+zenodo)
	}
	if openml := s.str(propOpenMLID); openml != "" {
		p.SameAs = append(p.SameAs, "https://www.openml.org/d/"+openml)
	}

	if download := s.str(propDownloadURL); download != "" {
		dist := DataDownload{Type: "DataDownload", ContentURL: download}
		if formats := s.iris(propFileFormat); len(formats) != 0 {
			dist.EncodingFormat = formats[0]
		}
		p.Distribution = append(p.Distribution, dist)
		components = append(components, newComponent("rocrate", "application/zip", download))
	}

	return p, components
}

func softwareSourceCodeProfile(s source) (SoftwareSourceCodeProfile, []Component) {
	p := SoftwareSourceCodeProfile{
		ProfileBase:         s.base(KindSoftwareSourceCode),
		DatePublished:       s.date(propPublicationDate),
		SoftwareVersion:     s.str(propSoftwareVersion),
		ProgrammingLanguage: s.refs(propProgrammingLanguage),
		CodeRepository:      s.str(propSourceRepository),
		Creator:             s.refs(propAuthor),
		License:             s.refs(propLicense),
		Identifier:          []PropertyValue{},
		SameAs:              []string{},
		Distribution:        []DataDownload{},
		Citation:            s.refs(propDescribedBy),
	}
	components := []Component{}

	if doi := s.str(propDOI); doi != "" {
		pv, url := doiOf(doi)
		p.Identifier = append(p.Identifier, pv)
		p.SameAs = append(p.SameAs, url)
	}
	if swhid := s.str(propSoftwareHeritageID); swhid != "" {
		p.Identifier = append(
			p.Identifier,
			newPropertyValue("swhid", swhid, "https://archive.softwareheritage.org/"+swhid),
		)
	}

	if download := s.str(propDownloadURL); download != "" {
		p.Distribution = append(p.Distribution, DataDownload{Type: "DataDownload", ContentURL: download})
		components = append(components, newComponent("sourcecode", "application/octet-stream", download))
	}

	if cran := s.str(propCRANProject); cran != "" {
		manual := "https://cran.r-project.org/web/packages/" + cran + "/" + cran + ".pdf"
		p.SoftwareHelp = manual
		components = append(components, newComponent("documentation", "application/pdf", manual))
	}

	return p, components
}

func or(s, dflt string) string {
	if s == "" {
		return dflt
	}
	return s
}

func slashed(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
