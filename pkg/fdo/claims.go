package fdo

import (
	"strings"

	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
)

// property ids of the MaRDI knowledge graph.
const (
	propInstanceOf          = "P31"
	propAuthor              = "P16"
	propAffiliation         = "P17"
	propORCID               = "P20"
	propArXivID             = "P21"
	propDOI                 = "P27"
	propPublicationDate     = "P28"
	propWebsite             = "P29"
	propProgrammingLanguage = "P114"
	propSoftwareVersion     = "P132"
	propLicense             = "P163"
	propPublisher           = "P200"
	propFileFormat          = "P204"
	propDownloadURL         = "P205"
	propCites               = "P223"
	propMainSubject         = "P226"
	propZenodoID            = "P227"
	propCRANProject         = "P229"
	propArticleLicense      = "P275"
	propDescribedBy         = "P286"
	propSourceRepository    = "P339"
	propPages               = "P304"
	propLanguage            = "P407"
	propPublishedIn         = "P1433"
	propComment             = "P1448"
	propKeyword             = "P1450"
	propSoftwareHeritageID  = "P1454"
	propOpenMLID            = "P1473"
	propCommunity           = "P1495"
)

// reads claims as plain values.
type claimReader struct {
	claims     wikibase.Claims
	entityRoot string
}

// entity ids referred by the property, in statement order.
func (r claimReader) items(property string) []string {
	ids := []string{}
	for _, v := range r.claims.Values(property) {
		if v.EntityID != "" {
			ids = append(ids, v.EntityID)
		}
	}
	return ids
}

func (r claimReader) refs(property string) []Ref {
	ids := r.items(property)
	refs := make([]Ref, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, Ref{ID: r.entityRoot + id})
	}
	return refs
}

func (r claimReader) iris(property string) []string {
	ids := r.items(property)
	iris := make([]string, 0, len(ids))
	for _, id := range ids {
		iris = append(iris, r.entityRoot+id)
	}
	return iris
}

// literal of the first statement, or "".
func (r claimReader) str(property string) string {
	v, ok := r.claims.First(property)
	if !ok {
		return ""
	}
	switch v.Type {
	case wikibase.TypeString:
		return v.String
	case wikibase.TypeMonolingualText:
		return v.Text
	}
	return ""
}

// date of the first statement, or "".
//
// "+2020-01-01T00:00:00Z" is rendered as "2020-01-01".
func (r claimReader) date(property string) string {
	v, ok := r.claims.First(property)
	if !ok || v.Time == "" {
		return ""
	}
	t := strings.TrimLeft(v.Time, "+")
	return strings.TrimSuffix(t, "T00:00:00Z")
}
