package fdo_test

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mardi4nfdi/fdofacade/internal/testutils/try"
	"github.com/mardi4nfdi/fdofacade/pkg/fdo"
	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
)

func entityID(id string) *wikibase.DataValue {
	return &wikibase.DataValue{Type: wikibase.TypeEntityID, EntityID: id}
}

func str(s string) *wikibase.DataValue {
	return &wikibase.DataValue{Type: wikibase.TypeString, String: s}
}

func date(t string) *wikibase.DataValue {
	return &wikibase.DataValue{Type: wikibase.TypeTime, Time: t}
}

func statements(values ...*wikibase.DataValue) []wikibase.Statement {
	stmts := make([]wikibase.Statement, 0, len(values))
	for _, v := range values {
		stmts = append(stmts, wikibase.Statement{
			Mainsnak: wikibase.Snak{SnakType: "value", DataValue: v},
		})
	}
	return stmts
}

func compact(t *testing.T, s string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := json.Compact(buf, []byte(s)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTranslate_Minimal(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})
	entity := &wikibase.Entity{
		Labels: wikibase.Terms{"en": {Language: "en", Value: "Example"}},
		Claims: wikibase.Claims{},
	}

	got := try.To(fdo.Marshal(testee.Translate("Q123456", entity))).OrFatal(t)

	want := compact(t, `{
		"@context": [
			"https://w3id.org/fdo/context/v1",
			{
				"schema": "https://schema.org/",
				"prov": "http://www.w3.org/ns/prov#",
				"fdo": "https://w3id.org/fdo/vocabulary/",
				"mardi": "https://portal.mardi4nfdi.de/entity/",
				"kernel": "fdo:kernel",
				"access": "fdo:access",
				"accessURL": "fdo:accessURL",
				"mediaType": "fdo:mediaType"
			}
		],
		"@id": "https://fdo.portal.mardi4nfdi.de/fdo/Q123456",
		"@type": "DigitalObject",
		"identifier": "Q123456",
		"kernel": {
			"@id": "https://fdo.portal.mardi4nfdi.de/fdo/Q123456",
			"digitalObjectType": "https://schema.org/Thing",
			"primaryIdentifier": "mardi:Q123456",
			"kernelVersion": "v1",
			"immutable": true,
			"modified": "",
			"fdo:hasComponent": []
		},
		"profile": {
			"@context": "https://schema.org/",
			"@type": "Thing",
			"@id": "https://portal.mardi4nfdi.de/entity/Q123456",
			"name": "Example",
			"description": "",
			"url": "https://portal.mardi4nfdi.de/entity/Q123456",
			"additionalType": ""
		},
		"access": {
			"accessURL": "https://portal.mardi4nfdi.de/entity/Q123456",
			"mediaType": "application/vnd.mardi.entity+json"
		},
		"provenance": {
			"prov:generatedAtTime": "",
			"prov:wasAttributedTo": "MaRDI Knowledge Graph"
		}
	}`)

	if !bytes.Equal(got, want) {
		t.Errorf("unexpected envelope:\n===got===\n%s\n===want===\n%s", got, want)
	}
}

func TestTranslate_IsDeterministic(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})
	entity := &wikibase.Entity{
		Modified: "2024-02-02T12:00:00Z",
		Labels:   wikibase.Terms{"en": {Language: "en", Value: "Test Article"}},
		Claims: wikibase.Claims{
			"P31":  statements(entityID("Q56887")),
			"P16":  statements(entityID("Q3"), entityID("Q1"), entityID("Q2")),
			"P223": statements(entityID("Q20"), entityID("Q10")),
			"P27":  statements(str("10.1000/xyz")),
			"P21":  statements(str("2304.06137")),
		},
	}

	first := try.To(fdo.Marshal(testee.Translate("Q111111", entity))).OrFatal(t)
	for i := 0; i < 20; i++ {
		again := try.To(fdo.Marshal(testee.Translate("Q111111", entity))).OrFatal(t)
		if !bytes.Equal(first, again) {
			t.Fatalf("output differs:\n%s\n%s", first, again)
		}
	}

	other := fdo.NewTranslator(fdo.Options{})
	if again := try.To(fdo.Marshal(other.Translate("Q111111", entity))).OrFatal(t); !bytes.Equal(first, again) {
		t.Errorf("output differs between translators:\n%s\n%s", first, again)
	}
}

// keys of a JSON object, in order of appearance.
func keysOf(t *testing.T, b []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(b))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		t.Fatalf("not an object: %s", b)
	}
	keys := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatal(err)
		}
	}
	return keys
}

func TestTranslate_ShapeDoesNotDependOnSourceFields(t *testing.T) {
	topLevel := []string{
		"@context", "@id", "@type", "identifier", "kernel", "profile", "access", "provenance",
	}
	kernel := []string{
		"@id", "digitalObjectType", "primaryIdentifier", "kernelVersion",
		"immutable", "modified", "fdo:hasComponent",
	}

	type When struct {
		types map[string]fdo.Kind
		full  *wikibase.Entity
		bare  *wikibase.Entity
	}
	type Then struct {
		kind        fdo.Kind
		profileKeys []string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			testee := fdo.NewTranslator(fdo.Options{Types: when.types})

			for name, entity := range map[string]*wikibase.Entity{
				"full": when.full, "bare": when.bare,
			} {
				env := testee.Translate("Q5", entity)
				if got := env.Profile.Kind(); got != then.kind {
					t.Errorf("%s: kind: want %s, got %s", name, then.kind, got)
				}
				b := try.To(fdo.Marshal(env)).OrFatal(t)

				if got := keysOf(t, b); !slices.Equal(got, topLevel) {
					t.Errorf("%s: top level keys: %v", name, got)
				}

				parts := map[string]json.RawMessage{}
				if err := json.Unmarshal(b, &parts); err != nil {
					t.Fatal(err)
				}
				if got := keysOf(t, parts["kernel"]); !slices.Equal(got, kernel) {
					t.Errorf("%s: kernel keys: %v", name, got)
				}
				if got := keysOf(t, parts["profile"]); !slices.Equal(got, then.profileKeys) {
					t.Errorf("%s: profile keys:\n%v\nwant\n%v", name, got, then.profileKeys)
				}
				if bytes.Contains(b, []byte("null")) {
					t.Errorf("%s: null in envelope: %s", name, b)
				}
			}
		}
	}

	base := []string{"@context", "@type", "@id", "name", "description", "url"}

	t.Run("Thing", theory(
		When{
			full: &wikibase.Entity{
				Modified:     "2024-01-01T00:00:00Z",
				Labels:       wikibase.Terms{"en": {Value: "x"}},
				Descriptions: wikibase.Terms{"en": {Value: "y"}},
				Claims:       wikibase.Claims{"P31": statements(entityID("Q1"))},
			},
			bare: &wikibase.Entity{},
		},
		Then{kind: fdo.KindThing, profileKeys: append(slices.Clone(base), "additionalType")},
	))

	t.Run("nil entity is rendered as Thing", theory(
		When{full: nil, bare: &wikibase.Entity{Claims: wikibase.Claims{}}},
		Then{kind: fdo.KindThing, profileKeys: append(slices.Clone(base), "additionalType")},
	))

	t.Run("Person", theory(
		When{
			full: &wikibase.Entity{
				Claims: wikibase.Claims{
					"P31": statements(entityID("Q57162")),
					"P17": statements(entityID("Q123")),
					"P29": statements(str("https://example.com")),
					"P20": statements(str("0000-0000-0000-0000")),
				},
			},
			bare: &wikibase.Entity{Claims: wikibase.Claims{"P31": statements(entityID("Q57162"))}},
		},
		Then{kind: fdo.KindPerson, profileKeys: append(slices.Clone(base), "affiliation", "sameAs", "identifier")},
	))

	t.Run("ScholarlyArticle", theory(
		When{
			full: &wikibase.Entity{
				Claims: wikibase.Claims{
					"P31":  statements(entityID("Q56887")),
					"P16":  statements(entityID("Q1")),
					"P28":  statements(date("+2020-05-01T00:00:00Z")),
					"P27":  statements(str("10.1/x")),
					"P304": statements(str("1-10")),
					"P21":  statements(str("2304.06137")),
				},
			},
			bare: &wikibase.Entity{Claims: wikibase.Claims{"P31": statements(entityID("Q56887"))}},
		},
		Then{kind: fdo.KindScholarlyArticle, profileKeys: append(
			slices.Clone(base),
			"headline", "datePublished", "author", "isPartOf", "publisher", "about",
			"inLanguage", "identifier", "sameAs", "pageStart", "pageEnd", "pagination",
			"license", "comment", "keywords", "citation", "encoding",
		)},
	))

	t.Run("Dataset", theory(
		When{
			types: map[string]fdo.Kind{"Q1000": fdo.KindDataset},
			full: &wikibase.Entity{
				Claims: wikibase.Claims{
					"P31":  statements(entityID("Q1000")),
					"P205": statements(str("https://example.com/data.zip")),
					"P27":  statements(str("10.1/x")),
				},
			},
			bare: &wikibase.Entity{Claims: wikibase.Claims{"P31": statements(entityID("Q1000"))}},
		},
		Then{kind: fdo.KindDataset, profileKeys: append(
			slices.Clone(base),
			"datePublished", "creator", "license", "identifier", "sameAs",
			"distribution", "about", "citation",
		)},
	))

	t.Run("SoftwareSourceCode", theory(
		When{
			types: map[string]fdo.Kind{"Q2000": fdo.KindSoftwareSourceCode},
			full: &wikibase.Entity{
				Claims: wikibase.Claims{
					"P31":  statements(entityID("Q2000")),
					"P132": statements(str("1.0.0")),
					"P229": statements(str("pkg")),
				},
			},
			bare: &wikibase.Entity{Claims: wikibase.Claims{"P31": statements(entityID("Q2000"))}},
		},
		Then{kind: fdo.KindSoftwareSourceCode, profileKeys: append(
			slices.Clone(base),
			"datePublished", "softwareVersion", "programmingLanguage", "codeRepository",
			"softwareHelp", "creator", "license", "identifier", "sameAs",
			"distribution", "citation",
		)},
	))
}

func TestTranslate_Person(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})
	entity := &wikibase.Entity{
		Modified:     "2023-01-01T00:00:00Z",
		Labels:       wikibase.Terms{"en": {Language: "en", Value: "Test Author"}},
		Descriptions: wikibase.Terms{"en": {Language: "en", Value: "A test researcher"}},
		Claims: wikibase.Claims{
			"P31": statements(entityID("Q57162")),
			"P17": statements(entityID("Q123")),
			"P29": statements(str("https://example.com")),
			"P20": statements(str("0000-0000-0000-0000")),
		},
	}

	got := testee.Translate("Q999999", entity)

	if got.ID != "https://fdo.portal.mardi4nfdi.de/fdo/Q999999" {
		t.Errorf("unexpected @id: %s", got.ID)
	}
	if got.Kernel.DigitalObjectType != "https://schema.org/Person" {
		t.Errorf("unexpected digitalObjectType: %s", got.Kernel.DigitalObjectType)
	}
	if got.Provenance.GeneratedAtTime != "2023-01-01T00:00:00Z" || got.Kernel.Modified != "2023-01-01T00:00:00Z" {
		t.Errorf("unexpected modification time: %+v / %+v", got.Provenance, got.Kernel)
	}
	if len(got.Kernel.Components) != 0 {
		t.Errorf("person has no component, but: %+v", got.Kernel.Components)
	}

	want := fdo.PersonProfile{
		ProfileBase: fdo.ProfileBase{
			Context:     "https://schema.org/",
			Type:        fdo.KindPerson,
			ID:          "https://portal.mardi4nfdi.de/entity/Q999999",
			Name:        "Test Author",
			Description: "A test researcher",
			URL:         "https://portal.mardi4nfdi.de/entity/Q999999",
		},
		Affiliation: []fdo.Ref{{ID: "https://portal.mardi4nfdi.de/entity/Q123"}},
		SameAs:      []string{"https://example.com"},
		Identifier: []fdo.PropertyValue{{
			Type: "PropertyValue", PropertyID: "orcid",
			Value: "0000-0000-0000-0000", URL: "https://orcid.org/0000-0000-0000-0000",
		}},
	}
	if diff := cmp.Diff(fdo.Profile(want), got.Profile); diff != "" {
		t.Errorf("profile (-want +got):\n%s", diff)
	}
}

func TestTranslate_ScholarlyArticle(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})
	entity := &wikibase.Entity{
		Modified: "2024-02-02T12:00:00Z",
		Labels:   wikibase.Terms{"en": {Language: "en", Value: "Test Article"}},
		Claims: wikibase.Claims{
			"P31":   statements(entityID("Q56887")),
			"P16":   statements(entityID("Q2"), entityID("Q1")),
			"P1433": statements(entityID("Q10")),
			"P200":  statements(entityID("Q11")),
			"P226":  statements(entityID("Q12")),
			"P275":  statements(entityID("Q13")),
			"P407":  statements(entityID("Q14")),
			"P1450": statements(entityID("Q15")),
			"P223":  statements(entityID("Q16")),
			"P28":   statements(date("+2020-05-01T00:00:00Z")),
			"P27":   statements(str("10.1000/xyz")),
			"P304":  statements(str("100-120")),
			"P1448": statements(&wikibase.DataValue{Type: wikibase.TypeMonolingualText, Text: "preprint", Language: "en"}),
			"P21":   statements(str("2304.06137")),
		},
	}

	got := testee.Translate("Q111111", entity)

	if got.Type != "DigitalObject" {
		t.Errorf("unexpected @type: %s", got.Type)
	}
	if got.Kernel.ID != got.ID {
		t.Errorf("kernel @id (%s) should be the same as @id (%s)", got.Kernel.ID, got.ID)
	}
	if got.Kernel.PrimaryIdentifier != "mardi:Q111111" || got.Kernel.KernelVersion != "v1" || !got.Kernel.Immutable {
		t.Errorf("unexpected kernel: %+v", got.Kernel)
	}

	wantComponents := []fdo.Component{{
		ID: "#fulltext", ComponentID: "fulltext",
		MediaType: "application/pdf", AccessURL: "https://arxiv.org/pdf/2304.06137",
	}}
	if diff := cmp.Diff(wantComponents, got.Kernel.Components); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}

	e := "https://portal.mardi4nfdi.de/entity/"
	want := fdo.ScholarlyArticleProfile{
		ProfileBase: fdo.ProfileBase{
			Context: "https://schema.org/", Type: fdo.KindScholarlyArticle,
			ID: e + "Q111111", Name: "Test Article", Description: "", URL: e + "Q111111",
		},
		Headline:      "Test Article",
		DatePublished: "2020-05-01",
		Author:        []fdo.Ref{{ID: e + "Q2"}, {ID: e + "Q1"}},
		IsPartOf:      []fdo.Ref{{ID: e + "Q10"}},
		Publisher:     []fdo.Ref{{ID: e + "Q11"}},
		About:         []fdo.Ref{{ID: e + "Q12"}},
		InLanguage:    []string{e + "Q14"},
		Identifier: []fdo.PropertyValue{
			{Type: "PropertyValue", PropertyID: "doi", Value: "10.1000/xyz", URL: "https://doi.org/10.1000/xyz"},
			{Type: "PropertyValue", PropertyID: "arxiv", Value: "2304.06137", URL: "https://arxiv.org/abs/2304.06137"},
		},
		SameAs:     []string{"https://doi.org/10.1000/xyz", "https://arxiv.org/abs/2304.06137"},
		PageStart:  "100",
		PageEnd:    "120",
		Pagination: "100-120",
		License:    []fdo.Ref{{ID: e + "Q13"}},
		Comment:    "preprint",
		Keywords:   []fdo.Ref{{ID: e + "Q15"}},
		Citation:   []fdo.Ref{{ID: e + "Q16"}},
		Encoding: []fdo.MediaObject{{
			Type: "MediaObject", ContentURL: "https://arxiv.org/pdf/2304.06137", EncodingFormat: "application/pdf",
		}},
	}
	if diff := cmp.Diff(fdo.Profile(want), got.Profile); diff != "" {
		t.Errorf("profile (-want +got):\n%s", diff)
	}
}

func TestTranslate_Dataset(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{
		Types: map[string]fdo.Kind{"Q1000": fdo.KindDataset},
	})
	entity := &wikibase.Entity{
		Labels: wikibase.Terms{"en": {Value: "Some Data"}},
		Claims: wikibase.Claims{
			"P31":   statements(entityID("Q1000")),
			"P16":   statements(entityID("Q1")),
			"P163":  statements(entityID("Q2")),
			"P1495": statements(entityID("Q3")),
			"P286":  statements(entityID("Q4")),
			"P205":  statements(str("https://example.com/data.zip")),
			"P204":  statements(entityID("Q5"), entityID("Q6")),
			"P27":   statements(str("10.5281/zenodo.1")),
			"P227":  statements(str("1")),
			"P1473": statements(str("61")),
			"P28":   statements(date("+2021-03-04T05:06:07Z")),
		},
	}

	got := testee.Translate("Q7", entity)

	e := "https://portal.mardi4nfdi.de/entity/"
	want := fdo.DatasetProfile{
		ProfileBase: fdo.ProfileBase{
			Context: "https://schema.org/", Type: fdo.KindDataset,
			ID: e + "Q7", Name: "Some Data", URL: e + "Q7",
		},
		DatePublished: "2021-03-04T05:06:07Z",
		Creator:       []fdo.Ref{{ID: e + "Q1"}},
		License:       []fdo.Ref{{ID: e + "Q2"}},
		Identifier: []fdo.PropertyValue{
			{Type: "PropertyValue", PropertyID: "doi", Value: "10.5281/zenodo.1", URL: "https://doi.org/10.5281/zenodo.1"},
		},
		SameAs: []string{
			"https://doi.org/10.5281/zenodo.1",
			"https://zenodo.org/record/1",
			"https://www.openml.org/d/61",
		},
		Distribution: []fdo.DataDownload{
			{Type: "DataDownload", ContentURL: "https://example.com/data.zip", EncodingFormat: e + "Q5"},
		},
		About:    []fdo.Ref{{ID: e + "Q3"}},
		Citation: []fdo.Ref{{ID: e + "Q4"}},
	}
	if diff := cmp.Diff(fdo.Profile(want), got.Profile); diff != "" {
		t.Errorf("profile (-want +got):\n%s", diff)
	}

	wantComponents := []fdo.Component{{
		ID: "#rocrate", ComponentID: "rocrate",
		MediaType: "application/zip", AccessURL: "https://example.com/data.zip",
	}}
	if diff := cmp.Diff(wantComponents, got.Kernel.Components); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
	if got.Kernel.DigitalObjectType != "https://schema.org/Dataset" {
		t.Errorf("unexpected digitalObjectType: %s", got.Kernel.DigitalObjectType)
	}
}

func TestTranslate_SoftwareSourceCode(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{
		Types: map[string]fdo.Kind{"Q2000": fdo.KindSoftwareSourceCode},
	})
	entity := &wikibase.Entity{
		Labels: wikibase.Terms{"en": {Value: "mypkg"}},
		Claims: wikibase.Claims{
			"P31":   statements(entityID("Q2000")),
			"P16":   statements(entityID("Q1")),
			"P163":  statements(entityID("Q2")),
			"P286":  statements(entityID("Q3")),
			"P114":  statements(entityID("Q4")),
			"P132":  statements(str("1.2.3")),
			"P339":  statements(str("https://github.com/example/mypkg")),
			"P205":  statements(str("https://example.com/mypkg.tar.gz")),
			"P27":   statements(str("10.1/sw")),
			"P1454": statements(str("swh:1:dir:abc")),
			"P229":  statements(str("mypkg")),
			"P28":   statements(date("+2019-01-01T00:00:00Z")),
		},
	}

	got := testee.Translate("Q8", entity)

	e := "https://portal.mardi4nfdi.de/entity/"
	want := fdo.SoftwareSourceCodeProfile{
		ProfileBase: fdo.ProfileBase{
			Context: "https://schema.org/", Type: fdo.KindSoftwareSourceCode,
			ID: e + "Q8", Name: "mypkg", URL: e + "Q8",
		},
		DatePublished:       "2019-01-01",
		SoftwareVersion:     "1.2.3",
		ProgrammingLanguage: []fdo.Ref{{ID: e + "Q4"}},
		CodeRepository:      "https://github.com/example/mypkg",
		SoftwareHelp:        "https://cran.r-project.org/web/packages/mypkg/mypkg.pdf",
		Creator:             []fdo.Ref{{ID: e + "Q1"}},
		License:             []fdo.Ref{{ID: e + "Q2"}},
		Identifier: []fdo.PropertyValue{
			{Type: "PropertyValue", PropertyID: "doi", Value: "10.1/sw", URL: "https://doi.org/10.1/sw"},
			{Type: "PropertyValue", PropertyID: "swhid", Value: "swh:1:dir:abc", URL: "https://archive.softwareheritage.org/swh:1:dir:abc"},
		},
		SameAs: []string{"https://doi.org/10.1/sw"},
		Distribution: []fdo.DataDownload{
			{Type: "DataDownload", ContentURL: "https://example.com/mypkg.tar.gz"},
		},
		Citation: []fdo.Ref{{ID: e + "Q3"}},
	}
	if diff := cmp.Diff(fdo.Profile(want), got.Profile); diff != "" {
		t.Errorf("profile (-want +got):\n%s", diff)
	}

	wantComponents := []fdo.Component{
		{ID: "#sourcecode", ComponentID: "sourcecode", MediaType: "application/octet-stream", AccessURL: "https://example.com/mypkg.tar.gz"},
		{ID: "#documentation", ComponentID: "documentation", MediaType: "application/pdf", AccessURL: "https://cran.r-project.org/web/packages/mypkg/mypkg.pdf"},
	}
	if diff := cmp.Diff(wantComponents, got.Kernel.Components); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
}

func TestTranslate_Options(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{
		FDORoot:     "https://fdo.example.com/objects",
		EntityRoot:  "https://kg.example.com/entity",
		Attribution: "Example KG",
		Language:    "de",
		Types:       map[string]fdo.Kind{"Q57162": fdo.KindThing},
	})
	entity := &wikibase.Entity{
		Labels: wikibase.Terms{
			"en": {Language: "en", Value: "English"},
			"de": {Language: "de", Value: "Deutsch"},
		},
		Claims: wikibase.Claims{"P31": statements(entityID("Q57162"))},
	}

	got := testee.Translate("Q1", entity)

	if got.ID != "https://fdo.example.com/objects/Q1" {
		t.Errorf("unexpected @id: %s", got.ID)
	}
	if got.Access.AccessURL != "https://kg.example.com/entity/Q1" {
		t.Errorf("unexpected accessURL: %s", got.Access.AccessURL)
	}
	if got.Context.Terms.Mardi != "https://kg.example.com/entity/" {
		t.Errorf("unexpected context: %+v", got.Context)
	}
	if got.Provenance.WasAttributedTo != "Example KG" {
		t.Errorf("unexpected attribution: %s", got.Provenance.WasAttributedTo)
	}

	p, ok := got.Profile.(fdo.ThingProfile)
	if !ok {
		t.Fatalf("overridden type should be rendered as Thing, but %T", got.Profile)
	}
	if p.Name != "Deutsch" {
		t.Errorf("unexpected name: %s", p.Name)
	}
	if p.AdditionalType != "https://kg.example.com/entity/Q57162" {
		t.Errorf("unexpected additionalType: %s", p.AdditionalType)
	}
}

func TestTranslate_LabelFallsBackToIdentifier(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})
	got := testee.Translate("Q42", &wikibase.Entity{
		Labels: wikibase.Terms{"fr": {Language: "fr", Value: "Exemple"}},
	})

	p := got.Profile.(fdo.ThingProfile)
	if p.Name != "Q42" {
		t.Errorf("unexpected name: %s", p.Name)
	}
}

func TestClassify(t *testing.T) {
	testee := fdo.NewTranslator(fdo.Options{})

	type Then struct {
		kind  fdo.Kind
		class string
	}
	theory := func(claims wikibase.Claims, then Then) func(*testing.T) {
		return func(t *testing.T) {
			kind, class := testee.Classify(claims)
			if kind != then.kind || class != then.class {
				t.Errorf("want (%s, %s), got (%s, %s)", then.kind, then.class, kind, class)
			}
		}
	}

	t.Run("no claims", theory(nil, Then{kind: fdo.KindThing}))
	t.Run("mapped class", theory(
		wikibase.Claims{"P31": statements(entityID("Q56887"))},
		Then{kind: fdo.KindScholarlyArticle, class: "Q56887"},
	))
	t.Run("only the first statement is considered", theory(
		wikibase.Claims{"P31": statements(entityID("Q1"), entityID("Q57162"))},
		Then{kind: fdo.KindThing, class: "Q1"},
	))
	t.Run("non-item value is ignored", theory(
		wikibase.Claims{"P31": statements(str("Q57162"))},
		Then{kind: fdo.KindThing},
	))
}

func TestParseKind(t *testing.T) {
	for _, k := range []string{"Thing", "Person", "ScholarlyArticle", "Dataset", "SoftwareSourceCode"} {
		if got, err := fdo.ParseKind(k); err != nil || string(got) != k {
			t.Errorf("ParseKind(%s) = (%s, %v)", k, got, err)
		}
	}
	if _, err := fdo.ParseKind("Book"); err == nil {
		t.Error("unknown kind should be rejected")
	}
}
