package sitemap

import (
	"encoding/xml"
	"fmt"
)

const (
	urlsetNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNamespace  = "http://www.w3.org/1999/xhtml"
)

// URLSet is a standard sitemap <urlset> document.
type URLSet struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsXHTML string   `xml:"xmlns:xhtml,attr,omitempty"`
	URLs       []URL    `xml:"url"`
}

// URL is a single <url> entry.
type URL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	Alternates []Alternate `xml:"xhtml:link,omitempty"`
}

// Alternate is an xhtml:link alternate-language annotation.
type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Index is a <sitemapindex> document referencing per-locale and
// per-collection sitemap files.
type Index struct {
	XMLName  xml.Name   `xml:"sitemapindex"`
	Xmlns    string     `xml:"xmlns,attr"`
	Sitemaps []IndexRef `xml:"sitemap"`
}

// IndexRef is a single <sitemap> reference in an index.
type IndexRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// MarshalURLSet renders a urlset document with the XML header.
// encoding/xml escapes &, <, >, " and ' in element content.
func MarshalURLSet(entries []Entry) ([]byte, error) {
	set := URLSet{Xmlns: urlsetNamespace}
	for _, e := range entries {
		set.URLs = append(set.URLs, URL{Loc: e.URL, LastMod: e.LastMod, Alternates: e.Alternates})
		if len(e.Alternates) > 0 {
			set.XmlnsXHTML = xhtmlNamespace
		}
	}
	return marshalDoc(set)
}

// MarshalIndex renders a sitemapindex document with the XML header.
func MarshalIndex(refs []IndexRef) ([]byte, error) {
	return marshalDoc(Index{Xmlns: urlsetNamespace, Sitemaps: refs})
}

func marshalDoc(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap document: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
