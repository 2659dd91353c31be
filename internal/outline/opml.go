package outline

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes of an outline document. Implementations
// exist for HTTP and local files; tests inject their own.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(url string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(url string) ([]byte, error) { return f(url) }

const fetchTimeout = 10 * time.Second

// HTTPFetcher fetches outline documents over HTTP, upgrading plain URLs to
// their secure form first.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch implements Fetcher.
func (f HTTPFetcher) Fetch(url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	resp, err := client.Get(SecureURL(url))
	if err != nil {
		return nil, fmt.Errorf("fetch outline: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch outline: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return body, nil
}

// SecureURL rewrites an http:// prefix to https://. The directory and all
// known stream hosts accept the secure form; everything else passes through
// untouched.
func SecureURL(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}

type opmlOutline struct {
	Attrs    []xml.Attr    `xml:",any,attr"`
	Outlines []opmlOutline `xml:"outline"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Body    opmlBody `xml:"body"`
}

// Parse decodes an OPML document and appends its body outlines as children
// of r. Elements without a text attribute are skipped; elements carrying a
// URL become lazy leaves or fetchable directories rather than being expanded
// inline.
func Parse(data []byte, r *Record) error {
	var doc opmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse outline: %w", err)
	}
	for _, o := range doc.Body.Outlines {
		appendOutline(o, r)
	}
	return nil
}

func appendOutline(o opmlOutline, r *Record) {
	attrs := make(map[string]string, len(o.Attrs))
	for _, a := range o.Attrs {
		attrs[a.Name.Local] = a.Value
	}
	if _, ok := attrs["text"]; !ok {
		return
	}
	child := r.Add(attrs)
	if _, ok := attrs["URL"]; !ok {
		for _, sub := range o.Outlines {
			appendOutline(sub, child)
		}
	}
}

// Populate loads r's children from its URL on first descent. The fetch
// happens at most once per record; a fetch or parse failure leaves the
// record as an empty directory and is never surfaced to the caller.
func (r *Record) Populate(fetcher Fetcher) {
	if r.populated || len(r.Children) > 0 {
		return
	}
	r.populated = true
	url := r.URL()
	if url == "" {
		return
	}
	data, err := fetcher.Fetch(url)
	if err != nil {
		return
	}
	if err := Parse(data, r); err != nil {
		r.Children = nil
	}
}

// ReadFile parses a local outline document into r.
func ReadFile(path string, r *Record) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read outline file: %w", err)
	}
	return Parse(data, r)
}

// Marshal renders r's children as an OPML document, one outline element per
// child with exactly that child's attribute map. Attributes are emitted in
// sorted key order so output is deterministic.
func Marshal(r *Record) ([]byte, error) {
	var buf strings.Builder
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	opml := xml.StartElement{Name: xml.Name{Local: "opml"}}
	body := xml.StartElement{Name: xml.Name{Local: "body"}}
	if err := enc.EncodeToken(opml); err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	if err := enc.EncodeToken(body); err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	for _, c := range r.Children {
		el := xml.StartElement{Name: xml.Name{Local: "outline"}}
		keys := make([]string, 0, len(c.Attrs))
		for k := range c.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: k}, Value: c.Attrs[k]})
		}
		if err := enc.EncodeToken(el); err != nil {
			return nil, fmt.Errorf("encode outline: %w", err)
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return nil, fmt.Errorf("encode outline: %w", err)
		}
	}
	if err := enc.EncodeToken(body.End()); err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	if err := enc.EncodeToken(opml.End()); err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	return []byte(buf.String()), nil
}
