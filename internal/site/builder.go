package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"salsite/internal/registry"
)

// Builder materializes a tree of static index pages from an artifact map.
// One index per map node plus a front page; the topic documents themselves
// already live in the bucket and are only linked to.
type Builder struct {
	Root      string
	BaseURL   string
	FontsURL  string
	IndexFile string
}

// Page is the per-index fill-in content. TrimLinks reduces each link's
// display text to the portion after the last underscore, which turns
// topic file names like Telemetry_position.html into just "position".
type Page struct {
	Title     string
	Heading   string
	TrimLinks bool
}

const indexTemplate = "<!DOCTYPE html>\n" +
	"<html>\n" +
	"<head>\n" +
	"<title>{{.Title}}</title>\n" +
	"<link rel=\"stylesheet\" type=\"text/css\" href=\"{{.Fonts}}\" />" +
	"<link rel=\"stylesheet\" type=\"text/css\" href=\"{{.CSS}}\" media=\"screen\" /></head><body>\n" +
	"{{if .Heading}}<h2>{{.Heading}}</h2>\n{{end}}" +
	"{{range .Links}}<a href={{.Href}}>{{.Text}}</a><br />\n{{end}}" +
	"</body>\n" +
	"</html>\n"

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

type indexData struct {
	Title   string
	Heading string
	Fonts   string
	CSS     string
	Links   []pageLink
}

type pageLink struct {
	Href string
	Text string
}

func (b Builder) Build(m registry.Map) error {
	front := Page{Title: "SAL Topics Frontpage", Heading: "Version of SAL Topics"}
	if err := b.writeIndex(b.Root, front, m.Versions()); err != nil {
		return err
	}

	for _, version := range m.Versions() {
		if err := b.buildVersion(version, m); err != nil {
			return err
		}
	}

	return nil
}

func (b Builder) buildVersion(version string, m registry.Map) error {
	dir := filepath.Join(b.Root, version)
	cscs := m.CSCs(version)

	page := Page{Title: "SAL Topics for " + capitalize(version)}
	if err := b.writeIndex(dir, page, cscs); err != nil {
		return err
	}

	for _, csc := range cscs {
		sub := filepath.Join(dir, csc)
		page := Page{Title: csc, Heading: csc, TrimLinks: true}
		if err := b.writeIndex(sub, page, m[version][csc]); err != nil {
			return err
		}
	}

	return nil
}

func (b Builder) writeIndex(dir string, page Page, links []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data := indexData{
		Title:   page.Title,
		Heading: page.Heading,
		Fonts:   b.FontsURL,
		CSS:     b.BaseURL + "/css/default.css",
	}
	for _, link := range links {
		data.Links = append(data.Links, pageLink{Href: link, Text: linkText(link, page.TrimLinks)})
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render index for %s: %w", dir, err)
	}

	path := filepath.Join(dir, b.IndexFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// linkText strips the extension (everything from the first dot); with trim
// set it then keeps only the part after the last underscore.
func linkText(link string, trim bool) string {
	text := link
	if i := strings.Index(text, "."); i >= 0 {
		text = text[:i]
	}
	if trim {
		if i := strings.LastIndex(text, "_"); i >= 0 {
			text = text[i+1:]
		}
	}
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
