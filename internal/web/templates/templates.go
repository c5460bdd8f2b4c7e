// Package templates holds the site's page views.
//
// Pages are html/template files sharing one layout; each is exposed as a
// templ.Component so handlers render every view the same way.
package templates

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed *.html
var files embed.FS

// Page names. Each matches a <name>.html file and a navigation label.
const (
	Home     = "home"
	Services = "services"
	Contact  = "contact"
	Closed   = "closed"
)

var pageNames = []string{Home, Services, Contact, Closed}

// Page is the view model shared by every page.
type Page struct {
	Title string
	// CurrentPage marks the active navigation item. Empty means none.
	CurrentPage string
}

// ClosedPage is the view model for the closed notice.
type ClosedPage struct {
	Page
	Day  string
	Time string
}

// Set is the parsed collection of pages.
type Set struct {
	pages map[string]*template.Template
}

// Parse parses the embedded layout and pages.
func Parse() (*Set, error) {
	layout, err := template.ParseFS(files, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	set := &Set{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		page, err := base.ParseFS(files, name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		set.pages[name] = page.Lookup("layout")
	}
	return set, nil
}

// Component binds data to the named page.
func (s *Set) Component(name string, data any) (templ.Component, error) {
	page, ok := s.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	return templ.FromGoHTML(page, data), nil
}
