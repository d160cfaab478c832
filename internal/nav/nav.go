// Package nav renders the site navigation menu.
//
// The menu is a fixed table of eight pages. Rendering is a pure function of the
// selected page position and an optional relative path prefix; callers at
// different directory depths pass a prefix so the same menu works everywhere.
package nav

import (
	"html"
	"strings"
)

// Entry is a single menu entry: the page file it links to and its display title.
type Entry struct {
	File  string
	Title string
}

// entries is the canonical menu, in display order. Positions are stable; nothing
// is ever added, removed, or reordered at runtime.
var entries = [...]Entry{
	{File: "index.html", Title: "Home"},
	{File: "publications.html", Title: "Publications"},
	{File: "bibbase.html", Title: "BibBase"},
	{File: "students.html", Title: "Students"},
	{File: "projects.html", Title: "Projects"},
	{File: "teaching.html", Title: "Teaching"},
	{File: "service.html", Title: "Service"},
	{File: "awards.html", Title: "Awards"},
}

// Len returns the number of menu entries.
func Len() int { return len(entries) }

// Entries returns a copy of the menu table in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries[:])
	return out
}

// Item is one rendered menu item, ready for template consumption.
type Item struct {
	Title  string
	HRef   string
	Active bool
}

// Items returns the menu as a slice of items in table order. The item at
// position selected is marked active; a selected value outside the table
// (negative or past the end) marks nothing active.
func Items(selected int, relativePath string) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			Title:  e.Title,
			HRef:   relativePath + e.File,
			Active: i == selected,
		}
	}
	return items
}

// Render returns the menu as an HTML fragment: a single <ul> holding one
// <li><a> per entry in table order. The entry at position selected carries the
// "active" class on both the list item and the link; out-of-range values simply
// yield no active entry. relativePath is prepended verbatim to every link
// target and escaped in attribute position.
func Render(selected int, relativePath string) string {
	var b strings.Builder
	b.WriteString("<ul class=\"nav\">\n")
	for i, e := range entries {
		href := html.EscapeString(relativePath + e.File)
		if i == selected {
			b.WriteString("<li class=\"active\"><a class=\"active\" href=\"" + href + "\">" + e.Title + "</a></li>\n")
		} else {
			b.WriteString("<li><a href=\"" + href + "\">" + e.Title + "</a></li>\n")
		}
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// Slug returns the content slug for an entry: the page file name without its
// .html extension, with index mapped to home.
func (e Entry) Slug() string {
	name := strings.TrimSuffix(e.File, ".html")
	if name == "index" {
		return "home"
	}
	return name
}
