// file: internals/features/utils/navigation/model/navigation_model.go
package model

import "strings"

// NavLink: satu item sidebar.
type NavLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// HomeCard: kartu di halaman depan admin.
type HomeCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

var links = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Tenants", Href: "/tenants"},
	{Label: "Payments", Href: "/payments"},
	{Label: "Maintenance", Href: "/maintenance"},
	{Label: "Rooms", Href: "/rooms"},
}

var homeCards = []HomeCard{
	{Title: "Tenants", Description: "Add, view, and manage tenants and room assignments.", Href: "/tenants"},
	{Title: "Payments", Description: "Generate monthly rent and track payment status.", Href: "/payments"},
	{Title: "Maintenance", Description: "Log and resolve room maintenance issues.", Href: "/maintenance"},
}

// Links: salinan daftar link, active hanya kalau href == path (persis).
func Links(path string) []NavLink {
	path = strings.TrimSpace(path)
	out := make([]NavLink, len(links))
	for i, l := range links {
		l.Active = l.Href == path
		out[i] = l
	}
	return out
}

func HomeCards() []HomeCard {
	out := make([]HomeCard, len(homeCards))
	copy(out, homeCards)
	return out
}
