package components

import "strings"

const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

type NavItem struct {
	Path  string
	Label string
}

// NavItems are the entries of the sidebar, in order.
var NavItems = []NavItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/runs", Label: "Training runs"},
	{Path: "/evaluations", Label: "Evaluations"},
	{Path: "/deployments", Label: "Deployments"},
	{Path: "/features", Label: "Feature pipeline"},
	{Path: "/alerts", Label: "Alerts"},
	{Path: "/thresholds", Label: "Threshold tuning"},
	{Path: "/catalog", Label: "Data catalog"},
	{Path: "/reports", Label: "Reports"},
}

func isActive(path string, current string) bool {
	if path == "/" {
		return current == "/"
	}
	return current == path || strings.HasPrefix(current, path+"/")
}
