// Package web renders the HTML pages of the AgentGateway web interface
// from templates embedded in the binary. Dashboard and playground are
// standalone documents; agents and tools share the layout chrome.
package web

import (
	"bytes"
	"html/template"
)

// layoutData drives the shared layout: page title, which nav link is
// active, and whether the AgentGateway library loaded.
type layoutData struct {
	Title     string
	Active    string
	Available bool
}

var (
	dashboardTpl  = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))
	playgroundTpl = template.Must(template.ParseFS(templateFS, "templates/playground.html"))
	agentsTpl     = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/agents.html"))
	toolsTpl      = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/tools.html"))
)

func render(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dashboard renders the standalone dashboard page.
func Dashboard() ([]byte, error) {
	return render(dashboardTpl, "dashboard.html", nil)
}

// Playground renders the standalone interactive chat form page.
func Playground() ([]byte, error) {
	return render(playgroundTpl, "playground.html", nil)
}

// Agents renders the agents page. available selects between the provider
// cards and the library-missing error panel.
func Agents(available bool) ([]byte, error) {
	return render(agentsTpl, "layout.html", layoutData{Title: "Agents", Active: "agents", Available: available})
}

// Tools renders the built-in tools page. Its content is static.
func Tools() ([]byte, error) {
	return render(toolsTpl, "layout.html", layoutData{Title: "Tools", Active: "tools"})
}
