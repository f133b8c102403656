package messaging

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultMessageTemplate renders a one line summary of a lock event.
const DefaultMessageTemplate = `{{ printf "%s" .Kind | title }} {{ .Lock }} hold{{ if .Items }} ({{ len .Items }} items){{ end }}`

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// parseTemplate compiles a message template with the sprig functions.
func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("message").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// execute renders tmpl against data.
func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
