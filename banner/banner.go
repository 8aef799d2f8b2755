// Package banner renders the templated comment text prepended to compiled
// outputs.
package banner

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// Data is what banner templates can reference.
type Data struct {
	Name    string
	Version string
}

// Render executes text as a template with sprig's hermetic helpers and the
// given package data.
func Render(text string, data Data) (string, error) {
	tmpl, err := template.New("banner").Funcs(sprig.HermeticTxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("banner: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("banner: %w", err)
	}
	return b.String(), nil
}
