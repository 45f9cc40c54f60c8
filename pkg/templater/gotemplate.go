package templater

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
)

func init() {
	Register(goTemplater{})
}

// goTemplater renders the source as a text/template. The configured
// context is the template data; a missing key fails the render so typos in
// templates surface as templating violations rather than silent blanks.
type goTemplater struct{}

func (goTemplater) Name() string { return "gotemplate" }

func (goTemplater) Process(src, path string, context map[string]any) (string, error) {
	data := map[string]any{"test_value": "1"}
	for k, v := range context {
		data[k] = v
	}

	tmpl, err := template.New(filepath.Base(path)).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", errors.Wrapf(err, "parsing template %s", path)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "rendering template %s", path)
	}
	return buf.String(), nil
}
