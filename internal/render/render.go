package render

import (
	"bytes"
	"text/template"

	"github.com/aoe4-overlay/desktop-installer/pkg/entry"
	"github.com/pkg/errors"
)

// Entry renders the descriptor content an install run produces, for
// previewing and for drift detection against an installed file. The
// key order matches what desktop-file-edit emits for a file populated
// in the install sequence's order, so identical inputs give
// byte-identical output on every run.
func Entry(spec *entry.Spec) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("entry spec cannot be nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid entry spec")
	}

	tmpl, err := template.New("entry").Parse(entryTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse desktop entry template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{
		Spec:       spec,
		Categories: spec.CategoryList(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to render desktop entry")
	}
	return buf.Bytes(), nil
}

// templateData wraps the spec with the pre-rendered category list so
// the template stays free of formatting logic.
type templateData struct {
	*entry.Spec
	Categories string
}
