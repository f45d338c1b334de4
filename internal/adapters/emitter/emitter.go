// Package emitter renders the generated version file.
package emitter

import (
	"bytes"
	"go/format"
	"strconv"
	"text/template"

	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
)

var tmpl = template.Must(template.New("versions").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(versionsTemplate))

type templateData struct {
	Tool     string
	Package  string
	RootName string
	Entries  []domain.VersionEntry
}

// GoEmitter implements ports.Emitter by rendering Go source.
type GoEmitter struct{}

// NewGoEmitter creates a new GoEmitter.
func NewGoEmitter() *GoEmitter {
	return &GoEmitter{}
}

// Render returns the formatted source of the version file for versions.
// Identical inputs always produce identical bytes.
func (e *GoEmitter) Render(rootName string, versions *domain.VersionMap) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, templateData{
		Tool:     domain.ToolName,
		Package:  domain.NamespacePath,
		RootName: rootName,
		Entries:  versions.Entries(),
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrArtifactRenderFailed.Error())
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactRenderFailed.Error()), "root", rootName)
	}
	return src, nil
}
