package emitter

// versionsTemplate renders the generated package. It is kept in gofmt form so
// that formatting only normalises the entry list.
const versionsTemplate = `// Code generated by {{ .Tool }}. DO NOT EDIT.

// Package {{ .Package }} reports the versions of the packages installed
// alongside the root package. It is regenerated on every install and update.
package {{ .Package }}

// RootPackageName is the name of the package that owns the installation.
const RootPackageName = {{ quote .RootName }}

// Entry is one installed package and its version string.
type Entry struct {
	Name    string
	Version string
}

// Entries lists the production packages, then the development packages,
// then the root package.
var Entries = [...]Entry{
{{- range .Entries }}
	{ {{- quote .PackageName }}, {{ quote .Version -}} },
{{- end }}
}

// NotInstalledError is returned when a package is not part of the installation.
type NotInstalledError struct {
	PackageName string
}

func (e *NotInstalledError) Error() string {
	return "required package \"" + e.PackageName + "\" is not installed: cannot detect its version"
}

// Versions answers version queries for the installed packages.
type Versions struct{}

// GetVersion returns the version string of packageName in the form "version@reference".
func (Versions) GetVersion(packageName string) (string, error) {
	for _, e := range Entries {
		if e.Name == packageName {
			return e.Version, nil
		}
	}
	return "", &NotInstalledError{PackageName: packageName}
}

// GetVersion returns the version string of packageName in the form "version@reference".
func GetVersion(packageName string) (string, error) {
	return Versions{}.GetVersion(packageName)
}
`
