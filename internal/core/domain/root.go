package domain

// RootPackage describes the package that owns the project being processed.
//
// AliasOf is set when the descriptor is an alias wrapper presenting another
// descriptor under a different name or version. Wrappers may be nested.
type RootPackage struct {
	Name            string
	PrettyVersion   string
	SourceReference string
	AliasOf         *RootPackage
}

// Canonical follows the alias chain and returns the innermost descriptor.
func (r *RootPackage) Canonical() *RootPackage {
	pkg := r
	for pkg.AliasOf != nil {
		pkg = pkg.AliasOf
	}
	return pkg
}

// VersionString returns the "prettyVersion@sourceReference" value of the root package.
func (r *RootPackage) VersionString() string {
	return r.PrettyVersion + "@" + r.SourceReference
}
