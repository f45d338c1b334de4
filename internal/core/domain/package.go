package domain

// LockedPackage is a single resolved dependency as recorded in the lock data.
type LockedPackage struct {
	Name    string
	Version string

	// SourceReference and DistReference are nil when the lock record has no
	// such reference. A present empty reference is kept as a pointer to "".
	SourceReference *string
	DistReference   *string
}

// Reference returns the source reference, falling back to the dist reference
// and finally to the empty string.
func (p LockedPackage) Reference() string {
	if p.SourceReference != nil {
		return *p.SourceReference
	}
	if p.DistReference != nil {
		return *p.DistReference
	}
	return ""
}

// VersionString returns the "version@reference" value stored for the package.
func (p LockedPackage) VersionString() string {
	return p.Version + "@" + p.Reference()
}

// LockSnapshot is the resolved dependency set read from the host lock data.
type LockSnapshot struct {
	Packages    []LockedPackage
	PackagesDev []LockedPackage
}

// Len returns the number of production and development records.
func (s *LockSnapshot) Len() int {
	return len(s.Packages) + len(s.PackagesDev)
}
