package types

// Package is a package name with the repository it comes from. The
// repository is a display label only.
type Package struct {
	Name       string
	Repository string
}

// PackageSet maps package names to repositories and remembers the order
// in which names were first added.
type PackageSet struct {
	names   []string
	origins map[string]string
}

func NewPackageSet(pkgs ...Package) PackageSet {
	set := PackageSet{}
	for _, pkg := range pkgs {
		set.Add(pkg.Name, pkg.Repository)
	}
	return set
}

// Add inserts name or overwrites its repository if already present.
func (s *PackageSet) Add(name string, repository string) {
	if s.origins == nil {
		s.origins = map[string]string{}
	}
	if _, ok := s.origins[name]; !ok {
		s.names = append(s.names, name)
	}
	s.origins[name] = repository
}

func (s PackageSet) Has(name string) bool {
	_, ok := s.origins[name]
	return ok
}

func (s PackageSet) Origin(name string) (string, bool) {
	origin, ok := s.origins[name]
	return origin, ok
}

func (s PackageSet) Len() int {
	return len(s.names)
}

func (s PackageSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Packages returns the members in insertion order.
func (s PackageSet) Packages() []Package {
	out := make([]Package, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, Package{Name: name, Repository: s.origins[name]})
	}
	return out
}

// Map returns a name to repository copy.
func (s PackageSet) Map() map[string]string {
	out := make(map[string]string, len(s.origins))
	for name, origin := range s.origins {
		out[name] = origin
	}
	return out
}

// Event is one recorded package-set transition. Events are not modified
// after loading.
type Event struct {
	ID             int
	Action         Action
	InPkgs         PackageSet
	OutPkgs        PackageSet
	InitialRelease Release
	Release        Release
	Architectures  []string
}

// InstalledSet is the fixed set of package names present before planning.
type InstalledSet map[string]struct{}

func NewInstalledSet(names ...string) InstalledSet {
	set := make(InstalledSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s InstalledSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
