package types

// EventDataFile is the on-disk layout of a package event data file. JSON
// files decode through the same tags.
type EventDataFile struct {
	PackageInfo []EventRecord `yaml:"packageinfo"`
}

type EventRecord struct {
	ID             int               `yaml:"id"`
	Action         *int              `yaml:"action"`
	InPackageSet   *PackageSetRecord `yaml:"in_packageset"`
	OutPackageSet  *PackageSetRecord `yaml:"out_packageset"`
	InitialRelease *ReleaseRecord    `yaml:"initial_release"`
	Release        *ReleaseRecord    `yaml:"release"`
	Architectures  []string          `yaml:"architectures,omitempty"`
}

type PackageSetRecord struct {
	SetID   int              `yaml:"set_id,omitempty"`
	Package *[]PackageRecord `yaml:"package"`
}

type PackageRecord struct {
	Name       string  `yaml:"name"`
	Repository *string `yaml:"repository"`
}

type ReleaseRecord struct {
	MajorVersion *int `yaml:"major_version"`
	MinorVersion *int `yaml:"minor_version"`
}
