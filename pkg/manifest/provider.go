package manifest

// ProviderKind identifies a system package manager.
type ProviderKind string

// Provider kind constants.
const (
	ProviderKindBrew ProviderKind = "brew"
	ProviderKindApt  ProviderKind = "apt"
)

// SystemPackageProvider describes how to install a system library
// through a platform package manager. Only meaningful on system
// library targets; locating the installed library is the system
// package-manager integration's job, not this core's.
type SystemPackageProvider struct {
	Kind     ProviderKind
	Packages []string
}

// Brew suggests installing the named Homebrew packages.
func Brew(packages ...string) SystemPackageProvider {
	return SystemPackageProvider{Kind: ProviderKindBrew, Packages: packages}
}

// Apt suggests installing the named apt packages.
func Apt(packages ...string) SystemPackageProvider {
	return SystemPackageProvider{Kind: ProviderKindApt, Packages: packages}
}
