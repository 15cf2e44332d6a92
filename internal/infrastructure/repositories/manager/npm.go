// Package manager contains the package-manager implementations and the
// lockfile-based detection rules.
package manager

// NpmRepository invokes the npm CLI. npm is the default manager: it is
// chosen whenever no other manager's lockfile is present, without checking
// for package-lock.json.
type NpmRepository struct{}

// NewNpmRepository creates the npm manager.
func NewNpmRepository() *NpmRepository {
	return &NpmRepository{}
}

// Name returns "npm".
func (it *NpmRepository) Name() string {
	return "npm"
}

// Detect always returns true; npm is the unverified fallback.
func (it *NpmRepository) Detect(_ string) bool {
	return true
}

// InstallCommand returns `npm install --save <packages...>`.
func (it *NpmRepository) InstallCommand(packages []string) []string {
	return append([]string{"npm", "install", "--save"}, packages...)
}
