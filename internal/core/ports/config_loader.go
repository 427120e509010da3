package ports

import "go.trai.ch/modres/internal/core/domain"

// ConfigLoader defines the interface for loading resolver configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest configuration file and returns the options it describes,
	// layered on top of the defaults. Without a configuration file the defaults are returned.
	Load(cwd string) (domain.ResolverOptions, error)

	// DiscoverRoot returns the directory containing the nearest configuration file, or cwd.
	DiscoverRoot(cwd string) (string, error)
}
