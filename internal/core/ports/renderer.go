package ports

import "go.trai.ch/modres/internal/core/domain"

// Renderer writes a batch of resolutions to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes results in input order.
	Render(results []domain.Resolution) error
}
