package module

import (
	"pressroom/internal/services/authors/domain"
)

// Ports exposes the author service port for cross module lookups
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
