package module

import (
	"pressroom/internal/services/issues/domain"
)

// Ports exposes the issue service port for cross module lookups
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
