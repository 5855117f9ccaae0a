package module

import (
	"pressroom/internal/services/submissions/domain"
)

// Ports exposes the submission service port for cross module lookups
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
