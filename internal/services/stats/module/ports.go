package module

import (
	"reposcout/internal/services/stats/domain"
)

// Ports exposed by the stats module
type Ports struct {
	Recorder domain.RecorderPort
	Reader   domain.ReaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
