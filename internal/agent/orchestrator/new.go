package orchestrator

import (
	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

type Orchestrator struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	baseURL  string
}

func New(llm *llmprovider.Manager, registry *agent.ToolRegistry, l pkgLog.Logger, baseURL string) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		l:        l,
		baseURL:  baseURL,
	}
}
