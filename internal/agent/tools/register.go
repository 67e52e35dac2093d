package tools

import (
	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/artifact"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
)

// RegisterAll wires the full tool catalogue into a registry.
func RegisterAll(registry *agent.ToolRegistry, ads AdsAPI, llm *llmprovider.Manager, artifacts *artifact.Store, l pkgLog.Logger) {
	registry.Register(NewKeywordSearchTool(ads, artifacts, l))
	registry.Register(NewCampaignIdeasTool(llm, artifacts, l))
	registry.Register(NewCreateCampaignTool(ads, l))
	registry.Register(NewRemoveCampaignTool(ads, l))
	registry.Register(NewListCampaignsTool(ads, l))
	registry.Register(NewAddKeywordsTool(ads, l))
	registry.Register(NewRemoveKeywordsTool(ads, l))
	registry.Register(NewAddAdTool(ads, l))
	registry.Register(NewRemoveAdTool(ads, l))
	registry.Register(NewAddAdGroupTool(ads, l))
	registry.Register(NewRemoveAdGroupTool(ads, l))
	registry.Register(NewUpdateCampaignBudgetTool(ads, l))
	registry.Register(NewFetchReferenceURLsTool(artifacts, l))
}
