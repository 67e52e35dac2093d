package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/artifact"
	"github.com/denissa4/ads-manager/internal/ideas"
	"github.com/denissa4/ads-manager/pkg/googleads"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
	"github.com/google/uuid"
)

// CreateCampaignTool builds a full campaign (budget, campaign, ad
// group, keywords, negatives, ad) from one idea in the session's
// generated ideas file. Mutations are sequential with no rollback; a
// failure reports what was already created.
type CreateCampaignTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewCreateCampaignTool creates a new campaign construction tool.
func NewCreateCampaignTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &CreateCampaignTool{ads: ads, l: l}
}

func (t *CreateCampaignTool) Name() string {
	return "create_campaign"
}

func (t *CreateCampaignTool) Description() string {
	return "Create a paused Google Ads search campaign from one of the previously generated campaign ideas, selected by name. Creates the budget, campaign, ad group, keywords, negative keyword set and a paused responsive search ad."
}

func (t *CreateCampaignTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"idea_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the campaign idea to build, matched case-insensitively against the ideas file",
			},
		},
		"required": []string{"idea_name"},
	}
}

func (t *CreateCampaignTool) RequiresAuth() bool { return true }

func (t *CreateCampaignTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	ideaName, err := stringParam(params, "idea_name")
	if err != nil {
		return nil, err
	}

	auth, sess, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	ideasFile := sess.IdeasFile()
	if ideasFile == "" {
		return MsgNoIdeasFile, nil
	}

	raw, err := os.ReadFile(ideasFile)
	if err != nil {
		t.l.Errorf(ctx, "Failed to read ideas file %s: %v", ideasFile, err)
		return fmt.Sprintf("The campaign ideas file could not be read: %v", err), nil
	}

	parsed := ideas.Parse(string(raw))
	idea, ok := ideas.FindIdea(parsed, ideaName)
	if !ok {
		names := make([]string, 0, len(parsed))
		for _, i := range parsed {
			names = append(names, i.Name)
		}
		return fmt.Sprintf(MsgIdeaNotFound, ideaName, strings.Join(names, ", ")), nil
	}

	return t.build(ctx, auth, idea), nil
}

// build runs the mutation sequence. Every step failure becomes a
// descriptive result naming the resources already created, since prior
// steps are not rolled back.
func (t *CreateCampaignTool) build(ctx context.Context, auth googleads.UserAuth, idea ideas.Idea) interface{} {
	suffix := uuid.New().String()[:6]
	created := map[string]string{}

	budgetMicros := googleads.RoundBidMicros(int64(idea.BudgetDaily * 1_000_000))
	if budgetMicros <= 0 {
		budgetMicros = googleads.BillableUnitMicros
	}

	budgetName := fmt.Sprintf("%s Budget %s", idea.Name, suffix)
	budget, err := t.ads.CreateCampaignBudget(ctx, auth, budgetName, budgetMicros)
	if err != nil {
		return t.failure(ctx, "campaign budget", err, created)
	}
	created["budget"] = budget

	campaign, err := t.ads.CreateCampaign(ctx, auth, fmt.Sprintf("%s %s", idea.Name, suffix), budget)
	if err != nil {
		return t.failure(ctx, "campaign", err, created)
	}
	created["campaign"] = campaign

	adGroup, err := t.ads.CreateAdGroup(ctx, auth, campaign, fmt.Sprintf("%s Ad Group %s", idea.Name, suffix), DefaultCpcBidMicros)
	if err != nil {
		return t.failure(ctx, "ad group", err, created)
	}
	created["ad_group"] = adGroup

	if len(idea.Keywords) > 0 {
		keywords := make([]googleads.NewKeyword, 0, len(idea.Keywords))
		for _, kw := range idea.Keywords {
			bid := kw.BidMicros
			if bid == 0 {
				bid = DefaultCpcBidMicros
			}
			keywords = append(keywords, googleads.NewKeyword{
				Text:         kw.Text,
				CpcBidMicros: googleads.RoundBidMicros(bid),
			})
		}
		if _, err := t.ads.CreateAdGroupKeywords(ctx, auth, adGroup, keywords); err != nil {
			return t.failure(ctx, "keywords", err, created)
		}
		created["keywords"] = fmt.Sprintf("%d created", len(keywords))
	}

	if len(idea.Negatives) > 0 {
		setName := fmt.Sprintf("%s Negatives %s", idea.Name, suffix)
		sharedSet, err := t.ads.CreateSharedNegativeSet(ctx, auth, setName, idea.Negatives, campaign)
		if err != nil {
			return t.failure(ctx, "negative keyword set", err, created)
		}
		created["negative_keyword_set"] = sharedSet
	}

	if len(idea.Headlines) > 0 && len(idea.Descriptions) > 0 && idea.FinalURL != "" {
		headlines := sanitizeAll(idea.Headlines)
		descriptions := sanitizeAll(idea.Descriptions)
		ad, err := t.ads.CreateResponsiveSearchAd(ctx, auth, adGroup, headlines, descriptions, idea.FinalURL)
		if err != nil {
			return t.failure(ctx, "responsive search ad", err, created)
		}
		created["ad"] = ad
	}

	return map[string]interface{}{
		"status":    "created (campaign and ad are PAUSED until reviewed)",
		"idea":      idea.Name,
		"resources": created,
	}
}

func (t *CreateCampaignTool) failure(ctx context.Context, step string, err error, created map[string]string) string {
	t.l.Warnf(ctx, "Campaign construction failed at %s: %v", step, err)
	msg := fmt.Sprintf("Creating the %s failed: %v.", step, err)
	if len(created) > 0 {
		msg += fmt.Sprintf(" Already created (not rolled back): %v", created)
	}
	return msg
}

func sanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if clean := artifact.Sanitize(s); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
