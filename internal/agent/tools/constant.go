package tools

// Keyword research settings
const (
	// PerSeedResultCap bounds how many ideas one seed keyword may
	// contribute to the aggregated report.
	PerSeedResultCap = 50

	// KeywordQueriesPerSecond paces the keyword-idea calls so a long
	// seed list does not hammer the planning service.
	KeywordQueriesPerSecond = 2
)

// Campaign construction settings
const (
	// DefaultCpcBidMicros is used for keywords with no bid annotation
	// in the idea document.
	DefaultCpcBidMicros int64 = 1_000_000 // 1.00 in account currency

	// DefaultIdeaCount is how many campaign ideas to generate when the
	// user does not ask for a specific number.
	DefaultIdeaCount = 3
)

// User-facing messages
const (
	MsgNoKeywordData = "No keyword data was found for the given seed keywords. Try different or broader seeds."
	MsgNoIdeasFile   = "No campaign ideas file exists yet. Generate campaign ideas first, then pick one to build."
	MsgIdeaNotFound  = "No campaign idea matching %q was found in the ideas file. Available ideas: %s"
)

// System prompt for idea generation
const ideaGenerationPrompt = `You are a helpful assistant whose job is to generate %d in-depth Google Ads campaign ideas based on the reference material supplied by the user.

Format every idea exactly like this, separated by a line of three dashes:

Name: <campaign name>
Budget: £<amount>/day
Keywords:
- <keyword> {<optional bid in micros>}
Negative Keywords:
- <keyword>
Headlines:
- <headline, at most 30 characters>
Descriptions:
- <description, at most 90 characters>
Final URL: <landing page URL>

Additional notes from the user: %s`
