// Package deck holds the built-in card catalog. Cards here carry the
// full answer key (correctness, points, explanation); only the prompt
// side ever crosses the wire to a player.
package deck

import "github.com/decklab/chainquiz/internal/chainquiz"

// Answer is one option on a catalog card, including its answer key.
type Answer struct {
	Text        string
	Correct     bool
	Points      int
	Explanation string
}

// Card is a full catalog card. Prompt converts it to the wire shape.
type Card struct {
	Title       string
	Description string
	Category    string
	Impact      string
	Difficulty  chainquiz.Difficulty
	Answers     []Answer
}

// Prompt returns the player-visible view of the card. Answer order is
// preserved: the index a player submits is positional.
func (c Card) Prompt() chainquiz.Card {
	answers := make([]chainquiz.Answer, len(c.Answers))
	for i, a := range c.Answers {
		answers[i] = chainquiz.Answer{Text: a.Text}
	}
	return chainquiz.Card{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  c.Difficulty,
		Impact:      c.Impact,
		Answers:     answers,
	}
}

// Catalog returns all built-in cards grouped by difficulty.
func Catalog() map[chainquiz.Difficulty][]Card {
	return map[chainquiz.Difficulty][]Card{
		chainquiz.DifficultyEasy:         easyCards,
		chainquiz.DifficultyIntermediate: intermediateCards,
		chainquiz.DifficultyHard:         hardCards,
	}
}

var easyCards = []Card{
	{
		Title:       "Inventory Overstock Alert",
		Description: "The warehouse is still full of winter stock and it is already spring. What do you do?",
		Category:    "supply_chain",
		Impact:      "Prevents dead stock and frees up warehouse space",
		Difficulty:  chainquiz.DifficultyEasy,
		Answers: []Answer{
			{Text: "A) Hold the inventory and hope it sells next season",
				Explanation: "Storage costs accumulate and seasonal goods lose value."},
			{Text: "B) Cut replenishment orders and run a clearance sale", Correct: true, Points: 3,
				Explanation: "Clearing overstock limits losses and frees working capital."},
			{Text: "C) Ship everything to discount outlets immediately",
				Explanation: "Too aggressive; it erodes the brand for a one-time gain."},
			{Text: "D) Donate the lot for a tax write-off",
				Explanation: "Discounted sales still recover revenue a write-off does not."},
		},
	},
	{
		Title:       "Supplier Shortage",
		Description: "Your primary supplier had a factory fire and cannot deliver next month's order. What's your move?",
		Category:    "supply_chain",
		Impact:      "Keeps the business running and prevents stockouts",
		Difficulty:  chainquiz.DifficultyEasy,
		Answers: []Answer{
			{Text: "A) Activate backup suppliers right away", Correct: true, Points: 3,
				Explanation: "Qualified backup suppliers exist exactly for this moment."},
			{Text: "B) Wait and hope they recover quickly",
				Explanation: "Passive waiting converts a supplier problem into a customer problem."},
			{Text: "C) Tell customers the product is out of stock",
				Explanation: "Customers lost to competitors rarely come back."},
			{Text: "D) Raise prices to suppress demand",
				Explanation: "Punishes customers for your supply failure."},
		},
	},
	{
		Title:       "Slow-Moving SKU",
		Description: "A product barely sells despite prime shelf placement. What action do you take?",
		Category:    "merchant_strategy",
		Impact:      "Improves inventory turnover and cash flow",
		Difficulty:  chainquiz.DifficultyEasy,
		Answers: []Answer{
			{Text: "A) Leave it on the shelf longer",
				Explanation: "Shelf space is scarce; a dead SKU crowds out winners."},
			{Text: "B) Delist it the same week",
				Explanation: "Premature; the product may only be mispriced or mismarketed."},
			{Text: "C) Study customer feedback, then adjust price and marketing", Correct: true, Points: 3,
				Explanation: "Data-driven correction beats guessing at the cause."},
			{Text: "D) Double the order to get a volume discount",
				Explanation: "Buying more of what does not sell compounds the problem."},
		},
	},
	{
		Title:       "Demand Surge",
		Description: "A social media post sends demand for one product up 400% overnight. How do you respond?",
		Category:    "supply_chain",
		Impact:      "Captures windfall demand without overcommitting",
		Difficulty:  chainquiz.DifficultyEasy,
		Answers: []Answer{
			{Text: "A) Sign a long-term supply contract at the new volume",
				Explanation: "Committing long-term to a spike is how overstock stories start."},
			{Text: "B) Ignore it, the forecast says otherwise",
				Explanation: "Forecasts don't see viral demand; the shelves are already empty."},
			{Text: "C) Triple the price while stock lasts",
				Explanation: "Short-term margin, long-term reputation damage."},
			{Text: "D) Expedite replenishment while watching whether the spike holds", Correct: true, Points: 3,
				Explanation: "Serve the surge, but treat virality as a spike until proven otherwise."},
		},
	},
}

var intermediateCards = []Card{
	{
		Title:       "Sourcing Complexity",
		Description: "A key component is sourced from a single region now facing export restrictions. What is the right strategy?",
		Category:    "risk_management",
		Impact:      "Reduces geopolitical exposure in the supply base",
		Difficulty:  chainquiz.DifficultyIntermediate,
		Answers: []Answer{
			{Text: "A) Build a one-year stockpile from the current supplier",
				Explanation: "A stockpile buys time but ties up capital and expires."},
			{Text: "B) Qualify alternate suppliers in a second region before the restrictions bite", Correct: true, Points: 6,
				Explanation: "Dual sourcing costs margin now and saves the product line later."},
			{Text: "C) Redesign the product to drop the component",
				Explanation: "A multi-year answer to a this-quarter problem."},
			{Text: "D) Lobby against the restrictions",
				Explanation: "Outside your control and far too slow."},
		},
	},
	{
		Title:       "Private Label Strategy",
		Description: "Your best-selling branded category has thin margins. Should you launch a private label alternative?",
		Category:    "merchant_strategy",
		Impact:      "Improves category margin without losing shoppers",
		Difficulty:  chainquiz.DifficultyIntermediate,
		Answers: []Answer{
			{Text: "A) Drop the branded product entirely",
				Explanation: "Brand loyalists will follow the brand to a competitor."},
			{Text: "B) Demand better terms from the brand or delist",
				Explanation: "Ultimatums against must-carry brands usually fail."},
			{Text: "C) Accept the thin margin as the cost of traffic",
				Explanation: "Defensible, but leaves the margin opportunity on the table."},
			{Text: "D) Launch a private label tier priced below the brand leader", Correct: true, Points: 6,
				Explanation: "Private label captures margin and keeps price-sensitive shoppers in the category."},
		},
	},
	{
		Title:       "Last-Mile Delivery Crisis",
		Description: "Your courier partner raised rates 30% and service quality is slipping. What do you do?",
		Category:    "supply_chain",
		Impact:      "Controls the most expensive leg of fulfillment",
		Difficulty:  chainquiz.DifficultyIntermediate,
		Answers: []Answer{
			{Text: "A) Pass the full increase on to customers",
				Explanation: "Delivery price is a conversion killer in checkout."},
			{Text: "B) Build an in-house delivery fleet this quarter",
				Explanation: "Right long-term question, wrong timeline."},
			{Text: "C) Split volume across two carriers and renegotiate from strength", Correct: true, Points: 6,
				Explanation: "Carrier diversification restores leverage and caps the blast radius."},
			{Text: "D) Absorb the cost and wait for rates to normalize",
				Explanation: "Rates that go up under no competitive pressure rarely come back down."},
		},
	},
	{
		Title:       "Category Performance Divergence",
		Description: "Two categories share a buyer and a budget: one is growing 20%, one shrinking 15%. How do you allocate?",
		Category:    "merchant_strategy",
		Impact:      "Puts working capital behind momentum",
		Difficulty:  chainquiz.DifficultyIntermediate,
		Answers: []Answer{
			{Text: "A) Shift budget toward the grower and investigate the decline's root cause", Correct: true, Points: 6,
				Explanation: "Fund momentum first; diagnose, don't subsidize, the decline."},
			{Text: "B) Split the budget evenly to stay balanced",
				Explanation: "Even splits are fair to categories and unfair to shareholders."},
			{Text: "C) Double down on the decliner to win it back",
				Explanation: "Turnarounds need a diagnosis before they need money."},
			{Text: "D) Exit the declining category immediately",
				Explanation: "A 15% decline may be fixable assortment, not a dead market."},
		},
	},
}

var hardCards = []Card{
	{
		Title:       "Disruption: AI-Powered Competitive Entry",
		Description: "A well-funded entrant uses algorithmic pricing and same-day fulfillment to undercut your core assortment. What's the counter?",
		Category:    "merchant_strategy",
		Impact:      "Defends share against a structurally cheaper rival",
		Difficulty:  chainquiz.DifficultyHard,
		Answers: []Answer{
			{Text: "A) Match their prices across the assortment",
				Explanation: "A price war against a cheaper cost structure is unwinnable."},
			{Text: "B) Wait for their funding to run out",
				Explanation: "Hope is not a moat; well-funded entrants outlast waiting incumbents."},
			{Text: "C) Acquire them at any price",
				Explanation: "Panic acquisitions transfer your balance sheet, not their advantage."},
			{Text: "D) Compete on curation, service, and speed where their model is weak", Correct: true, Points: 10,
				Explanation: "You cannot out-algorithm them on price; change the axis of competition."},
		},
	},
	{
		Title:       "Geographic Expansion Risk",
		Description: "Your board wants entry into a new country where logistics costs are double and regulation is unfamiliar. How do you proceed?",
		Category:    "risk_management",
		Impact:      "Bounds downside while testing a new market",
		Difficulty:  chainquiz.DifficultyHard,
		Answers: []Answer{
			{Text: "A) Replicate the domestic model at full scale",
				Explanation: "Exporting assumptions along with products is the classic expansion failure."},
			{Text: "B) Pilot with a local 3PL partner and a narrow assortment first", Correct: true, Points: 10,
				Explanation: "A bounded pilot buys real market data at a fraction of full-entry cost."},
			{Text: "C) Decline the expansion outright",
				Explanation: "Refusing to test forfeits the option value of the market."},
			{Text: "D) Enter by acquiring the local market leader",
				Explanation: "The most expensive way to learn a market you don't yet understand."},
		},
	},
	{
		Title:       "Supply Chain Resilience Paradox",
		Description: "Finance wants inventory cut 25% for cash flow; operations wants buffers raised after last year's disruptions. Whose plan wins?",
		Category:    "risk_management",
		Impact:      "Balances cash efficiency against disruption exposure",
		Difficulty:  chainquiz.DifficultyHard,
		Answers: []Answer{
			{Text: "A) Cut 25% across the board as finance asks",
				Explanation: "Uniform cuts hit your most fragile supply lines hardest."},
			{Text: "B) Raise all buffers as operations asks",
				Explanation: "Blanket buffers trap cash against risks most SKUs don't face."},
			{Text: "C) Segment SKUs: cut buffers on stable items, raise them on volatile, critical ones", Correct: true, Points: 10,
				Explanation: "Resilience and efficiency are SKU-level decisions, not a single company-wide dial."},
			{Text: "D) Split the difference at 12.5%",
				Explanation: "Compromise arithmetic satisfies neither objective."},
		},
	},
	{
		Title:       "Recession Playbook",
		Description: "Leading indicators point to a consumer downturn in two quarters. What do you prepare now?",
		Category:    "merchant_strategy",
		Impact:      "Positions the assortment before demand turns",
		Difficulty:  chainquiz.DifficultyHard,
		Answers: []Answer{
			{Text: "A) Keep the plan, forecasts have been wrong before",
				Explanation: "Preparing costs little if wrong; not preparing costs a season if right."},
			{Text: "B) Shift open-to-buy toward value tiers and shorten supplier commitments", Correct: true, Points: 10,
				Explanation: "Downturn shoppers trade down; flexibility is cheap before the turn and expensive after."},
			{Text: "C) Cut all discretionary categories now",
				Explanation: "Preemptive amputation concedes revenue the downturn hasn't taken yet."},
			{Text: "D) Raise prices ahead of the slump to bank margin",
				Explanation: "Raising prices into weakening demand accelerates the decline."},
		},
	},
}
