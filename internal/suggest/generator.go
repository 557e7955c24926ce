package suggest

import (
	"fmt"
	"strings"

	"github.com/RevCBH/refinery/internal/draft"
)

// Generator produces suggestions from the findings in a working state.
// Generation is a pure function of its input: suggestion IDs are derived
// from the finding ID and strategy name, so regenerating on an unchanged
// state yields an identical set.
type Generator struct{}

// NewGenerator creates a suggestion generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Findings is the read-only view of the working state the generator
// consumes. The refinement loop owns the state; the generator never
// mutates it.
type Findings struct {
	EdgeCases              []draft.EdgeCase
	Contradictions         []draft.Contradiction
	CompletenessGaps       []draft.CompletenessGap
	CompressedRequirements []draft.CompressedRequirement
}

// All generates suggestions for every category in a fixed order:
// edge cases, contradictions, gaps, compressions.
func (g *Generator) All(f Findings) []Suggestion {
	var out []Suggestion
	out = append(out, g.ForEdgeCases(f.EdgeCases)...)
	out = append(out, g.ForContradictions(f.Contradictions)...)
	out = append(out, g.ForGaps(f.CompletenessGaps)...)
	out = append(out, g.ForCompressions(f.CompressedRequirements)...)
	return out
}

// ForEdgeCases suggests handling strategies for unhandled edge cases.
// Cases already marked handled are skipped.
func (g *Generator) ForEdgeCases(cases []draft.EdgeCase) []Suggestion {
	var out []Suggestion

	for _, ec := range cases {
		if ec.Handled {
			continue
		}

		desc := strings.ToLower(ec.Description)
		var strategies []strategy
		for _, group := range edgeCaseStrategies {
			if containsAny(desc, group.keywords) {
				strategies = append(strategies, group.strategies...)
			}
		}
		if len(strategies) == 0 {
			strategies = edgeCaseFallback
		}

		for _, s := range strategies {
			out = append(out, Suggestion{
				ID:          findingSuggestionID(ec.ID, s.name),
				Type:        TypeEdgeCaseHandling,
				Title:       "Handle: " + truncate(ec.Description, 50),
				Description: s.description,
				Content: Content{
					EdgeCase: &EdgeCasePayload{
						EdgeCaseID:     ec.ID,
						Strategy:       s.name,
						Handling:       s.description,
						Implementation: s.detail,
					},
				},
				Confidence:   s.confidence,
				Impact:       s.impact,
				Effort:       s.effort,
				Rationale:    s.rationale,
				Examples:     s.examples,
				RelatedItems: relatedItems(ec.RelatedRequirement),
			})
		}
	}

	return out
}

// ForContradictions suggests resolution strategies for unresolved
// contradictions. Resolved ones are skipped. The merge and conditional
// strategies always apply, so every unresolved contradiction yields
// at least two suggestions.
func (g *Generator) ForContradictions(contradictions []draft.Contradiction) []Suggestion {
	var out []Suggestion

	for _, c := range contradictions {
		if c.Resolved {
			continue
		}

		desc := strings.ToLower(c.Description)
		var strategies []strategy
		if strings.Contains(desc, "priority") || strings.Contains(desc, "precedence") {
			strategies = append(strategies, priorityResolution)
		}
		if strings.Contains(desc, "performance") && strings.Contains(desc, "security") {
			strategies = append(strategies, performanceSecurityBalance)
		}
		if strings.Contains(desc, "user") && (strings.Contains(desc, "admin") || strings.Contains(desc, "system")) {
			strategies = append(strategies, roleBasedResolution)
		}
		strategies = append(strategies, requirementsMerge, conditionalRequirements)

		for _, s := range strategies {
			out = append(out, Suggestion{
				ID:          findingSuggestionID(c.ID, s.name),
				Type:        TypeContradictionResolution,
				Title:       "Resolve: " + truncate(c.Description, 50),
				Description: s.description,
				Content: Content{
					Contradiction: &ContradictionPayload{
						ContradictionID:      c.ID,
						Strategy:             s.name,
						Resolution:           s.detail,
						AffectedRequirements: affectedRequirements(c),
					},
				},
				Confidence: s.confidence,
				Impact:     s.impact,
				Effort:     s.effort,
				Rationale:  s.rationale,
				Examples:   s.examples,
			})
		}
	}

	return out
}

// ForGaps suggests new requirements to fill completeness gaps.
func (g *Generator) ForGaps(gaps []draft.CompletenessGap) []Suggestion {
	var out []Suggestion

	for _, gap := range gaps {
		desc := strings.ToLower(gap.Description)

		var matched []gapStrategy
		for _, gs := range gapStrategies {
			if containsAny(desc, gs.keywords) {
				matched = append(matched, gs)
			}
		}
		if len(matched) == 0 {
			matched = []gapStrategy{genericGapStrategy(gap)}
		}

		for _, gs := range matched {
			out = append(out, Suggestion{
				ID:          findingSuggestionID(gap.ID, strings.ToLower(strings.ReplaceAll(gs.title, " ", "_"))),
				Type:        TypeCompletenessAddition,
				Title:       "Add: " + gs.title,
				Description: gs.description,
				Content: Content{
					Completeness: &CompletenessPayload{
						GapID:         gap.ID,
						Requirement:   gs.requirement,
						Justification: gs.justification,
					},
				},
				Confidence: gs.confidence,
				Impact:     gs.impact,
				Effort:     gs.effort,
				Rationale:  gs.rationale,
				Examples:   gs.examples,
			})
		}
	}

	return out
}

// genericGapStrategy fills a gap no keyword group matched with a
// requirement derived from the gap itself.
func genericGapStrategy(gap draft.CompletenessGap) gapStrategy {
	impact := draft.ImpactMedium
	if gap.Importance == draft.SeverityHigh || gap.Importance == draft.SeverityCritical {
		impact = draft.ImpactHigh
	}

	content := gap.SuggestedRequirement
	if content == "" {
		content = "System must address the following requirement: " + gap.Description
	}

	category := gap.Category
	if category == "" {
		category = "general"
	}

	return gapStrategy{
		title:       "Address: " + truncate(gap.Description, 50),
		description: "Add requirement to address identified gap: " + gap.Description,
		requirement: draft.Requirement{
			Type:     "functional",
			Content:  content,
			Priority: "medium",
			Category: category,
		},
		justification: "Addresses identified completeness gap in specification",
		confidence:    0.60,
		impact:        impact,
		effort:        draft.EffortMedium,
		rationale:     "Completeness gaps should be addressed to ensure comprehensive coverage",
	}
}

// ForCompressions suggests refinements for compressed requirements whose
// compression looks too aggressive, lossy, or unclear. When no specific
// issue is detected a low-confidence review suggestion is still emitted,
// so no compression goes entirely unreviewed.
func (g *Generator) ForCompressions(compressions []draft.CompressedRequirement) []Suggestion {
	var out []Suggestion

	for _, cr := range compressions {
		var found bool

		if cr.Confidence < 0.7 {
			found = true
			out = append(out, compressionSuggestion(cr, strategy{
				name:        "detail_preservation",
				description: "Expand compressed requirement to preserve important details",
				detail:      expandCompressed(cr),
				confidence:  0.75,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortLow,
				rationale:   "Overly aggressive compression can lose important details",
			}, "Reduce Compression", "Better preserves original intent and details"))
		}

		if detailLoss(cr) {
			found = true
			out = append(out, compressionSuggestion(cr, strategy{
				name:        "detail_recovery",
				description: "Add back important details that were lost in compression",
				detail:      cr.CompressedText + " [details recovered from original requirements]",
				confidence:  0.80,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortLow,
				rationale:   "Important details should not be lost during compression",
			}, "Recover Lost Details", "Restores important details while maintaining conciseness"))
		}

		if clarityIssues(cr.CompressedText) {
			found = true
			out = append(out, compressionSuggestion(cr, strategy{
				name:        "clarity_improvement",
				description: "Improve clarity and readability of compressed requirement",
				detail:      improveClarity(cr.CompressedText),
				confidence:  0.70,
				impact:      draft.ImpactLow,
				effort:      draft.EffortLow,
				rationale:   "Clear requirements are easier to understand and implement",
			}, "Improve Clarity", "Better readability and understanding"))
		}

		if !found {
			out = append(out, compressionSuggestion(cr, strategy{
				name:        "compression_review",
				description: "Review compressed requirement against its originals",
				detail:      cr.CompressedText,
				confidence:  0.60,
				impact:      draft.ImpactLow,
				effort:      draft.EffortLow,
				rationale:   "Compressed requirements should be spot-checked for lost nuance",
			}, "Review Compression", "Confirms the compression preserved intent"))
		}
	}

	return out
}

func compressionSuggestion(cr draft.CompressedRequirement, s strategy, title, qualityGain string) Suggestion {
	return Suggestion{
		ID:          findingSuggestionID(cr.ID, s.name),
		Type:        TypeCompressionRefinement,
		Title:       "Refine: " + title,
		Description: s.description,
		Content: Content{
			Compression: &CompressionPayload{
				CompressionID:   cr.ID,
				RefinedText:     s.detail,
				ImprovementType: s.name,
				QualityGain:     qualityGain,
			},
		},
		Confidence: s.confidence,
		Impact:     s.impact,
		Effort:     s.effort,
		Rationale:  s.rationale,
	}
}

// detailLoss flags compressions whose text is under 30% of the combined
// original length.
func detailLoss(cr draft.CompressedRequirement) bool {
	var original int
	for _, req := range cr.OriginalRequirements {
		original += len(req)
	}
	if original == 0 {
		return false
	}
	return len(cr.CompressedText) < original*3/10
}

// clarityIssues applies cheap readability heuristics.
func clarityIssues(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	switch {
	case len(strings.Fields(text)) > 50:
		return true
	case strings.Count(text, ",") > 5:
		return true
	case strings.Contains(text, " and ") && strings.Contains(text, " or "):
		return true
	case !strings.HasSuffix(trimmed, "."):
		return true
	}
	return false
}

// expandCompressed adds back the strongest original clauses ("must"
// statements) to an over-compressed requirement.
func expandCompressed(cr draft.CompressedRequirement) string {
	var keyDetails []string
	for _, req := range cr.OriginalRequirements {
		if strings.Contains(strings.ToLower(req), "must") {
			keyDetails = append(keyDetails, req)
			if len(keyDetails) == 2 {
				break
			}
		}
	}
	if len(keyDetails) == 0 {
		return cr.CompressedText
	}
	return cr.CompressedText + " Specifically: " + strings.Join(keyDetails, "; ")
}

// improveClarity adds terminal punctuation and splits overlong sentences.
func improveClarity(text string) string {
	improved := text
	if !strings.HasSuffix(strings.TrimSpace(improved), ".") {
		improved += "."
	}
	words := strings.Fields(improved)
	if len(words) > 30 {
		mid := len(words) / 2
		improved = strings.Join(words[:mid], " ") + ". " + strings.Join(words[mid:], " ")
	}
	return improved
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func relatedItems(items ...string) []string {
	var out []string
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

func affectedRequirements(c draft.Contradiction) []string {
	var out []string
	if c.Requirement1 != "" {
		out = append(out, c.Requirement1)
	}
	if c.Requirement2 != "" {
		out = append(out, c.Requirement2)
	}
	return out
}

// findingSuggestionID builds a deterministic suggestion ID from the
// finding and strategy, keeping regeneration idempotent.
func findingSuggestionID(findingID, strategy string) string {
	return fmt.Sprintf("%s/%s", findingID, strategy)
}
