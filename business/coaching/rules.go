package coaching

import (
	"fmt"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
)

// Rule is one independent predicate together with the recommendation it
// emits. Steps and examples are fixed per rule; only the description may
// interpolate measured values.
type Rule struct {
	Title    string
	Category Category
	Priority Priority
	When     func(*analysis.Bundle) bool
	Describe func(*analysis.Bundle) string
	Steps    []string
	Examples []string
}

func (r Rule) build(bundle *analysis.Bundle) Recommendation {
	return Recommendation{
		Category:        r.Category,
		Priority:        r.Priority,
		Title:           r.Title,
		Description:     r.Describe(bundle),
		ActionableSteps: r.Steps,
		Examples:        r.Examples,
	}
}

// ruleSet returns the full rule table in its fixed evaluation order: emotion
// rules, speech rules, text rules, then cross-modality holistic rules. The
// order determines which duplicate survives deduplication.
func ruleSet(t Thresholds) []Rule {
	return []Rule{

		// Emotion rules.
		{
			Title:    "Build Emotional Confidence",
			Category: CategoryEmotionalIntelligence,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				if b.Emotion.Degraded() {
					return false
				}
				dominant := b.Emotion.Summary.DominantEmotion
				return dominant == "fear" || dominant == "sad"
			},
			Describe: func(b *analysis.Bundle) string {
				return fmt.Sprintf("Your predominant emotion (%s) suggests room for confidence building. Practice positive visualization before presentations.",
					b.Emotion.Summary.DominantEmotion)
			},
			Steps: []string{
				"Practice power poses before presenting",
				"Use positive self-talk and affirmations",
				"Focus on the value you're providing to your audience",
				"Record yourself practicing to build familiarity",
			},
			Examples: []string{
				"Stand with feet shoulder-width apart, hands on hips for 2 minutes before presenting",
				"Remind yourself: 'I have valuable insights to share'",
				"Think about how your solution will help the client succeed",
			},
		},
		{
			Title:    "Increase Emotional Engagement",
			Category: CategoryEngagement,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				return !b.Emotion.Degraded() && b.Emotion.Summary.Engagement < t.LowEngagement
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your emotional expression could be more engaging. Consider using more animated facial expressions and gestures."
			},
			Steps: []string{
				"Practice varying your facial expressions",
				"Use hand gestures to emphasize key points",
				"Make more frequent eye contact with your audience",
				"Smile genuinely when discussing positive outcomes",
			},
			Examples: []string{
				"Raise eyebrows when sharing surprising statistics",
				"Use open palm gestures when explaining benefits",
				"Nod enthusiastically when discussing client success stories",
			},
		},
		{
			Title:    "Improve Emotional Consistency",
			Category: CategoryPresentationStyle,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				return !b.Emotion.Degraded() && b.Emotion.Summary.Stability < t.LowStability
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your emotions varied significantly throughout the presentation. Work on maintaining consistent positive energy."
			},
			Steps: []string{
				"Prepare emotional cues for different sections",
				"Practice maintaining enthusiasm throughout",
				"Use transitional phrases to maintain energy",
				"Take brief pauses to reset your emotional state",
			},
			Examples: []string{
				"Start each section with renewed enthusiasm",
				"Use phrases like 'What's really exciting is...'",
				"Pause and take a breath before key points",
			},
		},

		// Speech rules.
		{
			Title:    "Increase Speaking Pace",
			Category: CategoryPresentationStyle,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				rate := b.Speech.Summary.SpeakingRate
				return !b.Speech.Degraded() && rate > 0 && rate < t.SlowSpeakingRate
			},
			Describe: func(b *analysis.Bundle) string {
				return fmt.Sprintf("Your speaking rate of %.0f words per minute is below optimal. Consider speaking slightly faster to maintain engagement.",
					b.Speech.Summary.SpeakingRate)
			},
			Steps: []string{
				"Practice with a metronome or timer",
				"Reduce unnecessary pauses between words",
				"Prepare and rehearse your content thoroughly",
				"Focus on smooth transitions between ideas",
			},
			Examples: []string{
				"Aim for 130-140 words per minute",
				"Practice reading aloud with energy",
				"Record yourself and compare to professional speakers",
			},
		},
		{
			Title:    "Slow Down for Clarity",
			Category: CategoryPresentationStyle,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return !b.Speech.Degraded() && b.Speech.Summary.SpeakingRate > t.FastSpeakingRate
			},
			Describe: func(b *analysis.Bundle) string {
				return fmt.Sprintf("Your speaking rate of %.0f words per minute may be too fast. Slow down to ensure comprehension.",
					b.Speech.Summary.SpeakingRate)
			},
			Steps: []string{
				"Practice deliberate pacing",
				"Add strategic pauses for emphasis",
				"Focus on clear articulation",
				"Allow time for key points to sink in",
			},
			Examples: []string{
				"Pause for 2-3 seconds after important statistics",
				"Slow down when explaining complex concepts",
				"Use the phrase 'Let me emphasize this point...'",
			},
		},
		{
			Title:    "Reduce Filler Words",
			Category: CategoryCommunication,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				return !b.Speech.Degraded() && totalFillers(b) > t.MaxFillerWords
			},
			Describe: func(b *analysis.Bundle) string {
				return fmt.Sprintf("You used %d filler words. Reducing these will make you sound more confident and professional.",
					totalFillers(b))
			},
			Steps: []string{
				"Practice pausing instead of using fillers",
				"Slow down your speech to think ahead",
				"Prepare and rehearse key transitions",
				"Record yourself to identify filler patterns",
			},
			Examples: []string{
				"Instead of 'um', pause silently for 1-2 seconds",
				"Replace 'you know' with 'as you can see'",
				"Use 'let me explain' instead of 'basically'",
			},
		},
		{
			Title:    "Project More Vocal Confidence",
			Category: CategoryConfidence,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return !b.Speech.Degraded() && b.Speech.Summary.Delivery.Confidence < t.LowVocalConfidence
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your vocal delivery could project more confidence. Focus on volume, pace, and definitiveness."
			},
			Steps: []string{
				"Speak with consistent volume",
				"Use definitive language",
				"Avoid uptalk (rising intonation on statements)",
				"Practice breathing exercises for voice control",
			},
			Examples: []string{
				"Say 'This will increase efficiency' instead of 'This might help'",
				"End statements with falling intonation",
				"Breathe from your diaphragm for stronger voice projection",
			},
		},

		// Text rules.
		{
			Title:    "Strengthen Persuasive Language",
			Category: CategoryPersuasion,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return !b.Text.Degraded() && b.Text.Summary.PersuasivenessScore < t.LowPersuasiveness
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your message could be more persuasive. Include more benefit statements and calls to action."
			},
			Steps: []string{
				"Highlight specific benefits for the client",
				"Include quantifiable results and ROI",
				"Add social proof and testimonials",
				"End with clear next steps",
			},
			Examples: []string{
				"'Companies like yours have seen 40% efficiency gains'",
				"'This investment will pay for itself in 6 months'",
				"'Shall we schedule a pilot program next week?'",
			},
		},
		{
			Title:    "Enhance Professional Language",
			Category: CategoryCommunication,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				return !b.Text.Degraded() && b.Text.Summary.ProfessionalismScore < t.LowProfessionalism
			},
			Describe: func(b *analysis.Bundle) string {
				return "Consider using more professional vocabulary and reducing casual expressions."
			},
			Steps: []string{
				"Replace casual words with professional alternatives",
				"Use industry-specific terminology appropriately",
				"Structure sentences more formally",
				"Avoid colloquialisms and slang",
			},
			Examples: []string{
				"Say 'solution' instead of 'thing'",
				"Use 'implement' instead of 'do'",
				"Replace 'awesome' with 'excellent' or 'outstanding'",
			},
		},
		{
			Title:    "Improve Message Clarity",
			Category: CategoryCommunication,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return !b.Text.Degraded() && b.Text.Summary.ClarityScore < t.LowClarity
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your message could be clearer and easier to understand. Simplify complex sentences and concepts."
			},
			Steps: []string{
				"Use shorter, simpler sentences",
				"Break complex ideas into steps",
				"Define technical terms",
				"Use analogies and examples",
			},
			Examples: []string{
				"Instead of long sentences, use bullet points",
				"'Think of it like...' for analogies",
				"'In simple terms, this means...'",
			},
		},
		{
			Title:    "Improve Positive Messaging",
			Category: CategoryCommunication,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return !b.Text.Degraded() && b.Text.Summary.Sentiment == "negative"
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your language contains more negative than positive elements. Reframe challenges as opportunities."
			},
			Steps: []string{
				"Focus on solutions rather than problems",
				"Use positive language to describe outcomes",
				"Reframe challenges as opportunities for improvement",
				"Emphasize benefits and value propositions",
			},
			Examples: []string{
				"'This addresses your efficiency challenges' becomes 'This boosts your efficiency'",
				"'Problems' become 'opportunities for improvement'",
				"Focus on 'what you'll gain' not 'what you're missing'",
			},
		},

		// Holistic cross-modality rules. A degraded modality contributes a
		// neutral 1.0 so it never drags the combined figure down.
		{
			Title:    "Build Overall Presentation Confidence",
			Category: CategoryConfidence,
			Priority: PriorityHigh,
			When: func(b *analysis.Bundle) bool {
				return overallConfidence(b) < t.LowOverallConfidence
			},
			Describe: func(b *analysis.Bundle) string {
				return "Multiple indicators suggest room for confidence improvement across your entire presentation approach."
			},
			Steps: []string{
				"Practice your presentation multiple times",
				"Prepare for common questions and objections",
				"Visualize successful outcomes",
				"Start with smaller, lower-stakes presentations",
			},
			Examples: []string{
				"Practice in front of colleagues for feedback",
				"Prepare 3-5 success stories you can share",
				"Imagine the client saying 'yes' at the end",
			},
		},
		{
			Title:    "Align Emotional and Vocal Energy",
			Category: CategoryEngagement,
			Priority: PriorityMedium,
			When: func(b *analysis.Bundle) bool {
				return emotionEngagement(b) < t.LowEmotionEngagement && speechConfidence(b) > t.StrongVocalConfidence
			},
			Describe: func(b *analysis.Bundle) string {
				return "Your vocal delivery is strong, but your emotional expression could match that energy level."
			},
			Steps: []string{
				"Match facial expressions to your vocal enthusiasm",
				"Use gestures that complement your confident voice",
				"Practice in front of a mirror",
				"Record yourself to observe alignment",
			},
			Examples: []string{
				"Smile when your voice conveys excitement",
				"Use open gestures when speaking confidently",
				"Make eye contact when making strong statements",
			},
		},
	}
}

func totalFillers(b *analysis.Bundle) int {
	var total int
	for _, count := range b.Speech.Summary.FillerWords {
		total += count
	}
	return total
}

func emotionEngagement(b *analysis.Bundle) float64 {
	if b.Emotion.Degraded() {
		return 1
	}
	return b.Emotion.Summary.Engagement
}

func speechConfidence(b *analysis.Bundle) float64 {
	if b.Speech.Degraded() {
		return 1
	}
	return b.Speech.Summary.Delivery.Confidence
}

func textPersuasiveness(b *analysis.Bundle) float64 {
	if b.Text.Degraded() {
		return 1
	}
	return b.Text.Summary.PersuasivenessScore
}

// overallConfidence conflates emotional engagement, vocal confidence and
// textual persuasiveness into one figure. The three measure different things,
// but this combined gate is the established behavior of the rule set.
func overallConfidence(b *analysis.Bundle) float64 {
	return (emotionEngagement(b) + speechConfidence(b) + textPersuasiveness(b)) / 3
}
