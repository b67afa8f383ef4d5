package services

import "strings"

// FallbackResponse produces a canned answer when the completion engine is
// unavailable. Ordered substring dispatch, first match wins; matching is
// case-insensitive.
func FallbackResponse(message string) string {
	input := strings.ToLower(message)

	if strings.Contains(input, "automation") || strings.Contains(input, "workflow") {
		return "Our AI-powered workflow automation helps streamline your business processes and can reduce manual work by up to 80%. Would you like to schedule a demo to see how it works?"
	}

	if strings.Contains(input, "pricing") || strings.Contains(input, "cost") {
		return "Our pricing starts at $500/month for startups and scales based on your needs. I'd be happy to connect you with our team for a personalized quote. What's the size of your organization?"
	}

	return "I'm here to help you learn about Tezzeract AI's automation solutions. We offer workflow automation, agentic automation, digital transformation, and creative AI solutions. What specific challenges are you looking to solve?"
}
