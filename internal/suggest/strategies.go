package suggest

import "github.com/RevCBH/refinery/internal/draft"

// strategy is one candidate approach to a finding, chosen by keyword
// matching on the finding text.
type strategy struct {
	name        string
	description string
	detail      string
	confidence  float64
	impact      draft.Impact
	effort      draft.Effort
	rationale   string
	examples    []string
}

// edgeCaseStrategies maps keyword groups to candidate handling strategies.
// Every group whose keywords appear in the case description contributes
// its strategies; edgeCaseFallback applies when none match.
var edgeCaseStrategies = []struct {
	keywords   []string
	strategies []strategy
}{
	{
		keywords: []string{"null", "empty", "missing"},
		strategies: []strategy{
			{
				name:        "null_value_handling",
				description: "Implement comprehensive null/empty value handling",
				detail:      "Add validation and default value mechanisms",
				confidence:  0.85,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortLow,
				rationale:   "Null/empty values are common sources of errors and should be handled explicitly",
				examples: []string{
					"Validate input parameters before processing",
					"Provide sensible defaults for optional fields",
					"Return clear error messages for required missing values",
				},
			},
			{
				name:        "graceful_degradation",
				description: "Implement graceful degradation for missing data",
				detail:      "Design fallback behavior when data is unavailable",
				confidence:  0.75,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortMedium,
				rationale:   "System should continue functioning even with partial data",
				examples: []string{
					"Use cached data when fresh data is unavailable",
					"Display partial results with appropriate warnings",
				},
			},
		},
	},
	{
		keywords: []string{"boundary", "limit", "range"},
		strategies: []strategy{
			{
				name:        "boundary_validation",
				description: "Implement strict boundary validation and limits",
				detail:      "Add input validation for all boundary conditions",
				confidence:  0.90,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortLow,
				rationale:   "Boundary conditions are critical for system stability and security",
				examples: []string{
					"Validate array indices before access",
					"Check memory limits before allocation",
					"Implement rate limiting for API calls",
				},
			},
			{
				name:        "dynamic_scaling",
				description: "Implement dynamic scaling for resource limits",
				detail:      "Design system to handle varying load conditions",
				confidence:  0.70,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortHigh,
				rationale:   "Dynamic scaling provides better resource utilization and user experience",
				examples: []string{
					"Implement pagination for large data sets",
					"Use streaming for large file processing",
				},
			},
		},
	},
	{
		keywords: []string{"concurrent", "parallel", "race"},
		strategies: []strategy{
			{
				name:        "synchronization",
				description: "Implement proper synchronization mechanisms",
				detail:      "Add locks, semaphores, or atomic operations",
				confidence:  0.80,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortMedium,
				rationale:   "Concurrency issues can lead to data corruption and system instability",
				examples: []string{
					"Use database transactions for data consistency",
					"Implement optimistic locking for concurrent updates",
				},
			},
			{
				name:        "immutable_design",
				description: "Design with immutable data structures",
				detail:      "Use immutable objects to prevent race conditions",
				confidence:  0.75,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortHigh,
				rationale:   "Immutable design eliminates many concurrency issues at the architectural level",
				examples: []string{
					"Implement event sourcing for state changes",
					"Design stateless services where possible",
				},
			},
		},
	},
	{
		keywords: []string{"network", "timeout", "connection"},
		strategies: []strategy{
			{
				name:        "timeout_and_retry",
				description: "Implement timeout and retry mechanisms",
				detail:      "Add configurable timeouts and exponential backoff",
				confidence:  0.85,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortLow,
				rationale:   "Network issues are common and require robust error handling",
				examples: []string{
					"Set appropriate timeouts for all network calls",
					"Implement exponential backoff for retries",
					"Add circuit breaker pattern for failing services",
				},
			},
			{
				name:        "offline_capability",
				description: "Implement offline capability and data synchronization",
				detail:      "Add local caching and sync mechanisms",
				confidence:  0.70,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortHigh,
				rationale:   "Offline capability improves user experience during network issues",
				examples: []string{
					"Cache data locally for offline access",
					"Implement conflict resolution for sync",
				},
			},
		},
	},
	{
		keywords: []string{"user", "input", "validation"},
		strategies: []strategy{
			{
				name:        "comprehensive_validation",
				description: "Implement comprehensive input validation",
				detail:      "Add validation at all system boundaries",
				confidence:  0.90,
				impact:      draft.ImpactHigh,
				effort:      draft.EffortMedium,
				rationale:   "Input validation is critical for security and data integrity",
				examples: []string{
					"Validate all user inputs on both client and server",
					"Sanitize inputs to prevent injection attacks",
					"Provide clear validation error messages",
				},
			},
			{
				name:        "progressive_validation",
				description: "Implement progressive validation and user guidance",
				detail:      "Add real-time validation with helpful feedback",
				confidence:  0.75,
				impact:      draft.ImpactMedium,
				effort:      draft.EffortMedium,
				rationale:   "Progressive validation improves user experience and reduces errors",
				examples: []string{
					"Show validation errors as user types",
					"Provide suggestions for valid inputs",
				},
			},
		},
	},
}

// edgeCaseFallback applies when no keyword group matches, so every
// unhandled edge case receives at least one suggestion.
var edgeCaseFallback = []strategy{
	{
		name:        "defensive_programming",
		description: "Implement defensive programming practices",
		detail:      "Add comprehensive error checking and logging",
		confidence:  0.70,
		impact:      draft.ImpactMedium,
		effort:      draft.EffortLow,
		rationale:   "Defensive programming helps catch and handle unexpected conditions",
		examples: []string{
			"Add assertions for critical assumptions",
			"Add health checks and monitoring",
		},
	},
	{
		name:        "graceful_error_handling",
		description: "Implement graceful error handling and recovery",
		detail:      "Add user-friendly error handling with recovery options",
		confidence:  0.75,
		impact:      draft.ImpactMedium,
		effort:      draft.EffortMedium,
		rationale:   "Good error handling improves user experience and system reliability",
		examples: []string{
			"Provide clear error messages to users",
			"Implement automatic recovery where possible",
		},
	},
}

// Contradiction resolution strategies. Keyword-matched strategies come
// first; the merge and conditional strategies are always offered, which
// guarantees every unresolved contradiction gets suggestions.
var priorityResolution = strategy{
	name:        "priority_hierarchy",
	description: "Establish clear priority hierarchy for conflicting requirements",
	detail:      "Define which requirement takes precedence in conflict situations",
	confidence:  0.80,
	impact:      draft.ImpactHigh,
	effort:      draft.EffortLow,
	rationale:   "Clear priorities help resolve conflicts consistently",
	examples: []string{
		"Security requirements override performance requirements",
		"Core functionality priority over nice-to-have features",
	},
}

var performanceSecurityBalance = strategy{
	name:        "configurable_balance",
	description: "Implement configurable balance between performance and security",
	detail:      "Allow system configuration to adjust performance/security trade-offs",
	confidence:  0.75,
	impact:      draft.ImpactMedium,
	effort:      draft.EffortHigh,
	rationale:   "Different environments may require different performance/security balances",
	examples: []string{
		"Configurable encryption levels",
		"Runtime security policy adjustments",
	},
}

var roleBasedResolution = strategy{
	name:        "role_based_requirements",
	description: "Implement role-based requirement differentiation",
	detail:      "Define different requirements for different user roles",
	confidence:  0.85,
	impact:      draft.ImpactMedium,
	effort:      draft.EffortMedium,
	rationale:   "Different user roles often have legitimately different requirements",
	examples: []string{
		"Admin users have access to advanced features",
		"Regular users have simplified interfaces",
	},
}

var requirementsMerge = strategy{
	name:        "unified_requirement",
	description: "Merge contradictory requirements into unified requirement",
	detail:      "Combine the best aspects of conflicting requirements",
	confidence:  0.70,
	impact:      draft.ImpactMedium,
	effort:      draft.EffortMedium,
	rationale:   "Sometimes contradictions can be resolved by finding a unified approach",
	examples: []string{
		"Combine fast and secure by using optimized secure algorithms",
		"Merge simple and powerful by providing layered interfaces",
	},
}

var conditionalRequirements = strategy{
	name:        "conditional_logic",
	description: "Implement conditional logic to handle conflicting requirements",
	detail:      "Apply different requirements based on context or conditions",
	confidence:  0.75,
	impact:      draft.ImpactMedium,
	effort:      draft.EffortMedium,
	rationale:   "Context-sensitive requirements can resolve many contradictions",
	examples: []string{
		"Different behavior for different environments",
		"Time-based requirement activation",
	},
}

// gapStrategy is a candidate requirement to fill a completeness gap.
type gapStrategy struct {
	keywords      []string
	title         string
	description   string
	requirement   draft.Requirement
	justification string
	confidence    float64
	impact        draft.Impact
	effort        draft.Effort
	rationale     string
	examples      []string
}

var gapStrategies = []gapStrategy{
	{
		keywords:    []string{"error", "exception"},
		title:       "Comprehensive Error Handling",
		description: "Add comprehensive error handling and recovery mechanisms",
		requirement: draft.Requirement{
			Type:     "error_handling",
			Content:  "System must implement comprehensive error handling with clear error messages, logging, and recovery mechanisms",
			Priority: "high",
			Category: "reliability",
		},
		justification: "Proper error handling is essential for system reliability and user experience",
		confidence:    0.85,
		impact:        draft.ImpactHigh,
		effort:        draft.EffortMedium,
		rationale:     "Missing error handling leads to poor user experience and difficult debugging",
		examples: []string{
			"Implement global exception handling",
			"Add structured error logging",
		},
	},
	{
		keywords:    []string{"security", "auth"},
		title:       "Security and Authentication",
		description: "Add comprehensive security and authentication requirements",
		requirement: draft.Requirement{
			Type:     "security",
			Content:  "System must implement secure authentication, authorization, and data protection mechanisms",
			Priority: "high",
			Category: "security",
		},
		justification: "Security is critical for protecting user data and system integrity",
		confidence:    0.90,
		impact:        draft.ImpactHigh,
		effort:        draft.EffortHigh,
		rationale:     "Security gaps expose the system to significant risks",
		examples: []string{
			"Add role-based access control",
			"Encrypt sensitive data at rest and in transit",
		},
	},
	{
		keywords:    []string{"performance", "scalability"},
		title:       "Performance and Scalability",
		description: "Add specific performance and scalability requirements",
		requirement: draft.Requirement{
			Type:     "performance",
			Content:  "System must meet specific performance benchmarks and scale to handle expected load",
			Priority: "medium",
			Category: "performance",
		},
		justification: "Performance requirements ensure good user experience under load",
		confidence:    0.80,
		impact:        draft.ImpactMedium,
		effort:        draft.EffortMedium,
		rationale:     "Performance gaps lead to poor user experience and scalability issues",
		examples: []string{
			"Response time targets for common operations",
			"Database queries optimized for performance",
		},
	},
	{
		keywords:    []string{"usability", "accessibility"},
		title:       "Usability and Accessibility",
		description: "Add usability and accessibility requirements",
		requirement: draft.Requirement{
			Type:     "usability",
			Content:  "System must provide intuitive user interface and meet accessibility standards",
			Priority: "medium",
			Category: "usability",
		},
		justification: "Usability requirements ensure the system is accessible to all users",
		confidence:    0.75,
		impact:        draft.ImpactMedium,
		effort:        draft.EffortMedium,
		rationale:     "Usability gaps make the system difficult to use and potentially inaccessible",
		examples: []string{
			"Meet WCAG 2.1 accessibility standards",
			"Responsive design for mobile devices",
		},
	},
	{
		keywords:    []string{"monitoring", "logging"},
		title:       "Monitoring and Observability",
		description: "Add comprehensive monitoring and observability requirements",
		requirement: draft.Requirement{
			Type:     "observability",
			Content:  "System must provide comprehensive monitoring, logging, and alerting capabilities",
			Priority: "medium",
			Category: "operational",
		},
		justification: "Observability is essential for maintaining and debugging the system",
		confidence:    0.80,
		impact:        draft.ImpactMedium,
		effort:        draft.EffortLow,
		rationale:     "Missing observability makes the system difficult to maintain and debug",
		examples: []string{
			"Structured application logging",
			"Automated alerting for critical issues",
		},
	},
}
