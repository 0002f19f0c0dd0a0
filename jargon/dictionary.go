package jargon

// buildJargonDictionary returns the seed dictionary of platform-internal
// terms. Keys are lowercase; matching is case-insensitive with word
// boundaries.
func buildJargonDictionary() map[string]string {
	return map[string]string{
		// Internal systems
		"jellybean":  "content moderation system",
		"glow":       "recommendation algorithm",
		"spanner":    "distributed database system",
		"libra":      "user safety framework",
		"compass":    "content policy engine",
		"lighthouse": "compliance monitoring system",
		"prism":      "user analytics platform",
		"atlas":      "geographic content routing",
		"nexus":      "cross-platform integration",
		"quantum":    "real-time processing engine",

		// Content & safety terms
		"ugc":               "user-generated content",
		"csam":              "child sexual abuse material",
		"dmca":              "digital millennium copyright act takedown",
		"violative content": "content that violates community guidelines",
		"shadow ban":        "content visibility restriction",
		"content takedown":  "content removal from platform",
		"deboost":           "reduce content reach in algorithm",
		"safety mode":       "restricted content viewing mode",
		"trust and safety":  "user protection and content moderation",

		// User & account terms
		"minor user":          "user under 18 years old",
		"verified account":    "account with verified identity",
		"creator fund":        "monetization program for content creators",
		"brand account":       "business or organization account",
		"influencer tier":     "classification based on follower count",
		"account restriction": "limitation on account functionality",
		"age gate":            "age verification checkpoint",

		// Algorithm & personalization
		"fyp":                   "for you page recommendation feed",
		"engagement signal":     "user interaction metric",
		"content signal":        "algorithmic content quality indicator",
		"user signal":           "behavioral pattern indicator",
		"recommendation engine": "algorithm suggesting content to users",
		"content ranking":       "algorithmic content prioritization",
		"personalization vector": "user preference data representation",
		"interest graph":        "user interest mapping system",

		// Data & privacy
		"pii":                   "personally identifiable information",
		"device fingerprint":    "unique device identification method",
		"cross-device tracking": "user activity tracking across devices",
		"data retention policy": "rules for keeping user data",
		"gdpr compliance":       "general data protection regulation adherence",
		"ccpa compliance":       "california consumer privacy act adherence",
		"data localization":     "storing data within specific geographic boundaries",
		"user consent":          "explicit permission for data processing",

		// Regional & compliance
		"geo-blocking":            "restricting content by geographic location",
		"region lock":             "limiting feature access by location",
		"compliance framework":    "regulatory adherence system",
		"age verification system": "method to verify user age",
		"parental consent":        "guardian permission for minor accounts",
		"curfew mode":             "time-based usage restrictions",
		"local content policy":    "region-specific content rules",
		"regulatory sandbox":      "testing environment for compliance features",

		// Technical terms
		"api endpoint":    "software interface access point",
		"microservice":    "independent software component",
		"feature flag":    "toggle for enabling/disabling features",
		"a/b test":        "comparing two versions of a feature",
		"circuit breaker": "system failure protection mechanism",
		"rate limiting":   "controlling request frequency",
		"load balancer":   "traffic distribution system",
		"cdn":             "content delivery network",

		// Business terms
		"kpi":               "key performance indicator",
		"dau":               "daily active users",
		"mau":               "monthly active users",
		"ltv":               "lifetime value",
		"churn rate":        "user retention metric",
		"conversion funnel": "user journey tracking",
		"retention cohort":  "user group retention analysis",
		"growth hack":       "strategy to increase user adoption",

		// Content types
		"short form video":  "video content under 60 seconds",
		"live streaming":    "real-time video broadcast",
		"duet":              "collaborative video format",
		"stitch":            "video remix feature",
		"sound bite":        "audio clip for video creation",
		"hashtag challenge": "trending topic campaign",
		"branded content":   "sponsored or promotional material",

		// Moderation terms
		"auto-mod":             "automated content moderation",
		"human review":         "manual content evaluation",
		"appeal process":       "user challenge to moderation decision",
		"strike system":        "progressive penalty framework",
		"community guidelines": "platform usage rules",
		"terms of service":     "legal agreement for platform use",
		"content policy":       "rules governing acceptable content",
	}
}

// buildAcronymTable returns the fixed acronym table. Keys are the exact
// all-caps tokens scanned for in text.
func buildAcronymTable() map[string]string {
	return map[string]string{
		"AI":    "artificial intelligence",
		"ML":    "machine learning",
		"NLP":   "natural language processing",
		"API":   "application programming interface",
		"SDK":   "software development kit",
		"CDN":   "content delivery network",
		"DNS":   "domain name system",
		"SSL":   "secure sockets layer",
		"HTTPS": "hypertext transfer protocol secure",
		"JSON":  "javascript object notation",
		"XML":   "extensible markup language",
		"SQL":   "structured query language",
		"REST":  "representational state transfer",
		"CRUD":  "create read update delete",
		"QR":    "quick response",
		"IP":    "internet protocol",
		"TCP":   "transmission control protocol",
		"HTTP":  "hypertext transfer protocol",
		"FTP":   "file transfer protocol",
		"PII":   "personally identifiable information",
	}
}

// buildCompoundTable returns the fixed multi-word phrase table. Keys are
// lowercase.
func buildCompoundTable() map[string]string {
	return map[string]string{
		"machine learning model":      "algorithm that learns from data to make predictions",
		"content moderation pipeline": "automated system for reviewing and filtering content",
		"user behavior analytics":     "analysis of user interaction patterns",
		"real-time processing":        "immediate data processing without delay",
		"distributed system":          "software running across multiple connected computers",
		"microservice architecture":   "software design using small independent services",
		"cloud infrastructure":        "computing resources provided over the internet",
		"data pipeline":               "series of processes for moving and transforming data",
		"feature engineering":         "process of selecting and transforming data for machine learning",
		"a/b testing framework":       "system for comparing different versions of features",
		"recommendation algorithm":    "system that suggests content based on user preferences",
		"content delivery network":    "distributed system for delivering web content efficiently",
		"load balancing":              "distributing workload across multiple computing resources",
		"auto-scaling":                "automatically adjusting computing resources based on demand",
		"fault tolerance":             "system ability to continue operating despite failures",
		"data governance":             "management of data availability, usability, integrity and security",
	}
}
