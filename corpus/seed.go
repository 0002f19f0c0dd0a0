package corpus

import (
	"time"

	"geocompliance-backend/models"
)

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedRegulations returns the embedded regulation corpus. This is the
// always-available default; the live fetch connector may refresh individual
// descriptions but every entry here must stand on its own.
func SeedRegulations() []models.Regulation {
	return []models.Regulation{
		{
			ID:           "eu_dsa_2022",
			Name:         "EU Digital Services Act (DSA)",
			Jurisdiction: "European Union",
			Description:  "Regulation on digital services, content moderation, and platform accountability. Requires risk assessment for large platforms and transparency in content moderation.",
			KeyObligations: []string{
				"Content moderation transparency reports",
				"Risk assessment for systemic risks",
				"User notification of content decisions",
				"Appeals process for content moderation",
				"Age-appropriate design for minors",
			},
			Scope: []string{
				"content moderation",
				"recommendation systems",
				"user safety",
				"algorithmic transparency",
				"harmful content removal",
			},
			Penalties:     "Up to 6% of global annual turnover",
			EffectiveDate: mustDate("2024-02-17"),
		},
		{
			ID:           "ca_ccpa_2020",
			Name:         "California Consumer Privacy Act (CCPA)",
			Jurisdiction: "California, US",
			Description:  "Privacy law giving California residents rights over their personal information including right to know, delete, and opt-out of sale.",
			KeyObligations: []string{
				"Privacy policy disclosures",
				"Right to know data collection",
				"Right to delete personal information",
				"Right to opt-out of data sale",
				"Non-discrimination for privacy rights exercise",
			},
			Scope: []string{
				"personal data collection",
				"data sharing",
				"user profiling",
				"targeted advertising",
				"data analytics",
			},
			Penalties:     "Up to $7,500 per violation",
			EffectiveDate: mustDate("2020-01-01"),
		},
		{
			ID:           "fl_social_media_2021",
			Name:         "Florida Social Media Law",
			Jurisdiction: "Florida, US",
			Description:  "Law restricting social media platforms from deplatforming political candidates and requiring disclosure of content moderation practices.",
			KeyObligations: []string{
				"Cannot deplatform political candidates",
				"Content moderation standards disclosure",
				"Consistent application of community standards",
				"User notification of content actions",
			},
			Scope: []string{
				"content moderation",
				"political content",
				"deplatforming",
				"community standards",
			},
			Penalties:     "Up to $250,000 per day for candidates",
			EffectiveDate: mustDate("2021-07-01"),
		},
		{
			ID:           "ut_social_media_2023",
			Name:         "Utah Social Media Regulation Act",
			Jurisdiction: "Utah, US",
			Description:  "Law requiring age verification and parental consent for minors, restricting certain features for youth users.",
			KeyObligations: []string{
				"Age verification for users under 18",
				"Parental consent for minor accounts",
				"Curfew features (10pm-6am restriction)",
				"Prohibit certain addictive features for minors",
				"Default privacy settings for minors",
			},
			Scope: []string{
				"age verification",
				"minors protection",
				"parental controls",
				"curfew enforcement",
				"addictive design features",
			},
			Penalties:     "Civil penalties up to $5,000 per violation",
			EffectiveDate: mustDate("2024-03-01"),
		},
		{
			ID:           "us_coppa_1998",
			Name:         "Children's Online Privacy Protection Act (COPPA)",
			Jurisdiction: "United States",
			Description:  "Federal law protecting privacy of children under 13, requiring parental consent for data collection.",
			KeyObligations: []string{
				"Parental consent for data collection under 13",
				"Privacy notice for parents",
				"Limited collection and use of children's data",
				"No behavioral advertising to children",
				"Data deletion upon parent request",
			},
			Scope: []string{
				"children under 13",
				"parental consent",
				"data collection",
				"behavioral advertising",
				"age-appropriate features",
			},
			Penalties:     "Up to $43,792 per violation",
			EffectiveDate: mustDate("2000-04-21"),
		},
		{
			ID:           "us_ncmec_reporting",
			Name:         "NCMEC Reporting Requirements",
			Jurisdiction: "United States",
			Description:  "Federal law requiring electronic service providers to report child sexual abuse material (CSAM) to NCMEC.",
			KeyObligations: []string{
				"Report known CSAM to NCMEC",
				"Preserve reported content",
				"Provide technical assistance to law enforcement",
				"Maintain reporting procedures",
			},
			Scope: []string{
				"child safety",
				"content scanning",
				"csam detection",
				"law enforcement cooperation",
				"content preservation",
			},
			Penalties:     "Criminal penalties and civil liability",
			EffectiveDate: mustDate("1998-10-30"),
		},
		{
			ID:           "uk_age_appropriate_design",
			Name:         "UK Age Appropriate Design Code",
			Jurisdiction: "United Kingdom",
			Description:  "Code requiring age-appropriate design for services likely to be accessed by children.",
			KeyObligations: []string{
				"Age-appropriate design by default",
				"Data protection impact assessments",
				"High privacy settings by default for children",
				"Minimize data collection from children",
				"No profiling or automated decision-making for children",
			},
			Scope: []string{
				"age-appropriate design",
				"children's privacy",
				"default settings",
				"profiling restrictions",
				"data minimization",
			},
			Penalties:     "Up to 4% of global annual turnover",
			EffectiveDate: mustDate("2021-09-02"),
		},
		{
			ID:           "gdpr_2018",
			Name:         "General Data Protection Regulation (GDPR)",
			Jurisdiction: "European Union",
			Description:  "Comprehensive data protection regulation governing processing of personal data of EU residents.",
			KeyObligations: []string{
				"Lawful basis for processing",
				"Data subject consent",
				"Right to be forgotten",
				"Data portability",
				"Privacy by design and default",
			},
			Scope: []string{
				"personal data processing",
				"user consent",
				"data transfers",
				"profiling",
				"automated decision-making",
			},
			Penalties:     "Up to 4% of global annual turnover",
			EffectiveDate: mustDate("2018-05-25"),
		},
	}
}
