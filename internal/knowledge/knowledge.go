// Package knowledge holds the compiled-in catalogs the matching engine ranks
// against: careers, talent areas, the fixed aptitude question pool and the
// intelligence type descriptions. Pure data, read-only after initialization;
// changing it is a code change, not a config reload.
package knowledge

// SkillCategory is one of the five fixed skill buckets users rate themselves in.
type SkillCategory string

const (
	SkillTechnical  SkillCategory = "Technical"
	SkillCreative   SkillCategory = "Creative"
	SkillAnalytical SkillCategory = "Analytical"
	SkillSocial     SkillCategory = "Social"
	SkillLeadership SkillCategory = "Leadership"
)

// SkillCategories lists the buckets in their declared order.
var SkillCategories = []SkillCategory{
	SkillTechnical,
	SkillCreative,
	SkillAnalytical,
	SkillSocial,
	SkillLeadership,
}

// AptitudeType classifies aptitude test questions.
type AptitudeType string

const (
	AptitudeLogical   AptitudeType = "logical"
	AptitudeVerbal    AptitudeType = "verbal"
	AptitudeNumerical AptitudeType = "numerical"
	AptitudeSpatial   AptitudeType = "spatial"
	AptitudeAbstract  AptitudeType = "abstract"
)

var AptitudeTypes = []AptitudeType{
	AptitudeLogical,
	AptitudeVerbal,
	AptitudeNumerical,
	AptitudeSpatial,
	AptitudeAbstract,
}

// Big Five personality traits.
const (
	TraitOpenness          = "Openness"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

var PersonalityTraits = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}
