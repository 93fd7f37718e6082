package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerCatalogIntegrity(t *testing.T) {
	careers := Careers()
	require.NotEmpty(t, careers)

	traits := make(map[string]struct{}, len(PersonalityTraits))
	for _, trait := range PersonalityTraits {
		traits[trait] = struct{}{}
	}

	for _, career := range careers {
		assert.NotEmpty(t, career.Title)
		assert.NotEmpty(t, career.Description)
		assert.NotEmpty(t, career.RequiredSkills, career.Title)
		assert.NotEmpty(t, career.PersonalityTraits, career.Title)
		assert.NotEmpty(t, career.InterestTags, career.Title)
		for _, trait := range career.PersonalityTraits {
			assert.Contains(t, traits, trait, "%s references unknown trait %s", career.Title, trait)
		}
	}
}

func TestEverySkillHasACategory(t *testing.T) {
	categories := make(map[SkillCategory]struct{}, len(SkillCategories))
	for _, c := range SkillCategories {
		categories[c] = struct{}{}
	}

	for _, career := range Careers() {
		for _, skill := range career.RequiredSkills {
			category := SkillCategoryFor(skill)
			assert.Contains(t, categories, category, "skill %q maps outside the fixed categories", skill)
		}
	}
}

func TestUnknownSkillDefaultsToTechnical(t *testing.T) {
	assert.Equal(t, SkillTechnical, SkillCategoryFor("Underwater Basket Weaving"))
}

func TestTalentCatalogIntegrity(t *testing.T) {
	areas := TalentAreas()
	require.NotEmpty(t, areas)

	intelligences := make(map[string]struct{}, len(IntelligenceTypes()))
	for _, it := range IntelligenceTypes() {
		intelligences[it.Type] = struct{}{}
	}
	preferenceCategories := make(map[string]struct{}, len(PreferenceCategories))
	for _, c := range PreferenceCategories {
		preferenceCategories[c] = struct{}{}
	}

	for _, area := range areas {
		assert.NotEmpty(t, area.Name)
		assert.NotEmpty(t, area.PrimaryIntelligences, area.Name)
		assert.NotEmpty(t, area.DevelopmentSuggestions, area.Name)
		for _, intelligence := range area.PrimaryIntelligences {
			assert.Contains(t, intelligences, intelligence, "%s references unknown intelligence %s", area.Name, intelligence)
		}
		for _, category := range area.PreferenceCategories {
			assert.Contains(t, preferenceCategories, category, "%s references unknown preference category %s", area.Name, category)
		}
	}
}

func TestPreferenceGroupsMatchCategories(t *testing.T) {
	require.Len(t, PreferenceCategories, len(PreferenceGroups))
	for _, category := range PreferenceCategories {
		assert.NotEmpty(t, PreferenceGroups[category], category)
	}
}

func TestAptitudePoolCoversEveryType(t *testing.T) {
	seen := make(map[AptitudeType]int)
	for _, q := range AptitudeQuestions() {
		seen[q.Type]++
	}
	for _, aptitudeType := range AptitudeTypes {
		assert.Equal(t, 2, seen[aptitudeType], aptitudeType)
	}
}

func TestSkillOptionsCarryValidCategories(t *testing.T) {
	options := SkillOptions()
	require.NotEmpty(t, options)
	for _, opt := range options {
		assert.NotEmpty(t, opt.Name)
		assert.Contains(t, SkillCategories, opt.Category, opt.Name)
	}
}
