package knowledge

// Career is one entry of the career catalog. Every weighting tag the matcher
// needs (required skills, personality traits, interest tags) lives on the entry
// itself so the catalog cannot drift apart from a separate lookup table.
type Career struct {
	Title             string
	Description       string
	RequiredSkills    []string
	PersonalityTraits []string
	InterestTags      []string
	SalaryRange       string
	GrowthProspects   string
	EducationPath     []string
	PersonalityFit    string
}

// SkillOption is a rateable skill exposed to the questionnaire UI.
type SkillOption struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Careers returns the career catalog in its declared order. The slice is
// shared; callers must not mutate it.
func Careers() []Career {
	return careerCatalog
}

// SkillCategoryFor maps a career's required-skill name to one of the five
// skill buckets. Unknown skills default to Technical.
func SkillCategoryFor(skill string) SkillCategory {
	if c, ok := skillCategoryByName[skill]; ok {
		return c
	}
	return SkillTechnical
}

// SkillOptions returns the rateable skills shown on the career questionnaire.
func SkillOptions() []SkillOption {
	return skillOptions
}

var skillCategoryByName = map[string]SkillCategory{
	"Programming":          SkillTechnical,
	"Problem Solving":      SkillAnalytical,
	"Logical Thinking":     SkillAnalytical,
	"Mathematics":          SkillAnalytical,
	"Communication":        SkillSocial,
	"Statistics":           SkillAnalytical,
	"Data Analysis":        SkillTechnical,
	"Machine Learning":     SkillTechnical,
	"Creativity":           SkillCreative,
	"Strategic Thinking":   SkillAnalytical,
	"Social Media":         SkillSocial,
	"Analytics":            SkillAnalytical,
	"Medical Knowledge":    SkillTechnical,
	"Empathy":              SkillSocial,
	"Attention to Detail":  SkillAnalytical,
	"Patience":             SkillSocial,
	"Subject Expertise":    SkillTechnical,
	"Leadership":           SkillLeadership,
	"Technical Drawing":    SkillTechnical,
	"Physics":              SkillAnalytical,
	"Project Management":   SkillLeadership,
	"Artistic Skills":      SkillCreative,
	"Design Software":      SkillTechnical,
	"Visual Communication": SkillCreative,
	"Business Acumen":      SkillAnalytical,
	"Active Listening":     SkillSocial,
	"Psychology Knowledge": SkillTechnical,
	"Risk Taking":          SkillLeadership,
	"Business Planning":    SkillLeadership,
	"Innovation":           SkillCreative,
}

var skillOptions = []SkillOption{
	{Name: "Mathematics & Logic", Category: SkillAnalytical},
	{Name: "Communication", Category: SkillSocial},
	{Name: "Creative Writing", Category: SkillCreative},
	{Name: "Problem Solving", Category: SkillAnalytical},
	{Name: "Leadership", Category: SkillLeadership},
	{Name: "Programming/Technology", Category: SkillTechnical},
	{Name: "Art & Design", Category: SkillCreative},
	{Name: "Public Speaking", Category: SkillSocial},
	{Name: "Team Management", Category: SkillLeadership},
	{Name: "Data Analysis", Category: SkillTechnical},
}

var careerCatalog = []Career{
	{
		Title:             "Software Engineer",
		Description:       "Design, develop, and maintain software applications and systems using various programming languages and technologies.",
		RequiredSkills:    []string{"Programming", "Problem Solving", "Logical Thinking", "Mathematics", "Communication"},
		PersonalityTraits: []string{TraitOpenness, TraitConscientiousness},
		InterestTags:      []string{"Technology"},
		SalaryRange:       "LKR 800,000 - 2,500,000 annually",
		GrowthProspects:   "High demand with excellent career progression opportunities in tech industry",
		EducationPath: []string{
			"Computer Science or Software Engineering degree",
			"Programming bootcamps and certifications",
			"Continuous learning in new technologies",
		},
		PersonalityFit: "Best suited for logical, detail-oriented individuals who enjoy problem-solving",
	},
	{
		Title:             "Data Scientist",
		Description:       "Analyze complex data to extract insights and build predictive models that drive business decisions.",
		RequiredSkills:    []string{"Statistics", "Programming", "Data Analysis", "Machine Learning", "Mathematics"},
		PersonalityTraits: []string{TraitOpenness, TraitConscientiousness},
		InterestTags:      []string{"Technology", "Science"},
		SalaryRange:       "LKR 1,000,000 - 3,000,000 annually",
		GrowthProspects:   "Very high demand with emerging opportunities in AI and machine learning",
		EducationPath: []string{
			"Statistics, Mathematics, or Computer Science degree",
			"Data science specialization courses",
			"Machine learning and AI certifications",
		},
		PersonalityFit: "Ideal for analytical minds who enjoy working with numbers and patterns",
	},
	{
		Title:             "Marketing Manager",
		Description:       "Develop and execute marketing strategies to promote products or services and drive business growth.",
		RequiredSkills:    []string{"Communication", "Creativity", "Strategic Thinking", "Social Media", "Analytics"},
		PersonalityTraits: []string{TraitExtraversion, TraitOpenness},
		InterestTags:      []string{"Business", "Media"},
		SalaryRange:       "LKR 600,000 - 2,000,000 annually",
		GrowthProspects:   "Good opportunities with digital marketing expansion",
		EducationPath: []string{
			"Marketing, Business Administration, or Communications degree",
			"Digital marketing certifications",
			"Brand management training",
		},
		PersonalityFit: "Perfect for creative, outgoing individuals who understand consumer behavior",
	},
	{
		Title:             "Doctor",
		Description:       "Diagnose and treat illnesses, injuries, and medical conditions to improve patient health and well-being.",
		RequiredSkills:    []string{"Medical Knowledge", "Empathy", "Communication", "Problem Solving", "Attention to Detail"},
		PersonalityTraits: []string{TraitAgreeableness, TraitConscientiousness},
		InterestTags:      []string{"Healthcare", "Science"},
		SalaryRange:       "LKR 1,200,000 - 4,000,000 annually",
		GrowthProspects:   "Stable and highly respected profession with specialization opportunities",
		EducationPath: []string{
			"Medical degree (MBBS)",
			"Medical residency and specialization",
			"Continuous medical education",
		},
		PersonalityFit: "Suited for compassionate, dedicated individuals who want to help others",
	},
	{
		Title:             "Teacher",
		Description:       "Educate and mentor students, creating engaging learning experiences and fostering academic growth.",
		RequiredSkills:    []string{"Communication", "Patience", "Subject Expertise", "Leadership", "Empathy"},
		PersonalityTraits: []string{TraitAgreeableness, TraitExtraversion},
		InterestTags:      []string{"Education"},
		SalaryRange:       "LKR 400,000 - 1,200,000 annually",
		GrowthProspects:   "Stable with opportunities for advancement to administrative roles",
		EducationPath: []string{
			"Education degree or subject-specific degree",
			"Teaching certification",
			"Professional development courses",
		},
		PersonalityFit: "Best for patient, communicative people who enjoy helping others learn",
	},
	{
		Title:             "Engineer",
		Description:       "Apply scientific and mathematical principles to design, build, and maintain structures, machines, or systems.",
		RequiredSkills:    []string{"Mathematics", "Problem Solving", "Technical Drawing", "Physics", "Project Management"},
		PersonalityTraits: []string{TraitConscientiousness, TraitOpenness},
		InterestTags:      []string{"Technology", "Science"},
		SalaryRange:       "LKR 700,000 - 2,200,000 annually",
		GrowthProspects:   "Good demand in construction, manufacturing, and infrastructure development",
		EducationPath: []string{
			"Engineering degree in relevant field",
			"Professional engineering certification",
			"Specialized technical training",
		},
		PersonalityFit: "Ideal for logical, methodical individuals who enjoy solving technical challenges",
	},
	{
		Title:             "Artist/Designer",
		Description:       "Create visual content, artwork, or designs for various media including digital, print, and interactive platforms.",
		RequiredSkills:    []string{"Creativity", "Artistic Skills", "Design Software", "Visual Communication", "Attention to Detail"},
		PersonalityTraits: []string{TraitOpenness, TraitExtraversion},
		InterestTags:      []string{"Arts", "Media"},
		SalaryRange:       "LKR 300,000 - 1,500,000 annually",
		GrowthProspects:   "Growing opportunities in digital media and user experience design",
		EducationPath: []string{
			"Fine Arts, Graphic Design, or related degree",
			"Portfolio development",
			"Digital design tool certifications",
		},
		PersonalityFit: "Perfect for creative, imaginative individuals with strong visual sense",
	},
	{
		Title:             "Business Analyst",
		Description:       "Analyze business processes and systems to identify improvements and drive organizational efficiency.",
		RequiredSkills:    []string{"Analytics", "Communication", "Problem Solving", "Business Acumen", "Project Management"},
		PersonalityTraits: []string{TraitConscientiousness, TraitOpenness},
		InterestTags:      []string{"Business", "Technology"},
		SalaryRange:       "LKR 800,000 - 2,000,000 annually",
		GrowthProspects:   "High demand with opportunities for specialization in various industries",
		EducationPath: []string{
			"Business Administration, Economics, or related degree",
			"Business analysis certifications",
			"Industry-specific training",
		},
		PersonalityFit: "Suited for analytical, detail-oriented professionals who understand business operations",
	},
	{
		Title:             "Counselor/Psychologist",
		Description:       "Provide mental health support, therapy, and guidance to help individuals overcome challenges and improve well-being.",
		RequiredSkills:    []string{"Empathy", "Communication", "Active Listening", "Psychology Knowledge", "Patience"},
		PersonalityTraits: []string{TraitAgreeableness, TraitOpenness},
		InterestTags:      []string{"Healthcare", "Social Work"},
		SalaryRange:       "LKR 500,000 - 1,800,000 annually",
		GrowthProspects:   "Growing awareness of mental health increasing demand for professionals",
		EducationPath: []string{
			"Psychology degree",
			"Counseling or clinical psychology specialization",
			"Licensed practice certification",
		},
		PersonalityFit: "Best for empathetic, patient individuals who want to help others emotionally",
	},
	{
		Title:             "Entrepreneur",
		Description:       "Start and manage businesses, identifying opportunities and taking calculated risks to create value.",
		RequiredSkills:    []string{"Leadership", "Risk Taking", "Business Planning", "Communication", "Innovation"},
		PersonalityTraits: []string{TraitExtraversion, TraitOpenness},
		InterestTags:      []string{"Business"},
		SalaryRange:       "Variable - depends on business success",
		GrowthProspects:   "Unlimited potential with high risk-reward ratio",
		EducationPath: []string{
			"Business, Economics, or relevant field degree",
			"Entrepreneurship programs",
			"Industry-specific knowledge and networking",
		},
		PersonalityFit: "Ideal for risk-taking, innovative leaders who want to create their own path",
	},
}
