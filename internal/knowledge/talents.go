package knowledge

// TalentArea is one entry of the talent catalog. As with Career, the aptitude
// types and preference categories the matcher weighs are carried on the entry.
type TalentArea struct {
	Name                   string
	Description            string
	PrimaryIntelligences   []string
	AptitudeTypes          []AptitudeType
	PreferenceCategories   []string
	DevelopmentSuggestions []string
	CareerOpportunities    []string
	LearningResources      []string
}

// TalentAreas returns the talent catalog in its declared order. The slice is
// shared; callers must not mutate it.
func TalentAreas() []TalentArea {
	return talentCatalog
}

// PreferenceGroups maps each preference category to the questionnaire labels
// that contribute to it. A label may feed more than one category.
var PreferenceGroups = map[string][]string{
	"STEM":       {"Science & Technology", "Research & Analysis"},
	"Creative":   {"Arts & Creativity", "Music & Performance"},
	"Physical":   {"Sports & Athletics"},
	"Social":     {"Social Work & Helping Others", "Teaching & Education"},
	"Business":   {"Business & Entrepreneurship"},
	"Leadership": {"Leadership & Management"},
	"Academic":   {"Research & Analysis"},
	"Healthcare": {"Health & Medicine"},
}

// PreferenceCategories lists the category groups in their declared order.
var PreferenceCategories = []string{
	"STEM", "Creative", "Physical", "Social", "Business", "Leadership", "Academic", "Healthcare",
}

var talentCatalog = []TalentArea{
	{
		Name:                 "STEM Innovation",
		Description:          "Strong aptitude for Science, Technology, Engineering, and Mathematics with innovative thinking capabilities.",
		PrimaryIntelligences: []string{"Logical-Mathematical", "Spatial-Visual"},
		AptitudeTypes:        []AptitudeType{AptitudeLogical, AptitudeNumerical, AptitudeAbstract},
		PreferenceCategories: []string{"STEM", "Academic"},
		DevelopmentSuggestions: []string{
			"Participate in science fairs and coding competitions",
			"Take advanced mathematics and programming courses",
			"Join robotics or engineering clubs",
			"Practice problem-solving with real-world applications",
		},
		CareerOpportunities: []string{
			"Software Engineer", "Data Scientist", "Research Scientist",
			"Biomedical Engineer", "AI/ML Specialist", "Product Manager",
		},
		LearningResources: []string{
			"Online coding platforms (HackerRank, LeetCode)",
			"MOOC courses in data science and AI",
			"Science journals and research papers",
			"Programming bootcamps and certifications",
		},
	},
	{
		Name:                 "Creative Arts & Design",
		Description:          "Exceptional creative abilities with strong visual and artistic intelligence.",
		PrimaryIntelligences: []string{"Spatial-Visual", "Musical"},
		AptitudeTypes:        []AptitudeType{AptitudeSpatial, AptitudeAbstract},
		PreferenceCategories: []string{"Creative"},
		DevelopmentSuggestions: []string{
			"Develop a diverse portfolio of creative work",
			"Study different art movements and techniques",
			"Practice digital design tools and software",
			"Collaborate with other artists and designers",
		},
		CareerOpportunities: []string{
			"Graphic Designer", "UX/UI Designer", "Artist",
			"Animator", "Music Producer", "Creative Director",
		},
		LearningResources: []string{
			"Art and design courses (online and offline)",
			"Creative software tutorials (Adobe Creative Suite)",
			"Art history and theory books",
			"Design inspiration platforms (Behance, Dribbble)",
		},
	},
	{
		Name:                 "Social Leadership",
		Description:          "Natural leadership abilities combined with strong interpersonal and communication skills.",
		PrimaryIntelligences: []string{"Interpersonal", "Linguistic"},
		AptitudeTypes:        []AptitudeType{AptitudeVerbal},
		PreferenceCategories: []string{"Social", "Leadership"},
		DevelopmentSuggestions: []string{
			"Take on leadership roles in school or community",
			"Develop public speaking and presentation skills",
			"Study organizational psychology and management",
			"Practice conflict resolution and negotiation",
		},
		CareerOpportunities: []string{
			"Project Manager", "Human Resources Manager", "CEO/Executive",
			"Politician", "Social Worker", "Team Leader",
		},
		LearningResources: []string{
			"Leadership development programs",
			"Public speaking clubs (Toastmasters)",
			"Management and leadership books",
			"Mentorship opportunities with leaders",
		},
	},
	{
		Name:                 "Analytical Research",
		Description:          "Strong analytical thinking with excellent research and investigation capabilities.",
		PrimaryIntelligences: []string{"Logical-Mathematical", "Intrapersonal"},
		AptitudeTypes:        []AptitudeType{AptitudeLogical, AptitudeNumerical},
		PreferenceCategories: []string{"Academic", "STEM"},
		DevelopmentSuggestions: []string{
			"Engage in research projects and academic studies",
			"Develop statistical analysis and data interpretation skills",
			"Practice critical thinking and hypothesis testing",
			"Write research papers and present findings",
		},
		CareerOpportunities: []string{
			"Research Scientist", "Business Analyst", "Market Researcher",
			"Policy Analyst", "Consultant", "Academic Researcher",
		},
		LearningResources: []string{
			"Research methodology courses",
			"Statistical software training (SPSS, R, Python)",
			"Academic journals in your field of interest",
			"Research internships and assistantships",
		},
	},
	{
		Name:                 "Communication & Media",
		Description:          "Exceptional communication skills with strong linguistic and interpersonal intelligence.",
		PrimaryIntelligences: []string{"Linguistic", "Interpersonal"},
		AptitudeTypes:        []AptitudeType{AptitudeVerbal},
		PreferenceCategories: []string{"Social", "Creative"},
		DevelopmentSuggestions: []string{
			"Practice various forms of writing and speaking",
			"Study media production and journalism",
			"Build a portfolio of communication work",
			"Engage with diverse audiences and platforms",
		},
		CareerOpportunities: []string{
			"Journalist", "Content Creator", "Public Relations Specialist",
			"Marketing Manager", "Teacher", "Communications Director",
		},
		LearningResources: []string{
			"Journalism and media studies courses",
			"Writing workshops and seminars",
			"Media production software training",
			"Communication and rhetoric books",
		},
	},
	{
		Name:                 "Physical & Athletic",
		Description:          "Strong bodily-kinesthetic intelligence with excellent physical coordination and athletic abilities.",
		PrimaryIntelligences: []string{"Bodily-Kinesthetic", "Interpersonal"},
		AptitudeTypes:        []AptitudeType{AptitudeSpatial},
		PreferenceCategories: []string{"Physical"},
		DevelopmentSuggestions: []string{
			"Train consistently in chosen sports or physical activities",
			"Study sports science and exercise physiology",
			"Develop coaching and mentoring skills",
			"Participate in competitive sports events",
		},
		CareerOpportunities: []string{
			"Professional Athlete", "Sports Coach", "Physical Therapist",
			"Fitness Trainer", "Sports Commentator", "Athletic Director",
		},
		LearningResources: []string{
			"Sports science and kinesiology courses",
			"Coaching certification programs",
			"Fitness and nutrition education",
			"Sports psychology resources",
		},
	},
	{
		Name:                 "Environmental & Natural",
		Description:          "Strong connection with nature and environmental patterns with naturalist intelligence.",
		PrimaryIntelligences: []string{"Naturalist", "Logical-Mathematical"},
		AptitudeTypes:        []AptitudeType{AptitudeLogical, AptitudeSpatial},
		PreferenceCategories: []string{"STEM", "Academic"},
		DevelopmentSuggestions: []string{
			"Engage in outdoor activities and nature observation",
			"Study environmental science and conservation",
			"Participate in environmental protection projects",
			"Develop field research and data collection skills",
		},
		CareerOpportunities: []string{
			"Environmental Scientist", "Marine Biologist", "Park Ranger",
			"Sustainability Consultant", "Wildlife Researcher", "Ecologist",
		},
		LearningResources: []string{
			"Environmental science courses and field studies",
			"Nature guides and identification books",
			"Environmental research internships",
			"Conservation organization volunteering",
		},
	},
	{
		Name:                 "Musical & Performing",
		Description:          "Exceptional musical intelligence with strong performance and rhythm capabilities.",
		PrimaryIntelligences: []string{"Musical", "Bodily-Kinesthetic"},
		AptitudeTypes:        []AptitudeType{AptitudeAbstract, AptitudeSpatial},
		PreferenceCategories: []string{"Creative"},
		DevelopmentSuggestions: []string{
			"Practice regularly with instruments or voice",
			"Study music theory and composition",
			"Perform in various settings and with different groups",
			"Explore different musical styles and genres",
		},
		CareerOpportunities: []string{
			"Musician", "Music Teacher", "Sound Engineer",
			"Music Producer", "Composer", "Music Therapist",
		},
		LearningResources: []string{
			"Music theory and composition courses",
			"Instrument lessons and masterclasses",
			"Music production software training",
			"Performance opportunities and auditions",
		},
	},
}
