package knowledge

// AptitudeQuestion is one item of the fixed aptitude test pool served to the
// talent questionnaire.
type AptitudeQuestion struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Type          AptitudeType `json:"type"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correct_answer"` // index into Options
}

// IntelligenceType describes one of the eight Gardner intelligences.
type IntelligenceType struct {
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
}

func AptitudeQuestions() []AptitudeQuestion {
	return aptitudePool
}

func IntelligenceTypes() []IntelligenceType {
	return intelligenceTypes
}

var aptitudePool = []AptitudeQuestion{
	{
		ID:            "1",
		Question:      "If 3x + 7 = 22, what is the value of x?",
		Type:          AptitudeNumerical,
		Options:       []string{"3", "5", "7", "9"},
		CorrectAnswer: 1,
	},
	{
		ID:            "2",
		Question:      "Complete the pattern: 2, 6, 18, 54, ?",
		Type:          AptitudeLogical,
		Options:       []string{"108", "162", "216", "270"},
		CorrectAnswer: 1,
	},
	{
		ID:            "3",
		Question:      "Which word is most similar to \"Abundant\"?",
		Type:          AptitudeVerbal,
		Options:       []string{"Scarce", "Plentiful", "Limited", "Rare"},
		CorrectAnswer: 1,
	},
	{
		ID:            "4",
		Question:      "How many small cubes are needed to build a 4x4x4 cube?",
		Type:          AptitudeSpatial,
		Options:       []string{"16", "32", "48", "64"},
		CorrectAnswer: 3,
	},
	{
		ID:            "5",
		Question:      "Which shape comes next in the sequence: ○, △, □, ○, △, ?",
		Type:          AptitudeAbstract,
		Options:       []string{"○", "△", "□", "◇"},
		CorrectAnswer: 2,
	},
	{
		ID:            "6",
		Question:      "If all Flippers are Gloops and some Gloops are Zingers, which statement must be true?",
		Type:          AptitudeLogical,
		Options: []string{
			"All Zingers are Flippers",
			"Some Flippers are Zingers",
			"All Flippers are Zingers",
			"Some Zingers might be Flippers",
		},
		CorrectAnswer: 3,
	},
	{
		ID:            "7",
		Question:      "Choose the word that best completes the analogy: Book : Page :: Tree : ?",
		Type:          AptitudeVerbal,
		Options:       []string{"Forest", "Leaf", "Branch", "Root"},
		CorrectAnswer: 1,
	},
	{
		ID:            "8",
		Question:      "What is 15% of 240?",
		Type:          AptitudeNumerical,
		Options:       []string{"24", "30", "36", "40"},
		CorrectAnswer: 2,
	},
	{
		ID:            "9",
		Question:      "Which 3D shape can be formed by folding this 2D pattern? [Imagine a cross-shaped pattern]",
		Type:          AptitudeSpatial,
		Options:       []string{"Cube", "Pyramid", "Cylinder", "Cone"},
		CorrectAnswer: 0,
	},
	{
		ID:            "10",
		Question:      "In the sequence 1, 1, 2, 3, 5, 8, 13, what is the next number?",
		Type:          AptitudeAbstract,
		Options:       []string{"18", "19", "20", "21"},
		CorrectAnswer: 3,
	},
}

var intelligenceTypes = []IntelligenceType{
	{
		Type:            "Linguistic",
		Description:     "Understanding and using language effectively",
		Characteristics: []string{"Good with words", "Enjoys reading and writing", "Strong verbal communication"},
	},
	{
		Type:            "Logical-Mathematical",
		Description:     "Working with numbers, patterns, and logical reasoning",
		Characteristics: []string{"Enjoys math and logic puzzles", "Good at pattern recognition", "Analytical thinking"},
	},
	{
		Type:            "Spatial-Visual",
		Description:     "Understanding visual and spatial information",
		Characteristics: []string{"Good spatial awareness", "Enjoys visual arts", "Can visualize in 3D"},
	},
	{
		Type:            "Musical",
		Description:     "Understanding and creating music",
		Characteristics: []string{"Good sense of rhythm", "Enjoys music", "Can recognize musical patterns"},
	},
	{
		Type:            "Bodily-Kinesthetic",
		Description:     "Using physical movement and coordination",
		Characteristics: []string{"Good coordination", "Learns through movement", "Enjoys physical activities"},
	},
	{
		Type:            "Interpersonal",
		Description:     "Understanding and working with others",
		Characteristics: []string{"Good with people", "Empathetic", "Natural leader or team player"},
	},
	{
		Type:            "Intrapersonal",
		Description:     "Understanding yourself and self-reflection",
		Characteristics: []string{"Self-aware", "Reflective", "Good at goal setting"},
	},
	{
		Type:            "Naturalist",
		Description:     "Understanding nature and environmental patterns",
		Characteristics: []string{"Connects with nature", "Good at categorizing", "Environmental awareness"},
	},
}
