package database

import (
	"encoding/json"
	"log"

	"edulift_backend/internal/model"

	"gorm.io/gorm"
)

// Seed loads the demo tests and question bank on first startup. An already
// populated database is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Test{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(seedTests()).Error; err != nil {
		return err
	}
	if err := db.Create(seedQuestions()).Error; err != nil {
		return err
	}

	log.Println("Seeded demo tests and questions")
	return nil
}

func choices(options ...string) json.RawMessage {
	data, _ := json.Marshal(options)
	return data
}

func seedTests() []model.Test {
	return []model.Test{
		{Title: "Information Technology Fundamentals", Description: "Test your knowledge of basic IT concepts, web development, and systems", Subject: "Information Technology", Duration: 45, TotalQuestions: 8, DifficultyLevel: model.DifficultyMedium, Adaptive: true, Status: model.TestPublished},
		{Title: "Artificial Intelligence Assessment", Description: "Explore AI fundamentals, algorithms, and applications", Subject: "Artificial Intelligence", Duration: 60, TotalQuestions: 10, DifficultyLevel: model.DifficultyHard, Adaptive: true, Status: model.TestPublished},
		{Title: "Machine Learning Concepts", Description: "Test your understanding of ML algorithms, types, and evaluation", Subject: "Machine Learning", Duration: 50, TotalQuestions: 9, DifficultyLevel: model.DifficultyHard, Adaptive: true, Status: model.TestPublished},
		{Title: "IQ Assessment Test", Description: "Measure your logical reasoning, pattern recognition, and problem-solving skills", Subject: "IQ Test", Duration: 40, TotalQuestions: 12, DifficultyLevel: model.DifficultyMedium, Adaptive: false, Status: model.TestPublished},
		{Title: "General Science Test", Description: "Comprehensive test covering biology, chemistry, and physics", Subject: "Science Test", Duration: 45, TotalQuestions: 10, DifficultyLevel: model.DifficultyMedium, Adaptive: false, Status: model.TestPublished},
		{Title: "Statistics and Data Analysis", Description: "Test your knowledge of statistical concepts, measures, and analysis", Subject: "Statistics", Duration: 40, TotalQuestions: 8, DifficultyLevel: model.DifficultyMedium, Adaptive: true, Status: model.TestPublished},
		{Title: "Mathematics Proficiency Test", Description: "Comprehensive math test covering algebra, geometry, and functions", Subject: "Mathematics", Duration: 50, TotalQuestions: 10, DifficultyLevel: model.DifficultyMedium, Adaptive: true, Status: model.TestPublished},
		{Title: "Network Fundamentals", Description: "Test your understanding of networking concepts, protocols, and OSI model", Subject: "Network", Duration: 35, TotalQuestions: 7, DifficultyLevel: model.DifficultyMedium, Adaptive: false, Status: model.TestPublished},
		{Title: "Music Theory and History", Description: "Explore music theory, rhythm, and classical composers", Subject: "Music", Duration: 30, TotalQuestions: 6, DifficultyLevel: model.DifficultyEasy, Adaptive: false, Status: model.TestPublished},
		{Title: "Commerce and Economics", Description: "Test your knowledge of economic concepts, accounting, and business principles", Subject: "Commerce", Duration: 40, TotalQuestions: 8, DifficultyLevel: model.DifficultyMedium, Adaptive: true, Status: model.TestPublished},
		{Title: "Art Appreciation and History", Description: "Explore art movements, famous artists, and color theory", Subject: "Art", Duration: 25, TotalQuestions: 5, DifficultyLevel: model.DifficultyEasy, Adaptive: false, Status: model.TestPublished},
		{Title: "Social Science Comprehensive Test", Description: "Test your knowledge of geography, history, political science, and social studies", Subject: "Social Science", Duration: 35, TotalQuestions: 8, DifficultyLevel: model.DifficultyMedium, Adaptive: true, Status: model.TestPublished},
	}
}

func seedQuestions() []model.Question {
	return []model.Question{
		// Information Technology
		{Question: "What does HTML stand for?", Type: model.MultipleChoice, Options: choices("Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"), CorrectAnswer: "Hyper Text Markup Language", Difficulty: model.DifficultyEasy, Subject: "Information Technology", Topic: "Web Development", Points: 1},
		{Question: "Which protocol is used for secure data transmission over the internet?", Type: model.MultipleChoice, Options: choices("HTTP", "HTTPS", "FTP", "SMTP"), CorrectAnswer: "HTTPS", Difficulty: model.DifficultyMedium, Subject: "Information Technology", Topic: "Network Security", Points: 2},
		{Question: "What is the main purpose of an operating system?", Type: model.MultipleChoice, Options: choices("To run applications", "To manage hardware resources", "To provide user interface", "All of the above"), CorrectAnswer: "All of the above", Difficulty: model.DifficultyMedium, Subject: "Information Technology", Topic: "Operating Systems", Points: 2},
		// Artificial Intelligence
		{Question: "What is the primary goal of artificial intelligence?", Type: model.MultipleChoice, Options: choices("To replace humans", "To simulate human intelligence", "To create robots", "To process data faster"), CorrectAnswer: "To simulate human intelligence", Difficulty: model.DifficultyEasy, Subject: "Artificial Intelligence", Topic: "AI Fundamentals", Points: 1},
		{Question: "Which algorithm is commonly used for decision-making in AI?", Type: model.MultipleChoice, Options: choices("Linear Search", "Decision Tree", "Bubble Sort", "Binary Search"), CorrectAnswer: "Decision Tree", Difficulty: model.DifficultyMedium, Subject: "Artificial Intelligence", Topic: "AI Algorithms", Points: 2},
		{Question: "What does NLP stand for in AI?", Type: model.MultipleChoice, Options: choices("Natural Language Processing", "Neural Language Programming", "Network Learning Protocol", "New Learning Process"), CorrectAnswer: "Natural Language Processing", Difficulty: model.DifficultyMedium, Subject: "Artificial Intelligence", Topic: "Natural Language Processing", Points: 2},
		// Machine Learning
		{Question: "What are the three main types of machine learning?", Type: model.MultipleChoice, Options: choices("Supervised, Unsupervised, Reinforcement", "Linear, Non-linear, Deep", "Classification, Regression, Clustering", "Training, Testing, Validation"), CorrectAnswer: "Supervised, Unsupervised, Reinforcement", Difficulty: model.DifficultyMedium, Subject: "Machine Learning", Topic: "ML Types", Points: 2},
		{Question: "Which algorithm is used for linear regression?", Type: model.MultipleChoice, Options: choices("K-Means", "Decision Tree", "Gradient Descent", "Random Forest"), CorrectAnswer: "Gradient Descent", Difficulty: model.DifficultyHard, Subject: "Machine Learning", Topic: "Regression", Points: 3},
		{Question: "What is overfitting in machine learning?", Type: model.MultipleChoice, Options: choices("Model performs well on training data but poorly on test data", "Model performs poorly on both training and test data", "Model takes too long to train", "Model uses too much memory"), CorrectAnswer: "Model performs well on training data but poorly on test data", Difficulty: model.DifficultyMedium, Subject: "Machine Learning", Topic: "Model Evaluation", Points: 2},
		// IQ Test
		{Question: "What comes next in the sequence: 2, 4, 8, 16, ?", Type: model.MultipleChoice, Options: choices("24", "32", "20", "18"), CorrectAnswer: "32", Difficulty: model.DifficultyEasy, Subject: "IQ Test", Topic: "Pattern Recognition", Points: 1},
		{Question: "If all Bloops are Razzles and all Razzles are Lazzles, then all Bloops are definitely Lazzles.", Type: model.TrueFalse, CorrectAnswer: "true", Difficulty: model.DifficultyMedium, Subject: "IQ Test", Topic: "Logical Reasoning", Points: 2},
		{Question: "Which word does not belong: Apple, Orange, Banana, Carrot?", Type: model.MultipleChoice, Options: choices("Apple", "Orange", "Banana", "Carrot"), CorrectAnswer: "Carrot", Difficulty: model.DifficultyEasy, Subject: "IQ Test", Topic: "Classification", Points: 1},
		// Science Test
		{Question: "What is the process by which plants make their own food?", Type: model.MultipleChoice, Options: choices("Respiration", "Photosynthesis", "Digestion", "Excretion"), CorrectAnswer: "Photosynthesis", Difficulty: model.DifficultyEasy, Subject: "Science Test", Topic: "Biology", Points: 1},
		{Question: "What is the chemical symbol for water?", Type: model.MultipleChoice, Options: choices("H2O", "CO2", "NaCl", "CH4"), CorrectAnswer: "H2O", Difficulty: model.DifficultyEasy, Subject: "Science Test", Topic: "Chemistry", Points: 1},
		{Question: "What force keeps planets in orbit around the sun?", Type: model.MultipleChoice, Options: choices("Magnetic force", "Gravitational force", "Electric force", "Nuclear force"), CorrectAnswer: "Gravitational force", Difficulty: model.DifficultyMedium, Subject: "Science Test", Topic: "Physics", Points: 2},
		// Statistics
		{Question: "What is the mean of the numbers: 2, 4, 6, 8, 10?", Type: model.MultipleChoice, Options: choices("5", "6", "7", "8"), CorrectAnswer: "6", Difficulty: model.DifficultyEasy, Subject: "Statistics", Topic: "Descriptive Statistics", Points: 1},
		{Question: "What is the median of: 1, 3, 3, 6, 7, 8, 9?", Type: model.MultipleChoice, Options: choices("3", "6", "7", "5.28"), CorrectAnswer: "6", Difficulty: model.DifficultyMedium, Subject: "Statistics", Topic: "Central Tendency", Points: 2},
		{Question: "What does a correlation coefficient of -1 indicate?", Type: model.MultipleChoice, Options: choices("Perfect positive correlation", "Perfect negative correlation", "No correlation", "Weak correlation"), CorrectAnswer: "Perfect negative correlation", Difficulty: model.DifficultyHard, Subject: "Statistics", Topic: "Correlation", Points: 3},
		// Mathematics
		{Question: "Solve for x: 2x + 5 = 13", Type: model.MultipleChoice, Options: choices("3", "4", "5", "6"), CorrectAnswer: "4", Difficulty: model.DifficultyMedium, Subject: "Mathematics", Topic: "Algebra", Points: 2},
		{Question: "Calculate the area of a circle with radius 5 units. (Use π = 3.14)", Type: model.ShortAnswer, CorrectAnswer: "78.5", Difficulty: model.DifficultyMedium, Subject: "Mathematics", Topic: "Geometry", Points: 3},
		{Question: "If f(x) = 3x² + 2x - 1, what is f(2)?", Type: model.MultipleChoice, Options: choices("13", "15", "17", "19"), CorrectAnswer: "15", Difficulty: model.DifficultyHard, Subject: "Mathematics", Topic: "Functions", Points: 3},
		// Network
		{Question: "What does IP stand for in networking?", Type: model.MultipleChoice, Options: choices("Internet Protocol", "Internal Process", "Information Package", "Integrated Platform"), CorrectAnswer: "Internet Protocol", Difficulty: model.DifficultyEasy, Subject: "Network", Topic: "Network Protocols", Points: 1},
		{Question: "Which OSI layer is responsible for routing?", Type: model.MultipleChoice, Options: choices("Physical Layer", "Data Link Layer", "Network Layer", "Transport Layer"), CorrectAnswer: "Network Layer", Difficulty: model.DifficultyMedium, Subject: "Network", Topic: "OSI Model", Points: 2},
		{Question: "What is the default subnet mask for a Class C network?", Type: model.MultipleChoice, Options: choices("255.0.0.0", "255.255.0.0", "255.255.255.0", "255.255.255.255"), CorrectAnswer: "255.255.255.0", Difficulty: model.DifficultyHard, Subject: "Network", Topic: "Subnetting", Points: 3},
		// Music
		{Question: "How many lines does a musical staff have?", Type: model.MultipleChoice, Options: choices("4", "5", "6", "7"), CorrectAnswer: "5", Difficulty: model.DifficultyEasy, Subject: "Music", Topic: "Music Theory", Points: 1},
		{Question: "What is the time signature of a waltz?", Type: model.MultipleChoice, Options: choices("2/4", "3/4", "4/4", "6/8"), CorrectAnswer: "3/4", Difficulty: model.DifficultyMedium, Subject: "Music", Topic: "Rhythm", Points: 2},
		{Question: "Who composed \"The Four Seasons\"?", Type: model.MultipleChoice, Options: choices("Bach", "Mozart", "Vivaldi", "Beethoven"), CorrectAnswer: "Vivaldi", Difficulty: model.DifficultyMedium, Subject: "Music", Topic: "Classical Music", Points: 2},
		// Commerce
		{Question: "What does GDP stand for?", Type: model.MultipleChoice, Options: choices("Gross Domestic Product", "General Development Plan", "Global Distribution Process", "Government Development Policy"), CorrectAnswer: "Gross Domestic Product", Difficulty: model.DifficultyEasy, Subject: "Commerce", Topic: "Economics", Points: 1},
		{Question: "What is the accounting equation?", Type: model.MultipleChoice, Options: choices("Assets = Liabilities + Equity", "Revenue = Expenses + Profit", "Cash = Income - Expenses", "Profit = Revenue - Costs"), CorrectAnswer: "Assets = Liabilities + Equity", Difficulty: model.DifficultyMedium, Subject: "Commerce", Topic: "Accounting", Points: 2},
		{Question: "What is inflation?", Type: model.MultipleChoice, Options: choices("Decrease in prices", "Increase in general price level", "Increase in unemployment", "Decrease in GDP"), CorrectAnswer: "Increase in general price level", Difficulty: model.DifficultyMedium, Subject: "Commerce", Topic: "Economic Concepts", Points: 2},
		// Art
		{Question: "Who painted the Mona Lisa?", Type: model.MultipleChoice, Options: choices("Van Gogh", "Picasso", "Da Vinci", "Monet"), CorrectAnswer: "Da Vinci", Difficulty: model.DifficultyEasy, Subject: "Art", Topic: "Renaissance Art", Points: 1},
		{Question: "What are the three primary colors?", Type: model.MultipleChoice, Options: choices("Red, Blue, Yellow", "Red, Green, Blue", "Blue, Yellow, Orange", "Red, Yellow, Purple"), CorrectAnswer: "Red, Blue, Yellow", Difficulty: model.DifficultyEasy, Subject: "Art", Topic: "Color Theory", Points: 1},
		{Question: "Which art movement is Pablo Picasso associated with?", Type: model.MultipleChoice, Options: choices("Impressionism", "Cubism", "Surrealism", "Abstract Expressionism"), CorrectAnswer: "Cubism", Difficulty: model.DifficultyMedium, Subject: "Art", Topic: "Art Movements", Points: 2},
		// Social Science
		{Question: "What is the largest continent by land area?", Type: model.MultipleChoice, Options: choices("Africa", "Asia", "North America", "Europe"), CorrectAnswer: "Asia", Difficulty: model.DifficultyEasy, Subject: "Social Science", Topic: "Geography", Points: 1},
		{Question: "Who was the first President of the United States?", Type: model.MultipleChoice, Options: choices("Thomas Jefferson", "George Washington", "John Adams", "Benjamin Franklin"), CorrectAnswer: "George Washington", Difficulty: model.DifficultyEasy, Subject: "Social Science", Topic: "History", Points: 1},
		{Question: "What is the study of human behavior and societies called?", Type: model.MultipleChoice, Options: choices("Psychology", "Sociology", "Anthropology", "All of the above"), CorrectAnswer: "All of the above", Difficulty: model.DifficultyMedium, Subject: "Social Science", Topic: "Social Studies", Points: 2},
		{Question: "Which river is the longest in the world?", Type: model.MultipleChoice, Options: choices("Amazon River", "Nile River", "Mississippi River", "Yangtze River"), CorrectAnswer: "Nile River", Difficulty: model.DifficultyMedium, Subject: "Social Science", Topic: "Geography", Points: 2},
		{Question: "What does democracy mean?", Type: model.MultipleChoice, Options: choices("Rule by one person", "Rule by the wealthy", "Rule by the people", "Rule by military"), CorrectAnswer: "Rule by the people", Difficulty: model.DifficultyEasy, Subject: "Social Science", Topic: "Political Science", Points: 1},
	}
}
