package models

// Difficulty tags one quiz question with how hard its distractors are.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizQuestion is one multiple-choice question. Options always holds
// exactly 4 shuffled strings with the correct answer included once.
// Immutable once produced.
type QuizQuestion struct {
	TargetItemID  string     `json:"target_item_id"`
	PromptWord    string     `json:"prompt_word"`
	CorrectAnswer string     `json:"correct_answer"`
	Options       []string   `json:"options"`
	Difficulty    Difficulty `json:"difficulty"`
}

// SessionDifficultyPlan says how many questions of each difficulty a
// session should contain. The three counts sum to the requested total.
type SessionDifficultyPlan struct {
	EasyCount   int `json:"easy_count"`
	MediumCount int `json:"medium_count"`
	HardCount   int `json:"hard_count"`
}
