// Package quiz реализует тест на определение уровня английского языка:
// фиксированный банк из 15 вопросов с вариантами ответов и
// маппинг итогового балла на уровень.
package quiz

// Question один вопрос теста
type Question struct {
	Prompt  string
	Options []string
	Correct int // индекс правильного варианта
}

// questions фиксированный банк вопросов. Порядок важен.
var questions = []Question{
	{"My sister ____ at home now.", []string{"am", "is", "are", "be"}, 1},
	{"This is ____ car. We drive it every day.", []string{"I", "our", "their", "she"}, 1},
	{"He always ____ his homework after school.", []string{"do", "doing", "does", "did"}, 2},
	{"I want to buy ____ umbrella.", []string{"a", "an", "the", "no article"}, 1},
	{"They ____ to Paris last year.", []string{"go", "going", "went", "goes"}, 2},
	{"I ____ this film three times already.", []string{"see", "saw", "have seen", "seeing"}, 2},
	{"You ____ study harder if you want to pass the exam.", []string{"might", "should", "must", "can"}, 1},
	{"This book is ____ interesting than the last one.", []string{"many", "much", "more", "most"}, 2},
	{"If it ____ tomorrow, we will stay at home.", []string{"will rain", "rains", "rained", "raining"}, 1},
	{"The meeting was postponed ____ the manager’s illness.", []string{"despite", "because", "due to", "although"}, 2},
	{"She avoids ____ late at night.", []string{"to drive", "drive", "driving", "drove"}, 2},
	{"When the phone ____, I was having dinner.", []string{"rang", "ring", "was ringing", "has rung"}, 0},
	{"If I had a million dollars, I ____ around the world.", []string{"will travel", "would travel", "travel", "travelled"}, 1},
	{"She has lived in London ____ ten years.", []string{"since", "for", "on", "at"}, 1},
	{"The new hospital ____ next year.", []string{"build", "will be built", "is building", "built"}, 1},
}

// Len количество вопросов в банке
func Len() int {
	return len(questions)
}

// Get возвращает вопрос по индексу и false если индекс вне банка
func Get(index int) (Question, bool) {
	if index < 0 || index >= len(questions) {
		return Question{}, false
	}
	return questions[index], true
}

// IsCorrect проверяет вариант ответа на вопрос.
// Индекс вопроса или ответа вне диапазона — всегда false.
func IsCorrect(questionIndex, answerIndex int) bool {
	q, ok := Get(questionIndex)
	if !ok {
		return false
	}
	return answerIndex >= 0 && answerIndex < len(q.Options) && answerIndex == q.Correct
}

// Level возвращает уровень по итоговому баллу.
// Пороги: <5 Beginner/Elementary, <9 Pre-Intermediate,
// <13 Intermediate, иначе Upper-Intermediate/Advanced.
func Level(score int) string {
	switch {
	case score < 5:
		return "Beginner / Elementary"
	case score < 9:
		return "Pre-Intermediate"
	case score < 13:
		return "Intermediate"
	default:
		return "Upper-Intermediate / Advanced"
	}
}
