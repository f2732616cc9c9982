package bank

import "github.com/quizboard/quizboard-backend/internal/model"

// DefaultBank returns the built-in fallback bank used whenever a configured
// bank cannot be loaded. It must stay Strict-valid by construction; the
// loader relies on it never failing.
func DefaultBank() *model.QuestionBank {
	return &model.QuestionBank{
		Subject: "General Knowledge",
		Categories: []model.Category{
			{
				ID:   "1",
				Name: "History",
				Questions: []model.Question{
					{
						ID:            "1",
						Text:          "In which year did World War II end?",
						Options:       []string{"1943", "1944", "1945", "1946"},
						CorrectAnswer: 2,
						Points:        100,
					},
					{
						ID:            "2",
						Text:          "Who was the first president of the United States?",
						Options:       []string{"Thomas Jefferson", "George Washington", "John Adams", "Benjamin Franklin"},
						CorrectAnswer: 1,
						Points:        200,
					},
					{
						ID:            "3",
						Text:          "Which empire built the Colosseum?",
						Options:       []string{"Greek", "Roman", "Ottoman", "Byzantine"},
						CorrectAnswer: 1,
						Points:        300,
					},
				},
			},
			{
				ID:   "2",
				Name: "Geography",
				Questions: []model.Question{
					{
						ID:            "4",
						Text:          "What is the longest river in the world?",
						Options:       []string{"Nile", "Amazon", "Yangtze", "Mississippi"},
						CorrectAnswer: 1,
						Points:        100,
					},
					{
						ID:            "5",
						Text:          "What is the capital of Australia?",
						Options:       []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
						CorrectAnswer: 2,
						Points:        200,
					},
					{
						ID:            "6",
						Text:          "What is the highest mountain on Earth?",
						Options:       []string{"K2", "Everest", "Kangchenjunga", "Lhotse"},
						CorrectAnswer: 1,
						Points:        300,
					},
				},
			},
			{
				ID:   "3",
				Name: "Science",
				Questions: []model.Question{
					{
						ID:            "7",
						Text:          "Which element has the chemical symbol 'O'?",
						Options:       []string{"Osmium", "Oxygen", "Gold", "Tin"},
						CorrectAnswer: 1,
						Points:        100,
					},
					{
						ID:            "8",
						Text:          "How many planets are in the Solar System?",
						Options:       []string{"7", "8", "9", "10"},
						CorrectAnswer: 1,
						Points:        200,
					},
					{
						ID:            "9",
						Text:          "Who formulated the law of universal gravitation?",
						Options:       []string{"Albert Einstein", "Isaac Newton", "Galileo Galilei", "Nicolaus Copernicus"},
						CorrectAnswer: 1,
						Points:        300,
					},
				},
			},
			{
				ID:   "4",
				Name: "Literature",
				Questions: []model.Question{
					{
						ID:            "10",
						Text:          "Who wrote 'War and Peace'?",
						Options:       []string{"Fyodor Dostoevsky", "Leo Tolstoy", "Anton Chekhov", "Ivan Turgenev"},
						CorrectAnswer: 1,
						Points:        100,
					},
					{
						ID:            "11",
						Text:          "Who is the author of 'Romeo and Juliet'?",
						Options:       []string{"William Shakespeare", "Christopher Marlowe", "Oscar Wilde", "Charles Dickens"},
						CorrectAnswer: 0,
						Points:        200,
					},
					{
						ID:            "12",
						Text:          "Who wrote 'The Master and Margarita'?",
						Options:       []string{"Mikhail Bulgakov", "Boris Pasternak", "Vladimir Nabokov", "Maxim Gorky"},
						CorrectAnswer: 0,
						Points:        300,
					},
				},
			},
		},
	}
}
