package games

import (
	"Planta-Backend/domain"
	"math/rand"
)

type (
	GamesService interface {
		ListGames() []domain.GameSummary
		GetGame(kind string) (interface{}, error)
		CheckAnswer(kind string, req domain.GameAnswerRequest) (domain.GameAnswerResponse, error)
	}

	quizEntry struct {
		question    domain.QuizQuestion
		answer      int
		explanation string
	}

	trueFalseEntry struct {
		question    domain.TrueFalseQuestion
		truth       bool
		explanation string
	}

	gamesService struct{}
)

func NewGamesService() GamesService {
	return &gamesService{}
}

var gameSummaries = []domain.GameSummary{
	{Kind: domain.GameSequencing, Title: "Life of a Plant", Description: "Put the growth stages in order."},
	{Kind: domain.GameQuiz, Title: "Plant Trivia", Description: "Answer multiple-choice questions."},
	{Kind: domain.GameMatching, Title: "Magic Pairs", Description: "Match plant parts to what they do."},
	{Kind: domain.GameTrueFalse, Title: "Fact or Fiction?", Description: "Decide whether each statement is true."},
}

// lifeCycleStages is the correct order; the game serves them shuffled.
var lifeCycleStages = []domain.GameCard{
	{ID: "seed", Label: "Seed"},
	{ID: "sprout", Label: "Sprout"},
	{ID: "seedling", Label: "Seedling"},
	{ID: "mature", Label: "Mature plant"},
	{ID: "flower", Label: "Flowering"},
	{ID: "fruit", Label: "Fruiting"},
}

var quizBank = []quizEntry{
	{
		question: domain.QuizQuestion{
			ID:      "q1",
			Text:    "What do plants use to make their own food?",
			Options: []string{"Moonlight", "Photosynthesis", "Soil alone", "Wind"},
		},
		answer:      1,
		explanation: "Plants turn sunlight, water and carbon dioxide into food through photosynthesis.",
	},
	{
		question: domain.QuizQuestion{
			ID:      "q2",
			Text:    "Which part of the plant absorbs most of its water?",
			Options: []string{"Leaves", "Flowers", "Roots", "Stem"},
		},
		answer:      2,
		explanation: "Roots take up water and nutrients from the soil.",
	},
	{
		question: domain.QuizQuestion{
			ID:      "q3",
			Text:    "Succulents are adapted to survive in which conditions?",
			Options: []string{"Dry conditions", "Deep shade", "Frozen soil", "Underwater"},
		},
		answer:      0,
		explanation: "Succulents store water in their thick leaves to survive drought.",
	},
	{
		question: domain.QuizQuestion{
			ID:      "q4",
			Text:    "What is the main reason leaves are green?",
			Options: []string{"Chlorophyll", "Water", "Nitrogen", "Sugar"},
		},
		answer:      0,
		explanation: "Chlorophyll, the pigment that captures light, is green.",
	},
}

// matchingPairs maps each part card to the function card with the same ID.
var matchingPairs = []struct {
	id       string
	part     string
	function string
}{
	{id: "root", part: "Roots", function: "Absorb water and nutrients"},
	{id: "stem", part: "Stem", function: "Carries water up to the leaves"},
	{id: "leaf", part: "Leaves", function: "Make food from sunlight"},
	{id: "flower", part: "Flower", function: "Attracts pollinators"},
	{id: "fruit", part: "Fruit", function: "Protects and spreads seeds"},
}

var trueFalseBank = []trueFalseEntry{
	{
		question:    domain.TrueFalseQuestion{ID: "tf1", Text: "Watering plants every hour keeps them healthiest."},
		truth:       false,
		explanation: "Overwatering suffocates roots; most plants prefer drying out between waterings.",
	},
	{
		question:    domain.TrueFalseQuestion{ID: "tf2", Text: "Some plants can live without soil."},
		truth:       true,
		explanation: "Air plants and hydroponic plants grow without soil.",
	},
	{
		question:    domain.TrueFalseQuestion{ID: "tf3", Text: "Plants release oxygen during photosynthesis."},
		truth:       true,
		explanation: "Oxygen is a byproduct of photosynthesis.",
	},
	{
		question:    domain.TrueFalseQuestion{ID: "tf4", Text: "Yellowing leaves always mean a plant needs more water."},
		truth:       false,
		explanation: "Yellow leaves can also mean too much water, poor light or missing nutrients.",
	},
}

func (s *gamesService) ListGames() []domain.GameSummary {
	return gameSummaries
}

func (s *gamesService) GetGame(kind string) (interface{}, error) {
	switch kind {
	case domain.GameSequencing:
		return domain.SequencingGame{
			Prompt: "Arrange the stages of a plant's life in order.",
			Stages: shuffledCards(lifeCycleStages),
		}, nil

	case domain.GameQuiz:
		questions := make([]domain.QuizQuestion, 0, len(quizBank))
		for _, e := range quizBank {
			questions = append(questions, e.question)
		}
		return questions, nil

	case domain.GameMatching:
		parts := make([]domain.GameCard, 0, len(matchingPairs))
		functions := make([]domain.GameCard, 0, len(matchingPairs))
		for _, p := range matchingPairs {
			parts = append(parts, domain.GameCard{ID: p.id, Label: p.part})
			functions = append(functions, domain.GameCard{ID: p.id, Label: p.function})
		}
		return domain.MatchingGame{
			Prompt:    "Match each plant part with its function.",
			Parts:     shuffledCards(parts),
			Functions: shuffledCards(functions),
		}, nil

	case domain.GameTrueFalse:
		questions := make([]domain.TrueFalseQuestion, 0, len(trueFalseBank))
		for _, e := range trueFalseBank {
			questions = append(questions, e.question)
		}
		return questions, nil
	}
	return nil, domain.ErrGameNotFound
}

func (s *gamesService) CheckAnswer(kind string, req domain.GameAnswerRequest) (domain.GameAnswerResponse, error) {
	switch kind {
	case domain.GameSequencing:
		if len(req.Order) != len(lifeCycleStages) {
			return domain.GameAnswerResponse{}, domain.ErrInvalidAnswer
		}
		for i, id := range req.Order {
			if id != lifeCycleStages[i].ID {
				return domain.GameAnswerResponse{Correct: false}, nil
			}
		}
		return domain.GameAnswerResponse{Correct: true}, nil

	case domain.GameQuiz:
		for _, e := range quizBank {
			if e.question.ID == req.QuestionID {
				if req.Option < 0 || req.Option >= len(e.question.Options) {
					return domain.GameAnswerResponse{}, domain.ErrInvalidAnswer
				}
				return domain.GameAnswerResponse{
					Correct:     req.Option == e.answer,
					Explanation: e.explanation,
				}, nil
			}
		}
		return domain.GameAnswerResponse{}, domain.ErrQuestionNotFound

	case domain.GameMatching:
		if req.MatchID == "" {
			return domain.GameAnswerResponse{}, domain.ErrInvalidAnswer
		}
		for _, p := range matchingPairs {
			if p.id == req.QuestionID {
				return domain.GameAnswerResponse{Correct: req.MatchID == p.id}, nil
			}
		}
		return domain.GameAnswerResponse{}, domain.ErrQuestionNotFound

	case domain.GameTrueFalse:
		if req.Claim == nil {
			return domain.GameAnswerResponse{}, domain.ErrInvalidAnswer
		}
		for _, e := range trueFalseBank {
			if e.question.ID == req.QuestionID {
				return domain.GameAnswerResponse{
					Correct:     *req.Claim == e.truth,
					Explanation: e.explanation,
				}, nil
			}
		}
		return domain.GameAnswerResponse{}, domain.ErrQuestionNotFound
	}
	return domain.GameAnswerResponse{}, domain.ErrGameNotFound
}

func shuffledCards(cards []domain.GameCard) []domain.GameCard {
	out := make([]domain.GameCard, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
