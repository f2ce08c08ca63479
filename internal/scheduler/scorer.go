package scheduler

// SubjectScoringInput carries the state needed to rank one subject on one
// day.
type SubjectScoringInput struct {
	Subject              string
	DaysSinceLastStudied int
	RemainingBudget      int
	WeeklyTarget         int
	Weights              ScoringWeights
}

// ScoreSubject ranks a candidate subject: long-neglected subjects and
// subjects with budget left this week come first.
func ScoreSubject(input SubjectScoringInput) float64 {
	var score float64
	factors := []func(SubjectScoringInput) float64{
		scoreRecency,
		scoreBudget,
	}
	for _, f := range factors {
		score += f(input)
	}
	return score
}

func scoreRecency(input SubjectScoringInput) float64 {
	return float64(input.DaysSinceLastStudied) * input.Weights.Recency
}

func scoreBudget(input SubjectScoringInput) float64 {
	if input.WeeklyTarget <= 0 {
		return 0
	}
	return float64(input.RemainingBudget) / float64(input.WeeklyTarget) * input.Weights.Budget
}
