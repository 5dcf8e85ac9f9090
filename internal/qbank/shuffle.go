package qbank

import "math/rand/v2"

// Shuffle permutes each question's choices with the supplied generator and
// recomputes the answer letter for the new ordering. Questions are
// processed independently, in input order, so a fixed seed reproduces the
// exact same output sequence.
//
// Shuffle is total for Parse output: every question carries all four
// letters, so the original-answer lookup always succeeds.
func Shuffle(questions []Question, rng *rand.Rand) []ShuffledQuestion {
	shuffled := make([]ShuffledQuestion, 0, len(questions))

	for _, q := range questions {
		working := make([]Choice, len(q.Choices))
		copy(working, q.Choices)
		rng.Shuffle(len(working), func(i, j int) {
			working[i], working[j] = working[j], working[i]
		})

		correctIdx := 0
		texts := make([]string, len(working))
		for idx, c := range working {
			texts[idx] = c.Text
			if c.Letter == q.AnswerLetter {
				correctIdx = idx
			}
		}

		shuffled = append(shuffled, ShuffledQuestion{
			StemLines:       q.StemLines,
			ShuffledChoices: texts,
			NewAnswerLetter: LetterAt(correctIdx),
		})
	}

	return shuffled
}
