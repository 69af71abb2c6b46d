package critique

import "fmt"

// Rating is the closed four-value assessment level returned per criterion.
// There is deliberately no default case: an unrecognized wire value is a
// decode error, never coerced to a fallback rating.
type Rating string

const (
	RatingExceeding    Rating = "Exceeding"
	RatingAccomplished Rating = "Accomplished"
	RatingDeveloping   Rating = "Developing"
	RatingNotEvident   Rating = "Not Evident"
)

func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingExceeding, RatingAccomplished, RatingDeveloping, RatingNotEvident:
		return Rating(s), nil
	}
	return "", fmt.Errorf("unknown rating value %q", s)
}
