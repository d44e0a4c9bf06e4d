package adapter

import "time"

//go:generate mockgen -source=clock.go -destination=../mocks/mock_clock.go -package=mocks

// Clock abstracts time for testing
type Clock interface {
	Now() time.Time
}

// RealClock uses the system time
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
