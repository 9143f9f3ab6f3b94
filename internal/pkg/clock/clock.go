package clock

import "time"

// Clock отдаёт текущее время; подменяется в тестах.
type Clock interface {
	Now() time.Time
}

// RealClock возвращает системное время.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock: управляемые часы для тестов.
type FakeClock struct {
	now time.Time
}

func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
