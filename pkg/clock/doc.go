// Package clock provides calendar-day helpers for circulation date math.
//
// Every date in the circulation domain is a whole UTC day: loan periods, due
// dates and bans are pure day counts with no time-of-day, timezone or DST
// semantics. The package normalizes timestamps to UTC midnight and offers a
// small Clock interface so "today" can be pinned in tests.
//
//	day := clock.Date(2025, time.October, 1)
//	due := clock.AddDays(day, 30)
//	late := clock.DaysBetween(due, returned)
//
// Use clock.System() in applications and clock.Fixed(day) in tests.
package clock
