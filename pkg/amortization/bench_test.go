package amortization

import "testing"

// Schedules are recomputed on every request, so the build cost is the hot
// path of the schedule and summary endpoints.
func BenchmarkBuildSchedule(b *testing.B) {
	b.Run("12-month loan", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			BuildSchedule(0.1, 1000, 12)
		}
	})

	b.Run("360-month mortgage", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			BuildSchedule(0.045, 250000, 360)
		}
	})
}

func BenchmarkSummarize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Summarize(0.045, 250000, 360, 180)
	}
}
