package predictive

// NoOpScorer is used when predictive caching is disabled.
type NoOpScorer struct{}

func (s *NoOpScorer) Record(string)              {}
func (s *NoOpScorer) Decay() int                 { return 0 }
func (s *NoOpScorer) Scores() map[string]float64 { return nil }
