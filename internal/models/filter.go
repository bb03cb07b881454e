package models

// Filter holds the three dashboard filter inputs. The predicates are
// combined as a conjunction. An empty Topics set selects every topic,
// matching the dashboard default where all topics are checked.
type Filter struct {
	Topics        map[string]struct{}
	MinTrust      float64
	MinConfidence float64
}

// NewFilter builds a Filter from a list of topic labels.
func NewFilter(topics []string, minTrust, minConfidence float64) Filter {
	f := Filter{MinTrust: minTrust, MinConfidence: minConfidence}
	if len(topics) > 0 {
		f.Topics = make(map[string]struct{}, len(topics))
		for _, t := range topics {
			f.Topics[t] = struct{}{}
		}
	}
	return f
}

// Matches reports whether the post satisfies all three predicates.
func (f Filter) Matches(p *Post) bool {
	if len(f.Topics) > 0 {
		if _, ok := f.Topics[p.Topic]; !ok {
			return false
		}
	}
	return p.TrustScore >= f.MinTrust && p.PredictedConfidence >= f.MinConfidence
}
