package viewmodel

// SkillWeight is one slice of the skill distribution chart.
type SkillWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// SkillDistribution takes the first opts.SkillCount skills in their stored
// order and assigns each a weight of max(100 - step*i, floor). Weights never
// increase along the result and the order is never changed.
func SkillDistribution(skills []string, opts Options) []SkillWeight {
	n := min(len(skills), opts.SkillCount)
	if n <= 0 {
		return []SkillWeight{}
	}

	out := make([]SkillWeight, n)
	for i := 0; i < n; i++ {
		out[i] = SkillWeight{
			Name:   skills[i],
			Weight: max(100-opts.SkillWeightStep*i, opts.SkillWeightFloor),
		}
	}
	return out
}
