package pyramid

// Mirror returns base followed by mirrors extra passes stacked from topY upwards.
// Passes alternate orientation, the first one inverted. An upright-to-inverted pass walks
// base from second-widest down to widest; an inverted-to-upright pass walks from the second
// step up to the apex. The first base step is never repeated, so a single-step base adds nothing.
// base is not modified.
func Mirror(base []Step, mirrors int, stepHeight, topY float32) []Step {
	n := len(base)
	extra := 0
	if mirrors > 0 && n > 1 {
		extra = mirrors * (n - 1)
	}
	steps := make([]Step, 0, n+extra)
	steps = append(steps, base...)

	inverted := false
	for m := 0; m < mirrors; m++ {
		if !inverted {
			for k := n - 2; k >= 0; k-- {
				steps = append(steps, Step{Side: base[k].Side, BottomY: topY, Height: stepHeight, Inverted: true})
				topY += stepHeight
			}
		} else {
			for k := 1; k <= n-1; k++ {
				steps = append(steps, Step{Side: base[k].Side, BottomY: topY, Height: stepHeight, Inverted: false})
				topY += stepHeight
			}
		}
		inverted = !inverted
	}
	return steps
}

// New builds the base pyramid and its mirrored passes in one go.
func New(totalSteps, mirrors int, baseSide, stepHeight float32) []Step {
	base := Build(totalSteps, baseSide, stepHeight)
	return Mirror(base, mirrors, stepHeight, float32(totalSteps)*stepHeight)
}
