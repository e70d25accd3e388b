package pyramid

// Build returns totalSteps steps tapering from baseSide at the bottom, each stepHeight tall.
// Step i has side baseSide*(totalSteps-i)/totalSteps and sits at i*stepHeight.
// totalSteps < 1 yields an empty sequence; callers clamp it to 1 before getting here.
func Build(totalSteps int, baseSide, stepHeight float32) []Step {
	if totalSteps < 1 {
		return nil
	}
	steps := make([]Step, 0, totalSteps)
	return buildFrom(0, totalSteps, baseSide, stepHeight, steps)
}

func buildFrom(current, total int, baseSide, stepHeight float32, steps []Step) []Step {
	if current >= total {
		return steps
	}
	steps = append(steps, Step{
		Side:    baseSide * float32(total-current) / float32(total),
		BottomY: float32(current) * stepHeight,
		Height:  stepHeight,
	})
	return buildFrom(current+1, total, baseSide, stepHeight, steps)
}
