package domain

// ThumbnailSize scales w x h to the given height, keeping the aspect ratio.
func ThumbnailSize(width, height, targetHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}

	aspect := float64(width) / float64(height)

	return atLeastOne(int(float64(targetHeight) * aspect)), targetHeight
}

// FitWithin scales w x h so the longest edge is at most maxDimension. The boolean
// is false when the image already fits and no scaling is needed.
func FitWithin(width, height, maxDimension int) (int, int, bool) {
	if max(width, height) <= maxDimension {
		return width, height, false
	}

	if width > height {
		return maxDimension, atLeastOne(int(float64(height) / float64(width) * float64(maxDimension))), true
	}

	return atLeastOne(int(float64(width) / float64(height) * float64(maxDimension))), maxDimension, true
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}

	return v
}
