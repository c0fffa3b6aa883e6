package common

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// FadeAlpha returns the opacity for something that lives for total and has
// remaining left, fading out over the last fade.
func FadeAlpha(remaining, fade, total float64) float32 {
	if remaining <= 0 || total <= 0 {
		return 0
	}
	if fade <= 0 || remaining >= fade {
		return 1
	}
	return Lerp(0, 1, float32(remaining/fade))
}
