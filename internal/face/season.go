package face

// SeasonFor maps a Fitzpatrick type and undertone to a color season.
// Types I-III are light. Neutral undertones lean warm when light and cool when dark.
func SeasonFor(fitzpatrick int, undertone Undertone) Season {
	light := fitzpatrick <= 3
	warm := undertone == UndertoneWarm || (undertone == UndertoneNeutral && light)
	switch {
	case warm && light:
		return SeasonSpring
	case warm:
		return SeasonAutumn
	case light:
		return SeasonSummer
	default:
		return SeasonWinter
	}
}
