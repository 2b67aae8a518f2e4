package gridview

// TruncateText shortens text to fit within maxWidth, ending it with ".."
// when anything was cut. If even the suffix does not fit, a single "." is
// tried, then the empty string.
func (s Style) TruncateText(text string, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if s.MeasureText(text).X <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		if result, ok := s.truncateWithSuffix(text, maxWidth, suffix); ok {
			return result
		}
	}
	return ""
}

func (s Style) truncateWithSuffix(text string, maxWidth float32, suffix string) (string, bool) {
	target := maxWidth - s.MeasureText(suffix).X
	if target < 0 {
		return "", false
	}
	runes := []rune(text)
	for len(runes) > 0 {
		if s.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix, true
		}
		runes = runes[:len(runes)-1]
	}
	return suffix, true
}

// TextTruncated draws a label shortened to the cell's width.
func (s *CellSurface) TextTruncated(text string) {
	s.TextColored(s.ctx.style.TruncateText(text, s.rect.W), s.ctx.style.TextColor)
}
