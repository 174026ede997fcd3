package listing

// LocationLinks returns the href of every 📍 anchor in the text, in order.
// Callers use it to show which location an indexed edit would touch.
func LocationLinks(text string) []string {
	var out []string
	for _, m := range locLinkRe.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, text[m[3]:m[4]])
	}
	return out
}

// LocationNames returns the label of every 📍 anchor in the text, in order.
func LocationNames(text string) []string {
	var out []string
	for _, m := range locNameRe.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, text[m[3]:m[4]])
	}
	return out
}
