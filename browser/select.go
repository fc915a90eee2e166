package browser

// Select picks the browser to launch from the detected list. It walks prefs
// in order and returns the first detected browser whose name matches. When
// no preferred name is detected, the first detected browser wins (detection
// order, deliberately not preference-driven). With nothing detected, ok is
// false and the caller should open the system default browser instead.
func Select(detected []Descriptor, prefs []string) (Descriptor, bool) {
	if len(detected) == 0 {
		return Descriptor{}, false
	}
	for _, name := range prefs {
		for _, d := range detected {
			if d.Name == name {
				return d, true
			}
		}
	}
	return detected[0], true
}

// Names returns the display names of the given descriptors, in order.
func Names(descriptors []Descriptor) []string {
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name
	}
	return names
}
