package cssengine

// Size is the space available to an element, used to resolve percentages.
type Size struct {
	Width  float32
	Height float32
}

// StyleSink applies declarations to a UI element. Declarations are applied one
// at a time in stylesheet order, so a later declaration of a property
// overrides an earlier one.
type StyleSink interface {
	Apply(d Declaration, avail Size)
}

// SinkFunc adapts a function to a StyleSink.
type SinkFunc func(d Declaration, avail Size)

func (f SinkFunc) Apply(d Declaration, avail Size) {
	f(d, avail)
}

// Apply hands the base group to sink, followed by the groups of each state
// in the order given.
func Apply(sink StyleSink, groups []StyleGroup, avail Size, states ...PseudoClass) {
	apply := func(pseudo PseudoClass) {
		for _, g := range groups {
			if g.Pseudo != pseudo {
				continue
			}
			for _, d := range g.Declarations {
				sink.Apply(d, avail)
			}
		}
	}
	apply(PseudoNone)
	for _, state := range states {
		if state != PseudoNone {
			apply(state)
		}
	}
}
