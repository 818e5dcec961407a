package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Higher-order designs (elliptic bandpass, notch + bandpass) are realized
// as chains so that no single polynomial of high degree is ever formed.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// Coefficients returns a copy of the section coefficients in cascade order.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}

	return out
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// SteadyState returns the per-section delay-line states of the cascade under
// a constant unit input. Each section's state is scaled by the DC gain of the
// sections ahead of it, since that is the constant it actually sees.
func (c *Chain) SteadyState() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	scale := 1.0

	for i := range c.sections {
		zi := c.sections[i].SteadyState()
		states[i] = [2]float64{scale * zi[0], scale * zi[1]}
		scale *= c.sections[i].DCGain()
	}

	return states
}

// Prime loads the steady state for a constant input x0 into the cascade.
func (c *Chain) Prime(steady [][2]float64, x0 float64) {
	for i := range c.sections {
		c.sections[i].SetState([2]float64{steady[i][0] * x0, steady[i][1] * x0})
	}
}
