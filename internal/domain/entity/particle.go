package entity

import "image/color"

// Particle is an ephemeral visual effect unit.
// Life is the remaining fraction in [0, 1].
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  color.RGBA
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Particles is the single mutable particle collection of a scene.
type Particles struct {
	items []Particle
}

// NewParticles creates an empty collection with room for n particles.
func NewParticles(n int) *Particles {
	return &Particles{items: make([]Particle, 0, n)}
}

// Add appends a particle.
func (ps *Particles) Add(p Particle) {
	ps.items = append(ps.items, p)
}

// Age advances every particle by its velocity, decreases its life by decrement
// and drops the ones whose life reached zero in the same pass.
func (ps *Particles) Age(decrement float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decrement
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	// Clear the tail so dropped particles are not retained.
	for i := len(kept); i < len(ps.items); i++ {
		ps.items[i] = Particle{}
	}
	ps.items = kept
}

// Each calls fn for every live particle.
func (ps *Particles) Each(fn func(p *Particle)) {
	for i := range ps.items {
		fn(&ps.items[i])
	}
}

// Len returns the number of particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
