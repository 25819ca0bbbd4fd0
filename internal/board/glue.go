package board

// GlueType names a glue label on a tile edge. The empty string means "no
// glue" on that edge.
type GlueType string

// Glues holds the glue label exposed on each of a tile's four edges.
type Glues struct {
	North, East, South, West GlueType
}

// On returns the glue label on edge d.
func (g Glues) On(d Direction) GlueType {
	switch d {
	case North:
		return g.North
	case East:
		return g.East
	case South:
		return g.South
	case West:
		return g.West
	default:
		panic("board: invalid direction")
	}
}

// WithEdge returns a copy of g with edge d set to t.
func (g Glues) WithEdge(d Direction, t GlueType) Glues {
	switch d {
	case North:
		g.North = t
	case East:
		g.East = t
	case South:
		g.South = t
	case West:
		g.West = t
	default:
		panic("board: invalid direction")
	}
	return g
}

// Empty reports whether none of the four edges carry a glue.
func (g Glues) Empty() bool {
	return g.North == "" && g.East == "" && g.South == "" && g.West == ""
}

// GlueRules decides whether two glue labels bind when the edges they sit
// on touch. It is the single point of variation between the two rule
// families the simulator supports: plain declared-pairs matching and
// reflexive (self-sticking) matching.
type GlueRules interface {
	// Sticks reports whether a glue labeled a, on one tile's edge, binds
	// to a glue labeled b on the abutting edge of the neighboring tile.
	Sticks(a, b GlueType) bool

	// AddRule declares that a and b stick, symmetrically: once declared,
	// Sticks(a, b) and Sticks(b, a) both hold.
	AddRule(a, b GlueType)

	// Rules returns one representative of every declared pair, for
	// serialization.
	Rules() [][2]GlueType
}

// ruleSet is the shared representation behind both rule families: an
// explicit, symmetric set of declared sticking pairs. Only declared
// pairs stick; equal labels are not special-cased here.
type ruleSet struct {
	pairs map[[2]GlueType]bool
}

func (r *ruleSet) addRule(a, b GlueType) {
	if r.pairs == nil {
		r.pairs = make(map[[2]GlueType]bool)
	}
	r.pairs[[2]GlueType{a, b}] = true
	r.pairs[[2]GlueType{b, a}] = true
}

func (r *ruleSet) sticks(a, b GlueType) bool {
	if a == "" || b == "" {
		return false
	}
	return r.pairs[[2]GlueType{a, b}]
}

// rules returns one representative per symmetric pair, so a round trip
// through serialization doesn't double every declared rule.
func (r *ruleSet) rules() [][2]GlueType {
	var out [][2]GlueType
	seen := make(map[[2]GlueType]bool, len(r.pairs))
	for k := range r.pairs {
		rev := [2]GlueType{k[1], k[0]}
		if seen[rev] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// PlainGlueRules is the common case: two glues bind only when that exact
// pair, in either order, was explicitly declared. "Red" sticks to "Red"
// only if the pair (Red, Red) was itself declared; nothing sticks by
// default, not even a label to itself.
type PlainGlueRules struct {
	ruleSet
}

// NewPlainGlueRules builds plain rules with the given pairs already
// declared.
func NewPlainGlueRules(pairs [][2]GlueType) *PlainGlueRules {
	r := &PlainGlueRules{}
	for _, p := range pairs {
		r.addRule(p[0], p[1])
	}
	return r
}

func (r *PlainGlueRules) Sticks(a, b GlueType) bool { return r.sticks(a, b) }
func (r *PlainGlueRules) AddRule(a, b GlueType)     { r.addRule(a, b) }
func (r *PlainGlueRules) Rules() [][2]GlueType      { return r.rules() }

// ReflexiveGlueRules behaves like PlainGlueRules, except that the first
// time it is asked whether a non-empty label sticks to itself, it
// declares that self-pair on the spot before answering, so
// self-complementary glues work without predeclaring every label against
// itself.
type ReflexiveGlueRules struct {
	ruleSet
}

// NewReflexiveGlueRules builds reflexive rules with the given pairs
// already declared; self-pairs beyond these are still added lazily on
// first query.
func NewReflexiveGlueRules(pairs [][2]GlueType) *ReflexiveGlueRules {
	r := &ReflexiveGlueRules{}
	for _, p := range pairs {
		r.addRule(p[0], p[1])
	}
	return r
}

func (r *ReflexiveGlueRules) Sticks(a, b GlueType) bool {
	if a == b && a != "" {
		r.addRule(a, b)
	}
	return r.sticks(a, b)
}

func (r *ReflexiveGlueRules) AddRule(a, b GlueType) { r.addRule(a, b) }
func (r *ReflexiveGlueRules) Rules() [][2]GlueType  { return r.rules() }
