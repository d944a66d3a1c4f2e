package objects

// armPick accumulates which arms of a choice are populated. Every choice
// type's Arm method feeds it one (name, populated) pair per arm and then
// calls pick to enforce the exactly-one invariant.
type armPick struct {
	name string
	n    int
}

func (p *armPick) add(name string, populated bool) {
	if populated {
		p.name = name
		p.n++
	}
}

// pick returns the single populated arm name, or a *SchemaError naming the
// choice when zero or several arms are set.
func (p *armPick) pick(context string) (string, error) {
	switch p.n {
	case 1:
		return p.name, nil
	case 0:
		return "", schemaErrf(context, "choice has no populated arm")
	default:
		return "", schemaErrf(context, "choice has %d populated arms", p.n)
	}
}
