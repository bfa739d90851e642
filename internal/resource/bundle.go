package resource

// Bundle is a count of each resource. It serves as a player's hand, a
// build cost and a trade request alike.
type Bundle struct {
	Lumber int `json:"lumber"`
	Grain  int `json:"grain"`
	Wool   int `json:"wool"`
	Brick  int `json:"brick"`
	Ore    int `json:"ore"`
}

// Of builds a bundle holding amount of a single resource.
func Of(k Kind, amount int) Bundle {
	var b Bundle
	b.Add(k, amount)
	return b
}

// Add adds resources to the bundle.
func (b *Bundle) Add(k Kind, amount int) {
	if p := b.slot(k); p != nil {
		*p += amount
	}
}

// Remove removes resources from the bundle. Returns false if insufficient.
func (b *Bundle) Remove(k Kind, amount int) bool {
	p := b.slot(k)
	if p == nil || *p < amount {
		return false
	}
	*p -= amount
	return true
}

// Get returns the amount of a resource.
func (b Bundle) Get(k Kind) int {
	if p := b.slot(k); p != nil {
		return *p
	}
	return 0
}

// Set overwrites the amount of a resource.
func (b *Bundle) Set(k Kind, amount int) {
	if p := b.slot(k); p != nil {
		*p = amount
	}
}

// Total returns the total number of resource cards.
func (b Bundle) Total() int {
	return b.Lumber + b.Grain + b.Wool + b.Brick + b.Ore
}

// IsZero returns true if the bundle holds nothing.
func (b Bundle) IsZero() bool {
	return b == (Bundle{})
}

// CanAfford checks if the bundle covers a cost.
func (b Bundle) CanAfford(cost Bundle) bool {
	return b.Lumber >= cost.Lumber &&
		b.Grain >= cost.Grain &&
		b.Wool >= cost.Wool &&
		b.Brick >= cost.Brick &&
		b.Ore >= cost.Ore
}

// Spend removes a cost. Returns false, leaving the bundle unchanged, if insufficient.
func (b *Bundle) Spend(cost Bundle) bool {
	if !b.CanAfford(cost) {
		return false
	}
	*b = b.Minus(cost)
	return true
}

// Plus returns the sum of two bundles.
func (b Bundle) Plus(o Bundle) Bundle {
	return Bundle{
		Lumber: b.Lumber + o.Lumber,
		Grain:  b.Grain + o.Grain,
		Wool:   b.Wool + o.Wool,
		Brick:  b.Brick + o.Brick,
		Ore:    b.Ore + o.Ore,
	}
}

// Minus returns b with o taken away. Counts may go negative.
func (b Bundle) Minus(o Bundle) Bundle {
	return Bundle{
		Lumber: b.Lumber - o.Lumber,
		Grain:  b.Grain - o.Grain,
		Wool:   b.Wool - o.Wool,
		Brick:  b.Brick - o.Brick,
		Ore:    b.Ore - o.Ore,
	}
}

// Kinds returns the resources with a positive count, in canonical order.
func (b Bundle) Kinds() []Kind {
	var kinds []Kind
	for _, k := range All {
		if b.Get(k) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (b *Bundle) slot(k Kind) *int {
	switch k {
	case Lumber:
		return &b.Lumber
	case Grain:
		return &b.Grain
	case Wool:
		return &b.Wool
	case Brick:
		return &b.Brick
	case Ore:
		return &b.Ore
	default:
		return nil
	}
}
