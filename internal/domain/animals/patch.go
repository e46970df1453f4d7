package animals

// Patch is a partial update over the animal's mutable attributes.
// nil = leave the field as it is.
type Patch struct {
	Weight             *float64
	Length             *float64
	Height             *float64
	Gender             *Gender
	LifeStatus         *LifeStatus
	ChipperID          *string
	ChippingLocationID *string
}

// Apply merges the patch into the animal, overwriting only the fields that
// are explicitly present.
func (a *Animal) Apply(p Patch) {
	if p.Weight != nil {
		a.Weight = *p.Weight
	}
	if p.Length != nil {
		a.Length = *p.Length
	}
	if p.Height != nil {
		a.Height = *p.Height
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.LifeStatus != nil {
		a.LifeStatus = *p.LifeStatus
	}
	if p.ChipperID != nil {
		a.ChipperID = *p.ChipperID
	}
	if p.ChippingLocationID != nil {
		a.ChippingLocationID = *p.ChippingLocationID
	}
}

// Validate rejects values no animal can have. Unset fields are fine.
func (p Patch) Validate() error {
	if p.Weight != nil && *p.Weight <= 0 {
		return ErrInvalidInput
	}
	if p.Length != nil && *p.Length <= 0 {
		return ErrInvalidInput
	}
	if p.Height != nil && *p.Height <= 0 {
		return ErrInvalidInput
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return ErrInvalidInput
	}
	if p.LifeStatus != nil && !p.LifeStatus.Valid() {
		return ErrInvalidInput
	}
	return nil
}
