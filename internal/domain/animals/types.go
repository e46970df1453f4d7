package animals

// Gender of a chipped animal.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// LifeStatus is the animal's life state. The only modeled transition is
// alive -> dead; dead is terminal for movement history.
// @Enum alive, dead
type LifeStatus string

const (
	LifeStatusAlive LifeStatus = "alive"
	LifeStatusDead  LifeStatus = "dead"
)

func (s LifeStatus) Valid() bool {
	return s == LifeStatusAlive || s == LifeStatusDead
}
