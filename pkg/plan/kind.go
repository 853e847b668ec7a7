package plan

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -output kind_enumer.go

// Kind is the YAML tag of a plan statement.
type Kind int

const (
	KindDog Kind = iota
	KindBehavior
	KindCriterion
)

func (k Kind) Tag() string {
	return "!" + k.String()
}
