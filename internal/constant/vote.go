package constant

type VoteType string

const (
	VoteTypeLike VoteType = "like"
	VoteTypeNo   VoteType = "no"
)

func (v VoteType) Valid() bool {
	return v == VoteTypeLike || v == VoteTypeNo
}
