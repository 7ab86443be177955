package entity

import "time"

type Kind string

const (
	KindPerson    Kind = "person"
	KindPet       Kind = "pet"
	KindHousehold Kind = "household"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPerson, KindPet, KindHousehold:
		return true
	}
	return false
}

// Entity is whoever owns records: a family member, a pet or the household.
type Entity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}
