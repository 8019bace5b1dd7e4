package domain

type TrainType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Train capacity is carriage_count * seats_per_carriage; both factors are
// at least 1.
type Train struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	CarriageCount    int    `json:"carriage_count" db:"carriage_count"`
	SeatsPerCarriage int    `json:"seats_per_carriage" db:"seats_per_carriage"`
	TrainTypeID      int64  `json:"train_type" db:"train_type_id"`

	TrainType *TrainType `json:"train_type_detail,omitempty" db:"-"`
}

func (t *Train) Capacity() int {
	return t.CarriageCount * t.SeatsPerCarriage
}
