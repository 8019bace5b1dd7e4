package dto

type TrainRequest struct {
	Name             string `json:"name" validate:"required"`
	CarriageCount    int    `json:"carriage_count" validate:"required,min=1"`
	SeatsPerCarriage int    `json:"seats_per_carriage" validate:"required,min=1"`
	TrainType        int64  `json:"train_type" validate:"required"`
}

type TrainTypeRequest struct {
	Name string `json:"name" validate:"required"`
}
