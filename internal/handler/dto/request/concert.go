package request

type CreateConcertRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	TotalSeats  int    `json:"totalSeats" binding:"required,min=1,max=10000"`
}
