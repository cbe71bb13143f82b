package usecase

type CreateInput struct {
	Customer string
	Amount   int64
}
