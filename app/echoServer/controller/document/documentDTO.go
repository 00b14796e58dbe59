package document

type ToggleReq struct {
	ID string `json:"id" validate:"required"`
}
