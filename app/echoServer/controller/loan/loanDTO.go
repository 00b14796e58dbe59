package loan

type RenewReq struct {
	ExtendDays int `json:"extend_days" validate:"omitempty,gte=1,lte=60"`
}
