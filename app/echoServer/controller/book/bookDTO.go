package book

type CheckoutReq struct {
	CheckoutDays int `json:"checkout_days" validate:"omitempty,gte=1,lte=60"`
}
