package checkout

import "arova-be/internal/order"

// ShippingInfo is the checkout form as submitted.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (s ShippingInfo) toCustomerInfo() order.CustomerInfo {
	return order.CustomerInfo{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Zip:       s.Zip,
		Country:   s.Country,
		Phone:     s.Phone,
		Email:     s.Email,
	}
}
