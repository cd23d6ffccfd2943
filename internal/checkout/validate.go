package checkout

import "regexp"

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate checks every field and reports all failures together rather
// than stopping at the first. An empty map means the form is valid.
func Validate(info ShippingInfo) map[string]string {
	errs := make(map[string]string)

	if info.FirstName == "" {
		errs["firstName"] = "First name is required."
	}
	if info.LastName == "" {
		errs["lastName"] = "Last name is required."
	}
	if info.Address == "" {
		errs["address"] = "Address is required."
	}
	if info.City == "" {
		errs["city"] = "City is required."
	}
	if info.State == "" {
		errs["state"] = "State/Province is required."
	}
	if info.Zip == "" {
		errs["zip"] = "Zip/Postal Code is required."
	}
	if info.Country == "" {
		errs["country"] = "Country is required."
	}
	if info.Phone == "" {
		errs["phone"] = "Phone number is required."
	}
	if info.Email == "" {
		errs["email"] = "Email is required."
	} else if !emailRegex.MatchString(info.Email) {
		errs["email"] = "Email is invalid."
	}

	return errs
}
