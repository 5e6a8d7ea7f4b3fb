package api

// PhoneNumberStatus is the Graph phone number object.
type PhoneNumberStatus struct {
	Id                     string `json:"id"`
	DisplayPhoneNumber     string `json:"display_phone_number,omitempty"`
	VerifiedName           string `json:"verified_name,omitempty"`
	QualityRating          string `json:"quality_rating,omitempty"`
	CodeVerificationStatus string `json:"code_verification_status,omitempty"`
}
