package dto

type UpdateApplicationRequest struct {
	Status          string `json:"status"           validate:"required,oneof=pending verified rejected"`
	Notes           string `json:"notes"            validate:"omitempty"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty"`
}

type CreateApplicationRequest struct {
	FullName      string   `json:"full_name"      validate:"required,min=1,max=255"`
	Email         string   `json:"email"          validate:"required,email"`
	Phone         string   `json:"phone"          validate:"required,max=50"`
	University    string   `json:"university"     validate:"omitempty,max=255"`
	VisaType      string   `json:"visa_type"      validate:"required,max=50"`
	OtherVisa     string   `json:"other_visa"     validate:"omitempty,max=50"`
	ArrivalDate   string   `json:"arrival_date"   validate:"omitempty,datetime=2006-01-02"`
	TransactionID string   `json:"transaction_id" validate:"required,max=100"`
	Interests     []string `json:"interests"      validate:"omitempty"`
}
