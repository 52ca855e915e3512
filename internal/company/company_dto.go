package company

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}

type JoinCompanyRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"join_code,omitempty"`
	OwnerUID string `json:"owner_uid"`
}

type JoinCompanyResponse struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}
