package dto

type SetPayrollRequestDTO struct {
	GrossRate     string `json:"gross_rate" example:"30000.00"`
	LoanDeduction string `json:"loan_deduction" example:"2000.00"`
}

type PayrollResponseDTO struct {
	GrossRate     string `json:"gross_rate" example:"30000.00"`
	LoanDeduction string `json:"loan_deduction" example:"2000.00"`
	TaxDeduction  string `json:"tax_deduction" example:"13400.00"`
	NetSalary     string `json:"net_salary" example:"16600.00"`
}
