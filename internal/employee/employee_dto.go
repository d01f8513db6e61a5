package employee

// CreateEmployeeRequest requires all six fields. Salary and Skills are
// pointers so that a zero salary and an empty skills list still pass the
// required check.
type CreateEmployeeRequest struct {
	EmployeeID  string    `json:"employee_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Department  string    `json:"department" binding:"required"`
	Salary      *float64  `json:"salary" binding:"required"`
	JoiningDate string    `json:"joining_date" binding:"required"`
	Skills      *[]string `json:"skills" binding:"required"`
}

// UpdateEmployeeRequest is sparse: every field is optional and only fields
// actually present in the payload are applied. Absence means "do not modify".
type UpdateEmployeeRequest struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

// EmployeeResponse is the wire shape of a single employee document.
type EmployeeResponse struct {
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

// DepartmentAvgSalary is one row of the salary aggregation. The bson tags
// match the $project stage of the pipeline.
type DepartmentAvgSalary struct {
	Department string  `bson:"department" json:"department"`
	AvgSalary  float64 `bson:"avg_salary" json:"avg_salary"`
}
