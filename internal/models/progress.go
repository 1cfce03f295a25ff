package models

// DepartmentTotals maps each canonical department to the number of lessons available in it
type DepartmentTotals map[Department]int

// DepartmentProgress maps each canonical department to an integer percent in [0, 100]
type DepartmentProgress map[Department]int

// ProgressReport is the progress view handed to profile pages and certificate rendering
type ProgressReport struct {
	Snapshot            *LearnerSnapshot    `json:"snapshot"`
	Totals              DepartmentTotals    `json:"totals"`
	Percent             DepartmentProgress  `json:"percent"`
	CertificateEligible map[Department]bool `json:"certificateEligible"`
}
