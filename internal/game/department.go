package game

// Departments 固定的部门列表
var Departments = []string{
	"Customer Experience",
	"IT",
	"Technical Operations",
	"Technical Services",
	"Finance",
	"Human Resources",
	"Legal",
	"PPR",
	"EFR",
	"HSE",
	"Corp Comms.",
	"Commercial",
}

// IsValidDepartment 检查部门是否在固定列表中
func IsValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}
