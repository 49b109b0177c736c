package domain

// Employee は従業員を表す集約ルート
type Employee struct {
	id           EmployeeID
	fullName     EmployeeFullName
	employeeType EmployeeType
	version      int32
}

func NewEmployee(fullName EmployeeFullName, employeeType EmployeeType) *Employee {
	return &Employee{
		id:           NewEmployeeID(),
		fullName:     fullName,
		employeeType: employeeType,
	}
}

// ReconstructEmployee は永続化済みのデータから従業員を復元する
func ReconstructEmployee(id EmployeeID, fullName EmployeeFullName, employeeType EmployeeType, version int32) *Employee {
	return &Employee{
		id:           id,
		fullName:     fullName,
		employeeType: employeeType,
		version:      version,
	}
}

func (e *Employee) ID() EmployeeID {
	return e.id
}

func (e *Employee) FullName() EmployeeFullName {
	return e.fullName
}

func (e *Employee) Type() EmployeeType {
	return e.employeeType
}

func (e *Employee) Version() int32 {
	return e.version
}

func (e *Employee) UpdateFullName(fullName EmployeeFullName) {
	e.fullName = fullName
}

func (e *Employee) UpdateType(employeeType EmployeeType) {
	e.employeeType = employeeType
}
